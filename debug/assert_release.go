//go:build !debug

// Package debug provides assertions for programming errors, like glyph
// indices outside of an atlas. They are compiled in with the debug build tag
// and are no-ops otherwise.
package debug

// Guard more complex assertions (i.e. anything that could panic) with `if
// debug.Enabled{...}`, otherwise they can't be removed in release builds.
const Enabled = false

// Assert panics with the formatted message if b is false.
func Assert(b bool, format string, args ...any) {}
