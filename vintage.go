// Package vintage is a catalog of monospace bitmap fonts in the style of
// vintage computer terminals.
//
// All fonts share the same layout: printable ASCII is mapped to glyphs 0 to
// 94 and, except for the 6x12 font, the printable part of the Latin-1
// supplement follows as glyphs 95 to 189. Every other rune is drawn as '?'.
//
//	f := vintage.Font8x16
//	region := f.GlyphRegion(f.GlyphIndex('A'))
//	glyph := f.Atlas.SubImage(region)
package vintage

import (
	"slices"
	"strings"

	"github.com/clktmr/vintage/fonts"
	"github.com/clktmr/vintage/fonts/font12x16"
	"github.com/clktmr/vintage/fonts/font24x32"
	"github.com/clktmr/vintage/fonts/font6x12"
	"github.com/clktmr/vintage/fonts/font6x8"
	"github.com/clktmr/vintage/fonts/font8x16"
)

// The fonts of the catalog. They are shared by all users and must not be
// modified.
var (
	Font6x8   = font6x8.Font
	Font6x12  = font6x12.Font
	Font8x16  = font8x16.Font
	Font12x16 = font12x16.Font
	Font24x32 = font24x32.Font
)

var catalog = [...]*fonts.MonoFont{Font6x8, Font6x12, Font8x16, Font12x16, Font24x32}

// Fonts returns all fonts, smallest first.
func Fonts() []*fonts.MonoFont {
	return slices.Clone(catalog[:])
}

// Lookup returns the font with the given name, e.g. "8x16". The name is
// matched case-insensitively.
func Lookup(name string) (*fonts.MonoFont, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range catalog {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Names returns the names of all fonts, smallest first.
func Names() []string {
	names := make([]string, len(catalog))
	for i, f := range catalog {
		names[i] = f.Name
	}
	return names
}
