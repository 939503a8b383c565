// Package fonts implements monospace bitmap fonts: a packed 1 bit per pixel
// glyph atlas together with the metrics and the rune to glyph mapping
// needed to draw text with it.
//
// The fonts themselves live in subpackages, one per size. Each of them
// provides its descriptor as Font and a face for the embeddedgo display
// stack via NewFace. Use [MonoFont.BasicFace] to draw with
// golang.org/x/image/font instead.
package fonts

import (
	"image"

	"github.com/clktmr/vintage/debug"
)

// MonoFont describes a monospace bitmap font. Fonts are created once at
// package initialization and must not be modified afterwards, which makes
// them safe for concurrent use.
type MonoFont struct {
	Name string

	// Atlas holds all glyphs in a single row, glyph i at
	// x = i*CharacterSize.X.
	Atlas *Atlas

	CharacterSize    image.Point
	CharacterSpacing int

	// Baseline is the row of the baseline, counted from the top of the
	// cell.
	Baseline int

	Strikethrough DecorationDimensions
	Underline     DecorationDimensions

	Mapping GlyphMapping
}

// DecorationDimensions is the position of a horizontal decoration line
// within the character cell.
type DecorationDimensions struct {
	Offset int // first row, counted from the top of the cell
	Height int
}

// Rect returns the decoration line below a cell row starting at top and
// spanning width pixels from x.
func (d DecorationDimensions) Rect(x, top, width int) image.Rectangle {
	return image.Rect(x, top+d.Offset, x+width, top+d.Offset+d.Height)
}

// GlyphIndex returns the index of the glyph that draws r. Runes the font
// has no glyph for are drawn as '?'.
func (f *MonoFont) GlyphIndex(r rune) int {
	return f.Mapping.Index(r)
}

// GlyphRegion returns the rectangle of glyph i within the atlas. It must
// only be called with indices returned by GlyphIndex.
func (f *MonoFont) GlyphRegion(i int) image.Rectangle {
	debug.Assert(i >= 0 && i < f.Mapping.Len(), "fonts: glyph index %d out of range", i)
	x := i * f.CharacterSize.X
	return image.Rect(x, 0, x+f.CharacterSize.X, f.CharacterSize.Y)
}

// Glyph returns the atlas region that draws r.
func (f *MonoFont) Glyph(r rune) image.Image {
	return f.Atlas.SubImage(f.GlyphRegion(f.GlyphIndex(r)))
}

// Advance is the horizontal distance between the origins of two
// neighbouring glyphs.
func (f *MonoFont) Advance() int {
	return f.CharacterSize.X + f.CharacterSpacing
}

// TextWidth returns the width of n glyphs drawn side by side.
func (f *MonoFont) TextWidth(n int) int {
	if n <= 0 {
		return 0
	}
	return n*f.CharacterSize.X + (n-1)*f.CharacterSpacing
}

// Ascent is the number of rows from the top of the cell down to and
// including the baseline.
func (f *MonoFont) Ascent() int {
	return f.Baseline + 1
}
