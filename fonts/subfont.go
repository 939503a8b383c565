package fonts

import (
	"image"

	"github.com/embeddedgo/display/font/subfont"
)

// SubfontData implements [subfont.Data] for a run of consecutive glyphs of a
// MonoFont, starting at glyph First.
type SubfontData struct {
	font  *MonoFont
	first int
}

func (p *SubfontData) Advance(i int) int {
	return p.font.Advance()
}

func (p *SubfontData) Glyph(i int) (img image.Image, origin image.Point, advance int) {
	r := p.font.GlyphRegion(p.first + i)
	img = p.font.Atlas.SubImage(r)
	origin = image.Pt(r.Min.X, r.Min.Y+p.font.Ascent())
	advance = p.font.Advance()
	return
}

func (p *SubfontData) GlyphMap(i int) (img image.Image, r image.Rectangle, origin image.Point, advance int) {
	img = p.font.Atlas
	r = p.font.GlyphRegion(p.first + i)
	origin = image.Pt(r.Min.X, r.Min.Y+p.font.Ascent())
	advance = p.font.Advance()
	return
}

// Subfonts returns one subfont per rune range of f's mapping. f.Mapping
// must be a *RangeMapping.
func Subfonts(f *MonoFont) []*subfont.Subfont {
	m := f.Mapping.(*RangeMapping)
	subfonts := make([]*subfont.Subfont, 0, len(m.Ranges))
	first := 0
	for _, rr := range m.Ranges {
		subfonts = append(subfonts, &subfont.Subfont{
			First:  rr.First,
			Last:   rr.Last,
			Offset: 0,
			Data:   &SubfontData{f, first},
		})
		first += rr.Len()
	}
	return subfonts
}

// Loader resolves runes not covered by any subfont to the fallback glyph.
type Loader struct {
	font *MonoFont
}

// Fallback returns a [subfont.Loader] drawing every rune it is asked for
// with f's fallback glyph.
func Fallback(f *MonoFont) *Loader {
	return &Loader{f}
}

// Load returns a single rune subfont for r. The subfont is not added to
// current, so the list of subfonts stays the same no matter how many
// different runes are drawn.
func (l *Loader) Load(r rune, current []*subfont.Subfont) (containing *subfont.Subfont, updated []*subfont.Subfont) {
	containing = &subfont.Subfont{
		First:  r,
		Last:   r,
		Offset: 0,
		Data:   &SubfontData{l.font, l.font.GlyphIndex(r)},
	}
	updated = current
	return
}
