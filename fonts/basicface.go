package fonts

import (
	"image"
	"image/color"

	"golang.org/x/image/font/basicfont"
)

// BasicFace returns a face for golang.org/x/image/font. Its dot is on the
// baseline row's lower edge, so a font.Drawer with Dot at y = Ascent()
// draws the cell's top row at y = 0.
//
// Runes outside the mapping are drawn as '?': basicfont retries them as
// U+FFFD, which is mapped to the fallback glyph.
func (f *MonoFont) BasicFace() *basicfont.Face {
	face := &basicfont.Face{
		Advance: f.Advance(),
		Width:   f.CharacterSize.X,
		Height:  f.CharacterSize.Y,
		Ascent:  f.Ascent(),
		Descent: f.CharacterSize.Y - f.Ascent(),
		Left:    0,
		Mask:    &stackedAtlas{f},
	}
	if m, ok := f.Mapping.(*RangeMapping); ok {
		offset := 0
		for _, rr := range m.Ranges {
			face.Ranges = append(face.Ranges, basicfont.Range{
				Low:    rr.First,
				High:   rr.Last + 1,
				Offset: offset,
			})
			offset += rr.Len()
		}
	}
	face.Ranges = append(face.Ranges, basicfont.Range{
		Low:    '\ufffd',
		High:   '\ufffd' + 1,
		Offset: f.GlyphIndex(-1),
	})
	return face
}

// stackedAtlas presents the atlas of a font with its glyphs stacked on top of
// each other, glyph i at y = i*height, which is the mask layout basicfont
// expects.
type stackedAtlas struct {
	font *MonoFont
}

func (s *stackedAtlas) ColorModel() color.Model { return color.AlphaModel }

func (s *stackedAtlas) Bounds() image.Rectangle {
	size := s.font.CharacterSize
	return image.Rect(0, 0, size.X, size.Y*s.font.Mapping.Len())
}

func (s *stackedAtlas) At(x, y int) color.Color {
	size := s.font.CharacterSize
	if x < 0 || x >= size.X || y < 0 {
		return color.Alpha{}
	}
	i := y / size.Y
	if i >= s.font.Mapping.Len() {
		return color.Alpha{}
	}
	return s.font.Atlas.AlphaAt(i*size.X+x, y%size.Y)
}
