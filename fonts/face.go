package fonts

import (
	"image"

	"github.com/embeddedgo/display/font/subfont"
)

// GlyphMap returns the whole atlas of a Subfont and the rect of the glyph
// within it. All images returned by GlyphMap are the same atlas, so drawers
// that cache their source image can avoid switching it per glyph.
type Data interface {
	GlyphMap(i int) (img image.Image, rect image.Rectangle, origin image.Point, advance int)
}

// Face implements font.Face from github.com/embeddedgo/display/font and can
// be passed to pix.Area.NewTextWriter.
type Face struct {
	subfont.Face
}

func (f *Face) GlyphMap(r rune) (img image.Image, rect image.Rectangle, origin image.Point, advance int) {
	sf := getSubfont(f, r)
	if sf == nil {
		return
	}
	i := int(r - sf.First)
	if sf, ok := sf.Data.(Data); ok {
		return sf.GlyphMap(i)
	}
	img, origin, advance = sf.Data.Glyph(i)
	rect = img.Bounds()
	return
}

func getSubfont(f *Face, r rune) (sf *subfont.Subfont) {
	for _, sf = range f.Subfonts {
		if sf != nil && sf.First <= r && r <= sf.Last {
			return sf
		}
	}
	if f.Loader == nil {
		return nil
	}
	sf, f.Subfonts = f.Loader.Load(r, f.Subfonts)
	return sf
}
