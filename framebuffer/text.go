package framebuffer

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/clktmr/vintage/fonts"
)

// DrawText draws str with face inside r, the top-left corner of the first
// glyph at p. Glyphs are drawn straight from the font's atlas. Lines break
// at '\n' and before glyphs that would cross the right edge of r. DrawText
// returns the position of the next glyph.
func (fb *Framebuffer) DrawText(r image.Rectangle, face *fonts.Face, p image.Point, fg color.Color, str string) image.Point {
	height, _ := face.Size()
	src := image.NewUniform(fg)
	clip := r.Intersect(fb.img.Rect)
	dst := fb.img.SubImage(clip).(*image.RGBA)

	pos := p
	for _, c := range str {
		if c == '\n' {
			pos.X = r.Min.X
			pos.Y += height
			continue
		}

		img, glyphRect, _, adv := face.GlyphMap(c)
		if img == nil {
			continue
		}
		if pos.X+adv > r.Max.X && pos.X > r.Min.X {
			pos.X = r.Min.X
			pos.Y += height
		}
		if pos.Y >= clip.Max.Y {
			break
		}

		dr := image.Rectangle{Max: glyphRect.Size()}.Add(pos)
		if dr.Overlaps(clip) {
			draw.DrawMask(dst, dr, src, image.Point{}, img, glyphRect.Min, draw.Over)
		}
		pos.X += adv
	}
	return pos
}
