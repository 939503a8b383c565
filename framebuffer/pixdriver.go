package framebuffer

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/embeddedgo/display/pix"
)

var _ pix.Driver = (*Framebuffer)(nil)

func (fb *Framebuffer) Draw(r image.Rectangle, src image.Image, sp image.Point,
	mask image.Image, mp image.Point, op draw.Op) {
	draw.DrawMask(fb.img, r, src, sp, mask, mp, op)
}

func (fb *Framebuffer) Fill(rect image.Rectangle) {
	fb.Draw(rect, &fb.fill, image.Point{}, nil, image.Point{}, draw.Src)
}

func (fb *Framebuffer) SetColor(c color.Color) {
	fb.fill.C = c
}

// SetDir doesn't support rotation, the framebuffer is always in its
// natural orientation.
func (fb *Framebuffer) SetDir(dir int) image.Rectangle {
	return fb.img.Bounds()
}

func (fb *Framebuffer) Flush() {}

func (fb *Framebuffer) Err(clear bool) error {
	return nil
}
