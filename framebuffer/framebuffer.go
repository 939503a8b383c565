// Package framebuffer implements an in-memory display. It stands in for the
// screen when fonts are previewed or tested without hardware.
package framebuffer

import (
	"image"
	"image/color"
)

// Framebuffer is an image that implements pix.Driver, so it can be passed to
// pix.NewDisplay and drawn onto through pix.Area. It also satisfies
// monotext.Target.
type Framebuffer struct {
	img  *image.RGBA
	fill image.Uniform
}

// New returns a framebuffer covering r, cleared to black.
func New(r image.Rectangle) *Framebuffer {
	fb := &Framebuffer{img: image.NewRGBA(r)}
	fb.fill.C = color.Black
	fb.Clear()
	return fb
}

func (fb *Framebuffer) Bounds() image.Rectangle {
	return fb.img.Bounds()
}

// Image returns the framebuffer's pixels. The image is shared, not copied.
func (fb *Framebuffer) Image() *image.RGBA {
	return fb.img
}

// Clear fills the whole framebuffer with the current fill color.
func (fb *Framebuffer) Clear() {
	fb.Fill(fb.Bounds())
}
