package fonts

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/embeddedgo/display/images"
)

// Atlas is a packed 1 bit per pixel image holding the glyphs of a font side
// by side. Rows are stored top to bottom, pixels most significant bit first,
// and every row is padded to a whole number of bytes.
//
// An atlas always has its origin at (0, 0). Sub-images share Pix and Stride
// with their parent and only narrow Rect.
type Atlas struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

// NewAtlas returns an empty atlas of the given size.
func NewAtlas(width, height int) *Atlas {
	stride := (width + 7) / 8
	return &Atlas{
		Pix:    make([]uint8, stride*height),
		Stride: stride,
		Rect:   image.Rect(0, 0, width, height),
	}
}

func (p *Atlas) ColorModel() color.Model { return color.AlphaModel }

func (p *Atlas) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Atlas) At(x, y int) color.Color {
	return p.AlphaAt(x, y)
}

func (p *Atlas) AlphaAt(x, y int) color.Alpha {
	if p.BitAt(x, y) {
		return color.Alpha{0xff}
	}
	return color.Alpha{}
}

// Set sets the pixel if c is at least half opaque and clears it otherwise.
func (p *Atlas) Set(x, y int, c color.Color) {
	_, _, _, a := c.RGBA()
	p.SetBit(x, y, a >= 0x8000)
}

// BitAt reports whether the pixel at (x, y) is set.
func (p *Atlas) BitAt(x, y int) bool {
	if !(image.Point{x, y}.In(p.Rect)) {
		return false
	}
	offset, mask := p.PixOffset(x, y)
	return p.Pix[offset]&mask != 0
}

func (p *Atlas) SetBit(x, y int, on bool) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	offset, mask := p.PixOffset(x, y)
	if on {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// PixOffset returns the index of the byte holding the pixel at (x, y) and
// the pixel's bit within that byte.
func (p *Atlas) PixOffset(x, y int) (int, uint8) {
	return y*p.Stride + x>>3, 0x80 >> uint(x&7)
}

func (p *Atlas) SubImage(r image.Rectangle) image.Image {
	return &Atlas{
		Pix:    p.Pix,
		Stride: p.Stride,
		Rect:   r.Intersect(p.Rect),
	}
}

func (p *Atlas) Opaque() bool {
	return false
}

// Magnify returns a copy of p scaled by integer factors, every source pixel
// becoming a block of sx*sy pixels.
func (p *Atlas) Magnify(sx, sy int) *Atlas {
	m := images.Magnify(p, sx, sy, images.Nearest)
	b := m.Bounds()
	dst := NewAtlas(b.Dx(), b.Dy())
	draw.Draw(dst, dst.Bounds(), m, b.Min, draw.Src)
	return dst
}
