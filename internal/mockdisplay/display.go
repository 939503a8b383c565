// Package mockdisplay provides a small monochrome display for tests. Every
// pixel remembers whether it was drawn at all, so tests can tell transparent
// pixels from pixels drawn in the off color.
package mockdisplay

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// Size is the width and height of a Display.
const Size = 64

type Pixel uint8

const (
	Unset Pixel = iota
	Off
	On
)

var (
	OffColor color.Color = color.Black
	OnColor  color.Color = color.White
)

// Display implements draw.Image. Colors are stored as On if their luminance
// is at least 50%, as Off otherwise.
type Display struct {
	pixels           [Size * Size]Pixel
	allowOutOfBounds bool
}

func New() *Display {
	return &Display{}
}

// FromPattern returns a display with pixels set from rows of text, one
// character per pixel: ' ' is unset, '.' is off and '#' is on.
func FromPattern(rows []string) *Display {
	d := New()
	if len(rows) > Size {
		panic("mockdisplay: pattern too high")
	}
	for y, row := range rows {
		if len(row) > Size {
			panic("mockdisplay: pattern too wide")
		}
		for x, c := range []byte(row) {
			switch c {
			case ' ':
			case '.':
				d.pixels[y*Size+x] = Off
			case '#':
				d.pixels[y*Size+x] = On
			default:
				panic(fmt.Sprintf("mockdisplay: invalid pattern character %q", c))
			}
		}
	}
	return d
}

// SetAllowOutOfBounds controls whether drawing outside of the display is
// ignored. It panics otherwise.
func (d *Display) SetAllowOutOfBounds(allow bool) {
	d.allowOutOfBounds = allow
}

func (d *Display) ColorModel() color.Model { return color.GrayModel }

func (d *Display) Bounds() image.Rectangle {
	return image.Rect(0, 0, Size, Size)
}

func (d *Display) At(x, y int) color.Color {
	switch d.Pixel(x, y) {
	case On:
		return OnColor
	case Off:
		return OffColor
	}
	return color.Transparent
}

func (d *Display) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(d.Bounds())) {
		if d.allowOutOfBounds {
			return
		}
		panic(fmt.Sprintf("mockdisplay: pixel (%d, %d) out of bounds", x, y))
	}
	p := Off
	if color.GrayModel.Convert(c).(color.Gray).Y >= 0x80 {
		p = On
	}
	d.pixels[y*Size+x] = p
}

func (d *Display) Pixel(x, y int) Pixel {
	if !(image.Point{x, y}.In(d.Bounds())) {
		return Unset
	}
	return d.pixels[y*Size+x]
}

// AffectedArea returns the smallest rectangle containing all drawn pixels.
func (d *Display) AffectedArea() (r image.Rectangle) {
	for y := range Size {
		for x := range Size {
			if d.pixels[y*Size+x] == Unset {
				continue
			}
			p := image.Rect(x, y, x+1, y+1)
			if r.Empty() {
				r = p
			} else {
				r = r.Union(p)
			}
		}
	}
	return
}

func (d *Display) Equal(other *Display) bool {
	return d.pixels == other.pixels
}

// String returns the pattern of d in the format read by FromPattern,
// without trailing unset rows and columns.
func (d *Display) String() string {
	area := d.AffectedArea()
	var sb strings.Builder
	for y := 0; y < area.Max.Y; y++ {
		for x := 0; x < area.Max.X; x++ {
			sb.WriteByte(" .#"[d.pixels[y*Size+x]])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
