package monotext

import (
	"image/color"

	"github.com/clktmr/vintage/fonts"
)

// Style describes how text is drawn with a MonoFont.
type Style struct {
	Font *fonts.MonoFont

	// TextColor is the color of set glyph pixels. Glyphs aren't drawn if
	// it's nil.
	TextColor color.Color

	// BackgroundColor fills the cells behind the glyphs. The background
	// is left untouched if it's nil.
	BackgroundColor color.Color

	Underline     Decoration
	Strikethrough Decoration

	Baseline  Baseline
	Alignment Alignment
}

// NewStyle returns a style drawing f in color c on a transparent
// background.
func NewStyle(f *fonts.MonoFont, c color.Color) Style {
	return Style{Font: f, TextColor: c}
}

// Decoration is a line drawn across the whole text, see
// [fonts.MonoFont.Underline] and [fonts.MonoFont.Strikethrough].
type Decoration struct {
	Enabled bool

	// Color of the line, the text color if nil.
	Color color.Color
}

// WithTextColor returns a decoration drawn in the text color.
func WithTextColor() Decoration {
	return Decoration{Enabled: true}
}

// WithColor returns a decoration drawn in c.
func WithColor(c color.Color) Decoration {
	return Decoration{Enabled: true, Color: c}
}

func (d Decoration) color(text color.Color) color.Color {
	if !d.Enabled {
		return nil
	}
	if d.Color != nil {
		return d.Color
	}
	return text
}

// Baseline selects the row of the character cell that is placed at the
// text's position.
type Baseline uint8

const (
	Alphabetic Baseline = iota // the font's baseline
	Top
	Middle
	Bottom
)

func (b Baseline) offset(f *fonts.MonoFont) int {
	switch b {
	case Top:
		return 0
	case Middle:
		return (f.CharacterSize.Y - 1) / 2
	case Bottom:
		return f.CharacterSize.Y - 1
	default:
		return f.Baseline
	}
}

// Alignment selects the column of a line that is placed at the text's
// position.
type Alignment uint8

const (
	Left Alignment = iota
	Center
	Right
)

func (a Alignment) left(x, width int) int {
	if width == 0 {
		return x
	}
	switch a {
	case Center:
		return x - (width-1)/2
	case Right:
		return x - (width - 1)
	default:
		return x
	}
}
