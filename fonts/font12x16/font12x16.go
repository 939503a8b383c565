// Package font12x16 is font6x8 magnified by 2.
package font12x16

import (
	"image"

	"github.com/clktmr/vintage/fonts"
	"github.com/clktmr/vintage/fonts/font6x8"
	"github.com/embeddedgo/display/font/subfont"
)

const (
	Width    = 12
	Height   = 16
	Baseline = 13
	Ascent   = Baseline + 1
)

// Font is the 12x16 font. It is shared and must not be modified.
var Font = &fonts.MonoFont{
	Name:          "12x16",
	Atlas:         font6x8.Font.Atlas.Magnify(2, 2),
	CharacterSize: image.Pt(Width, Height),
	Baseline:      Baseline,
	Strikethrough: fonts.DecorationDimensions{Offset: 7, Height: 2},
	Underline:     fonts.DecorationDimensions{Offset: 15, Height: 2},
	Mapping:       font6x8.Font.Mapping,
}

func NewFace() *fonts.Face {
	return &fonts.Face{
		Face: subfont.Face{Height: Height,
			Ascent:   Ascent,
			Subfonts: fonts.Subfonts(Font),
			Loader:   fonts.Fallback(Font),
		},
	}
}
