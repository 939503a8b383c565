// Package font24x32 is font6x8 magnified by 4.
package font24x32

import (
	"image"

	"github.com/clktmr/vintage/fonts"
	"github.com/clktmr/vintage/fonts/font6x8"
	"github.com/embeddedgo/display/font/subfont"
)

const (
	Width    = 24
	Height   = 32
	Baseline = 27
	Ascent   = Baseline + 1
)

// Font is the 24x32 font. It is shared and must not be modified.
var Font = &fonts.MonoFont{
	Name:          "24x32",
	Atlas:         font6x8.Font.Atlas.Magnify(4, 4),
	CharacterSize: image.Pt(Width, Height),
	Baseline:      Baseline,
	Strikethrough: fonts.DecorationDimensions{Offset: 14, Height: 4},
	Underline:     fonts.DecorationDimensions{Offset: 29, Height: 4},
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
