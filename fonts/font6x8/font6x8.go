// 6x8, ASCII and Latin-1
package font6x8

import (
	_ "embed"
	"image"

	"github.com/clktmr/vintage/fonts"
	"github.com/embeddedgo/display/font/subfont"
)

const (
	Width    = 6
	Height   = 8
	Baseline = 6
	Ascent   = Baseline + 1
)

//go:embed font6x8.bdf
var bdfData []byte

// Font is the 6x8 font. It is shared and must not be modified.
var Font = &fonts.MonoFont{
	Name:          "6x8",
	Atlas:         fonts.MustParseBDF(bdfData, fonts.Latin1Mapping, image.Pt(Width, Height)),
	CharacterSize: image.Pt(Width, Height),
	Baseline:      Baseline,
	Strikethrough: fonts.DecorationDimensions{Offset: 3, Height: 1},
	Underline:     fonts.DecorationDimensions{Offset: 7, Height: 1},
	Mapping:       fonts.Latin1Mapping,
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
