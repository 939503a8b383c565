// 8x16 in the style of the VGA text mode font, ASCII and Latin-1
package font8x16

import (
	_ "embed"
	"image"

	"github.com/clktmr/vintage/fonts"
	"github.com/embeddedgo/display/font/subfont"
)

const (
	Width    = 8
	Height   = 16
	Baseline = 11
	Ascent   = Baseline + 1
)

//go:embed font8x16.bdf
var bdfData []byte

// Font is the 8x16 font. It is shared and must not be modified.
var Font = &fonts.MonoFont{
	Name:          "8x16",
	Atlas:         fonts.MustParseBDF(bdfData, fonts.Latin1Mapping, image.Pt(Width, Height)),
	CharacterSize: image.Pt(Width, Height),
	Baseline:      Baseline,
	Strikethrough: fonts.DecorationDimensions{Offset: 7, Height: 1},
	Underline:     fonts.DecorationDimensions{Offset: 13, Height: 1},
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
