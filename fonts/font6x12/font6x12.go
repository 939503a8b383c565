// 6x12, ASCII only
package font6x12

import (
	_ "embed"
	"image"

	"github.com/clktmr/vintage/fonts"
	"github.com/embeddedgo/display/font/subfont"
)

const (
	Width    = 6
	Height   = 12
	Baseline = 9
	Ascent   = Baseline + 1
)

//go:embed font6x12.bdf
var bdfData []byte

// Font is the 6x12 font. It is shared and must not be modified.
var Font = &fonts.MonoFont{
	Name:          "6x12",
	Atlas:         fonts.MustParseBDF(bdfData, fonts.ASCIIMapping, image.Pt(Width, Height)),
	CharacterSize: image.Pt(Width, Height),
	Baseline:      Baseline,
	Strikethrough: fonts.DecorationDimensions{Offset: 5, Height: 1},
	Underline:     fonts.DecorationDimensions{Offset: 10, Height: 1},
	Mapping:       fonts.ASCIIMapping,
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
