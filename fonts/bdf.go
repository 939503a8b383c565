package fonts

import (
	"errors"
	"fmt"
	"image"
	"io"
	"text/template"

	"github.com/zachomedia/go-bdf"
)

var (
	ErrMissingGlyph = errors.New("missing glyph")
	ErrGlyphSize    = errors.New("glyph exceeds character cell")
)

// ParseBDF reads the glyphs of a BDF font into a single row atlas. Glyphs
// are placed in the order of m, every glyph in a cell of the given size.
// The cell's baseline is FONT_ASCENT rows below its top and every glyph
// bitmap is placed relative to it by the offsets of its BBX.
func ParseBDF(data []byte, m GlyphMapping, size image.Point) (*Atlas, error) {
	src, err := bdf.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse bdf: %w", err)
	}

	chars := make(map[rune]int, len(src.Characters))
	for i, c := range src.Characters {
		chars[c.Encoding] = i
	}

	cell := image.Rectangle{Max: size}
	atlas := NewAtlas(size.X*m.Len(), size.Y)
	for i := range m.Len() {
		r := m.Rune(i)
		ci, ok := chars[r]
		if !ok {
			return nil, fmt.Errorf("%w: %U", ErrMissingGlyph, r)
		}
		c := &src.Characters[ci]
		glyph := c.Alpha
		if glyph == nil {
			continue
		}
		b := glyph.Bounds()
		pos := image.Pt(c.LowerPoint[0], src.Ascent-c.LowerPoint[1]-b.Dy())
		placed := image.Rectangle{pos, pos.Add(b.Size())}
		if !placed.In(cell) {
			return nil, fmt.Errorf("%w: %U at %v in %v cell", ErrGlyphSize, r, placed, size)
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if glyph.AlphaAt(x, y).A >= 0x80 {
					atlas.SetBit(i*size.X+pos.X+x-b.Min.X, pos.Y+y-b.Min.Y, true)
				}
			}
		}
	}
	return atlas, nil
}

// MustParseBDF is like ParseBDF but panics on error. It is meant for fonts
// embedded into the binary.
func MustParseBDF(data []byte, m GlyphMapping, size image.Point) *Atlas {
	atlas, err := ParseBDF(data, m, size)
	if err != nil {
		panic(err)
	}
	return atlas
}

// WriteBDF writes f as a BDF font with one full cell bitmap per glyph.
func WriteBDF(w io.Writer, f *MonoFont) error {
	tmpl, err := template.New("bdf").Parse(bdfTemplate)
	if err != nil {
		return err
	}

	size := f.CharacterSize
	descent := size.Y - f.Ascent()
	font := bdfFont{
		Name:        f.Name,
		Width:       size.X,
		Height:      size.Y,
		OffsetY:     -descent,
		SWidth:      size.X * 1000 / size.Y,
		Ascent:      f.Ascent(),
		Descent:     descent,
		DefaultChar: int(f.Mapping.Rune(f.GlyphIndex(-1))),
	}

	rowBytes := (size.X + 7) / 8
	for i := range f.Mapping.Len() {
		r := f.Mapping.Rune(i)
		region := f.GlyphRegion(i)
		g := bdfGlyph{Encoding: int(r)}
		row := make([]byte, rowBytes)
		for y := region.Min.Y; y < region.Max.Y; y++ {
			clear(row)
			for x := range size.X {
				if f.Atlas.BitAt(region.Min.X+x, y) {
					row[x>>3] |= 0x80 >> uint(x&7)
				}
			}
			g.Rows = append(g.Rows, fmt.Sprintf("%X", row))
		}
		font.Glyphs = append(font.Glyphs, g)
	}

	return tmpl.Execute(w, font)
}

type bdfFont struct {
	Name            string
	Width, Height   int
	OffsetY, SWidth int
	Ascent, Descent int
	DefaultChar     int
	Glyphs          []bdfGlyph
}

type bdfGlyph struct {
	Encoding int
	Rows     []string
}

const bdfTemplate = `STARTFONT 2.1
FONT -vintage-{{ .Name }}-medium-r-normal--{{ .Height }}-{{ .Height }}0-75-75-c-{{ .Width }}0-iso10646-1
SIZE {{ .Height }} 75 75
FONTBOUNDINGBOX {{ .Width }} {{ .Height }} 0 {{ .OffsetY }}
STARTPROPERTIES 7
FAMILY_NAME "Vintage {{ .Name }}"
PIXEL_SIZE {{ .Height }}
FONT_ASCENT {{ .Ascent }}
FONT_DESCENT {{ .Descent }}
CHARSET_REGISTRY "ISO10646"
CHARSET_ENCODING "1"
DEFAULT_CHAR {{ .DefaultChar }}
ENDPROPERTIES
CHARS {{ len .Glyphs }}
{{- range .Glyphs }}
STARTCHAR uni{{ printf "%04X" .Encoding }}
ENCODING {{ .Encoding }}
SWIDTH {{ $.SWidth }} 0
DWIDTH {{ $.Width }} 0
BBX {{ $.Width }} {{ $.Height }} 0 {{ $.OffsetY }}
BITMAP
{{- range .Rows }}
{{ . }}
{{- end }}
ENDCHAR
{{- end }}
ENDFONT
`
