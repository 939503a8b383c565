// Package bdf implements the bdf command, which rasterizes a scalable font
// into fixed size cells and writes a new font package.
package bdf

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/draw"
	"io"
	"log"
	"os"
	"path/filepath"
	"text/template"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/clktmr/vintage/fonts"
)

var (
	flags = flag.NewFlagSet("bdf", flag.ExitOnError)

	dpi      = flags.Float64("dpi", 72, "screen resolution in Dots Per Inch")
	hinting  = flags.String("hinting", "full", "none | vertical | full")
	size     = flags.Float64("size", 8, "font size in points")
	width    = flags.Int("width", 6, "character cell width in pixels")
	height   = flags.Int("height", 8, "character cell height in pixels")
	baseline = flags.Int("baseline", 6, "baseline row, counted from the top of the cell")
	ascii    = flags.Bool("ascii", false, "only map printable ASCII, no Latin-1")
	outdir   = flags.String("o", "fonts", "parent directory of the new package")
	fontfile string
)

const usageString = `TrueType font to monospace bitmap font converter.

Without a font file, basicfont.Face7x13 is converted.

Usage: %s [flags] [ttffile]

`

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "bdf")
	flags.PrintDefaults()
}

// Rasterize draws every glyph of m with face into its own cell of a new
// atlas. The glyphs are centered horizontally and clipped to their cell.
func Rasterize(face font.Face, m fonts.GlyphMapping, size image.Point, baseline int) *fonts.Atlas {
	atlas := fonts.NewAtlas(size.X*m.Len(), size.Y)
	for i := range m.Len() {
		r := m.Rune(i)
		cell := image.Rect(i*size.X, 0, (i+1)*size.X, size.Y)
		d := font.Drawer{
			Dst:  atlas.SubImage(cell).(draw.Image),
			Src:  image.Opaque,
			Face: face,
		}
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		offset := (fixed.I(size.X) - adv) / 2
		d.Dot = fixed.Point26_6{X: fixed.I(cell.Min.X) + offset, Y: fixed.I(baseline + 1)}
		d.DrawString(string(r))
	}
	return atlas
}

// NewFont returns a font rasterized from face with decorations placed
// relative to the baseline.
func NewFont(face font.Face, m fonts.GlyphMapping, size image.Point, baseline int) *fonts.MonoFont {
	thickness := max(1, size.Y/16)
	return &fonts.MonoFont{
		Name:          fmt.Sprintf("%dx%d", size.X, size.Y),
		Atlas:         Rasterize(face, m, size, baseline),
		CharacterSize: size,
		Baseline:      baseline,
		Strikethrough: fonts.DecorationDimensions{Offset: (baseline + 1) / 2, Height: thickness},
		Underline:     fonts.DecorationDimensions{Offset: min(baseline+1, size.Y-thickness), Height: thickness},
		Mapping:       m,
	}
}

func loadFace() (face font.Face, name string) {
	if fontfile == "" {
		return basicfont.Face7x13, "basicfont"
	}

	fontBytes, err := os.ReadFile(fontfile)
	if err != nil {
		log.Fatalln(err)
	}
	f, err := opentype.Parse(fontBytes)
	if err != nil {
		log.Fatalln(err)
	}
	name, err = f.Name(nil, sfnt.NameIDFull)
	if err != nil {
		log.Fatalln(err)
	}

	options := &opentype.FaceOptions{
		Size: *size,
		DPI:  *dpi,
	}
	switch *hinting {
	default:
		options.Hinting = font.HintingNone
	case "vertical":
		options.Hinting = font.HintingVertical
	case "full":
		options.Hinting = font.HintingFull
	}
	face, err = opentype.NewFace(f, options)
	if err != nil {
		log.Fatalln(err)
	}
	return face, name
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	switch flags.NArg() {
	case 0:
	case 1:
		fontfile = flags.Arg(0)
	default:
		flags.Usage()
		os.Exit(1)
	}

	if *baseline < 0 || *baseline >= *height {
		log.Fatalln("baseline must be inside the character cell")
	}

	face, name := loadFace()
	defer face.Close()

	m := fonts.Latin1Mapping
	if *ascii {
		m = fonts.ASCIIMapping
	}
	f := NewFont(face, m, image.Pt(*width, *height), *baseline)

	pkgname := fmt.Sprintf("font%s", f.Name)
	directory := filepath.Join(*outdir, pkgname)
	if err := os.MkdirAll(directory, 0775); err != nil {
		log.Fatalln(err)
	}

	var buf bytes.Buffer
	if err := fonts.WriteBDF(&buf, f); err != nil {
		log.Fatalln(err)
	}
	bdfFile := filepath.Join(directory, pkgname+".bdf")
	if err := os.WriteFile(bdfFile, buf.Bytes(), 0664); err != nil {
		log.Fatalln(err)
	}
	log.Printf("wrote %s, %d glyphs", bdfFile, f.Mapping.Len())

	buf.Reset()
	err := WritePackage(&buf, f, pkgname, fmt.Sprintf("%s rasterized from %s", f.Name, name))
	if err != nil {
		log.Fatalln(err)
	}
	goFile := filepath.Join(directory, pkgname+".go")
	if err := os.WriteFile(goFile, buf.Bytes(), 0664); err != nil {
		log.Fatalln(err)
	}
	log.Printf("wrote %s", goFile)
}

var packageTemplate = template.Must(template.New("package").Parse(packageGoTemplate))

// WritePackage writes the Go source of a font package embedding the BDF
// source written by fonts.WriteBDF.
func WritePackage(w io.Writer, f *fonts.MonoFont, pkgname, comment string) error {
	mapping := "Latin1Mapping"
	if f.Mapping.Len() == fonts.ASCII.Len() {
		mapping = "ASCIIMapping"
	}
	return packageTemplate.Execute(w, struct {
		*fonts.MonoFont
		Package, Comment, Mapping string
	}{f, pkgname, comment, mapping})
}

const packageGoTemplate = `// {{ .Comment }}
package {{ .Package }}

import (
	_ "embed"
	"image"

	"github.com/clktmr/vintage/fonts"
	"github.com/embeddedgo/display/font/subfont"
)

const (
	Width    = {{ .CharacterSize.X }}
	Height   = {{ .CharacterSize.Y }}
	Baseline = {{ .Baseline }}
	Ascent   = Baseline + 1
)

//go:embed {{ .Package }}.bdf
var bdfData []byte

// Font is the {{ .Name }} font. It is shared and must not be modified.
var Font = &fonts.MonoFont{
	Name:          "{{ .Name }}",
	Atlas:         fonts.MustParseBDF(bdfData, fonts.{{ .Mapping }}, image.Pt(Width, Height)),
	CharacterSize: image.Pt(Width, Height),
	Baseline:      Baseline,
	Strikethrough: fonts.DecorationDimensions{Offset: {{ .Strikethrough.Offset }}, Height: {{ .Strikethrough.Height }}},
	Underline:     fonts.DecorationDimensions{Offset: {{ .Underline.Offset }}, Height: {{ .Underline.Height }}},
	Mapping:       fonts.{{ .Mapping }},
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
`
