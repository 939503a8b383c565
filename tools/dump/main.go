// Package dump implements the dump command, which prints text as glyph art.
package dump

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/clktmr/vintage"
	"github.com/clktmr/vintage/fonts"
)

var (
	flags = flag.NewFlagSet("dump", flag.ExitOnError)

	fontName = flags.String("font", "6x8", "font to draw with: "+strings.Join(vintage.Names(), ", "))
	latin1   = flags.Bool("latin1", false, "input is ISO 8859-1 instead of UTF-8")
)

const usageString = `Glyph dumper.

Prints text drawn with one of the fonts, reading standard input if no text
is given.

Usage: %s [flags] [text]

`

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "dump")
	flags.PrintDefaults()
}

// Render writes the glyphs at the given indices of f side by side, one text
// row per pixel row. Set pixels are '#', unset ones '.'.
func Render(w io.Writer, f *fonts.MonoFont, glyphs []byte) error {
	bw := bufio.NewWriter(w)
	for y := range f.CharacterSize.Y {
		for _, i := range glyphs {
			r := f.GlyphRegion(int(i))
			for x := r.Min.X; x < r.Max.X; x++ {
				if f.Atlas.BitAt(x, y) {
					bw.WriteByte('#')
				} else {
					bw.WriteByte('.')
				}
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	f, ok := vintage.Lookup(*fontName)
	if !ok {
		log.Fatalln("unknown font:", *fontName)
	}

	var r io.Reader = os.Stdin
	if flags.NArg() > 0 {
		r = strings.NewReader(strings.Join(flags.Args(), " "))
	}
	if *latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	text, err := io.ReadAll(r)
	if err != nil {
		log.Fatalln(err)
	}

	enc := fonts.Encoding(f).NewEncoder()
	for line := range strings.Lines(string(text)) {
		glyphs, err := enc.Bytes([]byte(strings.TrimRight(line, "\r\n")))
		if err != nil {
			log.Fatalln(err)
		}
		if err := Render(os.Stdout, f, glyphs); err != nil {
			log.Fatalln(err)
		}
	}
}
