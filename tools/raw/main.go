// Package raw implements the raw command, which exports the glyph atlases in
// the packed format of the historical font files.
package raw

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/sigurn/crc8"

	"github.com/clktmr/vintage"
	"github.com/clktmr/vintage/fonts"
)

var (
	flags = flag.NewFlagSet("raw", flag.ExitOnError)

	outdir = flags.String("o", ".", "output directory")
)

const usageString = `Glyph atlas to raw 1bpp image exporter.

Writes font<W>x<H>_1bpp.raw for every font: one bit per pixel, most
significant bit first, rows padded to full bytes.

Usage: %s [flags]

`

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "raw")
	flags.PrintDefaults()
}

var table = crc8.MakeTable(crc8.CRC8)

// Checksum returns the CRC-8 of the atlas pixels.
func Checksum(a *fonts.Atlas) uint8 {
	return crc8.Checksum(a.Pix, table)
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() != 0 {
		flags.Usage()
		os.Exit(1)
	}

	if err := os.MkdirAll(*outdir, 0775); err != nil {
		log.Fatalln(err)
	}

	for _, f := range vintage.Fonts() {
		name := filepath.Join(*outdir, fmt.Sprintf("font%s_1bpp.raw", f.Name))
		if err := os.WriteFile(name, f.Atlas.Pix, 0664); err != nil {
			log.Fatalln(err)
		}
		b := f.Atlas.Bounds()
		fmt.Printf("%-6s stride %4d  %5dx%-3d  %6d bytes  crc8 %02x\n",
			f.Name, f.Atlas.Stride, b.Dx(), b.Dy(), len(f.Atlas.Pix), Checksum(f.Atlas))
	}
}
