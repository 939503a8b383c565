package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/clktmr/vintage/tools/bdf"
	"github.com/clktmr/vintage/tools/dump"
	"github.com/clktmr/vintage/tools/raw"
)

const usageString = `vintagefont is a tool for development of the vintage fonts.

Usage:

	%s <command> [arguments]

The commands are:

	raw      export the glyph atlases as raw 1bpp images
	dump     print glyphs as text art
	bdf      rasterize a TrueType font into a new font package
`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "raw":
		raw.Main(flag.Args())
	case "dump":
		dump.Main(flag.Args())
	case "bdf":
		bdf.Main(flag.Args())
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}
}
