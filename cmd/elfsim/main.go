// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/term"

	"github.com/ezrec/elfsim/config"
	"github.com/ezrec/elfsim/solver"
	"github.com/ezrec/elfsim/translate"
)

// Glyph sets for the CRT frame.
var glyphSets = map[string][2]rune{
	"ascii": {'#', '.'},
	"block": {'█', ' '},
}

// writeImage saves the frame as PNG, or BMP for a .bmp file name.
func writeImage(name string, img image.Image) (err error) {
	ouf, err := os.Create(name)
	if err != nil {
		return
	}
	defer func() {
		cerr := ouf.Close()
		if err == nil {
			err = cerr
		}
	}()

	if strings.EqualFold(filepath.Ext(name), ".bmp") {
		err = bmp.Encode(ouf, img)
	} else {
		err = png.Encode(ouf, img)
	}

	return
}

func main() {
	var day int
	var input string
	var script string
	var glyphs string
	var picture string
	var scale int
	var verbose bool
	var lang string

	flag.IntVar(&day, "d", solver.Latest(), "Day of the puzzle to solve")
	flag.StringVar(&input, "i", "-", "Puzzle input")
	flag.StringVar(&script, "c", "", ".star configuration file to use")
	flag.StringVar(&glyphs, "g", "auto", "CRT glyphs: auto, ascii, or block")
	flag.StringVar(&picture, "p", "", "Save the CRT frame to a .png or .bmp file")
	flag.IntVar(&scale, "s", 8, "CRT image pixel scale")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "l", "", "Message locale (default: from the environment)")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		err := translate.SetLocale(lang)
		if err != nil {
			log.Fatalf("%v: %v", lang, err)
		}
	}

	run := solver.NewRunner()
	run.Verbose = verbose

	if len(script) != 0 {
		inf, err := os.Open(script)
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}
		run.Config, err = config.Load(script, inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}
	}

	switch glyphs {
	case "auto":
		// Only a configuration script may override the default glyphs.
		if len(script) == 0 && term.IsTerminal(int(os.Stdout.Fd())) {
			set := glyphSets["block"]
			run.Config.Lit, run.Config.Blank = set[0], set[1]
		}
	default:
		set, ok := glyphSets[glyphs]
		if !ok {
			log.Fatalf("%v: unknown glyph set %q", os.Args[0], glyphs)
		}
		run.Config.Lit, run.Config.Blank = set[0], set[1]
	}

	var inf io.Reader
	if input == "-" {
		inf = os.Stdin
	} else {
		file, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer file.Close()
		inf = file
	}

	answer, err := run.Run(day, inf)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	fmt.Printf("Part 1: %v\n", answer.Part1)
	if strings.Contains(answer.Part2, "\n") {
		fmt.Printf("Part 2:\n%v\n", answer.Part2)
	} else {
		fmt.Printf("Part 2: %v\n", answer.Part2)
	}

	if len(picture) != 0 {
		if answer.Display == nil {
			log.Fatalf("%v: day %d draws no frame", picture, day)
		}
		err = writeImage(picture, answer.Display.Image(scale))
		if err != nil {
			log.Fatalf("%v: %v", picture, err)
		}
	}
}
