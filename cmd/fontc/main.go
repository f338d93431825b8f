// seehuhn.de/go/tinyvec - vector graphics for small displays
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command fontc converts a TrueType or OpenType font into the tinyvec
// outline font format.
//
// Usage:
//
//	fontc [flags] font.ttf
//
// Without -o, the output is written next to the input file, with the
// extension ".tvf".
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"seehuhn.de/go/tinyvec"
	"seehuhn.de/go/tinyvec/fontconv"
)

// charsets maps the names accepted by -charset to encodings.
var charsets = map[string]*charmap.Charmap{
	"latin1": charmap.ISO8859_1,
	"latin2": charmap.ISO8859_2,
	"latin5": charmap.ISO8859_9,
	"latin9": charmap.ISO8859_15,
	"cp437":  charmap.CodePage437,
	"cp1250": charmap.Windows1250,
	"cp1251": charmap.Windows1251,
	"cp1252": charmap.Windows1252,
	"koi8r":  charmap.KOI8R,
	"mac":    charmap.Macintosh,
}

func main() {
	var opt fontconv.Options
	var out, charset, extra string
	var verbose bool
	flag.StringVar(&out, "o", "", "Output file.")
	flag.IntVar(&opt.UnitsPerEm, "upem", fontconv.DefaultUnitsPerEm, "Font units per em of the converted font.")
	flag.StringVar(&charset, "charset", "ascii", "Character set: ascii, "+charsetNames()+".")
	flag.StringVar(&extra, "extra", "", "Additional characters to include.")
	flag.BoolVar(&verbose, "v", false, "Report characters missing from the font.")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: fontc [flags] font.ttf")
		flag.PrintDefaults()
		os.Exit(2)
	}
	in := flag.Arg(0)
	if out == "" {
		out = strings.TrimSuffix(in, filepath.Ext(in)) + ".tvf"
	}

	if charset != "ascii" {
		cm, ok := charsets[charset]
		if !ok {
			fmt.Fprintf(os.Stderr, "fontc: unknown character set %q\n", charset)
			os.Exit(2)
		}
		opt.Charset = cm
	}
	for _, r := range extra {
		opt.Runes = append(opt.Runes, r)
	}
	if opt.Charset == nil && opt.Runes != nil {
		// keep ASCII when only extra characters are given
		for r := rune(0x20); r < 0x7F; r++ {
			opt.Runes = append(opt.Runes, r)
		}
	}

	if verbose {
		tinyvec.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(in, out, &opt); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(in, out string, opt *fontconv.Options) error {
	src, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	data, err := fontconv.Convert(src, opt)
	if err != nil {
		return err
	}

	// check that the result can be read back
	f, err := tinyvec.ParseFont(data)
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("%s: %d glyphs in %d ranges, %d bytes\n",
		out, f.NumGlyphs(), len(f.Ranges()), len(data))
	return nil
}

func charsetNames() string {
	return strings.Join(slices.Sorted(maps.Keys(charsets)), ", ")
}
