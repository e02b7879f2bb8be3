// seehuhn.de/go/pdftext - extract Unicode text from PDF glyphs
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

// Glyphmap shows the Unicode code points chosen for the character codes
// of a font.
//
// Usage:
//
//	glyphmap [options] code...
//
// Codes can be given in decimal or, with a "0x" prefix, in hexadecimal.
// If no codes are given, all codes 0-255 are shown.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/flopp/go-findfont"
	"golang.org/x/term"
	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/pdftext"
	"seehuhn.de/go/pdftext/extract"
	"seehuhn.de/go/pdftext/font/fontinfo"
	"seehuhn.de/go/pdftext/font/tounicode"
	"seehuhn.de/go/pdftext/ligature"
	"seehuhn.de/go/pdftext/pua"
)

func main() {
	fontFile := flag.String("font", "", "font file (.ttf, .otf, .pfa, .pfb)")
	fontName := flag.String("name", "", "name of an installed system font")
	composite := flag.Bool("cid", false, "treat the font as a CID-keyed font")
	cmapFile := flag.String("tounicode", "", "ToUnicode CMap with text hints")
	outFile := flag.String("o", "", "write the resolved mapping as a ToUnicode CMap")
	list := flag.Bool("list", false, "list the known ligatures and exit")
	flag.Parse()

	if *list {
		listLigatures(os.Stdout)
		return
	}

	if *fontName != "" {
		path, err := findfont.Find(*fontName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error locating font %q: %v\n", *fontName, err)
			os.Exit(1)
		}
		*fontFile = path
	}

	var F pdftext.Font
	if *fontFile != "" {
		var err error
		F, err = fontinfo.Load(*fontFile, *composite)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading font: %v\n", err)
			os.Exit(1)
		}
	} else if *composite {
		F = fontinfo.Identity{}
	}

	var hints extract.Hints
	if *cmapFile != "" {
		fd, err := os.Open(*cmapFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening CMap: %v\n", err)
			os.Exit(1)
		}
		info, err := tounicode.Read(fd)
		fd.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading CMap: %v\n", err)
			os.Exit(1)
		}
		hints = info
	}

	codes, err := parseCodes(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	codeBytes := 1
	if *composite {
		codeBytes = 2
	}
	d := extract.NewDecoder(F, hints, &extract.Options{CodeBytes: codeBytes})

	showGlyph := term.IsTerminal(int(os.Stdout.Fd()))
	for _, code := range codes {
		r := d.Code(code)
		printCode(os.Stdout, code, r, showGlyph)
	}

	if *outFile != "" {
		err = writeCMap(*outFile, d)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CMap: %v\n", err)
			os.Exit(1)
		}
	}
}

func parseCodes(args []string) ([]uint32, error) {
	if len(args) == 0 {
		codes := make([]uint32, 256)
		for i := range codes {
			codes[i] = uint32(i)
		}
		return codes, nil
	}

	codes := make([]uint32, 0, len(args))
	for _, arg := range args {
		x, err := strconv.ParseUint(arg, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid code %q", arg)
		}
		codes = append(codes, uint32(x))
	}
	return codes, nil
}

func printCode(w io.Writer, code uint32, r rune, showGlyph bool) {
	var name string
	if pua.Contains(r) {
		name = "<private use>"
	} else {
		name = runenames.Name(r)
	}
	if showGlyph && !pua.Contains(r) {
		fmt.Fprintf(w, "%5d\tU+%04X\t%c\t%s\n", code, r, r, name)
	} else {
		fmt.Fprintf(w, "%5d\tU+%04X\t%s\n", code, r, name)
	}
}

func listLigatures(w io.Writer) {
	for _, key := range ligature.Keys() {
		for _, r := range ligature.All(key) {
			fmt.Fprintf(w, "%s\tU+%04X\t%c\t%s\n", key, r, r, runenames.Name(r))
		}
	}
}

func writeCMap(fileName string, d *extract.Decoder) error {
	info := tounicode.FromMapping(d.CodeBytes(), d.Mapping())

	out, err := os.Create(fileName)
	if err != nil {
		return err
	}
	err = info.Write(out)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
