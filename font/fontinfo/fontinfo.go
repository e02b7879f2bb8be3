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

// Package fontinfo implements the [seehuhn.de/go/pdftext.Font] interface
// for different kinds of fonts.
//
// Simple fonts select glyphs by name, via an encoding vector of 256
// entries.  Composite fonts select glyphs by CID or glyph index; for these
// the glyph names carry no information and [Identity] should be used.
package fontinfo

import (
	"seehuhn.de/go/postscript/type1/names"

	"seehuhn.de/go/pdftext/ligature"
)

// NameToUnicode maps a glyph name to a single code point, using the Adobe
// Glyph List and the conventions for names like "uni0041" or "f_f_i".
//
// Names which stand for two or three characters are recomposed into a
// ligature, if Unicode has one.  If the name cannot be mapped to a single
// code point, 0 is returned.
// The font name selects font-specific glyph lists, for example the one for
// ZapfDingbats.  It may be empty.
func NameToUnicode(name, fontName string) rune {
	if name == "" || name == ".notdef" {
		return 0
	}
	rr := []rune(names.ToUnicode(name, fontName))
	switch len(rr) {
	case 1:
		return rr[0]
	case 2, 3:
		if r, ok := ligature.LookupRunes(rr); ok {
			return r
		}
	}
	return 0
}
