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

package fontinfo

import (
	"seehuhn.de/go/postscript/type1"
)

// Type1 gives access to the glyph names of a Type 1 font.
type Type1 struct {
	Font *type1.Font

	// Differences, if non-nil, overrides the built-in encoding of the
	// font for individual codes.
	Differences map[byte]string
}

// NewType1 returns a new Type1 for the given font.
func NewType1(F *type1.Font) *Type1 {
	return &Type1{Font: F}
}

// IsIdentityIndexed implements the [seehuhn.de/go/pdftext.Font] interface.
func (f *Type1) IsIdentityIndexed() bool {
	return false
}

// GlyphName implements the [seehuhn.de/go/pdftext.Font] interface.
func (f *Type1) GlyphName(code uint32) (string, bool) {
	if code >= 256 {
		return "", false
	}

	name, ok := f.Differences[byte(code)]
	if !ok && f.Font.Outlines != nil && int(code) < len(f.Font.Encoding) {
		name = f.Font.Encoding[code]
	}
	if name == "" || name == ".notdef" {
		return "", false
	}
	return name, true
}

// NameToUnicode implements the [seehuhn.de/go/pdftext.Font] interface.
func (f *Type1) NameToUnicode(name string) rune {
	var fontName string
	if f.Font.FontInfo != nil {
		fontName = f.Font.FontInfo.FontName
	}
	return NameToUnicode(name, fontName)
}
