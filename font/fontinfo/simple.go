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

// Simple is a simple font where only the encoding vector is known.
// This is the case for Type 3 fonts, and for fonts which are not embedded
// but have an /Encoding with /Differences.
type Simple struct {
	// Encoding maps character codes to glyph names.
	// Unused codes have the empty name or ".notdef".
	Encoding [256]string

	// FontName is the PostScript name of the font, if known.
	// This is used to select font-specific glyph names.
	FontName string
}

// IsIdentityIndexed implements the [seehuhn.de/go/pdftext.Font] interface.
func (f *Simple) IsIdentityIndexed() bool {
	return false
}

// GlyphName implements the [seehuhn.de/go/pdftext.Font] interface.
func (f *Simple) GlyphName(code uint32) (string, bool) {
	if code >= 256 {
		return "", false
	}
	name := f.Encoding[code]
	if name == "" || name == ".notdef" {
		return "", false
	}
	return name, true
}

// NameToUnicode implements the [seehuhn.de/go/pdftext.Font] interface.
func (f *Simple) NameToUnicode(name string) rune {
	return NameToUnicode(name, f.FontName)
}

// Identity represents a CID-keyed font.  Glyph names are never used.
type Identity struct{}

// IsIdentityIndexed implements the [seehuhn.de/go/pdftext.Font] interface.
func (Identity) IsIdentityIndexed() bool {
	return true
}

// GlyphName implements the [seehuhn.de/go/pdftext.Font] interface.
func (Identity) GlyphName(uint32) (string, bool) {
	return "", false
}

// NameToUnicode implements the [seehuhn.de/go/pdftext.Font] interface.
func (Identity) NameToUnicode(string) rune {
	return 0
}
