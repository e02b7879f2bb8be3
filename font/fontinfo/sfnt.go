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
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
)

// SFNT gives access to the glyph names of a TrueType or OpenType font.
//
// If the font is used as a simple font, character codes are mapped to
// glyphs using the "cmap" table of the font.  Codes 0-255 are looked up
// directly, and if this fails, in the symbol range 0xF000-0xF0FF.
// If the font is used as a composite font, the glyph names are not used.
type SFNT struct {
	Font      *sfnt.Font
	Composite bool

	cmap     cmap.Subtable
	fontName string
}

// NewSFNT returns a new SFNT for the given font.
func NewSFNT(F *sfnt.Font, composite bool) *SFNT {
	res := &SFNT{
		Font:      F,
		Composite: composite,
		fontName:  F.PostScriptName(),
	}
	if F.CMapTable != nil {
		subtable, err := F.CMapTable.GetBest()
		if err == nil {
			res.cmap = subtable
		}
	}
	return res
}

// IsIdentityIndexed implements the [seehuhn.de/go/pdftext.Font] interface.
func (f *SFNT) IsIdentityIndexed() bool {
	return f.Composite
}

// GlyphName implements the [seehuhn.de/go/pdftext.Font] interface.
func (f *SFNT) GlyphName(code uint32) (string, bool) {
	gid := f.lookup(code)
	if gid == 0 {
		return "", false
	}
	name := f.Font.GlyphName(gid)
	if name == "" || name == ".notdef" {
		return "", false
	}
	return name, true
}

func (f *SFNT) lookup(code uint32) glyph.ID {
	if f.cmap == nil || code >= 256 {
		return 0
	}
	gid := f.cmap.Lookup(rune(code))
	if gid == 0 {
		gid = f.cmap.Lookup(0xF000 + rune(code))
	}
	return gid
}

// NameToUnicode implements the [seehuhn.de/go/pdftext.Font] interface.
func (f *SFNT) NameToUnicode(name string) rune {
	return NameToUnicode(name, f.fontName)
}
