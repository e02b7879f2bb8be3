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
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/postscript/type1"
	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/pdftext"
)

// InvalidFontError indicates a problem with font data.
type InvalidFontError struct {
	SubSystem string
	Reason    string
}

func (err *InvalidFontError) Error() string {
	return err.SubSystem + ": " + err.Reason
}

// Load reads a font file.  TrueType and OpenType fonts are recognised by
// the file name extensions ".ttf" and ".otf", Type 1 fonts by ".pfa",
// ".pfb" and ".t1".
//
// If composite is true, TrueType and OpenType fonts are treated as
// CID-keyed fonts.  Type 1 fonts are always simple fonts.
func Load(fileName string, composite bool) (pdftext.Font, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".ttf", ".otf":
		F, err := ReadSFNT(data, composite)
		if err != nil {
			return nil, err
		}
		return F, nil
	case ".pfa", ".pfb", ".t1":
		F, err := ReadType1(data)
		if err != nil {
			return nil, err
		}
		return F, nil
	default:
		return nil, &InvalidFontError{
			SubSystem: "fontinfo",
			Reason:    "unknown font file type " + ext,
		}
	}
}

// ReadSFNT decodes a TrueType or OpenType font.
func ReadSFNT(data []byte, composite bool) (*SFNT, error) {
	F, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, &InvalidFontError{
			SubSystem: "sfnt",
			Reason:    err.Error(),
		}
	}
	return NewSFNT(F, composite), nil
}

// ReadType1 decodes a Type 1 font.
func ReadType1(data []byte) (*Type1, error) {
	F, err := type1.Read(bytes.NewReader(data))
	if err != nil {
		return nil, &InvalidFontError{
			SubSystem: "type1",
			Reason:    err.Error(),
		}
	}
	return NewType1(F), nil
}
