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

package pdftext

import "unicode"

// IsIllegal is the default test for code points which must not appear in
// extracted text.  It rejects control characters, the soft hyphen,
// surrogates, noncharacters, the replacement character and values outside
// the Unicode range.
func IsIllegal(r rune) bool {
	switch {
	case r < 0x20:
		return true
	case r >= 0x7F && r <= 0xA0:
		return true
	case r == 0xAD:
		return true
	case r >= 0xD800 && r <= 0xDFFF:
		return true
	case r >= 0xFDD0 && r <= 0xFDEF:
		return true
	case r&0xFFFE == 0xFFFE: // U+xxFFFE and U+xxFFFF in every plane
		return true
	case r == unicode.ReplacementChar:
		return true
	case r > unicode.MaxRune:
		return true
	}
	return false
}
