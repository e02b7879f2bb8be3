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

// Package pdftext finds the Unicode text for glyphs shown by PDF fonts.
//
// For every character code, exactly one code point is produced.  The
// decision is made in the following order:
//
//   - If no hint is available, the code is mapped into the Unicode
//     Private Use Areas (see [seehuhn.de/go/pdftext/pua]).
//   - A single legal hint is used as it is.
//   - Two or three legal hints are recomposed into a precomposed ligature
//     or digraph (see [seehuhn.de/go/pdftext/ligature]).  If no such
//     character exists, the code is mapped into the Private Use Areas.
//   - Otherwise, the glyph name is looked up in the font and translated
//     to a code point.  If this fails, the code is mapped into the Private
//     Use Areas.
//
// Hints are typically read from a ToUnicode CMap using
// [seehuhn.de/go/pdftext/font/tounicode].  Fonts are accessed via the
// [Font] interface.  Adapters for TrueType, OpenType and Type 1 fonts are
// in [seehuhn.de/go/pdftext/font/fontinfo].
//
// Private use code points are only unique within one font.  The package
// [seehuhn.de/go/pdftext/extract] binds one font to each decoder.
package pdftext
