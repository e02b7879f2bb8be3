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

// Package pua assigns private use code points to glyph codes.
//
// Glyphs for which no Unicode text is known are mapped into the three
// Private Use Areas of Unicode.  The mapping is a pure function of the
// glyph code: code 0 maps to U+E000, and codes which do not fit into the
// Basic Multilingual Plane area continue in plane 15 and then in plane 16.
// Since glyph codes are only meaningful within one font, callers must use
// a separate code space for each font.
package pua

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// The three Private Use Areas of Unicode.
const (
	FirstBMP     rune = 0xE000
	LastBMP      rune = 0xF8FF
	FirstPlane15 rune = 0xF0000
	LastPlane15  rune = 0xFFFFD
	FirstPlane16 rune = 0x100000
	LastPlane16  rune = 0x10FFFD
)

// Logger receives the diagnostic which is emitted when all private use
// code points have been used up.
//
// A [tracing.Trace] from github.com/npillmayer/schuko can be used here.
type Logger interface {
	Errorf(format string, args ...interface{})
}

// Map returns the private use code point for the given glyph code.
//
// The second return value is false if the code is too large for the
// private use areas.  In this case the returned value is the result of the
// same computation, which lies outside of the valid Unicode range.  Such
// values must be read as unsigned 32-bit numbers, via uint32(r).  They keep
// increasing with the code and saturate at 0xFFFFFFFF.
//
// Because each overflow is re-based onto the start of the next area, the
// first code point of plane 15 and of plane 16 is never returned.
func Map(code uint32) (rune, bool) {
	u := uint64(code) + uint64(FirstBMP)
	if u > uint64(LastBMP) {
		u = (u - uint64(LastBMP)) + uint64(FirstPlane15)
		if u > uint64(LastPlane15) {
			u = (u - uint64(LastPlane15)) + uint64(FirstPlane16)
			if u > uint64(LastPlane16) {
				if u > math.MaxUint32 {
					u = math.MaxUint32
				}
				return rune(uint32(u)), false
			}
		}
	}
	return rune(u), true
}

// Allocate returns the private use code point for the given glyph code.
// If the private use areas are exhausted, a warning is sent to log and the
// out-of-range value computed by [Map] is returned.
// If log is nil, the "pdftext" tracer is used.
func Allocate(code uint32, log Logger) rune {
	u, ok := Map(code)
	if !ok {
		if log == nil {
			log = tracer()
		}
		log.Errorf("all private use code points are used (glyph code %d)", code)
	}
	return u
}

// Contains reports whether r lies in one of the three Private Use Areas.
func Contains(r rune) bool {
	return r >= FirstBMP && r <= LastBMP ||
		r >= FirstPlane15 && r <= LastPlane15 ||
		r >= FirstPlane16 && r <= LastPlane16
}

func tracer() tracing.Trace {
	return tracing.Select("pdftext")
}
