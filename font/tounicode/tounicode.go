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

// Package tounicode reads and writes ToUnicode CMaps.
//
// A ToUnicode CMap associates zero or more code points with each character
// code of a font.  These are the hints which [seehuhn.de/go/pdftext.Resolver]
// turns into a single code point per glyph.
package tounicode

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// Info holds the information from a ToUnicode cmap.
//
// Character codes use CodeBytes bytes each.  Simple fonts use one byte,
// CID-keyed fonts normally use two.
type Info struct {
	Name      string
	CodeBytes int
	Singles   []Single
	Ranges    []Range
}

// Single specifies that character code Code represents the given unicode string.
type Single struct {
	Code  uint32
	Value []rune
}

func (s Single) String() string {
	return fmt.Sprintf("%d: %q", s.Code, string(s.Value))
}

// Range describes a range of character codes.
// First and Last are the first and last code points in the range.
// Values is a list of unicode strings.  If the list has length one, then the
// replacement character is incremented by one for each code point in the
// range.  Otherwise, the list must have the length Last-First+1, and specify
// the value for each code point in the range.
type Range struct {
	First  uint32
	Last   uint32
	Values [][]rune
}

func (r Range) String() string {
	ss := make([]string, len(r.Values))
	for i, v := range r.Values {
		ss[i] = string(v)
	}
	return fmt.Sprintf("%d-%d: %q", r.First, r.Last, ss)
}

// Lookup returns the code points associated with the given character code.
// The result is nil if the code is not mapped.
// The returned slice must not be modified by the caller.
func (info *Info) Lookup(code uint32) []rune {
	for _, r := range info.Ranges {
		if code < r.First || code > r.Last || len(r.Values) == 0 {
			continue
		}
		if len(r.Values) > 1 {
			if int(code-r.First) < len(r.Values) {
				return r.Values[code-r.First]
			}
			continue
		}
		base := r.Values[0]
		if len(base) == 0 {
			return base
		}
		rr := make([]rune, len(base))
		copy(rr, base)
		rr[len(rr)-1] += rune(code - r.First)
		return rr
	}
	for _, s := range info.Singles {
		if s.Code == code {
			return s.Value
		}
	}
	return nil
}

// makeName sets a unique name for the ToUnicode cmap.
func (info *Info) makeName() {
	var buf [binary.MaxVarintLen64]byte

	h := sha256.New()
	k := binary.PutVarint(buf[:], int64(info.CodeBytes))
	h.Write(buf[:k])

	k = binary.PutVarint(buf[:], int64(len(info.Singles)))
	h.Write(buf[:k])
	for _, s := range info.Singles {
		binary.Write(h, binary.LittleEndian, s.Code)
		k = binary.PutVarint(buf[:], int64(len(s.Value)))
		h.Write(buf[:k])
		binary.Write(h, binary.LittleEndian, s.Value)
	}

	k = binary.PutVarint(buf[:], int64(len(info.Ranges)))
	h.Write(buf[:k])
	for _, r := range info.Ranges {
		binary.Write(h, binary.LittleEndian, r.First)
		binary.Write(h, binary.LittleEndian, r.Last)
		k = binary.PutVarint(buf[:], int64(len(r.Values)))
		h.Write(buf[:k])
		for _, v := range r.Values {
			k = binary.PutVarint(buf[:], int64(len(v)))
			h.Write(buf[:k])
			binary.Write(h, binary.LittleEndian, v)
		}
	}

	sum := h.Sum(nil)
	info.Name = fmt.Sprintf("Seehuhn-%x", sum[:8])
}

// appendCode appends the big-endian representation of code to buf.
func (info *Info) appendCode(buf []byte, code uint32) []byte {
	for i := info.CodeBytes - 1; i >= 0; i-- {
		buf = append(buf, byte(code>>(8*i)))
	}
	return buf
}
