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

package tounicode

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf16"

	"seehuhn.de/go/postscript"
)

// Read reads a ToUnicode CMap.
//
// Malformed entries are skipped, so that as much as possible of a broken
// CMap can be used.  An error is returned only if the data is not a CMap
// at all.
func Read(r io.Reader) (*Info, error) {
	raw, err := postscript.ReadCMap(r)
	if err != nil {
		return nil, fmt.Errorf("tounicode: %w", err)
	}

	if tp, ok := raw["CMapType"].(postscript.Integer); ok && tp != 2 && tp != 0 {
		return nil, fmt.Errorf("%w: CMapType %d", ErrInvalid, tp)
	}
	codeMap, ok := raw["CodeMap"].(*postscript.CMapInfo)
	if !ok {
		return nil, ErrInvalid
	}

	info := &Info{}
	if name, ok := raw["CMapName"].(postscript.Name); ok {
		info.Name = string(name)
	}
	for _, r := range codeMap.CodeSpaceRanges {
		if len(r.Low) > info.CodeBytes {
			info.CodeBytes = len(r.Low)
		}
	}

	// after this point, ignore errors to allow best-effort decoding of
	// broken mappings.

	for _, c := range codeMap.BfChars {
		code, ok := info.getCode(c.Src)
		if !ok {
			continue
		}
		s, err := toRunes(c.Dst)
		if err != nil {
			continue
		}
		info.Singles = append(info.Singles, Single{
			Code:  code,
			Value: s,
		})
	}

rangeLoop:
	for _, r := range codeMap.BfRanges {
		low, ok := info.getCode(r.Low)
		if !ok {
			continue
		}
		high, ok := info.getCode(r.High)
		if !ok || high < low {
			continue
		}

		next := Range{
			First: low,
			Last:  high,
		}
		switch dst := r.Dst.(type) {
		case postscript.String:
			s, err := toRunes(dst)
			if err != nil {
				continue rangeLoop
			}
			next.Values = [][]rune{s}
		case postscript.Array:
			if len(dst) == 0 {
				continue rangeLoop
			}
			for _, obj := range dst {
				s, err := toRunes(obj)
				if err != nil {
					s = nil
				}
				next.Values = append(next.Values, s)
			}
		default:
			continue rangeLoop
		}
		info.Ranges = append(info.Ranges, next)
	}

	if info.CodeBytes == 0 {
		info.CodeBytes = 1
	}
	return info, nil
}

// getCode converts a big-endian byte sequence into a character code.
func (info *Info) getCode(s []byte) (uint32, bool) {
	if len(s) == 0 || len(s) > 4 {
		return 0, false
	}
	if len(s) > info.CodeBytes {
		info.CodeBytes = len(s)
	}
	var code uint32
	for _, b := range s {
		code = code<<8 | uint32(b)
	}
	return code, true
}

// toRunes decodes an UTF-16BE string.
func toRunes(obj postscript.Object) ([]rune, error) {
	dst, ok := obj.(postscript.String)
	if !ok || len(dst)%2 != 0 {
		return nil, ErrInvalid
	}
	buf := make([]uint16, 0, len(dst)/2)
	for i := 0; i < len(dst); i += 2 {
		buf = append(buf, uint16(dst[i])<<8|uint16(dst[i+1]))
	}
	return utf16.Decode(buf), nil
}

// ErrInvalid indicates that a ToUnicode CMap is malformed.
var ErrInvalid = errors.New("invalid ToUnicode CMap")
