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

// Package extract decodes the strings shown by a PDF font into text.
package extract

import (
	"sync"
	"unicode"

	"seehuhn.de/go/pdftext"
)

// Hints gives the candidate code points for a character code.
// [*seehuhn.de/go/pdftext/font/tounicode.Info] implements this interface.
type Hints interface {
	Lookup(code uint32) []rune
}

// Options allows to customize a [Decoder].
type Options struct {
	// CodeBytes is the number of bytes per character code.
	// The default is 1, which is correct for simple fonts.
	CodeBytes int

	// Resolver is used to choose the code point for each glyph.
	// If this is nil, a resolver with default options is used.
	Resolver *pdftext.Resolver
}

// Decoder converts PDF strings into text, for one font.
//
// Since private use code points are only unique within a font, a separate
// Decoder must be used for every font.  A Decoder can be used
// concurrently.
type Decoder struct {
	font      pdftext.Font
	hints     Hints
	codeBytes int
	res       *pdftext.Resolver

	mu   sync.Mutex
	seen map[uint32]rune
}

// NewDecoder returns a new Decoder for the given font.
// Both F and hints may be nil.
func NewDecoder(F pdftext.Font, hints Hints, opt *Options) *Decoder {
	if opt == nil {
		opt = &Options{}
	}
	d := &Decoder{
		font:      F,
		hints:     hints,
		codeBytes: opt.CodeBytes,
		res:       opt.Resolver,
		seen:      make(map[uint32]rune),
	}
	if d.codeBytes < 1 || d.codeBytes > 4 {
		d.codeBytes = 1
	}
	if d.res == nil {
		d.res = pdftext.New(nil)
	}
	return d
}

// Code returns the code point for a single character code.
func (d *Decoder) Code(code uint32) rune {
	d.mu.Lock()
	defer d.mu.Unlock()

	if r, ok := d.seen[code]; ok {
		return r
	}

	var candidates []rune
	if d.hints != nil {
		candidates = d.hints.Lookup(code)
	}
	r := d.res.Resolve(code, d.font, candidates)
	d.seen[code] = r
	return r
}

// Decode converts a PDF string into text.  Every complete character code
// contributes exactly one code point.  Incomplete codes at the end of s
// are represented by [unicode.ReplacementChar].
func (d *Decoder) Decode(s []byte) string {
	res := make([]rune, 0, len(s)/d.codeBytes+1)
	for len(s) >= d.codeBytes {
		var code uint32
		for _, b := range s[:d.codeBytes] {
			code = code<<8 | uint32(b)
		}
		s = s[d.codeBytes:]
		res = append(res, d.Code(code))
	}
	if len(s) > 0 {
		res = append(res, unicode.ReplacementChar)
	}
	return string(res)
}

// Mapping returns the code points for all character codes decoded so far.
// The result can be passed to
// [seehuhn.de/go/pdftext/font/tounicode.FromMapping].
func (d *Decoder) Mapping() map[uint32][]rune {
	d.mu.Lock()
	defer d.mu.Unlock()

	res := make(map[uint32][]rune, len(d.seen))
	for code, r := range d.seen {
		res[code] = []rune{r}
	}
	return res
}

// CodeBytes returns the number of bytes per character code.
func (d *Decoder) CodeBytes() int {
	return d.codeBytes
}
