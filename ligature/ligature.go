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

// Package ligature maps spelled-out ligatures and digraphs, like "ffi" or
// "IJ", to the corresponding precomposed Unicode character.
//
// Lookups are exact and case-sensitive.  Some spellings have more than
// one precomposed form in Unicode.  For these, [Lookup] returns the
// character listed first in the table below and [All] returns every
// candidate.
package ligature

import (
	"slices"

	"golang.org/x/exp/maps"
)

type entry struct {
	key string
	r   rune
}

var entries = []entry{
	{"AE", 198},    // Æ
	{"TH", 222},    // Þ
	{"ss", 223},    // ß
	{"ae", 230},    // æ
	{"th", 254},    // þ
	{"IJ", 306},    // Ĳ
	{"ij", 307},    // ĳ
	{"OE", 338},    // Œ
	{"oe", 339},    // œ
	{"hv", 405},    // ƕ
	{"OI", 418},    // Ƣ
	{"oi", 419},    // ƣ
	{"DZ", 452},    // Ǆ
	{"Dz", 453},    // ǅ
	{"dz", 454},    // ǆ
	{"LJ", 455},    // Ǉ
	{"Lj", 456},    // ǈ
	{"lj", 457},    // ǉ
	{"NJ", 458},    // Ǌ
	{"Nj", 459},    // ǋ
	{"nj", 460},    // ǌ
	{"DZ", 497},    // Ǳ
	{"Dz", 498},    // ǲ
	{"dz", 499},    // ǳ
	{"db", 568},    // ȸ
	{"qp", 569},    // ȹ
	{"OE", 630},    // ɶ
	{"dz", 675},    // ʣ
	{"dz", 677},    // ʥ
	{"ts", 678},    // ʦ
	{"ls", 682},    // ʪ
	{"lz", 683},    // ʫ
	{"AE", 7425},   // ᴁ
	{"ue", 7531},   // ᵫ
	{"th", 7546},   // ᵺ
	{"SS", 7838},   // ẞ
	{"LL", 7930},   // Ỻ
	{"ll", 7931},   // ỻ
	{"ff", 64256},  // ﬀ
	{"fi", 64257},  // ﬁ
	{"fl", 64258},  // ﬂ
	{"ffi", 64259}, // ﬃ
	{"ffl", 64260}, // ﬄ
	{"st", 64261},  // ﬅ
	{"st", 64262},  // ﬆ
}

// table holds the first entry for each spelling.
var table = func() map[string]rune {
	m := make(map[string]rune, len(entries))
	for _, e := range entries {
		if _, seen := m[e.key]; !seen {
			m[e.key] = e.r
		}
	}
	return m
}()

// Lookup returns the precomposed character for the given spelling.
// The second return value is false if key is not a known ligature.
func Lookup(key string) (rune, bool) {
	r, ok := table[key]
	return r, ok
}

// LookupRunes is like [Lookup], but takes the spelling as a sequence of
// code points.
func LookupRunes(rr []rune) (rune, bool) {
	if len(rr) < 2 || len(rr) > 3 {
		return 0, false
	}
	return Lookup(Key(rr))
}

// Key converts a sequence of code points into a lookup key.
// The code points are used in full, so that a non-ASCII character never
// matches an ASCII spelling: for example "\u0166\u0166\u0169" is not
// recognised as "ffi".
func Key(rr []rune) string {
	return string(rr)
}

// All returns all precomposed characters for the given spelling, in table
// order.  The result is nil if key is not a known ligature.
func All(key string) []rune {
	var res []rune
	for _, e := range entries {
		if e.key == key {
			res = append(res, e.r)
		}
	}
	return res
}

// Keys returns all known spellings in sorted order.
func Keys() []string {
	keys := maps.Keys(table)
	slices.Sort(keys)
	return keys
}
