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

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"seehuhn.de/go/pdftext/pua"
)

// testFont is a simple font with glyph names given by an encoding vector.
type testFont struct {
	cid      bool
	names    map[uint32]string
	text     map[string]rune
	nameCall int
}

func (f *testFont) IsIdentityIndexed() bool {
	return f.cid
}

func (f *testFont) GlyphName(code uint32) (string, bool) {
	f.nameCall++
	name, ok := f.names[code]
	return name, ok
}

func (f *testFont) NameToUnicode(name string) rune {
	return f.text[name] // 0 if unknown
}

func newTestFont() *testFont {
	return &testFont{
		names: map[uint32]string{
			1: "A",
			2: "ffi",
			3: "foo",
		},
		text: map[string]rune{
			"A":   'A',
			"ffi": 0xFB03,
		},
	}
}

type recorder struct {
	msgs []string
}

func (r *recorder) Errorf(format string, args ...interface{}) {
	r.msgs = append(r.msgs, fmt.Sprintf(format, args...))
}

func private(code uint32) rune {
	r, _ := pua.Map(code)
	return r
}

func TestResolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pdftext")
	defer teardown()

	F := newTestFont()
	cases := []struct {
		name       string
		code       uint32
		candidates []rune
		want       rune
	}{
		{"no hint", 7, nil, private(7)},
		{"no hint large code", 0x1900, []rune{}, 0xF0001},
		{"single", 7, []rune{'x'}, 'x'},
		{"single non-BMP", 7, []rune{0x1F600}, 0x1F600},
		{"ligature ffi", 7, []rune{'f', 'f', 'i'}, 64259},
		{"digraph AE", 7, []rune{'A', 'E'}, 198},
		{"digraph ae", 7, []rune{'a', 'e'}, 230},
		{"digraph ss", 7, []rune{'s', 's'}, 223},
		{"digraph SS", 7, []rune{'S', 'S'}, 7838},
		{"unknown pair", 7, []rune{'x', 'y'}, private(7)},
		{"unknown triple", 1, []rune{'x', 'y', 'z'}, private(1)},
		{"illegal single, name", 1, []rune{0}, 'A'},
		{"illegal single, ligature name", 2, []rune{0xFFFD}, 0xFB03},
		{"illegal single, unknown name", 3, []rune{0}, private(3)},
		{"illegal single, no name", 9, []rune{0}, private(9)},
		{"illegal in pair", 1, []rune{'f', 0x01}, 'A'},
		{"illegal in triple", 2, []rune{'f', 'f', 0xD800}, 0xFB03},
		{"long hint", 1, []rune{'a', 'b', 'c', 'd'}, 'A'},
		{"long hint, no name", 9, []rune{'a', 'b', 'c', 'd'}, private(9)},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			got := Resolve(test.code, F, test.candidates)
			if got != test.want {
				t.Errorf("expected U+%04X, got U+%04X", test.want, got)
			}
		})
	}
}

func TestResolveIdentityIndexed(t *testing.T) {
	F := newTestFont()
	F.cid = true

	got := Resolve(1, F, []rune{0})
	if got != private(1) {
		t.Errorf("expected U+%04X, got U+%04X", private(1), got)
	}
	if F.nameCall != 0 {
		t.Error("glyph names must not be used for identity-indexed fonts")
	}

	got = Resolve(1, nil, []rune{'f', 0})
	if got != private(1) {
		t.Errorf("nil font: expected U+%04X, got U+%04X", private(1), got)
	}
}

// TestDirectHintSkipsFont checks that the font is only consulted if no
// usable hint exists.
func TestDirectHintSkipsFont(t *testing.T) {
	F := newTestFont()
	Resolve(1, F, []rune{'B'})
	Resolve(1, F, []rune{'f', 'i'})
	Resolve(1, F, []rune{'q', 'q'})
	Resolve(1, F, nil)
	if F.nameCall != 0 {
		t.Errorf("font consulted %d times", F.nameCall)
	}
}

func TestCustomIllegal(t *testing.T) {
	// treat 'x' as a placeholder
	R := New(&Options{
		IsIllegal: func(r rune) bool { return r == 'x' },
	})
	F := newTestFont()

	if got := R.Resolve(1, F, []rune{'x'}); got != 'A' {
		t.Errorf("expected 'A', got U+%04X", got)
	}
	// 0 is legal for this predicate
	if got := R.Resolve(1, F, []rune{0}); got != 0 {
		t.Errorf("expected U+0000, got U+%04X", got)
	}
	if got := R.Resolve(2, F, []rune{'f', 'x'}); got != 0xFB03 {
		t.Errorf("expected U+FB03, got U+%04X", got)
	}
}

func TestExhaustionWarning(t *testing.T) {
	log := &recorder{}
	R := New(&Options{Log: log})

	const code = 0x300000
	const want rune = 0x3EE704 // code + 0xE000 re-based twice

	got := R.Resolve(code, nil, nil)
	if got != want {
		t.Errorf("expected %#x, got %#x", want, got)
	}
	if len(log.msgs) != 1 {
		t.Errorf("expected one warning, got %d", len(log.msgs))
	}

	R.Resolve(5, nil, nil)
	if len(log.msgs) != 1 {
		t.Error("unexpected warning for small code")
	}
}

func TestDeterministic(t *testing.T) {
	F := newTestFont()
	inputs := [][]rune{nil, {'a'}, {'f', 'l'}, {'q', 'r'}, {0}, {'a', 0, 'b'}}
	for code := uint32(0); code < 4; code++ {
		for _, in := range inputs {
			a := Resolve(code, F, in)
			b := Resolve(code, F, in)
			if a != b {
				t.Errorf("%d %q: %x != %x", code, in, a, b)
			}
		}
	}
}

func TestIsIllegal(t *testing.T) {
	cases := []struct {
		r    rune
		want bool
	}{
		{0, true},
		{0x1F, true},
		{' ', false},
		{'A', false},
		{0x7F, true},
		{0xA0, true},
		{0xA1, false},
		{0xAD, true},
		{0xD800, true},
		{0xDFFF, true},
		{0xE000, false},
		{0xFB03, false},
		{0xFDD0, true},
		{0xFFFD, true},
		{0xFFFE, true},
		{0x1FFFF, true},
		{0x1F600, false},
		{0x10FFFD, false},
		{0x110000, true},
	}
	for _, test := range cases {
		if got := IsIllegal(test.r); got != test.want {
			t.Errorf("U+%04X: expected %t, got %t", test.r, test.want, got)
		}
	}
}
