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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
	"seehuhn.de/go/postscript/type1"

	"seehuhn.de/go/pdftext"
	"seehuhn.de/go/pdftext/pua"
)

var (
	_ pdftext.Font = (*Simple)(nil)
	_ pdftext.Font = Identity{}
	_ pdftext.Font = (*Type1)(nil)
	_ pdftext.Font = (*SFNT)(nil)
)

func TestNameToUnicode(t *testing.T) {
	cases := []struct {
		name     string
		fontName string
		want     rune
	}{
		{"A", "", 'A'},
		{"space", "", ' '},
		{"Lcommaaccent", "", 0x013B},
		{"ffi", "", 0xFB03},
		{"f_f_i", "", 0xFB03},
		{"f_l", "", 0xFB02},
		{"uni00660069", "", 0xFB01},
		{"A_E", "", 198},
		{"x_y", "", 0},
		{"a_b_c_d", "", 0},
		{"foo", "", 0},
		{".notdef", "", 0},
		{"", "", 0},
		{"a7", "ZapfDingbats", 0x271E},
	}
	for _, test := range cases {
		got := NameToUnicode(test.name, test.fontName)
		if got != test.want {
			t.Errorf("%q: expected U+%04X, got U+%04X", test.name, test.want, got)
		}
	}
}

func TestSimple(t *testing.T) {
	F := &Simple{}
	F.Encoding['A'] = "A"
	F.Encoding[1] = "f_f_l"
	F.Encoding[2] = ".notdef"
	F.Encoding[3] = "g123"

	cases := []struct {
		code uint32
		want rune
	}{
		{'A', 'A'},
		{1, 0xFB04},
		{2, private(2)},
		{3, private(3)},
		{4, private(4)},
		{300, private(300)},
	}
	for _, test := range cases {
		// The zero hint is illegal, so the glyph name is used.
		got := pdftext.Resolve(test.code, F, []rune{0})
		if got != test.want {
			t.Errorf("%d: expected U+%04X, got U+%04X", test.code, test.want, got)
		}
	}
}

func TestSimpleFontName(t *testing.T) {
	F := &Simple{FontName: "ZapfDingbats"}
	F.Encoding[0x22] = "a7"
	require.Equal(t, rune(0x271E), pdftext.Resolve(0x22, F, []rune{0}))
}

func TestIdentity(t *testing.T) {
	var F Identity
	got := pdftext.Resolve('A', F, []rune{0})
	if got != private('A') {
		t.Errorf("expected U+%04X, got U+%04X", private('A'), got)
	}
}

func TestType1(t *testing.T) {
	encoding := make([]string, 256)
	for i := range encoding {
		encoding[i] = ".notdef"
	}
	encoding['a'] = "a"
	encoding['b'] = "b"
	encoding['c'] = "fi"

	F := NewType1(&type1.Font{
		FontInfo: &type1.FontInfo{FontName: "Test"},
		Outlines: &type1.Outlines{Encoding: encoding},
	})
	F.Differences = map[byte]string{'b': "ffl"}

	name, ok := F.GlyphName('a')
	require.True(t, ok)
	require.Equal(t, "a", name)

	name, ok = F.GlyphName('b')
	require.True(t, ok)
	require.Equal(t, "ffl", name)

	_, ok = F.GlyphName('d')
	require.False(t, ok)

	require.Equal(t, rune(0xFB01), pdftext.Resolve('c', F, []rune{0}))
	require.Equal(t, rune(0xFB04), pdftext.Resolve('b', F, []rune{0}))
	require.False(t, F.IsIdentityIndexed())
}

func TestSFNT(t *testing.T) {
	F, err := ReadSFNT(goregular.TTF, false)
	require.NoError(t, err)
	require.False(t, F.IsIdentityIndexed())

	name, ok := F.GlyphName('A')
	if !ok {
		t.Skip("font has no glyph names")
	}
	gid := F.cmap.Lookup('A')
	require.Equal(t, F.Font.GlyphName(gid), name)
	require.Equal(t, 'A', F.NameToUnicode(name))
	require.Equal(t, 'A', pdftext.Resolve('A', F, []rune{0}))

	_, ok = F.GlyphName(0x1234)
	require.False(t, ok)
}

func TestSFNTComposite(t *testing.T) {
	F, err := ReadSFNT(goregular.TTF, true)
	require.NoError(t, err)
	require.True(t, F.IsIdentityIndexed())
	require.Equal(t, private(36), pdftext.Resolve(36, F, []rune{0}))
	require.Equal(t, 'x', pdftext.Resolve(36, F, []rune{'x'}))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	fname := filepath.Join(dir, "goregular.ttf")
	require.NoError(t, os.WriteFile(fname, goregular.TTF, 0o644))
	F, err := Load(fname, false)
	require.NoError(t, err)
	require.IsType(t, &SFNT{}, F)

	other := filepath.Join(dir, "font.xyz")
	require.NoError(t, os.WriteFile(other, goregular.TTF, 0o644))
	_, err = Load(other, false)
	var fontErr *InvalidFontError
	require.True(t, errors.As(err, &fontErr))

	broken := filepath.Join(dir, "broken.ttf")
	require.NoError(t, os.WriteFile(broken, []byte("not a font"), 0o644))
	_, err = Load(broken, false)
	require.True(t, errors.As(err, &fontErr))

	_, err = Load(filepath.Join(dir, "missing.ttf"), false)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func private(code uint32) rune {
	r, _ := pua.Map(code)
	return r
}
