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
	"fmt"
	"io"
	"strings"
	"text/template"
	"unicode/utf16"
)

// Write writes the ToUnicode CMap to w.
func (info *Info) Write(w io.Writer) error {
	if info.CodeBytes < 1 || info.CodeBytes > 4 {
		return fmt.Errorf("tounicode: invalid code length %d", info.CodeBytes)
	}
	if !isPlainName(info.Name) {
		info.makeName()
	}

	tmpl := template.Must(template.New("tounicode").Funcs(template.FuncMap{
		"CodeSpace":    info.formatCodeSpace,
		"SingleChunks": singleChunks,
		"Single":       info.formatSingle,
		"RangeChunks":  rangeChunks,
		"Range":        info.formatRange,
	}).Parse(toUnicodeTmpl))
	return tmpl.Execute(w, info)
}

// isPlainName reports whether s can be written as a PostScript name
// without escaping.
func isPlainName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= 0x20 || c >= 0x7F || strings.IndexByte("()<>[]{}/%#", c) >= 0 {
			return false
		}
	}
	return true
}

func (info *Info) formatCode(code uint32) string {
	return fmt.Sprintf("<%X>", info.appendCode(nil, code))
}

func (info *Info) formatCodeSpace() string {
	high := uint32(1)<<(8*info.CodeBytes) - 1
	return info.formatCode(0) + " " + info.formatCode(high)
}

func formatText(rr []rune) string {
	var text []byte
	for _, x := range utf16.Encode(rr) {
		text = append(text, byte(x>>8), byte(x))
	}
	return fmt.Sprintf("<%X>", text)
}

func (info *Info) formatSingle(s Single) string {
	return info.formatCode(s.Code) + " " + formatText(s.Value)
}

func (info *Info) formatRange(r Range) string {
	a := info.formatCode(r.First)
	b := info.formatCode(r.Last)

	if len(r.Values) == 1 {
		return fmt.Sprintf("%s %s %s", a, b, formatText(r.Values[0]))
	}

	var texts []string
	for _, t := range r.Values {
		texts = append(texts, formatText(t))
	}
	return fmt.Sprintf("%s %s [%s]", a, b, strings.Join(texts, " "))
}

const chunkSize = 100

func singleChunks(x []Single) [][]Single {
	var res [][]Single
	for len(x) >= chunkSize {
		res = append(res, x[:chunkSize])
		x = x[chunkSize:]
	}
	if len(x) > 0 {
		res = append(res, x)
	}
	return res
}

func rangeChunks(x []Range) [][]Range {
	var res [][]Range
	for len(x) >= chunkSize {
		res = append(res, x[:chunkSize])
		x = x[chunkSize:]
	}
	if len(x) > 0 {
		res = append(res, x)
	}
	return res
}

var toUnicodeTmpl = `/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
/CMapType 2 def
/CMapName /{{.Name}} def
/CIDSystemInfo 3 dict dup begin
/Registry (Adobe) def
/Ordering (UCS) def
/Supplement 0 def
end def
1 begincodespacerange
{{CodeSpace}}
endcodespacerange
{{range SingleChunks .Singles -}}
{{len .}} beginbfchar
{{range . -}}
{{Single .}}
{{end -}}
endbfchar
{{end -}}
{{range RangeChunks .Ranges -}}
{{len .}} beginbfrange
{{range . -}}
{{Range .}}
{{end -}}
endbfrange
{{end -}}
endcmap
CMapName currentdict /CMap defineresource pop
end
end
`
