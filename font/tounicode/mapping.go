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
	"bytes"
	"sort"

	"seehuhn.de/go/dag"
)

// GetMapping returns the mapping information from info.
func (info *Info) GetMapping() map[uint32][]rune {
	res := make(map[uint32][]rune)
	for _, s := range info.Singles {
		res[s.Code] = s.Value
	}
	for _, r := range info.Ranges {
		if len(r.Values) == 1 {
			val := r.Values[0]
			for code := r.First; code <= r.Last; code++ {
				res[code] = val
				if code == r.Last || len(val) == 0 {
					break
				}
				val = c(val)
				val[len(val)-1]++
			}
		} else {
			for code := r.First; code <= r.Last && int(code-r.First) < len(r.Values); code++ {
				res[code] = r.Values[code-r.First]
			}
		}
	}
	return res
}

func c(rr []rune) []rune {
	res := make([]rune, len(rr))
	copy(res, rr)
	return res
}

// FromMapping constructs a ToUnicode cmap from the given mapping.
// Character codes are written using codeBytes bytes each.
func FromMapping(codeBytes int, m map[uint32][]rune) *Info {
	info := &Info{
		CodeBytes: codeBytes,
	}
	info.SetMapping(m)
	info.makeName()
	return info
}

// SetMapping replaces the mapping information in info with the given mapping.
//
// Consecutive codes are combined into range entries where this makes the
// CMap shorter.
func (info *Info) SetMapping(m map[uint32][]rune) {
	if info.CodeBytes < 1 {
		info.CodeBytes = 1
	}

	entries := make([]entry, 0, len(m))
	for code, val := range m {
		if len(val) == 0 {
			continue
		}
		entries = append(entries, entry{code, val})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].code < entries[j].code
	})

	g := &encoder{
		info: info,
		mm:   entries,
	}
	ee, err := dag.ShortestPath[int16, uint32](g, len(entries))
	if err != nil {
		panic(err)
	}

	info.Singles = info.Singles[:0]
	info.Ranges = info.Ranges[:0]
	v := 0
	for _, e := range ee {
		if e == 0 {
			info.Singles = append(info.Singles, Single{
				Code:  entries[v].code,
				Value: entries[v].value,
			})
		} else if e < 0 {
			info.Ranges = append(info.Ranges, Range{
				First:  entries[v].code,
				Last:   entries[v-int(e)-1].code,
				Values: [][]rune{entries[v].value},
			})
		} else {
			var values [][]rune
			for i := v; i < v+int(e); i++ {
				values = append(values, entries[i].value)
			}
			info.Ranges = append(info.Ranges, Range{
				First:  entries[v].code,
				Last:   entries[v+int(e)-1].code,
				Values: values,
			})
		}
		v = g.To(v, e)
	}
}

type entry struct {
	code  uint32
	value []rune
}

// encoder describes the possible ways of writing a mapping as a graph.
// Vertex v corresponds to the state where entries 0, ..., v-1 have been
// written.  Edge 0 writes a single, edge -l writes l entries as an
// incrementing range, and edge +k writes k entries as an array range.
type encoder struct {
	info *Info
	mm   []entry
	bufR []rune
	buf0 []byte
	buf1 []byte
}

func (g *encoder) AppendEdges(ee []int16, v int) []int16 {
	if v < 0 || v >= len(g.mm) {
		return ee
	}

	m0 := g.mm[v]
	g.buf0 = g.info.appendCode(g.buf0[:0], m0.code)
	g.bufR = append(g.bufR[:0], m0.value...)

	// Find the largest l such that entries v, ..., v+l-1 have codes which only
	// differ in the last byte, and such that the difference between values and
	// codes is constant.
	l := 1
vertexLoop:
	for v+l < len(g.mm) && l < 256 {
		m1 := g.mm[v+l]
		g.buf1 = g.info.appendCode(g.buf1[:0], m1.code)
		if !bytes.Equal(g.buf0[:len(g.buf0)-1], g.buf1[:len(g.buf1)-1]) {
			break
		}
		if len(g.bufR) != len(m1.value) {
			break
		}
		for i := range g.bufR {
			if i < len(g.bufR)-1 {
				if g.bufR[i] != m1.value[i] {
					break vertexLoop
				}
			} else {
				if m1.code-m0.code != uint32(m1.value[i]-g.bufR[i]) {
					break vertexLoop
				}
			}
		}
		l++
	}
	if l > 1 {
		ee = append(ee, int16(-l))
	} else {
		ee = append(ee, 0)
	}

	// Find the largest k such that entries v, ..., v+k-1 have consecutive codes,
	// and the codes only differ in the last byte.
	k := 1
	for v+k < len(g.mm) && k < 256 && int(g.mm[v+k].code) == int(m0.code)+k {
		g.buf1 = g.info.appendCode(g.buf1[:0], g.mm[v+k].code)
		if !bytes.Equal(g.buf0[:len(g.buf0)-1], g.buf1[:len(g.buf1)-1]) {
			break
		}
		k++
	}
	if k > l {
		ee = append(ee, int16(k))
	}

	return ee
}

func (g *encoder) Length(v int, e int16) uint32 {
	// For simplicity we ignore the cost of the "begin...end" operators.
	// For simplicity we assume all runes are in the BMP.

	codeLen := 2*uint32(g.info.CodeBytes) + 2 // "<xx>"
	cost := uint32(0)
	if e == 0 {
		cost += codeLen + 1                      // "<xx> "
		cost += 4*uint32(len(g.mm[v].value)) + 3 // "<xxxx>\n"
	} else if e < 0 {
		cost += 2*codeLen + 2                    // "<xx> <xx> "
		cost += 4*uint32(len(g.mm[v].value)) + 3 // "<xxxx>\n"
	} else {
		cost += 2*codeLen + 4 // "<xx> <xx> []"
		for i := v; i < v+int(e); i++ {
			cost += 4*uint32(len(g.mm[i].value)) + 3 // "<xxxx> "
		}
	}

	return cost
}

func (g *encoder) To(v int, e int16) int {
	if e == 0 {
		return v + 1
	} else if e < 0 {
		return v - int(e)
	}
	return v + int(e)
}
