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
	"slices"

	"seehuhn.de/go/pdftext/ligature"
	"seehuhn.de/go/pdftext/pua"
)

// Font gives access to the glyph names of a font.
//
// Implementations for common font formats can be found in
// [seehuhn.de/go/pdftext/font/fontinfo].
type Font interface {
	// IsIdentityIndexed reports whether character codes select glyphs
	// directly, so that glyph names carry no information.  This is the case
	// for CID-keyed fonts.
	IsIdentityIndexed() bool

	// GlyphName returns the name of the glyph selected by the given code.
	GlyphName(code uint32) (string, bool)

	// NameToUnicode maps a glyph name to a code point.  If the name is not
	// known, an illegal code point (normally 0) is returned.
	NameToUnicode(name string) rune
}

// Resolver chooses the code point to emit for a glyph.
//
// A Resolver has no mutable state and can be used concurrently.
type Resolver struct {
	isIllegal func(rune) bool
	log       pua.Logger
}

// New returns a new Resolver.
// If opt is nil, the default options are used.
func New(opt *Options) *Resolver {
	opt = MergeOptions(opt, defaultOptions)
	return &Resolver{
		isIllegal: opt.IsIllegal,
		log:       opt.Log,
	}
}

// Resolve returns the code point to emit for the glyph selected by code.
//
// The candidates are the code points which a hint source, typically a
// ToUnicode CMap, associates with the code.  The returned value is taken
// from the candidates if these are usable, otherwise from the glyph name,
// and as a last resort from the private use areas.
//
// F may be nil, in which case no glyph names are available.
func (r *Resolver) Resolve(code uint32, F Font, candidates []rune) rune {
	switch len(candidates) {
	case 0:
		return r.Private(code)
	case 1:
		if !r.isIllegal(candidates[0]) {
			return candidates[0]
		}
	case 2, 3:
		if !slices.ContainsFunc(candidates, r.isIllegal) {
			if lig, ok := ligature.LookupRunes(candidates); ok {
				return lig
			}
			// An unknown multi-character text is not trusted partially.
			return r.Private(code)
		}
	}
	return r.fromFont(code, F)
}

// fromFont tries to derive the code point from the glyph name.  This
// recovers ligatures which a ToUnicode CMap fails to cover.
func (r *Resolver) fromFont(code uint32, F Font) rune {
	if F != nil && !F.IsIdentityIndexed() {
		if name, ok := F.GlyphName(code); ok {
			u := F.NameToUnicode(name)
			if !r.isIllegal(u) {
				return u
			}
		}
	}
	return r.Private(code)
}

// Private returns the private use code point for the given code.
// See [pua.Allocate] for details.
func (r *Resolver) Private(code uint32) rune {
	return pua.Allocate(code, r.log)
}

var defaultResolver = New(nil)

// Resolve uses a Resolver with default options to find the code point
// for a glyph.  See [Resolver.Resolve] for details.
func Resolve(code uint32, F Font, candidates []rune) rune {
	return defaultResolver.Resolve(code, F, candidates)
}
