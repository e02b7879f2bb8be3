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
	"seehuhn.de/go/pdftext/pua"
)

// Options allows to customize a [Resolver].
type Options struct {
	// IsIllegal reports whether a code point must not be emitted.
	// This is used both for hints and for code points derived from glyph
	// names.
	IsIllegal func(rune) bool

	// Log receives the warning which is emitted when the private use areas
	// are exhausted.  If this is nil, the warning goes to the schuko tracer
	// with key "pdftext".
	Log pua.Logger
}

var defaultOptions = &Options{
	IsIllegal: IsIllegal,
}

// MergeOptions takes an options struct and a default values struct and
// returns a new options struct with all fields set to the values from the
// options struct, except for the fields which are set to the zero value in
// the options struct.
// `opt` can be nil in which case the default values are returned.
// `defaultValues` must not be nil.
func MergeOptions(opt, defaultValues *Options) *Options {
	if opt == nil {
		return defaultValues
	}

	res := &Options{}
	if opt.IsIllegal != nil {
		res.IsIllegal = opt.IsIllegal
	} else {
		res.IsIllegal = defaultValues.IsIllegal
	}
	if opt.Log != nil {
		res.Log = opt.Log
	} else {
		res.Log = defaultValues.Log
	}
	return res
}
