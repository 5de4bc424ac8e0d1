// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usvg

import (
	"strings"
	"unicode/utf8"

	"github.com/goki/ki/kit"
)

// Family is the type of a font family: one of the five generic CSS
// families, or Custom for a specifically named typeface.
type Family int32

const (
	// Custom is a specifically named font; the name lives in
	// [FontFamily.Name].
	Custom Family = iota

	// Serif is the generic serif family.
	Serif

	// SansSerif is the generic sans-serif family.
	SansSerif

	// Cursive is the generic cursive family.
	Cursive

	// Fantasy is the generic fantasy family.
	Fantasy

	// Monospace is the generic monospace family.
	Monospace

	FamilyN
)

var KiT_Family = kit.Enums.AddEnum(FamilyN, kit.NotBitFlag, nil)

// genericFamilies is the static lookup of the five reserved keywords.
// Matching is whole-token and case-sensitive: "Serif" is a named font,
// not a generic one.
var genericFamilies = map[string]Family{
	"serif":      Serif,
	"sans-serif": SansSerif,
	"cursive":    Cursive,
	"fantasy":    Fantasy,
	"monospace":  Monospace,
}

// FontFamily is one entry of a font-family list: a generic family, or a
// named typeface when Family is Custom. It is comparable, so it can be
// used directly as a map key.
type FontFamily struct {
	// Family is the generic family, or Custom for a named font.
	Family Family

	// Name is the typeface name; set only when Family is Custom, and
	// never empty in a FontFamily returned by the grammar.
	Name string
}

// Named returns a FontFamily for a specifically named typeface.
func Named(name string) FontFamily {
	return FontFamily{Family: Custom, Name: name}
}

// String renders the canonical keyword for a generic family, and the
// typeface name for a named one.
func (ff FontFamily) String() string {
	switch ff.Family {
	case Serif:
		return "serif"
	case SansSerif:
		return "sans-serif"
	case Cursive:
		return "cursive"
	case Fantasy:
		return "fantasy"
	case Monospace:
		return "monospace"
	}
	return ff.Name
}

// ParseFontFamilies parses a list of font families and generic families
// from a string. After the list, only trailing whitespace may remain;
// any other content fails with UnexpectedData at its character position.
// An empty input yields an empty list, not an error.
//
// A generic keyword is recognized on the leading unquoted ident of an
// entry, so a typeface literally named "serif" (matching is
// case-sensitive) cannot be expressed unquoted; quoting it is the only
// way to force a name.
func ParseFontFamilies(text string) ([]FontFamily, *Error) {
	s := NewStream(text)
	families, err := s.parseFontFamilies()
	if err != nil {
		return nil, err
	}
	s.SkipSpaces()
	if !s.AtEnd() {
		return nil, errPos(UnexpectedData, s.CalcCharPos())
	}
	return families, nil
}

// parseFontFamilies parses a font-family list without the trailing
// content requirement, so it can be embedded in a larger grammar such as
// the font shorthand, where the family list is one clause among several.
func (s *Stream) parseFontFamilies() ([]FontFamily, *Error) {
	var families []FontFamily

	for !s.AtEnd() {
		s.SkipSpaces()

		b, err := s.CurrByte()
		if err != nil {
			return nil, err
		}

		var family FontFamily
		if b == '\'' || b == '"' {
			// quoted names are taken verbatim, never keyword-matched
			name, qerr := s.ParseQuotedString()
			if qerr != nil {
				return nil, qerr
			}
			family = Named(name)
		} else {
			var idents []string
			generic := Custom
			for {
				c, sz := utf8.DecodeRuneInString(s.Chars())
				if sz == 0 || c == ',' {
					break
				}
				id, ierr := s.ParseIdent()
				if ierr != nil {
					return nil, ierr
				}
				s.SkipSpaces()
				if len(idents) == 0 {
					if g, ok := genericFamilies[id]; ok {
						generic = g
						break
					}
				}
				idents = append(idents, id)
			}
			if generic != Custom {
				family = FontFamily{Family: generic}
			} else {
				// unquoted multi-word names join with single spaces
				family = Named(strings.Join(idents, " "))
			}
		}

		families = append(families, family)

		if b, err := s.CurrByte(); err == nil {
			if b == ',' {
				s.Advance(1)
			} else {
				break
			}
		}
	}

	// drop empty names from ",," and stray trailing commas;
	// generic families are never dropped
	kept := families[:0]
	for _, f := range families {
		if f.Family != Custom || f.Name != "" {
			kept = append(kept, f)
		}
	}
	if len(kept) == 0 {
		return nil, nil
	}
	return kept, nil
}
