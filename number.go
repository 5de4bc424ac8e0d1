// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usvg

import (
	"strconv"

	"github.com/goki/mat32"
)

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}

func (s *Stream) skipDigits() {
	s.SkipBytes(isDigitByte)
}

// ParseNumber parses an SVG number: optional sign, integer and fraction
// digits, optional exponent. Leading whitespace is skipped. Fails with
// InvalidNumber at the character position where the number started,
// including when the result is not finite.
func (s *Stream) ParseNumber() (float32, *Error) {
	s.SkipSpaces()
	start := s.pos
	n, ok := s.parseNumberImpl()
	if !ok {
		return 0, errPos(InvalidNumber, s.calcCharPosAt(start))
	}
	return n, nil
}

func (s *Stream) parseNumberImpl() (float32, bool) {
	if s.AtEnd() {
		return 0, false
	}
	start := s.pos

	b := s.text[s.pos]
	if b != '.' && b != '-' && b != '+' && !isDigitByte(b) {
		return 0, false
	}
	if b == '+' || b == '-' {
		s.pos++
	}
	s.skipDigits()
	if !s.AtEnd() && s.text[s.pos] == '.' {
		s.pos++
		s.skipDigits()
	}
	if !s.AtEnd() && (s.text[s.pos] == 'e' || s.text[s.pos] == 'E') && s.pos+1 < len(s.text) {
		switch s.text[s.pos+1] {
		case 'm', 'x':
			// an 'em'/'ex' unit suffix, not an exponent
		default:
			s.pos++
			if !s.AtEnd() && (s.text[s.pos] == '+' || s.text[s.pos] == '-') {
				s.pos++
			}
			s.skipDigits()
		}
	}

	n, err := strconv.ParseFloat(s.SliceBack(start), 32)
	if err != nil {
		return 0, false
	}
	n32 := float32(n)
	if mat32.IsNaN(n32) || mat32.IsInf(n32, 0) {
		return 0, false
	}
	return n32, true
}

// parseListSeparator consumes a single optional comma.
func (s *Stream) parseListSeparator() {
	if b, err := s.CurrByte(); err == nil && b == ',' {
		s.pos++
	}
}

// ParseListNumber parses a number followed by an optional list separator
// (whitespace and/or a single comma).
func (s *Stream) ParseListNumber() (float32, *Error) {
	n, err := s.ParseNumber()
	if err != nil {
		return 0, err
	}
	s.SkipSpaces()
	s.parseListSeparator()
	return n, nil
}

// ParseNumber parses text as a single number, requiring that only
// trailing whitespace remains afterwards; any other trailing content
// fails with UnexpectedData at the offending character position.
func ParseNumber(text string) (float32, *Error) {
	s := NewStream(text)
	n, err := s.ParseNumber()
	if err != nil {
		return 0, err
	}
	s.SkipSpaces()
	if !s.AtEnd() {
		return 0, errPos(UnexpectedData, s.CalcCharPos())
	}
	return n, nil
}
