// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usvg

import (
	"strings"
	"unicode/utf8"
)

// Stream is a forward-only cursor over an immutable text buffer, used to
// implement the hand-written attribute grammars. A Stream is created per
// parse call, mutated only by its own consuming operations, and discarded
// when the call ends. There is no backtracking primitive: the position
// only ever increases, and lookahead is done through the non-consuming
// [Stream.Chars] remainder before committing to a consuming operation.
type Stream struct {
	text string
	pos  int
}

// NewStream returns a new Stream over the given text.
func NewStream(text string) *Stream {
	return &Stream{text: text}
}

// Pos returns the current byte offset into the text.
func (s *Stream) Pos() int { return s.pos }

// AtEnd reports whether the cursor has consumed all of the text.
func (s *Stream) AtEnd() bool { return s.pos >= len(s.text) }

// CurrByte returns the byte at the current position without consuming it.
// Fails with UnexpectedEndOfStream at the end of the text.
func (s *Stream) CurrByte() (byte, *Error) {
	if s.AtEnd() {
		return 0, errKind(UnexpectedEndOfStream)
	}
	return s.text[s.pos], nil
}

// Advance moves the position forward by n bytes. The caller must have
// established via CurrByte / Chars that n bytes remain.
func (s *Stream) Advance(n int) {
	s.pos += n
}

// JumpToEnd moves the position to the end of the text.
func (s *Stream) JumpToEnd() {
	s.pos = len(s.text)
}

// Chars returns the unread remainder of the text. Ranging over it yields
// runes, providing character lookahead without consuming anything.
func (s *Stream) Chars() string {
	if s.AtEnd() {
		return ""
	}
	return s.text[s.pos:]
}

// SliceBack returns the text between the given starting byte offset and
// the current position.
func (s *Stream) SliceBack(start int) string {
	return s.text[start:s.pos]
}

// CalcCharPos returns the current position as a rune count from the start
// of the text, for use in diagnostics.
func (s *Stream) CalcCharPos() int {
	return s.calcCharPosAt(s.pos)
}

func (s *Stream) calcCharPosAt(bytePos int) int {
	return utf8.RuneCountInString(s.text[:bytePos])
}

// StartsWith reports whether the unread remainder begins with text.
func (s *Stream) StartsWith(text string) bool {
	return strings.HasPrefix(s.Chars(), text)
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// SkipSpaces consumes a run of XML whitespace characters.
func (s *Stream) SkipSpaces() {
	for !s.AtEnd() && isSpaceByte(s.text[s.pos]) {
		s.pos++
	}
}

// SkipBytes consumes bytes as long as pred holds.
func (s *Stream) SkipBytes(pred func(b byte) bool) {
	for !s.AtEnd() && pred(s.text[s.pos]) {
		s.pos++
	}
}

// ConsumeByte consumes the current byte, which must equal b; otherwise it
// fails with InvalidChar carrying the found byte, the expected byte and
// the character position.
func (s *Stream) ConsumeByte(b byte) *Error {
	c, err := s.CurrByte()
	if err != nil {
		return err
	}
	if c != b {
		return errInvalidChar(c, []byte{b}, s.CalcCharPos())
	}
	s.pos++
	return nil
}

// ConsumeString consumes the given string; on mismatch it fails with
// InvalidString carrying the found text, the expected string and the
// character position.
func (s *Stream) ConsumeString(text string) *Error {
	if s.AtEnd() {
		return errKind(UnexpectedEndOfStream)
	}
	if !s.StartsWith(text) {
		end := s.pos + len(text)
		if end > len(s.text) {
			end = len(s.text)
		}
		return errInvalidString(s.text[s.pos:end], []string{text}, s.CalcCharPos())
	}
	s.pos += len(text)
	return nil
}

func isIdentByte(b byte) bool {
	return b == '-' || b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

// ParseIdent lexes a CSS-style identifier: letters, digits, hyphens and
// underscores, not starting with a digit. Fails with InvalidIdent on an
// empty or malformed ident.
func (s *Stream) ParseIdent() (string, *Error) {
	start := s.pos
	s.SkipBytes(isIdentByte)
	id := s.SliceBack(start)
	if id == "" {
		return "", errKind(InvalidIdent)
	}
	if id[0] >= '0' && id[0] <= '9' {
		return "", errKind(InvalidIdent)
	}
	return id, nil
}

// ParseQuotedString lexes a string delimited by a matching pair of single
// or double quotes, returning the raw interior content without any escape
// processing. Fails with UnexpectedEndOfStream if the closing delimiter
// is missing.
func (s *Stream) ParseQuotedString() (string, *Error) {
	quote, err := s.CurrByte()
	if err != nil {
		return "", err
	}
	if quote != '\'' && quote != '"' {
		return "", errInvalidChar(quote, []byte{'"', '\''}, s.CalcCharPos())
	}
	s.pos++
	start := s.pos
	idx := strings.IndexByte(s.text[s.pos:], quote)
	if idx < 0 {
		s.JumpToEnd()
		return "", errKind(UnexpectedEndOfStream)
	}
	s.pos = start + idx + 1
	return s.text[start : start+idx], nil
}
