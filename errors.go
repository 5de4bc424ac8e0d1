// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usvg

import (
	"fmt"
	"strings"

	"github.com/goki/ki/kit"
)

// ErrorKind is the closed set of failure kinds produced by this package.
// Every fallible operation returns an [*Error] carrying one of these kinds,
// so callers can dispatch on the kind instead of parsing message text.
type ErrorKind int32

const (
	// NotAnUtf8Str: only UTF-8 content is supported.
	NotAnUtf8Str ErrorKind = iota

	// MalformedGZip: compressed SVG must use the GZip algorithm.
	MalformedGZip

	// ElementsLimitReached: documents with more than [ElementsLimit]
	// elements are rejected for security reasons.
	ElementsLimitReached

	// InvalidSize: the SVG does not have a valid size.
	// Occurs when width and/or height are <= 0, and when width, height
	// and viewBox are all unset.
	InvalidSize

	// UnexpectedEndOfStream: input data ended earlier than expected.
	// Should only appear on invalid input data; errors in valid XML are
	// handled by the kinds below.
	UnexpectedEndOfStream

	// UnexpectedData: the input text contains unknown data.
	UnexpectedData

	// InvalidValue: a provided string does not hold valid data at all.
	// Parsing a number from "zzz" gives InvalidValue, while "1.2 zzz"
	// gives InvalidNumber, because at least some of the data was valid.
	InvalidValue

	// InvalidIdent: CSS idents have rules about the characters they may
	// contain, e.g., they may not start with a digit.
	InvalidIdent

	// InvalidChar: an invalid or unexpected character.
	// Found and Expected carry the actual and acceptable characters.
	InvalidChar

	// InvalidString: an unexpected string.
	// Found and Expected carry the actual and acceptable strings.
	InvalidString

	// InvalidNumber: an invalid number.
	InvalidNumber

	// ParsingFailed: the XML structure of the SVG data could not be parsed.
	// The underlying [xmltree] error is available via Unwrap.
	ParsingFailed

	ErrorKindN
)

var KiT_ErrorKind = kit.Enums.AddEnum(ErrorKindN, kit.NotBitFlag, nil)

//go:generate stringer -type=ErrorKind

// Error is the error type used uniformly across the package.
// It is immutable and terminal: once produced, the parse that created it
// has been aborted. Positions are rune offsets from the start of the
// parsed text, not byte offsets, so messages are encoding-agnostic.
type Error struct {
	Kind ErrorKind

	// Pos is the rune offset carried by positional kinds
	// (UnexpectedData, InvalidChar, InvalidString, InvalidNumber).
	Pos int

	// Found is the offending character or string for the mismatch kinds.
	Found string

	// Expected is the ordered set of acceptable characters or strings
	// for the mismatch kinds.
	Expected []string

	// Err is the underlying structural error for ParsingFailed.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case NotAnUtf8Str:
		return "provided data has not an UTF-8 encoding"
	case MalformedGZip:
		return "provided data has a malformed GZip content"
	case ElementsLimitReached:
		return "the maximum number of SVG elements has been reached"
	case InvalidSize:
		return "SVG has an invalid size"
	case UnexpectedEndOfStream:
		return "unexpected end of stream"
	case UnexpectedData:
		return fmt.Sprintf("unexpected data at position %d", e.Pos)
	case InvalidValue:
		return "invalid value"
	case InvalidIdent:
		return "invalid ident"
	case InvalidChar, InvalidString:
		return fmt.Sprintf("expected '%s' not '%s' at position %d",
			strings.Join(e.Expected, "', '"), e.Found, e.Pos)
	case InvalidNumber:
		return fmt.Sprintf("invalid number at position %d", e.Pos)
	case ParsingFailed:
		return fmt.Sprintf("SVG data parsing failed cause %v", e.Err)
	}
	return e.Kind.String()
}

// Unwrap returns the underlying XML error for ParsingFailed kinds.
func (e *Error) Unwrap() error { return e.Err }

func errKind(kind ErrorKind) *Error {
	return &Error{Kind: kind}
}

func errPos(kind ErrorKind, pos int) *Error {
	return &Error{Kind: kind, Pos: pos}
}

func errInvalidChar(found byte, expected []byte, pos int) *Error {
	exp := make([]string, len(expected))
	for i, b := range expected {
		exp[i] = string(b)
	}
	return &Error{Kind: InvalidChar, Pos: pos, Found: string(found), Expected: exp}
}

func errInvalidString(found string, expected []string, pos int) *Error {
	return &Error{Kind: InvalidString, Pos: pos, Found: found, Expected: expected}
}

func errParsingFailed(err error) *Error {
	return &Error{Kind: ParsingFailed, Err: err}
}
