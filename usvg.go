// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package usvg parses SVG documents into a scene tree: it sniffs and
// inflates gzip-compressed input, validates UTF-8 encoding, parses the
// XML structure, and converts the resulting tree into typed scene nodes,
// running hand-written grammars over attribute values along the way.
//
// Every entry point is synchronous and holds no process-wide state, so
// independent calls may run concurrently without coordination, each with
// its own buffer and Options. Rendering, CSS cascading and font loading
// are all outside this package.
package usvg

import (
	"bytes"
	"io"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"

	"goki.dev/usvg/xmltree"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Decompress inflates a gzip-compressed SVG (SVGZ). Any inflation
// failure reports MalformedGZip; the process is never aborted.
func Decompress(data []byte) ([]byte, *Error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errKind(MalformedGZip)
	}
	decoded, err := io.ReadAll(zr)
	if err != nil {
		return nil, errKind(MalformedGZip)
	}
	if err := zr.Close(); err != nil {
		return nil, errKind(MalformedGZip)
	}
	return decoded, nil
}

// FromBytes parses a Tree from SVG data, which may be an SVG string or
// gzip-compressed SVGZ data. Content that is not valid UTF-8 after any
// decompression fails with NotAnUtf8Str.
func FromBytes(data []byte, opts *Options) (*Tree, *Error) {
	if bytes.HasPrefix(data, gzipMagic) {
		decoded, err := Decompress(data)
		if err != nil {
			return nil, err
		}
		data = decoded
	}
	if !utf8.Valid(data) {
		return nil, errKind(NotAnUtf8Str)
	}
	return FromString(string(data), opts)
}

// FromString parses a Tree from an SVG string. A DOCTYPE/DTD preamble is
// permitted. Any XML malformation fails with ParsingFailed wrapping the
// underlying structural error.
func FromString(text string, opts *Options) (*Tree, *Error) {
	doc, err := xmltree.Parse(text, xmltree.Options{AllowDTD: true})
	if err != nil {
		return nil, errParsingFailed(err)
	}
	return FromXMLDoc(doc, opts)
}

// FromXMLDoc parses a Tree from an already parsed XML document.
func FromXMLDoc(doc *xmltree.Document, opts *Options) (*Tree, *Error) {
	return Convert(doc, opts)
}
