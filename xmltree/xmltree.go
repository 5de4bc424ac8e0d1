// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xmltree parses XML text into a generic document tree, with
// rune-offset positions for diagnostics. It knows nothing about SVG;
// the usvg converter walks the tree it produces.
package xmltree

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
)

// Options are the parsing options.
type Options struct {
	// AllowDTD permits a DOCTYPE/DTD preamble in the document.
	// Entities declared by it are not expanded.
	AllowDTD bool
}

// ParseError is a structural XML error, with the rune offset from the
// start of the text at which it was detected.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at position %d", e.Msg, e.Pos)
}

// Node is one node of the document tree: an element, or character data
// when Name is empty.
type Node struct {
	Parent   *Node
	Children []*Node

	// Name is the element name; empty for character data nodes.
	Name xml.Name

	// Attrs are the element attributes, in document order.
	Attrs []xml.Attr

	// Text is the content of a character data node.
	Text string

	// Pos is the rune offset of the node's start in the parsed text.
	Pos int
}

// IsElement reports whether the node is an element, as opposed to
// character data.
func (n *Node) IsElement() bool {
	return n.Name.Local != ""
}

// Attr returns the value of the named attribute, matching on the local
// name so that e.g. both href and xlink:href are found; returns ""
// if not present.
func (n *Node) Attr(name string) string {
	for _, attr := range n.Attrs {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present.
func (n *Node) HasAttr(name string) bool {
	for _, attr := range n.Attrs {
		if attr.Name.Local == name {
			return true
		}
	}
	return false
}

// Document is a parsed XML document.
type Document struct {
	// Root is the root element.
	Root *Node
}

// CountElements returns the total number of elements in the document.
func (d *Document) CountElements() int {
	if d.Root == nil {
		return 0
	}
	return countElements(d.Root)
}

func countElements(n *Node) int {
	total := 1
	for _, kid := range n.Children {
		if kid.IsElement() {
			total += countElements(kid)
		}
	}
	return total
}

// Parse parses the given XML text into a Document. Any structural
// malformation is reported as a *ParseError with a rune-offset position.
func Parse(text string, opts Options) (*Document, error) {
	decoder := xml.NewDecoder(strings.NewReader(text))
	decoder.CharsetReader = charset.NewReaderLabel
	decoder.Entity = xml.HTMLEntity

	doc := &Document{}
	rc := runeCounter{text: text}
	var cur *Node
	for {
		off := decoder.InputOffset()
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			msg := err.Error()
			if se, ok := err.(*xml.SyntaxError); ok {
				msg = se.Msg
			}
			return nil, &ParseError{Pos: rc.at(decoder.InputOffset()), Msg: msg}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Parent: cur, Name: t.Name, Pos: rc.at(off)}
			n.Attrs = append(n.Attrs, t.Attr...)
			if cur == nil {
				if doc.Root != nil {
					return nil, &ParseError{Pos: n.Pos, Msg: "the document has more than one root node"}
				}
				doc.Root = n
			} else {
				cur.Children = append(cur.Children, n)
			}
			cur = n
		case xml.EndElement:
			if cur != nil {
				cur = cur.Parent
			}
		case xml.CharData:
			if cur != nil {
				txt := string(t)
				if strings.TrimSpace(txt) != "" {
					cur.Children = append(cur.Children, &Node{
						Parent: cur, Text: txt, Pos: rc.at(off),
					})
				}
			}
		case xml.Directive:
			if !opts.AllowDTD && strings.HasPrefix(strings.TrimSpace(string(t)), "DOCTYPE") {
				return nil, &ParseError{Pos: rc.at(off), Msg: "DTD is not allowed"}
			}
		}
	}
	if doc.Root == nil {
		return nil, &ParseError{Pos: 0, Msg: "the document does not have a root node"}
	}
	return doc, nil
}

// runeCounter converts monotonically increasing decoder byte offsets
// into rune offsets in amortized linear time.
type runeCounter struct {
	text    string
	byteOff int64
	runeOff int
}

func (rc *runeCounter) at(byteOff int64) int {
	if byteOff > int64(len(rc.text)) {
		byteOff = int64(len(rc.text))
	}
	if byteOff < rc.byteOff {
		rc.byteOff = 0
		rc.runeOff = 0
	}
	rc.runeOff += utf8.RuneCountInString(rc.text[rc.byteOff:byteOff])
	rc.byteOff = byteOff
	return rc.runeOff
}
