// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usvg

import (
	"path/filepath"
	"strings"

	"github.com/goki/ki/ki"
	"github.com/goki/mat32"
	"github.com/sirupsen/logrus"

	"goki.dev/usvg/xmltree"
)

var log = logrus.StandardLogger()

// ElementsLimit is the maximum number of elements an SVG document may
// contain; larger documents are rejected for security reasons.
const ElementsLimit = 1_000_000

// Convert builds a scene tree from a parsed XML document. It fails with
// ElementsLimitReached when the document exceeds [ElementsLimit] total
// elements, and with InvalidSize when the document declares neither a
// positive, finite width and height nor a viewBox. Unsupported elements
// are logged and skipped; a failure returns no partial tree.
func Convert(doc *xmltree.Document, opts *Options) (*Tree, *Error) {
	if opts == nil {
		opts = NewOptions()
	}
	if doc.CountElements() > ElementsLimit {
		return nil, errKind(ElementsLimitReached)
	}
	root := doc.Root
	if root == nil || root.Name.Local != "svg" {
		return nil, errKind(InvalidValue)
	}

	c := &converter{opts: opts, tree: NewTree()}

	vb := ViewBox{}
	hasVB := root.HasAttr("viewBox")
	if hasVB {
		if err := vb.SetString(root.Attr("viewBox")); err != nil {
			return nil, err
		}
	}
	w, hasW, werr := c.parseLength(root.Attr("width"), vb.Size.X, hasVB)
	h, hasH, herr := c.parseLength(root.Attr("height"), vb.Size.Y, hasVB)
	if werr != nil || herr != nil {
		return nil, errKind(InvalidSize)
	}
	size := mat32.Vec2{}
	switch {
	case hasW && hasH:
		size.Set(w, h)
	case hasVB:
		size = vb.Size
		if hasW {
			size.X = w
		}
		if hasH {
			size.Y = h
		}
	default:
		return nil, errKind(InvalidSize)
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, errKind(InvalidSize)
	}
	if !hasVB {
		vb = ViewBox{Size: size}
	}

	c.tree.Size = size
	c.tree.ViewBox = vb
	c.tree.Root.ViewBox = vb
	setProps(&c.tree.Root, root, "width", "height", "viewBox", "xmlns")
	c.convertChildren(&c.tree.Root, root)
	return c.tree, nil
}

type converter struct {
	opts *Options
	tree *Tree
}

// parseLength parses a length attribute with an optional unit suffix.
// Absolute units convert through Options.DPI, em/ex through
// Options.FontSize, and percentages resolve against percentBase, which
// is only available when the document has a viewBox.
func (c *converter) parseLength(text string, percentBase float32, hasBase bool) (float32, bool, *Error) {
	if strings.TrimSpace(text) == "" {
		return 0, false, nil
	}
	s := NewStream(text)
	n, err := s.ParseNumber()
	if err != nil {
		return 0, false, err
	}
	switch unit := strings.TrimSpace(s.Chars()); unit {
	case "", "px":
	case "%":
		if !hasBase {
			return 0, false, errKind(InvalidSize)
		}
		n = n / 100 * percentBase
	case "in":
		n *= c.opts.DPI
	case "cm":
		n *= c.opts.DPI / 2.54
	case "mm":
		n *= c.opts.DPI / 25.4
	case "pt":
		n *= c.opts.DPI / 72
	case "pc":
		n *= c.opts.DPI / 6
	case "em":
		n *= c.opts.FontSize
	case "ex":
		n *= c.opts.FontSize / 2
	default:
		return 0, false, errKind(InvalidValue)
	}
	return n, true, nil
}

func (c *converter) convertChildren(parent ki.Ki, xn *xmltree.Node) {
	for _, kid := range xn.Children {
		if kid.IsElement() {
			c.convertElement(parent, kid)
		}
	}
}

func (c *converter) convertElement(parent ki.Ki, xn *xmltree.Node) {
	switch xn.Name.Local {
	case "g":
		g := AddNewGroup(parent, nodeName(xn))
		setProps(g, xn)
		c.convertChildren(g, xn)
	case "svg":
		// nested svg viewports are flattened into a group
		g := AddNewGroup(parent, nodeName(xn))
		setProps(g, xn, "width", "height", "viewBox")
		c.convertChildren(g, xn)
	case "defs":
		c.convertChildren(&c.tree.Defs, xn)
	case "rect":
		g := AddNewRect(parent, nodeName(xn))
		g.Pos.Set(c.floatAttr(xn, "x"), c.floatAttr(xn, "y"))
		g.Size.Set(c.floatAttr(xn, "width"), c.floatAttr(xn, "height"))
		g.Radius.Set(c.floatAttr(xn, "rx"), c.floatAttr(xn, "ry"))
		setProps(g, xn, "x", "y", "width", "height", "rx", "ry")
	case "circle":
		g := AddNewCircle(parent, nodeName(xn))
		g.Pos.Set(c.floatAttr(xn, "cx"), c.floatAttr(xn, "cy"))
		g.Radius = c.floatAttr(xn, "r")
		setProps(g, xn, "cx", "cy", "r")
	case "ellipse":
		g := AddNewEllipse(parent, nodeName(xn))
		g.Pos.Set(c.floatAttr(xn, "cx"), c.floatAttr(xn, "cy"))
		g.Radii.Set(c.floatAttr(xn, "rx"), c.floatAttr(xn, "ry"))
		setProps(g, xn, "cx", "cy", "rx", "ry")
	case "line":
		g := AddNewLine(parent, nodeName(xn))
		g.Start.Set(c.floatAttr(xn, "x1"), c.floatAttr(xn, "y1"))
		g.End.Set(c.floatAttr(xn, "x2"), c.floatAttr(xn, "y2"))
		setProps(g, xn, "x1", "y1", "x2", "y2")
	case "polyline":
		g := AddNewPolyline(parent, nodeName(xn))
		g.Points = c.pointsAttr(xn)
		setProps(g, xn, "points")
	case "polygon":
		g := AddNewPolygon(parent, nodeName(xn))
		g.Points = c.pointsAttr(xn)
		setProps(g, xn, "points")
	case "path":
		g := AddNewPath(parent, nodeName(xn), xn.Attr("d"))
		setProps(g, xn, "d")
	case "text":
		c.convertText(parent, xn)
	case "image":
		g := AddNewImage(parent, nodeName(xn))
		g.Pos.Set(c.floatAttr(xn, "x"), c.floatAttr(xn, "y"))
		g.Size.Set(c.floatAttr(xn, "width"), c.floatAttr(xn, "height"))
		g.Href = c.resolveHref(xn.Attr("href"))
		setProps(g, xn, "x", "y", "width", "height", "href")
	case "title", "desc", "metadata", "style":
		// document metadata, no scene content; style sheets are out of scope
	default:
		log.Warnf("usvg: skipping unsupported element %q", xn.Name.Local)
	}
}

func (c *converter) convertText(parent ki.Ki, xn *xmltree.Node) {
	var sb strings.Builder
	for _, kid := range xn.Children {
		if kid.IsElement() {
			log.Warnf("usvg: skipping unsupported text child %q", kid.Name.Local)
			continue
		}
		sb.WriteString(kid.Text)
	}
	g := AddNewText(parent, nodeName(xn), sb.String())
	g.Pos.Set(c.floatAttr(xn, "x"), c.floatAttr(xn, "y"))

	ffText := xn.Attr("font-family")
	if ffText == "" {
		ffText = c.opts.FontFamily
	}
	fams, err := ParseFontFamilies(ffText)
	if err != nil {
		log.Debugf("usvg: dropping invalid font-family %q: %v", ffText, err)
	} else {
		g.Family = fams
	}
	setProps(g, xn, "x", "y", "font-family")
}

// floatAttr parses a plain numeric attribute; an invalid value is logged
// and falls back to 0, it does not abort the conversion.
func (c *converter) floatAttr(xn *xmltree.Node, name string) float32 {
	v := xn.Attr(name)
	if v == "" {
		return 0
	}
	s := NewStream(v)
	n, err := s.ParseNumber()
	if err != nil {
		log.Warnf("usvg: invalid %s value %q: %v", name, v, err)
		return 0
	}
	return n
}

func (c *converter) pointsAttr(xn *xmltree.Node) []mat32.Vec2 {
	v := xn.Attr("points")
	if v == "" {
		return nil
	}
	pts, err := parsePoints(v)
	if err != nil {
		log.Warnf("usvg: invalid points value %q: %v", v, err)
		return nil
	}
	return pts
}

// parsePoints parses a polyline/polygon points list: list-separated
// coordinate pairs. A trailing odd coordinate is dropped with a warning
// rather than failing the whole list.
func parsePoints(text string) ([]mat32.Vec2, *Error) {
	s := NewStream(text)
	var pts []mat32.Vec2
	for {
		s.SkipSpaces()
		if s.AtEnd() {
			break
		}
		x, err := s.ParseListNumber()
		if err != nil {
			return nil, err
		}
		s.SkipSpaces()
		if s.AtEnd() {
			log.Warnf("usvg: odd number of point coordinates; dropping the last one")
			break
		}
		y, err := s.ParseListNumber()
		if err != nil {
			return nil, err
		}
		pts = append(pts, mat32.Vec2{X: x, Y: y})
	}
	return pts, nil
}

// resolveHref joins a relative image href onto Options.ResourcesDir;
// URLs, data URIs and absolute paths pass through untouched.
func (c *converter) resolveHref(href string) string {
	if href == "" || c.opts.ResourcesDir == "" {
		return href
	}
	if strings.Contains(href, ":") || filepath.IsAbs(href) {
		return href
	}
	return filepath.Join(c.opts.ResourcesDir, href)
}

// nodeName returns the scene node name for an element: its id when set,
// otherwise the element name.
func nodeName(xn *xmltree.Node) string {
	if id := xn.Attr("id"); id != "" {
		return id
	}
	return xn.Name.Local
}

// setProps stores the element's attributes as ki props on the node,
// skipping id and the attributes already parsed into typed fields.
func setProps(n ki.Ki, xn *xmltree.Node, used ...string) {
	for _, attr := range xn.Attrs {
		name := attr.Name.Local
		if name == "id" {
			continue
		}
		skip := false
		for _, u := range used {
			if name == u {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		n.SetProp(name, attr.Value)
	}
}
