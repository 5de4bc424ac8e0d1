// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usvg

import (
	"github.com/goki/ki/ki"
	"github.com/goki/ki/kit"
	"github.com/goki/mat32"
)

// node.go contains the scene tree node types produced by conversion.
// Presentation attributes that are not parsed into typed fields are kept
// verbatim as ki props on the node, keyed by attribute name.

// Node is the interface for all SVG scene tree nodes.
type Node interface {
	ki.Ki

	// AsNodeBase returns the base node type.
	AsNodeBase() *NodeBase
}

// NodeBase is the base type for all elements in an SVG scene tree.
type NodeBase struct {
	ki.Node
}

var KiT_NodeBase = kit.Types.AddType(&NodeBase{}, nil)

func (g *NodeBase) AsNodeBase() *NodeBase { return g }

// Group groups SVG elements together; it carries no geometry of its own.
type Group struct {
	NodeBase
}

var KiT_Group = kit.Types.AddType(&Group{}, nil)

// AddNewGroup adds a new group to the given parent node, with given name.
func AddNewGroup(parent ki.Ki, name string) *Group {
	return parent.AddNewChild(KiT_Group, name).(*Group)
}

// Rect is an SVG rectangle, optionally with rounded corners.
type Rect struct {
	NodeBase
	Pos    mat32.Vec2 `xml:"{x,y}" desc:"position of the top-left of the rectangle"`
	Size   mat32.Vec2 `xml:"{width,height}" desc:"size of the rectangle"`
	Radius mat32.Vec2 `xml:"{rx,ry}" desc:"radii for curved corners"`
}

var KiT_Rect = kit.Types.AddType(&Rect{}, nil)

// AddNewRect adds a new rect to the given parent node, with given name.
func AddNewRect(parent ki.Ki, name string) *Rect {
	return parent.AddNewChild(KiT_Rect, name).(*Rect)
}

// Circle is an SVG circle.
type Circle struct {
	NodeBase
	Pos    mat32.Vec2 `xml:"{cx,cy}" desc:"position of the center of the circle"`
	Radius float32    `xml:"r" desc:"radius of the circle"`
}

var KiT_Circle = kit.Types.AddType(&Circle{}, nil)

// AddNewCircle adds a new circle to the given parent node, with given name.
func AddNewCircle(parent ki.Ki, name string) *Circle {
	return parent.AddNewChild(KiT_Circle, name).(*Circle)
}

// Ellipse is an SVG ellipse.
type Ellipse struct {
	NodeBase
	Pos   mat32.Vec2 `xml:"{cx,cy}" desc:"position of the center of the ellipse"`
	Radii mat32.Vec2 `xml:"{rx,ry}" desc:"radii of the ellipse in the horizontal, vertical axes"`
}

var KiT_Ellipse = kit.Types.AddType(&Ellipse{}, nil)

// AddNewEllipse adds a new ellipse to the given parent node, with given name.
func AddNewEllipse(parent ki.Ki, name string) *Ellipse {
	return parent.AddNewChild(KiT_Ellipse, name).(*Ellipse)
}

// Line is an SVG line.
type Line struct {
	NodeBase
	Start mat32.Vec2 `xml:"{x1,y1}" desc:"position of the start of the line"`
	End   mat32.Vec2 `xml:"{x2,y2}" desc:"position of the end of the line"`
}

var KiT_Line = kit.Types.AddType(&Line{}, nil)

// AddNewLine adds a new line to the given parent node, with given name.
func AddNewLine(parent ki.Ki, name string) *Line {
	return parent.AddNewChild(KiT_Line, name).(*Line)
}

// Polyline is an SVG polyline.
type Polyline struct {
	NodeBase
	Points []mat32.Vec2 `xml:"points" desc:"the coordinates to draw"`
}

var KiT_Polyline = kit.Types.AddType(&Polyline{}, nil)

// AddNewPolyline adds a new polyline to the given parent node, with given name.
func AddNewPolyline(parent ki.Ki, name string) *Polyline {
	return parent.AddNewChild(KiT_Polyline, name).(*Polyline)
}

// Polygon is an SVG polygon: a closed polyline.
type Polygon struct {
	Polyline
}

var KiT_Polygon = kit.Types.AddType(&Polygon{}, nil)

// AddNewPolygon adds a new polygon to the given parent node, with given name.
func AddNewPolygon(parent ki.Ki, name string) *Polygon {
	return parent.AddNewChild(KiT_Polygon, name).(*Polygon)
}

// Path is an SVG path, kept as its raw data string; path command
// flattening belongs to the renderer.
type Path struct {
	NodeBase
	Data string `xml:"d" desc:"the raw path data string"`
}

var KiT_Path = kit.Types.AddType(&Path{}, nil)

// AddNewPath adds a new path to the given parent node, with given name
// and path data.
func AddNewPath(parent ki.Ki, name, data string) *Path {
	g := parent.AddNewChild(KiT_Path, name).(*Path)
	g.Data = data
	return g
}

// Text is an SVG text element.
type Text struct {
	NodeBase
	Pos    mat32.Vec2   `xml:"{x,y}" desc:"position of the left baseline anchor"`
	Text   string       `xml:"text" desc:"the text string to render"`
	Family []FontFamily `xml:"font-family" desc:"parsed font-family list"`
}

var KiT_Text = kit.Types.AddType(&Text{}, nil)

// AddNewText adds a new text element to the given parent node, with given
// name and text content.
func AddNewText(parent ki.Ki, name, text string) *Text {
	g := parent.AddNewChild(KiT_Text, name).(*Text)
	g.Text = text
	return g
}

// Image is an SVG image reference.
type Image struct {
	NodeBase
	Pos  mat32.Vec2 `xml:"{x,y}" desc:"position of the top-left of the image"`
	Size mat32.Vec2 `xml:"{width,height}" desc:"rendered size of the image"`
	Href string     `xml:"href" desc:"the image source, resolved against Options.ResourcesDir"`
}

var KiT_Image = kit.Types.AddType(&Image{}, nil)

// AddNewImage adds a new image to the given parent node, with given name.
func AddNewImage(parent ki.Ki, name string) *Image {
	return parent.AddNewChild(KiT_Image, name).(*Image)
}

// SVGNode is the root node of an SVG scene tree; the top-level viewbox
// lives here.
type SVGNode struct {
	Group

	// ViewBox defines the coordinate system for the drawing.
	ViewBox ViewBox
}

var KiT_SVGNode = kit.Types.AddType(&SVGNode{}, nil)

// Tree is the scene tree produced from an SVG document.
type Tree struct {
	// Size is the resolved document size in pixels.
	Size mat32.Vec2

	// ViewBox is the document coordinate system; when the document does
	// not declare one, it spans Size at origin.
	ViewBox ViewBox

	// Defs holds all defs-declared elements (gradients, symbols, etc).
	Defs Group

	// Root is the root of the scene tree.
	Root SVGNode
}

// NewTree returns a Tree with initialized root and defs nodes.
func NewTree() *Tree {
	t := &Tree{}
	t.Root.InitName(&t.Root, "svg")
	t.Defs.InitName(&t.Defs, "defs")
	return t
}
