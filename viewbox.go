// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usvg

import "github.com/goki/mat32"

// ViewBox is used in SVG to define the coordinate system of a document.
type ViewBox struct {
	Min  mat32.Vec2 `desc:"offset or starting point of the viewbox"`
	Size mat32.Vec2 `desc:"size of the viewbox"`
}

// Defaults returns the viewbox to its zero state.
func (vb *ViewBox) Defaults() {
	vb.Min = mat32.Vec2Zero
	vb.Size = mat32.Vec2Zero
}

// SetString sets the viewbox from a standard viewBox attribute string:
// four list-separated numbers. A nonpositive width or height fails with
// InvalidValue; trailing content fails with UnexpectedData.
func (vb *ViewBox) SetString(str string) *Error {
	s := NewStream(str)
	x, err := s.ParseListNumber()
	if err != nil {
		return err
	}
	y, err := s.ParseListNumber()
	if err != nil {
		return err
	}
	w, err := s.ParseListNumber()
	if err != nil {
		return err
	}
	h, err := s.ParseListNumber()
	if err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return errKind(InvalidValue)
	}
	s.SkipSpaces()
	if !s.AtEnd() {
		return errPos(UnexpectedData, s.CalcCharPos())
	}
	vb.Min.Set(x, y)
	vb.Size.Set(w, h)
	return nil
}
