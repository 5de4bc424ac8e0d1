// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usvg

import "github.com/goki/mat32"

// Options is the read-only configuration bag threaded through every
// parsing entry point. It must not be mutated while a parse call using
// it is in flight; nothing guards against that internally.
type Options struct {
	// ResourcesDir is the directory used to resolve relative paths in
	// the document, e.g. image hrefs.
	ResourcesDir string

	// DPI is the target DPI, used to convert absolute units (in, cm,
	// mm, pt, pc) into pixels.
	DPI float32

	// FontFamily is the default font-family list applied to text that
	// does not set one.
	FontFamily string

	// FontSize is the default font size, used to resolve em/ex units.
	FontSize float32

	// Languages is the list of languages for systemLanguage resolution,
	// consumed by downstream text processing.
	Languages []string

	// DefaultSize is the viewport size assumed by downstream consumers
	// when the document provides none.
	DefaultSize mat32.Vec2
}

// Defaults sets standard default values: 96 DPI, Times New Roman 12,
// English, 100x100.
func (o *Options) Defaults() {
	o.DPI = 96
	o.FontFamily = "Times New Roman"
	o.FontSize = 12
	o.Languages = []string{"en"}
	o.DefaultSize = mat32.Vec2{X: 100, Y: 100}
}

// NewOptions returns Options with default values set.
func NewOptions() *Options {
	o := &Options{}
	o.Defaults()
	return o
}
