// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usvg

import (
	"testing"

	"github.com/goki/mat32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewBoxSetString(t *testing.T) {
	vb := ViewBox{}
	require.Nil(t, vb.SetString("0 0 100 50"))
	assert.Equal(t, mat32.Vec2{X: 0, Y: 0}, vb.Min)
	assert.Equal(t, mat32.Vec2{X: 100, Y: 50}, vb.Size)

	require.Nil(t, vb.SetString("-5,-5,30,40"))
	assert.Equal(t, mat32.Vec2{X: -5, Y: -5}, vb.Min)
	assert.Equal(t, mat32.Vec2{X: 30, Y: 40}, vb.Size)

	require.Nil(t, vb.SetString("  1.5 2.5 10 20  "))
	assert.Equal(t, mat32.Vec2{X: 1.5, Y: 2.5}, vb.Min)
}

func TestViewBoxSetStringErrors(t *testing.T) {
	tests := []struct {
		text string
		kind ErrorKind
	}{
		{"0 0 0 50", InvalidValue},
		{"0 0 100 -50", InvalidValue},
		{"0 0 100", InvalidNumber},
		{"", InvalidNumber},
		{"a b c d", InvalidNumber},
		{"0 0 100 50 junk", UnexpectedData},
	}
	for _, tc := range tests {
		vb := ViewBox{}
		err := vb.SetString(tc.text)
		require.NotNil(t, err, "%q", tc.text)
		assert.Equal(t, tc.kind, err.Kind, "%q", tc.text)
	}
}
