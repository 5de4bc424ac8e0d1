// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usvg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goki/mat32"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goki.dev/usvg/xmltree"
)

const minimalSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50"><rect x="1" y="2" width="3" height="4"/></svg>`

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestFromString(t *testing.T) {
	tree, err := FromString(minimalSVG, nil)
	require.Nil(t, err)
	assert.Equal(t, mat32.Vec2{X: 100, Y: 50}, tree.Size)
	assert.Equal(t, mat32.Vec2{X: 100, Y: 50}, tree.ViewBox.Size)
	require.Len(t, tree.Root.Kids, 1)
	r := tree.Root.Kids[0].(*Rect)
	assert.Equal(t, mat32.Vec2{X: 1, Y: 2}, r.Pos)
	assert.Equal(t, mat32.Vec2{X: 3, Y: 4}, r.Size)
}

func TestFromStringDoctype(t *testing.T) {
	text := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
` + minimalSVG
	tree, err := FromString(text, nil)
	require.Nil(t, err)
	assert.Equal(t, mat32.Vec2{X: 100, Y: 50}, tree.Size)
}

func TestFromStringParsingFailed(t *testing.T) {
	for _, text := range []string{"", "<svg", "<svg></g>", "not xml at all"} {
		tree, err := FromString(text, nil)
		require.NotNil(t, err, "%q", text)
		assert.Nil(t, tree, "%q", text)
		assert.Equal(t, ParsingFailed, err.Kind, "%q", text)
		var perr *xmltree.ParseError
		assert.ErrorAs(t, err, &perr, "%q", text)
	}
}

func TestFromBytes(t *testing.T) {
	tree, err := FromBytes([]byte(minimalSVG), nil)
	require.Nil(t, err)
	assert.Equal(t, mat32.Vec2{X: 100, Y: 50}, tree.Size)
}

func TestFromBytesNotUTF8(t *testing.T) {
	tree, err := FromBytes([]byte{0xff, 0xfe, '<', 's'}, nil)
	require.NotNil(t, err)
	assert.Nil(t, tree)
	assert.Equal(t, NotAnUtf8Str, err.Kind)

	// same check applies after decompression
	tree, err = FromBytes(gzipped(t, []byte{0xff, 0xfe}), nil)
	require.NotNil(t, err)
	assert.Nil(t, tree)
	assert.Equal(t, NotAnUtf8Str, err.Kind)
}

func TestDecompress(t *testing.T) {
	data := gzipped(t, []byte(minimalSVG))
	decoded, err := Decompress(data)
	require.Nil(t, err)
	assert.Equal(t, []byte(minimalSVG), decoded)

	tree, err := FromBytes(data, nil)
	require.Nil(t, err)
	assert.Equal(t, mat32.Vec2{X: 100, Y: 50}, tree.Size)
}

func TestDecompressMalformed(t *testing.T) {
	// gzip magic followed by garbage
	_, err := Decompress([]byte{0x1f, 0x8b, 0xde, 0xad, 0xbe, 0xef})
	require.NotNil(t, err)
	assert.Equal(t, MalformedGZip, err.Kind)

	// valid archive with corrupted compressed data
	data := gzipped(t, []byte(minimalSVG))
	data[len(data)-5] ^= 0xff
	_, err = Decompress(data)
	require.NotNil(t, err)
	assert.Equal(t, MalformedGZip, err.Kind)

	// FromBytes routes gzip-prefixed input through Decompress
	tree, err := FromBytes(data, nil)
	require.NotNil(t, err)
	assert.Nil(t, tree)
	assert.Equal(t, MalformedGZip, err.Kind)
}

func TestInvalidSize(t *testing.T) {
	tests := []string{
		`<svg xmlns="http://www.w3.org/2000/svg"></svg>`,
		`<svg width="0" height="10"/>`,
		`<svg width="-1" height="10"/>`,
		`<svg width="100"/>`,
		`<svg width="100%" height="100"/>`,
	}
	for _, text := range tests {
		tree, err := FromString(text, nil)
		require.NotNil(t, err, text)
		assert.Nil(t, tree, text)
		assert.Equal(t, InvalidSize, err.Kind, text)
	}

	// a viewBox alone is a valid size
	tree, err := FromString(`<svg viewBox="0 0 30 40"/>`, nil)
	require.Nil(t, err)
	assert.Equal(t, mat32.Vec2{X: 30, Y: 40}, tree.Size)
}

func TestElementsLimit(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`<svg width="1" height="1">`)
	for i := 0; i < ElementsLimit; i++ {
		sb.WriteString("<g/>")
	}
	sb.WriteString(`</svg>`)

	tree, err := FromString(sb.String(), nil)
	require.NotNil(t, err)
	assert.Nil(t, tree)
	assert.Equal(t, ElementsLimitReached, err.Kind)
	assert.Equal(t, "the maximum number of SVG elements has been reached", err.Error())
}
