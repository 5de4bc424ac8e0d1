// Copyright (c) 2024, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package usvg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFontFamilies(t *testing.T) {
	tests := []struct {
		text string
		want []FontFamily
	}{
		{"", nil},
		{"serif", []FontFamily{{Family: Serif}}},
		{"sans-serif", []FontFamily{{Family: SansSerif}}},
		{"cursive", []FontFamily{{Family: Cursive}}},
		{"fantasy", []FontFamily{{Family: Fantasy}}},
		{"monospace", []FontFamily{{Family: Monospace}}},
		{"  serif  ", []FontFamily{{Family: Serif}}},
		{"Serif", []FontFamily{Named("Serif")}},
		{"'serif'", []FontFamily{Named("serif")}},
		{"Arial", []FontFamily{Named("Arial")}},
		{"Times New Roman", []FontFamily{Named("Times New Roman")}},
		{"'Times New Roman', Arial, sans-serif", []FontFamily{
			Named("Times New Roman"), Named("Arial"), {Family: SansSerif},
		}},
		{`"Noto Sans",monospace`, []FontFamily{
			Named("Noto Sans"), {Family: Monospace},
		}},
		{",,", nil},
		{"a,", []FontFamily{Named("a")}},
		{"serif,serif", []FontFamily{{Family: Serif}, {Family: Serif}}},
	}
	for _, tc := range tests {
		fams, err := ParseFontFamilies(tc.text)
		require.Nil(t, err, "%q", tc.text)
		assert.Equal(t, tc.want, fams, "%q", tc.text)
	}
}

func TestParseFontFamiliesErrors(t *testing.T) {
	fams, err := ParseFontFamilies("serif extra")
	require.NotNil(t, err)
	assert.Nil(t, fams)
	assert.Equal(t, UnexpectedData, err.Kind)
	assert.Equal(t, 6, err.Pos)
	assert.Equal(t, "unexpected data at position 6", err.Error())

	_, err = ParseFontFamilies("'no closing quote")
	require.NotNil(t, err)
	assert.Equal(t, UnexpectedEndOfStream, err.Kind)

	// trailing data after a quoted name
	_, err = ParseFontFamilies("'Arial' extra")
	require.NotNil(t, err)
	assert.Equal(t, UnexpectedData, err.Kind)
	assert.Equal(t, 8, err.Pos)
}

func TestFontFamilyRoundTrip(t *testing.T) {
	for _, fam := range []Family{Serif, SansSerif, Cursive, Fantasy, Monospace} {
		ff := FontFamily{Family: fam}
		fams, err := ParseFontFamilies(ff.String())
		require.Nil(t, err, ff.String())
		require.Len(t, fams, 1, ff.String())
		assert.Equal(t, ff, fams[0])
	}
}

func TestFontFamilyString(t *testing.T) {
	assert.Equal(t, "sans-serif", FontFamily{Family: SansSerif}.String())
	assert.Equal(t, "Comic Sans MS", Named("Comic Sans MS").String())
}

func TestFontFamilyAsMapKey(t *testing.T) {
	m := map[FontFamily]int{
		Named("Arial"):            1,
		FontFamily{Family: Serif}: 2,
		Named("serif"):            3,
	}
	assert.Equal(t, 1, m[Named("Arial")])
	assert.Equal(t, 2, m[FontFamily{Family: Serif}])
	assert.Equal(t, 3, m[Named("serif")])
}
