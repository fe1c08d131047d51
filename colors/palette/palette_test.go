// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"image/color"
	"testing"

	"cogentcore.org/colorspace/base/iox/imagex"
	"cogentcore.org/colorspace/base/tolassert"
	"cogentcore.org/colorspace/colors"
	"cogentcore.org/colorspace/colors/gamut"
	"github.com/stretchr/testify/assert"
)

func TestTones(t *testing.T) {
	tones := NewTones(colors.New(colors.SRGB, 0.2, 0.4, 0.9))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, tones.Tone(0).Std())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, tones.Tone(100).Std())
	for _, tone := range []int{10, 30, 50, 70, 90} {
		c := tones.Tone(tone)
		assert.Equal(t, colors.SRGB, c.Space)
		assert.True(t, gamut.InGamut(c, nil, 1e-6), "tone %d", tone)
		tolassert.EqualTol(t, float64(tone), colors.Convert(c, colors.HCT).Coords[2].Float(), 1, "tone %d", tone)
	}
	assert.Equal(t, tones.Tone(40), tones.Tone(40))

	r := tones.Range(10)
	assert.Len(t, r, 11)
	assert.Equal(t, tones.Tone(50), r[5])

	gray := NewTones(colors.New(colors.SRGB, 0, 0, 0))
	c := gray.Tone(50).Std()
	assert.InDelta(t, float64(c.R), float64(c.G), 1)
	assert.InDelta(t, float64(c.G), float64(c.B), 1)
}

func TestSpaced(t *testing.T) {
	seen := map[color.RGBA]bool{}
	var cs []colors.Color
	for i := range 40 {
		c := Spaced(i, false)
		assert.True(t, gamut.InGamut(c, nil, 1e-6), "index %d", i)
		seen[c.Std()] = true
		cs = append(cs, c)
	}
	assert.Len(t, seen, 40)
	assert.Equal(t, Spaced(3, false), Spaced(43, false))
	assert.NotEqual(t, Spaced(3, false), Spaced(3, true))
	assert.Equal(t, Spaced(4, false), Spaced(4, true))
	imagex.Assert(t, Image(cs, 8, 16), "spaced")
}

func TestImage(t *testing.T) {
	cs := []colors.Color{
		colors.New(colors.SRGB, 1, 0, 0),
		colors.New(colors.SRGB, 0, 1, 0),
		colors.New(colors.SRGB, 0, 0, 1),
	}
	img := Image(cs, 2, 4)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(3, 3))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, img.RGBAAt(4, 0))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(0, 7))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(7, 7))

	assert.Equal(t, 4, Image(cs, 0, 4).Bounds().Dx())
}
