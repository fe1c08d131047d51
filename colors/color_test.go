// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"math"
	"testing"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/base/tolassert"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoord(t *testing.T) {
	assert.True(t, Val(math.NaN()).IsNone())
	assert.Equal(t, 3.0, Val(3).Or(1))
	assert.Equal(t, 1.0, None.Or(1))
	assert.Equal(t, 0.0, None.Float())
	assert.True(t, math.IsNaN(None.NaN()))
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "0.5", Val(0.5).String())
}

func TestAlpha(t *testing.T) {
	var zero Color
	assert.Equal(t, 0.0, zero.AlphaValue())
	assert.Equal(t, 1.0, New(SRGB, 1, 0, 0).AlphaValue())
	c := New(SRGB, 1, 0, 0)
	c.Alpha = None
	assert.Equal(t, 1.0, c.AlphaValue())
	assert.Equal(t, 0.25, NewAlpha(SRGB, 1, 0, 0, 0.25).AlphaValue())
}

func TestFromSlice(t *testing.T) {
	c, err := FromSlice(SRGB, []float64{1, math.NaN(), 0}, 0.5)
	require.NoError(t, err)
	assert.True(t, c.Coords[1].None)
	assert.Equal(t, 0.5, c.AlphaValue())

	c, err = FromSlice(SRGB, []float64{1, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, Val(1), c.Alpha)

	for _, test := range []struct {
		coords []float64
		alpha  []float64
		index  int
	}{
		{[]float64{1, 0}, nil, -1},
		{[]float64{1, 0, 0, 0}, nil, -1},
		{[]float64{1, math.Inf(1), 0}, nil, 1},
		{[]float64{1, 0, 0}, []float64{math.Inf(-1)}, 3},
		{[]float64{1, 0, 0}, []float64{1, 1}, 3},
	} {
		_, err := FromSlice(SRGB, test.coords, test.alpha...)
		ice, ok := errors.AsType[*InvalidCoordinateError](err)
		require.True(t, ok, "%v", test.coords)
		assert.Equal(t, test.index, ice.Index)
		assert.Equal(t, "srgb", ice.Space)
	}
	_, err = FromSlice(nil, []float64{1, 0, 0})
	assert.Error(t, err)
}

func TestGetSet(t *testing.T) {
	red := New(SRGB, 1, 0, 0)
	g, err := red.Get("g")
	require.NoError(t, err)
	assert.Equal(t, Val(0), g)

	l, err := red.Get("oklch.l")
	require.NoError(t, err)
	tolassert.EqualTol(t, 0.627955, l.Value, 1e-4)

	_, err = red.Get("oklch.q")
	assert.Error(t, err)
	_, err = red.Get("nope.l")
	assert.Error(t, err)

	dark, err := red.Set("oklch.l", Val(0.3))
	require.NoError(t, err)
	assert.Equal(t, SRGB, dark.Space)
	l, _ = dark.Get("oklch.l")
	tolassert.EqualTol(t, 0.3, l.Value, 1e-9)

	blue, err := red.Set("b", Val(1))
	require.NoError(t, err)
	assert.Equal(t, New(SRGB, 1, 0, 1), blue)
	assert.Equal(t, New(SRGB, 1, 0, 0), red)
}

func TestString(t *testing.T) {
	assert.Equal(t, "srgb(1 0 0)", New(SRGB, 1, 0, 0).String())
	assert.Equal(t, "lch(50.123 20 none / 0.5)", NewAlpha(LCh, 50.12345, 20, math.NaN(), 0.5).String())
	assert.Equal(t, "oklab(0.62796 0.22486 0.12585)", Convert(New(SRGB, 1, 0, 0), OKLab).String())
}

func TestStd(t *testing.T) {
	c := FromStd(color.RGBA{255, 0, 0, 255})
	assert.Equal(t, New(SRGB, 1, 0, 0), c)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, c.Std())

	half := NewAlpha(SRGB, 1, 0.5, 0, 0.5)
	assert.Equal(t, color.RGBA{128, 64, 0, 128}, half.Std())

	// out of gamut channels are clipped
	p3 := New(P3, 1, 0, 0)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, p3.Std())

	rp, err := FromName("RebeccaPurple")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x66, 0x33, 0x99, 0xff}, rp.Std())
	tr, err := FromName("transparent")
	require.NoError(t, err)
	assert.Equal(t, 0.0, tr.AlphaValue())
	_, err = FromName("notacolor")
	assert.Error(t, err)
}

// TestColorful checks the conversions against an
// independent implementation.
func TestColorful(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-3)
	for _, hex := range []string{"#ff0000", "#00ff00", "#0000ff", "#336699", "#c0ffee", "#808080", "#fa8072"} {
		cf, err := colorful.Hex(hex)
		require.NoError(t, err)
		c := New(SRGB, cf.R, cf.G, cf.B)

		x, y, z := cf.Xyz()
		if diff := cmp.Diff([]float64{x, y, z}, sl(Convert(c, XYZD65).Values()), approx); diff != "" {
			t.Errorf("%s xyz mismatch (-colorful +colors):\n%s", hex, diff)
		}

		l, a, b := cf.OkLab()
		if diff := cmp.Diff([]float64{l, a, b}, sl(Convert(c, OKLab).Values()), approx); diff != "" {
			t.Errorf("%s oklab mismatch (-colorful +colors):\n%s", hex, diff)
		}

		h, s, v := cf.Hsv()
		hsv := Convert(c, HSV)
		assert.InDelta(t, s*100, hsv.Coords[1].Value, 0.05, hex)
		assert.InDelta(t, v*100, hsv.Coords[2].Value, 0.05, hex)
		if !hsv.Coords[0].None {
			assert.InDelta(t, h, hsv.Coords[0].Value, 0.05, hex)
		}

		// go-colorful uses the D65 white for Lab
		l, a, b = cf.Lab()
		lab := Convert(c, LabD65).Values()
		if diff := cmp.Diff([]float64{l * 100, a * 100, b * 100}, sl(lab), cmpopts.EquateApprox(0, 0.05)); diff != "" {
			t.Errorf("%s lab mismatch (-colorful +colors):\n%s", hex, diff)
		}
	}
}
