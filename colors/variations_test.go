// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"math"
	"testing"

	"cogentcore.org/colorspace/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestDeltas(t *testing.T) {
	a := NewAlpha(HSL, 350, 50, 50, 1)
	b := NewAlpha(HSL, 10, 40, 50, 0.5)
	d := Deltas(a, b, nil, Shorter)
	assert.Equal(t, HSL, d.Space)
	tolassert.EqualTol(t, -20, d.Coords[0].Value, 1e-9)
	tolassert.EqualTol(t, 10, d.Coords[1].Value, 1e-9)
	tolassert.EqualTol(t, 0, d.Coords[2].Value, 1e-9)
	tolassert.EqualTol(t, 0.5, d.Alpha.Value, 1e-9)

	d = Deltas(a, b, nil, Longer)
	tolassert.EqualTol(t, 340, d.Coords[0].Value, 1e-9)

	g := New(HSL, math.NaN(), 0, 50)
	d = Deltas(a, g, nil, Shorter)
	assert.Equal(t, Val(0), d.Coords[0])
	d = Deltas(g, g, nil, Shorter)
	assert.True(t, d.Coords[0].None)
}

func TestDistance(t *testing.T) {
	black, white := New(SRGB, 0, 0, 0), New(SRGB, 1, 1, 1)
	tolassert.EqualTol(t, 100, Distance(black, white, nil), 1e-3)
	tolassert.EqualTol(t, 1, Distance(black, white, SRGBLinear)/math.Sqrt(3), 1e-9)
	tolassert.EqualTol(t, 0, Distance(white, white, OKLab), 1e-12)
	tolassert.EqualTol(t, 50, Distance(New(HSL, math.NaN(), 0, 0), New(HSL, 120, 0, 50), HSL), 1e-12)
}

func TestLighten(t *testing.T) {
	c := New(SRGB, 0.2, 0.4, 0.6)
	l := Lighten(c, DefaultVariation)
	assert.Equal(t, SRGB, l.Space)
	ol, oc := Convert(c, OKLCh), Convert(l, OKLCh)
	tolassert.EqualTol(t, ol.Coords[0].Value*1.25, oc.Coords[0].Value, 1e-9)
	tolassert.EqualTol(t, ol.Coords[2].Value, oc.Coords[2].Value, 1e-6)

	d := Darken(c, 0.5)
	tolassert.EqualTol(t, ol.Coords[0].Value*0.5, Convert(d, OKLCh).Coords[0].Value, 1e-9)
}

func TestLuminance(t *testing.T) {
	tolassert.EqualTol(t, 1, Luminance(New(SRGB, 1, 1, 1)), 1e-4)
	tolassert.EqualTol(t, 0.212639, Luminance(New(SRGB, 1, 0, 0)), 1e-5)
	c := WithLuminance(New(SRGB, 1, 0, 0), 0.1)
	tolassert.EqualTol(t, 0.1, Luminance(c), 1e-9)

	x, y := XY(New(SRGB, 1, 1, 1))
	tolassert.EqualTol(t, 0.3127, x, 1e-4)
	tolassert.EqualTol(t, 0.3290, y, 1e-4)
	x, y = XY(New(SRGB, 0, 0, 0))
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
	u, v := UV(New(SRGB, 1, 1, 1))
	tolassert.EqualTol(t, 0.1978, u, 1e-4)
	tolassert.EqualTol(t, 0.4683, v, 1e-4)
}

func TestDeltasHue(t *testing.T) {
	d := Deltas(New(OKLCh, 0.5, 0.2, -180), New(OKLCh, 0.5, 0.2, 720), nil, Shorter)
	tolassert.EqualTol(t, 180, d.Coords[2].Value, 1e-9)

	d = Deltas(NewAlpha(SRGB, 1, 0, 0, 1), NewAlpha(HSL, 0, 100, 50, 1), nil, Shorter)
	assert.Equal(t, SRGB, d.Space)
	tolassert.EqualTolSlice(t, []float64{0, 0, 0}, sl(d.Values()), 1e-9)

	d = Deltas(New(SRGB, 1, 0, 0), New(SRGB, 0.5, 0, 0), OKLCh, Shorter)
	tolassert.EqualTol(t, 0.2523245655926571, d.Coords[0].Value, 1e-4)
	tolassert.EqualTol(t, 0.10354211689049864, d.Coords[1].Value, 1e-4)
	tolassert.EqualTol(t, 0, d.Coords[2].Value, 1e-4)
}
