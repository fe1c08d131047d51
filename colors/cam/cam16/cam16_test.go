// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam16

import (
	"testing"

	"cogentcore.org/colorspace/base/tolassert"
	"cogentcore.org/colorspace/colors/adapt"
	"cogentcore.org/colorspace/math64"
	"github.com/stretchr/testify/assert"
)

func TestView(t *testing.T) {
	vw := StdView
	tolassert.EqualTol(t, 0.69, vw.C, 1e-12)
	tolassert.EqualTol(t, 1, vw.NC, 1e-12)
	tolassert.EqualTol(t, 0.27313053667320736, vw.FL, 1e-12)
	tolassert.EqualTol(t, 0.7229238694926879, vw.FLRoot, 1e-12)
	tolassert.EqualTol(t, 0.2, vw.N, 1e-12)
	tolassert.EqualTol(t, 1.9272135954999579, vw.Z, 1e-12)
	tolassert.EqualTol(t, 1.0003040045593807, vw.NBB, 1e-12)
	tolassert.EqualTol(t, 25.518496218771627, vw.AW, 1e-9)

	tolassert.EqualTol(t, 1.0208562217209207, vw.DRGB[0], 1e-9)
	tolassert.EqualTol(t, 0.9865141521462044, vw.DRGB[1], 1e-9)
	tolassert.EqualTol(t, 0.9348569172102289, vw.DRGB[2], 1e-9)
}

func TestSurround(t *testing.T) {
	var s Surround
	assert.NoError(t, s.SetString("Dim"))
	assert.Equal(t, Dim, s)
	assert.Equal(t, "average", Average.String())
	assert.Error(t, s.SetString("bright"))

	dark := NewView(adapt.D65, 64/3.14159*0.2, 20, Dark, false)
	assert.Equal(t, 0.525, dark.C)
	assert.Equal(t, 0.8, dark.NC)
	disc := NewView(adapt.D65, 100, 20, Average, true)
	tolassert.EqualTol(t, 100/(CAT16.MulVec3(adapt.D65.MulScalar(100))[0]), disc.DRGB[0], 1e-12)
}

func TestCAM(t *testing.T) {
	camw := FromXYZ(adapt.D65, StdView)
	tolassert.Equal(t, 100, camw.Lightness)
	tolassert.Equal(t, 3.094238, camw.Chroma)
	tolassert.Equal(t, 209.533334, camw.Hue)
	tolassert.Equal(t, 13.446965, camw.Saturation)
	tolassert.Equal(t, 123.707974, camw.Brightness)
	tolassert.Equal(t, 2.236898, camw.Colorfulness)
	tolassert.Equal(t, 265.997330, camw.HueQuadrature)

	red := math64.V3(0.41239079926595934, 0.21263900587151027, 0.01933081871559182)
	camr := FromXYZ(red, StdView)
	tolassert.Equal(t, 46.025701, camr.Lightness)
	tolassert.Equal(t, 112.396687, camr.Chroma)
	tolassert.Equal(t, 27.393257, camr.Hue)
	tolassert.Equal(t, 98.395239, camr.Saturation)
	tolassert.Equal(t, 83.926266, camr.Brightness)
	tolassert.Equal(t, 81.254248, camr.Colorfulness)
	tolassert.Equal(t, 9.204194, camr.HueQuadrature)
}

func TestXYZ(t *testing.T) {
	tests := []math64.Vec3{{0.5, 0.1, 0.6}, {0.3, 0.5, 0.1}, {0.4, 0.2, 0.8}, {0.777, 0.424, 0.521}}
	for _, xyz := range tests {
		cam := FromXYZ(xyz, StdView)

		res := FromJMh(cam.Lightness, cam.Colorfulness, cam.Hue, StdView)
		tolassert.EqualTolSlice(t, xyz[:], res[:], 1e-9)

		res = FromJCh(cam.Lightness, cam.Chroma, cam.Hue, StdView)
		tolassert.EqualTolSlice(t, xyz[:], res[:], 1e-9)

		res = FromQsH(cam.Brightness, cam.Saturation, cam.HueQuadrature, StdView)
		tolassert.EqualTolSlice(t, xyz[:], res[:], 1e-6)
	}
	assert.Equal(t, math64.Vec3{}, FromJMh(0, 10, 40, StdView))
	assert.Equal(t, math64.Vec3{}, FromQsH(0, 10, 40, StdView))
}

func TestHueQuadrature(t *testing.T) {
	tolassert.Equal(t, 100, HueQuadrature(90))
	tolassert.Equal(t, 253.338307, HueQuadrature(200))
	for _, h := range []float64{25, 90, 150, 200, 300, 359} {
		tolassert.EqualTol(t, h, InvHueQuadrature(HueQuadrature(h)), 1e-9)
	}
}
