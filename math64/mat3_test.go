// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

import (
	"math"
	"testing"

	"cogentcore.org/colorspace/base/tolassert"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/f64"
)

const StandardTol = 1.0e-12

func TolAssertEqualMat(t *testing.T, tol float64, mt, ma Mat3) {
	t.Helper()
	tolassert.EqualTolSlice(t, mt[:], ma[:], tol)
}

func TestMat3(t *testing.T) {
	m := M3(V3(2, 0, 1), V3(1, 3, 2), V3(1, 1, 1))
	assert.Equal(t, V3(3, 6, 3), m.MulVec3(V3(1, 1, 1)))
	assert.Equal(t, m, Identity3.Mul(m))
	assert.Equal(t, m, m.Mul(Identity3))
	assert.Equal(t, V3(2, 1, 1), m.Col(0))
	assert.Equal(t, V3(1, 3, 2), m.Row(1))
	assert.Equal(t, m, m.Transpose().Transpose())

	inv, ok := m.Inverse()
	assert.True(t, ok)
	TolAssertEqualMat(t, StandardTol, Identity3, m.Mul(inv))
	TolAssertEqualMat(t, StandardTol, Identity3, inv.Mul(m))

	_, ok = Mat3{}.Inverse()
	assert.False(t, ok)

	assert.Equal(t, Mat3{2, 0, 0, 0, 3, 0, 0, 0, 4}, Diag3(V3(2, 3, 4)))
	assert.Equal(t, f64.Mat3{2, 0, 1, 1, 3, 2, 1, 1, 1}, f64.Mat3(m))
}

func TestVec3(t *testing.T) {
	v := V3(3, 4, 0)
	assert.Equal(t, 5.0, v.Length())
	assert.Equal(t, 5.0, v.DistanceTo(Vec3{}))
	assert.Equal(t, V3(6, 8, 0), v.MulScalar(2))
	assert.Equal(t, V3(9, 16, 0), v.Mul(v))
	assert.Equal(t, 0.0, v.Min())
	assert.Equal(t, 4.0, v.Max())
}

func TestMath(t *testing.T) {
	assert.Equal(t, 340.0, ConstrainAngle(-20))
	assert.Equal(t, 20.0, ConstrainAngle(380))
	assert.Equal(t, 0.0, ConstrainAngle(360))
	assert.Equal(t, -8.0, Spow(-4, 1.5))
	assert.Equal(t, 0.0, Zdiv(1, 0))
	assert.Equal(t, 2.0, Clamp(5.0, 0, 2))
	assert.Equal(t, -2, Log10Floor(0.02))
	assert.Equal(t, 0, Log10Floor(2))
	tolassert.EqualTol(t, math.Pi, DegToRad(180), StandardTol)
	assert.Equal(t, 5.0, Lerp(0.0, 10, 0.5))
}
