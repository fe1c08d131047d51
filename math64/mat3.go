// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math64

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Vec3 is a 3D vector of float64 values. It has the same
// layout as [f64.Vec3] and converts to and from it directly.
type Vec3 f64.Vec3

// V3 returns a new [Vec3] with the given components.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// MulScalar returns v scaled by s.
func (v Vec3) MulScalar(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Mul returns the component-wise product of v and o.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v[0] * o[0], v[1] * o[1], v[2] * o[2]}
}

// Div returns the component-wise quotient of v and o.
func (v Vec3) Div(o Vec3) Vec3 {
	return Vec3{v[0] / o[0], v[1] / o[1], v[2] / o[2]}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// DistanceTo returns the Euclidean distance between v and o.
func (v Vec3) DistanceTo(o Vec3) float64 {
	return v.Sub(o).Length()
}

// Map returns a new vector with f applied to each component.
func (v Vec3) Map(f func(x float64) float64) Vec3 {
	return Vec3{f(v[0]), f(v[1]), f(v[2])}
}

// Min returns the smallest component.
func (v Vec3) Min() float64 {
	return min(v[0], v[1], v[2])
}

// Max returns the largest component.
func (v Vec3) Max() float64 {
	return max(v[0], v[1], v[2])
}

// Mat3 is a 3x3 matrix in row major order, with the same
// layout as [f64.Mat3].
type Mat3 f64.Mat3

// Identity3 is the 3x3 identity matrix.
var Identity3 = Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}

// M3 returns a [Mat3] from the given rows.
func M3(r0, r1, r2 Vec3) Mat3 {
	return Mat3{
		r0[0], r0[1], r0[2],
		r1[0], r1[1], r1[2],
		r2[0], r2[1], r2[2],
	}
}

// Diag3 returns a diagonal matrix with the given diagonal.
func Diag3(d Vec3) Mat3 {
	return Mat3{d[0], 0, 0, 0, d[1], 0, 0, 0, d[2]}
}

// At returns the element at row r and column c.
func (m Mat3) At(r, c int) float64 {
	return m[r*3+c]
}

// Row returns row r of the matrix.
func (m Mat3) Row(r int) Vec3 {
	return Vec3{m[r*3], m[r*3+1], m[r*3+2]}
}

// Col returns column c of the matrix.
func (m Mat3) Col(c int) Vec3 {
	return Vec3{m[c], m[3+c], m[6+c]}
}

// MulVec3 returns the product m * v, treating v as a column vector.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Mul returns the matrix product m * o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var res Mat3
	for r := range 3 {
		for c := range 3 {
			res[r*3+c] = m[r*3]*o[c] + m[r*3+1]*o[3+c] + m[r*3+2]*o[6+c]
		}
	}
	return res
}

// Transpose returns the transpose of m.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant returns the determinant of m.
func (m Mat3) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Inverse returns the inverse of m. If m is singular
// it returns the zero matrix and false.
func (m Mat3) Inverse() (Mat3, bool) {
	det := m.Determinant()
	if det == 0 {
		return Mat3{}, false
	}
	id := 1 / det
	return Mat3{
		(m[4]*m[8] - m[5]*m[7]) * id,
		(m[2]*m[7] - m[1]*m[8]) * id,
		(m[1]*m[5] - m[2]*m[4]) * id,
		(m[5]*m[6] - m[3]*m[8]) * id,
		(m[0]*m[8] - m[2]*m[6]) * id,
		(m[2]*m[3] - m[0]*m[5]) * id,
		(m[3]*m[7] - m[4]*m[6]) * id,
		(m[1]*m[6] - m[0]*m[7]) * id,
		(m[0]*m[4] - m[1]*m[3]) * id,
	}, true
}
