// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package adapt provides white points and chromatic adaptation
// transforms between CIE XYZ values relative to different whites.
package adapt

import (
	"sync"

	"cogentcore.org/colorspace/math64"
)

// bradfordD65ToD50 is the Bradford D65 to D50 matrix as published with
// full precision. Its inverse is used for the opposite direction so
// that the two round trip exactly.
var (
	bradfordD65ToD50 = math64.Mat3{
		1.0479298208405488, 0.022946793341019088, -0.05019222954313557,
		0.029627815688159344, 0.990434484573249, -0.01707382502938514,
		-0.009243058152591178, 0.015055144896577895, 0.7518742899580008,
	}
	bradfordD50ToD65, _ = bradfordD65ToD50.Inverse()
)

type matrixKey struct {
	from, to math64.Vec3
	cat      CAT
}

var matrixCache sync.Map // matrixKey -> math64.Mat3

// Matrix returns the matrix that adapts XYZ values relative to
// the white point from to XYZ values relative to the white point to,
// using the given transform. Matrices are computed once and cached.
func Matrix(from, to math64.Vec3, cat CAT) math64.Mat3 {
	if from == to {
		return math64.Identity3
	}
	if cat == Bradford {
		switch {
		case from == D65 && to == D50:
			return bradfordD65ToD50
		case from == D50 && to == D65:
			return bradfordD50ToD65
		}
	}
	key := matrixKey{from, to, cat}
	if m, ok := matrixCache.Load(key); ok {
		return m.(math64.Mat3)
	}
	m := computeMatrix(from, to, cat)
	matrixCache.Store(key, m)
	return m
}

func computeMatrix(from, to math64.Vec3, cat CAT) math64.Mat3 {
	toCone, fromCone := cat.ConeMatrices()
	src := toCone.MulVec3(from)
	dst := toCone.MulVec3(to)
	scale := math64.Diag3(dst.Div(src))
	return fromCone.Mul(scale).Mul(toCone)
}

// Adapt returns the given XYZ values relative to the white point from,
// adapted to be relative to the white point to, using the given transform.
// It returns xyz unchanged if the two white points are equal.
func Adapt(xyz, from, to math64.Vec3, cat CAT) math64.Vec3 {
	if from == to {
		return xyz
	}
	return Matrix(from, to, cat).MulVec3(xyz)
}
