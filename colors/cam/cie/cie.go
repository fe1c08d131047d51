// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the CIE 1976 L*a*b* nonlinearity and the
// conversions between relative luminance Y and lightness L*.
package cie

import (
	"math"

	"cogentcore.org/colorspace/math64"
)

const (
	// Epsilon is the value of Y / Yn below which the lightness
	// function is linear: (6/29)^3.
	Epsilon = 216.0 / 24389.0

	// Epsilon3 is the cube root of [Epsilon]: 6/29.
	Epsilon3 = 24.0 / 116.0

	// Kappa is the slope of the linear segment: (29/3)^3.
	Kappa = 24389.0 / 27.0
)

// LABCompress is the forward L*a*b* nonlinearity applied to a
// white-relative tristimulus value.
func LABCompress(t float64) float64 {
	if t > Epsilon {
		return math.Cbrt(t)
	}
	return (Kappa*t + 16) / 116
}

// LABUncompress is the inverse of [LABCompress].
func LABUncompress(t float64) float64 {
	if t > Epsilon3 {
		return t * t * t
	}
	return (116*t - 16) / Kappa
}

// XYZToLAB converts XYZ values to L*a*b* relative to the given white point.
func XYZToLAB(xyz, white math64.Vec3) math64.Vec3 {
	fx := LABCompress(xyz[0] / white[0])
	fy := LABCompress(xyz[1] / white[1])
	fz := LABCompress(xyz[2] / white[2])
	return math64.V3(116*fy-16, 500*(fx-fy), 200*(fy-fz))
}

// LABToXYZ converts L*a*b* values relative to the given white point to XYZ.
func LABToXYZ(lab, white math64.Vec3) math64.Vec3 {
	fy := (lab[0] + 16) / 116
	fx := lab[1]/500 + fy
	fz := fy - lab[2]/200
	var y float64
	if lab[0] > Kappa*Epsilon {
		y = fy * fy * fy
	} else {
		y = lab[0] / Kappa
	}
	return math64.V3(LABUncompress(fx)*white[0], y*white[1], LABUncompress(fz)*white[2])
}

// LToY converts a lightness L* value in the range 0-100 to a
// relative luminance Y value in the range 0-1.
func LToY(l float64) float64 {
	if l > Kappa*Epsilon {
		fy := (l + 16) / 116
		return fy * fy * fy
	}
	return l / Kappa
}

// YToL converts a relative luminance Y value in the range 0-1 to
// a lightness L* value in the range 0-100.
func YToL(y float64) float64 {
	return 116*LABCompress(y) - 16
}
