// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math64 is a float64 based vector and matrix package
// for colorimetric computation, built on the array types of
// [golang.org/x/image/math/f64].
package math64

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = math.Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / math.Pi
)

// DegToRad converts a number from degrees to radians
func DegToRad(degrees float64) float64 {
	return degrees * DegToRadFactor
}

// RadToDeg converts a number from radians to degrees
func RadToDeg(radians float64) float64 {
	return radians * RadToDegFactor
}

// Clamp clamps x to the provided closed interval [a, b]
func Clamp[T constraints.Float | constraints.Integer](x, a, b T) T {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Lerp returns the linear interpolation between start and stop in proportion to amount
func Lerp[T constraints.Float](start, stop, amount T) T {
	return (1-amount)*start + amount*stop
}

// Spow raises the absolute value of base to exp and
// restores the sign of base on the result.
func Spow(base, exp float64) float64 {
	return math.Copysign(math.Pow(math.Abs(base), exp), base)
}

// Zdiv returns n / d, or 0 if d is 0.
func Zdiv(n, d float64) float64 {
	if d == 0 {
		return 0
	}
	return n / d
}

// ConstrainAngle returns the given angle in degrees
// wrapped into the half-open interval [0, 360).
func ConstrainAngle(deg float64) float64 {
	return math.Mod(math.Mod(deg, 360)+360, 360)
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// Log10Floor returns floor(log10(|x|)), or 0 for x == 0.
func Log10Floor(x float64) int {
	if x == 0 {
		return 0
	}
	return int(math.Floor(math.Log10(math.Abs(x))))
}
