// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "math"

// Luminance returns the relative luminance of the color,
// which is its Y in [XYZD65].
func Luminance(c Color) float64 {
	return Convert(c, XYZD65).Coords[1].Float()
}

// WithLuminance returns the color with its relative luminance
// set to the given value, expressed in its own space.
func WithLuminance(c Color, y float64) Color {
	xyz := Convert(c, XYZD65)
	xyz.Coords[1] = Val(y)
	return Convert(xyz, c.Space)
}

// XY returns the CIE 1931 xy chromaticity of the color.
func XY(c Color) (x, y float64) {
	v := Convert(c, XYZD65).Values()
	sum := v[0] + v[1] + v[2]
	if sum == 0 {
		return 0, 0
	}
	return v[0] / sum, v[1] / sum
}

// UV returns the CIE 1976 u'v' chromaticity of the color.
func UV(c Color) (u, v float64) {
	u, v = uvPrime(Convert(c, XYZD65).Values())
	if math.IsNaN(u) || math.IsNaN(v) {
		return 0, 0
	}
	return u, v
}
