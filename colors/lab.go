// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"math"

	"cogentcore.org/colorspace/colors/adapt"
	"cogentcore.org/colorspace/colors/cam/cie"
	"cogentcore.org/colorspace/math64"
)

var labCoords = [3]CoordInfo{
	ref("l", "Lightness", 0, 100),
	ref("a", "a", -125, 125),
	ref("b", "b", -125, 125),
}

// Lab is the CIE L*a*b* space relative to a D50 white.
var Lab = &Space{
	ID:     "lab",
	Name:   "Lab",
	Coords: labCoords,
	White:  adapt.D50,
	Base:   XYZD50,
	ToBase: func(v math64.Vec3) math64.Vec3 {
		return cie.LABToXYZ(v, adapt.D50)
	},
	FromBase: func(v math64.Vec3) math64.Vec3 {
		return cie.XYZToLAB(v, adapt.D50)
	},
}

// LabD65 is the CIE L*a*b* space relative to a D65 white.
var LabD65 = &Space{
	ID:     "lab-d65",
	Name:   "Lab D65",
	Coords: labCoords,
	White:  adapt.D65,
	Base:   XYZD65,
	ToBase: func(v math64.Vec3) math64.Vec3 {
		return cie.LABToXYZ(v, adapt.D65)
	},
	FromBase: func(v math64.Vec3) math64.Vec3 {
		return cie.XYZToLAB(v, adapt.D65)
	},
}

// NewLChSpace returns a new cylindrical form of the given Lab-like
// space, with lightness, chroma, and hue coordinates. The hue is
// missing when both opponent coordinates are smaller than epsilon.
func NewLChSpace(id, name string, base *Space, epsilon, maxChroma float64) *Space {
	return &Space{
		ID:   id,
		Name: name,
		Coords: [3]CoordInfo{
			{ID: "l", Name: "Lightness", RefRange: base.Coords[0].RefRange, Precision: 5},
			ref("c", "Chroma", 0, maxChroma),
			hue("h", "Hue"),
		},
		White:      base.White,
		Base:       base,
		GamutSpace: base,
		FromBase: func(v math64.Vec3) math64.Vec3 {
			return ToPolar(v, epsilon)
		},
		ToBase: FromPolar,
	}
}

// ToPolar converts the given Lab-like coordinates to LCh coordinates,
// with a NaN hue when both opponent coordinates are
// smaller than epsilon in magnitude.
func ToPolar(v math64.Vec3, epsilon float64) math64.Vec3 {
	a, b := v[1], v[2]
	h := math.NaN()
	if math.Abs(a) >= epsilon || math.Abs(b) >= epsilon {
		h = math64.ConstrainAngle(math64.RadToDeg(math.Atan2(b, a)))
	}
	return math64.V3(v[0], math.Sqrt(a*a+b*b), h)
}

// FromPolar converts the given LCh coordinates to Lab-like coordinates.
// A negative chroma counts as 0 and a NaN hue as 0.
func FromPolar(v math64.Vec3) math64.Vec3 {
	c := max(v[1], 0)
	h := v[2]
	if math.IsNaN(h) {
		h = 0
	}
	hr := math64.DegToRad(h)
	return math64.V3(v[0], c*math.Cos(hr), c*math.Sin(hr))
}

// LCh is the cylindrical form of [Lab].
var LCh = NewLChSpace("lch", "LCH", Lab, 0.02, 150)

// Luv is the CIE L*u*v* space relative to a D65 white.
var Luv = &Space{
	ID:   "luv",
	Name: "Luv",
	Coords: [3]CoordInfo{
		ref("l", "Lightness", 0, 100),
		ref("u", "u", -215, 215),
		ref("v", "v", -215, 215),
	},
	White:    adapt.D65,
	Base:     XYZD65,
	ToBase:   luvToXYZ,
	FromBase: xyzToLuv,
}

// LChuv is the cylindrical form of [Luv].
var LChuv = NewLChSpace("lchuv", "LChuv", Luv, 0.02, 220)

// uvPrime returns the CIE 1976 u'v' chromaticity of the given XYZ.
func uvPrime(xyz math64.Vec3) (u, v float64) {
	d := xyz[0] + 15*xyz[1] + 3*xyz[2]
	return 4 * xyz[0] / d, 9 * xyz[1] / d
}

func xyzToLuv(xyz math64.Vec3) math64.Vec3 {
	up, vp := uvPrime(xyz)
	wu, wv := uvPrime(adapt.D65)
	y := xyz[1] / adapt.D65[1]
	l := 116*math.Cbrt(y) - 16
	if y <= cie.Epsilon {
		l = cie.Kappa * y
	}
	u := 13 * l * (up - wu)
	v := 13 * l * (vp - wv)
	if math.IsNaN(u) || math.IsInf(u, 0) || math.IsNaN(v) || math.IsInf(v, 0) {
		return math64.V3(l, 0, 0)
	}
	return math64.V3(l, u, v)
}

func luvToXYZ(luv math64.Vec3) math64.Vec3 {
	l, u, v := luv[0], luv[1], luv[2]
	if l == 0 || math.IsNaN(l) {
		return math64.Vec3{}
	}
	wu, wv := uvPrime(adapt.D65)
	up := u/(13*l) + wu
	vp := v/(13*l) + wv
	y := adapt.D65[1] * math.Pow((l+16)/116, 3)
	if l <= 8 {
		y = adapt.D65[1] * l / cie.Kappa
	}
	return math64.V3(y*(9*up)/(4*vp), y, y*(12-3*up-20*vp)/(4*vp))
}
