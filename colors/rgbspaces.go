// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"math"

	"cogentcore.org/colorspace/colors/adapt"
)

// SRGBToLinear decodes one sRGB channel value into linear light,
// extended to negative values by odd symmetry.
func SRGBToLinear(v float64) float64 {
	av := math.Abs(v)
	if av <= 0.04045 {
		return v / 12.92
	}
	return math.Copysign(math.Pow((av+0.055)/1.055, 2.4), v)
}

// SRGBFromLinear encodes one linear-light channel value as sRGB,
// extended to negative values by odd symmetry.
func SRGBFromLinear(v float64) float64 {
	av := math.Abs(v)
	if av <= 0.0031308 {
		return v * 12.92
	}
	return math.Copysign(1.055*math.Pow(av, 1/2.4)-0.055, v)
}

var srgbPrimaries = [3][2]float64{{0.640, 0.330}, {0.300, 0.600}, {0.150, 0.060}}

// SRGBLinear is the linear-light form of [SRGB].
var SRGBLinear = NewRGBSpace(RGBOptions{
	ID:        "srgb-linear",
	Name:      "Linear sRGB",
	Primaries: srgbPrimaries,
	White:     adapt.D65,
})

// SRGB is the standard sRGB space of the web.
var SRGB = NewRGBSpace(RGBOptions{
	ID:         "srgb",
	Name:       "sRGB",
	Aliases:    []string{"rgb"},
	Linear:     SRGBLinear,
	ToLinear:   SRGBToLinear,
	FromLinear: SRGBFromLinear,
})

// P3Linear is the linear-light form of [P3].
var P3Linear = NewRGBSpace(RGBOptions{
	ID:        "p3-linear",
	Name:      "Linear P3",
	Primaries: [3][2]float64{{0.680, 0.320}, {0.265, 0.690}, {0.150, 0.060}},
	White:     adapt.D65,
})

// P3 is the Display P3 space, which uses the sRGB transfer function.
var P3 = NewRGBSpace(RGBOptions{
	ID:         "p3",
	Name:       "P3",
	Aliases:    []string{"display-p3"},
	Linear:     P3Linear,
	ToLinear:   SRGBToLinear,
	FromLinear: SRGBFromLinear,
})

// A98RGBLinear is the linear-light form of [A98RGB].
var A98RGBLinear = NewRGBSpace(RGBOptions{
	ID:        "a98rgb-linear",
	Name:      "Linear Adobe 98 RGB compatible",
	Primaries: [3][2]float64{{0.640, 0.330}, {0.210, 0.710}, {0.150, 0.060}},
	White:     adapt.D65,
})

// A98RGB is the Adobe 98 RGB compatible space.
var A98RGB = NewRGBSpace(RGBOptions{
	ID:      "a98rgb",
	Name:    "Adobe 98 RGB compatible",
	Aliases: []string{"a98-rgb"},
	Linear:  A98RGBLinear,
	ToLinear: func(v float64) float64 {
		return math.Copysign(math.Pow(math.Abs(v), 563.0/256), v)
	},
	FromLinear: func(v float64) float64 {
		return math.Copysign(math.Pow(math.Abs(v), 256.0/563), v)
	},
})

// ProPhotoLinear is the linear-light form of [ProPhoto].
var ProPhotoLinear = NewRGBSpace(RGBOptions{
	ID:        "prophoto-linear",
	Name:      "Linear ProPhoto",
	Primaries: [3][2]float64{{0.734699, 0.265301}, {0.159597, 0.840403}, {0.036598, 0.000105}},
	White:     adapt.D50,
	XYZ:       XYZD50,
})

const prophotoEt = 1.0 / 512

// ProPhoto is the ProPhoto RGB space, relative to a D50 white.
var ProPhoto = NewRGBSpace(RGBOptions{
	ID:      "prophoto",
	Name:    "ProPhoto",
	Aliases: []string{"prophoto-rgb"},
	Linear:  ProPhotoLinear,
	ToLinear: func(v float64) float64 {
		av := math.Abs(v)
		if av <= prophotoEt*16 {
			return v / 16
		}
		return math.Copysign(math.Pow(av, 1.8), v)
	},
	FromLinear: func(v float64) float64 {
		av := math.Abs(v)
		if av >= prophotoEt {
			return math.Copysign(math.Pow(av, 1/1.8), v)
		}
		return 16 * v
	},
})

// Rec. 2020 transfer function constants.
const (
	rec2020Alpha = 1.09929682680944
	rec2020Beta  = 0.018053968510807
)

// Rec2020Linear is the linear-light form of [Rec2020].
var Rec2020Linear = NewRGBSpace(RGBOptions{
	ID:        "rec2020-linear",
	Name:      "Linear REC.2020",
	Primaries: [3][2]float64{{0.708, 0.292}, {0.170, 0.797}, {0.131, 0.046}},
	White:     adapt.D65,
})

// Rec2020 is the ITU-R BT.2020 space.
var Rec2020 = NewRGBSpace(RGBOptions{
	ID:      "rec2020",
	Name:    "REC.2020",
	Linear:  Rec2020Linear,
	ToLinear: func(v float64) float64 {
		av := math.Abs(v)
		if av < rec2020Beta*4.5 {
			return v / 4.5
		}
		return math.Copysign(math.Pow((av+rec2020Alpha-1)/rec2020Alpha, 1/0.45), v)
	},
	FromLinear: func(v float64) float64 {
		av := math.Abs(v)
		if av >= rec2020Beta {
			return math.Copysign(rec2020Alpha*math.Pow(av, 0.45)-(rec2020Alpha-1), v)
		}
		return 4.5 * v
	},
})

var acesPrimaries = [3][2]float64{{0.713, 0.293}, {0.165, 0.830}, {0.128, 0.044}}

// ACEScg is the linear ACEScg space with AP1 primaries and the ACES white.
var ACEScg = NewRGBSpace(RGBOptions{
	ID:        "acescg",
	Name:      "ACEScg",
	Primaries: acesPrimaries,
	White:     adapt.ACES,
	Range:     [2]float64{0, 65504},
	Referred:  "scene",
})

// ACEScc transfer function constants.
var (
	acesccEpsilon = math.Exp2(-16)
	acesccLow     = (9.72 - 15) / 17.52
	acesccHigh    = (math.Log2(65504) + 9.72) / 17.52
)

// ACEScc is the logarithmically encoded form of [ACEScg].
var ACEScc = NewRGBSpace(RGBOptions{
	ID:     "acescc",
	Name:   "ACEScc",
	Linear: ACEScg,
	Range:  [2]float64{-0.3014, 1.468},
	ToLinear: func(v float64) float64 {
		switch {
		case v <= acesccLow:
			return (math.Exp2(v*17.52-9.72) - acesccEpsilon) * 2
		case v < acesccHigh:
			return math.Exp2(v*17.52 - 9.72)
		default:
			return 65504
		}
	},
	FromLinear: func(v float64) float64 {
		switch {
		case v <= 0:
			return (math.Log2(acesccEpsilon) + 9.72) / 17.52
		case v < acesccEpsilon:
			return (math.Log2(acesccEpsilon+v*0.5) + 9.72) / 17.52
		default:
			return (math.Log2(v) + 9.72) / 17.52
		}
	},
	Referred: "scene",
})
