// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"math"

	"cogentcore.org/colorspace/colors/adapt"
	"cogentcore.org/colorspace/math64"
)

// OKLab matrices, recomputed for the CSS D65 white with full precision.
var (
	xyzToOKLMS = math64.Mat3{
		0.8190224379967030, 0.3619062600528904, -0.1288737815209879,
		0.0329836539323885, 0.9292868615863434, 0.0361446663506424,
		0.0481771893596242, 0.2642395317527308, 0.6335478284694309,
	}
	okLMSToLab = math64.Mat3{
		0.2104542683093140, 0.7936177747023054, -0.0040720430116193,
		1.9779985324311684, -2.4285922420485799, 0.4505937096174110,
		0.0259040424655478, 0.7827717124575296, -0.8086757549230774,
	}
	okLMSToXYZ, _ = xyzToOKLMS.Inverse()
	okLabToLMS, _ = okLMSToLab.Inverse()
)

// OKLab is the OKLab perceptual space by Björn Ottosson.
var OKLab = &Space{
	ID:   "oklab",
	Name: "OKLab",
	Coords: [3]CoordInfo{
		ref("l", "Lightness", 0, 1),
		ref("a", "a", -0.4, 0.4),
		ref("b", "b", -0.4, 0.4),
	},
	White: adapt.D65,
	Base:  XYZD65,
	FromBase: func(xyz math64.Vec3) math64.Vec3 {
		return okLMSToLab.MulVec3(xyzToOKLMS.MulVec3(xyz).Map(math.Cbrt))
	},
	ToBase: func(lab math64.Vec3) math64.Vec3 {
		return okLMSToXYZ.MulVec3(okLabToLMS.MulVec3(lab).Map(func(x float64) float64 { return x * x * x }))
	},
}

// OKLCh is the cylindrical form of [OKLab].
var OKLCh = NewLChSpace("oklch", "OKLCh", OKLab, 0.0002, 0.4)
