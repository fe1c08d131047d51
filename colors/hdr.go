// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"math"

	"cogentcore.org/colorspace/colors/adapt"
	"cogentcore.org/colorspace/math64"
)

// SMPTE ST 2084 perceptual quantizer constants.
const (
	pqM1 = 2610.0 / 16384
	pqM2 = 2523.0 / 32
	pqC1 = 3424.0 / 4096
	pqC2 = 2413.0 / 128
	pqC3 = 2392.0 / 128

	// pqPeak is the luminance in cd/m² encoded as 1.
	pqPeak = 10000
)

// PQEncode applies the inverse EOTF of the perceptual quantizer to the
// given luminance in cd/m² with exponent m2 on the result.
func PQEncode(lum, m2 float64) float64 {
	x := math64.Spow(max(lum, 0)/pqPeak, pqM1)
	return math64.Spow((pqC1+pqC2*x)/(1+pqC3*x), m2)
}

// PQDecode is the inverse of [PQEncode], returning luminance in cd/m².
func PQDecode(v, m2 float64) float64 {
	x := math64.Spow(v, 1/m2)
	return pqPeak * math64.Spow(max(x-pqC1, 0)/(pqC2-pqC3*x), 1/pqM1)
}

// Rec2100Linear is the linear-light Rec. 2100 space, which has the
// primaries of [Rec2020Linear] with media white at 1.
var Rec2100Linear = NewRGBSpace(RGBOptions{
	ID:        "rec2100-linear",
	Name:      "Linear REC.2100",
	Primaries: [3][2]float64{{0.708, 0.292}, {0.170, 0.797}, {0.131, 0.046}},
	White:     adapt.D65,
})

// Rec2100PQ is the Rec. 2100 space with the perceptual quantizer
// transfer function, with media white at [AbsoluteWhite] cd/m².
var Rec2100PQ = NewRGBSpace(RGBOptions{
	ID:      "rec2100pq",
	Name:    "REC.2100-PQ",
	Aliases: []string{"rec2100-pq"},
	Linear:  Rec2100Linear,
	ToLinear: func(v float64) float64 {
		return PQDecode(v, pqM2) / AbsoluteWhite
	},
	FromLinear: func(v float64) float64 {
		return PQEncode(v*AbsoluteWhite, pqM2)
	},
})

// HLG constants.
const (
	hlgA = 0.17883277
	hlgB = 0.28466892 // 1 - 4a
	hlgC = 0.55991073 // 0.5 - a ln(4a)

	// hlgScale places 18% grey at 0.38 and media white at 0.75.
	hlgScale = 3.7743
)

// Rec2100HLG is the scene-referred Rec. 2100 space with the
// hybrid log-gamma transfer function.
var Rec2100HLG = NewRGBSpace(RGBOptions{
	ID:       "rec2100hlg",
	Name:     "REC.2100-HLG",
	Aliases:  []string{"rec2100-hlg"},
	Linear:   Rec2100Linear,
	Referred: "scene",
	ToLinear: func(v float64) float64 {
		if v <= 0.5 {
			return v * v / 3 * hlgScale
		}
		return (math.Exp((v-hlgC)/hlgA) + hlgB) / 12 * hlgScale
	},
	FromLinear: func(v float64) float64 {
		v /= hlgScale
		if v <= 1.0/12 {
			return math64.Spow(3*v, 0.5)
		}
		return hlgA*math.Log(12*v-hlgB) + hlgC
	},
})

// Jzazbz constants.
const (
	jzB  = 1.15
	jzG  = 0.66
	jzP  = 1.7 * 2523 / 32
	jzD  = -0.56
	jzD0 = 1.6295499532821566e-11
)

var (
	xyzToJzLMS = math64.Mat3{
		0.41478972, 0.579999, 0.0146480,
		-0.2015100, 1.120649, 0.0531008,
		-0.0166008, 0.264800, 0.6684799,
	}
	jzLMSToIab = math64.Mat3{
		0.5, 0.5, 0,
		3.524000, -4.066708, 0.542708,
		0.199076, 1.096799, -1.295875,
	}
	jzLMSToXYZ, _ = xyzToJzLMS.Inverse()
	jzIabToLMS, _ = jzLMSToIab.Inverse()
)

// Jzazbz is the Jzazbz space of Safdar et al., designed for
// high dynamic range and wide gamut imagery.
var Jzazbz = &Space{
	ID:   "jzazbz",
	Name: "Jzazbz",
	Coords: [3]CoordInfo{
		ref("jz", "Jz", 0, 1),
		ref("az", "az", -0.5, 0.5),
		ref("bz", "bz", -0.5, 0.5),
	},
	White: adapt.D65,
	Base:  XYZD65,
	FromBase: func(xyz math64.Vec3) math64.Vec3 {
		a := xyz.MulScalar(AbsoluteWhite)
		xm := jzB*a[0] - (jzB-1)*a[2]
		ym := jzG*a[1] - (jzG-1)*a[0]
		lms := xyzToJzLMS.MulVec3(math64.V3(xm, ym, a[2]))
		pq := lms.Map(func(v float64) float64 { return PQEncode(v, jzP) })
		iab := jzLMSToIab.MulVec3(pq)
		iz := iab[0]
		jz := (1+jzD)*iz/(1+jzD*iz) - jzD0
		return math64.V3(jz, iab[1], iab[2])
	},
	ToBase: func(jab math64.Vec3) math64.Vec3 {
		jz := jab[0] + jzD0
		iz := jz / (1 + jzD - jzD*jz)
		pq := jzIabToLMS.MulVec3(math64.V3(iz, jab[1], jab[2]))
		lms := pq.Map(func(v float64) float64 { return PQDecode(v, jzP) })
		m := jzLMSToXYZ.MulVec3(lms)
		xa := (m[0] + (jzB-1)*m[2]) / jzB
		ya := (m[1] + (jzG-1)*xa) / jzG
		return math64.V3(xa, ya, m[2]).MulScalar(1.0 / AbsoluteWhite)
	},
}

// JzCzHz is the cylindrical form of [Jzazbz].
var JzCzHz = &Space{
	ID:   "jzczhz",
	Name: "JzCzHz",
	Coords: [3]CoordInfo{
		ref("jz", "Jz", 0, 1),
		ref("cz", "Chroma", 0, 1),
		hue("hz", "Hue"),
	},
	White:      adapt.D65,
	Base:       Jzazbz,
	GamutSpace: Jzazbz,
	FromBase: func(v math64.Vec3) math64.Vec3 {
		return ToPolar(v, 0.0002)
	},
	ToBase: FromPolar,
}

var (
	xyzToICtCpLMS = math64.Mat3{
		0.3592, 0.6976, -0.0358,
		-0.1922, 1.1004, 0.0755,
		0.0070, 0.0749, 0.8434,
	}
	ictcpLMSToIPT = math64.Mat3{
		2048.0 / 4096, 2048.0 / 4096, 0,
		6610.0 / 4096, -13613.0 / 4096, 7003.0 / 4096,
		17933.0 / 4096, -17390.0 / 4096, -543.0 / 4096,
	}
	ictcpLMSToXYZ, _ = xyzToICtCpLMS.Inverse()
	ictcpIPTToLMS, _ = ictcpLMSToIPT.Inverse()
)

// ICtCp is the ITU-R BT.2100 ICtCp space, computed from
// absolute XYZ with the perceptual quantizer.
var ICtCp = &Space{
	ID:   "ictcp",
	Name: "ICTCP",
	Coords: [3]CoordInfo{
		ref("i", "I", 0, 1),
		ref("ct", "CT", -0.5, 0.5),
		ref("cp", "CP", -0.5, 0.5),
	},
	White: adapt.D65,
	Base:  XYZD65,
	FromBase: func(xyz math64.Vec3) math64.Vec3 {
		lms := xyzToICtCpLMS.MulVec3(xyz.MulScalar(AbsoluteWhite))
		pq := lms.Map(func(v float64) float64 { return PQEncode(v, pqM2) })
		return ictcpLMSToIPT.MulVec3(pq)
	},
	ToBase: func(ictcp math64.Vec3) math64.Vec3 {
		pq := ictcpIPTToLMS.MulVec3(ictcp)
		lms := pq.Map(func(v float64) float64 { return PQDecode(v, pqM2) })
		return ictcpLMSToXYZ.MulVec3(lms).MulScalar(1.0 / AbsoluteWhite)
	},
}
