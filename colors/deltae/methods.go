// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deltae

import (
	"math"

	"cogentcore.org/colorspace/colors"
	"cogentcore.org/colorspace/math64"
)

// E76 returns the CIE 1976 delta E, which is the
// Euclidean distance between the colors in [colors.Lab].
func E76(reference, sample colors.Color) float64 {
	return colors.Distance(reference, sample, colors.Lab)
}

// labChroma returns the Lab coordinates and the
// chroma of the given color.
func labChroma(c colors.Color) (lab math64.Vec3, chroma float64) {
	lab = colors.Convert(c, colors.Lab).Values()
	return lab, math.Hypot(lab[1], lab[2])
}

// CMC returns the CMC l:c delta E of the sample from the reference,
// which is asymmetric. The usual weights are l = 2 and c = 1.
func CMC(reference, sample colors.Color, l, c float64) float64 {
	lab1, c1 := labChroma(reference)
	lab2, c2 := labChroma(sample)

	dL := lab1[0] - lab2[0]
	dC := c1 - c2
	da := lab1[1] - lab2[1]
	db := lab1[2] - lab2[2]
	// the square of the hue difference
	dH2 := da*da + db*db - dC*dC

	sl := 0.511
	if lab1[0] >= 16 {
		sl = 0.040975 * lab1[0] / (1 + 0.01765*lab1[0])
	}
	sc := 0.0638*c1/(1+0.0131*c1) + 0.638

	h1 := math64.ConstrainAngle(math64.RadToDeg(math.Atan2(lab1[2], lab1[1])))
	var t float64
	if 164 <= h1 && h1 <= 345 {
		t = 0.56 + math.Abs(0.2*math.Cos(math64.DegToRad(h1+168)))
	} else {
		t = 0.36 + math.Abs(0.4*math.Cos(math64.DegToRad(h1+35)))
	}
	c4 := c1 * c1 * c1 * c1
	f := math.Sqrt(c4 / (c4 + 1900))
	sh := sc * (f*t + 1 - f)

	de := (dL/(l*sl))*(dL/(l*sl)) + (dC/(c*sc))*(dC/(c*sc)) + dH2/(sh*sh)
	return math.Sqrt(max(de, 0))
}

// 25^7
const e2000G = 6103515625

func pow7(x float64) float64 {
	x2 := x * x
	return x2 * x2 * x2 * x
}

// E2000 returns the CIEDE2000 delta E of the sample from the reference,
// with the given lightness, chroma, and hue weighting factors, which
// are usually all 1.
func E2000(reference, sample colors.Color, kL, kC, kH float64) float64 {
	lab1, c1 := labChroma(reference)
	lab2, c2 := labChroma(sample)

	cbar7 := pow7((c1 + c2) / 2)
	g := 0.5 * (1 - math.Sqrt(cbar7/(cbar7+e2000G)))

	ad1 := (1 + g) * lab1[1]
	ad2 := (1 + g) * lab2[1]
	cd1 := math.Hypot(ad1, lab1[2])
	cd2 := math.Hypot(ad2, lab2[2])

	hue := func(a, b float64) float64 {
		if a == 0 && b == 0 {
			return 0
		}
		return math64.ConstrainAngle(math64.RadToDeg(math.Atan2(b, a)))
	}
	h1, h2 := hue(ad1, lab1[2]), hue(ad2, lab2[2])

	dL := lab2[0] - lab1[0]
	dC := cd2 - cd1

	hdiff := h2 - h1
	hsum := h1 + h2
	habs := math.Abs(hdiff)
	var dh float64
	switch {
	case cd1*cd2 == 0:
	case habs <= 180:
		dh = hdiff
	case hdiff > 180:
		dh = hdiff - 360
	default:
		dh = hdiff + 360
	}
	dH := 2 * math.Sqrt(cd1*cd2) * math.Sin(math64.DegToRad(dh/2))

	ld := (lab1[0] + lab2[0]) / 2
	cd := (cd1 + cd2) / 2
	cd7 := pow7(cd)

	var hd float64
	switch {
	case cd1*cd2 == 0:
		hd = hsum
	case habs <= 180:
		hd = hsum / 2
	case hsum < 360:
		hd = (hsum + 360) / 2
	default:
		hd = (hsum - 360) / 2
	}

	lsq := (ld - 50) * (ld - 50)
	sl := 1 + 0.015*lsq/math.Sqrt(20+lsq)
	sc := 1 + 0.045*cd
	t := 1 -
		0.17*math.Cos(math64.DegToRad(hd-30)) +
		0.24*math.Cos(math64.DegToRad(2*hd)) +
		0.32*math.Cos(math64.DegToRad(3*hd+6)) -
		0.20*math.Cos(math64.DegToRad(4*hd-63))
	sh := 1 + 0.015*cd*t

	dtheta := 30 * math.Exp(-((hd - 275) / 25) * ((hd - 275) / 25))
	rc := 2 * math.Sqrt(cd7/(cd7+e2000G))
	rt := -math.Sin(math64.DegToRad(2*dtheta)) * rc

	lt := dL / (kL * sl)
	ct := dC / (kC * sc)
	ht := dH / (kH * sh)
	return math.Sqrt(lt*lt + ct*ct + ht*ht + rt*ct*ht)
}

// ITP returns the ITU-R BT.2124 delta E ITP, which is the
// scaled Euclidean distance in [colors.ICtCp], where
// 1 is about one just noticeable difference.
func ITP(reference, sample colors.Color) float64 {
	v1 := colors.Convert(reference, colors.ICtCp).Values()
	v2 := colors.Convert(sample, colors.ICtCp).Values()
	di, dt, dp := v1[0]-v2[0], v1[1]-v2[1], v1[2]-v2[2]
	return 720 * math.Sqrt(di*di+0.25*dt*dt+dp*dp)
}

// Jz returns the delta E in [colors.JzCzHz]. A missing hue
// takes the hue of the other color.
func Jz(reference, sample colors.Color) float64 {
	v1 := colors.Convert(reference, colors.JzCzHz).NaNs()
	v2 := colors.Convert(sample, colors.JzCzHz).NaNs()
	h1, h2 := v1[2], v2[2]
	switch {
	case math.IsNaN(h1) && math.IsNaN(h2):
		h1, h2 = 0, 0
	case math.IsNaN(h1):
		h1 = h2
	case math.IsNaN(h2):
		h2 = h1
	}
	dJ := v1[0] - v2[0]
	dC := v1[1] - v2[1]
	dH := 2 * math.Sqrt(v1[1]*v2[1]) * math.Sin(math64.DegToRad((h1-h2)/2))
	return math.Sqrt(dJ*dJ + dC*dC + dH*dH)
}

// OK returns the Euclidean distance in [colors.OKLab].
func OK(reference, sample colors.Color) float64 {
	return colors.Distance(reference, sample, colors.OKLab)
}

// ok2Scale is the scale of the a and b axes of [OK2].
const ok2Scale = 2

// OK2 returns the Euclidean distance in [colors.OKLab] with the
// a and b axes doubled, which fits color difference data better.
func OK2(reference, sample colors.Color) float64 {
	v1 := colors.Convert(reference, colors.OKLab).Values()
	v2 := colors.Convert(sample, colors.OKLab).Values()
	dL := v1[0] - v2[0]
	da := ok2Scale * (v1[1] - v2[1])
	db := ok2Scale * (v1[2] - v2[2])
	return math.Sqrt(dL*dL + da*da + db*db)
}

// the CAM16-UCS colorfulness coefficient
const ucsC2 = 0.0228

// hctUCS returns the tone and the CAM16-UCS a and b of the given color.
func hctUCS(c colors.Color) math64.Vec3 {
	v := colors.Convert(c, colors.HCT).Values()
	if v[1] < 0 {
		// resolve negative chroma by a round trip
		v = colors.HCT.FromBase(colors.HCT.ToBase(v))
		if math.IsNaN(v[0]) {
			v[0] = 0
		}
	}
	m := math.Log(max(1+ucsC2*v[1]*colors.HCTView.FLRoot, 1)) / ucsC2
	h := math64.DegToRad(v[0])
	return math64.V3(v[2], m*math.Cos(h), m*math.Sin(h))
}

// HCT returns the Euclidean distance of the colors using the
// [colors.HCT] tone and the CAM16-UCS a and b of its hue and chroma.
func HCT(reference, sample colors.Color) float64 {
	return hctUCS(reference).DistanceTo(hctUCS(sample))
}

// HyAB returns the hybrid distance in [colors.Lab], which is the
// absolute lightness difference plus the Euclidean distance of a and b.
// It works well for large differences.
func HyAB(reference, sample colors.Color) float64 {
	v1 := colors.Convert(reference, colors.Lab).Values()
	v2 := colors.Convert(sample, colors.Lab).Values()
	return math.Abs(v1[0]-v2[0]) + math.Hypot(v1[1]-v2[1], v1[2]-v2[2])
}
