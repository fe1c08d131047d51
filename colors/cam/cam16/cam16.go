// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cam16 provides the CAM16 color appearance model, which
// computes the perceived hue, colorfulness, and brightness of a color
// under given viewing conditions.
package cam16

import (
	"math"
	"sort"

	"cogentcore.org/colorspace/math64"
)

// CAT16 is the matrix from XYZ to the CAT16 cone response basis.
var CAT16 = math64.Mat3{
	0.401288, 0.650173, -0.051461,
	-0.250268, 1.204414, 0.045854,
	-0.002079, 0.048952, 0.953127,
}

// CAT16Inv is the inverse of [CAT16].
var CAT16Inv = math64.Mat3{
	1.8620678550872327, -1.0112546305316843, 0.14918677544445175,
	0.38752654323613717, 0.6214474419314753, -0.008973985167612518,
	-0.015841498849333856, -0.03412293802851557, 1.0499644368778496,
}

// m1 maps the achromatic response and opponent components back to
// post-adaptation cone responses, scaled by 1403.
var m1 = math64.Mat3{
	460, 451, 288,
	460, -891, -261,
	460, -220, -6300,
}

const (
	adaptedCoef    = 0.42
	adaptedCoefInv = 1 / adaptedCoef
)

// unique hue data for the hue quadrature: red, yellow, green, blue, red
var (
	hueQuadH = [5]float64{20.14, 90.00, 164.25, 237.53, 380.14}
	hueQuadE = [5]float64{0.8, 0.7, 1.0, 1.2, 0.8}
	hueQuadQ = [5]float64{0.0, 100.0, 200.0, 300.0, 400.0}
)

// CAM represents a point in the CAM16 color model along the dimensions
// of perceived hue, colorfulness, and brightness, similar to HSL but much
// more well-calibrated to actual human subjective judgments.
type CAM struct {

	// hue (h) is the spectral identity of the color (red, green, blue etc) in degrees
	Hue float64

	// hue quadrature (H) is the hue expressed relative to the unique hues, in the range 0-400
	HueQuadrature float64

	// chroma (C) is the colorfulness relative to the brightness of white
	Chroma float64

	// colorfulness (M) is the absolute chromatic intensity
	Colorfulness float64

	// saturation (s) is the colorfulness relative to brightness
	Saturation float64

	// brightness (Q) is the apparent amount of light from the color, which is not a simple function of actual light energy emitted
	Brightness float64

	// lightness (J) is the brightness relative to a reference white, which varies as a function of chroma and hue
	Lightness float64
}

// Adapt applies the post-adaptation nonlinear compression to
// the given cone responses.
func Adapt(rgb math64.Vec3, fl float64) math64.Vec3 {
	return rgb.Map(func(c float64) float64 {
		x := math64.Spow(fl*math.Abs(c)*0.01, adaptedCoef)
		return 400 * math.Copysign(x, c) / (x + 27.13)
	})
}

// Unadapt is the inverse of [Adapt].
func Unadapt(adapted math64.Vec3, fl float64) math64.Vec3 {
	constant := 100 / fl * math.Pow(27.13, adaptedCoefInv)
	return adapted.Map(func(c float64) float64 {
		cabs := math.Abs(c)
		return math.Copysign(constant*math64.Spow(cabs/(400-cabs), adaptedCoefInv), c)
	})
}

// HueQuadrature returns the hue quadrature H for the given hue angle h.
func HueQuadrature(h float64) float64 {
	hp := math64.ConstrainAngle(h)
	if hp <= hueQuadH[0] {
		hp += 360
	}
	i := sort.SearchFloat64s(hueQuadH[:], hp) - 1
	hi, hii := hueQuadH[i], hueQuadH[i+1]
	ei, eii := hueQuadE[i], hueQuadE[i+1]
	t := (hp - hi) / ei
	return hueQuadQ[i] + (100*t)/(t+(hii-hp)/eii)
}

// InvHueQuadrature returns the hue angle h for the given hue quadrature H.
func InvHueQuadrature(hq float64) float64 {
	hp := math.Mod(math.Mod(hq, 400)+400, 400)
	i := int(math.Floor(0.01 * hp))
	hp = math.Mod(hp, 100)
	hi, hii := hueQuadH[i], hueQuadH[i+1]
	ei, eii := hueQuadE[i], hueQuadE[i+1]
	return math64.ConstrainAngle((hp*(eii*hi-ei*hii) - 100*hi*eii) / (hp*(eii-ei) - 100*eii))
}

// FromXYZ returns the CAM16 correlates of the given XYZ color, with
// Y = 1 for the white point, under the given viewing conditions.
func FromXYZ(xyz math64.Vec3, vw *View) CAM {
	rgbA := Adapt(CAT16.MulVec3(xyz.MulScalar(100)).Mul(vw.DRGB), vw.FL)

	// red-green and yellow-blue opponent components
	a := rgbA[0] + (-12*rgbA[1]+rgbA[2])/11
	b := (rgbA[0] + rgbA[1] - 2*rgbA[2]) / 9
	hRad := math.Mod(math.Mod(math.Atan2(b, a), 2*math.Pi)+2*math.Pi, 2*math.Pi)

	// eccentricity
	et := 0.25 * (math.Cos(hRad+2) + 3.8)

	t := 5e4 / 13 * vw.NC * vw.NCB * math64.Zdiv(et*math.Sqrt(a*a+b*b), rgbA[0]+rgbA[1]+1.05*rgbA[2]+0.305)
	alpha := math64.Spow(t, 0.9) * math.Pow(1.64-math.Pow(0.29, vw.N), 0.73)

	// achromatic response
	A := vw.NBB * (2*rgbA[0] + rgbA[1] + 0.05*rgbA[2])
	jRoot := math64.Spow(A/vw.AW, 0.5*vw.C*vw.Z)

	cam := CAM{}
	cam.Lightness = 100 * math64.Spow(jRoot, 2)
	cam.Brightness = 4 / vw.C * jRoot * (vw.AW + 4) * vw.FLRoot
	cam.Chroma = alpha * jRoot
	cam.Colorfulness = cam.Chroma * vw.FLRoot
	cam.Hue = math64.ConstrainAngle(math64.RadToDeg(hRad))
	cam.HueQuadrature = HueQuadrature(cam.Hue)
	cam.Saturation = 50 * math64.Spow(vw.C*alpha/(vw.AW+4), 0.5)
	return cam
}

// FromJCh returns the XYZ color with the given lightness J,
// chroma C, and hue angle h under the given viewing conditions.
func FromJCh(j, c, h float64, vw *View) math64.Vec3 {
	if j == 0 {
		return math64.Vec3{}
	}
	jRoot := math64.Spow(j, 0.5) * 0.1
	return toXYZ(jRoot, c/jRoot, h, vw)
}

// FromJMh returns the XYZ color with the given lightness J,
// colorfulness M, and hue angle h under the given viewing conditions.
func FromJMh(j, m, h float64, vw *View) math64.Vec3 {
	if j == 0 {
		return math64.Vec3{}
	}
	jRoot := math64.Spow(j, 0.5) * 0.1
	return toXYZ(jRoot, (m/vw.FLRoot)/jRoot, h, vw)
}

// FromQsH returns the XYZ color with the given brightness Q,
// saturation s, and hue quadrature H under the given viewing conditions.
func FromQsH(q, s, hq float64, vw *View) math64.Vec3 {
	if q == 0 {
		return math64.Vec3{}
	}
	jRoot := 0.25 * vw.C * q / ((vw.AW + 4) * vw.FLRoot)
	alpha := 0.0004 * s * s * (vw.AW + 4) / vw.C
	return toXYZ(jRoot, alpha, InvHueQuadrature(hq), vw)
}

// toXYZ inverts the model from the square root of lightness,
// the chroma factor alpha and the hue angle in degrees.
func toXYZ(jRoot, alpha, h float64, vw *View) math64.Vec3 {
	hRad := math64.DegToRad(math64.ConstrainAngle(h))
	cosh := math.Cos(hRad)
	sinh := math.Sin(hRad)

	t := math64.Spow(alpha*math.Pow(1.64-math.Pow(0.29, vw.N), -0.73), 10.0/9.0)

	// eccentricity
	et := 0.25 * (math.Cos(hRad+2) + 3.8)

	// achromatic response
	A := vw.AW * math64.Spow(jRoot, 2/vw.C/vw.Z)

	// red-green and yellow-blue components
	p1 := 5e4 / 13 * vw.NC * vw.NCB * et
	p2 := A / vw.NBB
	r := 23 * (p2 + 0.305) * math64.Zdiv(t, 23*p1+t*(11*cosh+108*sinh))
	a := r * cosh
	b := r * sinh

	rgbC := Unadapt(m1.MulVec3(math64.V3(p2, a, b)).MulScalar(1.0/1403), vw.FL)
	return CAT16Inv.MulVec3(rgbC.Mul(vw.DRGBInv)).MulScalar(0.01)
}
