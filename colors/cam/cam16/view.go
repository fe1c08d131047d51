// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cam16

import (
	"fmt"
	"math"
	"strings"

	"cogentcore.org/colorspace/colors/adapt"
	"cogentcore.org/colorspace/math64"
)

// Surround is the relative luminance of the surround field.
type Surround int32

const (
	// Dark is a dark surround, such as a cinema.
	Dark Surround = iota

	// Dim is a dim surround, such as a television viewed in a dim room.
	Dim

	// Average is an average surround, such as a surface color viewed
	// in a normally lit environment.
	Average
)

var surroundNames = [...]string{"dark", "dim", "average"}

// surroundFactors are F, c and Nc for each surround.
var surroundFactors = [...][3]float64{
	Dark:    {0.8, 0.525, 0.8},
	Dim:     {0.9, 0.59, 0.9},
	Average: {1, 0.69, 1},
}

// String returns the name of the surround.
func (s Surround) String() string {
	if s < 0 || int(s) >= len(surroundNames) {
		return fmt.Sprintf("Surround(%d)", int32(s))
	}
	return surroundNames[s]
}

// SetString sets the surround from its case-insensitive name.
func (s *Surround) SetString(str string) error {
	for i, nm := range surroundNames {
		if strings.EqualFold(nm, str) {
			*s = Surround(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid surround", str)
}

// View represents viewing conditions under which a color is being perceived,
// which greatly affects the subjective perception. All of the derived
// factors used by the model are precomputed by [View.Update].
type View struct {

	// white point as XYZ with Y = 1; typically [adapt.D65]
	WhitePoint math64.Vec3

	// the luminance of the adapting field in cd/m²
	AdaptingLuminance float64

	// the relative luminance of the background, in the range 0-100
	BackgroundLuminance float64

	// the brightness of the surround field
	Surround Surround

	// whether the illuminant is discounted, meaning that the eye
	// is assumed to be fully adapted to it
	Discounting bool

	// chromatic induction factor
	NC float64 `display:"-"`

	// exponential nonlinearity
	C float64 `display:"-"`

	// luminance-level adaptation factor
	FL float64 `display:"-"`

	// FL to the 1/4 power
	FLRoot float64 `display:"-"`

	// ratio of the background luminance to the white luminance
	N float64 `display:"-"`

	// base exponential nonlinearity
	Z float64 `display:"-"`

	// background luminance induction factor
	NBB float64 `display:"-"`

	// chromatic luminance induction factor
	NCB float64 `display:"-"`

	// achromatic response to the white point
	AW float64 `display:"-"`

	// per-channel degree of adaptation factors
	DRGB math64.Vec3 `display:"-"`

	// inverse of DRGB
	DRGBInv math64.Vec3 `display:"-"`
}

// NewView returns a new view with all parameters initialized based on
// the given major parameters.
func NewView(white math64.Vec3, adaptingLuminance, backgroundLuminance float64, surround Surround, discounting bool) *View {
	vw := &View{
		WhitePoint:          white,
		AdaptingLuminance:   adaptingLuminance,
		BackgroundLuminance: backgroundLuminance,
		Surround:            surround,
		Discounting:         discounting,
	}
	vw.Update()
	return vw
}

// StdView is the standard viewing condition of the CAM16-JMh space:
// a D65 white, an adapting luminance of 64/π·0.2 cd/m² (a 64 lux
// environment viewed at a 20% grey), a 20% background and an
// average surround.
var StdView = NewView(adapt.D65, 64/math.Pi*0.2, 20, Average, false)

// Update updates all the computed values based on the main parameters.
func (vw *View) Update() {
	xyzW := vw.WhitePoint.MulScalar(100)
	yw := xyzW[1]

	rgbW := CAT16.MulVec3(xyzW)

	sf := surroundFactors[math64.Clamp(vw.Surround, Dark, Average)]
	f := sf[0]
	vw.C = sf[1]
	vw.NC = sf[2]

	la := vw.AdaptingLuminance
	k := 1 / (5*la + 1)
	k4 := k * k * k * k
	vw.FL = k4*la + 0.1*(1-k4)*(1-k4)*math.Cbrt(5*la)
	vw.FLRoot = math.Pow(vw.FL, 0.25)

	vw.N = vw.BackgroundLuminance / yw
	vw.Z = 1.48 + math.Sqrt(vw.N)
	vw.NBB = 0.725 * math.Pow(vw.N, -0.2)
	vw.NCB = vw.NBB

	d := 1.0
	if !vw.Discounting {
		d = math64.Clamp(f*(1-1/3.6*math.Exp((-la-42)/92)), 0, 1)
	}
	for i := range 3 {
		vw.DRGB[i] = math64.Lerp(1, yw/rgbW[i], d)
		vw.DRGBInv[i] = 1 / vw.DRGB[i]
	}

	rgbAW := Adapt(rgbW.Mul(vw.DRGB), vw.FL)
	vw.AW = vw.NBB * (2*rgbAW[0] + rgbAW[1] + 0.05*rgbAW[2])
}
