// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"sync"

	"cogentcore.org/colorspace/math64"
)

// RGBOptions are the options for [NewRGBSpace].
type RGBOptions struct {

	// ID is the identifier of the space.
	ID string

	// Name is the human-readable name of the space.
	Name string

	// Aliases are additional identifiers for the space.
	Aliases []string

	// Linear is the linear-light space that this space is the
	// gamma-encoded form of. If it is set, the space is defined by
	// the transfer functions relative to it, and Primaries, White, and
	// XYZ are ignored.
	Linear *Space

	// Primaries are the CIE xy chromaticities of the red, green,
	// and blue primaries.
	Primaries [3][2]float64

	// White is the white point of the space as XYZ with Y = 1.
	White math64.Vec3

	// XYZ is the XYZ space that the matrix of the space converts to,
	// which defaults to [XYZD65]. Values are chromatically adapted
	// when its white differs from White.
	XYZ *Space

	// ToLinear decodes one gamma-encoded channel value into
	// linear light. Nil means the space is linear.
	ToLinear func(v float64) float64

	// FromLinear encodes one linear-light channel value.
	// Nil means the space is linear.
	FromLinear func(v float64) float64

	// Range is the range of the channels, which defaults to [0, 1].
	Range [2]float64

	// Referred is "display" or "scene"; it defaults to "display".
	Referred string
}

// RGBMatrices returns the matrices converting linear RGB values with the
// given primaries and white point to XYZ and back, both with Y = 1
// for the white point.
func RGBMatrices(primaries [3][2]float64, white math64.Vec3) (toXYZ, fromXYZ math64.Mat3) {
	var m math64.Mat3
	for c, p := range primaries {
		x, y := p[0], p[1]
		m[c] = x / y
		m[3+c] = 1
		m[6+c] = (1 - x - y) / y
	}
	mi, _ := m.Inverse()
	toXYZ = m.Mul(math64.Diag3(mi.MulVec3(white)))
	fromXYZ, _ = toXYZ.Inverse()
	return
}

// rgbMatrices computes the matrices of an RGB space the first time
// they are needed, after which they are immutable.
type rgbMatrices struct {
	once      sync.Once
	primaries [3][2]float64
	white     math64.Vec3
	toXYZ     math64.Mat3
	fromXYZ   math64.Mat3
}

func (rm *rgbMatrices) get() *rgbMatrices {
	rm.once.Do(func() {
		rm.toXYZ, rm.fromXYZ = RGBMatrices(rm.primaries, rm.white)
	})
	return rm
}

// NewRGBSpace returns a new RGB color space with the given options.
// A space without [RGBOptions.Linear] converts to XYZ with a matrix
// derived from its primaries and white point, after decoding its
// channels with ToLinear if it is set. A space with Linear
// only applies its transfer functions relative to that space.
func NewRGBSpace(o RGBOptions) *Space {
	rng := o.Range
	if rng == [2]float64{} {
		rng = [2]float64{0, 1}
	}
	s := &Space{
		ID:       o.ID,
		Name:     o.Name,
		Aliases:  o.Aliases,
		Referred: o.Referred,
		Coords: [3]CoordInfo{
			bounded("r", "Red", rng[0], rng[1]),
			bounded("g", "Green", rng[0], rng[1]),
			bounded("b", "Blue", rng[0], rng[1]),
		},
	}
	if s.Referred == "" {
		s.Referred = "display"
	}
	decode := func(v math64.Vec3) math64.Vec3 {
		if o.ToLinear == nil {
			return v
		}
		return v.Map(o.ToLinear)
	}
	encode := func(v math64.Vec3) math64.Vec3 {
		if o.FromLinear == nil {
			return v
		}
		return v.Map(o.FromLinear)
	}
	if o.Linear != nil {
		s.Base = o.Linear
		s.White = o.Linear.White
		s.ToBase = decode
		s.FromBase = encode
		return s
	}
	xyz := o.XYZ
	if xyz == nil {
		xyz = XYZD65
	}
	s.Base = xyz
	s.White = o.White
	rm := &rgbMatrices{primaries: o.Primaries, white: o.White}
	s.ToBase = func(v math64.Vec3) math64.Vec3 {
		return Adapt(rm.get().toXYZ.MulVec3(decode(v)), s.White, xyz.White)
	}
	s.FromBase = func(v math64.Vec3) math64.Vec3 {
		return encode(rm.get().fromXYZ.MulVec3(Adapt(v, xyz.White, s.White)))
	}
	return s
}
