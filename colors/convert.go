// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"sync/atomic"

	"cogentcore.org/colorspace/colors/adapt"
	"cogentcore.org/colorspace/math64"
)

var engineCAT atomic.Int32 // adapt.Bradford

// CAT returns the chromatic adaptation transform used for
// conversions between spaces with different whites.
func CAT() adapt.CAT {
	return adapt.CAT(engineCAT.Load())
}

// SetCAT sets the chromatic adaptation transform used for
// conversions between spaces with different whites.
func SetCAT(c adapt.CAT) {
	engineCAT.Store(int32(c))
}

// Adapt adapts the given XYZ color from one white to another
// using the engine [CAT], calling any [ChromaticAdaptation] observers
// before the adaptation matrix is applied.
func Adapt(xyz, from, to math64.Vec3) math64.Vec3 {
	if from == to {
		return xyz
	}
	cat := CAT()
	m := adapt.Matrix(from, to, cat)
	if HasObservers() {
		env := &AdaptEnv{From: from, To: to, XYZ: xyz, CAT: cat, M: m}
		notify(func(o Observer) { o.ChromaticAdaptation(env) })
		xyz, m = env.XYZ, env.M
	}
	return m.MulVec3(xyz)
}

// Convert returns the given color converted to the given space. If the
// color is already in the space, it is returned unchanged. Otherwise,
// missing coordinates count as 0, except that a missing hue stays
// missing when converting between spaces that share their hue, and
// coordinates that are undefined in the target space (such as the hue
// of a gray) are missing in the result. Alpha is passed through.
// No clamping is done; see the gamut package for that.
func Convert(c Color, to *Space) Color {
	if !HasObservers() {
		if c.Space == to {
			return c
		}
		return convert(c, to)
	}
	env := &ConvertEnv{Color: c, To: to}
	notify(func(o Observer) { o.BeforeConvert(env) })
	if env.Color.Space == env.To {
		env.Result = env.Color
	} else {
		env.Result = convert(env.Color, env.To)
	}
	notify(func(o Observer) { o.AfterConvert(env) })
	return env.Result
}

// convert converts c to the given space by walking up from its space
// to the lowest common ancestor of the two spaces, and then down to
// the target space.
func convert(c Color, to *Space) Color {
	from := c.Space
	fp, tp := from.Path(), to.Path()
	n := 0 // number of shared ancestors
	for n < len(fp) && n < len(tp) && fp[n] == tp[n] {
		n++
	}
	v := c.Values()
	for i := len(fp) - 1; i >= n; i-- {
		v = fp[i].convertUp(v)
	}
	for i := n; i < len(tp); i++ {
		v = tp[i].convertDown(v)
	}
	res := Color{Space: to, Alpha: c.Alpha}
	for i := range res.Coords {
		res.Coords[i] = Val(v[i])
	}
	if hi := from.HueIndex(); hi >= 0 && c.Coords[hi].None && n > 0 && sharesHue(fp[n:]) && sharesHue(tp[n:]) {
		if th := to.HueIndex(); th >= 0 {
			res.Coords[th] = None
		}
	}
	return res
}

// sharesHue returns whether every space in the given path
// passes its hue through from its base.
func sharesHue(path []*Space) bool {
	for _, s := range path {
		if !s.SharesHue {
			return false
		}
	}
	return true
}

// ConvertAll converts all of the given colors to the given space.
func ConvertAll(cs []Color, to *Space) []Color {
	res := make([]Color, len(cs))
	for i, c := range cs {
		res[i] = Convert(c, to)
	}
	return res
}
