// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interp provides interpolation between colors in any space,
// with control over hue arcs, premultiplied alpha, and the progression
// of the interpolation, and discretization of ranges into steps.
package interp

import (
	"cogentcore.org/colorspace/colors"
	"cogentcore.org/colorspace/colors/gamut"
	"cogentcore.org/colorspace/math64"
)

// Arc is a method of interpolating between two hue angles.
type Arc = colors.Arc

const (
	Shorter    = colors.Shorter
	Longer     = colors.Longer
	Increasing = colors.Increasing
	Decreasing = colors.Decreasing
	Raw        = colors.Raw
)

// AdjustHues returns the two hue angles in degrees adjusted so that
// linearly interpolating between them follows the given arc.
func AdjustHues(arc Arc, a1, a2 float64) (float64, float64) {
	return colors.AdjustHues(arc, a1, a2)
}

// ConstrainAngle returns the given angle in degrees constrained to [0, 360).
func ConstrainAngle(deg float64) float64 {
	return math64.ConstrainAngle(deg)
}

// Options are the options of interpolation.
type Options struct {

	// Space is the space in which to interpolate.
	// If it is nil, the space in [Defaults] is used.
	Space *colors.Space

	// OutputSpace is the space of the returned colors.
	// If it is nil, the space of the first color is used.
	OutputSpace *colors.Space

	// Progression, if non-nil, maps the interpolation amount
	// before it is applied, for easing.
	Progression func(p float64) float64

	// Hue is the arc used for interpolating hues.
	Hue Arc

	// Premultiplied is whether to interpolate with premultiplied
	// alpha, which keeps transparent colors from tinting the result.
	Premultiplied bool
}

// Defaults are the options used when none are given.
var Defaults = Options{Space: colors.Lab, Hue: Shorter, Premultiplied: true}

// options returns the first of the given options, or [Defaults].
func options(opts []Options) Options {
	if len(opts) == 0 {
		return Defaults
	}
	o := opts[0]
	if o.Space == nil {
		o.Space = Defaults.Space
	}
	return o
}

// RangeFunc returns the color at the given amount along a range,
// where 0 is the start and 1 is the end. Amounts outside of [0, 1]
// extrapolate.
type RangeFunc func(p float64) colors.Color

// Range returns a function that interpolates between the two colors.
// Both colors are converted to the interpolation space and mapped into
// its gamut. A missing coordinate or alpha in one color takes the value
// of the other color, and one missing in both stays missing. If no options
// are given, [Defaults] are used.
func Range(a, b colors.Color, opts ...Options) (RangeFunc, error) {
	o := options(opts)
	space := o.Space
	out := o.OutputSpace
	if out == nil {
		out = a.Space
	}

	var err error
	a = colors.Convert(a, space)
	b = colors.Convert(b, space)
	if a, err = gamut.ToGamut(a, gamut.Options{}); err != nil {
		return nil, err
	}
	if b, err = gamut.ToGamut(b, gamut.Options{}); err != nil {
		return nil, err
	}

	if hi := space.HueIndex(); hi >= 0 {
		h1, h2 := a.Coords[hi], b.Coords[hi]
		switch {
		case h1.None && !h2.None:
			h1 = h2
		case h2.None && !h1.None:
			h2 = h1
		}
		if !h1.None {
			v1, v2 := AdjustHues(o.Hue, h1.Value, h2.Value)
			a.Coords[hi], b.Coords[hi] = colors.Val(v1), colors.Val(v2)
		}
	}

	// a missing alpha takes the other one, so that both ends are
	// premultiplied by the alpha they are interpolated with
	switch {
	case a.Alpha.None && !b.Alpha.None:
		a.Alpha = b.Alpha
	case b.Alpha.None && !a.Alpha.None:
		b.Alpha = a.Alpha
	}

	// straight values are used when the alpha becomes 0
	sa, sb := a, b
	if o.Premultiplied {
		a, b = premultiply(a), premultiply(b)
	}

	return func(p float64) colors.Color {
		if o.Progression != nil {
			p = o.Progression(p)
		}
		res := colors.Color{Space: space, Alpha: lerp(a.Alpha, b.Alpha, p)}
		alpha := res.AlphaValue()
		if o.Premultiplied && alpha != 0 {
			for i := range res.Coords {
				res.Coords[i] = lerp(a.Coords[i], b.Coords[i], p)
				if !space.Coords[i].Angle && !res.Coords[i].None {
					res.Coords[i].Value /= alpha
				}
			}
		} else {
			for i := range res.Coords {
				res.Coords[i] = lerp(sa.Coords[i], sb.Coords[i], p)
			}
		}
		return colors.Convert(res, out)
	}, nil
}

// Mix returns the color at the given amount between the two colors,
// which is the same as calling the [Range] of them.
func Mix(a, b colors.Color, p float64, opts ...Options) (colors.Color, error) {
	r, err := Range(a, b, opts...)
	if err != nil {
		return a, err
	}
	return r(p), nil
}

// premultiply returns the color with its non-angle coordinates
// multiplied by its alpha.
func premultiply(c colors.Color) colors.Color {
	alpha := c.AlphaValue()
	for i := range c.Coords {
		if !c.Space.Coords[i].Angle && !c.Coords[i].None {
			c.Coords[i].Value *= alpha
		}
	}
	return c
}

// lerp interpolates between two coordinates; a missing
// coordinate takes the value of the other one.
func lerp(a, b colors.Coord, p float64) colors.Coord {
	switch {
	case a.None:
		return b
	case b.None:
		return a
	}
	return colors.Val(math64.Lerp(a.Value, b.Value, p))
}
