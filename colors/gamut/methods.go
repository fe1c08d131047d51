// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gamut

import (
	"cmp"
	"log/slog"
	"math"

	"cogentcore.org/colorspace/colors"
	"cogentcore.org/colorspace/colors/adapt"
	"cogentcore.org/colorspace/colors/deltae"
	"cogentcore.org/colorspace/math64"
)

// Clip returns the given color expressed in the given space with all
// bounded coordinates of the gamut of the space clamped to their range.
func Clip(c colors.Color, space *colors.Space) colors.Color {
	g := space.Gamut()
	gc := colors.Convert(c, g)
	for i, ci := range g.Coords {
		cd := gc.Coords[i]
		if ci.Angle || !ci.Bounded || cd.None {
			continue
		}
		gc.Coords[i] = colors.Val(math64.Clamp(cd.Value, ci.Range[0], ci.Range[1]))
	}
	return colors.Convert(gc, space)
}

// css algorithm constants
const (
	cssJND           = 0.02
	cssEpsilon       = 0.0001
	cssMaxIterations = 25
)

// CSS maps the given color into the gamut of the given space with the
// CSS Color 4 gamut mapping algorithm, which reduces the [colors.OKLCh]
// chroma by bisection until the color is within a just noticeable
// difference of its clipped form in [deltae.OK], and then clips it.
// Colors with lightness out of range become white or black,
// clipped to the space.
func CSS(c colors.Color, space *colors.Space, opts Options) (colors.Color, error) {
	if space.IsUnbounded() {
		return colors.Convert(c, space), nil
	}
	jnd := cmp.Or(opts.JND, cssJND)
	maxIter := cmp.Or(opts.MaxIterations, cssMaxIterations)

	lch := colors.Convert(c, colors.OKLCh)
	l := lch.Coords[0].Float()
	if l >= 1 {
		return Clip(colors.New(colors.OKLab, 1, 0, 0), space), nil
	}
	if l <= 0 {
		return Clip(colors.New(colors.OKLab, 0, 0, 0), space), nil
	}
	if InGamut(lch, space, 0) {
		return colors.Convert(lch, space), nil
	}

	lo, hi := 0.0, lch.Coords[1].Float()
	loInGamut := true
	cur := lch
	clipped := Clip(cur, space)
	e := deltae.OK(clipped, cur)
	if e < jnd {
		return clipped, nil
	}
	for i := 0; hi-lo > cssEpsilon; i++ {
		if i >= maxIter {
			slog.Debug("gamut: css mapping did not converge", "color", c, "space", space.ID, "iterations", i)
			break
		}
		chroma := (lo + hi) / 2
		cur.Coords[1] = colors.Val(chroma)
		if loInGamut && InGamut(cur, space, 0) {
			lo = chroma
			continue
		}
		clipped = Clip(cur, space)
		e = deltae.OK(clipped, cur)
		if e >= jnd {
			hi = chroma
			continue
		}
		if jnd-e < cssEpsilon {
			break
		}
		loInGamut = false
		lo = chroma
	}
	return clipped, nil
}

// coordinate reduction defaults
const (
	reduceJND           = 2
	reduceMaxIterations = 100
	reduceDeltaE        = "2000"
)

// reduceEpsilon returns the bisection tolerance for the given
// just noticeable difference, which is two orders of magnitude
// smaller than it.
func reduceEpsilon(jnd float64) float64 {
	order := 0.0
	if jnd != 0 {
		order = math.Floor(math.Log10(math.Abs(jnd)))
	}
	return max(math.Pow(10, order-2), 1e-6)
}

// Reduce returns a gamut mapping function that reduces the coordinate
// with the given index of the given space by bisection until the color
// is within a just noticeable difference of its clipped form, starting
// from the minimum of the coordinate. The result is clipped at the end.
func Reduce(mapSpace *colors.Space, index int) Func {
	return func(c colors.Color, space *colors.Space, opts Options) (colors.Color, error) {
		de, err := deltae.Lookup(cmp.Or(opts.DeltaEMethod, reduceDeltaE))
		if err != nil {
			return c, err
		}
		jnd := cmp.Or(opts.JND, reduceJND)
		if jnd < 0 {
			jnd = 1e-16
		}
		maxIter := cmp.Or(opts.MaxIterations, reduceMaxIterations)
		var dopts deltae.Options

		var res colors.Color
		switch {
		case InGamut(c, space, DefaultEpsilon):
			res = colors.Convert(c, space)
		default:
			clipped := Clip(c, space)
			if de(c, clipped, dopts) <= jnd {
				res = clipped
				break
			}
			if bw := opts.BlackWhiteClamp; bw != nil && bw.Channel != "" {
				ch, err := c.Get(bw.Channel)
				if err != nil {
					return c, err
				}
				switch v := ch.Float(); {
				case v >= bw.Max:
					return Clip(colors.FromVec3(colors.XYZD65, adapt.D65), space), nil
				case v <= bw.Min:
					return Clip(colors.New(colors.XYZD65, 0, 0, 0), space), nil
				}
			}

			mapped := colors.Convert(c, mapSpace)
			for i, cd := range mapped.Coords {
				mapped.Coords[i] = colors.Val(cd.Float())
			}
			lo, hi := mapSpace.Coords[index].Min(), mapped.Coords[index].Value
			eps := reduceEpsilon(jnd)
			for i := 0; hi-lo > eps; i++ {
				if i >= maxIter {
					slog.Debug("gamut: coordinate reduction did not converge", "color", c, "space", space.ID,
						"coordinate", mapSpace.ID+"."+mapSpace.Coords[index].ID, "iterations", i)
					break
				}
				clipped := Clip(mapped, space)
				if de(mapped, clipped, dopts)-jnd < eps {
					lo = mapped.Coords[index].Value
				} else {
					hi = mapped.Coords[index].Value
				}
				mapped.Coords[index] = colors.Val((lo + hi) / 2)
			}
			res = colors.Convert(mapped, space)
		}
		if !InGamut(res, space, 0) {
			res = Clip(res, space)
		}
		return res, nil
	}
}

// preset is a named set of coordinate reduction options.
type preset struct {
	space, coord string
	opts         Options
}

var presets = map[string]preset{
	"hct": {
		space: "hct", coord: "c",
		opts: Options{JND: 2, DeltaEMethod: "HCT"},
	},
	"hct-tonal": {
		space: "hct", coord: "c",
		opts: Options{JND: -1, DeltaEMethod: "HCT",
			BlackWhiteClamp: &BlackWhiteClamp{Channel: "hct.t", Min: 0, Max: 100}},
	},
}

// mapper returns the gamut mapping function of the preset, which
// uses the preset options in place of the given ones, except for
// the iteration limit.
func (p preset) mapper() Func {
	return func(c colors.Color, space *colors.Space, opts Options) (colors.Color, error) {
		s, err := colors.Lookup(p.space)
		if err != nil {
			return c, err
		}
		o := p.opts
		o.MaxIterations = opts.MaxIterations
		return Reduce(s, s.CoordIndex(p.coord))(c, space, o)
	}
}
