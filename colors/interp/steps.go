// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interp

import (
	"cmp"
	"math"
	"slices"

	"cogentcore.org/colorspace/colors"
	"cogentcore.org/colorspace/colors/deltae"
)

// StepsOptions are the options of [Steps].
type StepsOptions struct {

	// Steps is the minimum number of colors, which defaults to 2.
	Steps int

	// MaxDeltaE, if positive, is the maximum delta E between
	// consecutive colors. More colors are added where it is exceeded.
	MaxDeltaE float64

	// DeltaEMethod is the delta E method used for MaxDeltaE,
	// which defaults to [deltae.DefaultMethod].
	DeltaEMethod string

	// MaxSteps is the maximum number of colors, which defaults to 1000.
	MaxSteps int
}

// StepsDefaults are the options used for any zero or negative counts of the
// options passed to [Steps] and [RangeFunc.Steps].
var StepsDefaults = StepsOptions{Steps: 2, MaxSteps: 1000}

// Steps returns evenly spaced colors along the [Range] between the
// two colors, as described by [RangeFunc.Steps].
func Steps(a, b colors.Color, so StepsOptions, opts ...Options) ([]colors.Color, error) {
	r, err := Range(a, b, opts...)
	if err != nil {
		return nil, err
	}
	return r.Steps(so)
}

type stop struct {
	p float64
	c colors.Color
}

// Steps returns evenly spaced colors along the range, including both
// ends. When MaxDeltaE is set, there are at least enough colors for
// the delta E between the ends divided by it, and the midpoints of all
// consecutive pairs are then inserted until no consecutive colors
// differ by more than it or MaxSteps is reached. The only possible
// error is an unknown delta E method.
func (r RangeFunc) Steps(so StepsOptions) ([]colors.Color, error) {
	steps := cmp.Or(max(so.Steps, 0), StepsDefaults.Steps)
	maxSteps := cmp.Or(max(so.MaxSteps, 0), StepsDefaults.MaxSteps)
	de, err := deltae.Lookup(so.DeltaEMethod)
	if err != nil {
		return nil, err
	}
	var dopts deltae.Options
	delta := func(a, b colors.Color) float64 { return de(a, b, dopts) }

	n := steps
	if so.MaxDeltaE > 0 {
		total := delta(r(0), r(1))
		n = max(steps, int(math.Ceil(total/so.MaxDeltaE))+1)
	}
	n = min(n, maxSteps)

	var stops []stop
	if n == 1 {
		stops = []stop{{0.5, r(0.5)}}
	} else {
		stops = make([]stop, n)
		for i := range stops {
			p := float64(i) / float64(n-1)
			stops[i] = stop{p, r(p)}
		}
	}

	if so.MaxDeltaE > 0 {
		maxDelta := 0.0
		for i := 1; i < len(stops); i++ {
			maxDelta = max(maxDelta, delta(stops[i].c, stops[i-1].c))
		}
		for maxDelta > so.MaxDeltaE {
			maxDelta = 0
			// midpoints of all pairs are added so they stay evenly spaced
			for i := 1; i < len(stops) && len(stops) < maxSteps; i += 2 {
				prev, cur := stops[i-1], stops[i]
				p := (prev.p + cur.p) / 2
				mid := stop{p, r(p)}
				maxDelta = max(maxDelta, delta(mid.c, prev.c), delta(mid.c, cur.c))
				stops = slices.Insert(stops, i, mid)
			}
		}
	}

	res := make([]colors.Color, len(stops))
	for i, s := range stops {
		res[i] = s.c
	}
	return res, nil
}
