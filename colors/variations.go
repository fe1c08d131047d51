// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "math"

// Deltas returns the differences between the coordinates and alpha of
// the two colors after converting both to the given space, or the space
// of a if it is nil. Hue differences follow the given arc. A coordinate
// missing in one color has a difference of 0, and one missing in both
// colors has a missing difference.
func Deltas(a, b Color, space *Space, arc Arc) Color {
	if space == nil {
		space = a.Space
	}
	a, b = Convert(a, space), Convert(b, space)
	res := Color{Space: space, Alpha: subtractCoords(a.Alpha, b.Alpha)}
	for i := range res.Coords {
		ca, cb := a.Coords[i], b.Coords[i]
		if space.Coords[i].Angle && !ca.None && !cb.None {
			va, vb := AdjustHues(arc, ca.Value, cb.Value)
			ca, cb = Val(va), Val(vb)
		}
		res.Coords[i] = subtractCoords(ca, cb)
	}
	return res
}

func subtractCoords(a, b Coord) Coord {
	if a.None || b.None {
		if a.None && b.None {
			return None
		}
		return Val(0)
	}
	return Val(a.Value - b.Value)
}

// Distance returns the Euclidean distance between the two colors
// in the given space, or [Lab] if it is nil. Coordinates missing
// in either color are skipped.
func Distance(a, b Color, space *Space) float64 {
	if space == nil {
		space = Lab
	}
	a, b = Convert(a, space), Convert(b, space)
	sum := 0.0
	for i := range a.Coords {
		if a.Coords[i].None || b.Coords[i].None {
			continue
		}
		d := a.Coords[i].Value - b.Coords[i].Value
		sum += d * d
	}
	return math.Sqrt(sum)
}

// DefaultVariation is the default amount of [Lighten] and [Darken].
const DefaultVariation = 0.25

// Lighten returns the color with its [OKLCh] lightness increased by
// the given fraction of itself, expressed in its own space.
func Lighten(c Color, amount float64) Color {
	return scaleLightness(c, 1+amount)
}

// Darken returns the color with its [OKLCh] lightness decreased by
// the given fraction of itself, expressed in its own space.
func Darken(c Color, amount float64) Color {
	return scaleLightness(c, 1-amount)
}

func scaleLightness(c Color, f float64) Color {
	lch := Convert(c, OKLCh)
	lch.Coords[0] = Val(lch.Coords[0].Float() * f)
	return Convert(lch, c.Space)
}
