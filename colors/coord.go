// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"math"
	"strconv"
)

// Coord is one coordinate of a [Color]. A coordinate can be missing
// (none), which is distinct from zero: for example, the hue of an
// achromatic color is none. A missing coordinate counts as 0 in
// arithmetic unless an operation defines otherwise.
type Coord struct {

	// Value is the numeric value of the coordinate, which is
	// only meaningful if None is false.
	Value float64

	// None is whether the coordinate is missing.
	None bool
}

// None is a missing coordinate.
var None = Coord{None: true}

// Val returns a [Coord] with the given value. A NaN value
// results in a missing coordinate.
func Val(v float64) Coord {
	if math.IsNaN(v) {
		return None
	}
	return Coord{Value: v}
}

// IsNone returns whether the coordinate is missing.
func (c Coord) IsNone() bool {
	return c.None
}

// Or returns the value of the coordinate, or def if it is missing.
func (c Coord) Or(def float64) float64 {
	if c.None {
		return def
	}
	return c.Value
}

// Float returns the value of the coordinate, with a missing
// coordinate counting as 0.
func (c Coord) Float() float64 {
	return c.Or(0)
}

// NaN returns the value of the coordinate, or NaN if it is missing.
func (c Coord) NaN() float64 {
	return c.Or(math.NaN())
}

// String returns "none" or the value of the coordinate.
func (c Coord) String() string {
	if c.None {
		return "none"
	}
	return strconv.FormatFloat(c.Value, 'g', -1, 64)
}
