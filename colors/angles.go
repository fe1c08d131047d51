// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"strings"

	"cogentcore.org/colorspace/math64"
)

// Arc is a method of resolving the ambiguity of which way around the
// hue circle to go when interpolating or subtracting two hue angles.
type Arc int32

const (
	// Shorter takes the arc of 180° or less between the hues.
	Shorter Arc = iota

	// Longer takes the arc of 180° or more between the hues.
	Longer

	// Increasing goes from the first hue to the second hue
	// in the direction of increasing angle.
	Increasing

	// Decreasing goes from the first hue to the second hue
	// in the direction of decreasing angle.
	Decreasing

	// Raw uses the hue angles as they are, without constraining them.
	Raw
)

var arcNames = [...]string{"shorter", "longer", "increasing", "decreasing", "raw"}

// ArcValues returns all of the hue arcs.
func ArcValues() []Arc {
	return []Arc{Shorter, Longer, Increasing, Decreasing, Raw}
}

func (a Arc) String() string {
	if a < 0 || int(a) >= len(arcNames) {
		return fmt.Sprintf("Arc(%d)", int32(a))
	}
	return arcNames[a]
}

// SetString sets the arc from its case-insensitive name.
func (a *Arc) SetString(s string) error {
	for i, nm := range arcNames {
		if strings.EqualFold(nm, s) {
			*a = Arc(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid hue arc", s)
}

func (a Arc) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Arc) UnmarshalText(text []byte) error {
	return a.SetString(string(text))
}

// AdjustHues returns the two hue angles in degrees adjusted so that
// linearly interpolating between them follows the given arc. Unless the
// arc is [Raw], both angles are first constrained to [0, 360), and one of
// them may then be increased by 360. NaN angles are returned unchanged.
func AdjustHues(arc Arc, a1, a2 float64) (float64, float64) {
	if arc == Raw {
		return a1, a2
	}
	a1, a2 = math64.ConstrainAngle(a1), math64.ConstrainAngle(a2)
	d := a2 - a1
	switch arc {
	case Increasing:
		if d < 0 {
			a2 += 360
		}
	case Decreasing:
		if d > 0 {
			a1 += 360
		}
	case Longer:
		if -180 < d && d < 180 {
			if d > 0 {
				a1 += 360
			} else {
				a2 += 360
			}
		}
	case Shorter:
		if d > 180 {
			a1 += 360
		} else if d < -180 {
			a2 += 360
		}
	}
	return a1, a2
}
