// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"strings"

	"cogentcore.org/colorspace/math64"
)

// CoordInfo describes one coordinate of a [Space].
type CoordInfo struct {

	// ID is the short identifier of the coordinate, such as "l" or "h".
	ID string

	// Name is the human-readable name of the coordinate.
	Name string

	// Range is the valid range of the coordinate for gamut checks.
	// It is only used if Bounded is true.
	Range [2]float64

	// Bounded is whether Range bounds the gamut of the space.
	Bounded bool

	// RefRange is a reference range of typical values, used for display
	// and as the lower bound of coordinate reduction. It does not
	// bound the gamut.
	RefRange [2]float64

	// Angle is whether the coordinate is a hue angle in degrees,
	// which needs modulo 360 arithmetic.
	Angle bool

	// Precision is the default number of significant digits
	// used to display the coordinate.
	Precision int
}

// Min returns the lower bound of [CoordInfo.Range] if the coordinate is
// bounded and of [CoordInfo.RefRange] otherwise.
func (ci *CoordInfo) Min() float64 {
	if ci.Bounded {
		return ci.Range[0]
	}
	return ci.RefRange[0]
}

// Max returns the upper bound of [CoordInfo.Range] if the coordinate is
// bounded and of [CoordInfo.RefRange] otherwise.
func (ci *CoordInfo) Max() float64 {
	if ci.Bounded {
		return ci.Range[1]
	}
	return ci.RefRange[1]
}

// bounded returns a coordinate with a gamut range.
func bounded(id, name string, lo, hi float64) CoordInfo {
	return CoordInfo{ID: id, Name: name, Range: [2]float64{lo, hi}, Bounded: true, RefRange: [2]float64{lo, hi}, Precision: 5}
}

// ref returns an unbounded coordinate with a reference range.
func ref(id, name string, lo, hi float64) CoordInfo {
	return CoordInfo{ID: id, Name: name, RefRange: [2]float64{lo, hi}, Precision: 5}
}

// hue returns a hue angle coordinate.
func hue(id, name string) CoordInfo {
	return CoordInfo{ID: id, Name: name, RefRange: [2]float64{0, 360}, Angle: true, Precision: 5}
}

// Space is a color space, defined by its coordinates and the
// conversion functions to and from its base space. The spaces form a
// tree rooted at [XYZD65], so every space has exactly one path to the
// root. A Space must not be modified after it is registered.
type Space struct {

	// ID is the unique identifier of the space, such as "srgb".
	ID string

	// Name is the human-readable name of the space.
	Name string

	// Aliases are additional identifiers for the space.
	Aliases []string

	// Coords describe the three coordinates of the space.
	Coords [3]CoordInfo

	// White is the reference white of the space as XYZ with Y = 1.
	White math64.Vec3

	// Base is the space this space is defined in terms of,
	// which is nil only for the root space.
	Base *Space

	// ToBase converts coordinates of this space to the base space.
	ToBase func(v math64.Vec3) math64.Vec3

	// FromBase converts coordinates of the base space to this space.
	FromBase func(v math64.Vec3) math64.Vec3

	// GamutSpace is the space through which the gamut of this space is
	// checked, if it is not this space itself. Cylindrical forms of
	// RGB spaces, such as HSL, check their gamut in the RGB space.
	GamutSpace *Space

	// Referred is "display" for display-referred spaces and
	// "scene" for scene-referred spaces.
	Referred string

	// SharesHue is whether this space has the same hue coordinate
	// as its base, which it passes through unchanged. A missing hue
	// stays missing through conversions between spaces that share hue.
	SharesHue bool
}

// String returns the ID of the space.
func (s *Space) String() string {
	return s.ID
}

// Path returns the chain of spaces from the root space to this space.
func (s *Space) Path() []*Space {
	var path []*Space
	for sp := s; sp != nil; sp = sp.Base {
		path = append(path, sp)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// IsPolar returns whether the space has a hue angle coordinate.
func (s *Space) IsPolar() bool {
	return s.HueIndex() >= 0
}

// HueIndex returns the index of the hue angle coordinate,
// or -1 if there is none.
func (s *Space) HueIndex() int {
	for i := range s.Coords {
		if s.Coords[i].Angle {
			return i
		}
	}
	return -1
}

// IsUnbounded returns whether the space has an unbounded gamut,
// meaning that every color is in its gamut.
func (s *Space) IsUnbounded() bool {
	g := s.Gamut()
	for i := range g.Coords {
		if g.Coords[i].Bounded {
			return false
		}
	}
	return true
}

// Gamut returns the space whose coordinate ranges define
// the gamut of this space.
func (s *Space) Gamut() *Space {
	g := s
	for g.GamutSpace != nil && g.GamutSpace != g {
		g = g.GamutSpace
	}
	return g
}

// CoordIndex returns the index of the coordinate with the given
// ID or name, case-insensitively, or -1 if there is none.
func (s *Space) CoordIndex(id string) int {
	for i := range s.Coords {
		if strings.EqualFold(s.Coords[i].ID, id) || strings.EqualFold(s.Coords[i].Name, id) {
			return i
		}
	}
	return -1
}

// convertUp converts v from this space to its base.
func (s *Space) convertUp(v math64.Vec3) math64.Vec3 {
	if s.ToBase == nil {
		return v
	}
	return s.ToBase(v)
}

// convertDown converts v from the base space to this space.
func (s *Space) convertDown(v math64.Vec3) math64.Vec3 {
	if s.FromBase == nil {
		return v
	}
	return s.FromBase(v)
}
