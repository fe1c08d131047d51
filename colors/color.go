// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/math64"
)

// Color is a color in a particular [Space], specified by its three
// coordinates and an alpha value. A Color is an immutable value:
// all operations on it return a new Color. A missing alpha value
// means the color is fully opaque. The zero Color has an alpha of 0,
// not a missing one, so it is fully transparent; use [New],
// [NewAlpha], or [FromSlice] to make colors.
type Color struct {

	// Space is the color space of the coordinates.
	Space *Space

	// Coords are the coordinates of the color, in the order
	// given by the [Space.Coords] of the space.
	Coords [3]Coord

	// Alpha is the opacity of the color, from 0 to 1.
	Alpha Coord
}

// New returns a new fully opaque color in the given space with the given
// coordinates. NaN coordinates are treated as missing.
func New(space *Space, c0, c1, c2 float64) Color {
	return Color{Space: space, Coords: [3]Coord{Val(c0), Val(c1), Val(c2)}, Alpha: Val(1)}
}

// NewAlpha returns a new color in the given space with the given
// coordinates and alpha value.
func NewAlpha(space *Space, c0, c1, c2, alpha float64) Color {
	c := New(space, c0, c1, c2)
	c.Alpha = Val(alpha)
	return c
}

// FromVec3 returns a new fully opaque color in the given space
// with the given coordinate vector.
func FromVec3(space *Space, v math64.Vec3) Color {
	return New(space, v[0], v[1], v[2])
}

// FromSlice returns a new color in the given space from the given
// coordinates and optional alpha value. It returns an
// [InvalidCoordinateError] if the number of coordinates does not match
// the space or a value is infinite. NaN values are treated as missing.
func FromSlice(space *Space, coords []float64, alpha ...float64) (Color, error) {
	if space == nil {
		return Color{}, errors.Wrap(&InvalidCoordinateError{Index: -1, Reason: "no color space"})
	}
	if len(coords) != len(space.Coords) {
		return Color{}, errors.Wrap(&InvalidCoordinateError{Space: space.ID, Index: -1,
			Reason: fmt.Sprintf("got %d coordinates, want %d", len(coords), len(space.Coords))})
	}
	if len(alpha) > 1 {
		return Color{}, errors.Wrap(&InvalidCoordinateError{Space: space.ID, Index: 3,
			Reason: fmt.Sprintf("got %d alpha values, want at most 1", len(alpha))})
	}
	c := Color{Space: space, Alpha: Val(1)}
	for i, v := range coords {
		if math.IsInf(v, 0) {
			return Color{}, errors.Wrap(&InvalidCoordinateError{Space: space.ID, Index: i, Reason: "value is infinite"})
		}
		c.Coords[i] = Val(v)
	}
	if len(alpha) == 1 {
		if math.IsInf(alpha[0], 0) {
			return Color{}, errors.Wrap(&InvalidCoordinateError{Space: space.ID, Index: 3, Reason: "alpha is infinite"})
		}
		c.Alpha = Val(alpha[0])
	}
	return c, nil
}

// Values returns the coordinate values of the color as a vector,
// with missing coordinates counting as 0.
func (c Color) Values() math64.Vec3 {
	return math64.V3(c.Coords[0].Float(), c.Coords[1].Float(), c.Coords[2].Float())
}

// NaNs returns the coordinate values of the color as a vector,
// with missing coordinates represented as NaN.
func (c Color) NaNs() math64.Vec3 {
	return math64.V3(c.Coords[0].NaN(), c.Coords[1].NaN(), c.Coords[2].NaN())
}

// AlphaValue returns the alpha value of the color, which is 1
// if alpha is missing.
func (c Color) AlphaValue() float64 {
	return c.Alpha.Or(1)
}

// WithAlpha returns the color with the given alpha value.
func (c Color) WithAlpha(alpha float64) Color {
	c.Alpha = Val(alpha)
	return c
}

// WithCoord returns the color with the coordinate at the
// given index set to the given value.
func (c Color) WithCoord(i int, v Coord) Color {
	c.Coords[i] = v
	return c
}

// To returns the color converted to the space with the given
// identifier or alias in the [Default] registry.
func (c Color) To(id string) (Color, error) {
	s, err := Lookup(id)
	if err != nil {
		return c, err
	}
	return Convert(c, s), nil
}

// Get returns the coordinate with the given reference, which is either
// a coordinate ID of the color's own space (such as "l") or a space and
// coordinate separated by a dot (such as "oklch.c"), in which case the
// color is first converted to that space.
func (c Color) Get(ref string) (Coord, error) {
	cc, i, err := c.resolve(ref)
	if err != nil {
		return Coord{}, err
	}
	return cc.Coords[i], nil
}

// Set returns the color with the coordinate with the given reference
// (see [Color.Get]) set to the given value, expressed in the color's
// own space.
func (c Color) Set(ref string, v Coord) (Color, error) {
	cc, i, err := c.resolve(ref)
	if err != nil {
		return c, err
	}
	cc.Coords[i] = v
	return Convert(cc, c.Space), nil
}

// resolve returns the color in the space of the given coordinate
// reference and the index of the coordinate.
func (c Color) resolve(ref string) (Color, int, error) {
	sp, id, ok := strings.Cut(ref, ".")
	if !ok {
		sp, id = "", ref
	}
	cc := c
	if sp != "" {
		s, err := Lookup(sp)
		if err != nil {
			return c, -1, err
		}
		cc = Convert(c, s)
	}
	i := cc.Space.CoordIndex(id)
	if i < 0 {
		return c, -1, errors.Wrap(&InvalidCoordinateError{Space: cc.Space.ID, Index: -1,
			Reason: fmt.Sprintf("no coordinate named %q", id)})
	}
	return cc, i, nil
}

// Equals returns whether the two colors are in the same space and
// have the same coordinates and alpha value.
func (c Color) Equals(o Color) bool {
	return c == o
}

// String returns a functional notation for the color, such as
// "lab(50 20 none)" or "srgb(1 0 0 / 0.5)", using the precision
// of each coordinate. It is intended for display, not for parsing.
func (c Color) String() string {
	var b strings.Builder
	id := "color"
	if c.Space != nil {
		id = c.Space.ID
	}
	b.WriteString(id)
	b.WriteByte('(')
	for i, cd := range c.Coords {
		if i > 0 {
			b.WriteByte(' ')
		}
		prec := -1
		if c.Space != nil {
			prec = c.Space.Coords[i].Precision
		}
		b.WriteString(formatCoord(cd, prec))
	}
	if a := c.AlphaValue(); a != 1 || c.Alpha.None {
		b.WriteString(" / ")
		b.WriteString(formatCoord(c.Alpha, 4))
	}
	b.WriteByte(')')
	return b.String()
}

// formatCoord formats the given coordinate with the given number of
// significant digits, trimming trailing zeros. A negative precision
// uses the smallest number of digits necessary.
func formatCoord(c Coord, prec int) string {
	if c.None {
		return "none"
	}
	if prec <= 0 {
		return strconv.FormatFloat(c.Value, 'g', -1, 64)
	}
	v := c.Value
	if v == 0 {
		return "0"
	}
	digits := prec - int(math.Floor(math.Log10(math.Abs(v)))) - 1
	if digits < 0 {
		digits = 0
	}
	s := strconv.FormatFloat(v, 'f', digits, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
