// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"math"
	"strings"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/math64"
	"golang.org/x/image/colornames"
)

// FromStd returns the given standard library color as an [SRGB] color.
func FromStd(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewAlpha(SRGB, float64(n.R)/255, float64(n.G)/255, float64(n.B)/255, float64(n.A)/255)
}

// Std returns the color as a standard library [color.RGBA], converting
// it to [SRGB] and clipping any out of gamut channels.
func (c Color) Std() color.RGBA {
	s := Convert(c, SRGB)
	a := math64.Clamp(s.AlphaValue(), 0, 1)
	ch := func(cd Coord) uint8 {
		return uint8(math.Round(math64.Clamp(cd.Float(), 0, 1) * a * 255))
	}
	return color.RGBA{ch(s.Coords[0]), ch(s.Coords[1]), ch(s.Coords[2]), uint8(math.Round(a * 255))}
}

// FromName returns the [SRGB] color with the given case-insensitive
// CSS color name, such as "rebeccapurple".
func FromName(name string) (Color, error) {
	nm := strings.ToLower(strings.TrimSpace(name))
	if nm == "transparent" {
		return NewAlpha(SRGB, 0, 0, 0, 0), nil
	}
	c, ok := colornames.Map[nm]
	if !ok {
		return Color{}, errors.Errorf("unknown color name %q", name)
	}
	return FromStd(c), nil
}
