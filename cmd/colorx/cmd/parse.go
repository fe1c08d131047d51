// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/colors"
	"github.com/lucasb-eyer/go-colorful"
)

// parseColor parses a color given on the command line. It accepts
// the form printed by [colors.Color.String], such as "lch(50 20 none / 0.5)",
// sRGB hex codes, such as "#f80", and CSS color names.
func parseColor(s string) (colors.Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return colors.Color{}, errors.Errorf("invalid hex color %q: %w", s, err)
		}
		return colors.New(colors.SRGB, c.R, c.G, c.B), nil
	case strings.Contains(s, "("):
		return parseFunc(s)
	}
	return colors.FromName(s)
}

// parseFunc parses a color of the form "id(c0 c1 c2 [/ alpha])".
func parseFunc(s string) (colors.Color, error) {
	id, rest, _ := strings.Cut(s, "(")
	body, ok := strings.CutSuffix(strings.TrimSpace(rest), ")")
	if !ok {
		return colors.Color{}, errors.Errorf("invalid color %q: missing closing parenthesis", s)
	}
	sp, err := colors.Lookup(id)
	if err != nil {
		return colors.Color{}, err
	}
	cs, as, hasAlpha := strings.Cut(body, "/")
	fields := strings.FieldsFunc(cs, func(r rune) bool { return r == ' ' || r == ',' })
	coords := make([]float64, len(fields))
	for i, f := range fields {
		if coords[i], err = parseValue(f); err != nil {
			return colors.Color{}, errors.Errorf("invalid coordinate %d of color %q: %w", i, s, err)
		}
	}
	if !hasAlpha {
		return colors.FromSlice(sp, coords)
	}
	alpha, err := parseValue(as)
	if err != nil {
		return colors.Color{}, errors.Errorf("invalid alpha of color %q: %w", s, err)
	}
	return colors.FromSlice(sp, coords, alpha)
}

// parseValue parses a number, a percentage of 1, or "none" as NaN.
func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "none") {
		return math.NaN(), nil
	}
	if p, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(p, 64)
		return v / 100, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

// parseColors parses all of the given colors.
func parseColors(args []string) ([]colors.Color, error) {
	cs := make([]colors.Color, len(args))
	for i, arg := range args {
		c, err := parseColor(arg)
		if err != nil {
			return nil, err
		}
		cs[i] = c
	}
	return cs, nil
}
