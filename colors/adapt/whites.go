// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adapt

import (
	"sort"
	"strings"

	"cogentcore.org/colorspace/math64"
)

// WhiteFromXY returns the XYZ tristimulus values, normalized to Y = 1,
// of the white point with the given CIE xy chromaticity.
func WhiteFromXY(x, y float64) math64.Vec3 {
	return math64.V3(x/y, 1, (1-x-y)/y)
}

// Standard illuminant white points as XYZ with Y = 1. D50 and D65 use
// the four digit chromaticities that the CSS and ICC specifications use.
var (
	D50  = WhiteFromXY(0.3457, 0.3585)
	D65  = WhiteFromXY(0.3127, 0.3290)
	ACES = WhiteFromXY(0.32168, 0.33767)
	A    = math64.V3(1.09850, 1, 0.35585)
	C    = math64.V3(0.98074, 1, 1.18232)
	D55  = math64.V3(0.95682, 1, 0.92149)
	D75  = math64.V3(0.94972, 1, 1.22638)
	E    = math64.V3(1, 1, 1)
	F2   = math64.V3(0.99186, 1, 0.67393)
	F7   = math64.V3(0.95041, 1, 1.08747)
	F11  = math64.V3(1.00962, 1, 0.64350)
)

// Whites is a map of the standard white points by name.
var Whites = map[string]math64.Vec3{
	"D50":  D50,
	"D65":  D65,
	"ACES": ACES,
	"A":    A,
	"C":    C,
	"D55":  D55,
	"D75":  D75,
	"E":    E,
	"F2":   F2,
	"F7":   F7,
	"F11":  F11,
}

// WhiteByName returns the standard white point with the given
// case-insensitive name, and whether it exists.
func WhiteByName(name string) (math64.Vec3, bool) {
	w, ok := Whites[strings.ToUpper(name)]
	return w, ok
}

// WhiteName returns the name of the given white point if it is one
// of the standard [Whites], or "" otherwise.
func WhiteName(w math64.Vec3) string {
	names := make([]string, 0, len(Whites))
	for nm := range Whites {
		names = append(names, nm)
	}
	sort.Strings(names)
	for _, nm := range names {
		if Whites[nm] == w {
			return nm
		}
	}
	return ""
}
