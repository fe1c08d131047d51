// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"math"

	"cogentcore.org/colorspace/math64"
)

// HSL is the hue, saturation, lightness form of [SRGB].
// Saturation and lightness range from 0 to 100.
var HSL = &Space{
	ID:   "hsl",
	Name: "HSL",
	Coords: [3]CoordInfo{
		hue("h", "Hue"),
		ref("s", "Saturation", 0, 100),
		ref("l", "Lightness", 0, 100),
	},
	White:      SRGB.White,
	Base:       SRGB,
	GamutSpace: SRGB,
	FromBase:   hslFromRGB,
	ToBase:     hslToRGB,
}

func hslFromRGB(rgb math64.Vec3) math64.Vec3 {
	r, g, b := rgb[0], rgb[1], rgb[2]
	mx, mn := rgb.Max(), rgb.Min()
	h, s, l := math.NaN(), 0.0, (mn+mx)/2
	d := mx - mn
	if d != 0 {
		if l != 0 && l != 1 {
			s = (mx - l) / min(l, 1-l)
		}
		switch mx {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h *= 60
	}
	// a negative saturation from out of gamut colors
	// is expressed by rotating the hue
	if s < 0 {
		h += 180
		s = math.Abs(s)
	}
	if h >= 360 {
		h -= 360
	}
	return math64.V3(h, s*100, l*100)
}

func hslToRGB(hsl math64.Vec3) math64.Vec3 {
	h, s, l := hsl[0], hsl[1]/100, hsl[2]/100
	if math.IsNaN(h) {
		h = 0
	}
	h = math64.ConstrainAngle(h)
	a := s * min(l, 1-l)
	f := func(n float64) float64 {
		k := math.Mod(n+h/30, 12)
		return l - a*max(-1, min(k-3, 9-k, 1))
	}
	return math64.V3(f(0), f(8), f(4))
}

// HSV is the hue, saturation, value form of [SRGB], defined
// in terms of [HSL]. Saturation and value range from 0 to 100.
var HSV = &Space{
	ID:   "hsv",
	Name: "HSV",
	Coords: [3]CoordInfo{
		hue("h", "Hue"),
		ref("s", "Saturation", 0, 100),
		ref("v", "Value", 0, 100),
	},
	White:      SRGB.White,
	Base:       HSL,
	GamutSpace: SRGB,
	SharesHue:  true,
	FromBase: func(hsl math64.Vec3) math64.Vec3 {
		h, s, l := hsl[0], hsl[1]/100, hsl[2]/100
		v := l + s*min(l, 1-l)
		sv := 0.0
		if v != 0 {
			sv = 2 * (1 - l/v)
		}
		return math64.V3(h, sv*100, v*100)
	},
	ToBase: func(hsv math64.Vec3) math64.Vec3 {
		h, s, v := hsv[0], hsv[1]/100, hsv[2]/100
		l := v * (1 - s/2)
		sl := 0.0
		if l != 0 && l != 1 {
			sl = (v - l) / min(l, 1-l)
		}
		return math64.V3(h, sl*100, l*100)
	},
}

// HWB is the hue, whiteness, blackness form of [SRGB], defined
// in terms of [HSV]. Whiteness and blackness range from 0 to 100.
var HWB = &Space{
	ID:   "hwb",
	Name: "HWB",
	Coords: [3]CoordInfo{
		hue("h", "Hue"),
		ref("w", "Whiteness", 0, 100),
		ref("b", "Blackness", 0, 100),
	},
	White:      SRGB.White,
	Base:       HSV,
	GamutSpace: SRGB,
	SharesHue:  true,
	FromBase: func(hsv math64.Vec3) math64.Vec3 {
		h, s, v := hsv[0], hsv[1], hsv[2]
		return math64.V3(h, v*(100-s)/100, 100-v)
	},
	ToBase: func(hwb math64.Vec3) math64.Vec3 {
		h, w, b := hwb[0], hwb[1]/100, hwb[2]/100
		if w+b >= 1 {
			gray := w / (w + b)
			return math64.V3(h, 0, gray*100)
		}
		v := 1 - b
		s := 0.0
		if v != 0 {
			s = 1 - w/v
		}
		return math64.V3(h, s*100, v*100)
	},
}
