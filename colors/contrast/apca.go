// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contrast

import (
	"math"

	"cogentcore.org/colorspace/colors"
	"cogentcore.org/colorspace/math64"
)

// APCA 0.0.98G constants
const (
	apcaNormBG = 0.56
	apcaNormTX = 0.57
	apcaRevTX  = 0.62
	apcaRevBG  = 0.65

	apcaBlackThreshold = 0.022
	apcaBlackClamp     = 1.414
	apcaLowClip        = 0.1
	apcaDeltaYMin      = 0.0005

	apcaScale  = 1.14
	apcaOffset = 0.027
)

// apcaY returns the screen luminance of the given color, computed
// from its sRGB values with a simple 2.4 gamma and a soft clamp of
// very dark values.
func apcaY(c colors.Color) float64 {
	v := colors.Convert(c, colors.SRGB).Values()
	lin := func(x float64) float64 { return math64.Spow(x, 2.4) }
	y := lin(v[0])*0.2126729 + lin(v[1])*0.7151522 + lin(v[2])*0.072175
	if y >= apcaBlackThreshold {
		return y
	}
	return y + math.Pow(apcaBlackThreshold-y, apcaBlackClamp)
}

// APCA returns the APCA 0.0.98G lightness contrast of the foreground
// (text) on the background, which is positive for dark text on a light
// background and negative for light text on a dark background.
// It depends on the order of the colors.
func APCA(background, foreground colors.Color) float64 {
	ytx, ybg := apcaY(foreground), apcaY(background)
	var c float64
	switch {
	case math.Abs(ybg-ytx) < apcaDeltaYMin:
	case ybg > ytx:
		c = (math.Pow(ybg, apcaNormBG) - math.Pow(ytx, apcaNormTX)) * apcaScale
	default:
		c = (math.Pow(ybg, apcaRevBG) - math.Pow(ytx, apcaRevTX)) * apcaScale
	}
	switch {
	case math.Abs(c) < apcaLowClip:
		return 0
	case c > 0:
		return (c - apcaOffset) * 100
	default:
		return (c + apcaOffset) * 100
	}
}
