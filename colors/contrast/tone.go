// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contrast

import (
	"math"

	"cogentcore.org/colorspace/colors"
	"cogentcore.org/colorspace/colors/cam/cie"
	"cogentcore.org/colorspace/math64"
)

// ToneRatio returns the WCAG 2.1 contrast ratio between the given two
// HCT tones (or CIE L* values). The tones are clamped between 0 and 100,
// and the contrast ratio will be between 1 and 21.
func ToneRatio(a, b float64) float64 {
	a = math64.Clamp(a, 0, 100)
	b = math64.Clamp(b, 0, 100)
	return RatioOfYs(cie.LToY(a), cie.LToY(b))
}

// Tone returns the tone that meets the given contrast ratio with the given
// tone. It returns -1, false if the ratio can not be achieved. If the tone
// is greater than 50, it tries darker tones first, and otherwise it tries
// lighter tones first.
func Tone(tone, ratio float64) (float64, bool) {
	first, second := ToneLighter, ToneDarker
	if tone > 50 {
		first, second = ToneDarker, ToneLighter
	}
	if t, ok := first(tone, ratio); ok {
		return t, true
	}
	if t, ok := second(tone, ratio); ok {
		return t, true
	}
	return -1, false
}

// ToneUnsafe is like [Tone], but if the ratio can not be achieved,
// it returns whichever of 0 and 100 has the higher contrast with the tone.
// The result may not meet the ratio.
func ToneUnsafe(tone, ratio float64) float64 {
	if t, ok := Tone(tone, ratio); ok {
		return t
	}
	if ToneRatio(tone, 0) > ToneRatio(tone, 100) {
		return 0
	}
	return 100
}

// ToneLighter returns a tone greater than or equal to the given tone that
// meets the given contrast ratio with it. It returns -1, false if the ratio
// can not be achieved or the tone is outside of 0 to 100.
func ToneLighter(tone, ratio float64) (float64, bool) {
	if tone < 0 || tone > 100 {
		return -1, false
	}
	darkY := cie.LToY(tone)
	lightY := ratio*(darkY+0.05) - 0.05
	got := RatioOfYs(lightY, darkY)
	if got < ratio && math.Abs(got-ratio) > 0.04 {
		return -1, false
	}
	// lighten slightly so that gamut mapping within the tone range still meets the ratio
	ret := cie.YToL(lightY) + 0.4
	if ret < 0 || ret > 100 {
		return -1, false
	}
	return ret, true
}

// ToneDarker returns a tone less than or equal to the given tone that
// meets the given contrast ratio with it. It returns -1, false if the ratio
// can not be achieved or the tone is outside of 0 to 100.
func ToneDarker(tone, ratio float64) (float64, bool) {
	if tone < 0 || tone > 100 {
		return -1, false
	}
	lightY := cie.LToY(tone)
	darkY := (lightY+0.05)/ratio - 0.05
	got := RatioOfYs(lightY, darkY)
	if got < ratio && math.Abs(got-ratio) > 0.04 {
		return -1, false
	}
	ret := cie.YToL(darkY) - 0.4
	if ret < 0 || ret > 100 {
		return -1, false
	}
	return ret, true
}

// ToneLighterUnsafe is like [ToneLighter], but returns 100
// if the ratio can not be achieved.
func ToneLighterUnsafe(tone, ratio float64) float64 {
	if t, ok := ToneLighter(tone, ratio); ok {
		return t
	}
	return 100
}

// ToneDarkerUnsafe is like [ToneDarker], but returns 0
// if the ratio can not be achieved.
func ToneDarkerUnsafe(tone, ratio float64) float64 {
	if t, ok := ToneDarker(tone, ratio); ok {
		return t
	}
	return 0
}

// hctTone returns the color in HCT and its tone.
func hctTone(c colors.Color) (colors.Color, float64) {
	h := colors.Convert(c, colors.HCT)
	return h, h.Coords[2].Float()
}

// withTone returns the HCT color with the given tone,
// expressed in the given space.
func withTone(h colors.Color, tone float64, space *colors.Space) colors.Color {
	h.Coords[2] = colors.Val(tone)
	return colors.Convert(h, space)
}

// Color returns a color with the hue and chroma of the given color that
// meets the given WCAG 2.1 contrast ratio with it, expressed in the
// space of the given color. It returns the color and false if the ratio
// can not be achieved.
func Color(c colors.Color, ratio float64) (colors.Color, bool) {
	h, tone := hctTone(c)
	t, ok := Tone(tone, ratio)
	if !ok {
		return c, false
	}
	return withTone(h, t, c.Space), true
}

// ColorUnsafe is like [Color], but uses [ToneUnsafe],
// so the result may not meet the ratio.
func ColorUnsafe(c colors.Color, ratio float64) colors.Color {
	h, tone := hctTone(c)
	return withTone(h, ToneUnsafe(tone, ratio), c.Space)
}
