// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette generates palettes of sRGB colors in the HCT space:
// tonal palettes of a key color and widely spaced categorical colors.
package palette

import (
	"image"
	"image/draw"
	"sync"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/colors"
	"cogentcore.org/colorspace/colors/gamut"
)

// hct returns the sRGB color with the given HCT coordinates, mapped
// into the sRGB gamut with the given method.
func hct(h, c, t float64, method string) colors.Color {
	return errors.Must1(gamut.To(colors.New(colors.HCT, h, c, t), colors.SRGB, gamut.Options{Method: method}))
}

// Tones contains cached sRGB colors for each tone of a key color,
// which keep the hue and chroma of the key color as far as the
// sRGB gamut allows. It is safe for concurrent use.
type Tones struct {

	// Key is the key color of the tones.
	Key colors.Color

	hct   colors.Color
	mu    sync.Mutex
	cache map[int]colors.Color
}

// NewTones returns new [Tones] for the given key color.
func NewTones(key colors.Color) *Tones {
	return &Tones{Key: key, hct: colors.Convert(key, colors.HCT), cache: map[int]colors.Color{}}
}

// Tone returns the color at the given tone on a scale of 0 to 100.
// Tones 0 and 100 are black and white.
func (t *Tones) Tone(tone int) colors.Color {
	t.mu.Lock()
	defer t.mu.Unlock()
	if c, ok := t.cache[tone]; ok {
		return c
	}
	c := hct(t.hct.Coords[0].Or(0), t.hct.Coords[1].Float(), float64(tone), "hct-tonal")
	t.cache[tone] = c
	return c
}

// Range returns the colors at tones from 0 to 100 in the given step.
func (t *Tones) Range(step int) []colors.Color {
	step = max(step, 1)
	var cs []colors.Color
	for tone := 0; tone <= 100; tone += step {
		cs = append(cs, t.Tone(tone))
	}
	return cs
}

// blue, red, green, yellow, violet, aqua, orange, blueviolet
var (
	spacedHues        = []float64{255, 25, 150, 105, 340, 210, 60, 300}
	spacedToneOffsets = []float64{0, -10, 0, 5, 0, 0, 5, 0}
	spacedTones       = []float64{65, 80, 45, 65, 80}
	spacedChromas     = []float64{90, 90, 90, 20, 20}
)

// Spaced returns a maximally widely spaced sequence of colors for
// progressive values of the index, such as for the categories of a
// graph. If dark is true, yellow is lighter for dark backgrounds.
func Spaced(idx int, dark bool) colors.Color {
	hi := idx % len(spacedHues)
	ti := (idx / len(spacedHues)) % len(spacedTones)
	toff := spacedToneOffsets[hi]
	if dark && hi == 3 {
		toff = 10
	}
	return hct(spacedHues[hi], spacedChromas[ti], spacedTones[ti]+toff, "hct")
}

// Image returns an image of square swatches of the given size for
// the given colors, laid out in rows of the given number of columns.
func Image(cs []colors.Color, columns, size int) *image.RGBA {
	columns = max(min(columns, len(cs)), 1)
	rows := (len(cs) + columns - 1) / columns
	img := image.NewRGBA(image.Rect(0, 0, columns*size, rows*size))
	for i, c := range cs {
		x, y := (i%columns)*size, (i/columns)*size
		draw.Draw(img, image.Rect(x, y, x+size, y+size), image.NewUniform(c.Std()), image.Point{}, draw.Src)
	}
	return img
}
