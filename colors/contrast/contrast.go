// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contrast provides contrast algorithms between background and
// foreground colors, and helpers for finding colors that meet a
// WCAG contrast ratio.
package contrast

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/colors"
)

// Func is a contrast algorithm, which returns the contrast of
// the given foreground color on the given background color.
type Func func(background, foreground colors.Color) float64

// UnknownAlgorithmError is returned when a contrast algorithm is not registered.
type UnknownAlgorithmError struct {
	Algorithm string
}

func (e *UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("unknown contrast algorithm %q; valid algorithms are %s", e.Algorithm, strings.Join(Algorithms(), ", "))
}

var (
	algorithmsMu sync.RWMutex
	algorithms   = map[string]Func{}
	names        = map[string]string{}
)

func init() {
	Register("WCAG21", WCAG21)
	Register("APCA", APCA)
	Register("Michelson", Michelson)
	Register("Weber", Weber)
	Register("Lstar", Lstar)
	Register("DeltaPhi", DeltaPhi)
}

// Register adds the given contrast algorithm under the given
// case-insensitive name, replacing any existing one.
func Register(name string, f Func) {
	algorithmsMu.Lock()
	defer algorithmsMu.Unlock()
	k := strings.ToLower(name)
	algorithms[k] = f
	names[k] = name
}

// Algorithms returns the names of all of the registered algorithms, sorted.
func Algorithms() []string {
	algorithmsMu.RLock()
	res := make([]string, 0, len(names))
	for _, nm := range names {
		res = append(res, nm)
	}
	algorithmsMu.RUnlock()
	slices.Sort(res)
	return res
}

// Contrast returns the contrast of the given foreground color on the
// given background color using the algorithm with the given name.
func Contrast(background, foreground colors.Color, algorithm string) (float64, error) {
	algorithmsMu.RLock()
	f, ok := algorithms[strings.ToLower(algorithm)]
	algorithmsMu.RUnlock()
	if !ok {
		return 0, errors.Wrap(&UnknownAlgorithmError{Algorithm: algorithm})
	}
	return f(background, foreground), nil
}

// lighterDarker returns the clamped relative luminances
// of the two colors, with the lighter one first.
func lighterDarker(a, b colors.Color) (lighter, darker float64) {
	y1 := max(colors.Luminance(a), 0)
	y2 := max(colors.Luminance(b), 0)
	return max(y1, y2), min(y1, y2)
}

// WCAG21 returns the WCAG 2.1 contrast ratio of the colors, which is
// between 1 and 21 and does not depend on their order.
func WCAG21(background, foreground colors.Color) float64 {
	return RatioOfYs(colors.Luminance(background), colors.Luminance(foreground))
}

// RatioOfYs returns the WCAG 2.1 contrast ratio of two
// relative luminances between 0 and 1.
func RatioOfYs(a, b float64) float64 {
	a, b = max(a, 0), max(b, 0)
	return (max(a, b) + 0.05) / (min(a, b) + 0.05)
}

// Michelson returns the Michelson contrast of the colors, which is the
// ratio of the difference and the sum of their luminances.
func Michelson(background, foreground colors.Color) float64 {
	l, d := lighterDarker(background, foreground)
	if l+d == 0 {
		return 0
	}
	return (l - d) / (l + d)
}

// weberMax is the Weber contrast with a black color. The darkest sRGB
// color above black has a contrast of about 45647 with white.
const weberMax = 50000

// Weber returns the Weber contrast of the colors, which is the
// difference of their luminances divided by the lower one.
func Weber(background, foreground colors.Color) float64 {
	l, d := lighterDarker(background, foreground)
	if d == 0 {
		return weberMax
	}
	return (l - d) / d
}

// Lstar returns the difference of the CIE lightness of the colors,
// which is also the difference of their HCT tones.
func Lstar(background, foreground colors.Color) float64 {
	l1 := colors.Convert(background, colors.Lab).Coords[0].Float()
	l2 := colors.Convert(foreground, colors.Lab).Coords[0].Float()
	return math.Abs(l1 - l2)
}

// phi is the golden ratio.
var phi = (1 + math.Sqrt(5)) / 2

// DeltaPhi returns the delta phi star perceptual lightness contrast
// of the colors, which is 0 under a threshold of 7.5.
func DeltaPhi(background, foreground colors.Color) float64 {
	l1 := colors.Convert(background, colors.LabD65).Coords[0].Float()
	l2 := colors.Convert(foreground, colors.LabD65).Coords[0].Float()
	d := math.Abs(math.Pow(l1, phi) - math.Pow(l2, phi))
	c := math.Pow(d, 1/phi)*math.Sqrt2 - 40
	if c < 7.5 {
		return 0
	}
	return c
}
