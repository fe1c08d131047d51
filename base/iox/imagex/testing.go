// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/colorspace/base/errors"
)

// TestingT is the subset of [testing.T] used by [Assert].
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages is whether [Assert] saves the given images in place
// of comparing against them. It is set when the environment variable
// COLORSPACE_UPDATE_TESTDATA is "true".
var UpdateTestImages = os.Getenv("COLORSPACE_UPDATE_TESTDATA") == "true"

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// CompareColors returns whether no channel of the two
// colors differs by more than tol.
func CompareColors(a, b color.RGBA, tol int) bool {
	return absDiff(a.R, b.R) <= tol && absDiff(a.G, b.G) <= tol &&
		absDiff(a.B, b.B) <= tol && absDiff(a.A, b.A) <= tol
}

// DiffImage returns an opaque image of the absolute
// difference of each pixel of the two images.
func DiffImage(a, b image.Image) *image.RGBA {
	r := a.Bounds()
	d := image.NewRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			ac := color.RGBAModel.Convert(a.At(x, y)).(color.RGBA)
			bc := color.RGBAModel.Convert(b.At(x, y)).(color.RGBA)
			d.SetRGBA(x, y, color.RGBA{uint8(absDiff(ac.R, bc.R)), uint8(absDiff(ac.G, bc.G)), uint8(absDiff(ac.B, bc.B)), 255})
		}
	}
	return d
}

// Assert asserts that the given image matches the image saved in the
// testdata directory under the given name, with ".png" added if it has
// no extension. If there is no saved image yet, it saves the given one.
// On a mismatch, it saves the given image and a difference image next
// to the saved one with ".fail" and ".diff" suffixes.
func Assert(t TestingT, img image.Image, filename string) {
	filename = filepath.Join("testdata", filename)
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".png"
		filename += ext
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0750); err != nil {
		t.Errorf("imagex.Assert: error making testdata directory: %v", err)
		return
	}
	failFilename := strings.TrimSuffix(filename, ext) + ".fail" + ext
	diffFilename := strings.TrimSuffix(filename, ext) + ".diff" + ext

	saved, _, err := Open(filename)
	if UpdateTestImages || errors.Is(err, fs.ErrNotExist) {
		if err := Save(img, filename); err != nil {
			t.Errorf("imagex.Assert: error saving image: %v", err)
		}
		os.Remove(failFilename)
		os.Remove(diffFilename)
		return
	}
	if err != nil {
		t.Errorf("imagex.Assert: error opening saved image: %v", err)
		return
	}

	if ok := matches(t, img, saved, filename); ok {
		os.Remove(failFilename)
		os.Remove(diffFilename)
		return
	}
	errors.Log(Save(img, failFilename))
	errors.Log(Save(DiffImage(img, saved), diffFilename))
}

// matches reports whether the two images match within a tolerance
// of one, reporting the first mismatch to t.
func matches(t TestingT, img, saved image.Image, filename string) bool {
	r, sr := img.Bounds(), saved.Bounds()
	if r != sr {
		t.Errorf("imagex.Assert: expected bounds %v for %s, but got %v", sr, filename, r)
		return false
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			ic := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			sc := color.RGBAModel.Convert(saved.At(x, y)).(color.RGBA)
			if !CompareColors(ic, sc, 1) {
				t.Errorf("imagex.Assert: image for %s does not match; expected %v at (%d, %d), but got %v", filename, sc, x, y, ic)
				return false
			}
		}
	}
	return true
}
