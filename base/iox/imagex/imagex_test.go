// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	errs []string
}

func (r *recorder) Errorf(format string, args ...any) {
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
}

func testImage(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := range 3 {
		for x := range 4 {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestExtToFormat(t *testing.T) {
	for ext, want := range map[string]Formats{".png": PNG, "JPG": JPEG, "jpeg": JPEG, ".tif": TIFF, "bmp": BMP, "gif": GIF, "webp": WebP} {
		f, err := ExtToFormat(ext)
		assert.NoError(t, err, ext)
		assert.Equal(t, want, f, ext)
	}
	_, err := ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".svg")
	assert.Error(t, err)
	assert.Equal(t, "tiff", TIFF.String())
}

func TestWriteRead(t *testing.T) {
	img := testImage(color.RGBA{10, 200, 30, 255})
	for _, f := range []Formats{PNG, TIFF, BMP} {
		var b bytes.Buffer
		require.NoError(t, Write(img, &b, f), f)
		got, gf, err := Read(&b)
		require.NoError(t, err, f)
		assert.Equal(t, f, gf)
		assert.Equal(t, img.Bounds(), got.Bounds())
		assert.Equal(t, img.At(1, 1), color.RGBAModel.Convert(got.At(1, 1)))
	}
	assert.Error(t, Write(img, &bytes.Buffer{}, WebP))
}

func TestAssert(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	img := testImage(color.RGBA{100, 50, 25, 255})
	r := &recorder{}
	Assert(r, img, "swatch")
	assert.Empty(t, r.errs)
	assert.FileExists(t, filepath.Join("testdata", "swatch.png"))

	Assert(r, testImage(color.RGBA{101, 50, 25, 255}), "swatch")
	assert.Empty(t, r.errs)

	Assert(r, testImage(color.RGBA{0, 50, 25, 255}), "swatch")
	assert.Len(t, r.errs, 1)
	assert.FileExists(t, filepath.Join("testdata", "swatch.fail.png"))
	assert.FileExists(t, filepath.Join("testdata", "swatch.diff.png"))
}
