// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/base/iox/imagex"
	"cogentcore.org/colorspace/base/logx"
	"cogentcore.org/colorspace/base/tolassert"
	"cogentcore.org/colorspace/colors"
	"cogentcore.org/colorspace/colors/contrast"
	"cogentcore.org/colorspace/colors/deltae"
	"cogentcore.org/colorspace/colors/gamut"
	"cogentcore.org/colorspace/colors/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run runs colorx with the given arguments and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	de, gd, id, sd, lvl, cat := deltae.DefaultMethod, gamut.Defaults, interp.Defaults, interp.StepsDefaults, logx.UserLevel, colors.CAT()
	t.Cleanup(func() {
		deltae.DefaultMethod, gamut.Defaults, interp.Defaults, interp.StepsDefaults, logx.UserLevel = de, gd, id, sd, lvl
		colors.SetCAT(cat)
	})
	root := Root()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "-q"))
	err := root.Execute()
	return out.String(), err
}

// lines runs colorx and parses each line of its output as a color.
func lines(t *testing.T, args ...string) []colors.Color {
	t.Helper()
	out, err := run(t, args...)
	require.NoError(t, err)
	var cs []colors.Color
	for _, ln := range strings.Split(strings.TrimSpace(out), "\n") {
		c, err := parseColor(ln)
		cs = append(cs, errors.Test1(t, c, err))
	}
	return cs
}

func assertColor(t *testing.T, want, got colors.Color) {
	t.Helper()
	assert.Equal(t, want.Space, got.Space)
	wv, gv := want.Values(), got.Values()
	tolassert.EqualTolSlice(t, wv[:], gv[:], 1e-4)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"red", "srgb(1 0 0)"},
		{"#f80", "srgb(1 0.53333 0)"},
		{"#336699", "srgb(0.2 0.4 0.6)"},
		{"lch(50 20 none / 0.5)", "lch(50 20 none / 0.5)"},
		{"LCH(50, 20, 30)", "lch(50 20 30)"},
		{"srgb(100% 50% 0)", "srgb(1 0.5 0)"},
		{"oklab(0.62796 0.22486 0.12585)", "oklab(0.62796 0.22486 0.12585)"},
		{"display-p3(1 0 0)", "p3(1 0 0)"},
	}
	for _, test := range tests {
		c, err := parseColor(test.in)
		if assert.NoError(t, err, test.in) {
			assert.Equal(t, test.want, c.String(), test.in)
		}
	}

	_, err := parseColor("nope(1 2 3)")
	_, ok := errors.AsType[*colors.UnknownSpaceError](err)
	assert.True(t, ok)
	_, err = parseColor("srgb(1 2)")
	_, ok = errors.AsType[*colors.InvalidCoordinateError](err)
	assert.True(t, ok)
	_, err = parseColor("srgb(1 x 0)")
	assert.ErrorContains(t, err, `"x" is not a number`)
	_, err = parseColor("srgb(1 0 0")
	assert.Error(t, err)
	_, err = parseColor("#ggg")
	assert.Error(t, err)
	_, err = parseColor("notacolor")
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	out, err := run(t, "convert", "red", "oklab")
	require.NoError(t, err)
	assert.Equal(t, "oklab(0.62796 0.22486 0.12585)\n", out)

	cs := lines(t, "convert", "p3(1 0 0)", "srgb", "--gamut")
	require.Len(t, cs, 1)
	assert.True(t, gamut.InGamut(cs[0], nil, 1e-4))

	_, err = run(t, "convert", "red", "okclh")
	assert.ErrorContains(t, err, "oklch")
}

func TestDeltaE(t *testing.T) {
	out, err := run(t, "deltae", "white", "black")
	require.NoError(t, err)
	assert.Equal(t, "100\n", out)

	out, err = run(t, "deltae", "white", "white", "-m", "2000")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	_, err = run(t, "deltae", "white", "black", "-m", "1994")
	_, ok := errors.AsType[*deltae.UnknownMethodError](err)
	assert.True(t, ok)
}

func TestGamut(t *testing.T) {
	cs := lines(t, "gamut", "p3(1 0 0)", "-s", "srgb", "-m", "clip")
	require.Len(t, cs, 1)
	assertColor(t, colors.New(colors.SRGB, 1, 0, 0), cs[0])

	cs = lines(t, "gamut", "srgb(0.5 0.5 0.5)")
	assertColor(t, colors.New(colors.SRGB, 0.5, 0.5, 0.5), cs[0])

	_, err := run(t, "gamut", "red", "-m", "magic")
	_, ok := errors.AsType[*gamut.UnknownMethodError](err)
	assert.True(t, ok)
}

func TestMixSteps(t *testing.T) {
	cs := lines(t, "mix", "black", "white", "-s", "srgb", "-p", "0.25")
	require.Len(t, cs, 1)
	assertColor(t, colors.New(colors.SRGB, 0.25, 0.25, 0.25), cs[0])

	cs = lines(t, "mix", "black", "white", "-o", "lab")
	assert.Equal(t, colors.Lab, cs[0].Space)
	tolassert.EqualTol(t, 50, cs[0].Coords[0].Float(), 1e-4)

	cs = lines(t, "steps", "black", "white", "-s", "srgb", "-n", "3")
	require.Len(t, cs, 3)
	assertColor(t, colors.New(colors.SRGB, 0, 0, 0), cs[0])
	assertColor(t, colors.New(colors.SRGB, 0.5, 0.5, 0.5), cs[1])
	assertColor(t, colors.New(colors.SRGB, 1, 1, 1), cs[2])

	cs = lines(t, "steps", "black", "white", "--max-deltae", "10")
	assert.GreaterOrEqual(t, len(cs), 11)

	_, err := run(t, "mix", "red", "blue", "--hue", "sideways")
	assert.Error(t, err)
}

func TestContrast(t *testing.T) {
	out, err := run(t, "contrast", "white", "black")
	require.NoError(t, err)
	assert.Equal(t, "21\n", out)

	out, err = run(t, "contrast", "#fff", "#888", "-a", "apca")
	require.NoError(t, err)
	assert.Equal(t, "63.056\n", out)

	out, err = run(t, "contrast", "#777", "-r", "4.5")
	require.NoError(t, err)
	fields := strings.Fields(out)
	require.Len(t, fields, 4)
	c, err := parseColor(strings.Join(fields[:3], " "))
	c = errors.Test1(t, c, err)
	base, err := parseColor("#777")
	base = errors.Test1(t, base, err)
	assert.GreaterOrEqual(t, contrast.WCAG21(base, c), 4.49)

	_, err = run(t, "contrast", "white")
	assert.Error(t, err)
	_, err = run(t, "contrast", "white", "black", "-a", "wcag3")
	_, ok := errors.AsType[*contrast.UnknownAlgorithmError](err)
	assert.True(t, ok)
}

func TestSpaces(t *testing.T) {
	out, err := run(t, "spaces")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), len(colors.AllSpaces()))
	assert.Contains(t, out, "oklch")
	assert.Contains(t, out, "Display")
}

func TestConfigFlag(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "colorx.toml")
	require.NoError(t, os.WriteFile(fn, []byte("deltae = \"OK\"\n"), 0666))
	out, err := run(t, "deltae", "white", "black", "--config", fn)
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	_, err = run(t, "deltae", "white", "black", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestPalette(t *testing.T) {
	cs := lines(t, "palette", "#3366cc", "--step", "25")
	require.Len(t, cs, 5)
	assertColor(t, colors.New(colors.SRGB, 0, 0, 0), cs[0])
	assertColor(t, colors.New(colors.SRGB, 1, 1, 1), cs[4])

	fn := filepath.Join(t.TempDir(), "spaced.png")
	cs = lines(t, "palette", "--spaced", "10", "--image", fn, "--size", "4")
	assert.Len(t, cs, 10)
	img, _, err := imagex.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	_, err = run(t, "palette")
	assert.Error(t, err)
}
