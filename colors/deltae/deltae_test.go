// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deltae

import (
	"math"
	"testing"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/base/tolassert"
	"cogentcore.org/colorspace/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lab(l, a, b float64) colors.Color {
	return colors.New(colors.Lab, l, a, b)
}

var (
	white    = colors.New(colors.SRGB, 1, 1, 1)
	black    = colors.New(colors.SRGB, 0, 0, 0)
	offWhite = colors.New(colors.SRGB, 1, 1, 254.0/255)
)

type deltaTest struct {
	name string
	a, b colors.Color
	want float64
}

// common cases shared by several methods
var (
	sharma17 = [2]colors.Color{lab(50, 2.5, 0), lab(73, 25, -18)}
	sharma18 = [2]colors.Color{lab(50, 2.5, 0), lab(61, -5, 29)}
	sharma19 = [2]colors.Color{lab(50, 2.5, 0), lab(56, -27, -3)}
	sharma20 = [2]colors.Color{lab(50, 2.5, 0), lab(58, 24, 15)}
	yellow   = lab(84.25, 5.74, 96.00)
	yellowH  = lab(84.46, 8.88, 96.49)
	yellowLC = lab(84.52, 5.75, 93.09)
	yellowHC = lab(84.37, 5.86, 99.42)
)

func runDeltaTests(t *testing.T, method string, tests []deltaTest) {
	t.Helper()
	for _, test := range tests {
		d, err := DeltaE(test.a, test.b, method)
		require.NoError(t, err)
		tolassert.EqualTol(t, test.want, d, 1e-4, "%s: %s", method, test.name)
	}
}

func TestE76(t *testing.T) {
	runDeltaTests(t, "76", []deltaTest{
		{"white black", white, black, 100},
		{"white white", white, white, 0},
		{"barely off-white", offWhite, white, 0.4966},
		{"3 4 5", lab(50, 30, 40), lab(50, 0, 0), 50},
		{"sharma 17", sharma17[0], sharma17[1], 36.8680},
		{"sharma 18", sharma18[0], sharma18[1], 31.9100},
		{"sharma 19", sharma19[0], sharma19[1], 30.2531},
		{"sharma 20", sharma20[0], sharma20[1], 27.4089},
		{"yellow hue", yellow, yellowH, 3.1849},
		{"yellow low chroma", yellow, yellowLC, 2.9225},
		{"yellow high chroma", yellow, yellowHC, 3.4242},
	})
}

func TestCMC(t *testing.T) {
	runDeltaTests(t, "CMC", []deltaTest{
		{"white black", white, black, 33.7401},
		{"white white", white, white, 0},
		{"barely off-white", offWhite, white, 0.7780},
		{"barely off-white lab", offWhite, lab(100, 0, 0), 0.7780},
		{"3 4 5", lab(50, 30, 40), lab(50, 0, 0), 19.4894},
		{"yellow hue", yellow, yellowH, 1.6364},
		{"yellow low chroma", yellow, yellowLC, 0.8770},
		{"yellow high chroma", yellow, yellowHC, 1.0221},
		{"sharma 17", sharma17[0], sharma17[1], 37.9233},
		{"sharma 18", sharma18[0], sharma18[1], 34.4758},
		{"sharma 19", sharma19[0], sharma19[1], 38.0618},
		{"sharma 20", sharma20[0], sharma20[1], 33.3342},
	})
	ab, _ := DeltaE(lab(50, 30, 40), lab(50, 0, 0), "cmc")
	ba, _ := DeltaE(lab(50, 0, 0), lab(50, 30, 40), "cmc")
	assert.NotEqual(t, math.Round(ab*1e4), math.Round(ba*1e4), "CMC is asymmetric")
}

func TestE2000(t *testing.T) {
	// Sharma, Wu, and Dalal, "The CIEDE2000 Color-Difference Formula:
	// Implementation Notes, Supplementary Test Data, and Mathematical
	// Observations", Color Research and Application 30 (2005).
	runDeltaTests(t, "2000", []deltaTest{
		{"white black", white, black, 100},
		{"white white", white, white, 0},
		{"barely off-white", offWhite, white, 0.51125},
		{"3 4 5", lab(50, 30, 40), lab(50, 0, 0), 24.1218},
		{"1", lab(50, 2.6772, -79.7751), lab(50, 0, -82.7485), 2.0425},
		{"2", lab(50, 3.1571, -77.2803), lab(50, 0, -82.7485), 2.8615},
		{"3", lab(50, 2.8361, -74.0200), lab(50, 0, -82.7485), 3.4412},
		{"4", lab(50, -1.3802, -84.2814), lab(50, 0, -82.7485), 1},
		{"5", lab(50, -1.1848, -84.8006), lab(50, 0, -82.7485), 1},
		{"6", lab(50, -0.9009, -85.5211), lab(50, 0, -82.7485), 1},
		{"7", lab(50, 0, 0), lab(50, -1, 2), 2.3669},
		{"8", lab(50, -1, 2), lab(50, 0, 0), 2.3669},
		{"9", lab(50, 2.4900, -0.0010), lab(50, -2.4900, 0.0009), 7.1792},
		{"10", lab(50, 2.4900, -0.0010), lab(50, -2.4900, 0.0010), 7.1792},
		{"11", lab(50, 2.4900, -0.0010), lab(50, -2.4900, 0.0011), 7.2195},
		{"12", lab(50, 2.4900, -0.0010), lab(50, -2.4900, 0.0012), 7.2195},
		{"13", lab(50, -0.0010, 2.4900), lab(50, 0.0009, -2.4900), 4.8045},
		{"14", lab(50, -0.0010, 2.4900), lab(50, 0.0010, -2.4900), 4.8045},
		{"15", lab(50, -0.0010, 2.4900), lab(50, 0.0011, -2.4900), 4.7461},
		{"16", lab(50, 2.5, 0), lab(50, 0, -2.5), 4.3065},
		{"17", sharma17[0], sharma17[1], 27.1492},
		{"18", sharma18[0], sharma18[1], 22.8977},
		{"19", sharma19[0], sharma19[1], 31.9030},
		{"20", sharma20[0], sharma20[1], 19.4535},
		{"21", lab(50, 2.5, 0), lab(50, 3.1736, 0.5854), 1},
		{"22", lab(50, 2.5, 0), lab(50, 3.2972, 0), 1},
		{"23", lab(50, 2.5, 0), lab(50, 1.8634, 0.5757), 1},
		{"24", lab(50, 2.5, 0), lab(50, 3.2592, 0.3350), 1},
		{"25", lab(60.2574, -34.0099, 36.2677), lab(60.4626, -34.1751, 39.4387), 1.2644},
		{"26", lab(63.0109, -31.0961, -5.8663), lab(62.8187, -29.7946, -4.0864), 1.2630},
		{"27", lab(61.2901, 3.7196, -5.3901), lab(61.4292, 2.2480, -4.9620), 1.8731},
		{"28", lab(35.0831, -44.1164, 3.7933), lab(35.0232, -40.0716, 1.5901), 1.8645},
		{"29", lab(22.7233, 20.0904, -46.6940), lab(23.0331, 14.9730, -42.5619), 2.0373},
		{"30", lab(36.4612, 47.8580, 18.3852), lab(36.2715, 50.5065, 21.2231), 1.4146},
		{"31", lab(90.8027, -2.0831, 1.4410), lab(91.1528, -1.6435, 0.0447), 1.4441},
		{"32", lab(90.9257, -0.5406, -0.9208), lab(88.6381, -0.8985, -0.7239), 1.5381},
		{"33", lab(6.7747, -0.2908, -2.4247), lab(5.8714, -0.0985, -2.2286), 0.6377},
		{"34", lab(2.0776, 0.0795, -1.1350), lab(0.9033, -0.0636, -0.5514), 0.9082},
		{"yellow hue", yellow, yellowH, 1.6743},
		{"yellow low chroma", yellow, yellowLC, 0.5887},
		{"yellow high chroma", yellow, yellowHC, 0.6395},
	})
	assert.Less(t, E2000(lab(50, 0, 0), lab(20, 0, 0), 2, 1, 1), E2000(lab(50, 0, 0), lab(20, 0, 0), 1, 1, 1))
}

func TestJz(t *testing.T) {
	runDeltaTests(t, "Jz", []deltaTest{
		{"white black", white, black, 0.222065},
		{"white white", white, white, 0},
		{"barely off-white", offWhite, white, 0.00048},
		{"3 4 5", colors.New(colors.Jzazbz, 0.1, 0.03, 0.04), colors.New(colors.Jzazbz, 0.1, 0, 0), 0.05},
		{"sharma 17", sharma17[0], sharma17[1], 0.070538},
		{"sharma 18", sharma18[0], sharma18[1], 0.059699},
		{"sharma 19", sharma19[0], sharma19[1], 0.039590},
		{"sharma 20", sharma20[0], sharma20[1], 0.051967},
		{"yellow hue", yellow, yellowH, 0.008447},
		{"yellow low chroma", yellow, yellowLC, 0.002969},
		{"yellow high chroma", yellow, yellowHC, 0.003113},
	})
}

func TestOK(t *testing.T) {
	runDeltaTests(t, "OK", []deltaTest{
		{"white black", white, black, 1},
		{"white white", white, white, 0},
		{"barely off-white", offWhite, white, 0.001343},
		{"3 4 5", lab(50, 30, 40), lab(50, 0, 0), 0.118679},
		{"sharma 17", sharma17[0], sharma17[1], 0.223724},
		{"sharma 18", sharma18[0], sharma18[1], 0.117703},
		{"sharma 19", sharma19[0], sharma19[1], 0.096109},
		{"sharma 20", sharma20[0], sharma20[1], 0.103834},
		{"25", lab(60.2574, -34.0099, 36.2677), lab(60.4626, -34.1751, 39.4387), 0.006934},
		{"26", lab(63.0109, -31.0961, -5.8663), lab(62.8187, -29.7946, -4.0864), 0.006478},
		{"27", lab(61.2901, 3.7196, -5.3901), lab(61.4292, 2.2480, -4.9620), 0.004552},
		{"28", lab(35.0831, -44.1164, 3.7933), lab(35.0232, -40.0716, 1.5901), 0.011480},
		{"yellow hue", yellow, yellowH, 0.009285},
		{"yellow low chroma", yellow, yellowLC, 0.003923},
		{"yellow high chroma", yellow, yellowHC, 0.003800},
	})
}

func TestOK2(t *testing.T) {
	a := colors.New(colors.OKLab, 0.5, 0.1, 0)
	b := colors.New(colors.OKLab, 0.5, 0, 0)
	tolassert.EqualTol(t, 0.2, OK2(a, b), 1e-12)
	tolassert.EqualTol(t, 0.1, OK(a, b), 1e-12)
	tolassert.EqualTol(t, 1, OK2(white, black), 1e-4)
}

func TestHyAB(t *testing.T) {
	tolassert.EqualTol(t, 50, HyAB(lab(50, 30, 40), lab(50, 0, 0)), 1e-12)
	tolassert.EqualTol(t, 60, HyAB(lab(60, 30, 40), lab(50, 0, 0)), 1e-12)
	tolassert.EqualTol(t, 100, HyAB(white, black), 1e-3)
}

func TestHCT(t *testing.T) {
	assert.Equal(t, 0.0, HCT(black, black))
	tolassert.EqualTol(t, 100, HCT(white, black), 0.1)
	d := HCT(colors.New(colors.SRGB, 1, 0, 0), colors.New(colors.SRGB, 0, 0, 1))
	assert.Greater(t, d, 50.0)
	neg := colors.New(colors.HCT, 120, -10, 50)
	assert.False(t, math.IsNaN(HCT(neg, white)))
}

func TestProperties(t *testing.T) {
	cs := []colors.Color{
		white, black, offWhite,
		colors.New(colors.SRGB, 1, 0, 0),
		colors.New(colors.P3, 0.2, 0.7, 0.3),
		colors.New(colors.OKLCh, 0.6, 0.1, math.NaN()),
		colors.NewAlpha(colors.HSL, 200, 40, 30, 0.5),
		lab(30, -40, 60),
	}
	for _, m := range Methods() {
		for i, a := range cs {
			d, err := DeltaE(a, a, m)
			require.NoError(t, err)
			assert.InDelta(t, 0, d, 1e-9, "%s identity %v", m, a)
			for _, b := range cs[i+1:] {
				ab, _ := DeltaE(a, b, m)
				assert.GreaterOrEqual(t, ab, 0.0, m)
				assert.False(t, math.IsNaN(ab), "%s %v %v", m, a, b)
				switch m {
				case "76", "OK", "ITP", "Jz", "OK2", "HyAB", "HCT":
					ba, _ := DeltaE(b, a, m)
					assert.InDelta(t, ab, ba, 1e-9, "%s symmetry", m)
				}
			}
		}
	}
}

func TestMethods(t *testing.T) {
	assert.Equal(t, []string{"2000", "76", "CMC", "HCT", "HyAB", "ITP", "Jz", "OK", "OK2"}, Methods())

	d, err := DeltaE(white, black, "")
	require.NoError(t, err)
	tolassert.EqualTol(t, 100, d, 1e-4)

	_, err = DeltaE(white, black, "1994")
	ume, ok := errors.AsType[*UnknownMethodError](err)
	require.True(t, ok)
	assert.Equal(t, "1994", ume.Method)
	assert.Contains(t, err.Error(), "2000")

	Register("lightness", func(r, s colors.Color, _ Options) float64 {
		return math.Abs(colors.Convert(r, colors.Lab).Coords[0].Value - colors.Convert(s, colors.Lab).Coords[0].Value)
	})
	d, err = DeltaE(lab(70, 10, 10), lab(40, -5, 0), "Lightness")
	require.NoError(t, err)
	tolassert.EqualTol(t, 30, d, 1e-9)
	methodsMu.Lock()
	delete(methods, "lightness")
	delete(names, "lightness")
	methodsMu.Unlock()
}

func TestOptions(t *testing.T) {
	a, b := lab(50, 30, 40), lab(60, 0, 0)
	d1, _ := DeltaE(a, b, "2000")
	d2, _ := DeltaE(a, b, "2000", Options{KL: 2})
	assert.Less(t, d2, d1)
	c1, _ := DeltaE(a, b, "CMC")
	c2, _ := DeltaE(a, b, "CMC", Options{L: 1})
	assert.Greater(t, c2, c1)
}
