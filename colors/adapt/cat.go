// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adapt

import (
	"fmt"
	"strings"

	"cogentcore.org/colorspace/math64"
)

// CAT is a chromatic adaptation transform: a basis of cone responses
// in which a von Kries style per-channel scaling is applied.
type CAT int32

const (
	// Bradford is the Bradford transform used by ICC and CSS.
	Bradford CAT = iota

	// VonKries is the original von Kries transform, using
	// the Hunt-Pointer-Estevez cone fundamentals.
	VonKries

	// CAT02 is the transform of the CIECAM02 model.
	CAT02

	// CAT16 is the transform of the CAM16 model.
	CAT16
)

var catNames = [...]string{"Bradford", "von Kries", "CAT02", "CAT16"}

// CATValues returns all of the chromatic adaptation transforms.
func CATValues() []CAT {
	return []CAT{Bradford, VonKries, CAT02, CAT16}
}

// String returns the name of the transform.
func (c CAT) String() string {
	if c < 0 || int(c) >= len(catNames) {
		return fmt.Sprintf("CAT(%d)", int32(c))
	}
	return catNames[c]
}

func catKey(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}

// SetString sets the transform from its name, ignoring case,
// spaces, hyphens and underscores.
func (c *CAT) SetString(s string) error {
	key := catKey(s)
	for i, nm := range catNames {
		if catKey(nm) == key {
			*c = CAT(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid chromatic adaptation transform", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (c CAT) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *CAT) UnmarshalText(text []byte) error {
	return c.SetString(string(text))
}

// cone matrices from XYZ to each cone response basis
var coneMatrices = [...]math64.Mat3{
	Bradford: {
		0.8951, 0.2664, -0.1614,
		-0.7502, 1.7135, 0.0367,
		0.0389, -0.0685, 1.0296,
	},
	VonKries: {
		0.40024, 0.7076, -0.08081,
		-0.2263, 1.16532, 0.0457,
		0, 0, 0.91822,
	},
	CAT02: {
		0.7328, 0.4296, -0.1624,
		-0.7036, 1.6975, 0.0061,
		0.0030, 0.0136, 0.9834,
	},
	CAT16: {
		0.401288, 0.650173, -0.051461,
		-0.250268, 1.204414, 0.045854,
		-0.002079, 0.048952, 0.953127,
	},
}

// ConeMatrices returns the matrix from XYZ to the cone response
// basis of the transform, and its inverse.
func (c CAT) ConeMatrices() (toCone, fromCone math64.Mat3) {
	if c < 0 || int(c) >= len(coneMatrices) {
		c = Bradford
	}
	toCone = coneMatrices[c]
	fromCone, _ = toCone.Inverse()
	return
}
