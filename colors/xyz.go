// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"cogentcore.org/colorspace/colors/adapt"
	"cogentcore.org/colorspace/math64"
)

// xyzCoords are the coordinates of the XYZ spaces.
var xyzCoords = [3]CoordInfo{
	ref("x", "X", 0, 1),
	ref("y", "Y", 0, 1),
	ref("z", "Z", 0, 1),
}

// XYZD65 is the CIE XYZ space relative to a D65 white,
// which is the root of the space tree.
var XYZD65 = &Space{
	ID:      "xyz-d65",
	Name:    "XYZ D65",
	Aliases: []string{"xyz"},
	Coords:  xyzCoords,
	White:   adapt.D65,
}

// XYZD50 is the CIE XYZ space relative to a D50 white.
var XYZD50 = &Space{
	ID:     "xyz-d50",
	Name:   "XYZ D50",
	Coords: xyzCoords,
	White:  adapt.D50,
	Base:   XYZD65,
	ToBase: func(v math64.Vec3) math64.Vec3 {
		return Adapt(v, adapt.D50, adapt.D65)
	},
	FromBase: func(v math64.Vec3) math64.Vec3 {
		return Adapt(v, adapt.D65, adapt.D50)
	},
}

// AbsoluteWhite is the absolute luminance of media white in cd/m²,
// used by the absolute and HDR spaces.
const AbsoluteWhite = 203

// XYZAbsD65 is the CIE XYZ space relative to a D65 white with
// absolute luminance in cd/m², with media white at [AbsoluteWhite].
var XYZAbsD65 = &Space{
	ID:   "xyz-abs-d65",
	Name: "Absolute XYZ D65",
	Coords: [3]CoordInfo{
		ref("x", "Xa", 0, 9504.7),
		ref("y", "Ya", 0, 10000),
		ref("z", "Za", 0, 10888.3),
	},
	White: adapt.D65,
	Base:  XYZD65,
	ToBase: func(v math64.Vec3) math64.Vec3 {
		return v.MulScalar(1.0 / AbsoluteWhite)
	},
	FromBase: func(v math64.Vec3) math64.Vec3 {
		return v.MulScalar(AbsoluteWhite)
	},
}
