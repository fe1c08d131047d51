// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"math"

	"cogentcore.org/colorspace/colors/adapt"
	"cogentcore.org/colorspace/colors/cam/cam16"
	"cogentcore.org/colorspace/colors/cam/cie"
	"cogentcore.org/colorspace/math64"
)

// CAM16JMh is the CAM16 color appearance model with lightness J,
// colorfulness M, and hue h, under [cam16.StdView].
var CAM16JMh = &Space{
	ID:   "cam16-jmh",
	Name: "CAM16-JMh",
	Coords: [3]CoordInfo{
		ref("j", "J", 0, 100),
		ref("m", "Colorfulness", 0, 105),
		hue("h", "Hue"),
	},
	White:      adapt.D65,
	Base:       XYZD65,
	FromBase: func(xyz math64.Vec3) math64.Vec3 {
		cam := cam16.FromXYZ(xyz, cam16.StdView)
		if cam.Lightness == 0 {
			return math64.V3(0, 0, math.NaN())
		}
		return math64.V3(cam.Lightness, cam.Colorfulness, cam.Hue)
	},
	ToBase: func(jmh math64.Vec3) math64.Vec3 {
		h := jmh[2]
		if math.IsNaN(h) {
			h = 0
		}
		return cam16.FromJMh(jmh[0], jmh[1], h, cam16.StdView)
	},
}

// HCTView is the viewing condition of the [HCT] space: a D65 white,
// an adapting luminance and background of L* 50, and
// an average surround.
var HCTView = cam16.NewView(adapt.D65, 200/math.Pi*cie.LToY(50), cie.LToY(50)*100, cam16.Average, false)

// hct solver constants
const (
	hctThreshold   = 2e-12
	hctMaxAttempts = 15
)

// HCT is the hue, chroma, tone space of Material Design, which
// combines the CAM16 hue and chroma under [HCTView] with
// the CIE L* lightness as tone.
var HCT = &Space{
	ID:   "hct",
	Name: "HCT",
	Coords: [3]CoordInfo{
		hue("h", "Hue"),
		ref("c", "Colorfulness", 0, 145),
		ref("t", "Tone", 0, 100),
	},
	White:      adapt.D65,
	Base:       XYZD65,
	FromBase: func(xyz math64.Vec3) math64.Vec3 {
		t := cie.YToL(xyz[1])
		if t == 0 {
			return math64.V3(math.NaN(), 0, 0)
		}
		cam := cam16.FromXYZ(xyz, HCTView)
		return math64.V3(math64.ConstrainAngle(cam.Hue), cam.Chroma, t)
	},
	ToBase: hctToXYZ,
}

// hctToXYZ solves for the CAM16 lightness J that has the
// luminance of the tone with Newton's method.
func hctToXYZ(hct math64.Vec3) math64.Vec3 {
	h, c, t := hct[0], hct[1], hct[2]
	if t == 0 {
		return math64.Vec3{}
	}
	if math.IsNaN(h) {
		h = 0
	}
	y := cie.LToY(t)
	var j float64
	if t > 0 {
		j = 0.00379058511492914*t*t + 0.608983189401032*t + 0.9155088574762233
	} else {
		j = 9.514440756550361e-06*t*t + 0.08693057439788597*t - 21.928975842194614
	}
	last := math.Inf(1)
	best := math64.Vec3{}
	for range hctMaxAttempts + 1 {
		xyz := cam16.FromJCh(j, c, h, HCTView)
		delta := math.Abs(xyz[1] - y)
		if delta < last {
			if delta <= hctThreshold {
				return xyz
			}
			best = xyz
			last = delta
		}
		j -= (xyz[1] - y) * j / (2 * xyz[1])
	}
	return best
}
