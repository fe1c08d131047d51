// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "cogentcore.org/colorspace/base/errors"

// Builtins are all of the built-in spaces, with every space
// after its base.
var Builtins = []*Space{
	XYZD65, XYZD50, XYZAbsD65,
	Lab, LabD65, LCh,
	OKLab, OKLCh,
	Luv, LChuv,
	SRGBLinear, SRGB, HSL, HSV, HWB,
	P3Linear, P3,
	A98RGBLinear, A98RGB,
	ProPhotoLinear, ProPhoto,
	Rec2020Linear, Rec2020,
	Rec2100Linear, Rec2100PQ, Rec2100HLG,
	ACEScg, ACEScc,
	Jzazbz, JzCzHz, ICtCp,
	CAM16JMh, HCT,
}

func init() {
	for _, s := range Builtins {
		errors.Must(Register(s))
	}
}
