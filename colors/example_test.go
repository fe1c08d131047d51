// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors_test

import (
	"fmt"

	"cogentcore.org/colorspace/colors"
)

func ExampleConvert() {
	red := colors.New(colors.SRGB, 1, 0, 0)
	fmt.Println(colors.Convert(red, colors.OKLab))
	// Output: oklab(0.62796 0.22486 0.12585)
}

func ExampleColor_To() {
	c, err := colors.New(colors.SRGB, 0.5, 0.5, 0.5).To("hsl")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c)
	// Output: hsl(none 0 50)
}

func ExampleLookup() {
	_, err := colors.Lookup("okclh")
	fmt.Println(err)
}
