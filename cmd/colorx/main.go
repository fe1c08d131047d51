// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colorx converts colors between color spaces, maps them into
// gamuts, and computes color differences, mixes and contrasts.
package main

import (
	"os"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/cmd/colorx/cmd"
)

func main() {
	if err := cmd.Root().Execute(); err != nil {
		errors.Log(err)
		os.Exit(1)
	}
}
