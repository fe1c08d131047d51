// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"

	"cogentcore.org/colorspace/colors"
	"cogentcore.org/colorspace/colors/gamut"
	"github.com/muesli/termenv"
)

// printer prints colors with swatches to a terminal output.
type printer struct {
	out *termenv.Output
}

func newPrinter(w io.Writer) *printer {
	return &printer{out: termenv.NewOutput(w)}
}

// swatch returns a block in the given color mapped into sRGB, or an
// empty string if the output does not support color.
func (p *printer) swatch(c colors.Color) string {
	if p.out.Profile == termenv.Ascii {
		return ""
	}
	s, err := gamut.To(c, colors.SRGB, gamut.Options{})
	if err != nil {
		s = colors.Convert(c, colors.SRGB)
	}
	rgb := s.Std()
	hex := fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
	return p.out.String("   ").Background(p.out.Color(hex)).String() + " "
}

// println prints the swatch of the color and its string
// followed by any extra values.
func (p *printer) println(c colors.Color, extra ...any) {
	fmt.Fprint(p.out, p.swatch(c), c.String())
	for _, e := range extra {
		fmt.Fprint(p.out, " ", e)
	}
	fmt.Fprintln(p.out)
}
