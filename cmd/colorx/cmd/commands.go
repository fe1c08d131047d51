// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"cmp"
	"fmt"
	"strings"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/base/iox/imagex"
	"cogentcore.org/colorspace/base/logx"
	"cogentcore.org/colorspace/colors"
	"cogentcore.org/colorspace/colors/contrast"
	"cogentcore.org/colorspace/colors/deltae"
	"cogentcore.org/colorspace/colors/gamut"
	"cogentcore.org/colorspace/colors/interp"
	"cogentcore.org/colorspace/colors/palette"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func (a *app) spacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spaces",
		Short: "List the registered color spaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			title := cases.Title(language.English)
			p := newPrinter(cmd.OutOrStdout())
			for _, sp := range colors.AllSpaces() {
				ids := make([]string, len(sp.Coords))
				for i, ci := range sp.Coords {
					ids[i] = ci.ID
				}
				base := "-"
				if sp.Base != nil {
					base = sp.Base.ID
				}
				fmt.Fprintf(p.out, "%-14s %-24s %-8s base %-12s %s\n", sp.ID, sp.Name,
					strings.Join(ids, " "), base, title.String(sp.Referred))
			}
			return nil
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	var toGamut bool
	cmd := &cobra.Command{
		Use:   "convert color space",
		Short: "Convert a color to a color space",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColor(args[0])
			if err != nil {
				return err
			}
			sp, err := colors.Lookup(args[1])
			if err != nil {
				return err
			}
			res := colors.Convert(c, sp)
			if toGamut {
				res, err = gamut.ToGamut(res, gamut.Options{})
				if err != nil {
					return err
				}
			}
			newPrinter(cmd.OutOrStdout()).println(res)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&toGamut, "gamut", "g", false, "map the result into the gamut of the space")
	return cmd
}

func (a *app) deltaECmd() *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "deltae reference sample",
		Short: "Print the color difference between two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			d, err := deltae.DeltaE(cs[0], cs[1], method)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.5g\n", d)
			return nil
		},
	}
	cmd.Flags().StringVarP(&method, "method", "m", "", "delta E method, one of "+strings.Join(deltae.Methods(), ", "))
	return cmd
}

func (a *app) gamutCmd() *cobra.Command {
	var (
		space string
		opts  gamut.Options
	)
	cmd := &cobra.Command{
		Use:   "gamut color",
		Short: "Map a color into the gamut of a color space",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColor(args[0])
			if err != nil {
				return err
			}
			if space != "" {
				if opts.Space, err = colors.Lookup(space); err != nil {
					return err
				}
			}
			in := gamut.InGamut(c, opts.Space, 0)
			res, err := gamut.ToGamut(c, opts)
			if err != nil {
				return err
			}
			if opts.Space != nil {
				res = colors.Convert(res, opts.Space)
			}
			if !in {
				logx.PrintlnInfo(c.String(), "is out of gamut; mapped with", cmp.Or(opts.Method, gamut.Defaults.Method))
			}
			newPrinter(cmd.OutOrStdout()).println(res)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&space, "space", "s", "", "space whose gamut to map into (default the space of the color)")
	f.StringVarP(&opts.Method, "method", "m", "", `gamut mapping method, such as "css", "clip", "hct" or "lch.c"`)
	f.StringVar(&opts.DeltaEMethod, "deltae", "", "delta E method used by coordinate reduction")
	f.Float64Var(&opts.JND, "jnd", 0, "just noticeable difference (0 for the method default)")
	f.IntVar(&opts.MaxIterations, "iterations", 0, "maximum search iterations (0 for the method default)")
	return cmd
}

// interpFlags are the interpolation flags shared by mix and steps.
type interpFlags struct {
	space, output, hue string
	straight           bool
}

func (f *interpFlags) add(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.space, "space", "s", "", "interpolation space (default from the config)")
	fs.StringVarP(&f.output, "output", "o", "", "space of the printed colors (default the space of the first color)")
	fs.StringVar(&f.hue, "hue", "", "hue arc: shorter, longer, increasing, decreasing or raw")
	fs.BoolVar(&f.straight, "straight", false, "interpolate with straight instead of premultiplied alpha")
}

func (f *interpFlags) options() (interp.Options, error) {
	o := interp.Defaults
	var err error
	if f.space != "" {
		if o.Space, err = colors.Lookup(f.space); err != nil {
			return o, err
		}
	}
	if f.output != "" {
		if o.OutputSpace, err = colors.Lookup(f.output); err != nil {
			return o, err
		}
	}
	if f.hue != "" {
		if err := o.Hue.SetString(f.hue); err != nil {
			return o, err
		}
	}
	if f.straight {
		o.Premultiplied = false
	}
	return o, nil
}

func (a *app) mixCmd() *cobra.Command {
	var (
		amount float64
		iflags interpFlags
	)
	cmd := &cobra.Command{
		Use:   "mix color1 color2",
		Short: "Mix two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			o, err := iflags.options()
			if err != nil {
				return err
			}
			res, err := interp.Mix(cs[0], cs[1], amount, o)
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).println(res)
			return nil
		},
	}
	cmd.Flags().Float64VarP(&amount, "amount", "p", 0.5, "amount of the second color, from 0 to 1")
	iflags.add(cmd)
	return cmd
}

func (a *app) stepsCmd() *cobra.Command {
	var (
		so     interp.StepsOptions
		iflags interpFlags
	)
	cmd := &cobra.Command{
		Use:   "steps color1 color2",
		Short: "Print evenly spaced colors between two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			o, err := iflags.options()
			if err != nil {
				return err
			}
			steps, err := interp.Steps(cs[0], cs[1], so, o)
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			for _, c := range steps {
				p.println(c)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVarP(&so.Steps, "steps", "n", 2, "minimum number of colors")
	f.Float64Var(&so.MaxDeltaE, "max-deltae", 0, "maximum delta E between consecutive colors")
	f.StringVar(&so.DeltaEMethod, "deltae", "", "delta E method used for max-deltae")
	f.IntVar(&so.MaxSteps, "max-steps", 0, "maximum number of colors (0 for the config default)")
	iflags.add(cmd)
	return cmd
}

func (a *app) contrastCmd() *cobra.Command {
	var (
		algorithm string
		ratio     float64
	)
	cmd := &cobra.Command{
		Use:   "contrast background foreground",
		Short: "Print the contrast of a foreground color on a background color",
		Long: "Print the contrast of a foreground color on a background color. " +
			"With --ratio, it instead prints a color with the hue and chroma of the " +
			"single given color that has the given WCAG 2.1 contrast ratio with it.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseColors(args)
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			if ratio > 0 {
				res, ok := contrast.Color(cs[0], ratio)
				if !ok {
					logx.PrintlnWarn("contrast ratio", ratio, "can not be achieved; using the highest contrast")
					res = contrast.ColorUnsafe(cs[0], ratio)
				}
				p.println(res, fmt.Sprintf("%.5g", contrast.WCAG21(cs[0], res)))
				return nil
			}
			if len(cs) != 2 {
				return errors.New("contrast needs a background and a foreground color")
			}
			v, err := contrast.Contrast(cs[0], cs[1], algorithm)
			if err != nil {
				return err
			}
			fmt.Fprintf(p.out, "%.5g\n", v)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&algorithm, "algorithm", "a", "WCAG21", "contrast algorithm, one of "+strings.Join(contrast.Algorithms(), ", "))
	f.Float64VarP(&ratio, "ratio", "r", 0, "find a color with this WCAG 2.1 contrast ratio")
	return cmd
}

func (a *app) paletteCmd() *cobra.Command {
	var (
		step, spaced, columns, size int
		dark                        bool
		image                       string
	)
	cmd := &cobra.Command{
		Use:   "palette [color]",
		Short: "Print the tonal palette of a color, or spaced categorical colors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cs []colors.Color
			if spaced > 0 {
				for i := range spaced {
					cs = append(cs, palette.Spaced(i, dark))
				}
			} else {
				if len(args) != 1 {
					return errors.New("palette needs a key color or --spaced")
				}
				key, err := parseColor(args[0])
				if err != nil {
					return err
				}
				cs = palette.NewTones(key).Range(step)
			}
			p := newPrinter(cmd.OutOrStdout())
			for _, c := range cs {
				p.println(c)
			}
			if image != "" {
				return imagex.Save(palette.Image(cs, columns, size), image)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&step, "step", 10, "tone step of the tonal palette")
	f.IntVar(&spaced, "spaced", 0, "print this many spaced categorical colors instead")
	f.BoolVar(&dark, "dark", false, "use spaced colors for dark backgrounds")
	f.StringVar(&image, "image", "", "also save the swatches to this image file")
	f.IntVar(&columns, "columns", 8, "number of swatch columns in the image")
	f.IntVar(&size, "size", 32, "size of the swatches in the image")
	return cmd
}
