// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the colorx tool.
package cmd

import (
	"cogentcore.org/colorspace/base/logx"
	"cogentcore.org/colorspace/config"
	"github.com/spf13/cobra"
)

// app is the state shared by the commands.
type app struct {
	config *config.Config

	// configFile is the file the config is loaded from, if any.
	configFile string
}

// Root returns the root colorx command with all of its subcommands.
func Root() *cobra.Command {
	a := &app{config: config.New()}
	root := &cobra.Command{
		Use:           "colorx",
		Short:         "Convert, gamut map, compare, mix and contrast colors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "TOML or YAML config file to load")
	pf.BoolVarP(&a.config.Verbose, "verbose", "v", false, "print informational messages")
	pf.BoolVar(&a.config.VeryVerbose, "vv", false, "print debug messages")
	pf.BoolVarP(&a.config.Quiet, "quiet", "q", false, "only print errors")

	root.AddCommand(
		a.spacesCmd(),
		a.convertCmd(),
		a.deltaECmd(),
		a.gamutCmd(),
		a.mixCmd(),
		a.stepsCmd(),
		a.contrastCmd(),
		a.paletteCmd(),
	)
	return root
}

// setup loads the config file, keeping any logging flags given on the
// command line, and applies the config to the engine.
func (a *app) setup(cmd *cobra.Command) error {
	if a.configFile != "" {
		c, err := config.Open(a.configFile)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("verbose") {
			c.Verbose = a.config.Verbose
		}
		if flags.Changed("vv") {
			c.VeryVerbose = a.config.VeryVerbose
		}
		if flags.Changed("quiet") {
			c.Quiet = a.config.Quiet
		}
		*a.config = *c
	}
	logx.UserLevel = logx.LevelFromFlags(a.config.VeryVerbose, a.config.Verbose, a.config.Quiet)
	logx.SetDefault()
	if err := a.config.Apply(); err != nil {
		return err
	}
	if a.configFile != "" {
		logx.PrintlnDebug("using config", a.configFile)
	}
	return nil
}
