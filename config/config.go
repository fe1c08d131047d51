// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the color engine,
// which can be loaded from TOML or YAML files and applied to the
// package-level defaults of the engine.
package config

import (
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/base/iox/tomlx"
	"cogentcore.org/colorspace/base/iox/yamlx"
	"cogentcore.org/colorspace/base/logx"
	"cogentcore.org/colorspace/base/reflectx"
	"cogentcore.org/colorspace/colors"
	"cogentcore.org/colorspace/colors/adapt"
	"cogentcore.org/colorspace/colors/deltae"
	"cogentcore.org/colorspace/colors/gamut"
	"cogentcore.org/colorspace/colors/interp"
)

// Config is the configuration of the color engine.
type Config struct {

	// DeltaE is the default delta E method.
	DeltaE string `default:"76" toml:"deltae" yaml:"deltae"`

	// GamutMethod is the default gamut mapping method.
	GamutMethod string `default:"css" toml:"gamut-method" yaml:"gamut-method"`

	// JND is the just noticeable difference used by gamut mapping;
	// 0 uses the default of the method.
	JND float64 `toml:"jnd" yaml:"jnd"`

	// GamutIterations is the maximum number of gamut mapping search
	// iterations; 0 uses the default of the method.
	GamutIterations int `toml:"gamut-iterations" yaml:"gamut-iterations"`

	// CAT is the chromatic adaptation transform used
	// between white points.
	CAT adapt.CAT `default:"Bradford" toml:"cat" yaml:"cat"`

	// InterpolationSpace is the ID of the default interpolation space.
	InterpolationSpace string `default:"lab" toml:"interpolation-space" yaml:"interpolation-space"`

	// Hue is the default hue interpolation arc.
	Hue colors.Arc `default:"shorter" toml:"hue" yaml:"hue"`

	// Premultiplied is whether to interpolate with
	// premultiplied alpha by default.
	Premultiplied bool `default:"true" toml:"premultiplied" yaml:"premultiplied"`

	// MaxSteps is the default maximum number of interpolation steps.
	MaxSteps int `default:"1000" toml:"max-steps" yaml:"max-steps"`

	// Verbose is whether to print informational messages.
	Verbose bool `toml:"verbose" yaml:"verbose"`

	// VeryVerbose is whether to print debug messages.
	VeryVerbose bool `toml:"very-verbose" yaml:"very-verbose"`

	// Quiet is whether to only print errors.
	Quiet bool `toml:"quiet" yaml:"quiet"`
}

// New returns a new config with its default values.
func New() *Config {
	c := &Config{}
	errors.Log(c.Defaults())
	return c
}

// Defaults sets the fields of the config to their default values.
func (c *Config) Defaults() error {
	return reflectx.SetFromDefaultTags(c)
}

// isYAML returns whether the given file name has a YAML extension.
func isYAML(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".yaml" || ext == ".yml"
}

// Open sets the defaults of the config and then loads the given file
// into it, as YAML if it has a .yaml or .yml extension and as TOML
// otherwise.
func (c *Config) Open(filename string) error {
	if err := c.Defaults(); err != nil {
		return err
	}
	if isYAML(filename) {
		return errors.Wrap(yamlx.Open(c, filename))
	}
	return errors.Wrap(tomlx.Open(c, filename))
}

// Save saves the config to the given file, as YAML if it has a .yaml
// or .yml extension and as TOML otherwise.
func (c *Config) Save(filename string) error {
	if isYAML(filename) {
		return errors.Wrap(yamlx.Save(c, filename))
	}
	return errors.Wrap(tomlx.Save(c, filename))
}

// Open returns a new config loaded from the given file.
func Open(filename string) (*Config, error) {
	c := &Config{}
	err := c.Open(filename)
	return c, err
}

// Validate returns an error for each method or space named
// by the config that is unknown.
func (c *Config) Validate() error {
	var errs []error
	if _, err := deltae.Lookup(c.DeltaE); err != nil {
		errs = append(errs, err)
	}
	if _, err := gamut.Lookup(c.GamutMethod); err != nil {
		errs = append(errs, err)
	}
	if _, err := colors.Lookup(c.InterpolationSpace); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Apply sets the package-level defaults of the engine and the
// logging level from the config. Unknown methods and spaces are
// logged as warnings and leave the corresponding defaults unchanged,
// and are also returned as an error.
func (c *Config) Apply() error {
	logx.UserLevel = logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
	var errs []error
	warn := func(field string, err error) {
		slog.Warn("ignoring unknown config value", "field", field, "err", err)
		errs = append(errs, err)
	}

	if _, err := deltae.Lookup(c.DeltaE); err != nil {
		warn("deltae", err)
	} else {
		deltae.DefaultMethod = c.DeltaE
	}

	gd := gamut.Defaults
	if _, err := gamut.Lookup(c.GamutMethod); err != nil {
		warn("gamut-method", err)
	} else {
		gd.Method = c.GamutMethod
	}
	gd.JND = c.JND
	gd.MaxIterations = c.GamutIterations
	gamut.Defaults = gd

	colors.SetCAT(c.CAT)

	id := interp.Defaults
	if sp, err := colors.Lookup(c.InterpolationSpace); err != nil {
		warn("interpolation-space", err)
	} else {
		id.Space = sp
	}
	id.Hue = c.Hue
	id.Premultiplied = c.Premultiplied
	interp.Defaults = id
	if c.MaxSteps > 0 {
		interp.StepsDefaults.MaxSteps = c.MaxSteps
	}
	return errors.Join(errs...)
}
