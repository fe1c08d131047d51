// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gamut provides gamut checking and gamut mapping of colors,
// with mapping methods selected by name from an extendable table.
package gamut

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/colors"
)

// DefaultEpsilon is the default tolerance of [InGamut].
const DefaultEpsilon = 0.000075

// Func is a gamut mapping function, which returns the given color
// mapped into the gamut of the given space and expressed in that space.
// It is only called for colors that are not already in gamut.
type Func func(c colors.Color, space *colors.Space, opts Options) (colors.Color, error)

// BlackWhiteClamp makes coordinate reduction return black or white
// when the given channel is at or beyond one of its bounds.
type BlackWhiteClamp struct {

	// Channel is the coordinate to check, as a space and coordinate
	// separated by a dot, such as "hct.t".
	Channel string

	// Min is the value at or below which black is returned.
	Min float64

	// Max is the value at or above which white is returned.
	Max float64
}

// Options are the options of gamut mapping.
type Options struct {

	// Space is the space whose gamut the color is mapped into.
	// It defaults to the space of the color.
	Space *colors.Space

	// Method is the gamut mapping method: "clip", "css", a preset such
	// as "hct" or "hct-tonal", the name of a registered method, or a
	// space and coordinate to reduce separated by a dot, such as "lch.c".
	// It defaults to the method in [Defaults].
	Method string

	// DeltaEMethod is the delta E method used by coordinate reduction,
	// which defaults to "2000". The css method always uses "OK".
	DeltaEMethod string

	// JND is the just noticeable difference in delta E under which
	// mapped colors are accepted. Zero uses the default of the method,
	// which is 0.02 for css and 2 for coordinate reduction. A negative
	// value makes coordinate reduction go as close as possible.
	JND float64

	// BlackWhiteClamp, if non-nil, is checked by coordinate reduction
	// before it starts searching.
	BlackWhiteClamp *BlackWhiteClamp

	// MaxIterations is the maximum number of search iterations.
	// Zero uses the default of the method, which is 25 for css and
	// 100 for coordinate reduction. When it is reached, the best
	// color found so far is used.
	MaxIterations int
}

// Defaults are the options used for any zero fields of the options
// passed to [ToGamut] and [To].
var Defaults = Options{Method: "css"}

func (o Options) withDefaults() Options {
	if o.Method == "" {
		o.Method = Defaults.Method
	}
	if o.DeltaEMethod == "" {
		o.DeltaEMethod = Defaults.DeltaEMethod
	}
	if o.JND == 0 {
		o.JND = Defaults.JND
	}
	if o.BlackWhiteClamp == nil {
		o.BlackWhiteClamp = Defaults.BlackWhiteClamp
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = Defaults.MaxIterations
	}
	return o
}

// UnknownMethodError is returned when a gamut mapping method is
// neither registered nor a valid space and coordinate.
type UnknownMethodError struct {
	Method string

	// Err is the error resolving a space and coordinate, if any.
	Err error
}

func (e *UnknownMethodError) Error() string {
	s := fmt.Sprintf("unknown gamut mapping method %q", e.Method)
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *UnknownMethodError) Unwrap() error { return e.Err }

var (
	methodsMu sync.RWMutex
	methods   = map[string]Func{}
)

func init() {
	Register("clip", func(c colors.Color, space *colors.Space, _ Options) (colors.Color, error) {
		return Clip(c, space), nil
	})
	Register("css", CSS)
	for name, preset := range presets {
		Register(name, preset.mapper())
	}
}

// Register adds the given gamut mapping function to the method table
// under the given case-insensitive name, replacing any existing method
// with the same name.
func Register(name string, f Func) {
	methodsMu.Lock()
	defer methodsMu.Unlock()
	methods[strings.ToLower(name)] = f
}

// Methods returns the names of all of the registered methods, sorted.
// Coordinate reduction methods like "lch.c" are not included.
func Methods() []string {
	methodsMu.RLock()
	res := make([]string, 0, len(methods))
	for nm := range methods {
		res = append(res, nm)
	}
	methodsMu.RUnlock()
	slices.Sort(res)
	return res
}

// Lookup returns the gamut mapping function with the given name.
// Names containing a dot that are not registered are resolved as
// coordinate reduction of the given space and coordinate.
func Lookup(method string) (Func, error) {
	methodsMu.RLock()
	f, ok := methods[strings.ToLower(method)]
	methodsMu.RUnlock()
	if ok {
		return f, nil
	}
	sp, cd, ok := strings.Cut(method, ".")
	if !ok {
		return nil, errors.Wrap(&UnknownMethodError{Method: method})
	}
	s, err := colors.Lookup(sp)
	if err != nil {
		return nil, errors.Wrap(&UnknownMethodError{Method: method, Err: err})
	}
	i := s.CoordIndex(cd)
	if i < 0 {
		return nil, errors.Wrap(&UnknownMethodError{Method: method,
			Err: fmt.Errorf("%s has no coordinate %q", s.ID, cd)})
	}
	return Reduce(s, i), nil
}

// InGamut returns whether the given color is within the gamut of the
// given space, or of its own space if it is nil, allowing the given
// tolerance. The check is done in the [colors.Space.Gamut] of the space,
// skipping angle and unbounded coordinates. Missing coordinates are
// always in gamut.
func InGamut(c colors.Color, space *colors.Space, epsilon float64) bool {
	if space == nil {
		space = c.Space
	}
	g := space.Gamut()
	if g.IsUnbounded() {
		return true
	}
	gc := colors.Convert(c, g)
	for i, ci := range g.Coords {
		cd := gc.Coords[i]
		if ci.Angle || !ci.Bounded || cd.None {
			continue
		}
		if cd.Value < ci.Range[0]-epsilon || cd.Value > ci.Range[1]+epsilon {
			return false
		}
	}
	return true
}

// ToGamut returns the given color mapped into the gamut of the space
// given in the options, using the given method. The result is expressed
// in the space of the color and keeps its alpha. Colors already in gamut
// are returned unchanged. The only possible error is an unknown method.
func ToGamut(c colors.Color, opts Options) (colors.Color, error) {
	o := opts.withDefaults()
	env := &colors.GamutEnv{Color: c, Space: o.Space, Method: o.Method}
	if env.Space == nil {
		env.Space = c.Space
	}
	colors.RunBeforeGamut(env)
	c, o.Space, o.Method = env.Color, env.Space, env.Method

	f, err := Lookup(o.Method)
	if err != nil {
		return c, err
	}
	res := c
	if !InGamut(c, o.Space, 0) {
		mapped, err := f(c, o.Space, o)
		if err != nil {
			return c, err
		}
		res = colors.Convert(mapped, c.Space)
		res.Alpha = c.Alpha
	}
	env.Result = res
	colors.RunAfterGamut(env)
	return env.Result, nil
}

// To returns the given color converted to the given space
// and mapped into its gamut with [ToGamut].
func To(c colors.Color, space *colors.Space, opts Options) (colors.Color, error) {
	opts.Space = space
	res, err := ToGamut(c, opts)
	if err != nil {
		return c, err
	}
	return colors.Convert(res, space), nil
}
