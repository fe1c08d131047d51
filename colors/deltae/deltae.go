// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package deltae provides a family of perceptual color difference
// (delta E) metrics, selected by name from an extendable method table.
package deltae

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/colors"
)

// Func is a delta E function, which returns the difference of the
// given sample from the given reference color. Some methods are
// asymmetric, in which case the order of the colors matters.
type Func func(reference, sample colors.Color, opts Options) float64

// Options are the parametric weighting factors of the delta E methods
// that have them. Zero values are replaced by the published defaults.
type Options struct {

	// KL, KC, and KH are the lightness, chroma, and hue
	// weighting factors of [E2000], which default to 1.
	KL, KC, KH float64

	// L and C are the lightness and chroma weighting factors
	// of [CMC], which default to 2 and 1.
	L, C float64
}

// withDefaults returns the options with zero values
// replaced by the published defaults.
func (o Options) withDefaults() Options {
	def := func(v *float64, d float64) {
		if *v == 0 {
			*v = d
		}
	}
	def(&o.KL, 1)
	def(&o.KC, 1)
	def(&o.KH, 1)
	def(&o.L, 2)
	def(&o.C, 1)
	return o
}

// DefaultMethod is the method used by [DeltaE] and the
// gamut mapping package when no method is given.
var DefaultMethod = "76"

// UnknownMethodError is returned when a delta E method is not registered.
type UnknownMethodError struct {
	Method string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("unknown delta E method %q; valid methods are %s", e.Method, strings.Join(Methods(), ", "))
}

var (
	methodsMu sync.RWMutex

	// methods is keyed by lowercase name.
	methods = map[string]Func{}

	// names are the registered names in their original case.
	names = map[string]string{}
)

func init() {
	Register("76", func(r, s colors.Color, _ Options) float64 { return E76(r, s) })
	Register("CMC", func(r, s colors.Color, o Options) float64 { return CMC(r, s, o.L, o.C) })
	Register("2000", func(r, s colors.Color, o Options) float64 { return E2000(r, s, o.KL, o.KC, o.KH) })
	Register("ITP", func(r, s colors.Color, _ Options) float64 { return ITP(r, s) })
	Register("Jz", func(r, s colors.Color, _ Options) float64 { return Jz(r, s) })
	Register("OK", func(r, s colors.Color, _ Options) float64 { return OK(r, s) })
	Register("OK2", func(r, s colors.Color, _ Options) float64 { return OK2(r, s) })
	Register("HCT", func(r, s colors.Color, _ Options) float64 { return HCT(r, s) })
	Register("HyAB", func(r, s colors.Color, _ Options) float64 { return HyAB(r, s) })
}

// Register adds the given delta E function to the method table under
// the given case-insensitive name, replacing any existing method
// with the same name.
func Register(name string, f Func) {
	methodsMu.Lock()
	defer methodsMu.Unlock()
	k := strings.ToLower(name)
	methods[k] = f
	names[k] = name
}

// Lookup returns the delta E function with the given name, or the
// [DefaultMethod] if it is empty. It returns an [UnknownMethodError]
// if there is none. Zero options passed to the returned function are
// replaced by the published defaults.
func Lookup(method string) (Func, error) {
	if method == "" {
		method = DefaultMethod
	}
	methodsMu.RLock()
	f, ok := methods[strings.ToLower(method)]
	methodsMu.RUnlock()
	if !ok {
		return nil, errors.Wrap(&UnknownMethodError{Method: method})
	}
	return func(reference, sample colors.Color, opts Options) float64 {
		return f(reference, sample, opts.withDefaults())
	}, nil
}

// Methods returns the names of all of the registered methods, sorted.
func Methods() []string {
	methodsMu.RLock()
	res := make([]string, 0, len(names))
	for _, nm := range names {
		res = append(res, nm)
	}
	methodsMu.RUnlock()
	slices.Sort(res)
	return res
}

// DeltaE returns the difference of the given sample from the given
// reference color using the given method, or [DefaultMethod] if it is
// empty. Zero or more options may be given; only the first is used.
func DeltaE(reference, sample colors.Color, method string, opts ...Options) (float64, error) {
	f, err := Lookup(method)
	if err != nil {
		return 0, err
	}
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	return f(reference, sample, o), nil
}
