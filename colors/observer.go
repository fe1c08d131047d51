// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"cogentcore.org/colorspace/colors/adapt"
	"cogentcore.org/colorspace/math64"
)

// ExtensionPoint is a point in the engine at which [Observer]s are called.
type ExtensionPoint int32

const (
	// BeforeConvert is called before a conversion with a [*ConvertEnv].
	BeforeConvert ExtensionPoint = iota

	// AfterConvert is called after a conversion with a [*ConvertEnv].
	AfterConvert

	// ChromaticAdaptation is called before an adaptation matrix is
	// applied with an [*AdaptEnv].
	ChromaticAdaptation

	// BeforeGamut is called before gamut mapping with a [*GamutEnv].
	BeforeGamut

	// AfterGamut is called after gamut mapping with a [*GamutEnv].
	AfterGamut
)

var extensionPointNames = [...]string{"BeforeConvert", "AfterConvert", "ChromaticAdaptation", "BeforeGamut", "AfterGamut"}

func (p ExtensionPoint) String() string {
	if p < 0 || int(p) >= len(extensionPointNames) {
		return fmt.Sprintf("ExtensionPoint(%d)", int32(p))
	}
	return extensionPointNames[p]
}

// ConvertEnv is the environment of a conversion passed to [Observer]s.
// Changes made to it in BeforeConvert are used for the conversion,
// and changes made to Result in AfterConvert are returned.
type ConvertEnv struct {

	// Color is the color being converted.
	Color Color

	// To is the target space.
	To *Space

	// Result is the converted color, set before AfterConvert.
	Result Color
}

// AdaptEnv is the environment of a chromatic adaptation passed to
// [Observer]s. Changes made to XYZ and M are used for the adaptation.
type AdaptEnv struct {

	// From is the source white.
	From math64.Vec3

	// To is the destination white.
	To math64.Vec3

	// XYZ is the color being adapted.
	XYZ math64.Vec3

	// CAT is the chromatic adaptation transform.
	CAT adapt.CAT

	// M is the adaptation matrix that will be applied to XYZ.
	M math64.Mat3
}

// GamutEnv is the environment of a gamut mapping passed to [Observer]s.
// Changes made to it in BeforeGamut are used for the mapping,
// and changes made to Result in AfterGamut are returned.
type GamutEnv struct {

	// Color is the color being mapped.
	Color Color

	// Space is the space whose gamut the color is mapped into.
	Space *Space

	// Method is the name of the gamut mapping method.
	Method string

	// Result is the mapped color, set before AfterGamut.
	Result Color
}

// Observer observes and can modify the intermediate values of the engine
// at each [ExtensionPoint]. Embed [BaseObserver] to only implement some
// of the methods.
type Observer interface {
	BeforeConvert(env *ConvertEnv)
	AfterConvert(env *ConvertEnv)
	ChromaticAdaptation(env *AdaptEnv)
	BeforeGamut(env *GamutEnv)
	AfterGamut(env *GamutEnv)
}

// BaseObserver is an [Observer] that does nothing.
type BaseObserver struct{}

func (BaseObserver) BeforeConvert(env *ConvertEnv)     {}
func (BaseObserver) AfterConvert(env *ConvertEnv)      {}
func (BaseObserver) ChromaticAdaptation(env *AdaptEnv) {}
func (BaseObserver) BeforeGamut(env *GamutEnv)         {}
func (BaseObserver) AfterGamut(env *GamutEnv)          {}

// FuncObserver is an [Observer] that calls Func with the
// environment of a single [ExtensionPoint].
type FuncObserver struct {
	BaseObserver
	Point ExtensionPoint
	Func  func(env any)
}

func (fo *FuncObserver) call(p ExtensionPoint, env any) {
	if fo.Point == p {
		fo.Func(env)
	}
}

func (fo *FuncObserver) BeforeConvert(env *ConvertEnv)     { fo.call(BeforeConvert, env) }
func (fo *FuncObserver) AfterConvert(env *ConvertEnv)      { fo.call(AfterConvert, env) }
func (fo *FuncObserver) ChromaticAdaptation(env *AdaptEnv) { fo.call(ChromaticAdaptation, env) }
func (fo *FuncObserver) BeforeGamut(env *GamutEnv)         { fo.call(BeforeGamut, env) }
func (fo *FuncObserver) AfterGamut(env *GamutEnv)          { fo.call(AfterGamut, env) }

type observerEntry struct {
	id uint64
	o  Observer
}

var (
	observersMu sync.RWMutex
	observers   []observerEntry
	lastID      uint64

	// numObservers lets the engine skip all observer work
	// when there are none.
	numObservers atomic.Int32
)

// AddObserver adds the given observer, which is called at every
// [ExtensionPoint] in the order observers were added. It returns a
// function that removes the observer.
func AddObserver(o Observer) (remove func()) {
	observersMu.Lock()
	defer observersMu.Unlock()
	lastID++
	id := lastID
	observers = append(observers, observerEntry{id, o})
	numObservers.Store(int32(len(observers)))
	return func() {
		observersMu.Lock()
		defer observersMu.Unlock()
		observers = slices.DeleteFunc(observers, func(e observerEntry) bool { return e.id == id })
		numObservers.Store(int32(len(observers)))
	}
}

// HasObservers returns whether any observers are registered.
func HasObservers() bool {
	return numObservers.Load() > 0
}

// notify calls f for each registered observer.
func notify(f func(o Observer)) {
	if !HasObservers() {
		return
	}
	observersMu.RLock()
	obs := slices.Clone(observers)
	observersMu.RUnlock()
	for _, e := range obs {
		f(e.o)
	}
}

// RunBeforeGamut calls the BeforeGamut method of all observers.
// It is called by gamut mapping implementations.
func RunBeforeGamut(env *GamutEnv) {
	notify(func(o Observer) { o.BeforeGamut(env) })
}

// RunAfterGamut calls the AfterGamut method of all observers.
// It is called by gamut mapping implementations.
func RunAfterGamut(env *GamutEnv) {
	notify(func(o Observer) { o.AfterGamut(env) })
}
