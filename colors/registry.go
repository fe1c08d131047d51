// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"slices"
	"strings"
	"sync"

	"cogentcore.org/colorspace/base/errors"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/text/cases"
)

// Registry holds color spaces by identifier and alias. It is safe
// for concurrent use; lookups may run concurrently with each other,
// and registration is serialized with respect to lookups.
type Registry struct {
	mu sync.RWMutex

	// byKey maps normalized identifiers and aliases to spaces.
	byKey map[string]*Space

	// spaces are the registered spaces in registration order.
	spaces []*Space
}

// NewRegistry returns a new empty registry.
func NewRegistry() *Registry {
	return &Registry{byKey: map[string]*Space{}}
}

// Default is the registry holding all of the built-in spaces,
// which is used by all package-level functions that look up
// spaces by identifier.
var Default = NewRegistry()

// maxSuggestions is the maximum number of suggestions in an [UnknownSpaceError].
const maxSuggestions = 3

// minSimilarity is the minimum similarity for a suggestion.
const minSimilarity = 0.5

var keyReplacer = strings.NewReplacer("-", "", "_", "", " ", "")

// NormalizeID returns the normalized form of the given space identifier,
// which is case folded and has hyphens, underscores, and spaces removed.
func NormalizeID(id string) string {
	return keyReplacer.Replace(cases.Fold().String(id))
}

// Register adds the given space under its identifier and all of its
// aliases. It returns a [DuplicateSpaceError] if any of them is taken
// by a different space, and an [UnknownSpaceError] if the base space
// of the space is not registered. Registering the same space again
// does nothing.
func (r *Registry) Register(s *Space) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.Base != nil && !slices.Contains(r.spaces, s.Base) {
		return errors.Wrap(&UnknownSpaceError{Name: s.Base.ID})
	}
	keys := make([]string, 0, 1+len(s.Aliases))
	for _, id := range append([]string{s.ID}, s.Aliases...) {
		k := NormalizeID(id)
		if ex, ok := r.byKey[k]; ok && ex != s {
			return errors.Wrap(&DuplicateSpaceError{ID: id, Existing: ex})
		}
		keys = append(keys, k)
	}
	for _, k := range keys {
		r.byKey[k] = s
	}
	if !slices.Contains(r.spaces, s) {
		r.spaces = append(r.spaces, s)
	}
	return nil
}

// Lookup returns the space with the given identifier or alias.
// It returns an [UnknownSpaceError] with suggestions if there is none.
func (r *Registry) Lookup(id string) (*Space, error) {
	k := NormalizeID(id)
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.byKey[k]; ok {
		return s, nil
	}
	return nil, errors.Wrap(&UnknownSpaceError{Name: id, Suggestions: r.suggest(k)})
}

// MustLookup returns the space with the given identifier or alias,
// and panics if there is none.
func (r *Registry) MustLookup(id string) *Space {
	return errors.Must1(r.Lookup(id))
}

// Spaces returns all of the registered spaces, sorted by identifier.
func (r *Registry) Spaces() []*Space {
	r.mu.RLock()
	sp := slices.Clone(r.spaces)
	r.mu.RUnlock()
	slices.SortFunc(sp, func(a, b *Space) int {
		return strings.Compare(a.ID, b.ID)
	})
	return sp
}

// suggest returns the identifiers of up to [maxSuggestions] registered
// spaces most similar to the given normalized key. It must be called
// with the lock held.
func (r *Registry) suggest(k string) []string {
	type scored struct {
		id    string
		score float64
	}
	lev := metrics.NewLevenshtein()
	var sc []scored
	for _, s := range r.spaces {
		best := 0.0
		for _, id := range append([]string{s.ID}, s.Aliases...) {
			best = max(best, strutil.Similarity(k, NormalizeID(id), lev))
		}
		if best >= minSimilarity {
			sc = append(sc, scored{s.ID, best})
		}
	}
	slices.SortStableFunc(sc, func(a, b scored) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return strings.Compare(a.id, b.id)
	})
	var res []string
	for i := 0; i < len(sc) && i < maxSuggestions; i++ {
		res = append(res, sc[i].id)
	}
	return res
}

// Register adds the given space to the [Default] registry.
func Register(s *Space) error {
	return Default.Register(s)
}

// Lookup returns the space with the given identifier or alias
// from the [Default] registry.
func Lookup(id string) (*Space, error) {
	return Default.Lookup(id)
}

// MustLookup returns the space with the given identifier or alias
// from the [Default] registry, and panics if there is none.
func MustLookup(id string) *Space {
	return Default.MustLookup(id)
}

// AllSpaces returns all of the spaces in the [Default] registry,
// sorted by identifier.
func AllSpaces() []*Space {
	return Default.Spaces()
}
