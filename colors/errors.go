// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"strings"
)

// UnknownSpaceError is returned when a color space identifier
// does not match any registered space.
type UnknownSpaceError struct {

	// Name is the requested identifier.
	Name string

	// Suggestions are registered identifiers similar to Name,
	// most similar first.
	Suggestions []string
}

func (e *UnknownSpaceError) Error() string {
	s := fmt.Sprintf("unknown color space %q", e.Name)
	if len(e.Suggestions) > 0 {
		s += "; did you mean " + quoteJoin(e.Suggestions, ", ") + "?"
	}
	return s
}

// DuplicateSpaceError is returned when registering a space whose
// identifier or alias is already taken by a different space.
type DuplicateSpaceError struct {

	// ID is the identifier or alias that collided.
	ID string

	// Existing is the space already registered under ID.
	Existing *Space
}

func (e *DuplicateSpaceError) Error() string {
	return fmt.Sprintf("color space identifier %q is already registered for %q", e.ID, e.Existing.ID)
}

// InvalidCoordinateError is returned when coordinates have the wrong
// arity, or a coordinate is not a usable number or name.
type InvalidCoordinateError struct {

	// Space is the ID of the color space, if known.
	Space string

	// Index is the index of the offending coordinate,
	// 3 for alpha, or -1 for the coordinates as a whole.
	Index int

	// Reason describes what is wrong.
	Reason string
}

func (e *InvalidCoordinateError) Error() string {
	s := "invalid coordinate"
	if e.Index >= 0 {
		s = fmt.Sprintf("invalid coordinate %d", e.Index)
	}
	if e.Space != "" {
		s += " of " + e.Space
	}
	return s + ": " + e.Reason
}

func quoteJoin(strs []string, sep string) string {
	q := make([]string, len(strs))
	for i, s := range strs {
		q[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(q, sep)
}
