// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	failed bool
}

func (r *recorder) Errorf(format string, args ...any) {
	r.failed = true
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(t, 1.0, 1.0005))
	r := &recorder{}
	assert.False(t, Equal(r, 1.0, 1.01))
	assert.True(t, r.failed)
}

func TestEqualTolSlice(t *testing.T) {
	assert.True(t, EqualTolSlice(t, []float64{1, math.NaN(), 3}, []float64{1.0001, math.NaN(), 2.9999}, 0.001))
	r := &recorder{}
	assert.False(t, EqualTolSlice(r, []float64{1, 2}, []float64{1}, 0.001))
	r = &recorder{}
	assert.False(t, EqualTolSlice(r, []float64{1, math.NaN()}, []float64{1, 0}, 0.001))
}
