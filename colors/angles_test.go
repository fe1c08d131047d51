// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustHues(t *testing.T) {
	tests := []struct {
		arc    Arc
		a1, a2 float64
		w1, w2 float64
	}{
		{Shorter, -20, 380, 340, 380},
		{Increasing, -20, 380, 340, 380},
		{Decreasing, -20, 380, 340, 20},
		{Longer, -20, 380, 340, 20},
		{Raw, -20, 380, -20, 380},
		{Longer, 90, 90, 90, 450},
		{Shorter, 10, 350, 370, 350},
		{Shorter, 350, 10, 350, 370},
		{Shorter, 30, 60, 30, 60},
		{Increasing, 60, 30, 60, 390},
		{Decreasing, 30, 60, 390, 60},
		{Longer, 30, 60, 390, 60},
		{Arc(99), 30, 300, 30, 300},
	}
	for _, test := range tests {
		h1, h2 := AdjustHues(test.arc, test.a1, test.a2)
		assert.Equal(t, test.w1, h1, "%v %v %v", test.arc, test.a1, test.a2)
		assert.Equal(t, test.w2, h2, "%v %v %v", test.arc, test.a1, test.a2)
	}
}

func TestArcString(t *testing.T) {
	for _, a := range ArcValues() {
		var b Arc
		assert.NoError(t, b.SetString(a.String()))
		assert.Equal(t, a, b)
	}
	var a Arc
	assert.NoError(t, a.UnmarshalText([]byte("Longer")))
	assert.Equal(t, Longer, a)
	assert.Error(t, a.SetString("sideways"))
	assert.Equal(t, "Arc(7)", Arc(7).String())
}
