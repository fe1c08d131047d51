// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Method string  `yaml:"method"`
	JND    float64 `yaml:"jnd"`
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cfg.yaml")
	in := testStruct{Method: "css", JND: 0.02}
	require.NoError(t, Save(&in, fn))

	var out testStruct
	require.NoError(t, Open(&out, fn))
	assert.Equal(t, in, out)
}

func TestReadBytes(t *testing.T) {
	var out testStruct
	require.NoError(t, ReadBytes(&out, []byte("method: clip\njnd: 2\n")))
	assert.Equal(t, testStruct{Method: "clip", JND: 2}, out)

	b, err := WriteBytes(&out)
	require.NoError(t, err)
	assert.Equal(t, "method: clip\njnd: 2\n", string(b))
}
