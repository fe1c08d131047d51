// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, true, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, false))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	prev := UserLevel
	defer func() { UserLevel = prev }()

	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf))
	UserLevel = slog.LevelWarn
	lg.Info("hidden")
	lg.Warn("shown")
	assert.False(t, strings.Contains(buf.String(), "hidden"))
	assert.True(t, strings.Contains(buf.String(), "shown"))

	UserLevel = slog.LevelDebug
	lg.Debug("now visible")
	assert.True(t, strings.Contains(buf.String(), "now visible"))
}

func TestApplyColor(t *testing.T) {
	prev := UseColor
	defer func() { UseColor = prev }()
	UseColor = false
	assert.Equal(t, "plain", ApplyColor(slog.LevelError, "plain"))
	UseColor = true
	assert.True(t, strings.Contains(ApplyColor(slog.LevelError, "colored"), "colored"))
}

func TestPrintln(t *testing.T) {
	prevOut, prevLevel := Output, UserLevel
	defer func() { Output, UserLevel = prevOut, prevLevel }()

	var buf bytes.Buffer
	Output = termenv.NewOutput(&buf)
	UserLevel = slog.LevelWarn
	PrintlnInfo("mapped", 3)
	PrintlnWarn("not achieved")
	assert.Equal(t, "not achieved\n", buf.String())

	UserLevel = slog.LevelDebug
	PrintlnDebug("config")
	assert.Equal(t, "not achieved\nconfig\n", buf.String())
}
