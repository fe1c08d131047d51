// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// Output is the terminal output used for colored printing of status
// messages. It detects the color profile of stderr.
var Output = termenv.NewOutput(os.Stderr)

// UseColor is whether to use color in printed messages.
var UseColor = true

// LevelColor returns the terminal color for the given level.
func LevelColor(level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return Output.Color("#ef4444")
	case level >= slog.LevelWarn:
		return Output.Color("#eab308")
	case level >= slog.LevelInfo:
		return Output.Color("#22c55e")
	default:
		return Output.Color("#6b7280")
	}
}

// ApplyColor applies the color associated with the given level to the
// given string and returns the resulting string. If [UseColor] is false,
// it returns the string unchanged.
func ApplyColor(level slog.Level, str string) string {
	if !UseColor {
		return str
	}
	return Output.String(str).Foreground(LevelColor(level)).String()
}

// Println is equivalent to [fmt.Println], but with color based on the given level.
// Also, if [UserLevel] is above the given level, it does not print anything.
func Println(level slog.Level, a ...any) (n int, err error) {
	if UserLevel > level {
		return 0, nil
	}
	return fmt.Fprintln(Output, ApplyColor(level, fmt.Sprint(a...)))
}

// PrintlnDebug is equivalent to [Println] with [slog.LevelDebug].
func PrintlnDebug(a ...any) (n int, err error) {
	return Println(slog.LevelDebug, a...)
}

// PrintlnInfo is equivalent to [Println] with [slog.LevelInfo].
func PrintlnInfo(a ...any) (n int, err error) {
	return Println(slog.LevelInfo, a...)
}

// PrintlnWarn is equivalent to [Println] with [slog.LevelWarn].
func PrintlnWarn(a ...any) (n int, err error) {
	return Println(slog.LevelWarn, a...)
}
