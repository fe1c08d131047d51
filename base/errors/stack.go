// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"path"
	"runtime"
	"strings"
)

// CallerInfo returns the function name, file and line of the
// first caller outside of this package.
func CallerInfo() string {
	callers := make([]uintptr, 16)
	n := runtime.Callers(2, callers)
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(callers[:n])
	for {
		frame, more := frames.Next()
		inPkg := strings.HasSuffix(path.Dir(frame.File), "base/errors") && !strings.HasSuffix(frame.File, "_test.go")
		if !inPkg {
			fn := frame.Function
			if li := strings.LastIndex(fn, "/"); li >= 0 {
				fn = fn[li+1:]
			}
			return fmt.Sprintf("%s %s:%d", fn, path.Base(frame.File), frame.Line)
		}
		if !more {
			return ""
		}
	}
}
