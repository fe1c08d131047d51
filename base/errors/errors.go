// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides context-wrapped error handling along with
// helper functions for logging, panicking on, and testing errors.
// It re-exports the standard library functions so that it can be
// used as a drop-in replacement for package errors.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error represents an error with a base error and the call
// sites through which it was wrapped.
type Error struct {
	Base  error
	Stack []string
}

// Wrap wraps the given error into an [*Error] recording the calling
// function. It returns nil if the given error is nil. Wrapping an
// [*Error] again appends the new call site to its stack.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	ci := CallerInfo()
	var e *Error
	if errors.As(err, &e) && e == err {
		e.Stack = append(e.Stack, ci)
		return e
	}
	return &Error{Base: err, Stack: []string{ci}}
}

// New returns a new error with the given text, wrapped via [Wrap].
func New(text string) error {
	return Wrap(errors.New(text))
}

// Errorf returns a new error with the given format and arguments,
// wrapped via [Wrap]. It is the equivalent of [fmt.Errorf].
func Errorf(format string, a ...any) error {
	return Wrap(fmt.Errorf(format, a...))
}

// Error returns the string of the base error followed by the stack.
func (e *Error) Error() string {
	res := e.Base.Error()
	if len(e.Stack) > 0 {
		res += " (" + strings.Join(e.Stack, ": ") + ")"
	}
	return res
}

// Unwrap returns the underlying base error.
func (e *Error) Unwrap() error {
	return e.Base
}

// Is is a wrapper around [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a wrapper around [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// AsType returns the first error in the chain of err that is of type T,
// and whether one was found.
func AsType[T error](err error) (T, bool) {
	var t T
	ok := errors.As(err, &t)
	return t, ok
}

// Join is a wrapper around [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Unwrap is a wrapper around [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
