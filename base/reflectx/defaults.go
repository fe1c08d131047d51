// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// SetFromDefaultTags sets the values of fields in the given struct based on
// `default:` default value struct field tags. Embedded and nested structs
// without a tag are handled recursively.
func SetFromDefaultTags(obj any) error {
	if AnyIsNil(obj) {
		return nil
	}
	val := NonPointerValue(reflect.ValueOf(obj))
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: object of type %T is not a struct", obj)
	}
	typ := val.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if NonPointerType(f.Type).Kind() == reflect.Struct && (!ok || def == "") {
			if err := SetFromDefaultTags(PointerValue(fv).Interface()); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		if !ok || def == "" {
			continue
		}
		if err := SetFromString(PointerValue(fv).Interface(), def); err != nil {
			errs = append(errs, fmt.Errorf("reflectx.SetFromDefaultTags: field %s of %s: %w", f.Name, typ.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// SetFromString sets the value pointed to by ptr from the given string.
// It supports types implementing a SetString(string) error method or
// [encoding.TextUnmarshaler], along with strings, bools, integers and floats.
func SetFromString(ptr any, s string) error {
	switch p := ptr.(type) {
	case interface{ SetString(string) error }:
		return p.SetString(s)
	case encoding.TextUnmarshaler:
		return p.UnmarshalText([]byte(s))
	}
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return fmt.Errorf("value of type %T is not a non-nil pointer", ptr)
	}
	e := v.Elem()
	switch k := e.Kind(); {
	case k == reflect.String:
		e.SetString(s)
	case k == reflect.Bool:
		b, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			return err
		}
		e.SetBool(b)
	case k >= reflect.Int && k <= reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(s), 0, e.Type().Bits())
		if err != nil {
			return err
		}
		e.SetInt(n)
	case k >= reflect.Uint && k <= reflect.Uint64:
		n, err := strconv.ParseUint(strings.TrimSpace(s), 0, e.Type().Bits())
		if err != nil {
			return err
		}
		e.SetUint(n)
	case k == reflect.Float32 || k == reflect.Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), e.Type().Bits())
		if err != nil {
			return err
		}
		e.SetFloat(f)
	default:
		return fmt.Errorf("unsupported kind %v", k)
	}
	return nil
}
