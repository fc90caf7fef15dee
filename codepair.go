// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

// CodePair is the atomic DXF unit: a numeric code (a loose indicator of the
// type of Value) and the actual value, occupying two successive lines on
// the wire.
type CodePair struct {
	Code  int
	Value Value
}

// NewBoolPair builds a boolean-valued CodePair.
func NewBoolPair(code int, v bool) CodePair { return CodePair{code, boolValue(v)} }

// NewShortPair builds a short (int16)-valued CodePair.
func NewShortPair(code int, v int16) CodePair { return CodePair{code, shortValue(v)} }

// NewIntPair builds an integer (int32)-valued CodePair.
func NewIntPair(code int, v int32) CodePair { return CodePair{code, intValue(v)} }

// NewLongPair builds a long (int64)-valued CodePair.
func NewLongPair(code int, v int64) CodePair { return CodePair{code, longValue(v)} }

// NewDoublePair builds a double-valued CodePair.
func NewDoublePair(code int, v float64) CodePair { return CodePair{code, doubleValue(v)} }

// NewStringPair builds a string-valued CodePair.
func NewStringPair(code int, v string) CodePair { return CodePair{code, strValue(v)} }

// StringValue returns the pair's value as a string regardless of its
// declared kind, matching the permissive string_value() helper the decoder
// uses for handles and type names.
func (p CodePair) StringValue() string {
	if p.Value.Kind == KindString {
		return p.Value.Str
	}
	return p.Value.writeString()
}
