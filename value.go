// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import "strconv"

// ValueKind is the closed set of DXF code-pair value kinds.
type ValueKind int

// The six value kinds a code pair's value can take.
const (
	KindBoolean ValueKind = iota
	KindShort
	KindInteger
	KindLong
	KindDouble
	KindString
)

func (k ValueKind) String() string {
	switch k {
	case KindBoolean:
		return "bool"
	case KindShort:
		return "short"
	case KindInteger:
		return "integer"
	case KindLong:
		return "long"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a single value in a CodePair. Only the field matching Kind is
// meaningful; the others are zero. Internal use only — callers interact
// with typed entity/table/header fields, not raw Values.
type Value struct {
	Kind   ValueKind
	Bool   bool
	Short  int16
	Int    int32
	Long   int64
	Double float64
	Str    string
}

func boolValue(v bool) Value     { return Value{Kind: KindBoolean, Bool: v} }
func shortValue(v int16) Value   { return Value{Kind: KindShort, Short: v} }
func intValue(v int32) Value     { return Value{Kind: KindInteger, Int: v} }
func longValue(v int64) Value    { return Value{Kind: KindLong, Long: v} }
func doubleValue(v float64) Value { return Value{Kind: KindDouble, Double: v} }
func strValue(v string) Value    { return Value{Kind: KindString, Str: v} }

func parseValue(kind ValueKind, line string) (Value, error) {
	switch kind {
	case KindBoolean:
		b, err := parseBool(line)
		if err != nil {
			return Value{}, err
		}
		return boolValue(b), nil
	case KindShort:
		n, err := strconv.ParseInt(line, 10, 16)
		if err != nil {
			return Value{}, lexErrorf("invalid short value %q: %v", line, err)
		}
		return shortValue(int16(n)), nil
	case KindInteger:
		n, err := strconv.ParseInt(line, 10, 32)
		if err != nil {
			return Value{}, lexErrorf("invalid integer value %q: %v", line, err)
		}
		return intValue(int32(n)), nil
	case KindLong:
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return Value{}, lexErrorf("invalid long value %q: %v", line, err)
		}
		return longValue(n), nil
	case KindDouble:
		f, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return Value{}, lexErrorf("invalid double value %q: %v", line, err)
		}
		return doubleValue(f), nil
	case KindString:
		return strValue(line), nil
	default:
		return Value{}, lexErrorf("unknown value kind %v", kind)
	}
}

// parseBool implements the DXF boolean convention: "0" or "1" only.
func parseBool(line string) (bool, error) {
	switch line {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, lexErrorf("invalid boolean value %q", line)
	}
}

func (v Value) writeString() string {
	switch v.Kind {
	case KindBoolean:
		if v.Bool {
			return "1"
		}
		return "0"
	case KindShort:
		return strconv.FormatInt(int64(v.Short), 10)
	case KindInteger:
		return strconv.FormatInt(int64(v.Int), 10)
	case KindLong:
		return strconv.FormatInt(v.Long, 10)
	case KindDouble:
		return strconv.FormatFloat(v.Double, 'f', 12, 64)
	case KindString:
		return v.Str
	default:
		return ""
	}
}
