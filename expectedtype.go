// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

// This table partitions the DXF group-code space by the value kind the
// lexer must parse at that code. It is immutable, static data derived from
// the DXF reference (see spec.md §3, §9: "expected_type ... is derived from
// static data; it is immutable and can be a constant table"), consulted by
// the lexer to pick a parser. internal/codegen does not read this table: it
// picks writer constructors and Value fields from each spec Field's Type
// attribute (its scalarKinds map).

type codeRange struct {
	lo, hi int
	kind   ValueKind
}

// codeRanges is ordered low-to-high and non-overlapping; expectedType does
// a linear scan since the table is small and immutable.
var codeRanges = []codeRange{
	{0, 9, KindString},
	{10, 39, KindDouble},
	{40, 59, KindDouble},
	{60, 79, KindShort},
	{90, 99, KindInteger},
	{100, 102, KindString},
	{105, 105, KindString}, // handle
	{110, 149, KindDouble},
	{160, 169, KindLong},
	{170, 179, KindShort},
	{210, 239, KindDouble},
	{270, 289, KindShort},
	{290, 299, KindBoolean},
	{300, 309, KindString},
	{310, 319, KindString}, // binary chunk, carried as hex string
	{320, 329, KindString}, // handle
	{330, 369, KindString}, // soft/hard pointer or owner handle
	{370, 379, KindShort},
	{380, 389, KindShort},
	{390, 399, KindString}, // handle
	{400, 409, KindShort},
	{410, 419, KindString},
	{420, 429, KindInteger},
	{430, 439, KindString},
	{440, 449, KindInteger},
	{450, 459, KindInteger},
	{460, 469, KindDouble},
	{470, 479, KindString},
	{480, 481, KindString}, // handle
	{999, 999, KindString}, // comment
	{1000, 1009, KindString},
	{1010, 1059, KindDouble},
	{1060, 1070, KindShort},
	{1071, 1071, KindInteger},
}

// expectedType returns the value kind a code's value line must parse as,
// and whether the code is recognized at all.
func expectedType(code int) (ValueKind, bool) {
	for _, r := range codeRanges {
		if code >= r.lo && code <= r.hi {
			return r.kind, true
		}
	}
	return 0, false
}
