// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import "testing"

func TestValueWriteString(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		out  string
	}{
		{"bool true", boolValue(true), "1"},
		{"bool false", boolValue(false), "0"},
		{"short", shortValue(42), "42"},
		{"integer", intValue(-7), "-7"},
		{"long", longValue(1234567890123), "1234567890123"},
		{"double", doubleValue(1.5), "1.500000000000"},
		{"string", strValue("LAYER0"), "LAYER0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.writeString(); got != tt.out {
				t.Errorf("writeString() = %q, want %q", got, tt.out)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in      string
		out     bool
		wantErr bool
	}{
		{"0", false, false},
		{"1", true, false},
		{"2", false, true},
		{"true", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseBool(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseBool(%q) = nil error, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseBool(%q) = %v, want nil", tt.in, err)
			}
			if got != tt.out {
				t.Errorf("parseBool(%q) = %v, want %v", tt.in, got, tt.out)
			}
		})
	}
}

func TestCodePairStringValue(t *testing.T) {
	strPair := NewStringPair(8, "0")
	if got := strPair.StringValue(); got != "0" {
		t.Errorf("StringValue() = %q, want %q", got, "0")
	}

	doublePair := NewDoublePair(40, 2.5)
	if got := doublePair.StringValue(); got != "2.500000000000" {
		t.Errorf("StringValue() = %q, want %q", got, "2.500000000000")
	}
}

func TestExpectedType(t *testing.T) {
	tests := []struct {
		code int
		kind ValueKind
		ok   bool
	}{
		{0, KindString, true},
		{10, KindDouble, true},
		{70, KindShort, true},
		{90, KindInteger, true},
		{160, KindLong, true},
		{290, KindBoolean, true},
		{999, KindString, true},
		{-1, 0, false},
		{50000, 0, false},
	}
	for _, tt := range tests {
		kind, ok := expectedType(tt.code)
		if ok != tt.ok {
			t.Errorf("expectedType(%d) ok = %v, want %v", tt.code, ok, tt.ok)
			continue
		}
		if ok && kind != tt.kind {
			t.Errorf("expectedType(%d) = %v, want %v", tt.code, kind, tt.kind)
		}
	}
}
