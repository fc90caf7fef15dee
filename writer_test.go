// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import (
	"bytes"
	"strings"
	"testing"
)

func TestPairWriterWriteCodePair(t *testing.T) {
	var buf bytes.Buffer
	w := NewPairWriter(&buf)
	if err := w.WriteCodePair(NewStringPair(0, "SECTION")); err != nil {
		t.Fatalf("WriteCodePair() error = %v", err)
	}
	want := "  0\r\nSECTION\r\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteCodePair() wrote %q, want %q", got, want)
	}
}

func TestPairWriterTrace(t *testing.T) {
	var out, trace bytes.Buffer
	w := NewPairWriter(&out)
	w.Trace(&trace)

	pair := NewDoublePair(40, 1.0)
	if err := w.WriteCodePair(pair); err != nil {
		t.Fatalf("WriteCodePair() error = %v", err)
	}
	if out.String() != trace.String() {
		t.Errorf("trace output %q differs from primary output %q", trace.String(), out.String())
	}
}

func TestRoundTripCodePair(t *testing.T) {
	var buf bytes.Buffer
	w := NewPairWriter(&buf)
	pairs := []CodePair{
		NewStringPair(0, "LINE"),
		NewShortPair(70, -3),
		NewDoublePair(10, 12.340000000001),
	}
	for _, p := range pairs {
		if err := w.WriteCodePair(p); err != nil {
			t.Fatalf("WriteCodePair() error = %v", err)
		}
	}

	r := NewPairReader(strings.NewReader(buf.String()))
	for i, want := range pairs {
		got, err := r.Next()
		if err != nil {
			t.Fatalf("pair %d: Next() error = %v", i, err)
		}
		if got.Code != want.Code {
			t.Errorf("pair %d code = %d, want %d", i, got.Code, want.Code)
		}
	}
}
