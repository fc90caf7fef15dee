// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import (
	"bytes"
	"strings"
	"testing"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := NewHeader(R2000)
	h.CurrentLayer = "Dimensions"
	h.InsertionBase = Point{1, 2, 3}
	h.Custom["$MYCUSTOMVAR"] = []CodePair{NewIntPair(70, 42)}

	var buf bytes.Buffer
	w := NewPairWriter(&buf)
	if err := h.Write(w); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.WriteCodePair(NewStringPair(0, "ENDSEC")); err != nil {
		t.Fatalf("WriteCodePair() error = %v", err)
	}

	r := NewPairReader(strings.NewReader(buf.String()))
	got := NewHeader(R9)
	if err := got.Read(r); err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got.Version != R2000 {
		t.Errorf("Version = %v, want %v", got.Version, R2000)
	}
	if got.CurrentLayer != "Dimensions" {
		t.Errorf("CurrentLayer = %q, want %q", got.CurrentLayer, "Dimensions")
	}
	if got.InsertionBase != h.InsertionBase {
		t.Errorf("InsertionBase = %+v, want %+v", got.InsertionBase, h.InsertionBase)
	}
	custom, ok := got.Custom["$MYCUSTOMVAR"]
	// Code 70 is a short code, so the reader types the value as Short.
	if !ok || len(custom) != 1 || custom[0].Value.Short != 42 {
		t.Errorf("Custom[$MYCUSTOMVAR] = %+v, want one pair with Short 42", custom)
	}
}

func TestHeaderVersionGating(t *testing.T) {
	h := NewHeader(R9)
	h.HandSeed = "ABCD"
	h.TileMode = 0

	var buf bytes.Buffer
	w := NewPairWriter(&buf)
	if err := h.Write(w); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "$HANDSEED") {
		t.Errorf("R9 header unexpectedly wrote $HANDSEED (MinVersion R13)")
	}
	if strings.Contains(out, "$TILEMODE") {
		t.Errorf("R9 header unexpectedly wrote $TILEMODE (MinVersion R13)")
	}
}
