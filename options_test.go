// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import (
	"strings"
	"testing"
)

func TestLoadStrictRejectsTruncatedSection(t *testing.T) {
	input := "0\r\nSECTION\r\n2\r\nHEADER\r\n9\r\n$ACADVER\r\n1\r\nAC1027\r\n"
	_, err := Load(strings.NewReader(input))
	if err != ErrUnexpectedEOF {
		t.Fatalf("Load() error = %v, want ErrUnexpectedEOF", err)
	}
}

func TestLoadOptionsLenientAcceptsTruncatedSection(t *testing.T) {
	input := "0\r\nSECTION\r\n2\r\nHEADER\r\n9\r\n$ACADVER\r\n1\r\nAC1027\r\n"
	d, err := LoadOptions(strings.NewReader(input), Options{Lenient: true})
	if err != nil {
		t.Fatalf("LoadOptions() error = %v", err)
	}
	if d.Header.Version != R2013 {
		t.Errorf("Version = %v, want %v", d.Header.Version, R2013)
	}
}

func TestLoadStrictRejectsUnclosedTable(t *testing.T) {
	input := "" +
		"0\r\nSECTION\r\n2\r\nTABLES\r\n" +
		"0\r\nTABLE\r\n2\r\nLAYER\r\n70\r\n0\r\n" +
		"0\r\nLAYER\r\n2\r\n0\r\n"
	_, err := Load(strings.NewReader(input))
	if err != ErrUnexpectedEOF {
		t.Fatalf("Load() error = %v, want ErrUnexpectedEOF", err)
	}
}

func TestDefaultOptionsStripsBOM(t *testing.T) {
	opts := DefaultOptions()
	if !opts.StripBOM {
		t.Error("DefaultOptions().StripBOM = false, want true")
	}
	if opts.Lenient {
		t.Error("DefaultOptions().Lenient = true, want false")
	}
}
