// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestNewDrawingSaveLoadRoundTrip(t *testing.T) {
	d := New(R2013)
	d.Header.CurrentLayer = "Dimensions"
	d.Tables.Layers = append(d.Tables.Layers, &Layer{
		Common: TableRecordCommon{Name: "Dimensions"},
		Color:  ColorFromIndex(2), LineType: "CONTINUOUS", IsPlottable: true, LineWeight: ByLayerLineWeight,
	})
	d.Entities = append(d.Entities, Entity{
		Common:   NewEntityCommon(),
		Specific: &Line{P1: Origin, P2: Point{100, 0, 0}, Extrusion: ZAxis},
	})

	var buf bytes.Buffer
	if err := d.Save(&buf); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Header.Version != R2013 {
		t.Errorf("Version = %v, want %v", got.Header.Version, R2013)
	}
	if got.Header.CurrentLayer != "Dimensions" {
		t.Errorf("CurrentLayer = %q, want %q", got.Header.CurrentLayer, "Dimensions")
	}
	if len(got.Tables.Layers) != 1 || got.Tables.Layers[0].Common.Name != "Dimensions" {
		t.Fatalf("Tables.Layers = %+v", got.Tables.Layers)
	}
	if len(got.Entities) != 1 {
		t.Fatalf("len(Entities) = %d, want 1", len(got.Entities))
	}
	line, ok := got.Entities[0].Specific.(*Line)
	if !ok {
		t.Fatalf("Entities[0] is %T, want *Line", got.Entities[0].Specific)
	}
	if line.P2 != (Point{100, 0, 0}) {
		t.Errorf("P2 = %+v, want {100 0 0}", line.P2)
	}
}

func TestLoadSwallowsUnknownSection(t *testing.T) {
	input := "" +
		"0\r\nSECTION\r\n2\r\nACDSDATA\r\n" +
		"1\r\nanything\r\n2\r\ngoes\r\n" +
		"0\r\nENDSEC\r\n" +
		"0\r\nSECTION\r\n2\r\nHEADER\r\n9\r\n$ACADVER\r\n1\r\nAC1027\r\n0\r\nENDSEC\r\n" +
		"0\r\nEOF\r\n"
	d, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if d.Header.Version != R2013 {
		t.Errorf("Version = %v, want %v", d.Header.Version, R2013)
	}
}

func TestLoadRejectsMissingSectionName(t *testing.T) {
	input := "0\r\nSECTION\r\n1\r\nnotaname\r\n"
	_, err := Load(strings.NewReader(input))
	if err != ErrExpectedSectionName {
		t.Errorf("Load() error = %v, want ErrExpectedSectionName", err)
	}
}

func TestEncodeDecodeObjectsRoundTrip(t *testing.T) {
	objects := []Object{
		{Common: ObjectCommon{Handle: "1A"}, Specific: &Dictionary{HardOwnerFlag: true, Entries: map[string]string{"LAYOUTS": "2B"}}},
		{Common: ObjectCommon{Handle: "1C"}, Specific: &Layout{LayoutName: "Layout1", TabOrder: 1}},
	}

	var buf bytes.Buffer
	w := NewPairWriter(&buf)
	if err := EncodeObjects(w, objects); err != nil {
		t.Fatalf("EncodeObjects() error = %v", err)
	}

	r := NewPairReader(strings.NewReader(buf.String()))
	sectionPair, err := r.Next()
	if err != nil || sectionPair.Value.Str != "SECTION" {
		t.Fatalf("expected SECTION, got %+v, %v", sectionPair, err)
	}
	if _, err := r.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	got, err := DecodeObjects(r)
	if err != nil {
		t.Fatalf("DecodeObjects() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
	dict, ok := got[0].Specific.(*Dictionary)
	if !ok {
		t.Fatalf("got[0].Specific is %T, want *Dictionary", got[0].Specific)
	}
	if dict.Entries["LAYOUTS"] != "2B" {
		t.Errorf("Entries[LAYOUTS] = %q, want 2B", dict.Entries["LAYOUTS"])
	}
	layout, ok := got[1].Specific.(*Layout)
	if !ok {
		t.Fatalf("got[1].Specific is %T, want *Layout", got[1].Specific)
	}
	if layout.LayoutName != "Layout1" {
		t.Errorf("LayoutName = %q, want Layout1", layout.LayoutName)
	}
}

func TestStripBOMPassthroughWithoutBOM(t *testing.T) {
	input := "0\r\nEOF\r\n"
	r, err := StripBOM(bufio.NewReader(strings.NewReader(input)))
	if err != nil {
		t.Fatalf("StripBOM() error = %v", err)
	}
	pr := NewPairReader(r)
	pair, err := pr.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if pair.Value.Str != "EOF" {
		t.Errorf("pair = %+v, want EOF", pair)
	}
}
