// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import (
	"bytes"
	"strings"
	"testing"
)

func TestLayerRoundTrip(t *testing.T) {
	layer := newLayer().(*Layer)
	layer.Color = ColorFromIndex(3)
	layer.LineType = "DASHED"
	common := TableRecordCommon{Name: "Walls", Handle: "42"}

	var buf bytes.Buffer
	w := NewPairWriter(&buf)
	if err := writeTableRecord(w, TableRecord{Common: common, Specific: layer}); err != nil {
		t.Fatalf("writeTableRecord() error = %v", err)
	}

	r := NewPairReader(strings.NewReader(buf.String()))
	typePair, err := r.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	rec, ok, err := readTableRecord(r, typePair.Value.Str)
	if err != nil || !ok {
		t.Fatalf("readTableRecord() = %v, %v, %v", rec, ok, err)
	}
	gotLayer, ok := rec.Specific.(*Layer)
	if !ok {
		t.Fatalf("rec.Specific is %T, want *Layer", rec.Specific)
	}
	if rec.Common.Name != "Walls" || rec.Common.Handle != "42" {
		t.Errorf("rec.Common = %+v, want Name=Walls Handle=42", rec.Common)
	}
	if gotLayer.Color.Index() != 3 || gotLayer.LineType != "DASHED" {
		t.Errorf("round-tripped Layer = %+v", gotLayer)
	}
}

func TestTablesAppendAndRecordsFor(t *testing.T) {
	var tables Tables
	layer := newLayer().(*Layer)
	layer.Common = TableRecordCommon{Name: "0"}
	tables.appendRecord("LAYER", &TableRecord{Common: layer.Common, Specific: layer})

	if len(tables.Layers) != 1 {
		t.Fatalf("len(tables.Layers) = %d, want 1", len(tables.Layers))
	}
	recs := tables.recordsFor("LAYER")
	if len(recs) != 1 || recs[0].Common.Name != "0" {
		t.Errorf("recordsFor(LAYER) = %+v, want one record named 0", recs)
	}
	if len(tables.recordsFor("VPORT")) != 0 {
		t.Error("recordsFor(VPORT) on empty table should be empty")
	}
}
