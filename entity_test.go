// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import (
	"bytes"
	"strings"
	"testing"
)

func TestLineRoundTrip(t *testing.T) {
	line := &Line{P1: Point{0, 0, 0}, P2: Point{10, 10, 0}, Thickness: 2.5}
	e := Entity{Common: NewEntityCommon(), Specific: line}
	e.Common.Layer = "Walls"

	var buf bytes.Buffer
	w := NewPairWriter(&buf)
	if err := writeEntity(w, e, R2014); err != nil {
		t.Fatalf("writeEntity() error = %v", err)
	}

	r := NewPairReader(strings.NewReader(buf.String()))
	typePair, err := r.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	got, ok, err := readEntity(r, typePair.Value.Str)
	if err != nil || !ok {
		t.Fatalf("readEntity() = %v, %v, %v", got, ok, err)
	}
	gotLine, ok := got.Specific.(*Line)
	if !ok {
		t.Fatalf("got.Specific is %T, want *Line", got.Specific)
	}
	if gotLine.P1 != line.P1 || gotLine.P2 != line.P2 || gotLine.Thickness != line.Thickness {
		t.Errorf("round-tripped Line = %+v, want %+v", gotLine, line)
	}
	if got.Common.Layer != "Walls" {
		t.Errorf("round-tripped Layer = %q, want %q", got.Common.Layer, "Walls")
	}
}

func TestPolylineFlags(t *testing.T) {
	p := &Polyline{Flags: 1 | 8}
	if !p.IsClosed() {
		t.Error("IsClosed() = false, want true")
	}
	if !p.Is3DPolyline() {
		t.Error("Is3DPolyline() = false, want true")
	}
	p2 := &Polyline{Flags: 0}
	if p2.IsClosed() || p2.Is3DPolyline() {
		t.Error("zero-flags polyline reports a flag set")
	}
}

func TestPolylineSetFlags(t *testing.T) {
	p := &Polyline{}

	p.SetIsClosed(true)
	if !p.IsClosed() {
		t.Error("SetIsClosed(true) did not set IsClosed")
	}
	if p.Is3DPolyline() {
		t.Error("SetIsClosed(true) affected Is3DPolyline")
	}

	p.SetIsClosed(false)
	if p.IsClosed() {
		t.Error("SetIsClosed(false) did not clear IsClosed")
	}

	p.SetIs3DPolyline(true)
	p.SetIs3DPolyline(false)
	if p.Is3DPolyline() {
		t.Error("SetIs3DPolyline(false) did not clear Is3DPolyline")
	}
	if p.Flags != 0 {
		t.Errorf("Flags = %d after clearing both flags, want 0", p.Flags)
	}

	p.SetIsClosed(true)
	p.SetIs3DPolyline(true)
	if p.Flags != 1|8 {
		t.Errorf("Flags = %d with both flags set, want %d", p.Flags, 1|8)
	}
}

func TestPolylineVertexGrouping(t *testing.T) {
	input := "" +
		"0\r\nSECTION\r\n2\r\nENTITIES\r\n" +
		"0\r\nPOLYLINE\r\n70\r\n1\r\n" +
		"0\r\nVERTEX\r\n10\r\n1.0\r\n20\r\n1.0\r\n30\r\n0.0\r\n" +
		"0\r\nVERTEX\r\n10\r\n2.0\r\n20\r\n2.0\r\n30\r\n0.0\r\n" +
		"0\r\nSEQEND\r\n" +
		"0\r\nLINE\r\n10\r\n0.0\r\n20\r\n0.0\r\n30\r\n0.0\r\n" +
		"0\r\nENDSEC\r\n"
	r := NewPairReader(strings.NewReader(input))

	section, err := r.Next()
	if err != nil || section.Value.Str != "SECTION" {
		t.Fatalf("expected SECTION, got %+v, %v", section, err)
	}
	if _, err := r.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}

	entities, err := readEntities(r)
	if err != nil {
		t.Fatalf("readEntities() error = %v", err)
	}
	if len(entities) != 2 {
		t.Fatalf("len(entities) = %d, want 2", len(entities))
	}
	poly, ok := entities[0].Specific.(*Polyline)
	if !ok {
		t.Fatalf("entities[0] is %T, want *Polyline", entities[0].Specific)
	}
	if len(poly.Vertices) != 2 {
		t.Fatalf("len(poly.Vertices) = %d, want 2", len(poly.Vertices))
	}
	if poly.Seqend == nil {
		t.Error("poly.Seqend = nil, want non-nil")
	}
	if _, ok := entities[1].Specific.(*Line); !ok {
		t.Errorf("entities[1] is %T, want *Line", entities[1].Specific)
	}
}

func TestMTextColumnHeightDisambiguation(t *testing.T) {
	// Before any code 75, code 50 is RotationAngle. After code 75, code 50
	// means a column height instead.
	input := "" +
		"50\r\n1.57\r\n" +
		"75\r\n1\r\n" +
		"76\r\n2\r\n" +
		"50\r\n10.0\r\n" +
		"50\r\n20.0\r\n" +
		"0\r\nLINE\r\n"
	r := NewPairReader(strings.NewReader(input))
	mt := &MText{}
	var common EntityCommon
	if err := mt.readCustom(r, &common); err != nil {
		t.Fatalf("readCustom() error = %v", err)
	}
	if mt.RotationAngle != 1.57 {
		t.Errorf("RotationAngle = %v, want 1.57", mt.RotationAngle)
	}
	if len(mt.ColumnHeights) != 2 || mt.ColumnHeights[0] != 10.0 || mt.ColumnHeights[1] != 20.0 {
		t.Errorf("ColumnHeights = %v, want [10 20]", mt.ColumnHeights)
	}
}

func TestLwPolylineCustomReader(t *testing.T) {
	input := "" +
		"70\r\n1\r\n" +
		"43\r\n0.5\r\n" +
		"10\r\n1.0\r\n20\r\n2.0\r\n40\r\n0.1\r\n41\r\n0.2\r\n" +
		"10\r\n3.0\r\n20\r\n4.0\r\n42\r\n0.75\r\n" +
		"0\r\nENDSEC\r\n"
	r := NewPairReader(strings.NewReader(input))
	lw := &LwPolyline{}
	var common EntityCommon
	if err := lw.readCustom(r, &common); err != nil {
		t.Fatalf("readCustom() error = %v", err)
	}
	if len(lw.Vertices) != 2 {
		t.Fatalf("len(lw.Vertices) = %d, want 2", len(lw.Vertices))
	}
	if lw.Vertices[0].Point != (Point{1, 2, 0}) {
		t.Errorf("Vertices[0].Point = %+v, want {1 2 0}", lw.Vertices[0].Point)
	}
	if lw.Vertices[0].StartWidth != 0.1 || lw.Vertices[0].EndWidth != 0.2 {
		t.Errorf("Vertices[0] widths = %v/%v, want 0.1/0.2", lw.Vertices[0].StartWidth, lw.Vertices[0].EndWidth)
	}
	if lw.Vertices[1].Bulge != 0.75 {
		t.Errorf("Vertices[1].Bulge = %v, want 0.75", lw.Vertices[1].Bulge)
	}
}

func TestSplinePostParseCoalescesPoints(t *testing.T) {
	s := &Spline{}
	for _, p := range []CodePair{
		NewDoublePair(10, 1), NewDoublePair(20, 2), NewDoublePair(30, 3),
		NewDoublePair(10, 4), NewDoublePair(20, 5), NewDoublePair(30, 6),
	} {
		if _, err := s.tryApplyCodePair(p); err != nil {
			t.Fatalf("tryApplyCodePair() error = %v", err)
		}
	}
	s.postParse()
	want := []Point{{1, 2, 3}, {4, 5, 6}}
	if len(s.ControlPoints) != len(want) {
		t.Fatalf("len(ControlPoints) = %d, want %d", len(s.ControlPoints), len(want))
	}
	for i, p := range want {
		if s.ControlPoints[i] != p {
			t.Errorf("ControlPoints[%d] = %+v, want %+v", i, s.ControlPoints[i], p)
		}
	}
}
