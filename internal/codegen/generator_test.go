// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caddxf/dxf/internal/specschema"
)

func TestGeneratorWriteEntityType(t *testing.T) {
	g := &Generator{}
	g.WriteHeader("EntitiesSpec.xml")
	err := g.WriteEntityType(specschema.TypeSpec{
		Name:           "Line",
		TypeString:     "LINE",
		SubclassMarker: "AcDbLine",
		Fields: []specschema.Field{
			{Name: "P1", Type: "Point", Code: 10},
			{Name: "Thickness", Type: "double", Code: 39, DefaultValue: "0", DisableWritingDefault: true},
		},
	})
	require.NoError(t, err)

	out := g.buf.String()
	assert.Contains(t, out, "Code generated by cmd/dxfgen from EntitiesSpec.xml")
	assert.Contains(t, out, "type Line struct")
	assert.Contains(t, out, "P1 Point")
	assert.Contains(t, out, "Thickness float64")
	assert.Contains(t, out, `func (e *Line) typeString() string { return "LINE" }`)
	assert.Contains(t, out, "func (e *Line) isSupportedOnVersion(v AcadVersion) bool { return true }")
	assert.Contains(t, out, "func (e *Line) tryApplyCodePair(p CodePair) (bool, error)")
	assert.Contains(t, out, "e.P1.set(p, 10)")
	assert.Contains(t, out, "case p.Code == 39:")
	assert.Contains(t, out, "func (e *Line) writeSpecific(w *PairWriter, _ EntityCommon) error")
	assert.Contains(t, out, `NewStringPair(100, "AcDbLine")`)
	assert.Contains(t, out, "e.P1.writePairs(10)")
	assert.Contains(t, out, "if e.Thickness != 0")
	assert.Contains(t, out, `registerEntityType([]string{"LINE"}, newLine)`)
}

func TestGeneratorWriteEntityTypeVersionGating(t *testing.T) {
	g := &Generator{}
	err := g.WriteEntityType(specschema.TypeSpec{Name: "Ellipse", TypeString: "ELLIPSE", MinVersion: "R14"})
	require.NoError(t, err)
	assert.Contains(t, g.buf.String(), "return v >= R14")
}

func TestGeneratorWriteEntityTypeSkipsCustomReader(t *testing.T) {
	g := &Generator{}
	err := g.WriteEntityType(specschema.TypeSpec{
		Name: "MText", TypeString: "MTEXT", GenerateReaderFunctionAttr: "false",
	})
	require.NoError(t, err)
	assert.Empty(t, g.buf.String(), "a GenerateReaderFunction=\"false\" type must emit nothing")
}

func TestGeneratorWriteEntityTypeFlagAccessors(t *testing.T) {
	g := &Generator{}
	err := g.WriteEntityType(specschema.TypeSpec{
		Name:       "Polyline",
		TypeString: "POLYLINE",
		Fields:     []specschema.Field{{Name: "Flags", Type: "short", Code: 70}},
		Flags: []specschema.Flag{
			{Name: "IsClosed", Mask: 1},
			{Name: "Is3DPolyline", Mask: 8},
		},
	})
	require.NoError(t, err)

	out := g.buf.String()
	assert.Contains(t, out, "func (e *Polyline) IsClosed() bool { return e.Flags&1 != 0 }")
	assert.Contains(t, out, "func (e *Polyline) SetIsClosed(v bool) {")
	assert.Contains(t, out, "e.Flags |= 1")
	assert.Contains(t, out, "e.Flags &^= 1")
	assert.Contains(t, out, "func (e *Polyline) Is3DPolyline() bool { return e.Flags&8 != 0 }")
	assert.Contains(t, out, "func (e *Polyline) SetIs3DPolyline(v bool) {")
}

func TestGeneratorWriteTableRecordType(t *testing.T) {
	g := &Generator{}
	err := g.WriteTableRecordType(specschema.TypeSpec{
		Name:       "Layer",
		TypeString: "LAYER",
		Fields:     []specschema.Field{{Name: "Flags", Type: "int", Code: 70}},
	})
	require.NoError(t, err)

	out := g.buf.String()
	assert.Contains(t, out, "type Layer struct")
	assert.Contains(t, out, "Common TableRecordCommon")
	assert.Contains(t, out, "Flags int32")
	assert.Contains(t, out, "func (r *Layer) typeString() string")
	assert.Contains(t, out, "func (r *Layer) writeSpecific(w *PairWriter) error")
	assert.Contains(t, out, `registerTableRecordType("LAYER", newLayer)`)
}

func TestGeneratorWriteObjectType(t *testing.T) {
	g := &Generator{}
	err := g.WriteObjectType(specschema.TypeSpec{
		Name:       "Layout",
		TypeString: "LAYOUT",
		Fields:     []specschema.Field{{Name: "TabOrder", Type: "int", Code: 71}},
	})
	require.NoError(t, err)

	out := g.buf.String()
	assert.Contains(t, out, "type Layout struct")
	assert.Contains(t, out, "func (o *Layout) typeString() string")
	assert.Contains(t, out, `registerObjectType("LAYOUT", newLayout)`)
}

func TestGeneratorWriteHeaderTable(t *testing.T) {
	g := &Generator{}
	err := g.WriteHeaderTable(&specschema.HeaderVariablesSpec{
		Variables: []specschema.HeaderVariable{
			{Name: "$ACADVER", Code: 1, Type: "string", Custom: true},
			{Name: "$HANDSEED", Code: 5, Type: "string", MinVersion: "R13", FieldName: "HandSeed"},
		},
	})
	require.NoError(t, err)

	out := g.buf.String()
	assert.Contains(t, out, `addCustom("$ACADVER")`)
	assert.Contains(t, out, `add("$HANDSEED", R13, stringVar(5, func(h *Header) *string { return &h.HandSeed }))`)
}

func TestGoFieldType(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"double", "float64"},
		{"short", "int16"},
		{"int", "int32"},
		{"long", "int64"},
		{"bool", "bool"},
		{"string", "string"},
		{"Point", "Point"},
		{"Vector", "Vector"},
		{"SomeUnknownType", "SomeUnknownType"},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			assert.Equal(t, tt.want, goFieldType(tt.spec))
		})
	}
}
