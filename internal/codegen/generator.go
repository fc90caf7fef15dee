// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

// Package codegen renders specschema.TypeSpec definitions into Go source
// implementing the EntityType/TableRecordType/ObjectType interfaces
// (entity.go/table.go/object.go) plus a headerVariable table
// (header.go). cmd/dxfgen is the only caller. Types marked
// GenerateReaderFunction="false" are skipped entirely, and header
// variables marked Custom="true" are emitted only as an addCustom(name)
// reference — those are the escape hatches filled in by hand (MTEXT in
// entity_custom.go, LWPOLYLINE in entity_gen.go, custom header variables
// in header_custom.go), and emitting their definitions here would be a
// duplicate declaration.
package codegen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/caddxf/dxf/internal/specschema"
)

// Generator accumulates template output for one generated source file.
type Generator struct {
	buf bytes.Buffer
}

// WriteHeader emits the "generated by" banner and package clause.
func (g *Generator) WriteHeader(sourceFile string) {
	fmt.Fprintf(&g.buf, "// Code generated by cmd/dxfgen from %s. DO NOT EDIT.\n\n", sourceFile)
	fmt.Fprintf(&g.buf, "package dxf\n\n")
}

// WriteEntityType renders one entity TypeSpec: struct, constructor,
// typeString, isSupportedOnVersion, flag accessors, per-field accessors,
// tryApplyCodePair, writeSpecific, and an init() registering it. A type
// with GenerateReaderFunction="false" (MTEXT, LWPOLYLINE) is skipped —
// its full definition lives hand-written instead (MTEXT in
// entity_custom.go, LWPOLYLINE in entity_gen.go).
func (g *Generator) WriteEntityType(t specschema.TypeSpec) error {
	if !t.Generated() {
		return nil
	}
	v, err := newTypeView(t, "e")
	if err != nil {
		return err
	}
	v.ReceiverKind = "EntityType"
	v.RegisterCall = fmt.Sprintf("registerEntityType(%s, new%s)", goStringSlice(t.TypeStrings()), t.Name)
	v.WriteSpecificSig = fmt.Sprintf("func (e *%s) writeSpecific(w *PairWriter, _ EntityCommon) error {", t.Name)
	v.IsSupportedExpr = "true"
	if t.MinVersion != "" {
		v.IsSupportedExpr = "v >= " + t.MinVersion
	}
	v.ExtraMethods = "func (e *" + t.Name + ") isSupportedOnVersion(v AcadVersion) bool { return " + v.IsSupportedExpr + " }\n"
	return entityTypeTemplate.Execute(&g.buf, v)
}

// WriteTableRecordType renders one table-record TypeSpec.
func (g *Generator) WriteTableRecordType(t specschema.TypeSpec) error {
	if !t.Generated() {
		return nil
	}
	v, err := newTypeView(t, "r")
	if err != nil {
		return err
	}
	v.ReceiverKind = "TableRecordType"
	v.CommonField = "Common TableRecordCommon\n"
	v.RegisterCall = fmt.Sprintf("registerTableRecordType(%q, new%s)", t.TypeStrings()[0], t.Name)
	v.WriteSpecificSig = fmt.Sprintf("func (r *%s) writeSpecific(w *PairWriter) error {", t.Name)
	return tableRecordTypeTemplate.Execute(&g.buf, v)
}

// WriteObjectType renders one object TypeSpec.
func (g *Generator) WriteObjectType(t specschema.TypeSpec) error {
	if !t.Generated() {
		return nil
	}
	v, err := newTypeView(t, "o")
	if err != nil {
		return err
	}
	v.ReceiverKind = "ObjectType"
	v.RegisterCall = fmt.Sprintf("registerObjectType(%q, new%s)", t.TypeStrings()[0], t.Name)
	v.WriteSpecificSig = fmt.Sprintf("func (o *%s) writeSpecific(w *PairWriter) error {", t.Name)
	return objectTypeTemplate.Execute(&g.buf, v)
}

// WriteHeaderTable renders the whole headerVariableTable closure from a
// HeaderVariablesSpec in one call, splicing Custom="true" entries in by
// name at the position the spec declares them (see header_custom.go).
func (g *Generator) WriteHeaderTable(spec *specschema.HeaderVariablesSpec) error {
	var lines []string
	for _, hv := range spec.Variables {
		if hv.Custom {
			lines = append(lines, fmt.Sprintf("\taddCustom(%q)", hv.Name))
			continue
		}
		minVersion := hv.MinVersion
		if minVersion == "" {
			minVersion = "R9"
		}
		helper, err := headerHelperCall(hv)
		if err != nil {
			return fmt.Errorf("codegen: header variable %s: %w", hv.Name, err)
		}
		// Each typed helper (pointVar/doubleVar/shortVar/boolVar/
		// stringVar/colorVar) returns a (read, write) function pair;
		// Go splices a multi-value call straight into add's trailing
		// parameters, so no intermediate variables are needed.
		lines = append(lines, fmt.Sprintf("\tadd(%q, %s, %s)", hv.Name, minVersion, helper))
	}
	return headerTableTemplate.Execute(&g.buf, struct{ Lines string }{strings.Join(lines, "\n")})
}

// headerHelperCall returns the typed-helper call expression for a
// non-custom HeaderVariable, e.g. `stringVar(3, func(h *Header) *string {
// return &h.DrawingCodePage })`.
func headerHelperCall(hv specschema.HeaderVariable) (string, error) {
	if hv.FieldName == "" {
		return "", fmt.Errorf("no FieldName and not Custom")
	}
	getter := func(goType string) string {
		return fmt.Sprintf("func(h *Header) *%s { return &h.%s }", goType, hv.FieldName)
	}
	switch hv.Type {
	case "Point":
		return fmt.Sprintf("pointVar(%d, %s)", hv.Code, getter("Point")), nil
	case "double":
		return fmt.Sprintf("doubleVar(%d, %s)", hv.Code, getter("float64")), nil
	case "short":
		return fmt.Sprintf("shortVar(%d, %s)", hv.Code, getter("int16")), nil
	case "bool":
		return fmt.Sprintf("boolVar(%d, %s)", hv.Code, getter("bool")), nil
	case "string":
		return fmt.Sprintf("stringVar(%d, %s)", hv.Code, getter("string")), nil
	case "Color":
		return fmt.Sprintf("colorVar(%d, %s)", hv.Code, getter("Color")), nil
	default:
		return "", fmt.Errorf("unknown header variable type %q", hv.Type)
	}
}

// Format runs goimports over the accumulated source, adding/removing
// imports and gofmt-ing the result, the way dxfgen's real invocation
// would before writing the generated file to disk.
func (g *Generator) Format(filename string) ([]byte, error) {
	return imports.Process(filename, g.buf.Bytes(), nil)
}

func goFieldType(specType string) string {
	switch specType {
	case "Point", "Vector":
		return specType
	case "double":
		return "float64"
	case "short":
		return "int16"
	case "int":
		return "int32"
	case "long":
		return "int64"
	case "bool":
		return "bool"
	case "string":
		return "string"
	default:
		return specType
	}
}

func goStringSlice(ss []string) string {
	quoted := make([]string, len(ss))
	for i, s := range ss {
		quoted[i] = strconv.Quote(s)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}

var funcMap = template.FuncMap{
	"goType": goFieldType,
	"lower":  strings.ToLower,
}

// typeView is the precomputed rendering of one TypeSpec: the pieces that
// differ between an entity/table-record/object (receiver letter, common
// field, writeSpecific signature, registration call) are filled in by the
// caller; everything else is shared logic in fieldrender.go.
type typeView struct {
	specschema.TypeSpec
	Recv             string
	ReceiverKind     string
	CommonField      string
	RegisterCall     string
	WriteSpecificSig string
	IsSupportedExpr  string
	ExtraMethods     string

	StructFields   string
	CtorBody       string
	FlagMethods    string
	FieldAccessors string
	TryApplyCases  string
	WriteBody      string
	HasExtensionData bool
}

func newTypeView(t specschema.TypeSpec, recv string) (typeView, error) {
	v := typeView{TypeSpec: t, Recv: recv}
	v.HasExtensionData = writeOrderWantsExtensionData(t.WriteOrder)
	v.StructFields = renderStructFields(t)
	v.CtorBody = renderCtorBody(t)
	v.FlagMethods = renderFlagAccessors(t, recv)
	v.FieldAccessors = renderFieldAccessors(t, recv)

	cases, err := renderTryApplyCases(t, recv)
	if err != nil {
		return v, err
	}
	v.TryApplyCases = cases

	body, err := renderWriteBody(t, recv)
	if err != nil {
		return v, err
	}
	v.WriteBody = body
	return v, nil
}

var entityTypeTemplate = template.Must(template.New("entity").Funcs(funcMap).Parse(typeTemplateSrc))
var tableRecordTypeTemplate = template.Must(template.New("table").Funcs(funcMap).Parse(typeTemplateSrc))
var objectTypeTemplate = template.Must(template.New("object").Funcs(funcMap).Parse(typeTemplateSrc))

var headerTableTemplate = template.Must(template.New("headertable").Parse(`
var headerVariableTable = func() []headerVariable {
	var t []headerVariable
	add := func(name string, minVersion AcadVersion,
		read func(h *Header, values []CodePair), write func(h *Header) []CodePair) {
		t = append(t, v(name, minVersion, read, write))
	}
	addCustom := func(name string) {
		t = append(t, customHeaderVariables[name])
	}

{{.Lines}}

	return t
}()
`))

const typeTemplateSrc = `
// {{.Name}} is generated from {{.TypeString}}.
type {{.Name}} struct {
{{.CommonField}}{{.StructFields}}{{if .HasExtensionData}}	ExtensionData []CodePair
{{end}}}

func new{{.Name}}() {{.ReceiverKind}} {
	return &{{.Name}}{
{{.CtorBody}}	}
}

func ({{.Recv}} *{{.Name}}) typeString() string { return "{{index .TypeStrings 0}}" }
{{.ExtraMethods}}
{{.FlagMethods}}
{{.FieldAccessors}}
func ({{.Recv}} *{{.Name}}) tryApplyCodePair(p CodePair) (bool, error) {
	switch {
{{.TryApplyCases}}	default:
		return false, nil
	}
	return true, nil
}

{{.WriteSpecificSig}}
	pairs := []CodePair{}
{{.WriteBody}}	return writeAll(w, pairs)
}

func init() {
	{{.RegisterCall}}
}
`
