// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package codegen

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/caddxf/dxf/internal/specschema"
)

func directive(local string, rest specschema.WriteOrderDirective) specschema.WriteOrderDirective {
	rest.XMLName = xml.Name{Local: local}
	return rest
}

func TestRenderWriteOrder(t *testing.T) {
	order := specschema.WriteOrder{
		Directives: []specschema.WriteOrderDirective{
			directive("WriteSpecificValue", specschema.WriteOrderDirective{Code: 100, Value: "AcDbLine"}),
			directive("WriteField", specschema.WriteOrderDirective{Field: "P1"}),
			directive("Foreach", specschema.WriteOrderDirective{Field: "Vertices", Variable: "vertex"}),
			directive("WriteExtensionData", specschema.WriteOrderDirective{}),
		},
	}

	out, err := RenderWriteOrder(order, "e")
	if err != nil {
		t.Fatalf("RenderWriteOrder() error = %v", err)
	}
	for _, want := range []string{
		`NewStringPair(100, "AcDbLine")`,
		"e.P1CodePairs()",
		"for _, vertex := range e.Vertices",
		"vertex.CodePairs()",
		"e.ExtensionData",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderWriteOrder() output missing %q; got:\n%s", want, out)
		}
	}
}

func TestRenderWriteOrderUnknownDirective(t *testing.T) {
	order := specschema.WriteOrder{
		Directives: []specschema.WriteOrderDirective{
			directive("WriteSomethingElse", specschema.WriteOrderDirective{}),
		},
	}
	if _, err := RenderWriteOrder(order, "e"); err == nil {
		t.Error("RenderWriteOrder() with an unknown directive returned nil error")
	}
}

func TestWriteOrderWantsExtensionData(t *testing.T) {
	withExt := &specschema.WriteOrder{Directives: []specschema.WriteOrderDirective{
		directive("WriteExtensionData", specschema.WriteOrderDirective{}),
	}}
	if !writeOrderWantsExtensionData(withExt) {
		t.Error("writeOrderWantsExtensionData() = false, want true")
	}
	withoutExt := &specschema.WriteOrder{Directives: []specschema.WriteOrderDirective{
		directive("WriteField", specschema.WriteOrderDirective{Field: "P1"}),
	}}
	if writeOrderWantsExtensionData(withoutExt) {
		t.Error("writeOrderWantsExtensionData() = true, want false")
	}
	if writeOrderWantsExtensionData(nil) {
		t.Error("writeOrderWantsExtensionData(nil) = true, want false")
	}
}

func TestLoopVarDefaultsWhenEmpty(t *testing.T) {
	if got := loopVar(""); got != "item" {
		t.Errorf("loopVar(\"\") = %q, want item", got)
	}
	if got := loopVar("vertex"); got != "vertex" {
		t.Errorf("loopVar(\"vertex\") = %q, want vertex", got)
	}
}
