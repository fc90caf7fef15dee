// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package codegen

import (
	"fmt"
	"strings"

	"github.com/caddxf/dxf/internal/specschema"
)

// RenderWriteOrder turns a WriteOrder element's directives into the Go
// statements that build up a type's writeSpecific pairs slice, the way
// entity_generator.rs::generate_write_code_pairs_for_write_order walks
// WriteField/WriteSpecificValue/Foreach/WriteExtensionData. recv is the
// receiver variable the owning type's methods use ("e", "r", or "o").
//
// WriteField calls the named field's <Field>CodePairs() accessor
// (renderFieldAccessors emits one, when a type declares a WriteOrder, for
// every pointer and every single-valued Point, Vector or scalar field; an
// AllowMultiples field or one of another Type gets none, so a WriteField
// naming it does not resolve). Foreach ranges over a slice
// field and calls CodePairs() on each element — the mini-language's
// contract for a Foreach target is that its element type exposes that
// method itself, the same way a top-level type does.
func RenderWriteOrder(order specschema.WriteOrder, recv string) (string, error) {
	var b strings.Builder
	for _, d := range order.Directives {
		switch d.XMLName.Local {
		case "WriteField":
			fmt.Fprintf(&b, "\tpairs = append(pairs, %s.%sCodePairs()...)\n", recv, d.Field)
		case "WriteSpecificValue":
			fmt.Fprintf(&b, "\tpairs = append(pairs, NewStringPair(%d, %q))\n", d.Code, d.Value)
		case "Foreach":
			lv := loopVar(d.Variable)
			fmt.Fprintf(&b, "\tfor _, %s := range %s.%s {\n\t\tpairs = append(pairs, %s.CodePairs()...)\n\t}\n",
				lv, recv, d.Field, lv)
		case "WriteExtensionData":
			fmt.Fprintf(&b, "\tpairs = append(pairs, %s.ExtensionData...)\n", recv)
		default:
			return "", fmt.Errorf("codegen: unknown WriteOrder directive %q", d.XMLName.Local)
		}
	}
	return b.String(), nil
}

// writeOrderWantsExtensionData reports whether a WriteOrder includes a
// WriteExtensionData directive, in which case the generated struct needs
// an ExtensionData []CodePair field for that directive to reference.
func writeOrderWantsExtensionData(order *specschema.WriteOrder) bool {
	if order == nil {
		return false
	}
	for _, d := range order.Directives {
		if d.XMLName.Local == "WriteExtensionData" {
			return true
		}
	}
	return false
}

func loopVar(name string) string {
	if name == "" {
		return "item"
	}
	return name
}
