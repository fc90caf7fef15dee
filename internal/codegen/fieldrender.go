// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caddxf/dxf/internal/specschema"
)

// scalarKinds' ctor/value name the NewXPair constructor and Value struct field
// backing a scalar Field's group code, keyed by the Field's Type attribute.
// Point/Vector/Pointer fields don't go through this table — they have
// their own set()/writePairs() methods and a raw handle string.
var scalarKinds = map[string]struct{ ctor, value string }{
	"double": {"NewDoublePair", "Double"},
	"short":  {"NewShortPair", "Short"},
	"int":    {"NewIntPair", "Int"},
	"long":   {"NewLongPair", "Long"},
	"string": {"NewStringPair", "Str"},
	"bool":   {"NewBoolPair", "Bool"},
}

func isPointLike(specType string) bool {
	return specType == "Point" || specType == "Vector"
}

// defaultValueExpr renders a Field's DefaultValue attribute as a Go
// expression of the field's own type. Point/Vector fields use either a
// bare identifier (DefaultValue="ZAxis", referencing the package-level
// var) or a "{x,y,z}" literal (DefaultValue="{1,1,1}"); every other type
// renders as a plain Go literal of the matching kind.
func defaultValueExpr(f specschema.Field) string {
	raw := f.DefaultValue
	if raw == "" {
		return ""
	}
	if isPointLike(f.Type) {
		if strings.HasPrefix(raw, "{") && strings.HasSuffix(raw, "}") {
			parts := strings.Split(strings.Trim(raw, "{}"), ",")
			for i, p := range parts {
				parts[i] = strings.TrimSpace(p)
			}
			return fmt.Sprintf("%s{%s}", f.Type, strings.Join(parts, ", "))
		}
		// A bare identifier like "ZAxis" references a package-level var.
		return raw
	}
	if f.Type == "string" {
		return strconv.Quote(raw)
	}
	return raw
}

func renderStructFields(t specschema.TypeSpec) string {
	var b strings.Builder
	for _, f := range t.Fields {
		goType := goFieldType(f.Type)
		if f.AllowMultiples {
			goType = "[]" + goType
		}
		fmt.Fprintf(&b, "\t%s %s\n", f.Name, goType)
	}
	for _, p := range t.Pointers {
		fmt.Fprintf(&b, "\t%s string\n", p.Name)
	}
	return b.String()
}

func renderCtorBody(t specschema.TypeSpec) string {
	var b strings.Builder
	for _, f := range t.Fields {
		if f.AllowMultiples || f.DefaultValue == "" {
			continue
		}
		fmt.Fprintf(&b, "\t\t%s: %s,\n", f.Name, defaultValueExpr(f))
	}
	return b.String()
}

// renderFlagAccessors emits a get/set pair per Flag, masking/unmasking the
// sibling int16 field conventionally named "Flags" (see specschema.Flag's
// doc comment). Every real spec.xml Flag usage masks that field; a Flag
// declared without one is silently skipped rather than emitting code that
// references a field that doesn't exist.
func renderFlagAccessors(t specschema.TypeSpec, recv string) string {
	if len(t.Flags) == 0 {
		return ""
	}
	hasFlags := false
	for _, f := range t.Fields {
		if f.Name == "Flags" {
			hasFlags = true
		}
	}
	if !hasFlags {
		return ""
	}
	var b strings.Builder
	for _, fl := range t.Flags {
		fmt.Fprintf(&b, "func (%s *%s) %s() bool { return %s.Flags&%d != 0 }\n",
			recv, t.Name, fl.Name, recv, fl.Mask)
		fmt.Fprintf(&b, "func (%s *%s) Set%s(v bool) {\n", recv, t.Name, fl.Name)
		fmt.Fprintf(&b, "\tif v {\n\t\t%s.Flags |= %d\n\t} else {\n\t\t%s.Flags &^= %d\n\t}\n}\n",
			recv, fl.Mask, recv, fl.Mask)
	}
	return b.String()
}

// renderFieldAccessors emits a <Field>CodePairs() method per field,
// returning the code pair(s) that field alone writes to. Plain data
// fields, not interface methods — writeSpecific's default dump doesn't
// call these (it builds pairs directly); they exist so a WriteOrder's
// WriteField directive has a concrete, real method to call.
func renderFieldAccessors(t specschema.TypeSpec, recv string) string {
	if t.WriteOrder == nil {
		return ""
	}
	var b strings.Builder
	for _, f := range t.Fields {
		if f.AllowMultiples {
			continue
		}
		fmt.Fprintf(&b, "func (%s *%s) %sCodePairs() []CodePair {\n", recv, t.Name, f.Name)
		if isPointLike(f.Type) {
			fmt.Fprintf(&b, "\treturn %s.%s.writePairs(%d)\n}\n", recv, f.Name, f.Code)
			continue
		}
		kind, ok := scalarKinds[f.Type]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\treturn []CodePair{%s(%d, %s.%s)}\n}\n", kind.ctor, f.Code, recv, f.Name)
	}
	for _, p := range t.Pointers {
		fmt.Fprintf(&b, "func (%s *%s) %sCodePairs() []CodePair {\n", recv, t.Name, p.Name)
		fmt.Fprintf(&b, "\treturn []CodePair{NewStringPair(%d, %s.%s)}\n}\n", p.Code, recv, p.Name)
	}
	return b.String()
}

// renderTryApplyCases renders the body of a switch{} inside
// tryApplyCodePair: one case per Field/Pointer, Point/Vector fields
// dispatched through their own set() method, everything else compared by
// code and assigned via the Value struct field matching its declared
// Type.
func renderTryApplyCases(t specschema.TypeSpec, recv string) (string, error) {
	var b strings.Builder
	for _, f := range t.Fields {
		if isPointLike(f.Type) {
			fmt.Fprintf(&b, "\tcase %s.%s.set(p, %d):\n", recv, f.Name, f.Code)
			continue
		}
		kind, ok := scalarKinds[f.Type]
		if !ok {
			return "", fmt.Errorf("field %s: unsupported type %q", f.Name, f.Type)
		}
		fmt.Fprintf(&b, "\tcase p.Code == %d:\n", f.Code)
		if f.AllowMultiples {
			fmt.Fprintf(&b, "\t\t%s.%s = append(%s.%s, p.Value.%s)\n", recv, f.Name, recv, f.Name, kind.value)
		} else {
			fmt.Fprintf(&b, "\t\t%s.%s = p.Value.%s\n", recv, f.Name, kind.value)
		}
	}
	for _, p := range t.Pointers {
		fmt.Fprintf(&b, "\tcase p.Code == %d:\n\t\t%s.%s = p.Value.Str\n", p.Code, recv, p.Name)
	}
	return b.String(), nil
}

// renderWriteBody renders the statements writeSpecific builds pairs with,
// not including the trailing writeAll(w, pairs) call. A WriteOrder
// overrides the default declaration-order dump with directive-driven
// output (see writeorder.go); absent one, fields and pointers are written
// in declaration order, honoring DisableWritingDefault.
func renderWriteBody(t specschema.TypeSpec, recv string) (string, error) {
	var b strings.Builder
	if t.SubclassMarker != "" {
		fmt.Fprintf(&b, "\tpairs = append(pairs, NewStringPair(100, %q))\n", t.SubclassMarker)
	}

	if t.WriteOrder != nil {
		rendered, err := RenderWriteOrder(*t.WriteOrder, recv)
		if err != nil {
			return "", err
		}
		b.WriteString(rendered)
		return b.String(), nil
	}

	for _, f := range t.Fields {
		switch {
		case isPointLike(f.Type):
			fmt.Fprintf(&b, "\tpairs = append(pairs, %s.%s.writePairs(%d)...)\n", recv, f.Name, f.Code)
		case f.AllowMultiples:
			kind := scalarKinds[f.Type]
			fmt.Fprintf(&b, "\tfor _, v := range %s.%s {\n\t\tpairs = append(pairs, %s(%d, v))\n\t}\n",
				recv, f.Name, kind.ctor, f.Code)
		case f.DisableWritingDefault && f.DefaultValue != "":
			kind := scalarKinds[f.Type]
			fmt.Fprintf(&b, "\tif %s.%s != %s {\n\t\tpairs = append(pairs, %s(%d, %s.%s))\n\t}\n",
				recv, f.Name, defaultValueExpr(f), kind.ctor, f.Code, recv, f.Name)
		default:
			kind := scalarKinds[f.Type]
			fmt.Fprintf(&b, "\tpairs = append(pairs, %s(%d, %s.%s))\n", kind.ctor, f.Code, recv, f.Name)
		}
	}
	for _, p := range t.Pointers {
		fmt.Fprintf(&b, "\tif %s.%s != \"\" {\n\t\tpairs = append(pairs, NewStringPair(%d, %s.%s))\n\t}\n",
			recv, p.Name, p.Code, recv, p.Name)
	}
	return b.String(), nil
}
