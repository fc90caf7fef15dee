// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

// Package specschema decodes the XML spec files (EntitiesSpec.xml,
// ObjectsSpec.xml, TableSpec.xml, HeaderVariables.xml) that
// cmd/dxfgen reads to emit the generated *_gen.go sources. Mirrors the
// shape entity_generator.rs's XML loader assumes.
package specschema

import (
	"encoding/xml"
	"fmt"
	"os"
)

// Field describes one scalar/struct field on an entity, table record, or
// object: its Go name, its group code(s), and the gating/formatting
// attributes the generator needs to decide how to read, write, and
// default it.
type Field struct {
	XMLName             xml.Name `xml:"Field"`
	Name                string   `xml:"Name,attr"`
	Type                string   `xml:"Type,attr"`
	Code                int      `xml:"Code,attr"`
	Codes               string   `xml:"Codes,attr,omitempty"`
	DefaultValue         string  `xml:"DefaultValue,attr,omitempty"`
	MinVersion            string `xml:"MinVersion,attr,omitempty"`
	MaxVersion            string `xml:"MaxVersion,attr,omitempty"`
	DisableWritingDefault bool   `xml:"DisableWritingDefault,attr,omitempty"`
	Accessibility         string `xml:"Accessibility,attr,omitempty"`
	GenerateReaderFunction bool  `xml:"GenerateReaderFunction,attr,omitempty"`
	AllowMultiples        bool   `xml:"AllowMultiples,attr,omitempty"`
}

// Pointer describes a handle-valued field pointing at another object/
// record, distinguishing soft (330) and hard (360) ownership.
type Pointer struct {
	XMLName xml.Name `xml:"Pointer"`
	Name    string   `xml:"Name,attr"`
	Code    int      `xml:"Code,attr"`
	IsHard  bool     `xml:"IsHard,attr,omitempty"`
}

// Flag describes one bit of a bitmask-typed Field (usually group code 70,
// named "Flags" by convention across every *Spec.xml file this generator
// reads). Each produces a get/set accessor pair: Name() reads the bit,
// SetName(bool) sets or clears it.
type Flag struct {
	XMLName xml.Name `xml:"Flag"`
	Name    string   `xml:"Name,attr"`
	Mask    int64    `xml:"Mask,attr"`
}

// WriteOrderDirective is one instruction in a WriteOrder element's mini-
// language: WriteField, WriteSpecificValue, Foreach, or
// WriteExtensionData.
type WriteOrderDirective struct {
	XMLName  xml.Name `xml:""`
	Field    string   `xml:"Field,attr,omitempty"`
	Code     int      `xml:"Code,attr,omitempty"`
	Value    string   `xml:"Value,attr,omitempty"`
	Variable string   `xml:"Variable,attr,omitempty"`
}

// WriteOrder is an ordered list of directives overriding declaration-order
// emission for one entity/table/object type.
type WriteOrder struct {
	XMLName    xml.Name `xml:"WriteOrder"`
	Directives []WriteOrderDirective `xml:",any"`
}

// TypeSpec is one <Entity>/<TableRecord>/<Object>/<ClassOrStruct> element:
// a concrete DXF type plus its fields, pointers, flags, and write order.
type TypeSpec struct {
	Name                 string    `xml:"Name,attr"`
	BaseClass            string    `xml:"BaseClass,attr,omitempty"`
	TypeString           string    `xml:"TypeString,attr"`
	SubclassMarker       string    `xml:"SubclassMarker,attr,omitempty"`
	MinVersion           string    `xml:"MinVersion,attr,omitempty"`
	GenerateReaderFunctionAttr string `xml:"GenerateReaderFunction,attr,omitempty"`
	Fields               []Field   `xml:"Field"`
	Pointers             []Pointer `xml:"Pointer"`
	Flags                []Flag    `xml:"Flag"`
	WriteOrder           *WriteOrder `xml:"WriteOrder"`
}

// Generated reports whether the generator should emit this type's struct
// and methods at all. GenerateReaderFunction="false" (MTEXT, LWPOLYLINE)
// marks a type whose group-code layout depends on read order or other
// state a flat field table can't express; its full definition, including
// the struct itself, lives hand-written instead (MTEXT in
// entity_custom.go, LWPOLYLINE in entity_gen.go), and the generator must produce nothing for it to avoid a
// duplicate declaration.
func (t TypeSpec) Generated() bool {
	return t.GenerateReaderFunctionAttr != "false"
}

// TypeStrings splits TypeString on '|'; the first alias is canonical for
// write, every alias is recognized on read. Matches
// entity_generator.rs::generate_type_string's from_type_string/
// to_type_string split.
func (t TypeSpec) TypeStrings() []string {
	var out []string
	cur := ""
	for _, r := range t.TypeString {
		if r == '|' {
			if cur != "" {
				out = append(out, cur)
			}
			cur = ""
			continue
		}
		cur += string(r)
	}
	if cur != "" {
		out = append(out, cur)
	}
	return out
}

// EntitiesSpec is the root element of EntitiesSpec.xml.
type EntitiesSpec struct {
	XMLName xml.Name   `xml:"Entities"`
	Types   []TypeSpec `xml:"Entity"`
}

// ObjectsSpec is the root element of ObjectsSpec.xml.
type ObjectsSpec struct {
	XMLName xml.Name   `xml:"Objects"`
	Types   []TypeSpec `xml:"Object"`
}

// TablesSpec is the root element of TableSpec.xml.
type TablesSpec struct {
	XMLName xml.Name   `xml:"Tables"`
	Types   []TypeSpec `xml:"TableRecord"`
}

// HeaderVariable is one <Variable> element in HeaderVariables.xml.
type HeaderVariable struct {
	Name       string `xml:"Name,attr"`
	Code       int    `xml:"Code,attr"`
	Type       string `xml:"Type,attr"`
	DefaultValue string `xml:"DefaultValue,attr,omitempty"`
	MinVersion string `xml:"MinVersion,attr,omitempty"`

	// FieldName is the Header struct field this variable reads/writes.
	// Required unless Custom is set.
	FieldName string `xml:"FieldName,attr,omitempty"`

	// Custom marks a variable whose apply/write logic isn't a plain
	// pointVar/doubleVar/shortVar/boolVar/stringVar/colorVar mapping
	// (e.g. $ACADVER's string<->AcadVersion parse, $LUNITS/$ANGDIR's
	// enum cast) and is hand-written in header_custom.go instead.
	Custom bool `xml:"Custom,attr,omitempty"`
}

// HeaderVariablesSpec is the root element of HeaderVariables.xml.
type HeaderVariablesSpec struct {
	XMLName   xml.Name         `xml:"HeaderVariables"`
	Variables []HeaderVariable `xml:"Variable"`
}

// LoadEntities parses an EntitiesSpec.xml file.
func LoadEntities(path string) (*EntitiesSpec, error) {
	var spec EntitiesSpec
	if err := loadXML(path, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadObjects parses an ObjectsSpec.xml file.
func LoadObjects(path string) (*ObjectsSpec, error) {
	var spec ObjectsSpec
	if err := loadXML(path, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadTables parses a TableSpec.xml file.
func LoadTables(path string) (*TablesSpec, error) {
	var spec TablesSpec
	if err := loadXML(path, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadHeaderVariables parses a HeaderVariables.xml file.
func LoadHeaderVariables(path string) (*HeaderVariablesSpec, error) {
	var spec HeaderVariablesSpec
	if err := loadXML(path, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

func loadXML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("specschema: reading %s: %w", path, err)
	}
	if err := xml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("specschema: parsing %s: %w", path, err)
	}
	return nil
}
