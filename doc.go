// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

// Package dxf reads and writes AutoCAD DXF drawing files: the ASCII,
// version-tagged interchange format for 2D/3D CAD geometry and metadata.
//
// A drawing is decomposed into sections (HEADER, TABLES, ENTITIES, ...).
// This package implements the core of a DXF codec: the code-pair lexer and
// emitter that frames the file, the schema-driven entity/table/header model
// that turns a flat code-pair stream into a typed object graph and back, and
// (in internal/codegen and internal/specschema) the build-time code
// generator that derives that typed model from an XML specification of CAD
// entities.
//
//	drawing, err := dxf.LoadFile("path/to/file.dxf")
//	for _, e := range drawing.Entities {
//		switch line := e.Specific.(type) {
//		case *Line:
//			// do something with the line
//		}
//	}
//
// I/O binding to disk, geometry algorithms, and the DXB/DWG binary variants
// are out of scope; a buffered byte stream is the contract.
package dxf
