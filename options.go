// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

// Options configures Load/LoadFile, the way pe.Options configures
// pe.New: a value type passed alongside the primary argument rather than
// a chain of functional setters.
type Options struct {
	// Lenient tolerates a stream that ends mid-section, mid-table, or
	// mid-header instead of a clean 0/ENDSEC, 0/ENDTAB, or further header
	// variable. Strict (false) by default: a truncated file is reported as
	// ErrUnexpectedEOF.
	Lenient bool

	// StripBOM strips a UTF-8 byte-order mark before decoding. Only
	// consulted by LoadFile, which owns opening the file; Load decodes
	// whatever r already yields, so a caller that needs BOM stripping on
	// an arbitrary io.Reader calls StripBOM itself before Load.
	StripBOM bool
}

// DefaultOptions returns the Options LoadFile uses when called without an
// explicit value: strict structural errors, BOM stripped.
func DefaultOptions() Options {
	return Options{StripBOM: true}
}
