// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import (
	"bufio"
	"io"
	"os"
)

// Drawing is the root decoded value: a HEADER, nine fixed TABLES, and the
// ENTITIES section. Objects is populated only via DecodeObjects, never by
// Load, matching the gap this codec's reference implementation carries
// upstream (see DESIGN.md).
type Drawing struct {
	Header   *Header
	Tables   Tables
	Entities []Entity
	Objects  []Object
}

// New returns an empty drawing at the given version, with header defaults
// populated the way AutoCAD seeds a fresh drawing.
func New(version AcadVersion) *Drawing {
	return &Drawing{Header: NewHeader(version)}
}

// Load decodes a complete DXF document from r under strict Options
// (Options{}): a stream truncated mid-section is reported as
// ErrUnexpectedEOF. Use LoadOptions for Options.Lenient decoding.
func Load(r io.Reader) (*Drawing, error) {
	return LoadOptions(r, Options{})
}

// LoadOptions decodes a complete DXF document from r under opts.
func LoadOptions(r io.Reader, opts Options) (*Drawing, error) {
	pr := NewPairReaderWithOptions(r, opts)
	d := &Drawing{Header: NewHeader(R2014)}

	for {
		pair, err := pr.Next()
		if err == io.EOF {
			return d, nil
		}
		if err != nil {
			return nil, err
		}
		if pair.Code != 0 {
			return nil, ErrExpectedSection
		}
		switch pair.Value.Str {
		case "SECTION":
			if err := d.readSection(pr); err != nil {
				return nil, err
			}
		case "EOF":
			return d, nil
		default:
			return nil, ErrExpectedSection
		}
	}
}

func (d *Drawing) readSection(r *PairReader) error {
	pair, err := r.Next()
	if err != nil {
		return err
	}
	if pair.Code != 2 {
		return ErrExpectedSectionName
	}
	name := pair.Value.Str

	switch name {
	case "HEADER":
		if err := d.Header.Read(r); err != nil {
			return err
		}
	case "TABLES":
		if err := d.readTables(r); err != nil {
			return err
		}
	case "ENTITIES":
		entities, err := readEntities(r)
		if err != nil {
			return err
		}
		d.Entities = entities
	default:
		if err := swallowSection(r); err != nil {
			return err
		}
		return expectEndSec(r)
	}
	return expectEndSec(r)
}

func expectEndSec(r *PairReader) error {
	pair, err := r.Next()
	if err == io.EOF {
		return r.toleratedEOF()
	}
	if err != nil {
		return err
	}
	if pair.Code != 0 || pair.Value.Str != "ENDSEC" {
		return ErrExpectedEndSec
	}
	return nil
}

// swallowSection discards an unrecognized section's pairs up to (but not
// including) its ENDSEC pair.
func swallowSection(r *PairReader) error {
	for {
		pair, err := r.Next()
		if err == io.EOF {
			return r.toleratedEOF()
		}
		if err != nil {
			return err
		}
		if pair.Code == 0 && pair.Value.Str == "ENDSEC" {
			r.Unread(pair)
			return nil
		}
	}
}

func (d *Drawing) readTables(r *PairReader) error {
	for {
		pair, err := r.Next()
		if err == io.EOF {
			return r.toleratedEOF()
		}
		if err != nil {
			return err
		}
		if pair.Code == 0 && pair.Value.Str == "ENDSEC" {
			r.Unread(pair)
			return nil
		}
		if pair.Code != 0 || pair.Value.Str != "TABLE" {
			return structureErrorf("expected TABLE, got code %d %q", pair.Code, pair.Value.Str)
		}
		namePair, err := r.Next()
		if err != nil {
			return err
		}
		if namePair.Code != 2 {
			return ErrExpectedSectionName
		}
		tableName := namePair.Value.Str

		if err := d.readTable(r, tableName); err != nil {
			return err
		}

		endTab, err := r.Next()
		if err == io.EOF {
			return r.toleratedEOF()
		}
		if err != nil {
			return err
		}
		if endTab.Code != 0 || endTab.Value.Str != "ENDTAB" {
			return structureErrorf("expected ENDTAB, got code %d %q", endTab.Code, endTab.Value.Str)
		}
	}
}

func (d *Drawing) readTable(r *PairReader, tableName string) error {
	for {
		pair, err := r.Next()
		if err == io.EOF {
			return r.toleratedEOF()
		}
		if err != nil {
			return err
		}
		if pair.Code == 0 && pair.Value.Str == "ENDTAB" {
			r.Unread(pair)
			return nil
		}
		if pair.Code != 0 {
			// Table-level pairs ahead of the first record (the 70 entry
			// count writeTables emits, handles, subclass markers) carry
			// nothing the record model keeps; skip them.
			continue
		}
		if pair.Value.Str == "TABLE" {
			// Code 0/"TABLE" shouldn't recur here, but tolerate and skip a
			// duplicate opener defensively.
			continue
		}
		rec, ok, err := readTableRecord(r, pair.Value.Str)
		if err != nil {
			return err
		}
		if ok {
			d.Tables.appendRecord(tableName, rec)
		}
	}
}

// readEntities reads the ENTITIES section body, grouping each POLYLINE
// with its immediately following run of VERTEX children and an optional
// trailing SEQEND into a single Entity, and invoking postParse on any
// entity whose fields were coalesced from parallel code runs (SPLINE,
// LEADER, MLINE, SECTION, IMAGE, the UNDERLAY variants, WIPEOUT).
func readEntities(r *PairReader) ([]Entity, error) {
	var entities []Entity
	for {
		pair, err := r.Next()
		if err == io.EOF {
			return entities, nil
		}
		if err != nil {
			return entities, err
		}
		if pair.Code == 0 && pair.Value.Str == "ENDSEC" {
			r.Unread(pair)
			return entities, nil
		}
		if pair.Code != 0 {
			return entities, structureErrorf("expected entity type string, got code %d", pair.Code)
		}

		entity, ok, err := readEntity(r, pair.Value.Str)
		if err != nil {
			return entities, err
		}
		if !ok {
			continue
		}
		if pp, ok := entity.Specific.(interface{ postParse() }); ok {
			pp.postParse()
		}

		if poly, ok := entity.Specific.(*Polyline); ok {
			if err := collectPolylineChildren(r, poly); err != nil {
				return entities, err
			}
		}

		entities = append(entities, *entity)
	}
}

// collectPolylineChildren reads the VERTEX run (and optional SEQEND) that
// immediately follows a POLYLINE, per spec.md's polyline/vertex grouping
// rule. It stops at the first entity that isn't a VERTEX or SEQEND.
func collectPolylineChildren(r *PairReader, poly *Polyline) error {
	for {
		pair, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if pair.Code != 0 {
			return structureErrorf("expected entity type string, got code %d", pair.Code)
		}
		switch pair.Value.Str {
		case "VERTEX":
			entity, ok, err := readEntity(r, "VERTEX")
			if err != nil {
				return err
			}
			if ok {
				poly.Vertices = append(poly.Vertices, entity.Specific.(*Vertex))
			}
		case "SEQEND":
			entity, ok, err := readEntity(r, "SEQEND")
			if err != nil {
				return err
			}
			if ok {
				poly.Seqend = &entity.Common
			}
			return nil
		default:
			r.Unread(pair)
			return nil
		}
	}
}

// Save encodes the drawing as a complete DXF document: HEADER, TABLES,
// ENTITIES, then the trailing EOF marker, in that fixed order.
func (d *Drawing) Save(w io.Writer) error {
	return d.WriteTo(NewPairWriter(w))
}

// WriteTo encodes the drawing through an already-constructed PairWriter,
// letting callers (cmd/dxfdump's --trace) install a Trace tee before any
// bytes are written instead of routing everything through Save's own
// io.Writer-to-PairWriter wrapping.
func (d *Drawing) WriteTo(pw *PairWriter) error {
	if err := pw.WriteCodePair(NewStringPair(0, "SECTION")); err != nil {
		return err
	}
	if err := pw.WriteCodePair(NewStringPair(2, "HEADER")); err != nil {
		return err
	}
	if err := d.Header.Write(pw); err != nil {
		return err
	}
	if err := pw.WriteCodePair(NewStringPair(0, "ENDSEC")); err != nil {
		return err
	}

	if err := d.writeTables(pw); err != nil {
		return err
	}

	if err := pw.WriteCodePair(NewStringPair(0, "SECTION")); err != nil {
		return err
	}
	if err := pw.WriteCodePair(NewStringPair(2, "ENTITIES")); err != nil {
		return err
	}
	for _, e := range d.Entities {
		if err := writeEntity(pw, e, d.Header.Version); err != nil {
			return err
		}
	}
	if err := pw.WriteCodePair(NewStringPair(0, "ENDSEC")); err != nil {
		return err
	}

	return pw.WriteCodePair(NewStringPair(0, "EOF"))
}

func (d *Drawing) writeTables(pw *PairWriter) error {
	if err := pw.WriteCodePair(NewStringPair(0, "SECTION")); err != nil {
		return err
	}
	if err := pw.WriteCodePair(NewStringPair(2, "TABLES")); err != nil {
		return err
	}
	for _, name := range tableOrder {
		records := d.Tables.recordsFor(name)
		if err := pw.WriteCodePair(NewStringPair(0, "TABLE")); err != nil {
			return err
		}
		if err := pw.WriteCodePair(NewStringPair(2, name)); err != nil {
			return err
		}
		if err := pw.WriteCodePair(NewIntPair(70, int32(len(records)))); err != nil {
			return err
		}
		for _, rec := range records {
			if err := writeTableRecord(pw, rec); err != nil {
				return err
			}
		}
		if err := pw.WriteCodePair(NewStringPair(0, "ENDTAB")); err != nil {
			return err
		}
	}
	return pw.WriteCodePair(NewStringPair(0, "ENDSEC"))
}

// LoadFile opens path and decodes it as a drawing under DefaultOptions
// (BOM stripped, strict structural errors).
func LoadFile(path string) (*Drawing, error) {
	return LoadFileOptions(path, DefaultOptions())
}

// LoadFileOptions opens path and decodes it as a drawing under opts.
func LoadFileOptions(path string, opts Options) (*Drawing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError(err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	var r io.Reader = br
	if opts.StripBOM {
		r, err = StripBOM(br)
		if err != nil {
			return nil, err
		}
	}
	return LoadOptions(r, opts)
}

// SaveFile encodes the drawing to path, creating or truncating it.
func (d *Drawing) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return ioError(err)
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	if err := d.Save(bw); err != nil {
		return err
	}
	return bw.Flush()
}
