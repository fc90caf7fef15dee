// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import "io"

// TableRecordCommon holds the fields shared by every table record.
type TableRecordCommon struct {
	Handle      string
	OwnerHandle string
	Name        string
}

// TableRecordType is implemented by each concrete table record variant
// (*Layer, *LineTypeRecord, *Style, ...) — the same interface-plus-
// type-switch substitute for a Rust enum used by EntityType.
type TableRecordType interface {
	typeString() string
	tryApplyCodePair(pair CodePair) (bool, error)
	writeSpecific(w *PairWriter) error
}

// TableRecord pairs a TableRecordCommon with its type-specific payload.
type TableRecord struct {
	Common   TableRecordCommon
	Specific TableRecordType
}

var tableRecordConstructors = map[string]func() TableRecordType{}

func registerTableRecordType(name string, ctor func() TableRecordType) {
	tableRecordConstructors[name] = ctor
}

// readTableRecord reads one table record given its already-consumed
// "0 <TYPE>" pair.
func readTableRecord(r *PairReader, typeString string) (*TableRecord, bool, error) {
	ctor, ok := tableRecordConstructors[typeString]
	if !ok {
		if err := swallowEntityBody(r); err != nil {
			return nil, false, err
		}
		return nil, false, nil
	}
	specific := ctor()
	var common TableRecordCommon

	for {
		pair, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, false, err
		}
		if pair.Code == 0 {
			r.Unread(pair)
			break
		}
		switch pair.Code {
		case 5:
			common.Handle = pair.Value.Str
		case 330:
			common.OwnerHandle = pair.Value.Str
		case 2:
			common.Name = pair.Value.Str
		case 100:
			// subclass marker, guard only
		default:
			if _, err := specific.tryApplyCodePair(pair); err != nil {
				return nil, false, err
			}
		}
	}
	return &TableRecord{Common: common, Specific: specific}, true, nil
}

func writeTableRecord(w *PairWriter, rec TableRecord) error {
	if err := w.WriteCodePair(NewStringPair(0, rec.Specific.typeString())); err != nil {
		return err
	}
	if rec.Common.Handle != "" {
		if err := w.WriteCodePair(NewStringPair(5, rec.Common.Handle)); err != nil {
			return err
		}
	}
	if rec.Common.OwnerHandle != "" {
		if err := w.WriteCodePair(NewStringPair(330, rec.Common.OwnerHandle)); err != nil {
			return err
		}
	}
	if err := w.WriteCodePair(NewStringPair(2, rec.Common.Name)); err != nil {
		return err
	}
	return rec.Specific.writeSpecific(w)
}

// Tables aggregates the drawing's nine fixed table kinds. Each is a named
// slice rather than a generic map-of-tables, matching how dxf-rs's Drawing
// exposes app_ids/block_records/dim_styles/layers/line_types/styles/
// ucs/views/view_ports as distinct typed fields.
type Tables struct {
	AppIds       []*AppId
	BlockRecords []*BlockRecord
	DimStyles    []*DimStyle
	Layers       []*Layer
	LineTypes    []*LineTypeRecord
	Styles       []*Style
	Ucs          []*Ucs
	Views        []*View
	ViewPorts    []*ViewPort
}

// appendRecord routes a decoded TableRecord into the right slice by the
// DXF table name it was read under (e.g. "LAYER", "STYLE").
func (t *Tables) appendRecord(tableName string, rec *TableRecord) {
	switch tableName {
	case "APPID":
		if v, ok := rec.Specific.(*AppId); ok {
			v.Common = rec.Common
			t.AppIds = append(t.AppIds, v)
		}
	case "BLOCK_RECORD":
		if v, ok := rec.Specific.(*BlockRecord); ok {
			v.Common = rec.Common
			t.BlockRecords = append(t.BlockRecords, v)
		}
	case "DIMSTYLE":
		if v, ok := rec.Specific.(*DimStyle); ok {
			v.Common = rec.Common
			t.DimStyles = append(t.DimStyles, v)
		}
	case "LAYER":
		if v, ok := rec.Specific.(*Layer); ok {
			v.Common = rec.Common
			t.Layers = append(t.Layers, v)
		}
	case "LTYPE":
		if v, ok := rec.Specific.(*LineTypeRecord); ok {
			v.Common = rec.Common
			t.LineTypes = append(t.LineTypes, v)
		}
	case "STYLE":
		if v, ok := rec.Specific.(*Style); ok {
			v.Common = rec.Common
			t.Styles = append(t.Styles, v)
		}
	case "UCS":
		if v, ok := rec.Specific.(*Ucs); ok {
			v.Common = rec.Common
			t.Ucs = append(t.Ucs, v)
		}
	case "VIEW":
		if v, ok := rec.Specific.(*View); ok {
			v.Common = rec.Common
			t.Views = append(t.Views, v)
		}
	case "VPORT":
		if v, ok := rec.Specific.(*ViewPort); ok {
			v.Common = rec.Common
			t.ViewPorts = append(t.ViewPorts, v)
		}
	}
}

// tableOrder is the fixed write order for the nine table kinds.
var tableOrder = []string{"APPID", "BLOCK_RECORD", "DIMSTYLE", "LTYPE", "LAYER", "STYLE", "UCS", "VIEW", "VPORT"}

func (t *Tables) recordsFor(tableName string) []TableRecord {
	switch tableName {
	case "APPID":
		return wrapRecords(t.AppIds, func(v *AppId) TableRecordCommon { return v.Common })
	case "BLOCK_RECORD":
		return wrapRecords(t.BlockRecords, func(v *BlockRecord) TableRecordCommon { return v.Common })
	case "DIMSTYLE":
		return wrapRecords(t.DimStyles, func(v *DimStyle) TableRecordCommon { return v.Common })
	case "LTYPE":
		return wrapRecords(t.LineTypes, func(v *LineTypeRecord) TableRecordCommon { return v.Common })
	case "LAYER":
		return wrapRecords(t.Layers, func(v *Layer) TableRecordCommon { return v.Common })
	case "STYLE":
		return wrapRecords(t.Styles, func(v *Style) TableRecordCommon { return v.Common })
	case "UCS":
		return wrapRecords(t.Ucs, func(v *Ucs) TableRecordCommon { return v.Common })
	case "VIEW":
		return wrapRecords(t.Views, func(v *View) TableRecordCommon { return v.Common })
	case "VPORT":
		return wrapRecords(t.ViewPorts, func(v *ViewPort) TableRecordCommon { return v.Common })
	}
	return nil
}

func wrapRecords[T TableRecordType](items []T, common func(T) TableRecordCommon) []TableRecord {
	recs := make([]TableRecord, len(items))
	for i, it := range items {
		recs[i] = TableRecord{Common: common(it), Specific: it}
	}
	return recs
}
