// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import "io"

// ObjectCommon holds the fields shared by every non-graphical OBJECTS
// section entry.
type ObjectCommon struct {
	Handle      string
	OwnerHandle string
}

// ObjectType is implemented by each concrete object variant (*Dictionary,
// *XRecord, *Layout, *MLineStyle).
type ObjectType interface {
	typeString() string
	tryApplyCodePair(pair CodePair) (bool, error)
	writeSpecific(w *PairWriter) error
}

// Object pairs an ObjectCommon with its type-specific payload.
type Object struct {
	Common   ObjectCommon
	Specific ObjectType
}

var objectConstructors = map[string]func() ObjectType{}

func registerObjectType(name string, ctor func() ObjectType) {
	objectConstructors[name] = ctor
}

func readObject(r *PairReader, typeString string) (*Object, bool, error) {
	ctor, ok := objectConstructors[typeString]
	if !ok {
		if err := swallowEntityBody(r); err != nil {
			return nil, false, err
		}
		return nil, false, nil
	}
	specific := ctor()
	var common ObjectCommon

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
		case 100:
			// subclass marker, guard only
		default:
			if _, err := specific.tryApplyCodePair(pair); err != nil {
				return nil, false, err
			}
		}
	}
	return &Object{Common: common, Specific: specific}, true, nil
}

func writeObject(w *PairWriter, obj Object) error {
	if err := w.WriteCodePair(NewStringPair(0, obj.Specific.typeString())); err != nil {
		return err
	}
	if obj.Common.Handle != "" {
		if err := w.WriteCodePair(NewStringPair(5, obj.Common.Handle)); err != nil {
			return err
		}
	}
	if obj.Common.OwnerHandle != "" {
		if err := w.WriteCodePair(NewStringPair(330, obj.Common.OwnerHandle)); err != nil {
			return err
		}
	}
	return obj.Specific.writeSpecific(w)
}

// DecodeObjects reads a standalone OBJECTS section body (the "0 SECTION" /
// "2 OBJECTS" framing already consumed) into a slice of Objects. This is a
// standalone helper rather than something Drawing.Load calls automatically:
// the upstream format this codec is modeled on never gained first-class
// Drawing.Objects support either, so callers opt in explicitly. See
// DESIGN.md.
func DecodeObjects(r *PairReader) ([]Object, error) {
	var objects []Object
	for {
		pair, err := r.Next()
		if err != nil {
			return objects, err
		}
		if pair.Code == 0 && pair.Value.Str == "ENDSEC" {
			return objects, nil
		}
		if pair.Code != 0 {
			return objects, structureErrorf("expected object type string, got code %d", pair.Code)
		}
		obj, ok, err := readObject(r, pair.Value.Str)
		if err != nil {
			return objects, err
		}
		if ok {
			objects = append(objects, *obj)
		}
	}
}

// EncodeObjects writes objects as a complete OBJECTS section, including
// the SECTION/ENDSEC framing pairs.
func EncodeObjects(w *PairWriter, objects []Object) error {
	if err := w.WriteCodePair(NewStringPair(0, "SECTION")); err != nil {
		return err
	}
	if err := w.WriteCodePair(NewStringPair(2, "OBJECTS")); err != nil {
		return err
	}
	for _, obj := range objects {
		if err := writeObject(w, obj); err != nil {
			return err
		}
	}
	return w.WriteCodePair(NewStringPair(0, "ENDSEC"))
}
