// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import "io"

// applyCommonCodePair applies one of EntityCommon's group codes. It reports
// whether the code belonged to the common set at all; callers fall through
// to the specific type's tryApplyCodePair otherwise.
func applyCommonCodePair(c *EntityCommon, pair CodePair) bool {
	switch pair.Code {
	case 5:
		c.Handle = pair.Value.Str
	case 330:
		c.OwnerHandle = pair.Value.Str
	case 8:
		c.Layer = pair.Value.Str
	case 6:
		c.LineType = pair.Value.Str
	case 62:
		c.Color = colorFromRawValue(pair.Value.Short)
	case 48:
		c.LineTypeScale = pair.Value.Double
	case 60:
		c.IsVisible = pair.Value.Short == 0
	case 370:
		c.LineWeight = LineWeightFromValue(pair.Value.Short)
		c.EntityHandle370 = true
	case 420:
		tc := pair.Value.Int
		c.TrueColor = &tc
	case 440:
		c.Transparency = pair.Value.Int
	case 100:
		// subclass marker, guard only
	default:
		return false
	}
	return true
}

// writeCommonCodePairs emits EntityCommon's group codes, eliding fields at
// their default value.
func writeCommonCodePairs(c EntityCommon) []CodePair {
	var pairs []CodePair
	if c.Handle != "" {
		pairs = append(pairs, NewStringPair(5, c.Handle))
	}
	if c.OwnerHandle != "" {
		pairs = append(pairs, NewStringPair(330, c.OwnerHandle))
	}
	pairs = append(pairs, NewStringPair(8, c.Layer))
	if c.LineType != "BYLAYER" {
		pairs = append(pairs, NewStringPair(6, c.LineType))
	}
	if !c.Color.IsByLayer() {
		pairs = append(pairs, NewShortPair(62, c.Color.RawValue()))
	}
	if c.LineTypeScale != 1.0 {
		pairs = append(pairs, NewDoublePair(48, c.LineTypeScale))
	}
	if !c.IsVisible {
		pairs = append(pairs, NewShortPair(60, 1))
	}
	if c.EntityHandle370 {
		pairs = append(pairs, NewShortPair(370, c.LineWeight.RawValue()))
	}
	if c.TrueColor != nil {
		pairs = append(pairs, NewIntPair(420, *c.TrueColor))
	}
	if c.Transparency != 0 {
		pairs = append(pairs, NewIntPair(440, c.Transparency))
	}
	return pairs
}

// readEntity reads one entity's body given its already-consumed "0 <TYPE>"
// pair. It returns (nil, false, nil) for an unrecognized type string, which
// the caller swallows the same way an unknown section or table is
// swallowed.
func readEntity(r *PairReader, typeString string) (*Entity, bool, error) {
	specific, ok := newEntitySpecific(typeString)
	if !ok {
		if err := swallowEntityBody(r); err != nil {
			return nil, false, err
		}
		return nil, false, nil
	}

	common := NewEntityCommon()

	if custom, ok := specific.(customEntityReader); ok {
		if err := custom.readCustom(r, &common); err != nil {
			return nil, false, err
		}
		return &Entity{Common: common, Specific: specific}, true, nil
	}

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
		if applyCommonCodePair(&common, pair) {
			continue
		}
		if _, err := specific.tryApplyCodePair(pair); err != nil {
			return nil, false, err
		}
	}
	return &Entity{Common: common, Specific: specific}, true, nil
}

// swallowEntityBody discards an unrecognized entity's pairs up to (but not
// including) the next code-0 pair.
func swallowEntityBody(r *PairReader) error {
	for {
		pair, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if pair.Code == 0 {
			r.Unread(pair)
			return nil
		}
	}
}

// writeEntity emits an entity's "0 <TYPE>" pair, common fields, and
// type-specific fields, in that order.
func writeEntity(w *PairWriter, e Entity, version AcadVersion) error {
	if !e.Specific.isSupportedOnVersion(version) {
		return nil
	}
	if err := w.WriteCodePair(NewStringPair(0, e.Specific.typeString())); err != nil {
		return err
	}
	for _, p := range writeCommonCodePairs(e.Common) {
		if err := w.WriteCodePair(p); err != nil {
			return err
		}
	}
	return e.Specific.writeSpecific(w, e.Common)
}
