// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

// customHeaderVariables holds the system variables whose apply/write logic
// isn't a plain typed-field mapping (spec/HeaderVariables.xml marks these
// Custom="true", the header analogue of an entity's
// GenerateReaderFunction="false"): $ACADVER parses/formats through
// AcadVersion rather than a scalar field, and $LUNITS/$ANGDIR store into an
// enum type instead of the raw short. header_gen.go's table splices
// these in by name at the position HeaderVariables.xml declares
// them, so canonical write order is unaffected by which file defines what.
var customHeaderVariables = map[string]headerVariable{
	"$ACADVER": v("$ACADVER", R9,
		func(h *Header, values []CodePair) {
			for _, p := range values {
				if p.Code == 1 {
					h.Version = ParseAcadVersion(p.Value.Str)
				}
			}
		},
		func(h *Header) []CodePair { return []CodePair{NewStringPair(1, h.Version.String())} }),

	"$LUNITS": v("$LUNITS", R9,
		func(h *Header, values []CodePair) {
			for _, p := range values {
				if p.Code == 70 {
					h.LinearUnitFormat = UnitFormat(p.Value.Short)
				}
			}
		},
		func(h *Header) []CodePair { return []CodePair{NewShortPair(70, int16(h.LinearUnitFormat))} }),

	"$ANGDIR": v("$ANGDIR", R9,
		func(h *Header, values []CodePair) {
			for _, p := range values {
				if p.Code == 70 {
					h.AngularUnitDirection = AngleDirection(p.Value.Short)
				}
			}
		},
		func(h *Header) []CodePair {
			return []CodePair{NewShortPair(70, int16(h.AngularUnitDirection))}
		}),
}
