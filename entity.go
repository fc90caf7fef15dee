// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

// EntityCommon holds the fields shared by every entity: the ENTITY subclass
// marker's worth of bookkeeping (handle, layer, color, visibility...)
// common to every concrete entity type. Mirrors dxf-rs's EntityCommon.
type EntityCommon struct {
	Handle            string
	OwnerHandle       string
	Layer             string
	LineType          string
	Color             Color
	LineTypeScale     float64
	IsVisible         bool
	LineWeight        LineWeight
	Transparency      int32
	TrueColor         *int32
	EntityHandle370   bool // whether LineWeight was explicitly present
}

// NewEntityCommon returns the documented per-entity defaults.
func NewEntityCommon() EntityCommon {
	return EntityCommon{
		Layer:         "0",
		LineType:      "BYLAYER",
		Color:         ByLayerColor,
		LineTypeScale: 1.0,
		IsVisible:     true,
		LineWeight:    ByLayerLineWeight,
	}
}

// EntityType is implemented by every concrete entity variant (*Line,
// *Circle, *Insert, ...). Go has no sum types, so the generator emits one
// concrete pointer-receiver type per DXF entity and this interface plus a
// type switch stand in for dxf-rs's EntityType enum; see doc.go.
type EntityType interface {
	typeString() string
	isSupportedOnVersion(v AcadVersion) bool
	tryApplyCodePair(pair CodePair) (bool, error)
	writeSpecific(w *PairWriter, common EntityCommon) error
}

// Entity pairs an EntityCommon with its type-specific payload.
type Entity struct {
	Common   EntityCommon
	Specific EntityType
}

// entityConstructors maps to the function that builds a zero-valued, default-populated EntityType for
// a given DXF type string (e.g. "LINE", "CIRCLE", "3DFACE").
var entityConstructors = map[string]func() EntityType{}

func registerEntityType(names []string, ctor func() EntityType) {
	for _, n := range names {
		entityConstructors[n] = ctor
	}
}

// newEntitySpecific looks up the constructor for a DXF type string.
func newEntitySpecific(typeString string) (EntityType, bool) {
	ctor, ok := entityConstructors[typeString]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// customEntityReader is implemented by entity types whose group-code
// layout can't be described by flat field tables (MTEXT, LWPOLYLINE).
// readEntity consults this before falling back to tryApplyCodePair.
type customEntityReader interface {
	readCustom(r *PairReader, common *EntityCommon) error
}

const entitySubclassGuardCode = 100
