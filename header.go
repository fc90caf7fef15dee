// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import "io"

// Header holds the drawing's HEADER section: a flat bag of named system
// variables. Only the variables in headerVariableTable (header_gen.go) are
// tracked; any others encountered on read are preserved in Custom.
type Header struct {
	Version        AcadVersion
	HandlesEnabled bool // derived: true for Version >= R13, not itself a variable

	DrawingCodePage string
	HandSeed        string

	InsertionBase Point
	ExtMin        Point
	ExtMax        Point
	LimMin        Point
	LimMax        Point

	OrthoMode      bool
	RegenMode      bool
	FillMode       bool
	QuickTextMode  bool
	MirrorText     bool
	LineTypeScale  float64
	AttributeMode  int16
	TextHeight     float64
	TraceWidth     float64
	TextStyle      string
	CurrentLayer   string
	CurrentLineType string
	CurrentColor   Color
	CurrentLineTypeScale float64

	DimScaleOverall float64
	DimArrowSize    float64
	DimTextHeight   float64

	LinearUnitFormat    UnitFormat
	LinearUnitPrecision int16
	AngularUnitFormat   int16
	AngularUnitDirection AngleDirection

	PointDisplayMode     int16
	PointDisplaySize     float64
	DefaultPolylineWidth float64
	SplineSegments       int16
	SurfaceDensityU      int16
	SurfaceDensityV      int16

	DefaultDrawingUnits int16
	ExtendedNames       bool
	WorldView           bool
	TileMode            int16

	// Custom holds any $VARNAME the reader encountered with no entry in
	// headerVariableTable, keyed by variable name, values as raw pairs in
	// encounter order. Round-tripped verbatim on write.
	Custom map[string][]CodePair
}

// NewHeader returns a Header populated with AutoCAD's documented defaults
// for a brand-new drawing at the given version.
func NewHeader(version AcadVersion) *Header {
	return &Header{
		Version:              version,
		HandlesEnabled:       version >= R13,
		DrawingCodePage:      "ANSI_1252",
		HandSeed:             "1",
		InsertionBase:        Origin,
		LineTypeScale:        1.0,
		TextHeight:           2.5,
		TextStyle:            "STANDARD",
		CurrentLayer:         "0",
		CurrentLineType:      "BYLAYER",
		CurrentColor:         ByLayerColor,
		CurrentLineTypeScale: 1.0,
		DimScaleOverall:      1.0,
		DimArrowSize:         0.18,
		DimTextHeight:        0.18,
		LinearUnitFormat:     UnitFormatDecimal,
		LinearUnitPrecision:  4,
		DefaultPolylineWidth: 0,
		SplineSegments:       8,
		SurfaceDensityU:      6,
		SurfaceDensityV:      6,
		DefaultDrawingUnits:  0,
		TileMode:             1,
		Custom:               make(map[string][]CodePair),
	}
}

// headerVariable describes one $NAME system variable: the minimum version
// it appears in, how to apply its value pairs onto a Header, and how to
// produce them back out. header_gen.go builds headerVariableTable from
// these; header_custom.go supplies the handful whose apply/write logic
// isn't a plain typed-field mapping.
type headerVariable struct {
	name       string
	minVersion AcadVersion
	read       func(h *Header, values []CodePair)
	write      func(h *Header) []CodePair
}

func pointVar(codeBase int, get func(h *Header) *Point) (
	func(h *Header, values []CodePair), func(h *Header) []CodePair) {
	return func(h *Header, values []CodePair) {
			p := get(h)
			for _, v := range values {
				p.set(v, codeBase)
			}
		}, func(h *Header) []CodePair {
			return get(h).writePairs(codeBase)
		}
}

func doubleVar(code int, get func(h *Header) *float64) (
	func(h *Header, values []CodePair), func(h *Header) []CodePair) {
	return func(h *Header, values []CodePair) {
			for _, v := range values {
				if v.Code == code {
					*get(h) = v.Value.Double
				}
			}
		}, func(h *Header) []CodePair {
			return []CodePair{NewDoublePair(code, *get(h))}
		}
}

func shortVar(code int, get func(h *Header) *int16) (
	func(h *Header, values []CodePair), func(h *Header) []CodePair) {
	return func(h *Header, values []CodePair) {
			for _, v := range values {
				if v.Code == code {
					*get(h) = v.Value.Short
				}
			}
		}, func(h *Header) []CodePair {
			return []CodePair{NewShortPair(code, *get(h))}
		}
}

func boolVar(code int, get func(h *Header) *bool) (
	func(h *Header, values []CodePair), func(h *Header) []CodePair) {
	return func(h *Header, values []CodePair) {
			for _, v := range values {
				if v.Code == code {
					*get(h) = v.Value.Short != 0
				}
			}
		}, func(h *Header) []CodePair {
			n := int16(0)
			if *get(h) {
				n = 1
			}
			return []CodePair{NewShortPair(code, n)}
		}
}

func stringVar(code int, get func(h *Header) *string) (
	func(h *Header, values []CodePair), func(h *Header) []CodePair) {
	return func(h *Header, values []CodePair) {
			for _, v := range values {
				if v.Code == code {
					*get(h) = v.Value.Str
				}
			}
		}, func(h *Header) []CodePair {
			return []CodePair{NewStringPair(code, *get(h))}
		}
}

func colorVar(code int, get func(h *Header) *Color) (
	func(h *Header, values []CodePair), func(h *Header) []CodePair) {
	return func(h *Header, values []CodePair) {
			for _, v := range values {
				if v.Code == code {
					*get(h) = colorFromRawValue(v.Value.Short)
				}
			}
		}, func(h *Header) []CodePair {
			return []CodePair{NewShortPair(code, get(h).RawValue())}
		}
}

func v(name string, minVersion AcadVersion,
	read func(h *Header, values []CodePair), write func(h *Header) []CodePair) headerVariable {
	return headerVariable{name: name, minVersion: minVersion, read: read, write: write}
}

var headerVariablesByName = func() map[string]headerVariable {
	m := make(map[string]headerVariable, len(headerVariableTable))
	for _, hv := range headerVariableTable {
		m[hv.name] = hv
	}
	return m
}()

// Read consumes HEADER section contents: a run of "9 $NAME" pairs each
// followed by one or more value pairs, until the first code-0 pair (which
// is unread for the caller to recognize as ENDSEC).
func (h *Header) Read(r *PairReader) error {
	for {
		pair, err := r.Next()
		if err == io.EOF {
			return r.toleratedEOF()
		}
		if err != nil {
			return err
		}
		if pair.Code == 0 {
			r.Unread(pair)
			return nil
		}
		if pair.Code != 9 {
			return structureErrorf("expected variable name (code 9), got code %d", pair.Code)
		}
		name := pair.Value.Str

		var values []CodePair
		for {
			p2, err := r.Next()
			if err == io.EOF {
				// Apply what was collected for name before the outer loop's
				// own Next call observes the same EOF and decides whether
				// that's tolerated.
				break
			}
			if err != nil {
				return err
			}
			if p2.Code == 9 || p2.Code == 0 {
				r.Unread(p2)
				break
			}
			values = append(values, p2)
		}

		if hv, ok := headerVariablesByName[name]; ok {
			hv.read(h, values)
		} else {
			h.Custom[name] = values
		}
	}
}

// Write emits the HEADER section body (not the surrounding SECTION/ENDSEC
// framing pairs, which Drawing.WriteTo owns) in table order, then any custom
// variables the reader preserved. Custom variables are written in map
// iteration order, so their relative order is not defined.
func (h *Header) Write(w *PairWriter) error {
	for _, hv := range headerVariableTable {
		if hv.minVersion > h.Version {
			continue
		}
		if err := writeHeaderVariable(w, hv.name, hv.write(h)); err != nil {
			return err
		}
	}
	for name, values := range h.Custom {
		if err := writeHeaderVariable(w, name, values); err != nil {
			return err
		}
	}
	return nil
}

func writeHeaderVariable(w *PairWriter, name string, values []CodePair) error {
	if err := w.WriteCodePair(NewStringPair(9, name)); err != nil {
		return err
	}
	for _, p := range values {
		if err := w.WriteCodePair(p); err != nil {
			return err
		}
	}
	return nil
}
