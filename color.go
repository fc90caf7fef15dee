// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

// Color packs DXF's overloaded color code (group code 62) semantics: a
// positive raw value is an ACI palette index, 0 means "by block", 256 means
// "by layer", and a negative raw value means the entity is turned off (its
// absolute value is still the palette index to fall back to if re-enabled).
// Mirrors dxf-rs's Color, whose raw_value carries the same overload.
type Color struct {
	rawValue int16
}

// ByLayerColor is the default color for most entities: inherit from the
// owning layer.
var ByLayerColor = Color{rawValue: 256}

// ByBlockColor means inherit from the containing block.
var ByBlockColor = Color{rawValue: 0}

// ByEntityColor means a true color (code 420) or color name (code 430)
// applies instead of the ACI index.
var ByEntityColor = Color{rawValue: 257}

// ColorFromIndex builds a Color from an ACI palette index in [1,255].
func ColorFromIndex(index int16) Color {
	return Color{rawValue: index}
}

// IsByLayer reports whether the color defers to the owning layer.
func (c Color) IsByLayer() bool { return c.rawValue == 256 }

// IsByBlock reports whether the color defers to the containing block.
func (c Color) IsByBlock() bool { return c.rawValue == 0 }

// IsByEntity reports whether the color defers to a true-color override.
func (c Color) IsByEntity() bool { return c.rawValue == 257 }

// IsTurnedOff reports whether the entity has been hidden via a negated
// color value.
func (c Color) IsTurnedOff() bool { return c.rawValue < 0 }

// Index returns the ACI palette index this color represents, regardless of
// whether the entity is currently turned off.
func (c Color) Index() int16 {
	if c.rawValue < 0 {
		return -c.rawValue
	}
	return c.rawValue
}

// TurnedOff returns a copy of c with its "turned off" bit set.
func (c Color) TurnedOff() Color {
	return Color{rawValue: -c.Index()}
}

// RawValue returns the raw group-code-62 value, for codec use.
func (c Color) RawValue() int16 { return c.rawValue }

// colorFromRawValue reconstructs a Color from a decoded group-code-62 value.
func colorFromRawValue(v int16) Color { return Color{rawValue: v} }

// LineWeight is DXF's group-code-370 line weight: either one of the two
// inherited sentinels, or a weight in hundredths of a millimeter.
type LineWeight struct {
	rawValue int16
}

// ByBlockLineWeight inherits the containing block's line weight.
var ByBlockLineWeight = LineWeight{rawValue: -1}

// ByLayerLineWeight inherits the owning layer's line weight.
var ByLayerLineWeight = LineWeight{rawValue: -2}

// LineWeightFromValue builds a LineWeight from an explicit hundredths-of-a-
// millimeter value.
func LineWeightFromValue(hundredthsMM int16) LineWeight {
	return LineWeight{rawValue: hundredthsMM}
}

// RawValue returns the raw group-code-370 value.
func (w LineWeight) RawValue() int16 { return w.rawValue }
