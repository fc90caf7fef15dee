// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

// AttachmentPoint is MTEXT's group-code-71 anchor position.
type AttachmentPoint int16

const (
	AttachmentPointTopLeft AttachmentPoint = iota + 1
	AttachmentPointTopCenter
	AttachmentPointTopRight
	AttachmentPointMiddleLeft
	AttachmentPointMiddleCenter
	AttachmentPointMiddleRight
	AttachmentPointBottomLeft
	AttachmentPointBottomCenter
	AttachmentPointBottomRight
)

// DrawingDirection is MTEXT's group-code-72 text flow direction.
type DrawingDirection int16

const (
	DrawingDirectionLeftToRight DrawingDirection = 1
	DrawingDirectionTopToBottom DrawingDirection = 3
	DrawingDirectionByStyle     DrawingDirection = 5
)

// MTextLineSpacingStyle is group code 73 on MTEXT and its DIMSTYLE/STYLE
// counterparts.
type MTextLineSpacingStyle int16

const (
	MTextLineSpacingStyleAtLeast MTextLineSpacingStyle = iota + 1
	MTextLineSpacingStyleExact
)

// BackgroundFillSetting is MTEXT's group-code-90 background fill bitmask.
type BackgroundFillSetting int32

const (
	BackgroundFillSettingOff BackgroundFillSetting = 0
	BackgroundFillSettingColor BackgroundFillSetting = 1
	BackgroundFillSettingDrawingWindowColor BackgroundFillSetting = 2
	BackgroundFillSettingTransparent BackgroundFillSetting = 16
)

// HorizontalTextJustification is a TEXT entity's group-code-72 value.
type HorizontalTextJustification int16

const (
	HorizontalTextJustificationLeft HorizontalTextJustification = iota
	HorizontalTextJustificationCenter
	HorizontalTextJustificationRight
	HorizontalTextJustificationAligned
	HorizontalTextJustificationMiddle
	HorizontalTextJustificationFit
)

// VerticalTextJustification is a TEXT entity's group-code-73 value.
type VerticalTextJustification int16

const (
	VerticalTextJustificationBaseline VerticalTextJustification = iota
	VerticalTextJustificationBottom
	VerticalTextJustificationMiddle
	VerticalTextJustificationTop
)

// UnitFormat is the header $LUNITS linear unit format.
type UnitFormat int16

const (
	UnitFormatScientific UnitFormat = iota + 1
	UnitFormatDecimal
	UnitFormatEngineering
	UnitFormatArchitectural
	UnitFormatFractional
)

// AngleDirection is the header $ANGDIR angle direction.
type AngleDirection int16

const (
	AngleDirectionCounterClockwise AngleDirection = 0
	AngleDirectionClockwise        AngleDirection = 1
)
