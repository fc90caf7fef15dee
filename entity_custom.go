// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import "io"

// MText is an MTEXT entity. Its reader is hand-written rather than
// table-driven: group code 50 means RotationAngle, except once a code 75
// (column type) has been seen, in which case every subsequent 50 is a
// column height appended to ColumnHeights instead. A flat field table
// can't express that, since the meaning of 50 depends on read order, not
// on its own code.
type MText struct {
	InsertionPoint  Point
	Extrusion       Vector
	XAxisDirection  Vector
	Height          float64
	RectangleWidth  float64
	RotationAngle   float64
	AttachmentPoint AttachmentPoint
	DrawingDirection DrawingDirection
	Text            string
	TextStyle       string
	LineSpacingStyle MTextLineSpacingStyle
	LineSpacingFactor float64
	BackgroundFillSetting BackgroundFillSetting

	ColumnType    int16
	ColumnCount   int16
	ColumnHeights []float64

	seenColumnType bool
}

func newMText() EntityType {
	return &MText{
		Extrusion:         ZAxis,
		Height:            1,
		AttachmentPoint:   AttachmentPointTopLeft,
		DrawingDirection:  DrawingDirectionLeftToRight,
		TextStyle:         "STANDARD",
		LineSpacingStyle:  MTextLineSpacingStyleAtLeast,
		LineSpacingFactor: 1,
	}
}

func (e *MText) typeString() string                     { return "MTEXT" }
func (e *MText) isSupportedOnVersion(v AcadVersion) bool { return v >= R13 }
func (e *MText) tryApplyCodePair(CodePair) (bool, error)  { return false, nil }

func (e *MText) readCustom(r *PairReader, common *EntityCommon) error {
	var textChunks []string
	for {
		pair, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if pair.Code == 0 {
			r.Unread(pair)
			break
		}
		if applyCommonCodePair(common, pair) {
			continue
		}
		switch {
		case pair.Code == 1:
			textChunks = append(textChunks, pair.Value.Str)
		case pair.Code == 3:
			textChunks = append(textChunks, pair.Value.Str)
		case pair.Code == 7:
			e.TextStyle = pair.Value.Str
		case pair.Code == 40:
			e.Height = pair.Value.Double
		case pair.Code == 41:
			e.RectangleWidth = pair.Value.Double
		case pair.Code == 50:
			if e.seenColumnType {
				e.ColumnHeights = append(e.ColumnHeights, pair.Value.Double)
			} else {
				e.RotationAngle = pair.Value.Double
			}
		case pair.Code == 71:
			e.AttachmentPoint = AttachmentPoint(pair.Value.Short)
		case pair.Code == 72:
			e.DrawingDirection = DrawingDirection(pair.Value.Short)
		case pair.Code == 73:
			e.LineSpacingStyle = MTextLineSpacingStyle(pair.Value.Short)
		case pair.Code == 44:
			e.LineSpacingFactor = pair.Value.Double
		case pair.Code == 90:
			e.BackgroundFillSetting = BackgroundFillSetting(pair.Value.Int)
		case pair.Code == 75:
			e.ColumnType = pair.Value.Short
			e.seenColumnType = true
		case pair.Code == 76:
			e.ColumnCount = pair.Value.Short
		case e.InsertionPoint.set(pair, 10):
		case e.XAxisDirection.set(pair, 11):
		case e.Extrusion.set(pair, 210):
		}
	}
	e.Text = joinMTextChunks(textChunks)
	return nil
}

func joinMTextChunks(chunks []string) string {
	out := ""
	for _, c := range chunks {
		out += c
	}
	return out
}

func (e *MText) writeSpecific(w *PairWriter, _ EntityCommon) error {
	pairs := []CodePair{NewStringPair(100, "AcDbMText")}
	pairs = append(pairs, e.InsertionPoint.writePairs(10)...)
	if e.Extrusion != ZAxis {
		pairs = append(pairs, e.Extrusion.writePairs(210)...)
	}
	pairs = append(pairs, e.XAxisDirection.writePairs(11)...)
	pairs = append(pairs,
		NewDoublePair(40, e.Height),
		NewDoublePair(41, e.RectangleWidth),
		NewShortPair(71, int16(e.AttachmentPoint)),
		NewShortPair(72, int16(e.DrawingDirection)))
	pairs = append(pairs, writeMTextChunks(e.Text)...)
	pairs = append(pairs,
		NewStringPair(7, e.TextStyle),
		NewDoublePair(44, e.LineSpacingFactor),
		NewShortPair(73, int16(e.LineSpacingStyle)))
	if e.BackgroundFillSetting != BackgroundFillSettingOff {
		pairs = append(pairs, NewIntPair(90, int32(e.BackgroundFillSetting)))
	}
	if e.seenColumnType {
		pairs = append(pairs, NewShortPair(75, e.ColumnType), NewShortPair(76, e.ColumnCount))
		for _, h := range e.ColumnHeights {
			pairs = append(pairs, NewDoublePair(50, h))
		}
	} else if e.RotationAngle != 0 {
		pairs = append(pairs, NewDoublePair(50, e.RotationAngle))
	}
	return writeAll(w, pairs)
}

// writeMTextChunks splits Text into DXF's 250-character code-1/3 runs: every
// full leading chunk goes out as code 3 and the final (remaining) chunk as
// code 1, matching how AutoCAD wraps long MTEXT bodies across group codes.
func writeMTextChunks(text string) []CodePair {
	const chunkSize = 250
	if len(text) <= chunkSize {
		return []CodePair{NewStringPair(1, text)}
	}
	var pairs []CodePair
	for len(text) > chunkSize {
		pairs = append(pairs, NewStringPair(3, text[:chunkSize]))
		text = text[chunkSize:]
	}
	pairs = append(pairs, NewStringPair(1, text))
	return pairs
}

func init() {
	registerEntityType([]string{"MTEXT"}, newMText)
}
