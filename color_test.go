// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import "testing"

func TestColorSemantics(t *testing.T) {
	tests := []struct {
		name       string
		color      Color
		byLayer    bool
		byBlock    bool
		byEntity   bool
		turnedOff  bool
		wantIndex  int16
	}{
		{"by layer", ByLayerColor, true, false, false, false, 256},
		{"by block", ByBlockColor, false, true, false, false, 0},
		{"by entity", ByEntityColor, false, false, true, false, 257},
		{"index 3", ColorFromIndex(3), false, false, false, false, 3},
		{"turned off index 5", ColorFromIndex(5).TurnedOff(), false, false, false, true, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.IsByLayer(); got != tt.byLayer {
				t.Errorf("IsByLayer() = %v, want %v", got, tt.byLayer)
			}
			if got := tt.color.IsByBlock(); got != tt.byBlock {
				t.Errorf("IsByBlock() = %v, want %v", got, tt.byBlock)
			}
			if got := tt.color.IsByEntity(); got != tt.byEntity {
				t.Errorf("IsByEntity() = %v, want %v", got, tt.byEntity)
			}
			if got := tt.color.IsTurnedOff(); got != tt.turnedOff {
				t.Errorf("IsTurnedOff() = %v, want %v", got, tt.turnedOff)
			}
			if got := tt.color.Index(); got != tt.wantIndex {
				t.Errorf("Index() = %d, want %d", got, tt.wantIndex)
			}
		})
	}
}

func TestLineWeightSentinels(t *testing.T) {
	if ByBlockLineWeight.RawValue() != -1 {
		t.Errorf("ByBlockLineWeight.RawValue() = %d, want -1", ByBlockLineWeight.RawValue())
	}
	if ByLayerLineWeight.RawValue() != -2 {
		t.Errorf("ByLayerLineWeight.RawValue() = %d, want -2", ByLayerLineWeight.RawValue())
	}
	if got := LineWeightFromValue(25).RawValue(); got != 25 {
		t.Errorf("LineWeightFromValue(25).RawValue() = %d, want 25", got)
	}
}
