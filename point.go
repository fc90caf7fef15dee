// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

// Point is a 3D coordinate, assembled from a run of three code pairs at
// offsets 0/10/20 (e.g. 10/20/30, or 11/21/31 for a second point on the
// same entity).
type Point struct {
	X, Y, Z float64
}

// Vector is a 3D direction, structurally identical to Point but carrying a
// distinct set of conventional default values (e.g. the extrusion default
// of {0,0,1}).
type Vector struct {
	X, Y, Z float64
}

// set applies a single coordinate pair to the point, keyed by which decade
// of codeBase the pair's code falls in: codeBase+0 is X, +10 is Y, +20 is Z.
// Mirrors dxf-rs's Point::set / Vector::set.
func (p *Point) set(pair CodePair, codeBase int) bool {
	switch pair.Code - codeBase {
	case 0:
		p.X = pair.Value.Double
	case 10:
		p.Y = pair.Value.Double
	case 20:
		p.Z = pair.Value.Double
	default:
		return false
	}
	return true
}

func (v *Vector) set(pair CodePair, codeBase int) bool {
	switch pair.Code - codeBase {
	case 0:
		v.X = pair.Value.Double
	case 10:
		v.Y = pair.Value.Double
	case 20:
		v.Z = pair.Value.Double
	default:
		return false
	}
	return true
}

// writePairs emits the three coordinate pairs for a point/vector rooted at
// codeBase, in X/Y/Z order.
func (p Point) writePairs(codeBase int) []CodePair {
	return []CodePair{
		NewDoublePair(codeBase, p.X),
		NewDoublePair(codeBase+10, p.Y),
		NewDoublePair(codeBase+20, p.Z),
	}
}

func (v Vector) writePairs(codeBase int) []CodePair {
	return []CodePair{
		NewDoublePair(codeBase, v.X),
		NewDoublePair(codeBase+10, v.Y),
		NewDoublePair(codeBase+20, v.Z),
	}
}

// Origin is the zero point, the default for most position fields.
var Origin = Point{0, 0, 0}

// ZAxis is the default extrusion direction for planar entities.
var ZAxis = Vector{0, 0, 1}
