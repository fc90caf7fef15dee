// Entity type definitions matching spec/EntitiesSpec.xml. Hand-authored,
// not machine output: cmd/dxfgen can render the flat-field-table shape
// most of these types share (struct, constructor, tryApplyCodePair,
// writeSpecific, flag accessors, registration) straight from the XML, but
// several of the types below need more than a flat field table captures —
// Polyline's Vertices/Seqend grouping, Spline/Leader/MLine/Section's
// postParse-coalesced point runs — so cmd/dxfgen writes its output to a
// separate scratch directory (see cmd/dxfgen's docs) rather than over
// this file, and the extra logic here is written by hand in the same
// idiom the generator would use for the parts it can express.

package dxf

import "io"

// --- Line -------------------------------------------------------------

type Line struct {
	P1, P2    Point
	Extrusion Vector
	Thickness float64
}

func newLine() EntityType { return &Line{Extrusion: ZAxis} }

func (e *Line) typeString() string                     { return "LINE" }
func (e *Line) isSupportedOnVersion(AcadVersion) bool   { return true }

func (e *Line) tryApplyCodePair(p CodePair) (bool, error) {
	switch {
	case p.Code == 39:
		e.Thickness = p.Value.Double
	case e.P1.set(p, 10):
	case e.P2.set(p, 11):
	case e.Extrusion.set(p, 210):
	default:
		return false, nil
	}
	return true, nil
}

func (e *Line) writeSpecific(w *PairWriter, _ EntityCommon) error {
	pairs := []CodePair{NewStringPair(100, "AcDbLine")}
	if e.Thickness != 0 {
		pairs = append(pairs, NewDoublePair(39, e.Thickness))
	}
	pairs = append(pairs, e.P1.writePairs(10)...)
	pairs = append(pairs, e.P2.writePairs(11)...)
	if e.Extrusion != ZAxis {
		pairs = append(pairs, e.Extrusion.writePairs(210)...)
	}
	return writeAll(w, pairs)
}

// --- Point (entity) -----------------------------------------------------

type PointEntity struct {
	Location      Point
	Extrusion     Vector
	Thickness     float64
	AngleOfOrientation float64
}

func newPointEntity() EntityType { return &PointEntity{Extrusion: ZAxis} }

func (e *PointEntity) typeString() string                   { return "POINT" }
func (e *PointEntity) isSupportedOnVersion(AcadVersion) bool { return true }

func (e *PointEntity) tryApplyCodePair(p CodePair) (bool, error) {
	switch {
	case p.Code == 39:
		e.Thickness = p.Value.Double
	case p.Code == 50:
		e.AngleOfOrientation = p.Value.Double
	case e.Location.set(p, 10):
	case e.Extrusion.set(p, 210):
	default:
		return false, nil
	}
	return true, nil
}

func (e *PointEntity) writeSpecific(w *PairWriter, _ EntityCommon) error {
	pairs := []CodePair{NewStringPair(100, "AcDbPoint")}
	pairs = append(pairs, e.Location.writePairs(10)...)
	if e.Thickness != 0 {
		pairs = append(pairs, NewDoublePair(39, e.Thickness))
	}
	if e.Extrusion != ZAxis {
		pairs = append(pairs, e.Extrusion.writePairs(210)...)
	}
	if e.AngleOfOrientation != 0 {
		pairs = append(pairs, NewDoublePair(50, e.AngleOfOrientation))
	}
	return writeAll(w, pairs)
}

// --- Circle ---------------------------------------------------------------

type Circle struct {
	Center    Point
	Radius    float64
	Extrusion Vector
	Thickness float64
}

func newCircle() EntityType { return &Circle{Extrusion: ZAxis} }

func (e *Circle) typeString() string                   { return "CIRCLE" }
func (e *Circle) isSupportedOnVersion(AcadVersion) bool { return true }

func (e *Circle) tryApplyCodePair(p CodePair) (bool, error) {
	switch {
	case p.Code == 40:
		e.Radius = p.Value.Double
	case p.Code == 39:
		e.Thickness = p.Value.Double
	case e.Center.set(p, 10):
	case e.Extrusion.set(p, 210):
	default:
		return false, nil
	}
	return true, nil
}

func (e *Circle) writeSpecific(w *PairWriter, _ EntityCommon) error {
	pairs := []CodePair{NewStringPair(100, "AcDbCircle")}
	pairs = append(pairs, e.Center.writePairs(10)...)
	pairs = append(pairs, NewDoublePair(40, e.Radius))
	if e.Thickness != 0 {
		pairs = append(pairs, NewDoublePair(39, e.Thickness))
	}
	if e.Extrusion != ZAxis {
		pairs = append(pairs, e.Extrusion.writePairs(210)...)
	}
	return writeAll(w, pairs)
}

// --- Arc --------------------------------------------------------------

type Arc struct {
	Center               Point
	Radius                float64
	StartAngle, EndAngle  float64
	Extrusion             Vector
	Thickness             float64
}

func newArc() EntityType { return &Arc{Extrusion: ZAxis, EndAngle: 360} }

func (e *Arc) typeString() string                   { return "ARC" }
func (e *Arc) isSupportedOnVersion(AcadVersion) bool { return true }

func (e *Arc) tryApplyCodePair(p CodePair) (bool, error) {
	switch {
	case p.Code == 40:
		e.Radius = p.Value.Double
	case p.Code == 39:
		e.Thickness = p.Value.Double
	case p.Code == 50:
		e.StartAngle = p.Value.Double
	case p.Code == 51:
		e.EndAngle = p.Value.Double
	case e.Center.set(p, 10):
	case e.Extrusion.set(p, 210):
	default:
		return false, nil
	}
	return true, nil
}

func (e *Arc) writeSpecific(w *PairWriter, _ EntityCommon) error {
	pairs := []CodePair{NewStringPair(100, "AcDbCircle")}
	pairs = append(pairs, e.Center.writePairs(10)...)
	pairs = append(pairs, NewDoublePair(40, e.Radius))
	if e.Thickness != 0 {
		pairs = append(pairs, NewDoublePair(39, e.Thickness))
	}
	if e.Extrusion != ZAxis {
		pairs = append(pairs, e.Extrusion.writePairs(210)...)
	}
	pairs = append(pairs, NewStringPair(100, "AcDbArc"))
	pairs = append(pairs, NewDoublePair(50, e.StartAngle), NewDoublePair(51, e.EndAngle))
	return writeAll(w, pairs)
}

// --- Ellipse ------------------------------------------------------------

type Ellipse struct {
	Center           Point
	MajorAxisEndPoint Vector
	Extrusion        Vector
	MinorToMajorRatio float64
	StartParameter, EndParameter float64
}

func newEllipse() EntityType {
	return &Ellipse{Extrusion: ZAxis, MinorToMajorRatio: 1, EndParameter: 6.283185307179586}
}

func (e *Ellipse) typeString() string                   { return "ELLIPSE" }
func (e *Ellipse) isSupportedOnVersion(v AcadVersion) bool { return v >= R14 }

func (e *Ellipse) tryApplyCodePair(p CodePair) (bool, error) {
	switch {
	case p.Code == 40:
		e.MinorToMajorRatio = p.Value.Double
	case p.Code == 41:
		e.StartParameter = p.Value.Double
	case p.Code == 42:
		e.EndParameter = p.Value.Double
	case e.Center.set(p, 10):
	case e.MajorAxisEndPoint.set(p, 11):
	case e.Extrusion.set(p, 210):
	default:
		return false, nil
	}
	return true, nil
}

func (e *Ellipse) writeSpecific(w *PairWriter, _ EntityCommon) error {
	pairs := []CodePair{NewStringPair(100, "AcDbEllipse")}
	pairs = append(pairs, e.Center.writePairs(10)...)
	pairs = append(pairs, e.MajorAxisEndPoint.writePairs(11)...)
	if e.Extrusion != ZAxis {
		pairs = append(pairs, e.Extrusion.writePairs(210)...)
	}
	pairs = append(pairs,
		NewDoublePair(40, e.MinorToMajorRatio),
		NewDoublePair(41, e.StartParameter),
		NewDoublePair(42, e.EndParameter))
	return writeAll(w, pairs)
}

// --- Text -----------------------------------------------------------------

type Text struct {
	Location            Point
	SecondAlignmentPoint Point
	Height              float64
	Value               string
	Rotation            float64
	RelativeXScaleFactor float64
	ObliqueAngle        float64
	TextStyle           string
	HorizontalJustification HorizontalTextJustification
	VerticalJustification   VerticalTextJustification
	Extrusion           Vector
	Thickness           float64
}

func newText() EntityType {
	return &Text{Height: 1, RelativeXScaleFactor: 1, TextStyle: "STANDARD", Extrusion: ZAxis}
}

func (e *Text) typeString() string                   { return "TEXT" }
func (e *Text) isSupportedOnVersion(AcadVersion) bool { return true }

func (e *Text) tryApplyCodePair(p CodePair) (bool, error) {
	switch {
	case p.Code == 1:
		e.Value = p.Value.Str
	case p.Code == 7:
		e.TextStyle = p.Value.Str
	case p.Code == 39:
		e.Thickness = p.Value.Double
	case p.Code == 40:
		e.Height = p.Value.Double
	case p.Code == 41:
		e.RelativeXScaleFactor = p.Value.Double
	case p.Code == 50:
		e.Rotation = p.Value.Double
	case p.Code == 51:
		e.ObliqueAngle = p.Value.Double
	case p.Code == 72:
		e.HorizontalJustification = HorizontalTextJustification(p.Value.Short)
	case p.Code == 73:
		e.VerticalJustification = VerticalTextJustification(p.Value.Short)
	case e.Location.set(p, 10):
	case e.SecondAlignmentPoint.set(p, 11):
	case e.Extrusion.set(p, 210):
	default:
		return false, nil
	}
	return true, nil
}

func (e *Text) writeSpecific(w *PairWriter, _ EntityCommon) error {
	pairs := []CodePair{NewStringPair(100, "AcDbText")}
	pairs = append(pairs, e.Location.writePairs(10)...)
	pairs = append(pairs, NewDoublePair(40, e.Height), NewStringPair(1, e.Value))
	if e.Rotation != 0 {
		pairs = append(pairs, NewDoublePair(50, e.Rotation))
	}
	if e.RelativeXScaleFactor != 1 {
		pairs = append(pairs, NewDoublePair(41, e.RelativeXScaleFactor))
	}
	if e.ObliqueAngle != 0 {
		pairs = append(pairs, NewDoublePair(51, e.ObliqueAngle))
	}
	if e.TextStyle != "STANDARD" {
		pairs = append(pairs, NewStringPair(7, e.TextStyle))
	}
	if e.Thickness != 0 {
		pairs = append(pairs, NewDoublePair(39, e.Thickness))
	}
	pairs = append(pairs, NewShortPair(72, int16(e.HorizontalJustification)))
	pairs = append(pairs, e.SecondAlignmentPoint.writePairs(11)...)
	if e.Extrusion != ZAxis {
		pairs = append(pairs, e.Extrusion.writePairs(210)...)
	}
	pairs = append(pairs, NewStringPair(100, "AcDbText"), NewShortPair(73, int16(e.VerticalJustification)))
	return writeAll(w, pairs)
}

// --- Solid ------------------------------------------------------------

type Solid struct {
	P1, P2, P3, P4 Point
	Extrusion      Vector
	Thickness      float64
}

func newSolid() EntityType { return &Solid{Extrusion: ZAxis} }

func (e *Solid) typeString() string                   { return "SOLID" }
func (e *Solid) isSupportedOnVersion(AcadVersion) bool { return true }

func (e *Solid) tryApplyCodePair(p CodePair) (bool, error) {
	switch {
	case p.Code == 39:
		e.Thickness = p.Value.Double
	case e.P1.set(p, 10):
	case e.P2.set(p, 11):
	case e.P3.set(p, 12):
	case e.P4.set(p, 13):
	case e.Extrusion.set(p, 210):
	default:
		return false, nil
	}
	return true, nil
}

func (e *Solid) writeSpecific(w *PairWriter, _ EntityCommon) error {
	pairs := []CodePair{NewStringPair(100, "AcDbTrace")}
	pairs = append(pairs, e.P1.writePairs(10)...)
	pairs = append(pairs, e.P2.writePairs(11)...)
	pairs = append(pairs, e.P3.writePairs(12)...)
	pairs = append(pairs, e.P4.writePairs(13)...)
	if e.Thickness != 0 {
		pairs = append(pairs, NewDoublePair(39, e.Thickness))
	}
	if e.Extrusion != ZAxis {
		pairs = append(pairs, e.Extrusion.writePairs(210)...)
	}
	return writeAll(w, pairs)
}

// --- Face3D ("3DFACE") --------------------------------------------------

type Face3D struct {
	P1, P2, P3, P4 Point
	EdgeFlags      int16
}

func newFace3D() EntityType { return &Face3D{} }

func (e *Face3D) typeString() string                   { return "3DFACE" }
func (e *Face3D) isSupportedOnVersion(AcadVersion) bool { return true }

func (e *Face3D) tryApplyCodePair(p CodePair) (bool, error) {
	switch {
	case p.Code == 70:
		e.EdgeFlags = p.Value.Short
	case e.P1.set(p, 10):
	case e.P2.set(p, 11):
	case e.P3.set(p, 12):
	case e.P4.set(p, 13):
	default:
		return false, nil
	}
	return true, nil
}

func (e *Face3D) writeSpecific(w *PairWriter, _ EntityCommon) error {
	pairs := []CodePair{NewStringPair(100, "AcDbFace")}
	pairs = append(pairs, e.P1.writePairs(10)...)
	pairs = append(pairs, e.P2.writePairs(11)...)
	pairs = append(pairs, e.P3.writePairs(12)...)
	pairs = append(pairs, e.P4.writePairs(13)...)
	if e.EdgeFlags != 0 {
		pairs = append(pairs, NewShortPair(70, e.EdgeFlags))
	}
	return writeAll(w, pairs)
}

// --- Insert -------------------------------------------------------------

type Insert struct {
	Name                  string
	Location              Point
	XScaleFactor, YScaleFactor, ZScaleFactor float64
	Rotation              float64
	ColumnCount, RowCount int16
	ColumnSpacing, RowSpacing float64
	Extrusion             Vector
	IsAttributesFollow    bool
}

func newInsert() EntityType {
	return &Insert{XScaleFactor: 1, YScaleFactor: 1, ZScaleFactor: 1, ColumnCount: 1, RowCount: 1, Extrusion: ZAxis}
}

func (e *Insert) typeString() string                   { return "INSERT" }
func (e *Insert) isSupportedOnVersion(AcadVersion) bool { return true }

func (e *Insert) tryApplyCodePair(p CodePair) (bool, error) {
	switch {
	case p.Code == 2:
		e.Name = p.Value.Str
	case p.Code == 41:
		e.XScaleFactor = p.Value.Double
	case p.Code == 42:
		e.YScaleFactor = p.Value.Double
	case p.Code == 43:
		e.ZScaleFactor = p.Value.Double
	case p.Code == 50:
		e.Rotation = p.Value.Double
	case p.Code == 66:
		e.IsAttributesFollow = p.Value.Short != 0
	case p.Code == 70:
		e.ColumnCount = p.Value.Short
	case p.Code == 71:
		e.RowCount = p.Value.Short
	case p.Code == 44:
		e.ColumnSpacing = p.Value.Double
	case p.Code == 45:
		e.RowSpacing = p.Value.Double
	case e.Location.set(p, 10):
	case e.Extrusion.set(p, 210):
	default:
		return false, nil
	}
	return true, nil
}

func (e *Insert) writeSpecific(w *PairWriter, _ EntityCommon) error {
	pairs := []CodePair{NewStringPair(100, "AcDbBlockReference")}
	if e.IsAttributesFollow {
		pairs = append(pairs, NewShortPair(66, 1))
	}
	pairs = append(pairs, NewStringPair(2, e.Name))
	pairs = append(pairs, e.Location.writePairs(10)...)
	if e.XScaleFactor != 1 {
		pairs = append(pairs, NewDoublePair(41, e.XScaleFactor))
	}
	if e.YScaleFactor != 1 {
		pairs = append(pairs, NewDoublePair(42, e.YScaleFactor))
	}
	if e.ZScaleFactor != 1 {
		pairs = append(pairs, NewDoublePair(43, e.ZScaleFactor))
	}
	if e.Rotation != 0 {
		pairs = append(pairs, NewDoublePair(50, e.Rotation))
	}
	if e.Extrusion != ZAxis {
		pairs = append(pairs, e.Extrusion.writePairs(210)...)
	}
	if e.ColumnCount != 1 {
		pairs = append(pairs, NewShortPair(70, e.ColumnCount))
	}
	if e.RowCount != 1 {
		pairs = append(pairs, NewShortPair(71, e.RowCount))
	}
	if e.ColumnSpacing != 0 {
		pairs = append(pairs, NewDoublePair(44, e.ColumnSpacing))
	}
	if e.RowSpacing != 0 {
		pairs = append(pairs, NewDoublePair(45, e.RowSpacing))
	}
	return writeAll(w, pairs)
}

// --- Polyline / Vertex / Seqend -----------------------------------------

// Polyline is POLYLINE plus its grouped run of VERTEX children (and the
// trailing SEQEND, if present). Grouping happens in Drawing's entity
// reader; see spec.md's polyline/vertex coalescing rule.
type Polyline struct {
	Elevation    Point
	Extrusion    Vector
	Thickness    float64
	Flags        int16
	DefaultStartWidth, DefaultEndWidth float64
	Vertices     []*Vertex
	Seqend       *EntityCommon
}

func newPolyline() EntityType { return &Polyline{Extrusion: ZAxis} }

func (e *Polyline) typeString() string                   { return "POLYLINE" }
func (e *Polyline) isSupportedOnVersion(AcadVersion) bool { return true }

func (e *Polyline) IsClosed() bool { return e.Flags&1 != 0 }
func (e *Polyline) SetIsClosed(v bool) {
	if v {
		e.Flags |= 1
	} else {
		e.Flags &^= 1
	}
}

func (e *Polyline) Is3DPolyline() bool { return e.Flags&8 != 0 }
func (e *Polyline) SetIs3DPolyline(v bool) {
	if v {
		e.Flags |= 8
	} else {
		e.Flags &^= 8
	}
}

func (e *Polyline) tryApplyCodePair(p CodePair) (bool, error) {
	switch {
	case p.Code == 39:
		e.Thickness = p.Value.Double
	case p.Code == 70:
		e.Flags = p.Value.Short
	case p.Code == 40:
		e.DefaultStartWidth = p.Value.Double
	case p.Code == 41:
		e.DefaultEndWidth = p.Value.Double
	case e.Elevation.set(p, 10):
	case e.Extrusion.set(p, 210):
	default:
		return false, nil
	}
	return true, nil
}

func (e *Polyline) writeSpecific(w *PairWriter, _ EntityCommon) error {
	pairs := []CodePair{NewStringPair(100, "AcDb2dPolyline")}
	pairs = append(pairs, e.Elevation.writePairs(10)...)
	pairs = append(pairs, NewShortPair(70, e.Flags))
	if e.DefaultStartWidth != 0 {
		pairs = append(pairs, NewDoublePair(40, e.DefaultStartWidth))
	}
	if e.DefaultEndWidth != 0 {
		pairs = append(pairs, NewDoublePair(41, e.DefaultEndWidth))
	}
	if e.Thickness != 0 {
		pairs = append(pairs, NewDoublePair(39, e.Thickness))
	}
	if e.Extrusion != ZAxis {
		pairs = append(pairs, e.Extrusion.writePairs(210)...)
	}
	if err := writeAll(w, pairs); err != nil {
		return err
	}
	for _, vtx := range e.Vertices {
		if err := writeEntity(w, Entity{Common: NewEntityCommon(), Specific: vtx}, R2014); err != nil {
			return err
		}
	}
	if e.Seqend != nil {
		if err := w.WriteCodePair(NewStringPair(0, "SEQEND")); err != nil {
			return err
		}
		for _, p := range writeCommonCodePairs(*e.Seqend) {
			if err := w.WriteCodePair(p); err != nil {
				return err
			}
		}
	}
	return nil
}

type Vertex struct {
	Location       Point
	StartWidth, EndWidth float64
	Bulge          float64
	Flags          int16
}

func newVertex() EntityType { return &Vertex{} }

func (e *Vertex) typeString() string                   { return "VERTEX" }
func (e *Vertex) isSupportedOnVersion(AcadVersion) bool { return true }

func (e *Vertex) tryApplyCodePair(p CodePair) (bool, error) {
	switch {
	case p.Code == 40:
		e.StartWidth = p.Value.Double
	case p.Code == 41:
		e.EndWidth = p.Value.Double
	case p.Code == 42:
		e.Bulge = p.Value.Double
	case p.Code == 70:
		e.Flags = p.Value.Short
	case e.Location.set(p, 10):
	default:
		return false, nil
	}
	return true, nil
}

func (e *Vertex) writeSpecific(w *PairWriter, _ EntityCommon) error {
	pairs := []CodePair{NewStringPair(100, "AcDbVertex"), NewStringPair(100, "AcDb2dVertex")}
	pairs = append(pairs, e.Location.writePairs(10)...)
	if e.StartWidth != 0 {
		pairs = append(pairs, NewDoublePair(40, e.StartWidth))
	}
	if e.EndWidth != 0 {
		pairs = append(pairs, NewDoublePair(41, e.EndWidth))
	}
	if e.Bulge != 0 {
		pairs = append(pairs, NewDoublePair(42, e.Bulge))
	}
	pairs = append(pairs, NewShortPair(70, e.Flags))
	return writeAll(w, pairs)
}

// --- LwPolyline (custom reader; Open Question resolved as structured) ---

// LwPolylineVertex is one vertex of an LWPOLYLINE, resolved from the
// parallel 10/40/41/42 code runs into a single structure instead of
// leaving callers to zip parallel slices themselves.
type LwPolylineVertex struct {
	Point                Point
	StartWidth, EndWidth float64
	Bulge                float64
}

type LwPolyline struct {
	Flags     int16
	ConstantWidth float64
	Elevation float64
	Thickness float64
	Extrusion Vector
	Vertices  []LwPolylineVertex
}

func newLwPolyline() EntityType { return &LwPolyline{Extrusion: ZAxis} }

func (e *LwPolyline) typeString() string                     { return "LWPOLYLINE" }
func (e *LwPolyline) isSupportedOnVersion(v AcadVersion) bool { return v >= R14 }

func (e *LwPolyline) tryApplyCodePair(CodePair) (bool, error) { return false, nil }

// readCustom implements customEntityReader. LWPOLYLINE interleaves a 10/20
// start point with the 40/41/42 that follow it for the *same* vertex, so a
// flat field table can't express it: each 10 code starts a new vertex,
// and subsequent 20/40/41/42 codes (until the next 10) belong to it.
func (e *LwPolyline) readCustom(r *PairReader, common *EntityCommon) error {
	var cur *LwPolylineVertex
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
		switch pair.Code {
		case 70:
			e.Flags = pair.Value.Short
		case 43:
			e.ConstantWidth = pair.Value.Double
		case 38:
			e.Elevation = pair.Value.Double
		case 39:
			e.Thickness = pair.Value.Double
		case 10:
			e.Vertices = append(e.Vertices, LwPolylineVertex{Point: Point{X: pair.Value.Double}})
			cur = &e.Vertices[len(e.Vertices)-1]
		case 20:
			if cur != nil {
				cur.Point.Y = pair.Value.Double
			}
		case 40:
			if cur != nil {
				cur.StartWidth = pair.Value.Double
			}
		case 41:
			if cur != nil {
				cur.EndWidth = pair.Value.Double
			}
		case 42:
			if cur != nil {
				cur.Bulge = pair.Value.Double
			}
		case 210:
			e.Extrusion.X = pair.Value.Double
		case 220:
			e.Extrusion.Y = pair.Value.Double
		case 230:
			e.Extrusion.Z = pair.Value.Double
		default:
			if applyCommonCodePair(common, pair) {
				continue
			}
		}
	}
}

func (e *LwPolyline) writeSpecific(w *PairWriter, _ EntityCommon) error {
	pairs := []CodePair{NewStringPair(100, "AcDbPolyline")}
	pairs = append(pairs, NewIntPair(90, int32(len(e.Vertices))), NewShortPair(70, e.Flags))
	if e.ConstantWidth != 0 {
		pairs = append(pairs, NewDoublePair(43, e.ConstantWidth))
	}
	if e.Elevation != 0 {
		pairs = append(pairs, NewDoublePair(38, e.Elevation))
	}
	if e.Thickness != 0 {
		pairs = append(pairs, NewDoublePair(39, e.Thickness))
	}
	for _, vtx := range e.Vertices {
		pairs = append(pairs, NewDoublePair(10, vtx.Point.X), NewDoublePair(20, vtx.Point.Y))
		if vtx.StartWidth != 0 || vtx.EndWidth != 0 {
			pairs = append(pairs, NewDoublePair(40, vtx.StartWidth), NewDoublePair(41, vtx.EndWidth))
		}
		if vtx.Bulge != 0 {
			pairs = append(pairs, NewDoublePair(42, vtx.Bulge))
		}
	}
	if e.Extrusion != ZAxis {
		pairs = append(pairs, e.Extrusion.writePairs(210)...)
	}
	return writeAll(w, pairs)
}

// --- Spline (post-parse coalesced control/fit points) --------------------

type Spline struct {
	Flags, DegreeOfCurve  int16
	KnotTolerance, ControlPointTolerance, FitTolerance float64
	KnotValues            []float64
	ControlPoints         []Point
	FitPoints             []Point
	controlX, controlY, controlZ []float64
	fitX, fitY, fitZ      []float64
}

func newSpline() EntityType {
	return &Spline{KnotTolerance: 1e-7, ControlPointTolerance: 1e-7, FitTolerance: 1e-10}
}

func (e *Spline) typeString() string                     { return "SPLINE" }
func (e *Spline) isSupportedOnVersion(v AcadVersion) bool { return v >= R13 }

func (e *Spline) tryApplyCodePair(p CodePair) (bool, error) {
	switch p.Code {
	case 70:
		e.Flags = p.Value.Short
	case 71:
		e.DegreeOfCurve = p.Value.Short
	case 40:
		e.KnotTolerance = p.Value.Double
	case 41:
		e.ControlPointTolerance = p.Value.Double
	case 42:
		e.FitTolerance = p.Value.Double
	case 43:
		e.KnotValues = append(e.KnotValues, p.Value.Double)
	case 10:
		e.controlX = append(e.controlX, p.Value.Double)
	case 20:
		e.controlY = append(e.controlY, p.Value.Double)
	case 30:
		e.controlZ = append(e.controlZ, p.Value.Double)
	case 11:
		e.fitX = append(e.fitX, p.Value.Double)
	case 21:
		e.fitY = append(e.fitY, p.Value.Double)
	case 31:
		e.fitZ = append(e.fitZ, p.Value.Double)
	default:
		return false, nil
	}
	return true, nil
}

// postParse coalesces the parallel 10/20/30 and 11/21/31 runs into
// ControlPoints/FitPoints, matching dxf-rs's combine_points_3 for SPLINE.
func (e *Spline) postParse() {
	e.ControlPoints = combinePoints3(e.controlX, e.controlY, e.controlZ)
	e.FitPoints = combinePoints3(e.fitX, e.fitY, e.fitZ)
}

func (e *Spline) writeSpecific(w *PairWriter, _ EntityCommon) error {
	pairs := []CodePair{NewStringPair(100, "AcDbSpline")}
	pairs = append(pairs, NewShortPair(70, e.Flags), NewShortPair(71, e.DegreeOfCurve))
	pairs = append(pairs,
		NewIntPair(72, int32(len(e.KnotValues))),
		NewIntPair(73, int32(len(e.ControlPoints))),
		NewIntPair(74, int32(len(e.FitPoints))))
	pairs = append(pairs,
		NewDoublePair(42, e.FitTolerance),
		NewDoublePair(41, e.ControlPointTolerance),
		NewDoublePair(40, e.KnotTolerance))
	for _, k := range e.KnotValues {
		pairs = append(pairs, NewDoublePair(43, k))
	}
	for _, pt := range e.ControlPoints {
		pairs = append(pairs, pt.writePairs(10)...)
	}
	for _, pt := range e.FitPoints {
		pairs = append(pairs, pt.writePairs(11)...)
	}
	return writeAll(w, pairs)
}

// combinePoints3 zips parallel x/y/z slices into Points, the way
// dxf-rs's Entity::combine_points_3 does for SPLINE/SECTION/etc.
func combinePoints3(xs, ys, zs []float64) []Point {
	n := len(xs)
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		pts[i].X = xs[i]
		if i < len(ys) {
			pts[i].Y = ys[i]
		}
		if i < len(zs) {
			pts[i].Z = zs[i]
		}
	}
	return pts
}

func combinePoints2(xs, ys []float64) []Point {
	return combinePoints3(xs, ys, nil)
}

// --- Leader (post-parse coalesced vertices) -------------------------------

type Leader struct {
	PathType int16
	Vertices []Point
	vertexX, vertexY, vertexZ []float64
}

func newLeader() EntityType { return &Leader{} }

func (e *Leader) typeString() string                     { return "LEADER" }
func (e *Leader) isSupportedOnVersion(v AcadVersion) bool { return v >= R13 }

func (e *Leader) tryApplyCodePair(p CodePair) (bool, error) {
	switch p.Code {
	case 72:
		e.PathType = p.Value.Short
	case 10:
		e.vertexX = append(e.vertexX, p.Value.Double)
	case 20:
		e.vertexY = append(e.vertexY, p.Value.Double)
	case 30:
		e.vertexZ = append(e.vertexZ, p.Value.Double)
	default:
		return false, nil
	}
	return true, nil
}

func (e *Leader) postParse() { e.Vertices = combinePoints3(e.vertexX, e.vertexY, e.vertexZ) }

func (e *Leader) writeSpecific(w *PairWriter, _ EntityCommon) error {
	pairs := []CodePair{NewStringPair(100, "AcDbLeader"), NewShortPair(72, e.PathType)}
	pairs = append(pairs, NewIntPair(76, int32(len(e.Vertices))))
	for _, pt := range e.Vertices {
		pairs = append(pairs, pt.writePairs(10)...)
	}
	return writeAll(w, pairs)
}

// --- MLine (post-parse coalesced vertices) -------------------------------

type MLine struct {
	StyleName string
	Scale     float64
	Vertices  []Point
	vertexX, vertexY, vertexZ []float64
}

func newMLine() EntityType { return &MLine{StyleName: "STANDARD", Scale: 1} }

func (e *MLine) typeString() string                     { return "MLINE" }
func (e *MLine) isSupportedOnVersion(v AcadVersion) bool { return v >= R13 }

func (e *MLine) tryApplyCodePair(p CodePair) (bool, error) {
	switch p.Code {
	case 2:
		e.StyleName = p.Value.Str
	case 40:
		e.Scale = p.Value.Double
	case 11:
		e.vertexX = append(e.vertexX, p.Value.Double)
	case 21:
		e.vertexY = append(e.vertexY, p.Value.Double)
	case 31:
		e.vertexZ = append(e.vertexZ, p.Value.Double)
	default:
		return false, nil
	}
	return true, nil
}

func (e *MLine) postParse() { e.Vertices = combinePoints3(e.vertexX, e.vertexY, e.vertexZ) }

func (e *MLine) writeSpecific(w *PairWriter, _ EntityCommon) error {
	pairs := []CodePair{NewStringPair(100, "AcDbMline"), NewStringPair(2, e.StyleName), NewDoublePair(40, e.Scale)}
	pairs = append(pairs, NewIntPair(72, int32(len(e.Vertices))))
	for _, pt := range e.Vertices {
		pairs = append(pairs, pt.writePairs(11)...)
	}
	return writeAll(w, pairs)
}

// --- Section (post-parse coalesced vertices) ------------------------------

type Section struct {
	Name     string
	Vertices []Point
	vertexX, vertexY, vertexZ []float64
}

func newSection() EntityType { return &Section{} }

func (e *Section) typeString() string                     { return "SECTION" }
func (e *Section) isSupportedOnVersion(v AcadVersion) bool { return v >= R2007 }

func (e *Section) tryApplyCodePair(p CodePair) (bool, error) {
	switch p.Code {
	case 1:
		e.Name = p.Value.Str
	case 11:
		e.vertexX = append(e.vertexX, p.Value.Double)
	case 21:
		e.vertexY = append(e.vertexY, p.Value.Double)
	case 31:
		e.vertexZ = append(e.vertexZ, p.Value.Double)
	default:
		return false, nil
	}
	return true, nil
}

func (e *Section) postParse() { e.Vertices = combinePoints3(e.vertexX, e.vertexY, e.vertexZ) }

func (e *Section) writeSpecific(w *PairWriter, _ EntityCommon) error {
	pairs := []CodePair{NewStringPair(100, "AcDbSection"), NewStringPair(1, e.Name)}
	for _, pt := range e.Vertices {
		pairs = append(pairs, pt.writePairs(11)...)
	}
	return writeAll(w, pairs)
}

// --- Image (post-parse coalesced clip boundary) ---------------------------

type Image struct {
	ImageDefHandle string
	InsertionPoint Point
	UVector, VVector Vector
	ImageSize      Point
	ClipBoundary   []Point
	clipX, clipY   []float64
}

func newImage() EntityType { return &Image{} }

func (e *Image) typeString() string                     { return "IMAGE" }
func (e *Image) isSupportedOnVersion(v AcadVersion) bool { return v >= R14 }

func (e *Image) tryApplyCodePair(p CodePair) (bool, error) {
	switch {
	case p.Code == 340:
		e.ImageDefHandle = p.Value.Str
	case p.Code == 14:
		e.clipX = append(e.clipX, p.Value.Double)
	case p.Code == 24:
		e.clipY = append(e.clipY, p.Value.Double)
	case e.InsertionPoint.set(p, 10):
	case e.UVector.set(p, 11):
	case e.VVector.set(p, 12):
	case e.ImageSize.set(p, 13):
	default:
		return false, nil
	}
	return true, nil
}

func (e *Image) postParse() { e.ClipBoundary = combinePoints2(e.clipX, e.clipY) }

func (e *Image) writeSpecific(w *PairWriter, _ EntityCommon) error {
	pairs := []CodePair{NewStringPair(100, "AcDbRasterImage")}
	pairs = append(pairs, e.InsertionPoint.writePairs(10)...)
	pairs = append(pairs, e.UVector.writePairs(11)...)
	pairs = append(pairs, e.VVector.writePairs(12)...)
	pairs = append(pairs, e.ImageSize.writePairs(13)...)
	pairs = append(pairs, NewStringPair(340, e.ImageDefHandle))
	for _, pt := range e.ClipBoundary {
		pairs = append(pairs, NewDoublePair(14, pt.X), NewDoublePair(24, pt.Y))
	}
	return writeAll(w, pairs)
}

// --- Underlay variants (post-parse coalesced clip boundary) --------------

type underlayCommon struct {
	DefinitionHandle string
	InsertionPoint   Point
	Scale            Vector
	Rotation         float64
	ClipBoundary     []Point
	clipX, clipY     []float64
}

func (u *underlayCommon) applyCommon(p CodePair) bool {
	switch {
	case p.Code == 340:
		u.DefinitionHandle = p.Value.Str
	case p.Code == 50:
		u.Rotation = p.Value.Double
	case p.Code == 11:
		u.clipX = append(u.clipX, p.Value.Double)
	case p.Code == 21:
		u.clipY = append(u.clipY, p.Value.Double)
	case u.InsertionPoint.set(p, 10):
	case u.Scale.set(p, 41):
	default:
		return false
	}
	return true
}

func (u *underlayCommon) postParse() { u.ClipBoundary = combinePoints2(u.clipX, u.clipY) }

func (u *underlayCommon) writeCommon(subclass string) []CodePair {
	pairs := []CodePair{NewStringPair(100, subclass), NewStringPair(340, u.DefinitionHandle)}
	pairs = append(pairs, u.InsertionPoint.writePairs(10)...)
	pairs = append(pairs, u.Scale.writePairs(41)...)
	pairs = append(pairs, NewDoublePair(50, u.Rotation))
	for _, pt := range u.ClipBoundary {
		pairs = append(pairs, NewDoublePair(11, pt.X), NewDoublePair(21, pt.Y))
	}
	return pairs
}

type PdfUnderlay struct{ underlayCommon }
type DgnUnderlay struct{ underlayCommon }
type DwfUnderlay struct{ underlayCommon }

func newPdfUnderlay() EntityType { return &PdfUnderlay{underlayCommon{Scale: Vector{1, 1, 1}}} }
func newDgnUnderlay() EntityType { return &DgnUnderlay{underlayCommon{Scale: Vector{1, 1, 1}}} }
func newDwfUnderlay() EntityType { return &DwfUnderlay{underlayCommon{Scale: Vector{1, 1, 1}}} }

func (e *PdfUnderlay) typeString() string                     { return "PDFUNDERLAY" }
func (e *PdfUnderlay) isSupportedOnVersion(v AcadVersion) bool { return v >= R2007 }
func (e *PdfUnderlay) tryApplyCodePair(p CodePair) (bool, error) { return e.applyCommon(p), nil }
func (e *PdfUnderlay) writeSpecific(w *PairWriter, _ EntityCommon) error {
	return writeAll(w, e.writeCommon("AcDbPdfReference"))
}

func (e *DgnUnderlay) typeString() string                     { return "DGNUNDERLAY" }
func (e *DgnUnderlay) isSupportedOnVersion(v AcadVersion) bool { return v >= R2007 }
func (e *DgnUnderlay) tryApplyCodePair(p CodePair) (bool, error) { return e.applyCommon(p), nil }
func (e *DgnUnderlay) writeSpecific(w *PairWriter, _ EntityCommon) error {
	return writeAll(w, e.writeCommon("AcDbDgnReference"))
}

func (e *DwfUnderlay) typeString() string                     { return "DWFUNDERLAY" }
func (e *DwfUnderlay) isSupportedOnVersion(v AcadVersion) bool { return v >= R2007 }
func (e *DwfUnderlay) tryApplyCodePair(p CodePair) (bool, error) { return e.applyCommon(p), nil }
func (e *DwfUnderlay) writeSpecific(w *PairWriter, _ EntityCommon) error {
	return writeAll(w, e.writeCommon("AcDbDwfReference"))
}

// --- Wipeout (post-parse coalesced clip boundary) -------------------------

type Wipeout struct {
	ImageDefHandle string
	InsertionPoint Point
	UVector, VVector Vector
	ClipBoundary   []Point
	clipX, clipY   []float64
}

func newWipeout() EntityType { return &Wipeout{} }

func (e *Wipeout) typeString() string                     { return "WIPEOUT" }
func (e *Wipeout) isSupportedOnVersion(v AcadVersion) bool { return v >= R2000 }

func (e *Wipeout) tryApplyCodePair(p CodePair) (bool, error) {
	switch {
	case p.Code == 340:
		e.ImageDefHandle = p.Value.Str
	case p.Code == 14:
		e.clipX = append(e.clipX, p.Value.Double)
	case p.Code == 24:
		e.clipY = append(e.clipY, p.Value.Double)
	case e.InsertionPoint.set(p, 10):
	case e.UVector.set(p, 11):
	case e.VVector.set(p, 12):
	default:
		return false, nil
	}
	return true, nil
}

func (e *Wipeout) postParse() { e.ClipBoundary = combinePoints2(e.clipX, e.clipY) }

func (e *Wipeout) writeSpecific(w *PairWriter, _ EntityCommon) error {
	pairs := []CodePair{NewStringPair(100, "AcDbWipeout"), NewStringPair(340, e.ImageDefHandle)}
	pairs = append(pairs, e.InsertionPoint.writePairs(10)...)
	pairs = append(pairs, e.UVector.writePairs(11)...)
	pairs = append(pairs, e.VVector.writePairs(12)...)
	for _, pt := range e.ClipBoundary {
		pairs = append(pairs, NewDoublePair(14, pt.X), NewDoublePair(24, pt.Y))
	}
	return writeAll(w, pairs)
}

// --- Dimension (flat; taxonomy split left as an open question) -----------

// Dimension models every DIMENSION subtype (linear, aligned, angular,
// radial, diameter, ordinate) as one flat struct keyed by DimensionType,
// rather than six distinct Go types. See DESIGN.md's Open Question
// decision.
type Dimension struct {
	DimensionType int16
	Text          string
	DefinitionPoint, TextMidPoint Point
	InsertionPoint Point
	Rotation, HorizontalDirection float64
}

func newDimension() EntityType { return &Dimension{} }

func (e *Dimension) typeString() string                     { return "DIMENSION" }
func (e *Dimension) isSupportedOnVersion(v AcadVersion) bool { return v >= R13 }

func (e *Dimension) tryApplyCodePair(p CodePair) (bool, error) {
	switch {
	case p.Code == 1:
		e.Text = p.Value.Str
	case p.Code == 70:
		e.DimensionType = p.Value.Short
	case p.Code == 50:
		e.Rotation = p.Value.Double
	case p.Code == 51:
		e.HorizontalDirection = p.Value.Double
	case e.DefinitionPoint.set(p, 10):
	case e.TextMidPoint.set(p, 11):
	case e.InsertionPoint.set(p, 12):
	default:
		return false, nil
	}
	return true, nil
}

func (e *Dimension) writeSpecific(w *PairWriter, _ EntityCommon) error {
	pairs := []CodePair{NewStringPair(100, "AcDbDimension")}
	pairs = append(pairs, e.DefinitionPoint.writePairs(10)...)
	pairs = append(pairs, e.TextMidPoint.writePairs(11)...)
	pairs = append(pairs, NewShortPair(70, e.DimensionType))
	if e.Text != "" {
		pairs = append(pairs, NewStringPair(1, e.Text))
	}
	pairs = append(pairs, e.InsertionPoint.writePairs(12)...)
	if e.Rotation != 0 {
		pairs = append(pairs, NewDoublePair(50, e.Rotation))
	}
	if e.HorizontalDirection != 0 {
		pairs = append(pairs, NewDoublePair(51, e.HorizontalDirection))
	}
	return writeAll(w, pairs)
}

// --- Seqend ---------------------------------------------------------------

// Seqend closes a POLYLINE or INSERT-with-attributes run. It is consumed
// directly by the polyline grouping logic in drawing.go rather than
// appearing standalone in Drawing.Entities, but is registered here so an
// unpaired SEQEND (malformed input) still round-trips instead of erroring.
type Seqend struct{}

func newSeqend() EntityType { return &Seqend{} }

func (e *Seqend) typeString() string                     { return "SEQEND" }
func (e *Seqend) isSupportedOnVersion(AcadVersion) bool   { return true }
func (e *Seqend) tryApplyCodePair(CodePair) (bool, error) { return false, nil }
func (e *Seqend) writeSpecific(*PairWriter, EntityCommon) error { return nil }

// writeAll writes a slice of pairs in order, short-circuiting on error.
func writeAll(w *PairWriter, pairs []CodePair) error {
	for _, p := range pairs {
		if err := w.WriteCodePair(p); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	registerEntityType([]string{"LINE"}, newLine)
	registerEntityType([]string{"POINT"}, newPointEntity)
	registerEntityType([]string{"CIRCLE"}, newCircle)
	registerEntityType([]string{"ARC"}, newArc)
	registerEntityType([]string{"ELLIPSE"}, newEllipse)
	registerEntityType([]string{"TEXT"}, newText)
	registerEntityType([]string{"SOLID"}, newSolid)
	registerEntityType([]string{"3DFACE"}, newFace3D)
	registerEntityType([]string{"INSERT"}, newInsert)
	registerEntityType([]string{"POLYLINE"}, newPolyline)
	registerEntityType([]string{"VERTEX"}, newVertex)
	registerEntityType([]string{"SEQEND"}, newSeqend)
	registerEntityType([]string{"LWPOLYLINE"}, newLwPolyline)
	registerEntityType([]string{"SPLINE"}, newSpline)
	registerEntityType([]string{"LEADER"}, newLeader)
	registerEntityType([]string{"MLINE"}, newMLine)
	registerEntityType([]string{"SECTION"}, newSection)
	registerEntityType([]string{"IMAGE"}, newImage)
	registerEntityType([]string{"PDFUNDERLAY"}, newPdfUnderlay)
	registerEntityType([]string{"DGNUNDERLAY"}, newDgnUnderlay)
	registerEntityType([]string{"DWFUNDERLAY"}, newDwfUnderlay)
	registerEntityType([]string{"WIPEOUT"}, newWipeout)
	registerEntityType([]string{"DIMENSION"}, newDimension)
}
