// Table record type definitions matching spec/TableSpec.xml. Hand-
// authored, not machine output, for the same reason entity_gen.go is —
// see its header comment and cmd/dxfgen's docs.

package dxf

// AppId is an APPID table record: a registered extended-data application
// name.
type AppId struct {
	Common TableRecordCommon
	Flags  int16
}

func newAppId() TableRecordType { return &AppId{} }
func (r *AppId) typeString() string { return "APPID" }
func (r *AppId) tryApplyCodePair(p CodePair) (bool, error) {
	if p.Code == 70 {
		r.Flags = p.Value.Short
		return true, nil
	}
	return false, nil
}
func (r *AppId) writeSpecific(w *PairWriter) error {
	return writeAll(w, []CodePair{NewStringPair(100, "AcDbRegAppTableRecord"), NewShortPair(70, r.Flags)})
}

// BlockRecord is a BLOCK_RECORD table record.
type BlockRecord struct {
	Common     TableRecordCommon
	LayoutHandle string
}

func newBlockRecord() TableRecordType { return &BlockRecord{} }
func (r *BlockRecord) typeString() string { return "BLOCK_RECORD" }
func (r *BlockRecord) tryApplyCodePair(p CodePair) (bool, error) {
	if p.Code == 340 {
		r.LayoutHandle = p.Value.Str
		return true, nil
	}
	return false, nil
}
func (r *BlockRecord) writeSpecific(w *PairWriter) error {
	pairs := []CodePair{NewStringPair(100, "AcDbBlockTableRecord")}
	if r.LayoutHandle != "" {
		pairs = append(pairs, NewStringPair(340, r.LayoutHandle))
	}
	return writeAll(w, pairs)
}

// DimStyle is a DIMSTYLE table record: a named set of dimension variables.
type DimStyle struct {
	Common   TableRecordCommon
	ArrowSize float64
	TextHeight float64
	ScaleFactor float64
}

func newDimStyle() TableRecordType {
	return &DimStyle{ArrowSize: 0.18, TextHeight: 0.18, ScaleFactor: 1}
}
func (r *DimStyle) typeString() string { return "DIMSTYLE" }
func (r *DimStyle) tryApplyCodePair(p CodePair) (bool, error) {
	switch p.Code {
	case 41:
		r.ArrowSize = p.Value.Double
	case 140:
		r.TextHeight = p.Value.Double
	case 40:
		r.ScaleFactor = p.Value.Double
	default:
		return false, nil
	}
	return true, nil
}
func (r *DimStyle) writeSpecific(w *PairWriter) error {
	return writeAll(w, []CodePair{
		NewStringPair(105, r.Common.Handle),
		NewDoublePair(40, r.ScaleFactor),
		NewDoublePair(41, r.ArrowSize),
		NewDoublePair(140, r.TextHeight),
	})
}

// Layer is a LAYER table record.
type Layer struct {
	Common   TableRecordCommon
	Flags    int16
	Color    Color
	LineType string
	IsPlottable bool
	LineWeight  LineWeight
}

func newLayer() TableRecordType {
	return &Layer{Color: ColorFromIndex(7), LineType: "CONTINUOUS", IsPlottable: true, LineWeight: LineWeightFromValue(-3)}
}
func (r *Layer) typeString() string { return "LAYER" }
func (r *Layer) tryApplyCodePair(p CodePair) (bool, error) {
	switch p.Code {
	case 70:
		r.Flags = p.Value.Short
	case 62:
		r.Color = colorFromRawValue(p.Value.Short)
	case 6:
		r.LineType = p.Value.Str
	case 290:
		r.IsPlottable = p.Value.Short != 0
	case 370:
		r.LineWeight = LineWeightFromValue(p.Value.Short)
	default:
		return false, nil
	}
	return true, nil
}
func (r *Layer) writeSpecific(w *PairWriter) error {
	pairs := []CodePair{
		NewStringPair(100, "AcDbLayerTableRecord"),
		NewShortPair(70, r.Flags),
		NewShortPair(62, r.Color.RawValue()),
		NewStringPair(6, r.LineType),
	}
	if !r.IsPlottable {
		pairs = append(pairs, NewShortPair(290, 0))
	}
	pairs = append(pairs, NewShortPair(370, r.LineWeight.RawValue()))
	return writeAll(w, pairs)
}

// LineTypeRecord is an LTYPE table record.
type LineTypeRecord struct {
	Common      TableRecordCommon
	Description string
	PatternLength float64
	DashLengths []float64
}

func newLineTypeRecord() TableRecordType { return &LineTypeRecord{} }
func (r *LineTypeRecord) typeString() string { return "LTYPE" }
func (r *LineTypeRecord) tryApplyCodePair(p CodePair) (bool, error) {
	switch p.Code {
	case 3:
		r.Description = p.Value.Str
	case 40:
		r.PatternLength = p.Value.Double
	case 49:
		r.DashLengths = append(r.DashLengths, p.Value.Double)
	default:
		return false, nil
	}
	return true, nil
}
func (r *LineTypeRecord) writeSpecific(w *PairWriter) error {
	pairs := []CodePair{
		NewStringPair(100, "AcDbLinetypeTableRecord"),
		NewStringPair(3, r.Description),
		NewShortPair(72, 65),
		NewIntPair(73, int32(len(r.DashLengths))),
		NewDoublePair(40, r.PatternLength),
	}
	for _, d := range r.DashLengths {
		pairs = append(pairs, NewDoublePair(49, d))
	}
	return writeAll(w, pairs)
}

// Style is a STYLE table record: a named text style.
type Style struct {
	Common     TableRecordCommon
	Flags      int16
	TextHeight float64
	WidthFactor float64
	ObliqueAngle float64
	PrimaryFontFileName string
	BigFontFileName     string
}

func newStyle() TableRecordType {
	return &Style{WidthFactor: 1, PrimaryFontFileName: "txt.shx"}
}
func (r *Style) typeString() string { return "STYLE" }
func (r *Style) tryApplyCodePair(p CodePair) (bool, error) {
	switch p.Code {
	case 70:
		r.Flags = p.Value.Short
	case 40:
		r.TextHeight = p.Value.Double
	case 41:
		r.WidthFactor = p.Value.Double
	case 50:
		r.ObliqueAngle = p.Value.Double
	case 3:
		r.PrimaryFontFileName = p.Value.Str
	case 4:
		r.BigFontFileName = p.Value.Str
	default:
		return false, nil
	}
	return true, nil
}
func (r *Style) writeSpecific(w *PairWriter) error {
	return writeAll(w, []CodePair{
		NewStringPair(100, "AcDbTextStyleTableRecord"),
		NewShortPair(70, r.Flags),
		NewDoublePair(40, r.TextHeight),
		NewDoublePair(41, r.WidthFactor),
		NewDoublePair(50, r.ObliqueAngle),
		NewShortPair(71, 0),
		NewDoublePair(42, r.TextHeight),
		NewStringPair(3, r.PrimaryFontFileName),
		NewStringPair(4, r.BigFontFileName),
	})
}

// Ucs is a UCS table record: a named user coordinate system.
type Ucs struct {
	Common TableRecordCommon
	Origin Point
	XAxis, YAxis Vector
}

func newUcs() TableRecordType { return &Ucs{XAxis: Vector{1, 0, 0}, YAxis: Vector{0, 1, 0}} }
func (r *Ucs) typeString() string { return "UCS" }
func (r *Ucs) tryApplyCodePair(p CodePair) (bool, error) {
	switch {
	case r.Origin.set(p, 10):
	case r.XAxis.set(p, 11):
	case r.YAxis.set(p, 12):
	default:
		return false, nil
	}
	return true, nil
}
func (r *Ucs) writeSpecific(w *PairWriter) error {
	pairs := []CodePair{NewStringPair(100, "AcDbUCSTableRecord")}
	pairs = append(pairs, r.Origin.writePairs(10)...)
	pairs = append(pairs, r.XAxis.writePairs(11)...)
	pairs = append(pairs, r.YAxis.writePairs(12)...)
	return writeAll(w, pairs)
}

// View is a VIEW table record: a named, saved view.
type View struct {
	Common TableRecordCommon
	Height, Width float64
	Center Point
	ViewDirection Vector
}

func newView() TableRecordType {
	return &View{Height: 1, Width: 1, ViewDirection: ZAxis}
}
func (r *View) typeString() string { return "VIEW" }
func (r *View) tryApplyCodePair(p CodePair) (bool, error) {
	switch {
	case p.Code == 40:
		r.Height = p.Value.Double
	case p.Code == 41:
		r.Width = p.Value.Double
	case r.Center.set(p, 10):
	case r.ViewDirection.set(p, 11):
	default:
		return false, nil
	}
	return true, nil
}
func (r *View) writeSpecific(w *PairWriter) error {
	pairs := []CodePair{NewStringPair(100, "AcDbViewTableRecord")}
	pairs = append(pairs, NewDoublePair(40, r.Height))
	pairs = append(pairs, r.Center.writePairs(10)...)
	pairs = append(pairs, NewDoublePair(41, r.Width))
	pairs = append(pairs, r.ViewDirection.writePairs(11)...)
	return writeAll(w, pairs)
}

// ViewPort is a VPORT table record: a named viewport configuration.
type ViewPort struct {
	Common TableRecordCommon
	LowerLeft, UpperRight Point
	ViewCenter Point
	SnapSpacing, GridSpacing Point
}

func newViewPort() TableRecordType { return &ViewPort{UpperRight: Point{1, 1, 0}} }
func (r *ViewPort) typeString() string { return "VPORT" }
func (r *ViewPort) tryApplyCodePair(p CodePair) (bool, error) {
	switch {
	case r.LowerLeft.set(p, 10):
	case r.UpperRight.set(p, 11):
	case r.ViewCenter.set(p, 12):
	case r.SnapSpacing.set(p, 14):
	case r.GridSpacing.set(p, 15):
	default:
		return false, nil
	}
	return true, nil
}
func (r *ViewPort) writeSpecific(w *PairWriter) error {
	pairs := []CodePair{NewStringPair(100, "AcDbViewportTableRecord")}
	pairs = append(pairs, r.LowerLeft.writePairs(10)...)
	pairs = append(pairs, r.UpperRight.writePairs(11)...)
	pairs = append(pairs, r.ViewCenter.writePairs(12)...)
	pairs = append(pairs, r.SnapSpacing.writePairs(14)...)
	pairs = append(pairs, r.GridSpacing.writePairs(15)...)
	return writeAll(w, pairs)
}

func init() {
	registerTableRecordType("APPID", newAppId)
	registerTableRecordType("BLOCK_RECORD", newBlockRecord)
	registerTableRecordType("DIMSTYLE", newDimStyle)
	registerTableRecordType("LAYER", newLayer)
	registerTableRecordType("LTYPE", newLineTypeRecord)
	registerTableRecordType("STYLE", newStyle)
	registerTableRecordType("UCS", newUcs)
	registerTableRecordType("VIEW", newView)
	registerTableRecordType("VPORT", newViewPort)
}
