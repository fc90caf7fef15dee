// headerVariableTable matches spec/HeaderVariables.xml. Hand-authored,
// not machine output, for the same reason entity_gen.go is — see its
// header comment and cmd/dxfgen's docs. cmd/dxfgen's Generator.
// WriteHeaderTable renders this exact shape (the add/addCustom splice),
// just into a separate scratch directory rather than over this file.

package dxf

// headerVariableTable lists every tracked system variable in canonical
// write order. A variable whose minVersion exceeds the drawing's version is
// skipped on write and, if encountered on read from an older file, still
// applied (readers are more permissive than writers). Entries come either
// from a typed helper keyed on spec/HeaderVariables.xml's Type attribute, or
// — for the few marked Custom="true" — by name from customHeaderVariables
// (header_custom.go).
var headerVariableTable = func() []headerVariable {
	var t []headerVariable
	add := func(name string, minVersion AcadVersion,
		read func(h *Header, values []CodePair), write func(h *Header) []CodePair) {
		t = append(t, v(name, minVersion, read, write))
	}
	addCustom := func(name string) {
		t = append(t, customHeaderVariables[name])
	}

	addCustom("$ACADVER")
	add("$DWGCODEPAGE", R9, stringVar(3, func(h *Header) *string { return &h.DrawingCodePage }))
	add("$HANDSEED", R13, stringVar(5, func(h *Header) *string { return &h.HandSeed }))

	{
		read, write := pointVar(10, func(h *Header) *Point { return &h.InsertionBase })
		add("$INSBASE", R9, read, write)
	}
	{
		read, write := pointVar(10, func(h *Header) *Point { return &h.ExtMin })
		add("$EXTMIN", R9, read, write)
	}
	{
		read, write := pointVar(10, func(h *Header) *Point { return &h.ExtMax })
		add("$EXTMAX", R9, read, write)
	}
	{
		read, write := pointVar(10, func(h *Header) *Point { return &h.LimMin })
		add("$LIMMIN", R9, read, write)
	}
	{
		read, write := pointVar(10, func(h *Header) *Point { return &h.LimMax })
		add("$LIMMAX", R9, read, write)
	}

	add("$ORTHOMODE", R9, boolVar(70, func(h *Header) *bool { return &h.OrthoMode }))
	add("$REGENMODE", R9, boolVar(70, func(h *Header) *bool { return &h.RegenMode }))
	add("$FILLMODE", R9, boolVar(70, func(h *Header) *bool { return &h.FillMode }))
	add("$QTEXTMODE", R9, boolVar(70, func(h *Header) *bool { return &h.QuickTextMode }))
	add("$MIRRTEXT", R9, boolVar(70, func(h *Header) *bool { return &h.MirrorText }))
	add("$LTSCALE", R9, doubleVar(40, func(h *Header) *float64 { return &h.LineTypeScale }))
	add("$ATTMODE", R9, shortVar(70, func(h *Header) *int16 { return &h.AttributeMode }))
	add("$TEXTSIZE", R9, doubleVar(40, func(h *Header) *float64 { return &h.TextHeight }))
	add("$TRACEWID", R9, doubleVar(40, func(h *Header) *float64 { return &h.TraceWidth }))
	add("$TEXTSTYLE", R9, stringVar(7, func(h *Header) *string { return &h.TextStyle }))
	add("$CLAYER", R9, stringVar(8, func(h *Header) *string { return &h.CurrentLayer }))
	add("$CELTYPE", R9, stringVar(6, func(h *Header) *string { return &h.CurrentLineType }))
	add("$CECOLOR", R9, colorVar(62, func(h *Header) *Color { return &h.CurrentColor }))
	add("$CELTSCALE", R13, doubleVar(40, func(h *Header) *float64 { return &h.CurrentLineTypeScale }))

	add("$DIMSCALE", R9, doubleVar(40, func(h *Header) *float64 { return &h.DimScaleOverall }))
	add("$DIMASZ", R9, doubleVar(40, func(h *Header) *float64 { return &h.DimArrowSize }))
	add("$DIMTXT", R9, doubleVar(40, func(h *Header) *float64 { return &h.DimTextHeight }))

	addCustom("$LUNITS")
	add("$LUPREC", R9, shortVar(70, func(h *Header) *int16 { return &h.LinearUnitPrecision }))
	add("$AUNITS", R9, shortVar(70, func(h *Header) *int16 { return &h.AngularUnitFormat }))
	addCustom("$ANGDIR")

	add("$PDMODE", R9, shortVar(70, func(h *Header) *int16 { return &h.PointDisplayMode }))
	add("$PDSIZE", R9, doubleVar(40, func(h *Header) *float64 { return &h.PointDisplaySize }))
	add("$PLINEWID", R9, doubleVar(40, func(h *Header) *float64 { return &h.DefaultPolylineWidth }))
	add("$SPLINESEGS", R9, shortVar(70, func(h *Header) *int16 { return &h.SplineSegments }))
	add("$SURFU", R9, shortVar(70, func(h *Header) *int16 { return &h.SurfaceDensityU }))
	add("$SURFV", R9, shortVar(70, func(h *Header) *int16 { return &h.SurfaceDensityV }))

	add("$INSUNITS", R2000, shortVar(70, func(h *Header) *int16 { return &h.DefaultDrawingUnits }))
	add("$EXTNAMES", R2000, boolVar(290, func(h *Header) *bool { return &h.ExtendedNames }))
	add("$WORLDVIEW", R9, boolVar(70, func(h *Header) *bool { return &h.WorldView }))
	add("$TILEMODE", R13, shortVar(70, func(h *Header) *int16 { return &h.TileMode }))

	return t
}()
