// Object type definitions matching spec/ObjectsSpec.xml. Hand-authored,
// not machine output, for the same reason entity_gen.go is — see its
// header comment and cmd/dxfgen's docs.

package dxf

// Dictionary is a DICTIONARY object: a named-handle lookup table.
type Dictionary struct {
	HardOwnerFlag bool
	Entries       map[string]string // name -> handle
	names         []string          // last-seen name pending a handle
}

func newDictionary() ObjectType { return &Dictionary{Entries: make(map[string]string)} }
func (o *Dictionary) typeString() string { return "DICTIONARY" }
func (o *Dictionary) tryApplyCodePair(p CodePair) (bool, error) {
	switch p.Code {
	case 280:
		o.HardOwnerFlag = p.Value.Short != 0
	case 3:
		o.names = append(o.names, p.Value.Str)
	case 350, 360:
		if len(o.names) > 0 {
			name := o.names[0]
			o.names = o.names[1:]
			o.Entries[name] = p.Value.Str
		}
	default:
		return false, nil
	}
	return true, nil
}
func (o *Dictionary) writeSpecific(w *PairWriter) error {
	pairs := []CodePair{NewStringPair(100, "AcDbDictionary")}
	n := int16(0)
	if o.HardOwnerFlag {
		n = 1
	}
	pairs = append(pairs, NewShortPair(280, n))
	for name, handle := range o.Entries {
		pairs = append(pairs, NewStringPair(3, name), NewStringPair(350, handle))
	}
	return writeAll(w, pairs)
}

// XRecord is an XRECORD object: an arbitrary bag of group codes in the
// 1-369 / 1000-1071 range, used to stash application-specific data that
// doesn't merit its own object type.
type XRecord struct {
	DuplicateRecordCloningFlag int16
	Data []CodePair
}

func newXRecord() ObjectType { return &XRecord{} }
func (o *XRecord) typeString() string { return "XRECORD" }
func (o *XRecord) tryApplyCodePair(p CodePair) (bool, error) {
	if p.Code == 280 {
		o.DuplicateRecordCloningFlag = p.Value.Short
		return true, nil
	}
	o.Data = append(o.Data, p)
	return true, nil
}
func (o *XRecord) writeSpecific(w *PairWriter) error {
	pairs := []CodePair{NewStringPair(100, "AcDbXrecord"), NewShortPair(280, o.DuplicateRecordCloningFlag)}
	pairs = append(pairs, o.Data...)
	return writeAll(w, pairs)
}

// Layout is a LAYOUT object: one paper-space or model-space layout tab.
type Layout struct {
	LayoutName string
	TabOrder   int16
	MinLimits, MaxLimits Point
}

func newLayout() ObjectType { return &Layout{} }
func (o *Layout) typeString() string { return "LAYOUT" }
func (o *Layout) tryApplyCodePair(p CodePair) (bool, error) {
	switch {
	case p.Code == 1:
		o.LayoutName = p.Value.Str
	case p.Code == 71:
		o.TabOrder = p.Value.Short
	case o.MinLimits.set(p, 10):
	case o.MaxLimits.set(p, 11):
	default:
		return false, nil
	}
	return true, nil
}
func (o *Layout) writeSpecific(w *PairWriter) error {
	pairs := []CodePair{NewStringPair(100, "AcDbLayout"), NewStringPair(1, o.LayoutName)}
	pairs = append(pairs, NewShortPair(71, o.TabOrder))
	pairs = append(pairs, o.MinLimits.writePairs(10)...)
	pairs = append(pairs, o.MaxLimits.writePairs(11)...)
	return writeAll(w, pairs)
}

// MLineStyle is an MLINESTYLE object: a named multiline style definition.
type MLineStyle struct {
	StyleName   string
	Description string
	Flags       int16
}

func newMLineStyle() ObjectType { return &MLineStyle{} }
func (o *MLineStyle) typeString() string { return "MLINESTYLE" }
func (o *MLineStyle) tryApplyCodePair(p CodePair) (bool, error) {
	switch p.Code {
	case 2:
		o.StyleName = p.Value.Str
	case 3:
		o.Description = p.Value.Str
	case 70:
		o.Flags = p.Value.Short
	default:
		return false, nil
	}
	return true, nil
}
func (o *MLineStyle) writeSpecific(w *PairWriter) error {
	return writeAll(w, []CodePair{
		NewStringPair(100, "AcDbMlineStyle"),
		NewStringPair(2, o.StyleName),
		NewShortPair(70, o.Flags),
		NewStringPair(3, o.Description),
	})
}

func init() {
	registerObjectType("DICTIONARY", newDictionary)
	registerObjectType("XRECORD", newXRecord)
	registerObjectType("LAYOUT", newLayout)
	registerObjectType("MLINESTYLE", newMLineStyle)
}
