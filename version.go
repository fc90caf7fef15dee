// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

// AcadVersion is an enumerated DXF revision identifier.
type AcadVersion int

// Supported AcadVersion values, oldest first.
const (
	R9 AcadVersion = iota
	R10
	R11
	R12
	R13
	R14
	R2000
	R2004
	R2007
	R2010
	R2013
	R2014
)

var versionStrings = map[AcadVersion]string{
	R9:    "AC1004",
	R10:   "AC1006",
	R11:   "AC1009",
	R12:   "AC1009",
	R13:   "AC1012",
	R14:   "AC1014",
	R2000: "AC1015",
	R2004: "AC1018",
	R2007: "AC1021",
	R2010: "AC1024",
	R2013: "AC1027",
	R2014: "AC1027",
}

// String returns the DXF $ACADVER string for the version, e.g. "AC1027"
// for R2013/R2014.
func (v AcadVersion) String() string {
	if s, ok := versionStrings[v]; ok {
		return s
	}
	return "AC1009"
}

var parseVersionStrings = map[string]AcadVersion{
	"AC1004": R9,
	"AC1006": R10,
	"AC1009": R12, // R11 and R12 share this string; R12 is the far more common find
	"AC1012": R13,
	"AC1014": R14,
	"AC1015": R2000,
	"AC1018": R2004,
	"AC1021": R2007,
	"AC1024": R2010,
	"AC1027": R2013, // R2013 and R2014 share this string
}

// ParseAcadVersion maps a $ACADVER value string to an AcadVersion. Unknown
// strings map to R2014, since newer unrecognized revisions are more common
// in the wild than ancient ones and the decoder is permissive by design.
func ParseAcadVersion(s string) AcadVersion {
	if v, ok := parseVersionStrings[s]; ok {
		return v
	}
	return R2014
}
