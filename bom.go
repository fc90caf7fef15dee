// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// StripBOM returns a reader that transparently strips a leading UTF-8 BOM
// (EF BB BF) from r, if present. AutoCAD occasionally writes one; the
// lexer has no use for it and would otherwise choke parsing the group
// code on the first line.
func StripBOM(r *bufio.Reader) (io.Reader, error) {
	peek, err := r.Peek(3)
	if err != nil && err != io.EOF {
		return nil, ioError(err)
	}
	if len(peek) == 3 && peek[0] == 0xEF && peek[1] == 0xBB && peek[2] == 0xBF {
		return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
	}
	return r, nil
}
