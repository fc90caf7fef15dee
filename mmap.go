// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import (
	"bufio"
	"bytes"
	"os"

	"github.com/edsrzf/mmap-go"
)

// LoadFileMmap decodes a drawing from path using a memory-mapped read
// instead of buffered I/O, avoiding a full-file copy into the Go heap for
// very large DXF documents. The mapping is unmapped before LoadFileMmap
// returns; Load consumes the mapped bytes synchronously so there's no
// lifetime hazard in keeping it mapped only for the duration of the call.
func LoadFileMmap(path string) (*Drawing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError(err)
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, ioError(err)
	}
	defer m.Unmap()

	r, err := StripBOM(bufio.NewReader(bytes.NewReader(m)))
	if err != nil {
		return nil, err
	}
	return Load(r)
}
