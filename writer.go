// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import (
	"fmt"
	"io"

	"github.com/stephens2424/writerset"
)

// PairWriter emits code pairs in DXF's two-line, \r\n-terminated wire
// format: the code right-aligned to width 3, then the value. Every pair
// is broadcast through a writerset.WriterSet so an auxiliary --trace
// sink can be attached or detached without disturbing the primary
// destination.
type PairWriter struct {
	set     *writerset.WriterSet
	traceID int
	tracing bool
}

// NewPairWriter wraps w as a code-pair sink.
func NewPairWriter(w io.Writer) *PairWriter {
	set := writerset.New()
	set.Add(w)
	return &PairWriter{set: set}
}

// Trace installs an auxiliary writer that receives a copy of every code
// pair written, in the same wire format, independent of the primary
// writer. Passing nil disables tracing. This backs cmd/dxfdump's --trace
// flag.
func (w *PairWriter) Trace(aux io.Writer) {
	if w.tracing {
		w.set.Remove(w.traceID)
		w.tracing = false
	}
	if aux == nil {
		return
	}
	w.traceID = w.set.Add(aux)
	w.tracing = true
}

// WriteCodePair writes a single pair.
func (w *PairWriter) WriteCodePair(pair CodePair) error {
	line := fmt.Sprintf("%3d\r\n%s\r\n", pair.Code, pair.Value.writeString())
	if _, err := io.WriteString(w.set, line); err != nil {
		return ioError(err)
	}
	return nil
}
