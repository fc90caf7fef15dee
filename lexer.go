// Copyright 2024 The caddxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// PairReader presents a lazy, finite sequence of code pairs read from an
// ASCII DXF stream, with a one-slot pushback buffer for the section driver's
// lookahead. It owns its underlying reader for the duration of a load.
type PairReader struct {
	scanner   *bufio.Scanner
	pushed    *CodePair
	hasPushed bool
	lenient   bool
}

// NewPairReader wraps r as a code-pair source. r should already have any
// leading BOM stripped (see StripBOM). The returned reader is strict: a
// section, table, or header that ends mid-body (an io.EOF where a
// structural 0/ENDSEC, 0/ENDTAB, or further variable was expected) is
// reported as ErrUnexpectedEOF. Use NewPairReaderWithOptions for
// Options.Lenient decoding.
func NewPairReader(r io.Reader) *PairReader {
	return newPairReader(r, Options{})
}

// NewPairReaderWithOptions wraps r as a code-pair source honoring opts.
func NewPairReaderWithOptions(r io.Reader, opts Options) *PairReader {
	return newPairReader(r, opts)
}

func newPairReader(r io.Reader, opts Options) *PairReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &PairReader{scanner: s, lenient: opts.Lenient}
}

// toleratedEOF reports how a structural read loop (one waiting on a
// terminator such as 0/ENDSEC or 0/ENDTAB) should treat an io.EOF from
// Next: nil (accept the premature end, same as dxf-rs's forgiving entity
// reads) under Options.Lenient, ErrUnexpectedEOF otherwise.
func (r *PairReader) toleratedEOF() error {
	if r.lenient {
		return nil
	}
	return ErrUnexpectedEOF
}

// Unread pushes pair back onto the reader; the next call to Next returns it
// again. Only one slot of pushback is supported, matching the section
// driver's single-lookahead requirement.
func (r *PairReader) Unread(pair CodePair) {
	r.pushed = &pair
	r.hasPushed = true
}

// Next returns the next code pair. It returns io.EOF when the stream ends
// cleanly (an empty or absent code line, including a dangling partial pair
// at EOF, which reads are forgiving of). Code 999 (comment) pairs are
// skipped transparently.
func (r *PairReader) Next() (CodePair, error) {
	if r.hasPushed {
		p := *r.pushed
		r.pushed = nil
		r.hasPushed = false
		return p, nil
	}

	for {
		codeLine, ok := r.readLine()
		if !ok {
			return CodePair{}, io.EOF
		}
		codeLine = strings.TrimSpace(codeLine)
		if codeLine == "" {
			return CodePair{}, io.EOF
		}
		code, err := strconv.Atoi(codeLine)
		if err != nil {
			return CodePair{}, lexErrorf("invalid code %q: %v", codeLine, err)
		}

		valueLine, ok := r.readLine()
		if !ok {
			// A partial pair at EOF is tolerated as a clean end.
			return CodePair{}, io.EOF
		}

		kind, known := expectedType(code)
		if !known {
			return CodePair{}, lexErrorf("unknown code %d", code)
		}
		val, err := parseValue(kind, valueLine)
		if err != nil {
			return CodePair{}, err
		}

		if code == 999 {
			continue
		}
		return CodePair{Code: code, Value: val}, nil
	}
}

// readLine returns the next logical line with its trailing \r stripped,
// and false if no line is available.
func (r *PairReader) readLine() (string, bool) {
	if !r.scanner.Scan() {
		return "", false
	}
	return r.scanner.Text(), true
}
