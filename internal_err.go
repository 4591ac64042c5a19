// Copyright 2026 The httptools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httptools

// errKind is the internal, low-level error/signal vocabulary the scanning
// and per-field state machines use to talk to each other, distinct from the
// public Kind/Error exposed to callers. This mirrors the teacher's
// ErrorHdr: a small closed set of sentinel values, most of which are not
// errors at all but control-flow signals ("need more bytes", "found the
// empty line", "there's another value after this one") that the calling
// state machine switches on (see parse_tok.go's ParseTokenLst, which
// switches over exactly this kind of value).
type errKind uint8

const (
	errOk errKind = iota
	// errMoreBytes: the field is not fully contained in the buffer;
	// resume from the returned offset once more bytes are available.
	errMoreBytes
	// errBadChar: an illegal byte was found at the returned offset.
	errBadChar
	// errEmpty: an empty line (bare CRLF) was found where a header or
	// token was expected - signals end of header section.
	errEmpty
	// errEOH: end of header value reached (CRLF not followed by
	// obs-fold whitespace).
	errEOH
	// errMoreValues: a list separator was found; the returned offset is
	// the start of the next value in a comma/space separated list.
	errMoreValues
	// errNotNumber: a value that was expected to be numeric (chunk size,
	// Content-Length) was not.
	errNotNumber
	// errBug: an internal invariant was violated; never expected to
	// surface to a caller.
	errBug
)
