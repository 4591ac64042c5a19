// Copyright 2026 The httptools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httptools

import "fmt"

// Kind identifies one member of the closed error taxonomy a MessageParser
// or ParseURL can raise. The set is closed: every error returned by this
// package is either a *Error with one of these Kinds or, for the upgrade
// signal, an *UpgradeError.
type Kind uint8

const (
	// KindInvalidMethod: request start-line method not in the known set.
	KindInvalidMethod Kind = iota + 1
	// KindInvalidURL: malformed request-target (MessageParser) or
	// malformed URL (ParseURL).
	KindInvalidURL
	// KindInvalidStatus: response status code not three digits in
	// [100, 599].
	KindInvalidStatus
	// KindInvalidVersion: HTTP-version token malformed.
	KindInvalidVersion
	// KindInvalidContentLength: non-numeric or conflicting Content-Length.
	KindInvalidContentLength
	// KindInvalidChunkSize: non-hex or overflowing chunk size.
	KindInvalidChunkSize
	// KindInvalidHeaderToken: illegal byte in field-name or field-value.
	KindInvalidHeaderToken
	// KindDataAfterCompleted: FeedData called with non-empty bytes after
	// a terminal Complete phase that does not permit a following message.
	KindDataAfterCompleted
	// KindCallbackFailure: a Sink method returned an error; the original
	// is preserved and reachable with errors.Unwrap/errors.As.
	KindCallbackFailure
	// KindTypeError: reserved for non-bytes-like input in bindings that
	// type-assert before calling into this package; FeedData/ParseURL
	// themselves are typed []byte and cannot receive this in Go, but the
	// Kind is kept so the taxonomy maps 1:1 onto the language-neutral
	// spec.
	KindTypeError
)

var kindNames = [...]string{
	KindInvalidMethod:        "invalid method",
	KindInvalidURL:           "invalid url",
	KindInvalidStatus:        "invalid status",
	KindInvalidVersion:       "invalid version",
	KindInvalidContentLength: "invalid content-length",
	KindInvalidChunkSize:     "invalid chunk size",
	KindInvalidHeaderToken:   "invalid header token",
	KindDataAfterCompleted:   "data after completed",
	KindCallbackFailure:      "callback failure",
	KindTypeError:            "type error",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown error kind"
}

// Error is the concrete error type returned for every protocol-level or
// callback failure. It plays the role the teacher's ErrorHdr sentinel
// values play (parse_tok.go, parse_headers.go), generalized into a public,
// inspectable type instead of a set of unexported numeric constants, since
// callers here are arbitrary third-party code rather than the package's own
// state machines.
type Error struct {
	Kind   Kind
	Msg    string
	Offset int   // offset into the buffer passed to the failing FeedData call
	cause  error // wrapped callback error, if Kind == KindCallbackFailure
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("httptools: %s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("httptools: %s", e.Kind)
}

// Unwrap exposes the original sink error for errors.Is/errors.As, so a
// CallbackFailure's cause chain is inspectable the way spec §7 requires.
func (e *Error) Unwrap() error {
	return e.cause
}

func newErr(kind Kind, offset int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

func newCallbackErr(offset int, cause error) *Error {
	return &Error{
		Kind:   KindCallbackFailure,
		Offset: offset,
		Msg:    cause.Error(),
		cause:  cause,
	}
}

// UpgradeError is raised by FeedData when parsing stops because the
// message handed control of the byte stream to an upgraded protocol
// (spec §4.1, "UpgradeDetected"). It is not a protocol failure: the
// parser is left in a valid terminal Upgraded phase. Offset is the index
// into the buffer passed to the FeedData call that returned this error of
// the first byte not consumed by the HTTP parser — i.e. the first byte of
// the tunnelled protocol, retrievable by the caller as buf[err.Offset:].
type UpgradeError struct {
	Offset int
}

// Error implements the error interface.
func (e *UpgradeError) Error() string {
	return fmt.Sprintf("httptools: upgrade detected at offset %d", e.Offset)
}

// escapeBytes renders b as a safe, printable string for inclusion in error
// messages (spec §4.2: "error message includes a safe, escaped rendering of
// the offending bytes"), escaping control and non-ASCII bytes as \xHH.
func escapeBytes(b []byte) string {
	out := make([]byte, 0, len(b)+8)
	for _, c := range b {
		switch {
		case c == '\\':
			out = append(out, '\\', '\\')
		case c >= 0x20 && c < 0x7f:
			out = append(out, c)
		default:
			const hex = "0123456789abcdef"
			out = append(out, '\\', 'x', hex[c>>4], hex[c&0xf])
		}
	}
	return string(out)
}
