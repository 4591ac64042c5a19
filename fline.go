// Copyright 2026 The httptools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httptools

// parsedRequestLine / parsedResponseLine hold the result of a successful
// start-line scan. They are plain offset/length fields into the buffer
// passed to scanRequestLine/scanResponseLine, in the teacher's PFLine
// style (parse_fline.go), generalized to also report errKind-style
// "not enough bytes yet" instead of only "done or bad".
type parsedRequestLine struct {
	method  field
	target  field
	version field
}

type parsedResponseLine struct {
	version field
	status  field
	reason  field
}

// parseVersionDigits validates and extracts the two single-digit version numbers
// out of a "HTTP/<digit>.<digit>" token (spec §4.1: "HTTP-version must
// match HTTP/<digit>.<digit>"). v is the token bytes without the "HTTP/"
// prefix, e.g. "1.1".
func parseVersionDigits(v []byte) (major, minor int, ok bool) {
	if len(v) != 3 || v[1] != '.' {
		return 0, 0, false
	}
	if v[0] < '0' || v[0] > '9' || v[2] < '0' || v[2] > '9' {
		return 0, 0, false
	}
	return int(v[0] - '0'), int(v[2] - '0'), true
}

// scanRequestLine scans "METHOD SP request-target SP HTTP-version CRLF"
// starting at buf[i]. Grammar and error kinds per spec §4.1. Grounded on
// the teacher's ParseFLine (parse_fline.go) request-branch, generalized
// with explicit Kind-tagged failures instead of a single ErrHdrBadChar.
func scanRequestLine(buf []byte, i int) (next int, rl parsedRequestLine, err *Error) {
	start := i
	j := scanToken(buf, i)
	if j >= len(buf) {
		return start, rl, errNeedMore()
	}
	if buf[j] != ' ' {
		return j, rl, newErr(KindInvalidMethod, j, "unexpected byte in method token")
	}
	rl.method.set(i, j)
	if rl.method.empty() {
		return j, rl, newErr(KindInvalidMethod, j, "empty method")
	}
	i = j + 1

	targetStart := i
	for i < len(buf) && buf[i] != ' ' {
		if buf[i] == '\r' || buf[i] == '\n' || isCtl(buf[i]) {
			return i, rl, newErr(KindInvalidURL, i, "illegal byte in request-target")
		}
		i++
	}
	if i >= len(buf) {
		return start, rl, errNeedMore()
	}
	rl.target.set(targetStart, i)
	if rl.target.empty() {
		return i, rl, newErr(KindInvalidURL, i, "empty request-target")
	}
	i++ // skip SP

	verStart := i
	for i < len(buf) && buf[i] != '\r' && buf[i] != '\n' {
		i++
	}
	if i >= len(buf) {
		return start, rl, errNeedMore()
	}
	rl.version.set(verStart, i)
	if !validVersionToken(rl.version.get(buf)) {
		return verStart, rl, newErr(KindInvalidVersion, verStart, "malformed HTTP-version")
	}

	next, _, ek := scanCRLF(buf, i)
	if ek == errMoreBytes {
		return start, rl, errNeedMore()
	}
	if ek != errOk {
		return i, rl, newErr(KindInvalidVersion, i, "missing CRLF after request-line")
	}
	return next, rl, nil
}

// scanResponseLine scans "HTTP-version SP status-code SP reason-phrase
// CRLF". Grounded on the teacher's ParseFLine reply branch.
func scanResponseLine(buf []byte, i int) (next int, rl parsedResponseLine, err *Error) {
	start := i
	verStart := i
	j := i
	for j < len(buf) && buf[j] != ' ' {
		j++
	}
	if j >= len(buf) {
		return start, rl, errNeedMore()
	}
	rl.version.set(verStart, j)
	if !validVersionToken(rl.version.get(buf)) {
		return verStart, rl, newErr(KindInvalidVersion, verStart, "malformed HTTP-version")
	}
	i = j + 1

	if i+4 > len(buf) {
		return start, rl, errNeedMore()
	}
	if buf[i] < '0' || buf[i] > '9' ||
		buf[i+1] < '0' || buf[i+1] > '9' ||
		buf[i+2] < '0' || buf[i+2] > '9' ||
		buf[i+3] != ' ' {
		return i, rl, newErr(KindInvalidStatus, i, "status code is not three digits")
	}
	rl.status.set(i, i+3)
	i += 4

	reasonStart := i
	for i < len(buf) && buf[i] != '\r' && buf[i] != '\n' {
		if isCtl(buf[i]) {
			return i, rl, newErr(KindInvalidStatus, i, "illegal byte in reason-phrase")
		}
		i++
	}
	if i >= len(buf) {
		return start, rl, errNeedMore()
	}
	rl.reason.set(reasonStart, i)

	next, _, ek := scanCRLF(buf, i)
	if ek == errMoreBytes {
		return start, rl, errNeedMore()
	}
	if ek != errOk {
		return i, rl, newErr(KindInvalidStatus, i, "missing CRLF after status-line")
	}
	return next, rl, nil
}

// validVersionToken reports whether v is exactly "HTTP/<d>.<d>".
func validVersionToken(v []byte) bool {
	const prefix = "HTTP/"
	if len(v) != len(prefix)+3 {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if v[i] != prefix[i] {
			return false
		}
	}
	_, _, ok := parseVersionDigits(v[len(prefix):])
	return ok
}

// statusCodeValue parses a validated 3-digit status field into its integer
// value and reports whether it falls in the required [100, 599] range
// (spec §4.1).
func statusCodeValue(s []byte) (int, bool) {
	v := int(s[0]-'0')*100 + int(s[1]-'0')*10 + int(s[2]-'0')
	return v, v >= 100 && v <= 599
}

// errNeedMore is the sentinel *Error used internally to signal "not enough
// bytes yet" up through the scanRequestLine/scanResponseLine callers; it is
// never returned from a public API (the parser always translates it into
// "wait for the next FeedData call" and swallows it).
var needMoreSentinel = &Error{Kind: 0, Msg: "need more bytes"}

func errNeedMore() *Error { return needMoreSentinel }

func isNeedMore(e *Error) bool { return e == needMoreSentinel }
