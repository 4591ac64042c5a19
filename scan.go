// Copyright 2026 The httptools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httptools

// Low level byte scanners shared by the first-line, header and token state
// machines. These play the role of the skip* helpers the teacher's
// parse_fline.go / parse_headers.go / parse_tok.go call (skipToken, skipWS,
// skipLWS, skipLine, skipCRLF, skipTokenDelim) but are not themselves part
// of the retrieved teacher sources; they are written fresh here in the
// teacher's own scanning idiom: plain byte-at-a-time for loops, an explicit
// "not enough bytes yet" sentinel instead of a buffered reader, no
// allocation.

// isTokenChar reports whether c is a valid RFC 7230 "tctext" token
// character (field-name and method grammar).
func isTokenChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`',
		'|', '~':
		return true
	}
	return false
}

// isCtl reports whether c is an ASCII control character (RFC 7230 ctext
// excludes these from field-values, save for HTAB).
func isCtl(c byte) bool {
	return c < 0x20 || c == 0x7f
}

// scanToken advances i over token characters, stopping at the first
// non-token byte (or len(buf) if none is found before the end).
func scanToken(buf []byte, i int) int {
	for i < len(buf) && isTokenChar(buf[i]) {
		i++
	}
	return i
}

// scanTokenDelim advances i like scanToken but also stops at delim (used by
// header-name scanning, which must additionally stop at ':').
func scanTokenDelim(buf []byte, i int, delim byte) int {
	for i < len(buf) {
		c := buf[i]
		if c == delim || !isTokenChar(c) {
			break
		}
		i++
	}
	return i
}

// scanWS advances i over SP/HT.
func scanWS(buf []byte, i int) int {
	for i < len(buf) && (buf[i] == ' ' || buf[i] == '\t') {
		i++
	}
	return i
}

// scanCRLF expects a line terminator at buf[i] (CRLF, a bare LF, or a bare
// CR followed by non-LF, tolerated per spec §6). It returns the offset
// right after the terminator and the terminator's length (1 or 2), or
// errMoreBytes if buf does not contain enough bytes to decide.
func scanCRLF(buf []byte, i int) (next int, n int, err errKind) {
	if i >= len(buf) {
		return i, 0, errMoreBytes
	}
	switch buf[i] {
	case '\n':
		return i + 1, 1, errOk
	case '\r':
		if i+1 >= len(buf) {
			return i, 0, errMoreBytes
		}
		if buf[i+1] == '\n' {
			return i + 2, 2, errOk
		}
		// bare CR: tolerate it as a one-byte terminator (matches the
		// same bare-LF tolerance spec §6 asks for on the other side).
		return i + 1, 1, errOk
	default:
		return i, 0, errBadChar
	}
}

// scanLine advances i to the first byte after the next line terminator,
// treating every byte up to the terminator as opaque content (used for the
// reason-phrase, which may contain almost anything). crLen is the length of
// the terminator consumed (so the caller can exclude it from the captured
// field).
func scanLine(buf []byte, i int) (next int, crLen int, err errKind) {
	j := i
	for j < len(buf) {
		if buf[j] == '\r' || buf[j] == '\n' {
			return scanCRLF(buf, j)
		}
		if isCtl(buf[j]) {
			return j, 0, errBadChar
		}
		j++
	}
	return j, 0, errMoreBytes
}

// scanLWS scans linear white space starting at buf[i], including
// obs-folded continuations (CRLF followed by at least one SP/HT, RFC 7230
// §3.2.4). It returns the offset of the first non-LWS byte, or, if the
// header's end (a line terminator without continuation) was found instead
// (err == errEOH), the offset after that terminator with n set to the
// offset of the terminator itself.
//
// Return contract, mirroring the teacher's skipLWS usage in parse_tok.go:
//   - err == errOk:        next is the first non-LWS byte, keep parsing.
//   - err == errEOH:       header value ended (CRLF not followed by
//     SP/HT); next points after the terminator, n points at the
//     terminator start.
//   - err == errMoreBytes: not enough bytes to decide; caller resumes
//     from the offset returned in next.
func scanLWS(buf []byte, i int) (next int, n int, err errKind) {
	j := i
	for {
		if j >= len(buf) {
			return j, 0, errMoreBytes
		}
		switch buf[j] {
		case ' ', '\t':
			j++
			continue
		case '\r', '\n':
			lineEnd := j
			after, crLen, e := scanCRLF(buf, j)
			if e == errMoreBytes {
				return lineEnd, 0, errMoreBytes
			}
			if e != errOk {
				return after, 0, e
			}
			if after < len(buf) && (buf[after] == ' ' || buf[after] == '\t') {
				// obs-fold: continuation line, keep scanning as LWS.
				j = after
				continue
			}
			if after >= len(buf) {
				// can't yet tell if a continuation follows.
				return lineEnd, 0, errMoreBytes
			}
			_ = crLen
			return after, lineEnd, errEOH
		default:
			if j == i {
				return j, 0, errOk
			}
			return j, 0, errOk
		}
	}
}

// hexToUint64 parses a hex chunk-size. It reports overflow rather than
// wrapping, matching spec §4.1's InvalidChunkSize-on-overflow requirement.
func hexToUint64(b []byte) (uint64, bool) {
	if len(b) == 0 {
		return 0, false
	}
	var v uint64
	for _, c := range b {
		var d uint64
		switch {
		case c >= '0' && c <= '9':
			d = uint64(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint64(c-'A') + 10
		default:
			return 0, false
		}
		if v > (1<<64-1-d)>>4 {
			return 0, false // would overflow on the next shift
		}
		v = v<<4 | d
	}
	return v, true
}
