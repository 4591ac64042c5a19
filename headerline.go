// Copyright 2026 The httptools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httptools

// scanHeaderLine scans one "field-name: field-value CRLF" header line,
// including any obs-folded continuation lines (RFC 7230 §3.2.4), or
// recognizes the empty line that ends a header section.
//
// Grounded on the teacher's ParseHdrLine (parse_headers.go): same
// name/colon/value/CRLF shape, generalized to fold obs-fold continuations
// into a single logical value instead of exposing them to the caller as
// separate lines (spec §3: "leading whitespace of a folded continuation is
// replaced by a single SP").
//
// When no fold occurs the returned value aliases buf directly (zero-copy).
// When a fold does occur the folded line is not contiguous in buf, so the
// joined value is built into *scratch, which the caller must not reuse
// until it has consumed (or copied) the returned value.
func scanHeaderLine(buf []byte, i int, scratch *[]byte) (next int, name field, value []byte, endOfHeaders bool, err *Error) {
	start := i
	if i >= len(buf) {
		return start, field{}, nil, false, errNeedMore()
	}
	if buf[i] == '\r' || buf[i] == '\n' {
		after, _, ek := scanCRLF(buf, i)
		if ek == errMoreBytes {
			return start, field{}, nil, false, errNeedMore()
		}
		if ek != errOk {
			return i, field{}, nil, false, newErr(KindInvalidHeaderToken, i, "malformed line terminator")
		}
		return after, field{}, nil, true, nil
	}

	j := scanTokenDelim(buf, i, ':')
	if j >= len(buf) {
		return start, field{}, nil, false, errNeedMore()
	}
	if buf[j] != ':' {
		return j, field{}, nil, false, newErr(KindInvalidHeaderToken, j, "illegal byte in header field-name")
	}
	var name_ field
	name_.set(i, j)
	if name_.empty() {
		return j, field{}, nil, false, newErr(KindInvalidHeaderToken, j, "empty header field-name")
	}
	i = j + 1
	i = scanWS(buf, i)

	*scratch = (*scratch)[:0]
	folded := false
	valStart := i

	for {
		segStart := i
		for i < len(buf) && buf[i] != '\r' && buf[i] != '\n' {
			if isCtl(buf[i]) && buf[i] != '\t' {
				return i, field{}, nil, false, newErr(KindInvalidHeaderToken, i, "illegal byte in header field-value")
			}
			i++
		}
		if i >= len(buf) {
			return start, field{}, nil, false, errNeedMore()
		}
		lineEnd := i
		after, _, ek := scanCRLF(buf, i)
		if ek == errMoreBytes {
			return start, field{}, nil, false, errNeedMore()
		}
		if ek != errOk {
			return i, field{}, nil, false, newErr(KindInvalidHeaderToken, i, "malformed line terminator")
		}
		if after < len(buf) && (buf[after] == ' ' || buf[after] == '\t') {
			if !folded {
				folded = true
				*scratch = append(*scratch, buf[valStart:lineEnd]...)
			} else {
				*scratch = append(*scratch, buf[segStart:lineEnd]...)
			}
			*scratch = append(*scratch, ' ')
			i = scanWS(buf, after)
			continue
		}
		if after >= len(buf) {
			return start, field{}, nil, false, errNeedMore()
		}
		if folded {
			*scratch = append(*scratch, buf[segStart:lineEnd]...)
			*scratch = trimTrailingOWS(*scratch)
			return after, name_, *scratch, false, nil
		}
		var v field
		v.set(valStart, lineEnd)
		return after, name_, trimTrailingOWS(v.get(buf)), false, nil
	}
}

// trimTrailingOWS strips trailing SP/HT bytes, matching the leading OWS
// already stripped by scanWS before the value was captured.
func trimTrailingOWS(b []byte) []byte {
	end := len(b)
	for end > 0 && (b[end-1] == ' ' || b[end-1] == '\t') {
		end--
	}
	return b[:end]
}
