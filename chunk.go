// Copyright 2026 The httptools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httptools

// scanChunkSizeLine scans a chunk-size line: hex-digits [";" chunk-ext]
// CRLF (RFC 7230 §4.1). Grounded on the teacher's ParseChunk
// (parse_chunk.go), which delegates the hex-size/extension scan to
// ParseTokenLst; here the extension is treated as opaque (only control
// bytes are rejected) since no component of this module inspects chunk
// extensions.
func scanChunkSizeLine(buf []byte, i int) (next int, size uint64, err *Error) {
	start := i
	j := i
	for j < len(buf) && isHexDigit(buf[j]) {
		j++
	}
	if j >= len(buf) {
		return start, 0, errNeedMore()
	}
	if j == i {
		return j, 0, newErr(KindInvalidChunkSize, j, "missing chunk size")
	}
	size, ok := hexToUint64(buf[i:j])
	if !ok {
		return i, 0, newErr(KindInvalidChunkSize, i, "chunk size overflows 64 bits")
	}
	k := j
	for k < len(buf) && buf[k] != '\r' && buf[k] != '\n' {
		if isCtl(buf[k]) && buf[k] != '\t' {
			return k, 0, newErr(KindInvalidChunkSize, k, "illegal byte in chunk extension")
		}
		k++
	}
	if k >= len(buf) {
		return start, 0, errNeedMore()
	}
	end, _, ek := scanCRLF(buf, k)
	if ek == errMoreBytes {
		return start, 0, errNeedMore()
	}
	if ek != errOk {
		return k, 0, newErr(KindInvalidChunkSize, k, "malformed chunk-size line terminator")
	}
	return end, size, nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
