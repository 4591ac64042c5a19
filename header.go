// Copyright 2026 The httptools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httptools

import (
	"github.com/intuitivelabs/bytescase"
)

// headerKind classifies a header name for framing purposes only (every
// header, regardless of kind, is still delivered to the sink's on_header
// callback - spec §3). This is a trimmed version of the teacher's HdrT /
// hdrName2Type / hdrNameLookup machinery (parse_headers.go): same hashed
// lookup idiom, reduced to the handful of headers that actually change
// MessageParser's framing/upgrade decisions.
type headerKind uint8

const (
	headerOther headerKind = iota
	headerContentLength
	headerTransferEncoding
	headerConnection
	headerUpgrade
)

type headerEntry struct {
	name []byte
	kind headerKind
}

var headerNames = [...]headerEntry{
	{[]byte("content-length"), headerContentLength},
	{[]byte("transfer-encoding"), headerTransferEncoding},
	{[]byte("connection"), headerConnection},
	{[]byte("upgrade"), headerUpgrade},
}

const (
	headerHashBitsLen  uint = 2
	headerHashBitsChar uint = 5
)

var headerLookup [1 << (headerHashBitsLen + headerHashBitsChar)][]headerEntry

func hashHeaderName(n []byte) int {
	const (
		maskChar = (1 << headerHashBitsChar) - 1
		maskLen  = (1 << headerHashBitsLen) - 1
	)
	return (int(bytescase.ByteToLower(n[0])) & maskChar) |
		((len(n) & maskLen) << headerHashBitsChar)
}

func init() {
	for _, h := range headerNames {
		i := hashHeaderName(h.name)
		headerLookup[i] = append(headerLookup[i], h)
	}
}

// classifyHeader resolves a header name to its framing-relevant kind, or
// headerOther if it does not affect framing/upgrade decisions.
func classifyHeader(name []byte) headerKind {
	if len(name) == 0 {
		return headerOther
	}
	i := hashHeaderName(name)
	for _, h := range headerLookup[i] {
		if bytescase.CmpEq(name, h.name) {
			return h.kind
		}
	}
	return headerOther
}

// connectionHasToken reports whether val (the value of a Connection
// header, possibly one of several comma-joined instances already folded by
// the caller) contains tok as a comma-separated, case-insensitive token -
// used for "Connection: close", "Connection: keep-alive" and
// "Connection: Upgrade" (spec §4.1 upgrade detection, §3 should_keep_alive).
func connectionHasToken(val []byte, tok []byte) bool {
	i := 0
	for i < len(val) {
		for i < len(val) && (val[i] == ' ' || val[i] == '\t' || val[i] == ',') {
			i++
		}
		start := i
		for i < len(val) && val[i] != ',' {
			i++
		}
		end := i
		for end > start && (val[end-1] == ' ' || val[end-1] == '\t') {
			end--
		}
		if end > start && bytescase.CmpEq(val[start:end], tok) {
			return true
		}
	}
	return false
}

// transferEncodingIsChunkedFinal reports whether the final (rightmost)
// coding in a comma-separated Transfer-Encoding value is "chunked",
// case-insensitively - spec §4.1 framing priority rule 1 only triggers when
// chunked is the *last* coding applied.
func transferEncodingIsChunkedFinal(val []byte) bool {
	// find the last comma-separated token.
	end := len(val)
	for end > 0 && (val[end-1] == ' ' || val[end-1] == '\t') {
		end--
	}
	start := end
	for start > 0 && val[start-1] != ',' {
		start--
	}
	for start < end && (val[start] == ' ' || val[start] == '\t') {
		start++
	}
	return end > start && bytescase.CmpEq(val[start:end], []byte("chunked"))
}
