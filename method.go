// Copyright 2026 The httptools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httptools

import (
	"bytes"

	"github.com/intuitivelabs/bytescase"
)

// Method identifies a parsed request method. The zero value, MethodUnknown,
// never appears as the result of a successful parse of a well-formed
// request (an unrecognized token fails with KindInvalidMethod); it exists
// so the type has a meaningful zero value before a start-line is parsed.
type Method uint8

// Strict RFC 7230/7231 methods plus the WebDAV/pub-sub set the reference
// grammar engine has historically accepted (spec §9, "relaxed mode").
const (
	MethodUnknown Method = iota
	MethodGet
	MethodHead
	MethodPost
	MethodPut
	MethodDelete
	MethodConnect
	MethodOptions
	MethodTrace
	MethodPatch
	// relaxed-mode extensions (WebDAV, versioning, pub-sub, notify)
	MethodCopy
	MethodLock
	MethodMkcol
	MethodMove
	MethodPropfind
	MethodProppatch
	MethodSearch
	MethodUnlock
	MethodBind
	MethodRebind
	MethodUnbind
	MethodAcl
	MethodReport
	MethodMkactivity
	MethodCheckout
	MethodMerge
	MethodMsearch
	MethodNotify
	MethodSubscribe
	MethodUnsubscribe
	MethodPurge
	MethodLink
	MethodUnlink
	methodMax
)

var methodNames = [methodMax]string{
	MethodUnknown:     "",
	MethodGet:         "GET",
	MethodHead:        "HEAD",
	MethodPost:        "POST",
	MethodPut:         "PUT",
	MethodDelete:      "DELETE",
	MethodConnect:     "CONNECT",
	MethodOptions:     "OPTIONS",
	MethodTrace:       "TRACE",
	MethodPatch:       "PATCH",
	MethodCopy:        "COPY",
	MethodLock:        "LOCK",
	MethodMkcol:       "MKCOL",
	MethodMove:        "MOVE",
	MethodPropfind:    "PROPFIND",
	MethodProppatch:   "PROPPATCH",
	MethodSearch:      "SEARCH",
	MethodUnlock:      "UNLOCK",
	MethodBind:        "BIND",
	MethodRebind:      "REBIND",
	MethodUnbind:      "UNBIND",
	MethodAcl:         "ACL",
	MethodReport:      "REPORT",
	MethodMkactivity:  "MKACTIVITY",
	MethodCheckout:    "CHECKOUT",
	MethodMerge:       "MERGE",
	MethodMsearch:     "M-SEARCH",
	MethodNotify:      "NOTIFY",
	MethodSubscribe:   "SUBSCRIBE",
	MethodUnsubscribe: "UNSUBSCRIBE",
	MethodPurge:       "PURGE",
	MethodLink:        "LINK",
	MethodUnlink:      "UNLINK",
}

// String implements fmt.Stringer.
func (m Method) String() string {
	if m < methodMax {
		return methodNames[m]
	}
	return ""
}

// method name -> Method, hashed the same way the teacher's
// parse_method.go hashes SIP methods: first byte (case folded) and length
// pick a small bucket, checked with an exact case-sensitive compare.
type methodEntry struct {
	name []byte
	m    Method
}

const (
	methodHashBitsLen  uint = 3
	methodHashBitsChar uint = 5
)

var methodLookup [1 << (methodHashBitsLen + methodHashBitsChar)][]methodEntry

func hashMethodName(n []byte) int {
	const (
		maskChar = (1 << methodHashBitsChar) - 1
		maskLen  = (1 << methodHashBitsLen) - 1
	)
	return (int(bytescase.ByteToLower(n[0])) & maskChar) |
		((len(n) & maskLen) << methodHashBitsChar)
}

func init() {
	for m := MethodGet; m < methodMax; m++ {
		name := []byte(methodNames[m])
		h := hashMethodName(name)
		methodLookup[h] = append(methodLookup[h], methodEntry{name: name, m: m})
	}
}

// lookupMethod resolves a raw method token to a Method, or MethodUnknown if
// the token is not in the known set (spec §4.1: "unknown tokens fail with
// InvalidMethod"). Unlike header names, method tokens are matched
// case-sensitively: "get" is not GET. The hash still folds case (via
// bytescase.ByteToLower) purely to pick a bucket; the bucket is then
// searched with an exact, case-sensitive byte comparison.
func lookupMethod(tok []byte) Method {
	if len(tok) == 0 {
		return MethodUnknown
	}
	h := hashMethodName(tok)
	for _, e := range methodLookup[h] {
		if bytes.Equal(tok, e.name) {
			return e.m
		}
	}
	return MethodUnknown
}
