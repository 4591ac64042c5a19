// Copyright 2026 The httptools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httptools

import "strconv"

// Field is a borrowed, optional byte slice: one component of a parsed URL.
// Present reports whether the component occurred in the input at all -
// spec §3 requires absent components to be distinguishable from ones that
// matched zero bytes (e.g. an empty query string after a bare "?").
//
// Field plays the role the teacher's PField (offset+length into a shared
// buffer) plays internally, but is exported and presence-tagged because
// ParseURL hands its result back to the caller as a value rather than
// keeping it inside a live, offset-addressed parser (see SPEC_FULL.md §3).
type Field struct {
	Value   []byte
	Present bool
}

func presentField(b []byte) Field {
	return Field{Value: b, Present: true}
}

// URL is the immutable result of ParseURL: the components of an HTTP
// request-target, split but not decoded (spec §1 Non-goals: "not a URL
// normalizer").
type URL struct {
	Schema   Field
	UserInfo Field
	Host     Field
	Port     uint16
	HasPort  bool
	Path     Field
	Query    Field
	Fragment Field
}

// ParseURL splits raw, an HTTP request-target (absolute-form or
// origin-form), into its components. It is a pure function: no state is
// retained across calls and raw must be wholly present (spec §4.2 - unlike
// MessageParser, UrlParser never asks for more bytes).
func ParseURL(raw []byte) (URL, error) {
	if len(raw) == 0 {
		return URL{}, newErr(KindInvalidURL, 0, "empty url")
	}
	if raw[0] == ':' {
		return URL{}, newErr(KindInvalidURL, 0, "url %q starts with ':'", escapeBytes(raw))
	}
	for i, c := range raw {
		if c == 0 {
			return URL{}, newErr(KindInvalidURL, i, "url \"%s\" contains a NUL byte", escapeBytes(raw))
		}
		if c == ' ' || isCtl(c) {
			return URL{}, newErr(KindInvalidURL, i, "url %q contains an illegal byte", escapeBytes(raw))
		}
	}

	var u URL
	i := 0

	if schemaEnd, ok := scanSchema(raw); ok {
		u.Schema = presentField(raw[:schemaEnd])
		i = schemaEnd + len("://")
		authEnd := scanAuthorityEnd(raw, i)
		if err := parseAuthority(raw[i:authEnd], i, &u); err != nil {
			return URL{}, err
		}
		i = authEnd
	}

	pathStart := i
	for i < len(raw) && raw[i] != '?' && raw[i] != '#' {
		i++
	}
	if i > pathStart || u.Schema.Present {
		u.Path = presentField(raw[pathStart:i])
	}

	if i < len(raw) && raw[i] == '?' {
		i++
		qStart := i
		for i < len(raw) && raw[i] != '#' {
			i++
		}
		u.Query = presentField(raw[qStart:i])
	}

	if i < len(raw) && raw[i] == '#' {
		i++
		u.Fragment = presentField(raw[i:])
	}

	return u, nil
}

// scanSchema recognizes "schema://" at the very start of raw. schema must
// be a letter followed by letters/digits/"+-.". It returns the offset of
// the ':' (the end of the schema token) and true on a match.
func scanSchema(raw []byte) (int, bool) {
	i := 0
	for i < len(raw) {
		c := raw[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			i++
			continue
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
			i++
			continue
		}
		break
	}
	if i == 0 {
		return 0, false
	}
	if i+3 > len(raw) || raw[i] != ':' || raw[i+1] != '/' || raw[i+2] != '/' {
		return 0, false
	}
	return i, true
}

// scanAuthorityEnd returns the offset where the authority component (the
// part between "://" and the next of '/', '?', '#', or end of input) ends.
func scanAuthorityEnd(raw []byte, from int) int {
	i := from
	for i < len(raw) && raw[i] != '/' && raw[i] != '?' && raw[i] != '#' {
		i++
	}
	return i
}

// parseAuthority fills in u.UserInfo, u.Host and u.Port from auth, which is
// raw[authOffset:authOffset+len(auth)] (authOffset tracks the absolute
// offset for error reporting).
func parseAuthority(auth []byte, authOffset int, u *URL) error {
	hostPart := auth
	if at := lastIndexByte(auth, '@'); at >= 0 {
		u.UserInfo = presentField(auth[:at])
		hostPart = auth[at+1:]
	}
	if len(hostPart) == 0 {
		return nil
	}
	if hostPart[0] == '[' {
		end := indexByte(hostPart, ']')
		if end < 0 {
			return newErr(KindInvalidURL, authOffset, "unterminated IP-literal in host")
		}
		u.Host = presentField(hostPart[1:end])
		rest := hostPart[end+1:]
		if len(rest) == 0 {
			return nil
		}
		if rest[0] != ':' {
			return newErr(KindInvalidURL, authOffset, "unexpected byte after IP-literal host")
		}
		return parsePort(rest[1:], authOffset, u)
	}
	if c := lastIndexByte(hostPart, ':'); c >= 0 {
		u.Host = presentField(hostPart[:c])
		return parsePort(hostPart[c+1:], authOffset, u)
	}
	u.Host = presentField(hostPart)
	return nil
}

func parsePort(raw []byte, offset int, u *URL) error {
	if len(raw) == 0 || len(raw) > 5 {
		return newErr(KindInvalidURL, offset, "invalid port %q", escapeBytes(raw))
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return newErr(KindInvalidURL, offset, "invalid port %q", escapeBytes(raw))
		}
	}
	n, err := strconv.Atoi(string(raw))
	if err != nil || n < 0 || n > 65535 {
		return newErr(KindInvalidURL, offset, "port %q out of range", escapeBytes(raw))
	}
	u.Port = uint16(n)
	u.HasPort = true
	return nil
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

func lastIndexByte(b []byte, c byte) int {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] == c {
			return i
		}
	}
	return -1
}
