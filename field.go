// Copyright 2026 The httptools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httptools

// offT is the type used for offsets and lengths inside a parse buffer.
// int rather than the teacher's uint16 since a single feed buffer is not
// bounded to 64k here (the caller owns fragmentation policy, not us).
type offT = int

// field is an offset+length view into the buffer currently being parsed,
// the same representation the teacher's PField uses for fline/header/token
// values. It is only ever used internally, while the bytes it points into
// are still live (the buffer passed to the current FeedData call).
type field struct {
	off offT
	len offT
}

// set points f at [start:end).
func (f *field) set(start, end int) {
	f.off = start
	f.len = end - start
}

// extend grows f so it ends at newEnd.
func (f *field) extend(newEnd int) {
	f.len = newEnd - f.off
}

// empty reports whether f has zero length.
func (f field) empty() bool {
	return f.len == 0
}

// endOff returns the offset directly after the end of f.
func (f field) endOff() int {
	return f.off + f.len
}

// get returns the byte slice f designates inside buf.
func (f field) get(buf []byte) []byte {
	return buf[f.off : f.off+f.len]
}

// reset clears f to the empty field at offset 0.
func (f *field) reset() {
	f.off = 0
	f.len = 0
}
