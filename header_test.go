// Copyright 2026 The httptools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httptools

import "testing"

func TestClassifyHeaderCaseInsensitive(t *testing.T) {
	tests := []struct {
		name string
		want headerKind
	}{
		{"Content-Length", headerContentLength},
		{"CONTENT-LENGTH", headerContentLength},
		{"content-length", headerContentLength},
		{"Transfer-Encoding", headerTransferEncoding},
		{"Connection", headerConnection},
		{"Upgrade", headerUpgrade},
		{"X-Custom", headerOther},
		{"", headerOther},
	}
	for _, tc := range tests {
		if got := classifyHeader([]byte(tc.name)); got != tc.want {
			t.Errorf("classifyHeader(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestConnectionHasToken(t *testing.T) {
	tests := []struct {
		val  string
		tok  string
		want bool
	}{
		{"close", "close", true},
		{"Keep-Alive, Upgrade", "upgrade", true},
		{"keep-alive", "close", false},
		{"", "close", false},
		{"upgrade", "upgrade", true},
	}
	for _, tc := range tests {
		if got := connectionHasToken([]byte(tc.val), []byte(tc.tok)); got != tc.want {
			t.Errorf("connectionHasToken(%q, %q) = %v, want %v", tc.val, tc.tok, got, tc.want)
		}
	}
}

func TestTransferEncodingIsChunkedFinal(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"chunked", true},
		{"gzip, chunked", true},
		{"chunked, gzip", false},
		{"gzip", false},
		{"", false},
		{"CHUNKED", true},
	}
	for _, tc := range tests {
		if got := transferEncodingIsChunkedFinal([]byte(tc.val)); got != tc.want {
			t.Errorf("transferEncodingIsChunkedFinal(%q) = %v, want %v", tc.val, got, tc.want)
		}
	}
}

func TestScanHeaderLineBasic(t *testing.T) {
	var scratch []byte
	buf := []byte("Host: example.com\r\n\r\n")
	next, name, value, done, err := scanHeaderLine(buf, 0, &scratch)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if done {
		t.Fatalf("done = true on first line")
	}
	if string(name.get(buf)) != "Host" || string(value) != "example.com" {
		t.Fatalf("name=%q value=%q", name.get(buf), value)
	}
	_, _, _, done2, err2 := scanHeaderLine(buf, next, &scratch)
	if err2 != nil || !done2 {
		t.Fatalf("second call: done=%v err=%v, want end of headers", done2, err2)
	}
}

func TestScanHeaderLineNeedsMore(t *testing.T) {
	var scratch []byte
	buf := []byte("Host: examp")
	_, _, _, _, err := scanHeaderLine(buf, 0, &scratch)
	if !isNeedMore(err) {
		t.Fatalf("err = %v, want needMore", err)
	}
}

func TestScanHeaderLineIllegalFieldName(t *testing.T) {
	var scratch []byte
	buf := []byte("Ho st: x\r\n\r\n")
	_, _, _, _, err := scanHeaderLine(buf, 0, &scratch)
	if err == nil || err.Kind != KindInvalidHeaderToken {
		t.Fatalf("err = %v, want InvalidHeaderToken", err)
	}
}
