// Copyright 2026 The httptools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httptools

import "testing"

func TestScanRequestLine(t *testing.T) {
	buf := []byte("GET /index.html HTTP/1.1\r\nHost: x\r\n")
	next, rl, err := scanRequestLine(buf, 0)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if string(rl.method.get(buf)) != "GET" {
		t.Errorf("method = %q", rl.method.get(buf))
	}
	if string(rl.target.get(buf)) != "/index.html" {
		t.Errorf("target = %q", rl.target.get(buf))
	}
	if string(rl.version.get(buf)) != "HTTP/1.1" {
		t.Errorf("version = %q", rl.version.get(buf))
	}
	if buf[next] != 'H' { // start of "Host"
		t.Errorf("next = %d, points at %q", next, buf[next])
	}
}

func TestScanRequestLineNeedsMore(t *testing.T) {
	for _, in := range []string{"", "GE", "GET ", "GET /x", "GET /x HTTP/1.1", "GET /x HTTP/1.1\r"} {
		_, _, err := scanRequestLine([]byte(in), 0)
		if !isNeedMore(err) {
			t.Errorf("scanRequestLine(%q): err = %v, want needMore", in, err)
		}
	}
}

func TestScanResponseLine(t *testing.T) {
	buf := []byte("HTTP/1.1 404 Not Found\r\n\r\n")
	next, rl, err := scanResponseLine(buf, 0)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	code, ok := statusCodeValue(rl.status.get(buf))
	if !ok || code != 404 {
		t.Errorf("status = %d, %v", code, ok)
	}
	if string(rl.reason.get(buf)) != "Not Found" {
		t.Errorf("reason = %q", rl.reason.get(buf))
	}
	if next != len("HTTP/1.1 404 Not Found\r\n") {
		t.Errorf("next = %d", next)
	}
}

func TestScanResponseLineEmptyReason(t *testing.T) {
	buf := []byte("HTTP/1.1 204 \r\n")
	_, rl, err := scanResponseLine(buf, 0)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if len(rl.reason.get(buf)) != 0 {
		t.Errorf("reason = %q, want empty", rl.reason.get(buf))
	}
}

func TestValidVersionToken(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"HTTP/1.1", true},
		{"HTTP/1.0", true},
		{"HTTP/9.9", true},
		{"HTTP/1.10", false},
		{"http/1.1", false},
		{"HTTP1.1", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := validVersionToken([]byte(tc.in)); got != tc.want {
			t.Errorf("validVersionToken(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
