// Copyright 2026 The httptools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httptools

import "testing"

func TestScanChunkSizeLine(t *testing.T) {
	tests := []struct {
		in       string
		wantSize uint64
		wantErr  bool
	}{
		{"5\r\n", 5, false},
		{"1a\r\n", 0x1a, false},
		{"0\r\n", 0, false},
		{"ff;ext=1\r\n", 0xff, false},
		{"\r\n", 0, true},
		{"gg\r\n", 0, true},
		{"ffffffffffffffff1\r\n", 0, true}, // overflow
	}
	for _, tc := range tests {
		_, size, err := scanChunkSizeLine([]byte(tc.in), 0)
		if tc.wantErr {
			if err == nil || isNeedMore(err) {
				t.Errorf("scanChunkSizeLine(%q): err = %v, want a real error", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("scanChunkSizeLine(%q): err = %v", tc.in, err)
			continue
		}
		if size != tc.wantSize {
			t.Errorf("scanChunkSizeLine(%q) = %d, want %d", tc.in, size, tc.wantSize)
		}
	}
}

func TestScanChunkSizeLineNeedsMore(t *testing.T) {
	for _, in := range []string{"", "5", "5\r", "5;ex"} {
		_, _, err := scanChunkSizeLine([]byte(in), 0)
		if !isNeedMore(err) {
			t.Errorf("scanChunkSizeLine(%q): err = %v, want needMore", in, err)
		}
	}
}
