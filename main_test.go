// Copyright 2026 The httptools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httptools

// Test scaffolding adapted from the teacher's init_test.go: a
// flag-overridable random seed so a failing fuzz-style run can be
// reproduced with "-seed".

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"testing"
	"time"
)

var seed int64

func TestMain(m *testing.M) {
	seed = time.Now().UnixNano()
	flag.Int64Var(&seed, "seed", seed, "random seed")
	flag.Parse()
	rand.Seed(seed)
	fmt.Printf("using random seed %d (0x%x) (\"-seed\" to change)\n", seed, seed)
	os.Exit(m.Run())
}

// randCase returns s with each letter's case independently randomized,
// adapted from the teacher's utils_test.go randCase (used there to fuzz
// header/method case-insensitivity; used here to check that method lookup
// is case-sensitive).
func randCase(s string) string {
	r := make([]byte, len(s))
	for i, b := range []byte(s) {
		switch rand.Intn(3) {
		case 0:
			if b >= 'A' && b <= 'Z' {
				b += 'a' - 'A'
			}
		case 1:
			if b >= 'a' && b <= 'z' {
				b -= 'a' - 'A'
			}
		}
		r[i] = b
	}
	return string(r)
}

// feedInFragments splits msg into n pieces at random offsets and feeds them
// to p one at a time, stopping at and returning the first error FeedData
// returns (so a test that probes UpgradeDetected sees the fragment it was
// raised on).
func feedInFragments(t *testing.T, p *MessageParser, msg []byte, n int) error {
	t.Helper()
	if n <= 0 || n > len(msg) {
		n = len(msg)
	}
	cuts := make([]int, 0, n)
	for i := 1; i < n; i++ {
		cuts = append(cuts, rand.Intn(len(msg)+1))
	}
	cuts = append(cuts, 0, len(msg))
	// sort cuts
	for i := 1; i < len(cuts); i++ {
		for j := i; j > 0 && cuts[j] < cuts[j-1]; j-- {
			cuts[j], cuts[j-1] = cuts[j-1], cuts[j]
		}
	}
	var last error
	for i := 1; i < len(cuts); i++ {
		frag := msg[cuts[i-1]:cuts[i]]
		if err := p.FeedData(frag); err != nil {
			return err
		}
		_ = last
	}
	return nil
}

// feedByteAtATime feeds msg to p one byte at a time, returning the first
// error encountered (if any).
func feedByteAtATime(p *MessageParser, msg []byte) error {
	for i := range msg {
		if err := p.FeedData(msg[i : i+1]); err != nil {
			return err
		}
	}
	return nil
}
