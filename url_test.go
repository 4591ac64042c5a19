// Copyright 2026 The httptools Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file.

package httptools

import "testing"

func TestParseURLFull(t *testing.T) {
	u, err := ParseURL([]byte("dsf://i:n@aaa:88/b/c?aa#123"))
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	check := func(name string, got Field, wantPresent bool, want string) {
		t.Helper()
		if got.Present != wantPresent {
			t.Errorf("%s.Present = %v, want %v", name, got.Present, wantPresent)
			return
		}
		if wantPresent && string(got.Value) != want {
			t.Errorf("%s = %q, want %q", name, got.Value, want)
		}
	}
	check("Schema", u.Schema, true, "dsf")
	check("UserInfo", u.UserInfo, true, "i:n")
	check("Host", u.Host, true, "aaa")
	check("Path", u.Path, true, "/b/c")
	check("Query", u.Query, true, "aa")
	check("Fragment", u.Fragment, true, "123")
	if !u.HasPort || u.Port != 88 {
		t.Errorf("Port = %d, HasPort = %v, want 88/true", u.Port, u.HasPort)
	}
}

func TestParseURLIPLiteral(t *testing.T) {
	u, err := ParseURL([]byte("http://[1:2::3:4]:67/"))
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if string(u.Host.Value) != "1:2::3:4" {
		t.Errorf("Host = %q", u.Host.Value)
	}
	if !u.HasPort || u.Port != 67 {
		t.Errorf("Port = %d, HasPort = %v", u.Port, u.HasPort)
	}
	if string(u.Path.Value) != "/" {
		t.Errorf("Path = %q", u.Path.Value)
	}
	if u.Query.Present || u.Fragment.Present || u.UserInfo.Present {
		t.Errorf("expected query/fragment/userinfo absent, got %+v", u)
	}
}

func TestParseURLNulByte(t *testing.T) {
	_, err := ParseURL([]byte("dsf://a\x00aa"))
	perr, ok := err.(*Error)
	if !ok || perr.Kind != KindInvalidURL {
		t.Fatalf("err = %v, want InvalidUrl", err)
	}
	if want := `a\x00aa`; !containsStr(perr.Error(), want) {
		t.Errorf("error message %q does not contain escaped %q", perr.Error(), want)
	}
}

func TestParseURLEmptyOrBlank(t *testing.T) {
	for _, raw := range []string{"", " "} {
		_, err := ParseURL([]byte(raw))
		perr, ok := err.(*Error)
		if !ok || perr.Kind != KindInvalidURL {
			t.Errorf("ParseURL(%q) err = %v, want InvalidUrl", raw, err)
		}
	}
}

func TestParseURLLeadingColon(t *testing.T) {
	_, err := ParseURL([]byte(":foo"))
	perr, ok := err.(*Error)
	if !ok || perr.Kind != KindInvalidURL {
		t.Fatalf("err = %v, want InvalidUrl", err)
	}
}

func TestParseURLOriginForm(t *testing.T) {
	u, err := ParseURL([]byte("/a/b?c=d"))
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if u.Schema.Present || u.Host.Present {
		t.Errorf("origin-form url should have no schema/host, got %+v", u)
	}
	if string(u.Path.Value) != "/a/b" || string(u.Query.Value) != "c=d" {
		t.Errorf("Path=%q Query=%q", u.Path.Value, u.Query.Value)
	}
}

func containsStr(haystack, needle string) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}
