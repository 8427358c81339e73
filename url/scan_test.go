/*
Copyright 2026 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:testpackage // White-box tests for the scanning pass.
package url

import "testing"

func TestSchemeEndIndex(t *testing.T) {
	testCases := []struct {
		input string
		want  int
	}{
		{input: "http://x", want: 4},
		{input: "a:", want: 1},
		{input: "a+b-c.d:x", want: 7},
		{input: "A1:x", want: 2},
		{input: "1a:x", want: -1},
		{input: ":x", want: -1},
		{input: "no-colon", want: -1},
		{input: "sp ace:x", want: -1},
		{input: "//host", want: -1},
		{input: "", want: -1},
	}

	for _, tc := range testCases {
		if got := schemeEndIndex(tc.input); got != tc.want {
			t.Errorf("schemeEndIndex(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

// TestScanOffsets checks the ranges the scanning pass records for a URL that
// exercises every component.
func TestScanOffsets(t *testing.T) {
	input := "http://u:p@h:8080/p?q#f"
	s := &scanner{input: input, report: discardViolations}
	if err := s.run(); err != nil {
		t.Fatalf("scan: %v", err)
	}

	if s.kind != SchemeHTTP {
		t.Errorf("kind = %v, want SchemeHTTP", s.kind)
	}
	checks := []struct {
		name string
		got  int
		want int
	}{
		{name: "schemeEnd", got: s.m.schemeEnd, want: 4},
		{name: "authorityStart", got: s.m.authorityStart, want: 7},
		{name: "usernameEnd", got: s.m.usernameEnd, want: 8},
		{name: "credentialsEnd", got: s.m.credentialsEnd, want: 10},
		{name: "hostStart", got: s.m.hostStart, want: 11},
		{name: "hostEnd", got: s.m.hostEnd, want: 12},
		{name: "portStart", got: s.m.portStart, want: 13},
		{name: "portEnd", got: s.m.portEnd, want: 17},
		{name: "portValue", got: s.m.portValue, want: 8080},
		{name: "pathStart", got: s.m.pathStart, want: 17},
		{name: "pathEnd", got: s.m.pathEnd, want: 19},
		{name: "queryStart", got: s.m.queryStart, want: 20},
		{name: "queryEnd", got: s.m.queryEnd, want: 21},
		{name: "fragmentStart", got: s.m.fragmentStart, want: 22},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}
	if s.m.cannotBeABase {
		t.Error("cannotBeABase = true")
	}
}

// TestScanFromBase checks the components-to-copy set for relative inputs.
func TestScanFromBase(t *testing.T) {
	base := MustParse("http://a/b/c?q")

	testCases := []struct {
		input   string
		want    componentSet
		shorten bool
	}{
		{input: "", want: componentScheme | componentAuthority | componentPath | componentQuery},
		{input: "#f", want: componentScheme | componentAuthority | componentPath | componentQuery},
		{input: "?y", want: componentScheme | componentAuthority | componentPath},
		{input: "g", want: componentScheme | componentAuthority | componentPath, shorten: true},
		{input: "/g", want: componentScheme | componentAuthority},
		{input: "//g", want: componentScheme},
	}

	for _, tc := range testCases {
		s := &scanner{input: tc.input, base: base, report: discardViolations}
		if err := s.run(); err != nil {
			t.Fatalf("scan(%q): %v", tc.input, err)
		}
		if s.m.fromBase != tc.want {
			t.Errorf("scan(%q) fromBase = %b, want %b", tc.input, s.m.fromBase, tc.want)
		}
		if s.m.shortenBasePath != tc.shorten {
			t.Errorf("scan(%q) shortenBasePath = %v, want %v", tc.input, s.m.shortenBasePath, tc.shorten)
		}
	}
}

// TestScanCannotBeABase checks opaque-path detection.
func TestScanCannotBeABase(t *testing.T) {
	testCases := []struct {
		input  string
		opaque bool
	}{
		{input: "mailto:a@b", opaque: true},
		{input: "data:text/plain,hi", opaque: true},
		{input: "a:/b", opaque: false},
		{input: "http://h/p", opaque: false},
	}

	for _, tc := range testCases {
		s := &scanner{input: tc.input, report: discardViolations}
		if err := s.run(); err != nil {
			t.Fatalf("scan(%q): %v", tc.input, err)
		}
		if s.m.cannotBeABase != tc.opaque {
			t.Errorf("scan(%q) cannotBeABase = %v, want %v", tc.input, s.m.cannotBeABase, tc.opaque)
		}
	}
}
