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

//nolint:testpackage // White-box tests for unexported predicates.
package url

import "testing"

func TestDotSegments(t *testing.T) {
	testCases := []struct {
		segment string
		single  bool
		double  bool
	}{
		{segment: ".", single: true},
		{segment: "%2e", single: true},
		{segment: "%2E", single: true},
		{segment: "..", double: true},
		{segment: ".%2e", double: true},
		{segment: ".%2E", double: true},
		{segment: "%2e.", double: true},
		{segment: "%2E.", double: true},
		{segment: "%2e%2E", double: true},
		{segment: "%2E%2e", double: true},
		{segment: "...", single: false, double: false},
		{segment: "%2f", single: false, double: false},
		{segment: "a", single: false, double: false},
		{segment: "", single: false, double: false},
	}

	for _, tc := range testCases {
		if got := isSingleDotSegment(tc.segment); got != tc.single {
			t.Errorf("isSingleDotSegment(%q) = %v, want %v", tc.segment, got, tc.single)
		}
		if got := isDoubleDotSegment(tc.segment); got != tc.double {
			t.Errorf("isDoubleDotSegment(%q) = %v, want %v", tc.segment, got, tc.double)
		}
	}
}

func TestWindowsDriveLetters(t *testing.T) {
	testCases := []struct {
		s          string
		drive      bool
		normalized bool
		prefix     bool
	}{
		{s: "c:", drive: true, normalized: true, prefix: true},
		{s: "C:", drive: true, normalized: true, prefix: true},
		{s: "c|", drive: true, prefix: true},
		{s: "c:/", prefix: true},
		{s: "c:\\x", prefix: true},
		{s: "c:?q", prefix: true},
		{s: "c:#f", prefix: true},
		{s: "c:x"},
		{s: "1:"},
		{s: "cc:"},
		{s: "c"},
		{s: ""},
	}

	for _, tc := range testCases {
		if got := isWindowsDriveLetter(tc.s); got != tc.drive {
			t.Errorf("isWindowsDriveLetter(%q) = %v, want %v", tc.s, got, tc.drive)
		}
		if got := isNormalizedWindowsDriveLetter(tc.s); got != tc.normalized {
			t.Errorf("isNormalizedWindowsDriveLetter(%q) = %v, want %v", tc.s, got, tc.normalized)
		}
		if got := hasWindowsDriveLetterPrefix(tc.s); got != tc.prefix {
			t.Errorf("hasWindowsDriveLetterPrefix(%q) = %v, want %v", tc.s, got, tc.prefix)
		}
	}
}

func TestIsForbiddenHostCodePoint(t *testing.T) {
	forbidden := []byte{0x00, '\t', '\n', '\r', ' ', '#', '%', '/', ':', '?', '@', '[', '\\', ']', '^'}
	for _, b := range forbidden {
		if !isForbiddenHostCodePoint(b) {
			t.Errorf("isForbiddenHostCodePoint(%q) = false, want true", b)
		}
	}
	allowed := []byte{'a', 'Z', '0', '-', '.', '_', '~', '!', '$', '(', ')'}
	for _, b := range allowed {
		if isForbiddenHostCodePoint(b) {
			t.Errorf("isForbiddenHostCodePoint(%q) = true, want false", b)
		}
	}
}

func TestIsURLCodePoint(t *testing.T) {
	testCases := []struct {
		r    rune
		want bool
	}{
		{r: 'a', want: true},
		{r: 'Z', want: true},
		{r: '5', want: true},
		{r: '/', want: true},
		{r: '?', want: true},
		{r: '@', want: true},
		{r: '~', want: true},
		{r: 'é', want: true},
		{r: '€', want: true},
		{r: 0x10FFFD, want: true},
		{r: '%', want: false},
		{r: '\\', want: false},
		{r: '<', want: false},
		{r: '`', want: false},
		{r: '{', want: false},
		{r: ' ', want: false},
		{r: 0x7F, want: false},
		{r: 0x9F, want: false},
		{r: 0xFDD0, want: false},
		{r: 0xFFFF, want: false},
		{r: 0x11FFFF, want: false},
	}

	for _, tc := range testCases {
		if got := isURLCodePoint(tc.r); got != tc.want {
			t.Errorf("isURLCodePoint(%#x) = %v, want %v", tc.r, got, tc.want)
		}
	}
}

func TestASCIILowercase(t *testing.T) {
	testCases := []struct {
		in   byte
		want byte
	}{
		{in: 'A', want: 'a'},
		{in: 'Z', want: 'z'},
		{in: 'a', want: 'a'},
		{in: '0', want: '0'},
		{in: '[', want: '['},
		{in: '@', want: '@'},
	}

	for _, tc := range testCases {
		if got := asciiLowercase(tc.in); got != tc.want {
			t.Errorf("asciiLowercase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
