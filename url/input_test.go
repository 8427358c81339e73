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

//nolint:testpackage // White-box tests for the input filter.
package url

import "testing"

func TestFilterInput(t *testing.T) {
	testCases := []struct {
		in    string
		want  string
		kinds []ErrorKind
	}{
		{in: "http://example.com/", want: "http://example.com/"},
		{in: "  http://example.com/", want: "http://example.com/",
			kinds: []ErrorKind{ErrorKindUnexpectedC0ControlOrSpace}},
		{in: "http://example.com/\x01\x02", want: "http://example.com/",
			kinds: []ErrorKind{ErrorKindUnexpectedC0ControlOrSpace}},
		{in: "htt\tps://exa\nmple.com/p", want: "https://example.com/p",
			kinds: []ErrorKind{ErrorKindUnexpectedASCIITabOrNewline}},
		{in: "a\rb", want: "ab",
			kinds: []ErrorKind{ErrorKindUnexpectedASCIITabOrNewline}},
		{in: " \ta\t ", want: "a",
			kinds: []ErrorKind{ErrorKindUnexpectedC0ControlOrSpace}},
		{in: "   ", want: "",
			kinds: []ErrorKind{ErrorKindUnexpectedC0ControlOrSpace}},
		{in: "", want: ""},
	}

	for _, tc := range testCases {
		var got []ErrorKind
		filtered := filterInput(tc.in, func(kind ErrorKind, _ string) {
			got = append(got, kind)
		})
		if filtered != tc.want {
			t.Errorf("filterInput(%q) = %q, want %q", tc.in, filtered, tc.want)
		}
		if len(got) != len(tc.kinds) {
			t.Errorf("filterInput(%q) violations = %v, want %v", tc.in, got, tc.kinds)
			continue
		}
		for i := range got {
			if got[i] != tc.kinds[i] {
				t.Errorf("filterInput(%q) violation[%d] = %s, want %s", tc.in, i, got[i], tc.kinds[i])
			}
		}
	}
}
