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

package url

import "strings"

// reportFunc receives non-fatal validation violations as they are observed.
type reportFunc func(kind ErrorKind, detail string)

// discardViolations is the sink used by entry points that only want the
// success or failure outcome.
func discardViolations(ErrorKind, string) {}

// isC0ControlOrSpace matches the byte set trimmed from both ends of the
// input before scanning.
func isC0ControlOrSpace(b byte) bool {
	return b <= 0x20
}

// isASCIITabOrNewline matches the bytes skipped anywhere inside the input.
func isASCIITabOrNewline(b byte) bool {
	return b == '\t' || b == '\n' || b == '\r'
}

// filterInput prepares a raw byte sequence for the scanning pass. Leading and
// trailing C0 controls and spaces are trimmed, and any interior tab, LF or CR
// is removed. Both conditions are reported once. The common case of an
// already-clean input returns a subslice of the original without allocating;
// a dirty input is compacted into a fresh string in a single pass.
func filterInput(input string, report reportFunc) string {
	start, end := 0, len(input)
	for start < end && isC0ControlOrSpace(input[start]) {
		start++
	}
	for end > start && isC0ControlOrSpace(input[end-1]) {
		end--
	}
	if start > 0 || end < len(input) {
		report(ErrorKindUnexpectedC0ControlOrSpace, "")
	}
	trimmed := input[start:end]

	if !strings.ContainsAny(trimmed, "\t\n\r") {
		return trimmed
	}
	report(ErrorKindUnexpectedASCIITabOrNewline, "")
	var b strings.Builder
	b.Grow(len(trimmed))
	for i := 0; i < len(trimmed); i++ {
		if !isASCIITabOrNewline(trimmed[i]) {
			b.WriteByte(trimmed[i])
		}
	}
	return b.String()
}
