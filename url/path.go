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

// pathBuilder accumulates normalized, percent-encoded path segments. Dot
// segments are resolved as they arrive, so the emitted stack never contains
// "." or "..".
type pathBuilder struct {
	kind     SchemeKind
	segments []string
}

// pop removes the last emitted segment. A lone normalized Windows drive
// letter of a file URL is pinned and never popped.
func (p *pathBuilder) pop() {
	n := len(p.segments)
	if n == 0 {
		return
	}
	if p.kind == SchemeFile && n == 1 && isNormalizedWindowsDriveLetter(p.segments[0]) {
		return
	}
	p.segments = p.segments[:n-1]
}

// pushSerialized appends segments that are already normalized and encoded,
// such as segments copied from a base URL.
func (p *pathBuilder) pushSerialized(segments []string) {
	p.segments = append(p.segments, segments...)
}

// push resolves one raw segment. terminal marks the last segment of the
// input; a terminal dot segment forces a trailing empty segment so the
// serialized path keeps its trailing slash.
func (p *pathBuilder) push(raw string, terminal bool, c *constructor) error {
	switch {
	case isDoubleDotSegment(raw):
		p.pop()
		if terminal {
			p.segments = append(p.segments, "")
		}
	case isSingleDotSegment(raw):
		if terminal {
			p.segments = append(p.segments, "")
		}
	default:
		if p.kind == SchemeFile && len(p.segments) == 0 && isWindowsDriveLetter(raw) {
			if c.hostSer != "" {
				c.report(ErrorKindUnexpectedHostFileScheme, c.hostSer)
				c.hostSer = ""
			}
			p.segments = append(p.segments, raw[:1]+":")
			return nil
		}
		if err := c.checkTextComponent(raw); err != nil {
			return err
		}
		p.segments = append(p.segments, percentEncode(raw, pathEncodeSet))
	}
	return nil
}

// serialize joins the stack into the canonical path form. For file URLs a
// run of leading empty segments is collapsed first, each removal reported.
func (p *pathBuilder) serialize(report reportFunc) string {
	segments := p.segments
	if p.kind == SchemeFile {
		for len(segments) > 1 && segments[0] == "" {
			report(ErrorKindUnexpectedEmptyPath, "")
			segments = segments[1:]
		}
	}
	if len(segments) == 0 {
		return ""
	}
	var b strings.Builder
	for _, segment := range segments {
		b.WriteByte('/')
		b.WriteString(segment)
	}
	return b.String()
}

// splitSerializedPath splits a canonical path into its segments, dropping
// the leading slash. An empty path yields no segments.
func splitSerializedPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(path, "/"), "/")
}

// shortenSegments drops the last segment of a base path before a relative
// merge. A lone normalized Windows drive letter of a file URL is kept.
func shortenSegments(segments []string, kind SchemeKind) []string {
	n := len(segments)
	if n == 0 {
		return segments
	}
	if kind == SchemeFile && n == 1 && isNormalizedWindowsDriveLetter(segments[0]) {
		return segments
	}
	return segments[:n-1]
}
