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

// Package url provides a WHATWG-conformant URL parser and host parser.
//
// The package converts an arbitrary byte sequence, optionally paired with a
// base URL, into a normalized structured URL or rejects it. Parsing runs in
// two passes: a forward scan that classifies byte ranges into components,
// and a construction pass that merges the scan with the base URL and emits
// the canonical serialization with per-component percent-encoding.
//
// Key features include:
//   - Strict host parsing: domains, IPv4 literals with octal and hexadecimal
//     parts, IPv6 literals with the compressed form, and opaque hosts.
//   - Canonical serialization: lowercase schemes, default-port elision,
//     dot-segment removal and Windows drive-letter normalization.
//   - A validation-error channel (ParseWithErrors) reporting every non-fatal
//     violation the WHATWG model names.
//   - Support for JSON marshalling and unmarshalling.
package url

import (
	"encoding/json"
	"strconv"
	"strings"
)

// SchemeKind classifies a URL scheme. Every kind except SchemeOther is
// special: backslashes act as path separators, hosts must be non-empty
// (except for file), and default ports are elided.
type SchemeKind int

const (
	// SchemeOther is any scheme without special behavior.
	SchemeOther SchemeKind = iota
	SchemeHTTP
	SchemeHTTPS
	SchemeFTP
	SchemeWS
	SchemeWSS
	SchemeFile
)

// schemeKindOf maps a lowercase scheme to its kind.
func schemeKindOf(scheme string) SchemeKind {
	switch scheme {
	case "http":
		return SchemeHTTP
	case "https":
		return SchemeHTTPS
	case "ftp":
		return SchemeFTP
	case "ws":
		return SchemeWS
	case "wss":
		return SchemeWSS
	case "file":
		return SchemeFile
	}
	return SchemeOther
}

// IsSpecial reports whether the kind belongs to a special scheme.
func (k SchemeKind) IsSpecial() bool {
	return k != SchemeOther
}

// DefaultPort returns the default port of the scheme, if it has one.
func (k SchemeKind) DefaultPort() (uint16, bool) {
	switch k {
	case SchemeFTP:
		return 21, true
	case SchemeHTTP, SchemeWS:
		return 80, true
	case SchemeHTTPS, SchemeWSS:
		return 443, true
	}
	return 0, false
}

// componentSet is a bitset of the components present in a URL.
type componentSet uint8

const (
	componentScheme componentSet = 1 << iota
	componentAuthority
	componentPath
	componentQuery
	componentFragment
)

// has reports whether every component of c is in the set.
func (s componentSet) has(c componentSet) bool {
	return s&c == c
}

// componentLengths is the fixed-size header locating each component inside
// the serialization. Password, port, query and fragment lengths include
// their leading separator; username and password store no other separators.
type componentLengths struct {
	scheme   int
	username int
	password int
	host     int
	port     int
	path     int
	query    int
	fragment int
}

// Url is an immutable parsed URL: the canonical serialization in a single
// backing string plus an index header locating each component.
type Url struct {
	serialization string
	kind          SchemeKind
	cannotBeABase bool
	present       componentSet
	lens          componentLengths
}

// Parse parses input against an optional base URL and returns the canonical
// parsed form, or the fatal error that aborted the parse.
func Parse(input string, base *Url) (*Url, error) {
	return parse(input, base, discardViolations)
}

// ParseWithErrors parses input against an optional base URL and additionally
// collects every non-fatal validation violation observed along the way. The
// violations are returned even when parsing ultimately fails.
func ParseWithErrors(input string, base *Url) (*Url, []ValidationError, error) {
	var violations []ValidationError
	u, err := parse(input, base, func(kind ErrorKind, detail string) {
		violations = append(violations, ValidationError{Kind: kind, Detail: detail})
	})
	return u, violations, err
}

// ParseBytes parses a raw byte sequence against an optional base URL. The
// input does not need to be valid UTF-8; components that must hold text are
// checked individually during parsing.
func ParseBytes(input []byte, base *Url) (*Url, error) {
	return parse(string(input), base, discardViolations)
}

// MustParse parses an absolute URL and panics on failure. It is intended for
// URLs known valid at compile time.
func MustParse(input string) *Url {
	u, err := Parse(input, nil)
	if err != nil {
		panic(err)
	}
	return u
}

// parse runs the filter, scan and construction passes.
func parse(input string, base *Url, report reportFunc) (*Url, error) {
	filtered := filterInput(input, report)
	s := &scanner{input: filtered, base: base, report: report}
	if err := s.run(); err != nil {
		return nil, err
	}
	c := &constructor{input: filtered, base: base, m: &s.m, kind: s.kind, report: report}
	return c.run()
}

// String returns the canonical serialization of the URL.
func (u *Url) String() string {
	return u.serialization
}

// Serialize returns the canonical serialization, optionally without the
// fragment and its '#' separator.
func (u *Url) Serialize(excludeFragment bool) string {
	if excludeFragment && u.lens.fragment > 0 {
		return u.serialization[:len(u.serialization)-u.lens.fragment]
	}
	return u.serialization
}

// SchemeKind returns the classification of the URL's scheme.
func (u *Url) SchemeKind() SchemeKind {
	return u.kind
}

// IsSpecial reports whether the URL has a special scheme.
func (u *Url) IsSpecial() bool {
	return u.kind.IsSpecial()
}

// CannotBeABase reports whether the URL's path is a single opaque segment,
// which makes most relative resolutions against it fail.
func (u *Url) CannotBeABase() bool {
	return u.cannotBeABase
}

// HasAuthority reports whether the serialization contains "//" after the
// scheme terminator.
func (u *Url) HasAuthority() bool {
	return u.present.has(componentAuthority)
}

// usernameStart returns the offset of the username, which immediately
// follows the "//" of the authority.
func (u *Url) usernameStart() int {
	return u.lens.scheme + 3
}

// hostStart returns the offset of the hostname inside the serialization.
func (u *Url) hostStart() int {
	start := u.usernameStart() + u.lens.username + u.lens.password
	if u.lens.username > 0 || u.lens.password > 0 {
		start++ // '@'
	}
	return start
}

// pathStart returns the offset of the path inside the serialization.
func (u *Url) pathStart() int {
	if !u.HasAuthority() {
		return u.lens.scheme + 1
	}
	return u.hostStart() + u.lens.host + u.lens.port
}

// Scheme returns the scheme, always present, non-empty and lowercase.
func (u *Url) Scheme() string {
	return u.serialization[:u.lens.scheme]
}

// Username returns the username component, which may be empty.
func (u *Url) Username() string {
	if !u.HasAuthority() {
		return ""
	}
	start := u.usernameStart()
	return u.serialization[start : start+u.lens.username]
}

// Password returns the password without its leading ':' and a boolean
// indicating whether it was present.
func (u *Url) Password() (string, bool) {
	if !u.HasAuthority() || u.lens.password == 0 {
		return "", false
	}
	start := u.usernameStart() + u.lens.username
	return u.serialization[start+1 : start+u.lens.password], true
}

// Hostname returns the serialized hostname, which is empty for URLs with an
// empty host and for URLs without an authority.
func (u *Url) Hostname() string {
	if !u.HasAuthority() {
		return ""
	}
	start := u.hostStart()
	return u.serialization[start : start+u.lens.host]
}

// Port returns the port digits without the leading ':' and a boolean
// indicating whether a port is present. A stored port never equals the
// scheme's default.
func (u *Url) Port() (string, bool) {
	if u.lens.port == 0 {
		return "", false
	}
	start := u.hostStart() + u.lens.host
	return u.serialization[start+1 : start+u.lens.port], true
}

// PortNumber returns the port as an integer when present.
func (u *Url) PortNumber() (uint16, bool) {
	digits, ok := u.Port()
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(digits, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}

// Path returns the path component, which may be empty.
func (u *Url) Path() string {
	start := u.pathStart()
	return u.serialization[start : start+u.lens.path]
}

// Query returns the query without its leading '?' and a boolean indicating
// whether it was present.
func (u *Url) Query() (string, bool) {
	if !u.present.has(componentQuery) {
		return "", false
	}
	start := u.pathStart() + u.lens.path
	return u.serialization[start+1 : start+u.lens.query], true
}

// Fragment returns the fragment without its leading '#' and a boolean
// indicating whether it was present.
func (u *Url) Fragment() (string, bool) {
	if !u.present.has(componentFragment) {
		return "", false
	}
	start := u.pathStart() + u.lens.path + u.lens.query
	return u.serialization[start+1:], true
}

// Authority returns the authority (userinfo, host and port, without the
// leading "//") and a boolean indicating whether it was present.
func (u *Url) Authority() (string, bool) {
	if !u.HasAuthority() {
		return "", false
	}
	return u.serialization[u.usernameStart():u.pathStart()], true
}

// Component identifies a URL component for ComponentBytes.
type Component int

const (
	ComponentScheme Component = iota
	ComponentUsername
	ComponentPassword
	ComponentHostname
	ComponentPort
	ComponentPath
	ComponentQuery
	ComponentFragment
	ComponentAuthority
)

// ComponentBytes returns the raw serialized slice of a component and whether
// the component is present. Password and port slices include their leading
// ':'; query and fragment slices include their leading '?' and '#'.
func (u *Url) ComponentBytes(c Component) (string, bool) {
	switch c {
	case ComponentScheme:
		return u.Scheme(), true
	case ComponentUsername:
		if !u.HasAuthority() || u.lens.username == 0 {
			return "", false
		}
		return u.Username(), true
	case ComponentPassword:
		if !u.HasAuthority() || u.lens.password == 0 {
			return "", false
		}
		start := u.usernameStart() + u.lens.username
		return u.serialization[start : start+u.lens.password], true
	case ComponentHostname:
		if !u.HasAuthority() {
			return "", false
		}
		return u.Hostname(), true
	case ComponentPort:
		if u.lens.port == 0 {
			return "", false
		}
		start := u.hostStart() + u.lens.host
		return u.serialization[start : start+u.lens.port], true
	case ComponentPath:
		if !u.present.has(componentPath) {
			return "", false
		}
		return u.Path(), true
	case ComponentQuery:
		if !u.present.has(componentQuery) {
			return "", false
		}
		start := u.pathStart() + u.lens.path
		return u.serialization[start : start+u.lens.query], true
	case ComponentFragment:
		if !u.present.has(componentFragment) {
			return "", false
		}
		start := u.pathStart() + u.lens.path + u.lens.query
		return u.serialization[start:], true
	case ComponentAuthority:
		return u.Authority()
	}
	return "", false
}

// firstPathSegment returns the first path segment without its leading '/'.
// It is used by the file URL logic to detect a base drive letter.
func (u *Url) firstPathSegment() string {
	path := u.Path()
	if !strings.HasPrefix(path, "/") {
		return ""
	}
	rest := path[1:]
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return rest[:i]
	}
	return rest
}

// MarshalJSON implements the json.Marshaler interface, encoding the URL as a
// JSON string holding its serialization.
func (u *Url) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.serialization)
}

// UnmarshalJSON implements the json.Unmarshaler interface. It decodes a JSON
// string into a Url, performing full validation in the process.
func (u *Url) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s, nil)
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}
