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

import (
	"strings"
	"unicode/utf8"
)

// constructor replays a scan map once, resolving each component either from
// the filtered input or from the base URL, and emits the canonical
// serialization. Components are computed before assembly because path
// normalization can still clear the host (Windows drive letters).
type constructor struct {
	input  string
	base   *Url
	m      *scanMap
	kind   SchemeKind
	report reportFunc

	scheme       string
	hasAuthority bool
	username     string
	password     string
	hostSer      string
	port         int
	pathSer      string
	hasPath      bool
	querySer     string
	hasQuery     bool
	fragSer      string
	hasFrag      bool
}

// run produces the final Url value or the fatal error that aborted the
// construction.
func (c *constructor) run() (*Url, error) {
	c.port = -1
	c.buildScheme()
	if err := c.buildAuthority(); err != nil {
		return nil, err
	}
	if err := c.buildPath(); err != nil {
		return nil, err
	}
	if err := c.buildQuery(); err != nil {
		return nil, err
	}
	if err := c.buildFragment(); err != nil {
		return nil, err
	}
	return c.assemble(), nil
}

// checkTextComponent enforces the UTF-8 requirement on a component and
// reports escape and code-point violations.
func (c *constructor) checkTextComponent(raw string) error {
	if !utf8.ValidString(raw) {
		return newParseError(ErrorKindInvalidUTF8, raw)
	}
	validatePercentEscapes(raw, c.report)
	return nil
}

// buildScheme resolves the lowercase scheme from the input or the base.
func (c *constructor) buildScheme() {
	if c.m.fromBase.has(componentScheme) {
		c.scheme = c.base.Scheme()
		return
	}
	c.scheme = strings.ToLower(c.input[:c.m.schemeEnd])
}

// buildAuthority resolves credentials, host and port. A file URL always
// carries an authority, possibly with an empty host.
func (c *constructor) buildAuthority() error {
	if c.m.fromBase.has(componentAuthority) {
		if !c.base.HasAuthority() {
			c.hasAuthority = c.kind == SchemeFile
			return nil
		}
		c.hasAuthority = true
		c.username = c.base.Username()
		if password, ok := c.base.Password(); ok {
			c.password = password
		}
		c.hostSer = c.base.Hostname()
		if port, ok := c.base.PortNumber(); ok {
			c.port = int(port)
		}
		return nil
	}
	if c.m.hostStart < 0 {
		c.hasAuthority = c.kind == SchemeFile
		return nil
	}
	c.hasAuthority = true

	if c.m.credentialsEnd >= 0 {
		userEnd := c.m.credentialsEnd
		if c.m.usernameEnd >= 0 {
			userEnd = c.m.usernameEnd
		}
		rawUser := c.input[c.m.authorityStart:userEnd]
		if err := c.checkTextComponent(rawUser); err != nil {
			return err
		}
		c.username = percentEncode(rawUser, userinfoEncodeSet)
		if c.m.usernameEnd >= 0 {
			rawPassword := c.input[c.m.usernameEnd+1 : c.m.credentialsEnd]
			if err := c.checkTextComponent(rawPassword); err != nil {
				return err
			}
			c.password = percentEncode(rawPassword, userinfoEncodeSet)
		}
	}

	raw := c.input[c.m.hostStart:c.m.hostEnd]
	if raw != "" {
		host, err := parseHost(raw, !c.kind.IsSpecial(), c.report)
		if err != nil {
			return err
		}
		c.hostSer = host.String()
		if c.kind == SchemeFile && c.hostSer == "localhost" {
			c.hostSer = ""
		}
	}

	if c.m.portValue >= 0 {
		if def, ok := c.kind.DefaultPort(); !ok || int(def) != c.m.portValue {
			c.port = c.m.portValue
		}
	}
	return nil
}

// ownSegments splits the input path range into raw segments. The separator
// that introduced the range is consumed here; for special schemes a reverse
// solidus separates segments too and is reported.
func (c *constructor) ownSegments(raw string) []string {
	if raw[0] == '/' || (c.kind.IsSpecial() && raw[0] == '\\') {
		if raw[0] == '\\' {
			c.report(ErrorKindUnexpectedReverseSolidus, "")
		}
		raw = raw[1:]
	}
	if !c.kind.IsSpecial() {
		return strings.Split(raw, "/")
	}
	segments := []string{}
	start := 0
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '/', '\\':
			if raw[i] == '\\' {
				c.report(ErrorKindUnexpectedReverseSolidus, "")
			}
			segments = append(segments, raw[start:i])
			start = i + 1
		}
	}
	return append(segments, raw[start:])
}

// buildPath resolves the path: the opaque segment of a cannot-be-a-base URL,
// or the normalized segment list merged with the base path when required.
func (c *constructor) buildPath() error {
	if c.m.cannotBeABase {
		c.hasPath = true
		if c.m.fromBase.has(componentPath) {
			c.pathSer = c.base.Path()
			return nil
		}
		raw := c.input[c.m.pathStart:c.m.pathEnd]
		if err := c.checkTextComponent(raw); err != nil {
			return err
		}
		c.pathSer = percentEncode(raw, c0EncodeSet)
		return nil
	}

	pb := &pathBuilder{kind: c.kind}
	if c.m.fromBase.has(componentPath) {
		segments := splitSerializedPath(c.base.Path())
		if c.m.shortenBasePath {
			segments = shortenSegments(segments, c.kind)
		}
		pb.pushSerialized(segments)
	} else if c.m.baseDriveLetter {
		pb.pushSerialized([]string{c.base.firstPathSegment()})
	}

	if c.m.pathStart >= 0 {
		if raw := c.input[c.m.pathStart:c.m.pathEnd]; raw != "" {
			segments := c.ownSegments(raw)
			for i, segment := range segments {
				if err := pb.push(segment, i == len(segments)-1, c); err != nil {
					return err
				}
			}
		}
	}

	c.pathSer = pb.serialize(c.report)
	if c.pathSer == "" && c.kind.IsSpecial() {
		c.pathSer = "/"
	}
	c.hasPath = c.pathSer != "" || c.m.pathStart >= 0 || c.m.fromBase.has(componentPath)
	return nil
}

// buildQuery resolves the query from the input or the base.
func (c *constructor) buildQuery() error {
	if c.m.fromBase.has(componentQuery) {
		if query, ok := c.base.Query(); ok {
			c.querySer, c.hasQuery = query, true
		}
		return nil
	}
	if c.m.queryStart < 0 {
		return nil
	}
	raw := c.input[c.m.queryStart:c.m.queryEnd]
	if err := c.checkTextComponent(raw); err != nil {
		return err
	}
	set := queryEncodeSet
	if c.kind.IsSpecial() {
		set = specialQueryEncodeSet
	}
	c.querySer = percentEncode(raw, set)
	c.hasQuery = true
	return nil
}

// buildFragment resolves the fragment, which is never copied from the base.
func (c *constructor) buildFragment() error {
	if c.m.fragmentStart < 0 {
		return nil
	}
	raw := c.input[c.m.fragmentStart:]
	if err := c.checkTextComponent(raw); err != nil {
		return err
	}
	c.fragSer = percentEncode(raw, fragmentEncodeSet)
	c.hasFrag = true
	return nil
}

// assemble emits every resolved component in canonical order.
func (c *constructor) assemble() *Url {
	w := newURLWriter(len(c.input))
	w.writeScheme(c.scheme)
	if c.hasAuthority {
		w.writeAuthorityStart()
		if c.username != "" || c.password != "" {
			w.writeUsername(c.username)
			if c.password != "" {
				w.writePassword(c.password)
			}
			w.writeCredentialsEnd()
		}
		w.writeHost(c.hostSer)
		if c.port >= 0 {
			w.writePort(c.port)
		}
	}
	if c.hasPath {
		w.writePath(c.pathSer)
	}
	if c.hasQuery {
		w.writeQuery(c.querySer)
	}
	if c.hasFrag {
		w.writeFragment(c.fragSer)
	}
	u := w.finish()
	u.kind = c.kind
	u.cannotBeABase = c.m.cannotBeABase
	return u
}
