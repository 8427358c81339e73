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
	"strconv"
	"strings"
)

// urlWriter assembles the canonical serialization while keeping the length
// header and the presence bitset in lockstep with every emission.
type urlWriter struct {
	b       strings.Builder
	lens    componentLengths
	present componentSet
}

// newURLWriter pre-sizes the output buffer to twice the filtered input
// length. The buffer grows when the canonical form is longer, as when
// percent-encoding triples many bytes or base components are copied in.
func newURLWriter(sizeHint int) *urlWriter {
	w := &urlWriter{}
	w.b.Grow(2 * sizeHint)
	return w
}

// writeScheme emits the lowercase scheme and its ':' terminator.
func (w *urlWriter) writeScheme(scheme string) {
	w.b.WriteString(scheme)
	w.b.WriteByte(':')
	w.lens.scheme = len(scheme)
	w.present |= componentScheme
}

// writeAuthorityStart emits the "//" introducing the authority.
func (w *urlWriter) writeAuthorityStart() {
	w.b.WriteString("//")
	w.present |= componentAuthority
}

// writeUsername emits the already-encoded username.
func (w *urlWriter) writeUsername(username string) {
	w.b.WriteString(username)
	w.lens.username = len(username)
}

// writePassword emits ':' plus the already-encoded password; the separator
// is accounted to the password length.
func (w *urlWriter) writePassword(password string) {
	w.b.WriteByte(':')
	w.b.WriteString(password)
	w.lens.password = len(password) + 1
}

// writeCredentialsEnd emits the '@' closing the credentials.
func (w *urlWriter) writeCredentialsEnd() {
	w.b.WriteByte('@')
}

// writeHost emits the serialized hostname.
func (w *urlWriter) writeHost(host string) {
	w.b.WriteString(host)
	w.lens.host = len(host)
}

// writePort emits ':' plus the decimal port; the separator is accounted to
// the port length.
func (w *urlWriter) writePort(port int) {
	digits := strconv.Itoa(port)
	w.b.WriteByte(':')
	w.b.WriteString(digits)
	w.lens.port = len(digits) + 1
}

// writePath emits the serialized path.
func (w *urlWriter) writePath(path string) {
	w.b.WriteString(path)
	w.lens.path = len(path)
	w.present |= componentPath
}

// writeQuery emits '?' plus the encoded query.
func (w *urlWriter) writeQuery(query string) {
	w.b.WriteByte('?')
	w.b.WriteString(query)
	w.lens.query = len(query) + 1
	w.present |= componentQuery
}

// writeFragment emits '#' plus the encoded fragment.
func (w *urlWriter) writeFragment(fragment string) {
	w.b.WriteByte('#')
	w.b.WriteString(fragment)
	w.lens.fragment = len(fragment) + 1
	w.present |= componentFragment
}

// finish seals the serialization into a Url value. The scheme kind and the
// cannot-be-a-base flag are filled in by the constructor.
func (w *urlWriter) finish() *Url {
	return &Url{
		serialization: w.b.String(),
		present:       w.present,
		lens:          w.lens,
	}
}
