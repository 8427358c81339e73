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
	"unicode/utf8"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// HostKind discriminates the representations a parsed host can take.
type HostKind int

const (
	// HostEmpty is the empty host, valid for non-special schemes and for
	// file URLs after localhost normalization.
	HostEmpty HostKind = iota
	// HostDomain is an ASCII-lowercased registered name.
	HostDomain
	// HostIPv4 is an IPv4 address stored as a 32-bit big-endian integer.
	HostIPv4
	// HostIPv6 is an IPv6 address stored as eight 16-bit groups.
	HostIPv6
	// HostOpaque is a percent-encoded host of a non-special scheme.
	HostOpaque
)

// Host is an immutable parsed host. Hosts are constructed only by ParseHost.
type Host struct {
	kind HostKind
	text string // HostDomain and HostOpaque
	ipv4 uint32
	ipv6 [8]uint16
}

// Kind returns the representation of the host.
func (h Host) Kind() HostKind {
	return h.kind
}

// IPv4 returns the address as a big-endian integer when the host is an IPv4
// literal.
func (h Host) IPv4() (uint32, bool) {
	return h.ipv4, h.kind == HostIPv4
}

// IPv6 returns the eight 16-bit groups when the host is an IPv6 literal.
func (h Host) IPv6() ([8]uint16, bool) {
	return h.ipv6, h.kind == HostIPv6
}

// String returns the canonical serialization of the host. IPv6 literals are
// bracketed; the empty host serializes to the empty string.
func (h Host) String() string {
	switch h.kind {
	case HostDomain, HostOpaque:
		return h.text
	case HostIPv4:
		return serializeIPv4(h.ipv4)
	case HostIPv6:
		return "[" + serializeIPv6(h.ipv6) + "]"
	}
	return ""
}

// ParseHost parses a hostname. isNotSpecial selects opaque-host handling for
// non-special schemes; otherwise the input is treated as a domain or an IP
// literal. The empty string yields the empty host for non-special schemes
// and an error for special ones.
func ParseHost(input string, isNotSpecial bool) (Host, error) {
	return parseHost(input, isNotSpecial, discardViolations)
}

// parseHost is the internal entry that also reports non-fatal violations.
func parseHost(input string, isNotSpecial bool, report reportFunc) (Host, error) {
	if strings.HasPrefix(input, "[") {
		if !strings.HasSuffix(input, "]") {
			return Host{}, newParseError(ErrorKindUnclosedIPv6, input)
		}
		groups, err := parseIPv6(input[1 : len(input)-1])
		if err != nil {
			return Host{}, err
		}
		return Host{kind: HostIPv6, ipv6: groups}, nil
	}

	if isNotSpecial {
		return parseOpaqueHost(input, report)
	}

	domain := percentDecode(input)
	if !utf8.ValidString(domain) {
		return Host{}, newParseError(ErrorKindInvalidUTF8, input)
	}
	ascii, err := domainToASCII(domain)
	if err != nil {
		return Host{}, newHostError(err, input)
	}
	domain = ascii
	if domain == "" {
		return Host{}, newParseError(ErrorKindEmptyHostSpecialScheme, input)
	}
	for i := 0; i < len(domain); i++ {
		if isForbiddenHostCodePoint(domain[i]) {
			return Host{}, newParseError(ErrorKindHostInvalid, domain)
		}
	}
	if endsInANumber(domain) {
		addr, err := parseIPv4(domain)
		if err != nil {
			return Host{}, newHostError(err, domain)
		}
		return Host{kind: HostIPv4, ipv4: addr}, nil
	}
	return Host{kind: HostDomain, text: domain}, nil
}

// parseOpaqueHost validates and percent-encodes the host of a non-special URL.
func parseOpaqueHost(input string, report reportFunc) (Host, error) {
	if input == "" {
		return Host{kind: HostEmpty}, nil
	}
	for i := 0; i < len(input); i++ {
		if b := input[i]; b != '%' && isForbiddenHostCodePoint(b) {
			return Host{}, newParseError(ErrorKindHostInvalid, input)
		}
	}
	validatePercentEscapes(input, report)
	return Host{kind: HostOpaque, text: percentEncode(input, c0EncodeSet)}, nil
}

// domainToASCII lowercases an ASCII domain in place. A domain containing
// non-ASCII is first normalized to NFC and then mapped with IDNA, the same
// pipeline applied to registered names elsewhere in this module family.
func domainToASCII(domain string) (string, error) {
	ascii := true
	for i := 0; i < len(domain); i++ {
		if domain[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if !ascii {
		mapped, err := idna.Lookup.ToASCII(norm.NFC.String(domain))
		if err != nil {
			return "", err
		}
		domain = mapped
	}
	var b strings.Builder
	b.Grow(len(domain))
	for i := 0; i < len(domain); i++ {
		b.WriteByte(asciiLowercase(domain[i]))
	}
	return b.String(), nil
}

// endsInANumber reports whether the last label of a domain is numeric, which
// routes the whole domain into the IPv4 literal parser. A single trailing dot
// is ignored.
func endsInANumber(domain string) bool {
	parts := strings.Split(domain, ".")
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 {
		return false
	}
	last := parts[len(parts)-1]
	if last == "" {
		return false
	}
	allDigits := true
	for i := 0; i < len(last); i++ {
		if !isASCIIDigit(last[i]) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return true
	}
	if len(last) >= 2 && (strings.HasPrefix(last, "0x") || strings.HasPrefix(last, "0X")) {
		for i := 2; i < len(last); i++ {
			if !isASCIIHexDigit(last[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// parseIPv4 parses a host as a relaxed IPv4 literal: one to four dot
// separated parts, each decimal, octal (leading zero) or hexadecimal (0x
// prefix), with positional width limits.
func parseIPv4(input string) (uint32, error) {
	parts := strings.Split(input, ".")
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) > 4 {
		return 0, newParseError(ErrorKindIPv4TooManyPieces, input)
	}
	values := make([]uint64, len(parts))
	for i, part := range parts {
		v, err := parseIPv4Number(part)
		if err != nil {
			return 0, err
		}
		values[i] = v
	}
	n := len(values)
	var addr uint64
	for i := 0; i < n-1; i++ {
		if values[i] > 255 {
			return 0, newParseError(ErrorKindIPv4PieceOverflows, parts[i])
		}
		addr |= values[i] << (8 * (3 - i))
	}
	last := values[n-1]
	if last > uint64(1)<<(8*(5-n))-1 {
		return 0, newParseError(ErrorKindIPv4PieceOverflows, parts[n-1])
	}
	addr += last
	return uint32(addr), nil
}

// parseIPv4Number parses one part of a relaxed IPv4 literal, detecting the
// radix from its prefix. An empty body after a radix prefix is zero.
func parseIPv4Number(part string) (uint64, error) {
	if part == "" {
		return 0, newParseError(ErrorKindIPv4InvalidCharacter, part)
	}
	radix := uint64(10)
	digits := part
	switch {
	case len(part) >= 2 && (strings.HasPrefix(part, "0x") || strings.HasPrefix(part, "0X")):
		radix = 16
		digits = part[2:]
	case len(part) >= 2 && part[0] == '0':
		radix = 8
		digits = part[1:]
	}
	if digits == "" {
		return 0, nil
	}
	var v uint64
	for i := 0; i < len(digits); i++ {
		d := hexDigitValue(digits[i])
		if d < 0 || uint64(d) >= radix {
			if radix == 10 {
				return 0, newParseError(ErrorKindIPv4InvalidCharacter, part)
			}
			return 0, newParseError(ErrorKindIPv4PieceInvalidRadix, part)
		}
		v = v*radix + uint64(d)
		if v > 1<<32-1 {
			return 0, newParseError(ErrorKindIPv4PieceOverflows, part)
		}
	}
	return v, nil
}

// serializeIPv4 emits the dotted-decimal form of a big-endian address.
func serializeIPv4(addr uint32) string {
	var b strings.Builder
	b.Grow(15)
	for i := 3; i >= 0; i-- {
		b.WriteString(strconv.FormatUint(uint64(addr>>(8*i))&0xFF, 10))
		if i > 0 {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// parseIPv6 parses the interior of a bracketed IPv6 literal into eight
// 16-bit groups. A single "::" marks a compressed run of zero groups. A dot
// inside a group switches the parser into the strict IPv4-in-IPv6 tail mode,
// which accepts only canonical dotted-decimal with no radix prefixes and no
// leading zeros.
func parseIPv6(input string) ([8]uint16, error) {
	var address [8]uint16
	if input == "" {
		return address, newParseError(ErrorKindIPv6EmptyInput, input)
	}

	pieceIndex := 0
	compress := -1
	i := 0

	if input[0] == ':' {
		if len(input) < 2 || input[1] != ':' {
			return address, newParseError(ErrorKindIPv6UnexpectedLeadingColon, input)
		}
		i = 2
		pieceIndex = 1
		compress = 1
	}

	for i < len(input) {
		if pieceIndex == 8 {
			return address, newParseError(ErrorKindIPv6TooManyPieces, input)
		}
		if input[i] == ':' {
			if compress != -1 {
				return address, newParseError(ErrorKindIPv6MultipleCompressedPieces, input)
			}
			i++
			pieceIndex++
			compress = pieceIndex
			continue
		}

		value := uint16(0)
		length := 0
		for length < 4 && i < len(input) && isASCIIHexDigit(input[i]) {
			value = value<<4 | uint16(hexDigitValue(input[i]))
			i++
			length++
		}

		if i < len(input) && input[i] == '.' {
			if length == 0 {
				return address, newParseError(ErrorKindIPv6UnexpectedCharacter, input)
			}
			i -= length
			if pieceIndex > 6 {
				return address, newParseError(ErrorKindIPv6InvalidPositionForIPv4, input)
			}
			if err := parseIPv4InIPv6(input, i, &address, &pieceIndex); err != nil {
				return address, err
			}
			break
		}

		if i < len(input) {
			if input[i] != ':' {
				return address, newParseError(ErrorKindIPv6UnexpectedCharacter, input)
			}
			i++
			if i == len(input) {
				return address, newParseError(ErrorKindIPv6UnexpectedTrailingColon, input)
			}
		}
		address[pieceIndex] = value
		pieceIndex++
	}

	if compress != -1 {
		swaps := pieceIndex - compress
		for j := 7; j != 0 && swaps > 0; j-- {
			address[j], address[compress+swaps-1] = address[compress+swaps-1], address[j]
			swaps--
		}
	} else if pieceIndex != 8 {
		return address, newParseError(ErrorKindIPv6NotEnoughPieces, input)
	}
	return address, nil
}

// parseIPv4InIPv6 consumes the strict dotted-decimal tail of an IPv6 literal
// starting at offset i, filling the two trailing groups. It is deliberately
// disjoint from the relaxed host-level IPv4 parser.
func parseIPv4InIPv6(input string, i int, address *[8]uint16, pieceIndex *int) error {
	numbersSeen := 0
	for i < len(input) {
		if numbersSeen > 0 {
			if input[i] != '.' || numbersSeen >= 4 {
				return newParseError(ErrorKindIPv4TooManyPieces, input)
			}
			i++
		}
		if i >= len(input) || !isASCIIDigit(input[i]) {
			return newParseError(ErrorKindIPv4PieceBeginsWithInvalidCharacter, input)
		}
		piece := -1
		for i < len(input) && isASCIIDigit(input[i]) {
			d := int(input[i] - '0')
			switch {
			case piece == -1:
				piece = d
			case piece == 0:
				return newParseError(ErrorKindIPv4UnsupportedRadix, input)
			default:
				piece = piece*10 + d
				if piece > 255 {
					return newParseError(ErrorKindIPv4PieceOverflows, input)
				}
			}
			i++
		}
		if piece > 255 {
			return newParseError(ErrorKindIPv4PieceOverflows, input)
		}
		address[*pieceIndex] = address[*pieceIndex]<<8 | uint16(piece)
		numbersSeen++
		if numbersSeen == 2 || numbersSeen == 4 {
			*pieceIndex++
		}
	}
	if numbersSeen != 4 {
		return newParseError(ErrorKindIPv6NotEnoughPieces, input)
	}
	return nil
}

// serializeIPv6 emits the canonical text form: lowercase hex groups without
// leading zeros, compressing the leftmost longest run of at least two zero
// groups into "::". Embedded-IPv4 syntax is never emitted.
func serializeIPv6(groups [8]uint16) string {
	runStart, runLen := -1, 0
	for i := 0; i < 8; {
		if groups[i] != 0 {
			i++
			continue
		}
		j := i
		for j < 8 && groups[j] == 0 {
			j++
		}
		if j-i > runLen {
			runStart, runLen = i, j-i
		}
		i = j
	}
	if runLen < 2 {
		runStart = -1
	}

	var b strings.Builder
	b.Grow(39)
	for i := 0; i < 8; i++ {
		if i == runStart {
			b.WriteString("::")
			i += runLen - 1
			continue
		}
		if i > 0 && i-runLen != runStart {
			b.WriteByte(':')
		}
		b.WriteString(strconv.FormatUint(uint64(groups[i]), 16))
	}
	return b.String()
}
