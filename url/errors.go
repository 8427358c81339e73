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

import "fmt"

// ErrorKind identifies a parsing failure or a validation violation. Fatal
// kinds abort the parse and surface through ParseError; non-fatal kinds are
// collected as ValidationError values while parsing continues.
type ErrorKind int

const (
	// ErrorKindUnknown is the zero value and is never produced by the parser.
	ErrorKindUnknown ErrorKind = iota

	// Fatal kinds.

	// ErrorKindMissingScheme is returned when the input has no scheme and no
	// base URL was supplied, or the base cannot be used for the reference.
	ErrorKindMissingScheme
	// ErrorKindInvalidSchemeStart names a scheme that does not begin with an
	// ASCII letter. The parser does not return it: such an input is treated
	// as having no scheme.
	ErrorKindInvalidSchemeStart
	// ErrorKindPortOutOfRange is returned for port values above 65535.
	ErrorKindPortOutOfRange
	// ErrorKindPortInvalid is returned when a port contains a non-digit.
	ErrorKindPortInvalid
	// ErrorKindEmptyHostSpecialScheme is returned when a special scheme other
	// than file has an empty hostname.
	ErrorKindEmptyHostSpecialScheme
	// ErrorKindHostInvalid is returned when the host parser rejects its input
	// for a reason without a more specific kind.
	ErrorKindHostInvalid
	// ErrorKindMissingCredentials is returned for an '@' with no preceding
	// bytes in the credentials buffer.
	ErrorKindMissingCredentials
	// ErrorKindInvalidUTF8 is returned when a component that must hold text
	// contains bytes that are not valid UTF-8.
	ErrorKindInvalidUTF8

	// Non-fatal kinds.

	ErrorKindUnexpectedC0ControlOrSpace
	ErrorKindUnexpectedASCIITabOrNewline
	ErrorKindFileSchemeMissingFollowingSolidus
	ErrorKindInvalidScheme
	ErrorKindRelativeURLMissingBeginningSolidus
	ErrorKindUnexpectedReverseSolidus
	ErrorKindMissingSolidusBeforeAuthority
	ErrorKindUnexpectedCommercialAt
	ErrorKindUnexpectedPortWithoutHost
	ErrorKindUnexpectedWindowsDriveLetter
	ErrorKindUnexpectedWindowsDriveLetterHost
	ErrorKindUnexpectedHostFileScheme
	ErrorKindUnexpectedEmptyPath
	ErrorKindInvalidURLCodePoint
	ErrorKindUnescapedPercentSign

	// IPv6 kinds, produced by the IPv6 literal parser.

	ErrorKindUnclosedIPv6
	ErrorKindIPv6EmptyInput
	ErrorKindIPv6UnexpectedLeadingColon
	ErrorKindIPv6UnexpectedTrailingColon
	ErrorKindIPv6UnexpectedCharacter
	ErrorKindIPv6MultipleCompressedPieces
	ErrorKindIPv6InvalidPositionForIPv4
	ErrorKindIPv6NotEnoughPieces
	ErrorKindIPv6TooManyPieces

	// IPv4 kinds, produced by both IPv4 literal parsers.

	ErrorKindIPv4PieceOverflows
	ErrorKindIPv4TooManyPieces
	ErrorKindIPv4PieceBeginsWithInvalidCharacter
	ErrorKindIPv4UnsupportedRadix
	ErrorKindIPv4InvalidCharacter
	ErrorKindIPv4PieceInvalidRadix
)

// errorKindNames maps each kind to its wire-stable name.
var errorKindNames = map[ErrorKind]string{
	ErrorKindMissingScheme:                       "missing_scheme_non_relative_url",
	ErrorKindInvalidSchemeStart:                  "invalid_scheme_start",
	ErrorKindPortOutOfRange:                      "port_out_of_range",
	ErrorKindPortInvalid:                         "port_invalid",
	ErrorKindEmptyHostSpecialScheme:              "empty_host_special_scheme",
	ErrorKindHostInvalid:                         "host_invalid",
	ErrorKindMissingCredentials:                  "missing_credentials",
	ErrorKindInvalidUTF8:                         "invalid_utf8",
	ErrorKindUnexpectedC0ControlOrSpace:          "unexpected_c0_control_or_space",
	ErrorKindUnexpectedASCIITabOrNewline:         "unexpected_ascii_tab_or_newline",
	ErrorKindFileSchemeMissingFollowingSolidus:   "file_scheme_missing_following_solidus",
	ErrorKindInvalidScheme:                       "invalid_scheme",
	ErrorKindRelativeURLMissingBeginningSolidus:  "relative_url_missing_beginning_solidus",
	ErrorKindUnexpectedReverseSolidus:            "unexpected_reverse_solidus",
	ErrorKindMissingSolidusBeforeAuthority:       "missing_solidus_before_authority",
	ErrorKindUnexpectedCommercialAt:              "unexpected_commercial_at",
	ErrorKindUnexpectedPortWithoutHost:           "unexpected_port_without_host",
	ErrorKindUnexpectedWindowsDriveLetter:        "unexpected_windows_drive_letter",
	ErrorKindUnexpectedWindowsDriveLetterHost:    "unexpected_windows_drive_letter_host",
	ErrorKindUnexpectedHostFileScheme:            "unexpected_host_file_scheme",
	ErrorKindUnexpectedEmptyPath:                 "unexpected_empty_path",
	ErrorKindInvalidURLCodePoint:                 "invalid_url_code_point",
	ErrorKindUnescapedPercentSign:                "unescaped_percent_sign",
	ErrorKindUnclosedIPv6:                        "unclosed_ipv6",
	ErrorKindIPv6EmptyInput:                      "empty_input",
	ErrorKindIPv6UnexpectedLeadingColon:          "unexpected_leading_colon",
	ErrorKindIPv6UnexpectedTrailingColon:         "unexpected_trailing_colon",
	ErrorKindIPv6UnexpectedCharacter:             "unexpected_character",
	ErrorKindIPv6MultipleCompressedPieces:        "multiple_compressed_pieces",
	ErrorKindIPv6InvalidPositionForIPv4:          "invalid_position_for_ipv4_address",
	ErrorKindIPv6NotEnoughPieces:                 "not_enough_pieces",
	ErrorKindIPv6TooManyPieces:                   "too_many_pieces",
	ErrorKindIPv4PieceOverflows:                  "piece_overflows",
	ErrorKindIPv4TooManyPieces:                   "too_many_pieces",
	ErrorKindIPv4PieceBeginsWithInvalidCharacter: "piece_begins_with_invalid_character",
	ErrorKindIPv4UnsupportedRadix:                "unsupported_radix",
	ErrorKindIPv4InvalidCharacter:                "invalid_character",
	ErrorKindIPv4PieceInvalidRadix:               "piece_invalid_radix",
}

// String returns the stable snake_case name of the kind.
func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseError is the error type returned by parsing functions in this package.
// It carries the kind that aborted the parse, an optional detail (usually the
// offending component), and may wrap a more specific error, such as the host
// parser failure underlying a ErrorKindHostInvalid.
type ParseError struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("URL parse error: %s", e.Kind)
	if e.Detail != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.Detail)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err)
	}
	return msg
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError creates a ParseError for the given kind.
func newParseError(kind ErrorKind, detail string) *ParseError {
	return &ParseError{Kind: kind, Detail: detail}
}

// newHostError wraps a host parser failure in a ParseError so that callers can
// distinguish the host sub-error via Unwrap.
func newHostError(err error, detail string) *ParseError {
	if pe, ok := err.(*ParseError); ok {
		return &ParseError{Kind: ErrorKindHostInvalid, Detail: detail, Err: pe}
	}
	return &ParseError{Kind: ErrorKindHostInvalid, Detail: detail, Err: err}
}

// ValidationError records a non-fatal violation observed while parsing.
// Violations do not stop the parse; they are reported by ParseWithErrors.
type ValidationError struct {
	Kind   ErrorKind
	Detail string
}

// Error returns the string representation of the validation error.
func (e ValidationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s '%s'", e.Kind, e.Detail)
	}
	return e.Kind.String()
}
