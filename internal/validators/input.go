// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf16"
)

// minPasswordLength is measured in UTF-16 code units.
const minPasswordLength = 6

// whitespace is the character class body for whitespace as browsers and
// mobile runtimes see it: ASCII whitespace, vertical tab, Unicode space
// separators, line/paragraph separators and the BOM.
const whitespace = `\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	// local@domain.tld, no whitespace anywhere and no extra '@' before the dot.
	emailPattern = regexp.MustCompile(`^[^` + whitespace + `@]+@[^` + whitespace + `@]+\.[^` + whitespace + `]+$`)

	// Kenyan mobile numbers: optional +254 or 0 prefix, then 7/8/9 and eight digits.
	phonePattern = regexp.MustCompile(`^(?:\+254|0)?[789][0-9]{8}$`)
)

// ValidateEmail reports whether s looks like an email address.
// It is a loose syntactic check, not an RFC 5322 parser.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidatePassword reports whether s is at least six UTF-16 code units long.
// The value is not trimmed.
func ValidatePassword(s string) bool {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
		if n >= minPasswordLength {
			return true
		}
	}
	return false
}

// ValidatePhone reports whether s is a mobile number of the Kenyan numbering
// plan, e.g. "0712345678" or "+254712345678".
func ValidatePhone(s string) bool {
	return phonePattern.MatchString(s)
}

// ValidateRequired reports whether s has any content besides surrounding whitespace.
func ValidateRequired(s string) bool {
	return len(strings.TrimFunc(s, isWhitespace)) > 0
}

func isWhitespace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}
