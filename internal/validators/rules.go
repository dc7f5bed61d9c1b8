// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"
	"unicode/utf8"
)

// identifierPattern: two digits, "FE", one digit, one letter, four digits.
var identifierPattern = regexp.MustCompile(`^\d{2}FE\d[a-zA-Z]\d{4}$`)

// PasswordMinLength is the minimum number of characters of a password.
const PasswordMinLength = 8

// Messages returned to the client for the custom rules.
const (
	MessageIdentifier = "Username must be 10 characters: 2 numbers, 'FE', 1 number, 1 letter, 4 numbers"
	MessagePassword   = "Password must be at least 8 characters with 1 uppercase, 1 lowercase, 1 number, and 1 special character"
	MessageEmail      = "Invalid email address"
)

// IsValidIdentifier reports whether s is a well-formed account identifier.
func IsValidIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

// IsStrongPassword reports whether s satisfies the password policy: at least
// eight characters with a lowercase letter, an uppercase letter, a digit and
// a character that is neither an ASCII letter nor a digit.
func IsStrongPassword(s string) bool {
	if utf8.RuneCountInString(s) < PasswordMinLength {
		return false
	}

	var lower, upper, digit, special bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			special = true
		}
	}

	return lower && upper && digit && special
}
