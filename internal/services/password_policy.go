package services

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

// ErrWeakPassword rejects passwords shorter than eight runes or missing an
// uppercase letter, a lowercase letter, or a digit.
var ErrWeakPassword = errors.New("weak password")

func ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < 8 {
		return ErrWeakPassword
	}

	var hasUpper, hasLower, hasDigit bool
	for _, char := range password {
		hasUpper = hasUpper || unicode.IsUpper(char)
		hasLower = hasLower || unicode.IsLower(char)
		hasDigit = hasDigit || unicode.IsDigit(char)
	}
	if !hasUpper || !hasLower || !hasDigit {
		return ErrWeakPassword
	}
	return nil
}
