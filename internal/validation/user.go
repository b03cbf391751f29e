// Package validation contains input validation rules for API payloads.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const (
	// MinPasswordLength is the minimum allowed password length.
	MinPasswordLength = 8
	// MaxPasswordLength caps passwords at bcrypt's input limit.
	MaxPasswordLength = 72
	// MaxUsernameLength is the maximum allowed username length.
	MaxUsernameLength = 30
)

var (
	usernameRegexp = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
	emailRegexp    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateUsername checks username format constraints.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if len(username) < 3 {
		return fmt.Errorf("username must be at least 3 characters long")
	}
	if len(username) > MaxUsernameLength {
		return fmt.Errorf("username must be at most %d characters long", MaxUsernameLength)
	}
	if !usernameRegexp.MatchString(username) {
		return fmt.Errorf("username may only contain letters, digits, dots, dashes and underscores")
	}
	return nil
}

// ValidateEmail checks basic email shape. Deliverability is not verified.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegexp.MatchString(email) {
		return fmt.Errorf("email is not valid")
	}
	return nil
}

// ValidatePassword validates password strength requirements.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return fmt.Errorf("password must be at most %d characters long", MaxPasswordLength)
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !hasDigit {
		return fmt.Errorf("password must contain at least one digit")
	}
	return nil
}

// NormalizeEmail lowercases and trims an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
