package entity

import (
	"net/mail"
	"strings"
)

// ValidateEmail checks that the address parses per RFC 5322 and carries no
// display name. The catalog compares emails as exact strings, so callers
// should pass the address unmodified after validation succeeds.
func ValidateEmail(address string) error {
	if strings.TrimSpace(address) == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	parsed, err := mail.ParseAddress(address)
	if err != nil || parsed.Address != address {
		return &ValidationError{Field: "email", Message: "is not a valid address"}
	}
	return nil
}

// ValidateRating checks that a review rating is on the 0-100 scale.
func ValidateRating(rating int) error {
	if rating < 0 || rating > 100 {
		return &ValidationError{Field: "rating", Message: "must be between 0 and 100"}
	}
	return nil
}
