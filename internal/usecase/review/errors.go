// Package review provides use cases for game review content.
package review

import "errors"

// Sentinel errors for review use case operations.
var (
	// ErrReviewNotFound indicates that the requested review was not found.
	ErrReviewNotFound = errors.New("review not found")

	// ErrInvalidReviewID indicates that the provided review ID is invalid.
	ErrInvalidReviewID = errors.New("invalid review ID")
)
