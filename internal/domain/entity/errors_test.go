package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "email", Message: "is required"}

	assert.Equal(t, "validation error on field 'email': is required", err.Error())
}

func TestValidationError_As(t *testing.T) {
	wrapped := fmt.Errorf("subscribe: %w", &ValidationError{Field: "email", Message: "is not a valid address"})

	var vErr *ValidationError
	require.ErrorAs(t, wrapped, &vErr)
	assert.Equal(t, "email", vErr.Field)
}

func TestSentinelErrors(t *testing.T) {
	assert.ErrorIs(t, fmt.Errorf("get article: %w", ErrNotFound), ErrNotFound)
	assert.ErrorIs(t, fmt.Errorf("parse: %w", ErrInvalidInput), ErrInvalidInput)
	assert.False(t, errors.Is(ErrNotFound, ErrInvalidInput))
}
