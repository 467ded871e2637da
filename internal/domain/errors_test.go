package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("definition", "yeet")

	assert.True(t, IsNotFound(err))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, `definition with id "yeet" not found`, err.Error())

	var nfe *NotFoundError
	require.True(t, errors.As(err, &nfe))
	assert.Equal(t, "definition", nfe.Entity)
}

func TestNotFoundError_WithoutID(t *testing.T) {
	err := NewNotFoundError("definition", "")
	assert.Equal(t, "definition not found", err.Error())
}

func TestConflictError(t *testing.T) {
	err := NewConflictError("lookup", "another lookup is in progress")

	assert.True(t, IsConflict(err))
	assert.Equal(t, "lookup conflict: another lookup is in progress", err.Error())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("term", "enter a term to look up")

	assert.True(t, IsValidation(err))
	assert.Equal(t, "validation failed for term: enter a term to look up", err.Error())

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "term", ve.Field)
}

func TestValidationError_WithoutField(t *testing.T) {
	err := NewValidationError("", "bad input")
	assert.Equal(t, "validation failed: bad input", err.Error())
}

func TestForbiddenError(t *testing.T) {
	err := NewForbiddenError("lookup", "access denied")

	assert.True(t, IsForbidden(err))
	assert.Equal(t, `operation "lookup" forbidden: access denied`, err.Error())
}

func TestUnavailableError(t *testing.T) {
	err := NewUnavailableError("urban-dictionary", "HTTP 500")

	assert.True(t, IsUnavailable(err))
	assert.Equal(t, `service "urban-dictionary" unavailable: HTTP 500`, err.Error())
}

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("dictionary API key", "set services.urban_dictionary.api_key")

	assert.True(t, IsNotConfigured(err))
	assert.False(t, IsValidation(err))
	assert.Equal(t, "dictionary API key is not configured: set services.urban_dictionary.api_key", err.Error())
}

func TestErrorChecks_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("looking up term: %w", NewUnavailableError("urban-dictionary", "timeout"))

	assert.True(t, IsUnavailable(wrapped))
	assert.False(t, IsNotFound(wrapped))
	assert.False(t, IsConflict(wrapped))
}

func TestErrorChecks_NilError(t *testing.T) {
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsConflict(nil))
	assert.False(t, IsValidation(nil))
	assert.False(t, IsForbidden(nil))
	assert.False(t, IsUnavailable(nil))
	assert.False(t, IsNotConfigured(nil))
}
