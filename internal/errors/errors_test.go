package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Creation(t *testing.T) {
	message := "product not found"
	err := NewNotFoundError(message)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
}

func TestNotFoundError_IsNotFoundError(t *testing.T) {
	err := NewNotFoundError("variant not found")

	notFoundErr, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, notFoundErr)
	assert.Equal(t, "variant not found", notFoundErr.Message)
}

func TestNotFoundError_IsNotFoundError_WithOtherError(t *testing.T) {
	err := errors.New("some other error")

	notFoundErr, ok := IsNotFoundError(err)
	assert.False(t, ok)
	assert.Nil(t, notFoundErr)
}

func TestValidationError_Creation(t *testing.T) {
	message := "validation failed"
	details := []ValidationDetail{
		{Field: "customerName", Message: "customerName must not be blank"},
		{Field: "quantity", Message: "quantity must be positive"},
	}

	err := NewValidationError(message, details...)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
	assert.Len(t, err.Details, 2)
}

func TestValidationError_IsValidationError_WithOtherError(t *testing.T) {
	_, ok := IsValidationError(errors.New("boom"))
	assert.False(t, ok)
}

func TestConflictError_Creation(t *testing.T) {
	err := NewConflictError("cart has unresolved ambiguities")

	assert.NotNil(t, err)
	assert.Equal(t, "cart has unresolved ambiguities", err.Error())

	ce, ok := IsConflictError(err)
	assert.True(t, ok)
	assert.NotNil(t, ce)
}

func TestInternalError_Creation(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternalError("extraction request failed", cause)

	assert.NotNil(t, err)
	assert.Equal(t, "extraction request failed: connection refused", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestInternalError_WithoutCause(t *testing.T) {
	err := NewInternalError("empty extraction response", nil)

	assert.Equal(t, "empty extraction response", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
