package errors

import (
	"net/http"
	"testing"

	"creatorhub/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatchesSentinel(t *testing.T) {
	err := ErrQuotaExceeded.WithDetails("products")

	assert.True(t, errors.Is(err, ErrQuotaExceeded))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, http.StatusForbidden, err.HTTPCode())
	assert.Equal(t, "products", err.Details())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrNotFound.WrapMessage("product lookup")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(map[string]string{
		"title":         "must be at least 3 characters",
		"affiliate_url": "must be a valid URL",
	})

	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", err.ErrorCode())
	assert.Equal(t, "affiliate_url, title", err.Details())
	assert.Contains(t, err.Fields(), "title")
	assert.True(t, errors.Is(err, ErrValidationFailed))
}
