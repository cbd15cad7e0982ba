package errors

import (
	"net/http"
	"testing"

	"arena/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	wrapped := ErrInvalidCredentials.WrapMessage("login failed")

	assert.True(t, errors.Is(wrapped, ErrInvalidCredentials))

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("username too short")

	assert.Equal(t, "username too short", detailed.Details())
	assert.Equal(t, ErrValidationFailed.ErrorCode(), detailed.ErrorCode())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestTaxonomyHTTPCodes(t *testing.T) {
	tests := []struct {
		err  *BaseError
		code int
	}{
		{ErrUsernameTaken, http.StatusConflict},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrCorruptCredential, http.StatusInternalServerError},
		{ErrInvalidToken, http.StatusUnauthorized},
		{ErrExpiredToken, http.StatusUnauthorized},
		{ErrUnauthorized, http.StatusForbidden},
		{ErrHeroNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.err.ErrorCode(), func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.HTTPCode())
		})
	}
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	dbErr := NewDatabaseExecuteError(cause, "failed to create user")

	assert.True(t, errors.Is(dbErr, cause))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", dbErr.ErrorCode())
	assert.Equal(t, "failed to create user", dbErr.Details())
}
