package util

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError_PassesThroughWrapped(t *testing.T) {
	wrapped := fmt.Errorf("login: %w", NewInvalidCredentials("Invalid credentials"))

	de := ToDomainError(wrapped)
	require.NotNil(t, de)
	assert.Equal(t, "INVALID_CREDENTIALS", de.Code)
	assert.Equal(t, http.StatusUnauthorized, de.HTTPStatus)
	assert.Equal(t, "Invalid credentials", de.Message)
}

func TestToDomainError_FiberError(t *testing.T) {
	de := ToDomainError(fiber.NewError(http.StatusNotFound, "Cannot GET /nope"))

	assert.Equal(t, "NOT_FOUND", de.Code)
	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
	assert.Equal(t, "Cannot GET /nope", de.Message)
}

func TestToDomainError_HidesUnknownErrors(t *testing.T) {
	cause := errors.New("boom")
	de := ToDomainError(cause)

	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	assert.Equal(t, "internal server error", de.Message)
	assert.ErrorIs(t, de, cause)
}

func TestToDomainError_ContextDeadline(t *testing.T) {
	for _, cause := range []error{context.DeadlineExceeded, context.Canceled} {
		de := ToDomainError(fmt.Errorf("list logs: %w", cause))

		assert.Equal(t, "TIMEOUT", de.Code)
		assert.Equal(t, http.StatusGatewayTimeout, de.HTTPStatus)
		assert.Equal(t, "request timed out", de.Message)
		assert.ErrorIs(t, de, cause)
	}
}

func TestToDomainError_Nil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}

func TestTaxonomyStatuses(t *testing.T) {
	cases := map[string]struct {
		err    error
		status int
	}{
		"bad request":   {NewBadRequest("x"), http.StatusBadRequest},
		"credentials":   {NewInvalidCredentials("x"), http.StatusUnauthorized},
		"missing token": {NewMissingToken("x"), http.StatusUnauthorized},
		"expired token": {NewExpiredToken("x"), http.StatusUnauthorized},
		"invalid token": {NewInvalidToken("x"), http.StatusUnauthorized},
		"forbidden":     {NewForbidden("x"), http.StatusForbidden},
		"timeout":       {NewTimeout(context.DeadlineExceeded), http.StatusGatewayTimeout},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.status, ToDomainError(tc.err).HTTPStatus)
		})
	}
}
