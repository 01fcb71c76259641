package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"homezy-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		code int
	}{
		{"bad request", errors.BadRequest("x"), http.StatusBadRequest},
		{"unauthorized", errors.UnauthorizedError("x"), http.StatusUnauthorized},
		{"forbidden", errors.ForbiddenError("x"), http.StatusForbidden},
		{"not found", errors.NotFound("x"), http.StatusNotFound},
		{"conflict", errors.Conflict("x"), http.StatusConflict},
		{"internal", errors.InternalServerError("x"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("outer: %w", errors.Conflict("x")), http.StatusConflict},
		{"untyped", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, errors.Code(tc.err))
		})
	}
}

func TestIs(t *testing.T) {
	assert.True(t, errors.Is(errors.Conflict("already processed"), http.StatusConflict))
	assert.False(t, errors.Is(errors.NotFound("missing"), http.StatusConflict))
	assert.False(t, errors.Is(fmt.Errorf("plain"), http.StatusConflict))
	assert.Equal(t, "already processed", errors.Conflict("already processed").Error())
}
