package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactories_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"validation", NewValidation("bad input"), CodeValidation, http.StatusBadRequest},
		{"not found", NewNotFound("product", 7), CodeNotFound, http.StatusNotFound},
		{"internal", NewInternal(errors.New("boom")), CodeInternal, http.StatusInternalServerError},
		{"unauthorized", NewUnauthorized("no token"), CodeUnauthorized, http.StatusUnauthorized},
		{"conflict", NewConflict("already exists"), CodeConflict, http.StatusConflict},
		{"duplicate", NewDuplicate("user", "email", "a@b.c"), CodeDuplicate, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternal(cause)

	assert.ErrorIs(t, err, cause)
}

func TestAsAppError_Wrapped(t *testing.T) {
	inner := NewNotFound("user", 1)
	wrapped := fmt.Errorf("load user: %w", inner)

	appErr, ok := AsAppError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, CodeNotFound, appErr.Code)
	assert.True(t, IsNotFound(wrapped))
}

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus(NewNotFound("cart", 3)))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(errors.New("plain")))
}

func TestWithDetail(t *testing.T) {
	err := NewValidation("bad field").WithDetail("field", "name").WithDetail("got", "")

	assert.Equal(t, "name", err.Details["field"])
	assert.Contains(t, err.Details, "got")
}
