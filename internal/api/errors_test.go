package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jvasquezan/tareas-api/internal/service/auth"
	"github.com/jvasquezan/tareas-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "invalid token",
			err:        auth.ErrInvalidToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			err:        auth.ErrExpiredToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not found",
			err:        store.ErrTaskNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("fetching task: %w", store.ErrTaskNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "duplicate email is a client error",
			err:        store.ErrEmailExists,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid entity",
			err:        store.ErrInvalidEntity,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"email exists", store.ErrEmailExists, CodeDuplicateEmail},
		{"task not found", store.ErrTaskNotFound, CodeNotFound},
		{"expired token", auth.ErrExpiredToken, CodeUnauthorized},
		{"invalid entity", store.ErrInvalidEntity, CodeValidationError},
		{"unknown", errors.New("boom"), CodeInternalError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantCode, ErrorCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"nil error", nil, "Ocurrió un error inesperado"},
		{"email exists", store.ErrEmailExists, "El email ya está registrado"},
		{"user not found", store.ErrUserNotFound, "Usuario no encontrado"},
		{"task not found", store.ErrTaskNotFound, "Tarea no encontrada"},
		{"expired token", auth.ErrExpiredToken, "El token ha expirado"},
		{"invalid token", auth.ErrInvalidToken, "Token inválido"},
		{
			name:    "internal details stay hidden",
			err:     errors.New("pq: connection reset by peer"),
			wantMsg: "Ocurrió un error inesperado",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			msg := GetSafeErrorMessage(tt.err)
			assert.Equal(t, tt.wantMsg, msg)
			if tt.err != nil {
				assert.NotContains(t, msg, "pq:")
			}
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	t.Run("validator error is translated", func(t *testing.T) {
		t.Parallel()
		err := errors.New(
			"Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag",
		)
		msg := SanitizeValidationError(err)
		assert.Equal(t, "Campo Email inválido: es obligatorio", msg)
	})

	t.Run("unrecognized error shape gets generic message", func(t *testing.T) {
		t.Parallel()
		msg := SanitizeValidationError(errors.New("boom"))
		assert.Equal(t, "Error de validación", msg)
	})
}
