package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jvasquezan/tareas-api/internal/service/auth"
	"github.com/jvasquezan/tareas-api/internal/store"
)

// Stable machine-readable error codes exposed alongside the human-readable
// Spanish messages. Clients should branch on these, not on message text.
const (
	CodeDuplicateEmail     = "duplicate_email"
	CodeInvalidCredentials = "invalid_credentials"
	CodeNotFound           = "not_found"
	CodeValidationError    = "validation_error"
	CodeUnauthorized       = "unauthorized"
	CodeInternalError      = "internal_error"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Duplicate errors. The public contract reports a duplicate registration
	// as a client error, not a conflict.
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusBadRequest

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode returns the stable machine-readable code for the given error.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return CodeUnauthorized
	case errors.Is(err, store.ErrEmailExists):
		return CodeDuplicateEmail
	case errors.Is(err, store.ErrNotFound):
		return CodeNotFound
	case errors.Is(err, store.ErrInvalidEntity):
		return CodeValidationError
	default:
		return CodeInternalError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the given
// error, in the Spanish of the public contract. Internal details never reach
// the client.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "Ocurrió un error inesperado"
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "El token ha expirado"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Token inválido"
	case errors.Is(err, store.ErrEmailExists):
		return "El email ya está registrado"
	case errors.Is(err, store.ErrUserNotFound):
		return "Usuario no encontrado"
	case errors.Is(err, store.ErrTaskNotFound):
		return "Tarea no encontrada"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Datos inválidos"
	default:
		return "Ocurrió un error inesperado"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format:
	// "Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Campo %s inválido: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Campo %s inválido", field)
			}
		}
	}

	return "Error de validación"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "es obligatorio"
	case "email":
		return "formato de email inválido"
	case "min":
		return "demasiado corto"
	case "max":
		return "demasiado largo"
	default:
		return "validación fallida"
	}
}
