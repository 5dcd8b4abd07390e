// Package api provides HTTP handlers for the API.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jvasquezan/tareas-api/internal/api/shared"
	"github.com/jvasquezan/tareas-api/internal/domain"
	"github.com/jvasquezan/tareas-api/internal/platform/logger"
	"github.com/jvasquezan/tareas-api/internal/service/auth"
	"github.com/jvasquezan/tareas-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordHasher auth.PasswordHasher,
	passwordVerifier auth.PasswordVerifier,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AuthHandler")
	}

	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordHasher:   passwordHasher,
		passwordVerifier: passwordVerifier,
		logger:           logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /api/registro.
// On success it answers 201 with a confirmation message; no token is issued
// at registration. A duplicate email is a 400 with the contract's message.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidationError, "Formato de solicitud inválido")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidationError, SanitizeValidationError(err))
		return
	}

	user, err := domain.NewUser(req.Nombre, req.Email, req.Password)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidationError, "Datos de usuario inválidos")
		return
	}

	// Hash before the plaintext goes anywhere near the store
	hashed, err := h.passwordHasher.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			CodeInternalError, "Error al registrar el usuario", err)
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, MapErrorToStatusCode(err),
				ErrorCode(err), GetSafeErrorMessage(err))
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			CodeInternalError, "Error al registrar el usuario", err)
		return
	}

	log.Info("user registered", slog.Int64("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, shared.MessageResponse{
		Mensaje: "Usuario registrado exitosamente",
	})
}

// Login handles POST /api/login.
// An unknown email and a wrong password produce byte-identical 401 responses
// so the caller cannot tell which one failed.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidationError, "Formato de solicitud inválido")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidationError, SanitizeValidationError(err))
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized,
				CodeInvalidCredentials, "Credenciales incorrectas")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			CodeInternalError, "Error al iniciar sesión", err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized,
			CodeInvalidCredentials, "Credenciales incorrectas")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			CodeInternalError, "Error al iniciar sesión", err)
		return
	}

	log.Debug("user logged in", slog.Int64("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}

// Profile handles GET /api/perfil.
// It requires the auth middleware, which places the caller's user ID in the
// request context.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := shared.UserIDFromContext(r.Context())
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized,
			CodeUnauthorized, "Token inválido")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, MapErrorToStatusCode(err),
				ErrorCode(err), GetSafeErrorMessage(err))
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			CodeInternalError, "Error al obtener el perfil", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProfileResponse{
		ID:     user.ID,
		Nombre: user.Name,
		Email:  user.Email,
	})
}
