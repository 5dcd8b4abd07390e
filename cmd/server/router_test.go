package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvasquezan/tareas-api/internal/config"
	"github.com/jvasquezan/tareas-api/internal/mocks"
	"github.com/jvasquezan/tareas-api/internal/service/auth"
)

// newTestApplication wires an application with in-memory stores and a real
// JWT service so the full request path can be exercised without a database.
func newTestApplication(t *testing.T) *application {
	t.Helper()

	jwtService := auth.NewTestJWTService(
		"test-secret-that-is-long-enough-for-testing",
		60*time.Minute,
		time.Now,
	)

	return &application{
		config: &config.Config{
			Server: config.ServerConfig{Port: 3000, LogLevel: "info"},
		},
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		userStore:        mocks.NewMockUserStore(),
		taskStore:        mocks.NewMockTaskStore(),
		jwtService:       jwtService,
		passwordHasher:   auth.NewBcryptHasher(),
		passwordVerifier: auth.NewBcryptVerifier(),
	}
}

func doJSON(
	t *testing.T,
	router http.Handler,
	method, path string,
	payload string,
	headers map[string]string,
) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != "" {
		body = bytes.NewBufferString(payload)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRegistrationAndLoginFlow(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	router := app.setupRouter()

	// Register
	resp := doJSON(t, router, "POST", "/api/registro",
		`{"nombre":"Juan","email":"juan@example.com","contraseña":"secret"}`, nil)
	require.Equal(t, http.StatusCreated, resp.Code)

	var created map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "Usuario registrado exitosamente", created["mensaje"])

	// Registering the same email again fails
	resp = doJSON(t, router, "POST", "/api/registro",
		`{"nombre":"Juan","email":"juan@example.com","contraseña":"secret"}`, nil)
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var dup map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dup))
	assert.Equal(t, "El email ya está registrado", dup["error"])

	// Login with the right password
	resp = doJSON(t, router, "POST", "/api/login",
		`{"email":"juan@example.com","contraseña":"secret"}`, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var login map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	require.NotEmpty(t, login["token"])

	// Login with the wrong password
	resp = doJSON(t, router, "POST", "/api/login",
		`{"email":"juan@example.com","contraseña":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	// The issued token opens the protected profile endpoint
	resp = doJSON(t, router, "GET", "/api/perfil", "", map[string]string{
		"Authorization": "Bearer " + login["token"],
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var profile map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&profile))
	assert.Equal(t, "juan@example.com", profile["email"])
	assert.Equal(t, "Juan", profile["nombre"])

	// Without a token the profile is unreachable
	resp = doJSON(t, router, "GET", "/api/perfil", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestTaskLifecycleFlow(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	router := app.setupRouter()

	// Task endpoints need no token
	resp := doJSON(t, router, "POST", "/api/tareas", `{
		"titulo": "Comprar pan",
		"descripcion": "Antes del mediodía",
		"fecha_vencimiento": "2026-09-15",
		"estado": "pendiente",
		"usuario_id": 1,
		"categoria_id": 2
	}`, nil)
	require.Equal(t, http.StatusCreated, resp.Code)

	var created struct {
		ID      int64  `json:"id"`
		Mensaje string `json:"mensaje"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Tarea creada exitosamente", created.Mensaje)

	// List
	resp = doJSON(t, router, "GET", "/api/tareas", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var tasks []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "Comprar pan", tasks[0]["titulo"])

	// Get by id
	resp = doJSON(t, router, "GET", fmt.Sprintf("/api/tareas/%d", created.ID), "", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	// Update
	resp = doJSON(t, router, "PUT", fmt.Sprintf("/api/tareas/%d", created.ID),
		`{"titulo":"Comprar pan","estado":"completada"}`, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var updated map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, "Tarea actualizada exitosamente", updated["mensaje"])

	// Delete
	resp = doJSON(t, router, "DELETE", fmt.Sprintf("/api/tareas/%d", created.ID), "", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var deleted map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&deleted))
	assert.Equal(t, "Tarea eliminada exitosamente", deleted["mensaje"])

	// The task is gone
	resp = doJSON(t, router, "GET", fmt.Sprintf("/api/tareas/%d", created.ID), "", nil)
	require.Equal(t, http.StatusNotFound, resp.Code)

	var missing map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&missing))
	assert.Equal(t, "Tarea no encontrada", missing["error"])
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	router := app.setupRouter()

	resp := doJSON(t, router, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "OK", resp.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	router := app.setupRouter()

	resp := doJSON(t, router, "GET", "/api/desconocido", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
