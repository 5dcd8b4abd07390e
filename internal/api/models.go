package api

// Common request/response structures. Field names follow the public API
// contract, which is Spanish on the wire.

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Nombre   string `json:"nombre"     validate:"required"`
	Email    string `json:"email"      validate:"required,email"`
	Password string `json:"contraseña" validate:"required,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"      validate:"required,email"`
	Password string `json:"contraseña" validate:"required"`
}

// TokenResponse defines the successful response for the login endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}

// TaskRequest defines the payload for task create and update endpoints.
// Deliberately no validate tags: task fields are passed to the store as-is,
// with no required-field rules.
type TaskRequest struct {
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
	DueDate     string `json:"fecha_vencimiento"`
	Status      string `json:"estado"`
	UserID      int64  `json:"usuario_id"`
	CategoryID  int64  `json:"categoria_id"`
}

// CreateTaskResponse defines the successful response for task creation.
type CreateTaskResponse struct {
	ID      int64  `json:"id"`
	Mensaje string `json:"mensaje"`
}

// ProfileResponse defines the response for the authenticated profile
// endpoint. The password hash is never included.
type ProfileResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}
