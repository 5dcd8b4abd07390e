// Package store defines the persistence interfaces and their error taxonomy.
package store

import (
	"context"

	"github.com/jvasquezan/tareas-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store and assigns its ID.
	// The user must already carry a hashed password; the plaintext is never
	// persisted. Uniqueness of the email is enforced by the store itself
	// (not by a read-before-write check), so concurrent registrations with
	// the same email cannot both succeed.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
