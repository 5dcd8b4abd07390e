package store

import (
	"context"

	"github.com/jvasquezan/tareas-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store and assigns its ID.
	Create(ctx context.Context, task *domain.Task) error

	// GetAll retrieves every task in store-native order.
	// Returns an empty slice when the table is empty.
	GetAll(ctx context.Context) ([]*domain.Task, error)

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Update replaces all mutable fields of the task identified by task.ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error
}
