package mocks

import (
	"context"

	"github.com/jvasquezan/tareas-api/internal/domain"
	"github.com/jvasquezan/tareas-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, task *domain.Task) error
	GetAllFn  func(ctx context.Context) ([]*domain.Task, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Task, error)
	UpdateFn  func(ctx context.Context, task *domain.Task) error
	DeleteFn  func(ctx context.Context, id int64) error

	// Data for default implementation. Order preserves insertion so GetAll
	// returns tasks the way a sequential-ID table would.
	Tasks  map[int64]*domain.Task
	Order  []int64
	NextID int64
}

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks:  make(map[int64]*domain.Task),
		NextID: 1,
	}
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	task.ID = m.NextID
	m.NextID++
	m.Tasks[task.ID] = task
	m.Order = append(m.Order, task.ID)
	return nil
}

// GetAll implements the TaskStore interface
func (m *MockTaskStore) GetAll(ctx context.Context) ([]*domain.Task, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(ctx)
	}

	tasks := make([]*domain.Task, 0, len(m.Order))
	for _, id := range m.Order {
		if task, exists := m.Tasks[id]; exists {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

// GetByID implements the TaskStore interface
func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	task, exists := m.Tasks[id]
	if !exists {
		return nil, store.ErrTaskNotFound
	}
	return task, nil
}

// Update implements the TaskStore interface
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	if _, exists := m.Tasks[task.ID]; !exists {
		return store.ErrTaskNotFound
	}
	m.Tasks[task.ID] = task
	return nil
}

// Delete implements the TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Tasks[id]; !exists {
		return store.ErrTaskNotFound
	}
	delete(m.Tasks, id)
	for i, orderedID := range m.Order {
		if orderedID == id {
			m.Order = append(m.Order[:i], m.Order[i+1:]...)
			break
		}
	}
	return nil
}
