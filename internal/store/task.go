package store

import (
	"context"

	"github.com/phrazzld/tasktrack-api/internal/domain"
)

// ListFilter narrows a task listing by equality on status and priority.
// Nil fields match everything; both set means both must match.
type ListFilter struct {
	Status   *domain.Status
	Priority *domain.Priority
}

// Empty reports whether the filter imposes no constraint.
func (f ListFilter) Empty() bool {
	return f.Status == nil && f.Priority == nil
}

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store. The store assigns the ID and
	// CreatedAt fields and sets them on the given task before returning.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// List retrieves tasks matching the filter, newest first.
	List(ctx context.Context, filter ListFilter) ([]*domain.Task, error)

	// Update saves changes to an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error
}
