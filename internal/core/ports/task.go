package ports

import (
	"context"
	"time"

	"github.com/campulse/campulse-api/internal/core/domain"
)

// TaskRepository is the insertion-ordered task collection.
type TaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, task domain.Task) error
	// Update merges patch into the task with id and returns the result, or
	// domain.ErrTaskNotFound.
	Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	// Delete removes the task if present. A missing id is not an error.
	Delete(ctx context.Context, id string) error
}

// CreateTaskInput is the DTO for a new planner entry.
type CreateTaskInput struct {
	Title       string
	Description string
	Type        domain.TaskType
	Priority    domain.Priority
	DueDate     *time.Time
}

type TaskService interface {
	List(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}
