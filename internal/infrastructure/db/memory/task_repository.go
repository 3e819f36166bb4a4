package memory

import (
	"context"
	"sync"

	"github.com/campulse/campulse-api/internal/core/domain"
)

// TaskRepository keeps tasks in a slice in insertion order.
type TaskRepository struct {
	mu    sync.RWMutex
	tasks []domain.Task
}

// NewTaskRepository returns a repository holding a copy of seed.
func NewTaskRepository(seed ...domain.Task) *TaskRepository {
	tasks := make([]domain.Task, 0, len(seed))
	for _, t := range seed {
		tasks = append(tasks, cloneTask(t))
	}
	return &TaskRepository{tasks: tasks}
}

func (r *TaskRepository) List(_ context.Context) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Task, len(r.tasks))
	for i, t := range r.tasks {
		out[i] = cloneTask(t)
	}
	return out, nil
}

func (r *TaskRepository) Create(_ context.Context, task domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append(r.tasks, cloneTask(task))
	return nil
}

func (r *TaskRepository) Update(_ context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrTaskNotFound
	}
	patch.Apply(&r.tasks[i])
	updated := cloneTask(r.tasks[i])
	return &updated, nil
}

func (r *TaskRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	}
	return nil
}

func (r *TaskRepository) indexOf(id string) int {
	for i, t := range r.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func cloneTask(t domain.Task) domain.Task {
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	return t
}
