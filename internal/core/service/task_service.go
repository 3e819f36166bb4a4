package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/campulse/campulse-api/internal/core/domain"
	"github.com/campulse/campulse-api/internal/core/ports"
	"github.com/campulse/campulse-api/internal/pkg/latency"
	"github.com/campulse/campulse-api/internal/pkg/metrics"
)

type taskService struct {
	repo   ports.TaskRepository
	delay  latency.Simulator
	logger zerolog.Logger
}

// NewTaskService returns a TaskService backed by repo.
func NewTaskService(repo ports.TaskRepository, delay latency.Simulator, logger zerolog.Logger) ports.TaskService {
	return &taskService{repo: repo, delay: delay, logger: logger}
}

// List returns every task in insertion order.
func (s *taskService) List(ctx context.Context) ([]domain.Task, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// Create stores a new, not yet completed task.
func (s *taskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	if !input.Type.Valid() || !input.Priority.Valid() {
		return nil, domain.ErrInvalidTask
	}
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("create task: generate id: %w", err)
	}

	task := domain.Task{
		ID:          id.String(),
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		IsDone:      false,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		s.logger.Error().Err(err).Msg("failed to create task")
		return nil, fmt.Errorf("create task: %w", err)
	}

	metrics.TaskMutationsTotal.WithLabelValues("create").Inc()
	s.logger.Info().Str("task_id", task.ID).Str("task_type", string(task.Type)).Msg("task created")
	return &task, nil
}

// Update merges patch into an existing task. A missing id yields
// domain.ErrTaskNotFound and leaves the collection untouched.
func (s *taskService) Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	task, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	metrics.TaskMutationsTotal.WithLabelValues("update").Inc()
	s.logger.Debug().Str("task_id", id).Msg("task updated")
	return task, nil
}

// Delete removes the task if it exists. Deleting an unknown id succeeds.
func (s *taskService) Delete(ctx context.Context, id string) error {
	if err := s.delay.Wait(ctx); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	metrics.TaskMutationsTotal.WithLabelValues("delete").Inc()
	s.logger.Debug().Str("task_id", id).Msg("task deleted")
	return nil
}
