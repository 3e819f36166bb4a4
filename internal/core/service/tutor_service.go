package service

import (
	"context"

	"github.com/campulse/campulse-api/internal/core/domain"
	"github.com/campulse/campulse-api/internal/core/ports"
	"github.com/campulse/campulse-api/internal/pkg/latency"
)

type tutorService struct {
	repo  ports.TutorRepository
	delay latency.Simulator
}

// NewTutorService returns a read-only TutorService over repo.
func NewTutorService(repo ports.TutorRepository, delay latency.Simulator) ports.TutorService {
	return &tutorService{repo: repo, delay: delay}
}

// List returns the directory, narrowed to tutors whose course codes contain
// courseCode (case-insensitive) when it is non-empty.
func (s *tutorService) List(ctx context.Context, courseCode string) ([]domain.Tutor, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, courseCode)
}

func (s *tutorService) Get(ctx context.Context, id string) (*domain.Tutor, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}
