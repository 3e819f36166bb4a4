package ports

import (
	"context"

	"github.com/campulse/campulse-api/internal/core/domain"
)

// TutorRepository is the read-only tutor directory.
type TutorRepository interface {
	// List returns every tutor, or those with a course code containing
	// courseCode case-insensitively when courseCode is non-empty.
	List(ctx context.Context, courseCode string) ([]domain.Tutor, error)
	Get(ctx context.Context, id string) (*domain.Tutor, error)
}

type TutorService interface {
	List(ctx context.Context, courseCode string) ([]domain.Tutor, error)
	Get(ctx context.Context, id string) (*domain.Tutor, error)
}
