package ports

import (
	"context"

	"github.com/campulse/campulse-api/internal/core/domain"
)

// SignupInput carries the profile and password of a new account.
type SignupInput struct {
	FullName   string
	Email      string
	Password   string
	School     string
	Department string
	Level      string
}

// AuthService is the session store: it owns the current user and the
// credential set.
type AuthService interface {
	Restore(ctx context.Context)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Signup(ctx context.Context, input SignupInput) (string, *domain.User, error)
	Logout(ctx context.Context) error
	Current() (*domain.User, bool)
	Ready() bool
}
