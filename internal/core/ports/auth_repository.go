package ports

import (
	"context"

	"github.com/campulse/campulse-api/internal/core/domain"
)

// KeyValueStore is the raw string storage behind the credential set and the
// session snapshot. Get reports found=false for a missing key.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// CredentialRepository persists the full set of registered accounts.
type CredentialRepository interface {
	// List returns every credential record in registration order. A missing
	// set is an empty list.
	List(ctx context.Context) ([]domain.Credential, error)
	// Save replaces the persisted set.
	Save(ctx context.Context, creds []domain.Credential) error
}

// SessionStore persists the snapshot of the current user.
type SessionStore interface {
	// Load returns (nil, nil) when no snapshot exists and
	// domain.ErrCorruptSession when the stored value cannot be decoded.
	Load(ctx context.Context) (*domain.User, error)
	Save(ctx context.Context, user domain.User) error
	Clear(ctx context.Context) error
}
