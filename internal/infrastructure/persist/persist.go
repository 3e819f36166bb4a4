// Package persist stores the credential set and the current-session snapshot
// as JSON strings in a key/value store, under the same keys the web client
// uses in browser storage.
package persist

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/campulse/campulse-api/internal/core/domain"
	"github.com/campulse/campulse-api/internal/core/ports"
)

const (
	SessionKey     = "campulse_user"
	CredentialsKey = "campulse_users"
)

// CredentialRepository implements ports.CredentialRepository.
type CredentialRepository struct {
	kv ports.KeyValueStore
}

func NewCredentialRepository(kv ports.KeyValueStore) *CredentialRepository {
	return &CredentialRepository{kv: kv}
}

func (r *CredentialRepository) List(ctx context.Context) ([]domain.Credential, error) {
	raw, found, err := r.kv.Get(ctx, CredentialsKey)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	if !found || raw == "" {
		return []domain.Credential{}, nil
	}

	var creds []domain.Credential
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		return nil, fmt.Errorf("decode credentials: %w", err)
	}
	return creds, nil
}

func (r *CredentialRepository) Save(ctx context.Context, creds []domain.Credential) error {
	raw, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	if err := r.kv.Set(ctx, CredentialsKey, string(raw)); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// SessionStore implements ports.SessionStore.
type SessionStore struct {
	kv ports.KeyValueStore
}

func NewSessionStore(kv ports.KeyValueStore) *SessionStore {
	return &SessionStore{kv: kv}
}

func (s *SessionStore) Load(ctx context.Context) (*domain.User, error) {
	raw, found, err := s.kv.Get(ctx, SessionKey)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if !found {
		return nil, nil
	}

	// A JSON null is an explicitly empty session.
	var u *domain.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptSession, err)
	}
	if u == nil {
		return nil, nil
	}
	if u.ID == "" {
		return nil, fmt.Errorf("%w: snapshot has no user id", domain.ErrCorruptSession)
	}
	return u, nil
}

func (s *SessionStore) Save(ctx context.Context, user domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.kv.Set(ctx, SessionKey, string(raw)); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
