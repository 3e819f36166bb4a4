package persist

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/campulse/campulse-api/internal/core/domain"
	"github.com/campulse/campulse-api/internal/infrastructure/db/memory"
)

func TestSessionStore_RoundTrip(t *testing.T) {
	kv := memory.NewKVStore()
	ctx := context.Background()
	created := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	want := domain.User{
		ID:         "0190f5c2",
		FullName:   "Ngozi Eze",
		Email:      "ngozi@student.com",
		School:     "UNN",
		Department: "Law",
		Level:      "100 Level",
		CreatedAt:  &created,
	}

	if err := NewSessionStore(kv).Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	// a fresh store over the same backing data stands in for a new process
	got, err := NewSessionStore(kv).Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || !reflect.DeepEqual(*got, want) {
		t.Fatalf("round trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestSessionStore_LoadMissing(t *testing.T) {
	got, err := NewSessionStore(memory.NewKVStore()).Load(context.Background())
	if err != nil || got != nil {
		t.Fatalf("expected (nil, nil), got (%v, %v)", got, err)
	}
}

func TestSessionStore_LoadCorrupt(t *testing.T) {
	kv := memory.NewKVStore()
	_ = kv.Set(context.Background(), SessionKey, "{not json")

	_, err := NewSessionStore(kv).Load(context.Background())
	if !errors.Is(err, domain.ErrCorruptSession) {
		t.Fatalf("expected ErrCorruptSession, got %v", err)
	}
}

func TestSessionStore_LoadNullIsNoSession(t *testing.T) {
	kv := memory.NewKVStore()
	_ = kv.Set(context.Background(), SessionKey, "null")

	got, err := NewSessionStore(kv).Load(context.Background())
	if err != nil || got != nil {
		t.Fatalf("expected (nil, nil), got (%+v, %v)", got, err)
	}
}

func TestSessionStore_LoadWithoutIDIsCorrupt(t *testing.T) {
	for _, raw := range []string{"{}", `{"full_name":"Nobody","email":"x@y.z"}`} {
		kv := memory.NewKVStore()
		_ = kv.Set(context.Background(), SessionKey, raw)

		got, err := NewSessionStore(kv).Load(context.Background())
		if !errors.Is(err, domain.ErrCorruptSession) || got != nil {
			t.Fatalf("%s: expected ErrCorruptSession, got (%+v, %v)", raw, got, err)
		}
	}
}

func TestSessionStore_Clear(t *testing.T) {
	kv := memory.NewKVStore()
	ctx := context.Background()
	store := NewSessionStore(kv)
	_ = store.Save(ctx, domain.DemoUser())

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, found, _ := kv.Get(ctx, SessionKey); found {
		t.Fatalf("session key still present after clear")
	}
}

func TestSessionStore_SnapshotHasNoPassword(t *testing.T) {
	kv := memory.NewKVStore()
	ctx := context.Background()
	cred := domain.Credential{ID: "1", Email: "a@b.c", PasswordHash: "hash-value"}
	_ = NewSessionStore(kv).Save(ctx, cred.User())

	raw, _, _ := kv.Get(ctx, SessionKey)
	if strings.Contains(raw, "password") || strings.Contains(raw, "hash-value") {
		t.Fatalf("snapshot leaks credential: %s", raw)
	}
}

func TestCredentialRepository_MissingIsEmpty(t *testing.T) {
	creds, err := NewCredentialRepository(memory.NewKVStore()).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if creds == nil || len(creds) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", creds)
	}
}

func TestCredentialRepository_SaveList(t *testing.T) {
	kv := memory.NewKVStore()
	ctx := context.Background()
	repo := NewCredentialRepository(kv)
	in := []domain.Credential{
		{ID: "1", Email: "first@student.com", PasswordHash: "h1"},
		{ID: "2", Email: "second@student.com", PasswordHash: "h2"},
	}

	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("mismatch: %+v vs %+v", in, out)
	}
}

func TestCredentialRepository_CorruptSetIsError(t *testing.T) {
	kv := memory.NewKVStore()
	_ = kv.Set(context.Background(), CredentialsKey, "[{")

	if _, err := NewCredentialRepository(kv).List(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}
