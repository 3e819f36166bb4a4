package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/campulse/campulse-api/internal/core/domain"
	"github.com/campulse/campulse-api/internal/infrastructure/db/seed"
)

func TestTaskRepository_InsertionOrder(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	for _, id := range []string{"b", "a", "c"} {
		if err := repo.Create(ctx, domain.Task{ID: id}); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	tasks, _ := repo.List(ctx)
	if len(tasks) != 3 || tasks[0].ID != "b" || tasks[1].ID != "a" || tasks[2].ID != "c" {
		t.Fatalf("unexpected order: %+v", tasks)
	}
}

func TestTaskRepository_UpdateMissing(t *testing.T) {
	repo := NewTaskRepository(domain.Task{ID: "1"})
	done := true

	_, err := repo.Update(context.Background(), "nope", domain.TaskPatch{IsDone: &done})
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskRepository_ListReturnsCopies(t *testing.T) {
	repo := NewTaskRepository(domain.Task{ID: "1", Title: "orig"})
	tasks, _ := repo.List(context.Background())
	tasks[0].Title = "mutated"

	again, _ := repo.List(context.Background())
	if again[0].Title != "orig" {
		t.Fatalf("repository state leaked through List")
	}
}

func TestTaskRepository_DeleteIsIdempotent(t *testing.T) {
	repo := NewTaskRepository(domain.Task{ID: "1"}, domain.Task{ID: "2"})
	ctx := context.Background()

	if err := repo.Delete(ctx, "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, "1"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	tasks, _ := repo.List(ctx)
	if len(tasks) != 1 || tasks[0].ID != "2" {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
}

func TestOpportunityRepository_Filter(t *testing.T) {
	repo := NewOpportunityRepository(seed.Opportunities()...)
	ctx := context.Background()

	all, _ := repo.List(ctx, "")
	if len(all) != 3 {
		t.Fatalf("expected 3 opportunities, got %d", len(all))
	}
	gigs, _ := repo.List(ctx, domain.CategoryGig)
	if len(gigs) != 1 || gigs[0].Category != domain.CategoryGig {
		t.Fatalf("unexpected gigs: %+v", gigs)
	}
	if _, err := repo.Get(ctx, "99"); !errors.Is(err, domain.ErrOpportunityNotFound) {
		t.Fatalf("expected ErrOpportunityNotFound, got %v", err)
	}
}

func TestTutorRepository_CourseFilter(t *testing.T) {
	repo := NewTutorRepository(seed.Tutors()...)

	tutors, _ := repo.List(context.Background(), "csc")
	if len(tutors) != 1 || tutors[0].Name != "Sarah Adebayo" {
		t.Fatalf("unexpected tutors: %+v", tutors)
	}
	if _, err := repo.Get(context.Background(), "404"); !errors.Is(err, domain.ErrTutorNotFound) {
		t.Fatalf("expected ErrTutorNotFound, got %v", err)
	}
}

func TestBookmarkStore_Toggle(t *testing.T) {
	store := NewBookmarkStore()
	ctx := context.Background()

	on, _ := store.Toggle(ctx, "u1", "2")
	if !on {
		t.Fatalf("first toggle should bookmark")
	}
	_, _ = store.Toggle(ctx, "u1", "1")

	ids, _ := store.List(ctx, "u1")
	if len(ids) != 2 || ids[0] != "1" || ids[1] != "2" {
		t.Fatalf("unexpected bookmarks: %v", ids)
	}

	on, _ = store.Toggle(ctx, "u1", "2")
	if on {
		t.Fatalf("second toggle should remove")
	}
	if other, _ := store.List(ctx, "u2"); len(other) != 0 {
		t.Fatalf("owners must not share bookmarks: %v", other)
	}
}

func TestKVStore(t *testing.T) {
	kv := NewKVStore()
	ctx := context.Background()

	if _, found, _ := kv.Get(ctx, "k"); found {
		t.Fatalf("empty store reported a value")
	}
	_ = kv.Set(ctx, "k", "v")
	if v, found, _ := kv.Get(ctx, "k"); !found || v != "v" {
		t.Fatalf("got %q %v", v, found)
	}
	_ = kv.Delete(ctx, "k")
	if _, found, _ := kv.Get(ctx, "k"); found {
		t.Fatalf("value survived delete")
	}
}
