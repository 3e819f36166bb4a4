package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/campulse/campulse-api/internal/core/domain"
	"github.com/campulse/campulse-api/internal/core/ports"
	"github.com/campulse/campulse-api/internal/infrastructure/db/memory"
	"github.com/campulse/campulse-api/internal/infrastructure/db/seed"
	"github.com/campulse/campulse-api/internal/pkg/latency"
)

// ---------------------------------------------------------------------------
// Opportunities
// ---------------------------------------------------------------------------

type stubBookmarkStore struct {
	err   error
	calls []ports.BookmarkCommand
}

func (s *stubBookmarkStore) Toggle(_ context.Context, owner, opp string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	s.calls = append(s.calls, ports.BookmarkCommand{OwnerID: owner, OpportunityID: opp})
	return len(s.calls)%2 == 1, nil
}

func (s *stubBookmarkStore) List(context.Context, string) ([]string, error) { return nil, s.err }

func newOpportunitySvc(bookmarks ports.BookmarkStore) ports.OpportunityService {
	return NewOpportunityService(
		memory.NewOpportunityRepository(seed.Opportunities()...),
		bookmarks,
		latency.New(0),
		discardLogger,
	)
}

func TestOpportunityService_List(t *testing.T) {
	svc := newOpportunitySvc(memory.NewBookmarkStore())

	all, err := svc.List(context.Background(), "")
	if err != nil || len(all) != 3 {
		t.Fatalf("expected 3 opportunities, got %d (%v)", len(all), err)
	}

	scholarships, _ := svc.List(context.Background(), domain.CategoryScholarship)
	if len(scholarships) != 1 || scholarships[0].Title != "MTN Foundation Scholarship" {
		t.Fatalf("unexpected scholarships: %+v", scholarships)
	}

	none, _ := svc.List(context.Background(), domain.CategoryEvent)
	if len(none) != 0 {
		t.Fatalf("expected no events, got %+v", none)
	}
}

func TestOpportunityService_Get(t *testing.T) {
	svc := newOpportunitySvc(memory.NewBookmarkStore())

	opp, err := svc.Get(context.Background(), "3")
	if err != nil || opp.Category != domain.CategoryDeal {
		t.Fatalf("unexpected result: %+v %v", opp, err)
	}
	if _, err := svc.Get(context.Background(), "nope"); !errors.Is(err, domain.ErrOpportunityNotFound) {
		t.Fatalf("expected ErrOpportunityNotFound, got %v", err)
	}
}

func TestOpportunityService_ToggleBookmark_DoesNotTouchRecord(t *testing.T) {
	svc := newOpportunitySvc(memory.NewBookmarkStore())
	ctx := context.Background()
	before, _ := svc.Get(ctx, "1")

	on, err := svc.ToggleBookmark(ctx, ports.BookmarkCommand{OwnerID: "u1", OpportunityID: "1"})
	if err != nil || !on {
		t.Fatalf("expected bookmark on, got %v %v", on, err)
	}

	after, _ := svc.Get(ctx, "1")
	if *after != *before {
		t.Fatalf("bookmarking modified the opportunity")
	}

	ids, _ := svc.Bookmarks(ctx, "u1")
	if len(ids) != 1 || ids[0] != "1" {
		t.Fatalf("unexpected bookmarks: %v", ids)
	}

	on, _ = svc.ToggleBookmark(ctx, ports.BookmarkCommand{OwnerID: "u1", OpportunityID: "1"})
	if on {
		t.Fatalf("second toggle should clear the bookmark")
	}
}

func TestOpportunityService_ToggleBookmark_StoreError(t *testing.T) {
	store := &stubBookmarkStore{err: errors.New("redis down")}
	svc := newOpportunitySvc(store)

	_, err := svc.ToggleBookmark(context.Background(), ports.BookmarkCommand{OwnerID: "u", OpportunityID: "1"})
	if err == nil || !strings.Contains(err.Error(), "redis down") {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Tutors
// ---------------------------------------------------------------------------

func TestTutorService_List_CourseSubstring(t *testing.T) {
	svc := NewTutorService(memory.NewTutorRepository(seed.Tutors()...), latency.New(0))

	tutors, err := svc.List(context.Background(), "csc")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tutors) != 1 {
		t.Fatalf("expected 1 tutor, got %d", len(tutors))
	}
	for _, tutor := range tutors {
		if !tutor.TeachesCourse("csc") {
			t.Fatalf("tutor %s does not teach csc", tutor.Name)
		}
	}

	partial, _ := svc.List(context.Background(), "101")
	if len(partial) != 2 {
		t.Fatalf("expected 2 tutors for 101, got %d", len(partial))
	}

	all, _ := svc.List(context.Background(), "")
	if len(all) != 3 {
		t.Fatalf("expected full directory, got %d", len(all))
	}
}

func TestTutorService_Get(t *testing.T) {
	svc := NewTutorService(memory.NewTutorRepository(seed.Tutors()...), latency.New(0))

	tutor, err := svc.Get(context.Background(), "3")
	if err != nil || tutor.Name != "Emmanuel Chinedu" {
		t.Fatalf("unexpected tutor: %+v %v", tutor, err)
	}
	if _, err := svc.Get(context.Background(), "x"); !errors.Is(err, domain.ErrTutorNotFound) {
		t.Fatalf("expected ErrTutorNotFound, got %v", err)
	}
}
