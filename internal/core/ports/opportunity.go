package ports

import (
	"context"

	"github.com/campulse/campulse-api/internal/core/domain"
)

// OpportunityRepository is the read-only opportunity board.
type OpportunityRepository interface {
	// List returns every opportunity, or only those with an exactly equal
	// category when category is non-empty.
	List(ctx context.Context, category domain.Category) ([]domain.Opportunity, error)
	Get(ctx context.Context, id string) (*domain.Opportunity, error)
}

// BookmarkStore tracks which opportunities each owner has bookmarked.
type BookmarkStore interface {
	// Toggle flips membership of opportunityID in the owner's set and
	// reports whether it is bookmarked afterwards.
	Toggle(ctx context.Context, ownerID, opportunityID string) (bool, error)
	List(ctx context.Context, ownerID string) ([]string, error)
}

// BookmarkCommand is a queued bookmark toggle.
type BookmarkCommand struct {
	OwnerID       string
	OpportunityID string
}

type OpportunityService interface {
	List(ctx context.Context, category domain.Category) ([]domain.Opportunity, error)
	Get(ctx context.Context, id string) (*domain.Opportunity, error)
	ToggleBookmark(ctx context.Context, cmd BookmarkCommand) (bool, error)
	Bookmarks(ctx context.Context, ownerID string) ([]string, error)
}
