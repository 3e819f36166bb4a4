package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campulse/campulse-api/internal/core/domain"
	"github.com/campulse/campulse-api/internal/core/ports"
	"github.com/campulse/campulse-api/internal/pkg/latency"
	"github.com/campulse/campulse-api/internal/pkg/metrics"
)

type opportunityService struct {
	repo      ports.OpportunityRepository
	bookmarks ports.BookmarkStore
	delay     latency.Simulator
	log       zerolog.Logger
}

// NewOpportunityService returns an OpportunityService implementation.
func NewOpportunityService(
	repo ports.OpportunityRepository,
	bookmarks ports.BookmarkStore,
	delay latency.Simulator,
	log zerolog.Logger,
) ports.OpportunityService {
	return &opportunityService{
		repo:      repo,
		bookmarks: bookmarks,
		delay:     delay,
		log:       log,
	}
}

func (s *opportunityService) List(ctx context.Context, category domain.Category) ([]domain.Opportunity, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, category)
}

func (s *opportunityService) Get(ctx context.Context, id string) (*domain.Opportunity, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, id)
}

// ToggleBookmark flips the owner's bookmark on an opportunity. The
// opportunity record itself is neither read nor modified.
func (s *opportunityService) ToggleBookmark(ctx context.Context, cmd ports.BookmarkCommand) (bool, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return false, err
	}

	on, err := s.bookmarks.Toggle(ctx, cmd.OwnerID, cmd.OpportunityID)
	if err != nil {
		metrics.BookmarksProcessedTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("toggle bookmark: %w", err)
	}

	result := "removed"
	if on {
		result = "added"
	}
	metrics.BookmarksProcessedTotal.WithLabelValues(result).Inc()

	s.log.Debug().
		Str("owner_id", cmd.OwnerID).
		Str("opportunity_id", cmd.OpportunityID).
		Bool("bookmarked", on).
		Msg("bookmark toggled")
	return on, nil
}

func (s *opportunityService) Bookmarks(ctx context.Context, ownerID string) ([]string, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}
	return s.bookmarks.List(ctx, ownerID)
}
