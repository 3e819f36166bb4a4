package memory

import (
	"context"
	"sort"
	"sync"
)

// BookmarkStore keeps one in-process set of opportunity ids per owner.
// Nothing survives a restart.
type BookmarkStore struct {
	mu   sync.Mutex
	sets map[string]map[string]struct{}
}

func NewBookmarkStore() *BookmarkStore {
	return &BookmarkStore{sets: make(map[string]map[string]struct{})}
}

func (s *BookmarkStore) Toggle(_ context.Context, ownerID, opportunityID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sets[ownerID]
	if !ok {
		set = make(map[string]struct{})
		s.sets[ownerID] = set
	}
	if _, on := set[opportunityID]; on {
		delete(set, opportunityID)
		return false, nil
	}
	set[opportunityID] = struct{}{}
	return true, nil
}

// List returns the owner's bookmarks sorted by id.
func (s *BookmarkStore) List(_ context.Context, ownerID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.sets[ownerID]))
	for id := range s.sets[ownerID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
