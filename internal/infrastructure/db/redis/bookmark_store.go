package redis

import (
	"context"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

// toggleScript flips membership atomically and returns 1 when the member is
// present afterwards.
var toggleScript = redis.NewScript(`
if redis.call("SISMEMBER", KEYS[1], ARGV[1]) == 1 then
	redis.call("SREM", KEYS[1], ARGV[1])
	return 0
end
redis.call("SADD", KEYS[1], ARGV[1])
return 1
`)

// BookmarkStore keeps one Redis set per owner.
// Key format: bookmarks:<owner_id>
type BookmarkStore struct {
	client *redis.Client
}

func NewBookmarkStore(client *redis.Client) *BookmarkStore {
	return &BookmarkStore{client: client}
}

func (b *BookmarkStore) Toggle(ctx context.Context, ownerID, opportunityID string) (bool, error) {
	n, err := toggleScript.Run(ctx, b.client, []string{b.key(ownerID)}, opportunityID).Int()
	if err != nil {
		return false, fmt.Errorf("bookmark toggle: %w", err)
	}
	return n == 1, nil
}

func (b *BookmarkStore) List(ctx context.Context, ownerID string) ([]string, error) {
	ids, err := b.client.SMembers(ctx, b.key(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("bookmark list: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

func (b *BookmarkStore) key(ownerID string) string {
	return fmt.Sprintf("bookmarks:%s", ownerID)
}
