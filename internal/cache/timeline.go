package cache

import (
	"encoding/json"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/uuid"
)

// timelineTTL is short on purpose: assembled timelines may be stale for at
// most this long, which is the accepted tradeoff for skipping the N+1 fetch.
const timelineTTL = 30 // seconds

// TimelineCache stores assembled timelines in memcached. A nil *TimelineCache
// is valid and disables caching.
type TimelineCache struct {
	client *memcache.Client
}

func NewTimelineCache(addr string) *TimelineCache {
	if addr == "" {
		return nil
	}
	return &TimelineCache{client: memcache.New(addr)}
}

func (c *TimelineCache) Get(userID uuid.UUID) ([]uuid.UUID, bool) {
	if c == nil {
		return nil, false
	}

	item, err := c.client.Get(key(userID))
	if err != nil {
		return nil, false
	}

	var ids []uuid.UUID
	if err := json.Unmarshal(item.Value, &ids); err != nil {
		return nil, false
	}
	return ids, true
}

// Set is best-effort; a cache failure never fails the request.
func (c *TimelineCache) Set(userID uuid.UUID, ids []uuid.UUID) {
	if c == nil {
		return
	}

	value, err := json.Marshal(ids)
	if err != nil {
		return
	}

	c.client.Set(&memcache.Item{
		Key:        key(userID),
		Value:      value,
		Expiration: timelineTTL,
	})
}

func key(userID uuid.UUID) string {
	return "timeline:" + userID.String()
}
