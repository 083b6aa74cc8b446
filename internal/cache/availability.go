package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	availKeyPrefix = "avail:" // avail:{braider_id}:{date} -> JSON slot labels
	availTTL       = 5 * time.Minute
)

// AvailabilityCache keeps the public availability listing off the database
// on the hot booking path. Entries expire on a short TTL and are dropped
// whenever a booking for the braider/day changes.
type AvailabilityCache struct {
	client *redis.Client
}

func NewAvailabilityCache(client *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{client: client}
}

func availKey(braiderID, date string) string {
	return fmt.Sprintf("%s%s:%s", availKeyPrefix, braiderID, date)
}

// Get returns the cached free-slot labels and whether the entry was present.
// Cache errors degrade to a miss.
func (c *AvailabilityCache) Get(ctx context.Context, braiderID, date string) ([]string, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, availKey(braiderID, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) Set(ctx context.Context, braiderID, date string, slots []string) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	c.client.Set(ctx, availKey(braiderID, date), data, availTTL)
}

// Invalidate drops the entry after any booking mutation for the braider/day.
func (c *AvailabilityCache) Invalidate(ctx context.Context, braiderID, date string) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, availKey(braiderID, date))
}
