package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*AvailabilityCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewAvailabilityCache(client), mr
}

func TestAvailabilityCache(t *testing.T) {
	ctx := context.Background()
	slots := []string{"9:00 AM", "10:00 AM", "2:00 PM"}

	t.Run("miss before set", func(t *testing.T) {
		c, _ := newTestCache(t)

		got, ok := c.Get(ctx, "1", "2026-06-01")
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		c, _ := newTestCache(t)

		c.Set(ctx, "1", "2026-06-01", slots)

		got, ok := c.Get(ctx, "1", "2026-06-01")
		require.True(t, ok)
		assert.Equal(t, slots, got)
	})

	t.Run("entries are keyed per braider and day", func(t *testing.T) {
		c, _ := newTestCache(t)

		c.Set(ctx, "1", "2026-06-01", slots)

		_, ok := c.Get(ctx, "2", "2026-06-01")
		assert.False(t, ok)
		_, ok = c.Get(ctx, "1", "2026-06-02")
		assert.False(t, ok)
	})

	t.Run("invalidate drops only the touched day", func(t *testing.T) {
		c, _ := newTestCache(t)

		c.Set(ctx, "1", "2026-06-01", slots)
		c.Set(ctx, "1", "2026-06-02", slots)

		c.Invalidate(ctx, "1", "2026-06-01")

		_, ok := c.Get(ctx, "1", "2026-06-01")
		assert.False(t, ok)
		_, ok = c.Get(ctx, "1", "2026-06-02")
		assert.True(t, ok)
	})

	t.Run("entries expire", func(t *testing.T) {
		c, mr := newTestCache(t)

		c.Set(ctx, "1", "2026-06-01", slots)
		mr.FastForward(6 * time.Minute)

		_, ok := c.Get(ctx, "1", "2026-06-01")
		assert.False(t, ok)
	})

	t.Run("nil client degrades to a miss", func(t *testing.T) {
		var c *AvailabilityCache

		c.Set(ctx, "1", "2026-06-01", slots)
		c.Invalidate(ctx, "1", "2026-06-01")

		_, ok := c.Get(ctx, "1", "2026-06-01")
		assert.False(t, ok)

		c = NewAvailabilityCache(nil)
		_, ok = c.Get(ctx, "1", "2026-06-01")
		assert.False(t, ok)
	})
}
