package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aafham/Masjid-hunt/internal/ports"
	"github.com/bluele/gcache"
)

// MemoryCache is an in-process TTL cache.
//
// Entries are never evicted by size; the key space is bounded by its callers.
// Expiry is checked against the injected clock on every read, so an expired
// entry is a miss whether or not it has been physically removed.
// The cache is safe for concurrent use.
type MemoryCache[V any] struct {
	items gcache.Cache
	clock gcache.Clock
}

// NewMemoryCache builds a cache. A nil clock uses wall time.
func NewMemoryCache[V any](clock gcache.Clock) *MemoryCache[V] {
	if clock == nil {
		clock = gcache.NewRealClock()
	}

	return &MemoryCache[V]{
		items: gcache.New(0).Simple().Clock(clock).Build(),
		clock: clock,
	}
}

func (c *MemoryCache[V]) Get(_ context.Context, key string) (ports.CacheEntry[V], bool, error) {
	raw, err := c.items.Get(key)
	if errors.Is(err, gcache.KeyNotFoundError) {
		return ports.CacheEntry[V]{}, false, nil
	}
	if err != nil {
		return ports.CacheEntry[V]{}, false, fmt.Errorf("memory cache get key=%q: %w", key, err)
	}

	entry, ok := raw.(ports.CacheEntry[V])
	if !ok {
		return ports.CacheEntry[V]{}, false, fmt.Errorf("memory cache get key=%q: unexpected value type %T", key, raw)
	}

	if !c.clock.Now().Before(entry.ExpiresAt) {
		return ports.CacheEntry[V]{}, false, nil
	}

	return entry, true, nil
}

func (c *MemoryCache[V]) Put(_ context.Context, key string, value V, ttl time.Duration) error {
	if key == "" {
		return errors.New("memory cache put: key must not be empty")
	}
	if ttl <= 0 {
		return fmt.Errorf("memory cache put key=%q: ttl must be positive, got %s", key, ttl)
	}

	entry := ports.CacheEntry[V]{
		Value:     value,
		ExpiresAt: c.clock.Now().Add(ttl),
	}
	if err := c.items.SetWithExpire(key, entry, ttl); err != nil {
		return fmt.Errorf("memory cache put key=%q: %w", key, err)
	}

	return nil
}
