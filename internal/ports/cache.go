package ports

import (
	"context"
	"time"
)

// A cached value and the instant after which it must be treated as absent.
type CacheEntry[V any] struct {
	Value     V         `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Keyed time-to-live cache.
type Cache[V any] interface {
	// Return the entry only while it has not expired.
	Get(ctx context.Context, key string) (CacheEntry[V], bool, error)
	// Store value under key for ttl, replacing any previous entry.
	Put(ctx context.Context, key string, value V, ttl time.Duration) error
}
