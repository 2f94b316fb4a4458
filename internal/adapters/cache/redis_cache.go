package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aafham/Masjid-hunt/internal/platform/obs"
	"github.com/aafham/Masjid-hunt/internal/ports"
	"github.com/redis/go-redis/v9"
)

// RedisCache is a Redis-backed TTL cache shared between server instances.
// Values are stored as JSON with a native Redis expiry; the stored ExpiresAt
// is re-checked on read.
type RedisCache[V any] struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

func NewRedisCache[V any](client *redis.Client, prefix string) *RedisCache[V] {
	return &RedisCache[V]{client: client, prefix: prefix, now: time.Now}
}

// NewRedisClient connects to addr and verifies the connection with PING.
func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping addr=%s: %w", addr, err)
	}

	return client, nil
}

func (c *RedisCache[V]) Get(ctx context.Context, key string) (_ ports.CacheEntry[V], _ bool, err error) {
	defer obs.Time(ctx, "redis.cache.Get")(&err)

	if c.client == nil {
		return ports.CacheEntry[V]{}, false, errors.New("redis cache: client is nil")
	}

	b, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.CacheEntry[V]{}, false, nil
	}
	if err != nil {
		return ports.CacheEntry[V]{}, false, fmt.Errorf("redis cache get key=%q: %w", key, err)
	}

	var entry ports.CacheEntry[V]
	if err := json.Unmarshal(b, &entry); err != nil {
		return ports.CacheEntry[V]{}, false, fmt.Errorf("redis cache decode key=%q: %w", key, err)
	}

	if !c.now().Before(entry.ExpiresAt) {
		return ports.CacheEntry[V]{}, false, nil
	}

	return entry, true, nil
}

func (c *RedisCache[V]) Put(ctx context.Context, key string, value V, ttl time.Duration) error {
	if c.client == nil {
		return errors.New("redis cache: client is nil")
	}
	if ttl <= 0 {
		return fmt.Errorf("redis cache put key=%q: ttl must be positive, got %s", key, ttl)
	}

	entry := ports.CacheEntry[V]{
		Value:     value,
		ExpiresAt: c.now().Add(ttl),
	}
	b, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("redis cache encode key=%q: %w", key, err)
	}

	if err := c.client.Set(ctx, c.prefix+key, b, ttl).Err(); err != nil {
		return fmt.Errorf("redis cache set key=%q: %w", key, err)
	}

	return nil
}
