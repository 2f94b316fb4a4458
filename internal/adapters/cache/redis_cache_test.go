package cache

import (
	"context"
	"testing"
	"time"

	"github.com/aafham/Masjid-hunt/internal/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedisCache(t *testing.T) (*RedisCache[domain.CachedMosques], *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisCache[domain.CachedMosques](client, "test:"), mr
}

func TestRedisCachePutGet(t *testing.T) {
	c, mr := newTestRedisCache(t)
	ctx := context.Background()

	meters := 420
	value := domain.CachedMosques{
		Source: domain.SourceFallback,
		Mosques: []domain.Mosque{
			{PlaceID: "m1", Name: "Masjid Negara", Lat: 3.1421, Lng: 101.6916, DistanceMeters: &meters, DistanceType: domain.DistanceEstimated},
		},
	}

	if err := c.Put(ctx, "mosques:kl-sentral:2:nearest", value, 10*time.Minute); err != nil {
		t.Fatalf("put: %v", err)
	}
	if !mr.Exists("test:mosques:kl-sentral:2:nearest") {
		t.Fatal("expected prefixed key in redis")
	}

	entry, ok, err := c.Get(ctx, "mosques:kl-sentral:2:nearest")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected hit")
	}
	if entry.Value.Source != domain.SourceFallback || len(entry.Value.Mosques) != 1 {
		t.Fatalf("unexpected value: %+v", entry.Value)
	}
	if got := entry.Value.Mosques[0].DistanceMeters; got == nil || *got != 420 {
		t.Fatalf("DistanceMeters = %v, want 420", got)
	}
}

func TestRedisCacheExpiresWithRedisTTL(t *testing.T) {
	c, mr := newTestRedisCache(t)
	ctx := context.Background()

	_ = c.Put(ctx, "k", domain.CachedMosques{Source: domain.SourcePrimary}, time.Minute)
	mr.FastForward(61 * time.Second)

	if _, ok, err := c.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("get = (ok=%v, err=%v), want miss", ok, err)
	}
}

func TestRedisCacheTreatsLogicallyExpiredAsMiss(t *testing.T) {
	c, _ := newTestRedisCache(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }
	_ = c.Put(ctx, "k", domain.CachedMosques{Source: domain.SourcePrimary}, time.Minute)

	c.now = func() time.Time { return base.Add(2 * time.Minute) }
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Fatal("expected miss for logically expired entry")
	}
}

func TestRedisCacheMissingKey(t *testing.T) {
	c, _ := newTestRedisCache(t)
	if _, ok, err := c.Get(context.Background(), "absent"); ok || err != nil {
		t.Fatalf("get = (ok=%v, err=%v), want clean miss", ok, err)
	}
}
