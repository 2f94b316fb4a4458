package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bluele/gcache"
)

func TestMemoryCachePutGet(t *testing.T) {
	clock := gcache.NewFakeClock()
	c := NewMemoryCache[string](clock)
	ctx := context.Background()

	if err := c.Put(ctx, "k", "v", 10*time.Minute); err != nil {
		t.Fatalf("put: %v", err)
	}

	entry, ok, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || entry.Value != "v" {
		t.Fatalf("get = (%q, %v), want (\"v\", true)", entry.Value, ok)
	}
	if want := clock.Now().Add(10 * time.Minute); !entry.ExpiresAt.Equal(want) {
		t.Errorf("ExpiresAt = %v, want %v", entry.ExpiresAt, want)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	clock := gcache.NewFakeClock()
	c := NewMemoryCache[int](clock)
	ctx := context.Background()

	if err := c.Put(ctx, "k", 1, time.Minute); err != nil {
		t.Fatalf("put: %v", err)
	}

	clock.Advance(59 * time.Second)
	if _, ok, _ := c.Get(ctx, "k"); !ok {
		t.Fatal("expected hit before expiry")
	}

	clock.Advance(time.Second)
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Fatal("expected miss at expiry")
	}
}

func TestMemoryCacheOverwrite(t *testing.T) {
	c := NewMemoryCache[string](gcache.NewFakeClock())
	ctx := context.Background()

	_ = c.Put(ctx, "k", "old", time.Minute)
	_ = c.Put(ctx, "k", "new", time.Minute)

	entry, ok, _ := c.Get(ctx, "k")
	if !ok || entry.Value != "new" {
		t.Fatalf("get = (%q, %v), want (\"new\", true)", entry.Value, ok)
	}
}

func TestMemoryCacheRejectsNonPositiveTTL(t *testing.T) {
	c := NewMemoryCache[string](nil)
	if err := c.Put(context.Background(), "k", "v", 0); err == nil {
		t.Fatal("expected error for zero ttl")
	}
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	c := NewMemoryCache[int](nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = c.Put(ctx, "shared", n, time.Minute)
				_, _, _ = c.Get(ctx, "shared")
			}
		}(i)
	}
	wg.Wait()

	if _, ok, _ := c.Get(ctx, "shared"); !ok {
		t.Fatal("expected shared key to be present")
	}
}
