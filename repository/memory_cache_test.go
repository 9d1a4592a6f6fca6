package repository

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(2, time.Hour)
	defer cache.Close()

	for _, key := range []string{"a", "b", "c"} {
		if err := cache.Set(ctx, key, "payload-"+key); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if cache.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", cache.Len())
	}
	if _, ok, _ := cache.Get(ctx, "a"); ok {
		t.Errorf("expected the oldest entry to be evicted")
	}
	if val, ok, _ := cache.Get(ctx, "c"); !ok || val != "payload-c" {
		t.Errorf("expected the newest entry, got %q %v", val, ok)
	}
}

func TestMemoryCache_EntriesExpire(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(10, 20*time.Millisecond)
	defer cache.Close()

	if err := cache.Set(ctx, "analysis:v1:abc", "{}"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok, _ := cache.Get(ctx, "analysis:v1:abc"); !ok {
		t.Fatalf("expected a hit before the ttl")
	}

	time.Sleep(60 * time.Millisecond)

	if _, ok, _ := cache.Get(ctx, "analysis:v1:abc"); ok {
		t.Errorf("expected the entry to expire")
	}
}

func TestMemoryCache_ManyDistinctKeysStayBounded(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache(50, time.Hour)
	defer cache.Close()

	for i := 0; i < 500; i++ {
		cache.Set(ctx, time.Duration(i).String(), "x")
	}
	if cache.Len() != 50 {
		t.Errorf("expected the cache to stay at 50 entries, got %d", cache.Len())
	}
}
