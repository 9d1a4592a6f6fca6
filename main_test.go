package main

import (
	"testing"
	"time"

	"property-returns/config"
	"property-returns/repository"
)

func TestNewCache_WithoutRedisUsesBoundedMemory(t *testing.T) {
	cache, closeCache := newCache(config.Config{CacheTTL: time.Minute, CacheMaxEntries: 10})

	if _, ok := cache.(*repository.MemoryCache); !ok {
		t.Fatalf("expected a memory cache, got %T", cache)
	}
	if err := closeCache(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
}

func TestNewCache_UnreachableRedisFallsBack(t *testing.T) {
	cache, closeCache := newCache(config.Config{
		RedisAddr:       "127.0.0.1:1",
		CacheTTL:        time.Minute,
		CacheMaxEntries: 10,
	})

	if _, ok := cache.(*repository.MemoryCache); !ok {
		t.Fatalf("expected the memory fallback, got %T", cache)
	}
	if err := closeCache(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
}
