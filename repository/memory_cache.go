package repository

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryCache is the in-process cache used when Redis is not available.
// It holds at most size entries, each for ttl; the least recently used
// entry is evicted first.
type MemoryCache struct {
	lru *expirable.LRU[string, string]
}

func NewMemoryCache(size int, ttl time.Duration) *MemoryCache {
	if size < 1 {
		size = 1
	}
	return &MemoryCache{
		lru: expirable.NewLRU[string, string](size, nil, ttl),
	}
}

func (m *MemoryCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, ok := m.lru.Get(key)
	return val, ok, nil
}

func (m *MemoryCache) Set(ctx context.Context, key string, value string) error {
	m.lru.Add(key, value)
	return nil
}

// Len reports the number of live entries.
func (m *MemoryCache) Len() int {
	return m.lru.Len()
}

// Close drops every entry.
func (m *MemoryCache) Close() error {
	m.lru.Purge()
	return nil
}
