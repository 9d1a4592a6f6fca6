package repository

import (
	"context"
	"sync"
)

// MockCache is an unbounded CacheRepository for tests. It counts calls and
// can be forced to fail.
type MockCache struct {
	mu   sync.Mutex
	Data map[string]string

	Gets     int
	Sets     int
	ForceErr error
}

func NewMockCache() *MockCache {
	return &MockCache{
		Data: make(map[string]string),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Gets++
	if m.ForceErr != nil {
		return "", false, m.ForceErr
	}
	val, ok := m.Data[key]
	return val, ok, nil
}

func (m *MockCache) Set(ctx context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sets++
	if m.ForceErr != nil {
		return m.ForceErr
	}
	m.Data[key] = value
	return nil
}
