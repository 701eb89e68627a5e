package contentcache

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/xiajiun/article-scraping/core/errors"
)

// mapCache is an in-memory Cache backend for tests
type mapCache struct {
	mu       sync.Mutex
	items    map[string][]byte
	getErr   error
	setErr   error
	getCalls int
	setCalls int
}

func newMapCache() *mapCache {
	return &mapCache{items: make(map[string][]byte)}
}

func (m *mapCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.items[key]
	if !ok {
		return nil, apperrors.ErrCacheMiss
	}
	return v, nil
}

func (m *mapCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalls++
	if m.setErr != nil {
		return m.setErr
	}
	m.items[key] = value
	return nil
}

func (m *mapCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// mockLogger discards everything but counts warnings
type mockLogger struct {
	warnings int
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{}) { m.warnings++ }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
