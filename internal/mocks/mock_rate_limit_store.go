package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/Bhavuk-Devex/AVO/domain"
)

// MockRateLimitStore counts hits in memory and ignores the window
type MockRateLimitStore struct {
	HitFunc func(ctx context.Context, key string, window time.Duration) (int64, error)

	mu     sync.Mutex
	counts map[string]int64
}

func NewMockRateLimitStore() *MockRateLimitStore {
	return &MockRateLimitStore{counts: make(map[string]int64)}
}

func (m *MockRateLimitStore) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	if m.HitFunc != nil {
		return m.HitFunc(ctx, key, window)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[key]++
	return m.counts[key], nil
}

// Count returns the hits recorded for key
func (m *MockRateLimitStore) Count(key string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[key]
}

var _ domain.RateLimitStore = (*MockRateLimitStore)(nil)
