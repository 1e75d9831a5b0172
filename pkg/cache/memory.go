package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Memory is an in-process Cache used when no redis address is configured.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

var _ Cache = (*Memory)(nil)

// NewMemory creates an empty Memory cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]entry), now: time.Now}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, ErrMiss
	}
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		delete(m.entries, key)

		return nil, ErrMiss
	}

	return append([]byte(nil), e.value...), nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := entry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	m.entries[key] = e

	return nil
}

func (m *Memory) Del(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, k := range keys {
		delete(m.entries, k)
	}

	return nil
}

func (m *Memory) Exists(ctx context.Context, key string) (bool, error) {
	_, err := m.Get(ctx, key)
	if IsMiss(err) {
		return false, nil
	}

	return err == nil, err
}

func (m *Memory) Ping(context.Context) error { return nil }
