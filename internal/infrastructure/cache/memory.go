package cache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"library-service/pkg/cache"
)

// MemoryCache is the in-process fallback backend used when the networked
// cache is unreachable at startup. Single-process, non-durable.
//
// Expiration is lazy on Get; a janitor goroutine sweeps dead entries so
// keys that are written once and never read again do not accumulate.
type MemoryCache struct {
	mu     sync.RWMutex
	items  map[string]memoryEntry
	done   chan struct{}
	closed bool
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
	hasExpiry bool
}

var _ cache.Cache = (*MemoryCache)(nil)

const janitorInterval = time.Minute

func NewMemoryCache() *MemoryCache {
	m := &MemoryCache{
		items: make(map[string]memoryEntry),
		done:  make(chan struct{}),
	}
	go m.janitor()
	return m
}

func (m *MemoryCache) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			m.mu.Lock()
			for key, e := range m.items {
				if e.hasExpiry && !e.expiresAt.After(now) {
					delete(m.items, key)
				}
			}
			m.mu.Unlock()
		case <-m.done:
			return
		}
	}
}

func (m *MemoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	now := time.Now()

	m.mu.RLock()
	e, ok := m.items[key]
	m.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if e.hasExpiry && !e.expiresAt.After(now) {
		m.mu.Lock()
		// Re-check: another goroutine may have replaced the entry.
		if cur, ok := m.items[key]; ok && cur.hasExpiry && !cur.expiresAt.After(now) {
			delete(m.items, key)
		}
		m.mu.Unlock()
		return false, nil
	}

	if err := json.Unmarshal(e.data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (m *MemoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	e := memoryEntry{data: data, hasExpiry: ttl > 0}
	if e.hasExpiry {
		e.expiresAt = time.Now().Add(ttl)
	}

	m.mu.Lock()
	m.items[key] = e
	m.mu.Unlock()
	return nil
}

func (m *MemoryCache) InvalidateNamespace(ctx context.Context, namespace string) error {
	prefix := namespace + ":"

	m.mu.Lock()
	for key := range m.items {
		if strings.HasPrefix(key, prefix) {
			delete(m.items, key)
		}
	}
	m.mu.Unlock()
	return nil
}

func (m *MemoryCache) Ping(ctx context.Context) error {
	return nil
}

// Close stops the janitor. Safe to call multiple times.
func (m *MemoryCache) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.closed {
		m.closed = true
		close(m.done)
	}
	return nil
}

// Len reports the number of stored entries, including entries that have
// expired but not been swept yet. Used by tests.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
