package rates

import (
	"context"
	"sync"
	"time"
)

// Cache stores rate tables by their base currency.
type Cache interface {
	Get(ctx context.Context, base string) (Table, bool)
	Set(ctx context.Context, table Table, ttl time.Duration) error
}

type memoryEntry struct {
	table   Table
	expires time.Time
}

// MemoryCache is a Cache local to the process.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, base string) (Table, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[base]
	if !ok || !m.now().Before(e.expires) {
		return Table{}, false
	}

	return e.table.clone(), true
}

func (m *MemoryCache) Set(_ context.Context, table Table, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[table.Base] = memoryEntry{
		table:   table.clone(),
		expires: m.now().Add(ttl),
	}

	return nil
}
