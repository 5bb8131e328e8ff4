package cache

import (
	"context"
	"sort"
	"sync"

	"github.com/example/storefront-state/internal/domain"
)

// MemorySnapshotCache хранит последние снимки срезов в памяти. Без базы данных
// он же служит хранилищем снимков.
type MemorySnapshotCache struct {
	mu    sync.RWMutex
	store map[string][]byte
}

func NewMemorySnapshotCache() *MemorySnapshotCache {
	return &MemorySnapshotCache{store: make(map[string][]byte)}
}

func (c *MemorySnapshotCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	raw, ok := c.store[key]
	return raw, ok
}

func (c *MemorySnapshotCache) Set(key string, raw []byte) {
	c.mu.Lock()
	c.store[key] = append([]byte(nil), raw...)
	c.mu.Unlock()
}

func (c *MemorySnapshotCache) Upsert(_ context.Context, key string, raw []byte) error {
	c.Set(key, raw)
	return nil
}

// LoadAll обходит снимки в порядке ключей.
func (c *MemorySnapshotCache) LoadAll(ctx context.Context, fn func(key string, raw []byte) error) error {
	c.mu.RLock()
	keys := make([]string, 0, len(c.store))
	for k := range c.store {
		keys = append(keys, k)
	}
	c.mu.RUnlock()
	sort.Strings(keys)

	for _, k := range keys {
		if err := ctx.Err(); err != nil {
			return err
		}
		raw, ok := c.Get(k)
		if !ok {
			continue
		}
		if err := fn(k, raw); err != nil {
			return err
		}
	}
	return nil
}

var (
	_ domain.SnapshotCache      = (*MemorySnapshotCache)(nil)
	_ domain.SnapshotRepository = (*MemorySnapshotCache)(nil)
)
