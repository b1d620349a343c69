package catalog

import (
	"sync"
	"time"

	"github.com/balkonpro/estimator/internal/domain/materials"
)

// Cache кэш списков материалов по тегу категории с фиксированным TTL.
// Единственное разделяемое состояние между запросами: любая запись в
// каталог обязана безусловно сбрасывать его целиком.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

type cacheEntry struct {
	items   []materials.Material
	expires time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *Cache) Get(tag string) ([]materials.Material, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[tag]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expires) {
		delete(c.entries, tag)
		return nil, false
	}
	out := make([]materials.Material, len(e.items))
	copy(out, e.items)
	return out, true
}

func (c *Cache) Put(tag string, items []materials.Material) {
	kept := make([]materials.Material, len(items))
	copy(kept, items)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[tag] = cacheEntry{items: kept, expires: c.now().Add(c.ttl)}
}

// Invalidate сбрасывает весь кэш.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}
