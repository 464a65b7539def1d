package insights

import (
	"context"
	"sync"
	"time"
)

// DefaultTTL bounds how long a cached result may be served.
const DefaultTTL = 5 * time.Minute

// CachedInsights is the durable cache entry. Field names are part of the
// stored format and must not change.
type CachedInsights struct {
	Insights  *Insights `json:"insights"`
	CachedAt  time.Time `json:"cachedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// CacheStore is the key-value port the engine caches through. A missing key
// reports (nil, nil); only real storage failures return an error, and the
// engine treats those as cache misses.
type CacheStore interface {
	GetInsightsCache(ctx context.Context, key string) (*CachedInsights, error)
	SetInsightsCache(ctx context.Context, key string, entry *CachedInsights) error
	DeleteInsightsCache(ctx context.Context, key string) error
}

// MemoryCache is a CacheStore backed by a map. Used in tests and as the
// default when no durable store is wired.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*CachedInsights
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]*CachedInsights)}
}

func (m *MemoryCache) GetInsightsCache(_ context.Context, key string) (*CachedInsights, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries[key], nil
}

func (m *MemoryCache) SetInsightsCache(_ context.Context, key string, entry *CachedInsights) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = entry
	return nil
}

func (m *MemoryCache) DeleteInsightsCache(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

var _ CacheStore = (*MemoryCache)(nil)
