package cache

import (
	"sync"
	"time"

	"github.com/hardline/storefront/pkg/domain"
)

type cacheEntry struct {
	rate      *domain.ExchangeRate
	expiresAt time.Time
}

// MemoryCache implements cache.RateCache with in-process storage. Expired
// entries are kept so the exchange service can fall back to the last
// known-good rate; concurrent refreshes racing to Set are last-write-wins,
// which is acceptable for an eventually consistent source value.
type MemoryCache struct {
	entries map[string]*cacheEntry
	ttl     time.Duration
	mu      sync.RWMutex
	now     func() time.Time
}

// NewMemoryCache creates an in-memory rate cache with the given TTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get retrieves the cached rate for key and reports whether it is fresh.
func (c *MemoryCache) Get(key string) (*domain.ExchangeRate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[key]
	if !exists {
		return nil, false
	}
	return entry.rate, c.now().Before(entry.expiresAt)
}

// Set stores a rate under key and restarts its TTL window.
func (c *MemoryCache) Set(key string, rate *domain.ExchangeRate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &cacheEntry{
		rate:      rate,
		expiresAt: c.now().Add(c.ttl),
	}
}
