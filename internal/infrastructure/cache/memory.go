package cache

import (
	"context"
	"sync"
	"time"

	"github.com/fakeguard/backend/internal/domain"
)

// cacheItem is a stored vector with its expiration time.
type cacheItem struct {
	vector     []float32
	expiration time.Time
}

// MemoryCache is a thread-safe in-memory vector cache with TTL support.
type MemoryCache struct {
	data  map[string]cacheItem
	mutex sync.RWMutex
}

// NewMemoryCache creates an in-memory vector cache and starts its background
// sweep of expired entries.
func NewMemoryCache() *MemoryCache {
	cache := &MemoryCache{
		data: make(map[string]cacheItem),
	}

	go cache.cleanupExpired()

	return cache
}

// Get retrieves a vector from the cache.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]float32, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, exists := c.data[key]
	if !exists {
		return nil, domain.ErrCacheMiss
	}

	if time.Now().After(item.expiration) {
		return nil, domain.ErrCacheMiss
	}

	return item.vector, nil
}

// Set stores a vector in the cache with the given TTL.
func (c *MemoryCache) Set(ctx context.Context, key string, vector []float32, ttl time.Duration) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	// Copy so later mutation of the caller's slice cannot corrupt the cache.
	stored := make([]float32, len(vector))
	copy(stored, vector)

	c.data[key] = cacheItem{
		vector:     stored,
		expiration: time.Now().Add(ttl),
	}

	return nil
}

// Delete removes a vector from the cache.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.data, key)
	return nil
}

// cleanupExpired removes expired entries every 10 minutes.
func (c *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		c.mutex.Lock()
		for key, item := range c.data {
			if now.After(item.expiration) {
				delete(c.data, key)
			}
		}
		c.mutex.Unlock()
	}
}
