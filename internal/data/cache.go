package data

import (
	"os"
	"strconv"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// cacheEntry is a cached upstream response.
type cacheEntry struct {
	history   *HashrateHistory
	expiresAt time.Time
}

// ResponseCache keeps recent hashrate responses in a bounded LRU with a TTL.
// It is opt-in (ENABLE_HASHRATE_CACHE=true) and meant for development, where
// repeated runs would otherwise hit mempool.space every time.
type ResponseCache struct {
	mu  sync.Mutex
	lru *lru.Cache
	ttl time.Duration
	now func() time.Time
}

var (
	globalCache *ResponseCache
	cacheOnce   sync.Once
)

// DefaultCacheSize bounds the number of cached responses.
const DefaultCacheSize = 32

// NewResponseCache builds a cache holding at most size responses for ttl each.
func NewResponseCache(size int, ttl time.Duration) (*ResponseCache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &ResponseCache{lru: c, ttl: ttl, now: time.Now}, nil
}

// GetCache returns the process-wide cache, or nil when caching is disabled.
// HASHRATE_CACHE_TTL overrides the default 1h TTL and HASHRATE_CACHE_SIZE the size.
func GetCache() *ResponseCache {
	if os.Getenv("ENABLE_HASHRATE_CACHE") != "true" {
		return nil
	}

	cacheOnce.Do(func() {
		ttl := time.Hour
		if v := os.Getenv("HASHRATE_CACHE_TTL"); v != "" {
			if parsed, err := time.ParseDuration(v); err == nil {
				ttl = parsed
			}
		}
		size := DefaultCacheSize
		if v := os.Getenv("HASHRATE_CACHE_SIZE"); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				size = parsed
			}
		}
		c, err := NewResponseCache(size, ttl)
		if err != nil {
			return
		}
		globalCache = c
	})

	return globalCache
}

// Get returns a cached response if present and not expired.
func (c *ResponseCache) Get(key string) (*HashrateHistory, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	entry := v.(cacheEntry)
	if c.now().After(entry.expiresAt) {
		c.lru.Remove(key)
		return nil, false
	}
	return entry.history, true
}

// Set stores a response.
func (c *ResponseCache) Set(key string, history *HashrateHistory) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.lru.Add(key, cacheEntry{history: history, expiresAt: c.now().Add(c.ttl)})
}

// Len reports the number of entries, expired or not.
func (c *ResponseCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Clear removes all entries.
func (c *ResponseCache) Clear() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Purge()
}

// cacheKey identifies a request.
func cacheKey(baseURL, period string) string {
	return baseURL + "|" + period
}
