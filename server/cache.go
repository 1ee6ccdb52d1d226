package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores conversion results in Redis keyed by query content, mode and
// the active rule fingerprint. A nil *Cache is a valid no-op cache.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCache connects to Redis when an address is configured; otherwise it
// returns nil and callers run uncached.
func NewCache(cfg CacheConfig) *Cache {
	if cfg.Addr == "" {
		return nil
	}
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = DefaultCacheTTL * time.Second
	}
	return &Cache{
		rdb: redis.NewClient(&redis.Options{
			Addr: cfg.Addr,
			DB:   cfg.DB,
		}),
		ttl: ttl,
	}
}

// Get returns the cached result for key, if any
func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores a result. Failures are ignored; the cache is advisory.
func (c *Cache) Set(ctx context.Context, key, value string) {
	if c == nil {
		return
	}
	c.rdb.Set(ctx, key, value, c.ttl)
}

// CacheKey derives the cache key for a conversion. The rule fingerprint is
// part of the key so a changed rule document never serves stale results.
func CacheKey(mode, query, fingerprint string) string {
	h := sha256.New()
	h.Write([]byte(mode))
	h.Write([]byte{0})
	h.Write([]byte(query))
	h.Write([]byte{0})
	h.Write([]byte(fingerprint))
	return "bridgeql:convert:" + hex.EncodeToString(h.Sum(nil))
}
