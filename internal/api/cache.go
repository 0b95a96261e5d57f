package api

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ignite/professional-directory/internal/service/professional"
)

const listCachePrefix = "prodir:list:"

// ListCache caches serialized list responses in Redis, keyed by the full
// filter. Any write to the directory invalidates every list key, since a
// single record can move between filtered views. All methods are safe to
// call with a nil client: the cache silently becomes a no-op, and cache
// errors are logged and ignored so Redis outages never fail a request.
type ListCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListCache creates a list cache. client may be nil.
func NewListCache(client *redis.Client, ttl time.Duration) *ListCache {
	return &ListCache{client: client, ttl: ttl}
}

func listCacheKey(f professional.Filter) string {
	return fmt.Sprintf("%ssource=%s&q=%s&limit=%d&offset=%d",
		listCachePrefix, f.Source, f.Search, f.Limit, f.Offset)
}

// Get returns the cached response body for a filter, if present.
func (c *ListCache) Get(ctx context.Context, f professional.Filter) ([]byte, bool) {
	if c.client == nil {
		return nil, false
	}
	body, err := c.client.Get(ctx, listCacheKey(f)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("[api.ListCache] get failed: %v", err)
		return nil, false
	}
	return body, true
}

// Set stores a response body for a filter.
func (c *ListCache) Set(ctx context.Context, f professional.Filter, body []byte) {
	if c.client == nil {
		return
	}
	if err := c.client.Set(ctx, listCacheKey(f), body, c.ttl).Err(); err != nil {
		log.Printf("[api.ListCache] set failed: %v", err)
	}
}

// Invalidate drops every cached list view.
func (c *ListCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	iter := c.client.Scan(ctx, 0, listCachePrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("[api.ListCache] invalidate scan failed: %v", err)
		return
	}
	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			log.Printf("[api.ListCache] invalidate del failed: %v", err)
		}
	}
}
