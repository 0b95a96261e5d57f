package api

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/professional-directory/internal/service/professional"
)

func newMiniredisCache(t *testing.T, ttl time.Duration) (*ListCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewListCache(client, ttl), mr
}

func TestListCacheSetGet(t *testing.T) {
	cache, _ := newMiniredisCache(t, 30*time.Second)
	ctx := context.Background()

	f := professional.Filter{Source: "direct", Limit: 25}

	_, ok := cache.Get(ctx, f)
	assert.False(t, ok, "empty cache should miss")

	body := []byte(`{"data":[]}`)
	cache.Set(ctx, f, body)

	got, ok := cache.Get(ctx, f)
	require.True(t, ok)
	assert.Equal(t, body, got)

	// A different filter has its own key.
	_, ok = cache.Get(ctx, professional.Filter{Source: "partner", Limit: 25})
	assert.False(t, ok)
}

func TestListCacheExpiry(t *testing.T) {
	cache, mr := newMiniredisCache(t, 1*time.Second)
	ctx := context.Background()

	f := professional.Filter{Limit: 25}
	cache.Set(ctx, f, []byte(`{}`))

	mr.FastForward(2 * time.Second)

	_, ok := cache.Get(ctx, f)
	assert.False(t, ok, "entry should expire after TTL")
}

func TestListCacheInvalidateDropsAllListKeys(t *testing.T) {
	cache, mr := newMiniredisCache(t, 30*time.Second)
	ctx := context.Background()

	cache.Set(ctx, professional.Filter{Source: "direct", Limit: 25}, []byte(`a`))
	cache.Set(ctx, professional.Filter{Source: "partner", Limit: 25}, []byte(`b`))
	require.NoError(t, mr.Set("unrelated:key", "keep"))

	cache.Invalidate(ctx)

	_, ok := cache.Get(ctx, professional.Filter{Source: "direct", Limit: 25})
	assert.False(t, ok)
	_, ok = cache.Get(ctx, professional.Filter{Source: "partner", Limit: 25})
	assert.False(t, ok)
	assert.True(t, mr.Exists("unrelated:key"), "invalidate must only touch list keys")
}

func TestListCacheNilClientIsNoOp(t *testing.T) {
	cache := NewListCache(nil, 30*time.Second)
	ctx := context.Background()

	f := professional.Filter{Limit: 25}
	cache.Set(ctx, f, []byte(`x`))
	_, ok := cache.Get(ctx, f)
	assert.False(t, ok)
	cache.Invalidate(ctx)
}
