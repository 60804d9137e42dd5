package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *RedisCache) {
	t.Helper()
	mr := miniredis.RunT(t)

	c, err := NewRedisCache(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return mr, c
}

func TestRedisCacheRoundTrip(t *testing.T) {
	_, c := newTestCache(t)
	ctx := context.Background()

	_, ok := c.Get(ctx, "bundle:abc")
	assert.False(t, ok)

	c.Set(ctx, "bundle:abc", "rendered bundle text", 300*time.Second)

	val, ok := c.Get(ctx, "bundle:abc")
	assert.True(t, ok)
	assert.Equal(t, "rendered bundle text", val)
}

func TestRedisCacheExpiry(t *testing.T) {
	mr, c := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, "bundle:ttl", "value", 300*time.Second)
	mr.FastForward(301 * time.Second)

	_, ok := c.Get(ctx, "bundle:ttl")
	assert.False(t, ok)
}

func TestRedisCacheDownIsMiss(t *testing.T) {
	mr, c := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, "bundle:x", "value", time.Minute)
	mr.Close()

	// A dead backend must read as a miss, not an error.
	_, ok := c.Get(ctx, "bundle:x")
	assert.False(t, ok)

	// And writes must not panic or block.
	c.Set(ctx, "bundle:y", "value", time.Minute)
}

func TestNewRedisCacheBadURL(t *testing.T) {
	_, err := NewRedisCache(context.Background(), "://not-a-url")
	require.Error(t, err)
}

func TestNoopCache(t *testing.T) {
	c := NewNoopCache()
	ctx := context.Background()

	c.Set(ctx, "k", "v", time.Minute)
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	assert.NoError(t, c.Close())
}
