package cache

import (
	"context"
	"time"
)

// NoopCache is the cache used when no CACHE_URL is configured. Every lookup
// misses; every store is dropped.
type NoopCache struct{}

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (*NoopCache) Get(context.Context, string) (string, bool) { return "", false }

func (*NoopCache) Set(context.Context, string, string, time.Duration) {}

func (*NoopCache) Close() error { return nil }
