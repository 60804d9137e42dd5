// Package cache provides the context-bundle cache. The cache is an
// optimization only: every implementation degrades to a miss on error, so
// callers never fail a query because the cache is down.
package cache

import (
	"context"
	"time"
)

// Cache stores rendered context bundles keyed by fingerprint.
type Cache interface {
	// Get returns the cached value and whether it was present. Errors are
	// absorbed and reported as a miss.
	Get(ctx context.Context, key string) (string, bool)

	// Set stores the value with the given TTL. Failures are logged, never
	// returned.
	Set(ctx context.Context, key, value string, ttl time.Duration)

	// Close releases the underlying connection, if any.
	Close() error
}
