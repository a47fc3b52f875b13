package cache

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"
)

// NoExpiration marks an entry that stays in the cache until it is deleted.
const NoExpiration time.Duration = -1

// Cache is a generic key-value cache with TTL support.
//
// TTL semantics for Set and SetIfAbsent:
//   - Positive duration: item expires after this duration
//   - Zero: use the cache's configured default TTL
//   - Negative: item never expires
type Cache[V any] interface {
	// Get retrieves a value by key.
	// Returns ErrNotFound if the key does not exist or has expired.
	Get(ctx context.Context, key string) (V, error)

	// Set stores a value with the given TTL, replacing any previous value.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error

	// SetIfAbsent stores value only when key holds no live entry.
	// It returns the value held by the cache afterwards and whether it was
	// the one passed in.
	SetIfAbsent(ctx context.Context, key string, value V, ttl time.Duration) (V, bool, error)

	// Delete removes a key from the cache.
	Delete(ctx context.Context, key string) error

	// Has checks whether a key exists and has not expired.
	Has(ctx context.Context, key string) (bool, error)

	// Keys lists the live keys in no particular order.
	Keys(ctx context.Context) ([]string, error)

	// Clear removes all entries from the cache.
	Clear(ctx context.Context) error

	// Close releases resources (stops background goroutines, etc.).
	Close() error
}

var sfGroup singleflight.Group

// GetOrSet retrieves a value from the cache, or calls fn to compute it on a miss.
// Uses singleflight to prevent cache stampedes: if multiple goroutines call
// GetOrSet with the same key on the same cache concurrently, fn is called only once.
//
// The callback returns the value, a TTL for caching, and an error.
// If fn returns an error, the value is not cached and the error is returned.
// When another writer stored the key while fn was running, the stored value
// wins and is returned, so every caller observes the same value.
func GetOrSet[V any](ctx context.Context, c Cache[V], key string, fn func(ctx context.Context) (V, time.Duration, error)) (V, error) {
	// Fast path: try cache first.
	if v, err := c.Get(ctx, key); err == nil {
		return v, nil
	}

	// Slow path: deduplicate concurrent misses. The flight key is scoped to
	// the cache instance so unrelated caches never share a result.
	v, err, _ := sfGroup.Do(fmt.Sprintf("%p:%s", c, key), func() (any, error) {
		val, ttl, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		stored, _, err := c.SetIfAbsent(ctx, key, val, ttl)
		if err != nil {
			return nil, err
		}
		return stored, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	return v.(V), nil
}
