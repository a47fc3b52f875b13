// Package cache provides a generic Cache interface and an in-memory implementation.
//
// # Interface
//
// The [Cache] interface is generic over value type V:
//
//   - Get(ctx, key) (V, error): retrieve a value
//   - Set(ctx, key, value, ttl) error: store a value with TTL
//   - SetIfAbsent(ctx, key, value, ttl) (V, bool, error): atomic insert-if-absent
//   - Delete(ctx, key) error: remove a key
//   - Has(ctx, key) (bool, error): check existence
//   - Keys(ctx) ([]string, error): list live keys
//   - Clear(ctx) error: remove all entries
//   - Close() error: release resources
//
// TTL semantics:
//   - Positive duration: item expires after this duration
//   - Zero: use the cache's configured default TTL (1 hour by default)
//   - Negative ([NoExpiration]): item never expires
//
// # In-Memory Cache
//
// [NewMemory] keeps entries in a hash map with an LRU list and an optional
// janitor goroutine for expired entries. Translation catalogs are stored
// for the lifetime of the process:
//
//	c := cache.NewMemory[*i18n.Catalog](
//	    cache.WithDefaultTTL(cache.NoExpiration),
//	    cache.WithCleanupInterval(0),
//	)
//	defer c.Close()
//
// # Cache Stampede Prevention
//
// Use the standalone [GetOrSet] function to load missing values once.
// Concurrent misses for the same key on the same cache share a single call
// of fn, and the value is stored with SetIfAbsent so every caller gets the
// same instance:
//
//	catalog, err := cache.GetOrSet(ctx, c, "de_DE:messages", func(ctx context.Context) (*i18n.Catalog, time.Duration, error) {
//	    catalog, err := loader.Load(locale, "messages", dirs)
//	    return catalog, cache.NoExpiration, err
//	})
//
// # Error Handling
//
//   - [ErrNotFound]: key does not exist or has expired
//   - [ErrClosed]: operation on a closed cache
package cache
