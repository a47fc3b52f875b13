package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// entry holds a cached value with its expiration time and key.
type entry[V any] struct {
	expiresAt time.Time // zero value = never expires
	value     V
	key       string
}

func (e *entry[V]) expiredAt(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Memory is an in-memory cache with optional TTL expiration and optional
// LRU eviction when a maximum entry count is configured.
//
// Lookups go through a hash map; a doubly-linked list keeps the recency
// order with the most recently used entry at the front.
type Memory[V any] struct {
	items    map[string]*list.Element
	eviction *list.List
	opts     *memoryOptions
	onEvict  func(key string, value V)
	done     chan struct{}
	mu       sync.Mutex
	closed   bool
}

// NewMemory creates a new in-memory cache.
//
// Example:
//
//	c := cache.NewMemory[*i18n.Catalog](
//	    cache.WithDefaultTTL(cache.NoExpiration),
//	    cache.WithCleanupInterval(0),
//	)
//	defer c.Close()
func NewMemory[V any](opts ...MemoryOption) *Memory[V] {
	o := defaultMemoryOptions()
	for _, opt := range opts {
		opt(o)
	}

	m := &Memory[V]{
		items:    make(map[string]*list.Element),
		eviction: list.New(),
		opts:     o,
		done:     make(chan struct{}),
	}

	if o.cleanupInterval > 0 {
		go m.janitor()
	}

	return m
}

// SetEvictCallback sets a callback function that is called when items
// are removed from the cache by LRU eviction, expiration, deletion or Clear.
func (m *Memory[V]) SetEvictCallback(fn func(key string, value V)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onEvict = fn
}

// Get retrieves a value by key.
// Returns ErrNotFound if the key does not exist or has expired.
// Accessing a key marks it as recently used for LRU purposes.
func (m *Memory[V]) Get(_ context.Context, key string) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem := m.lookup(key, time.Now())
	if elem == nil {
		var zero V
		return zero, ErrNotFound
	}

	m.eviction.MoveToFront(elem)
	return elem.Value.(*entry[V]).value, nil
}

// Set stores a value with the given TTL.
func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	now := time.Now()
	if elem := m.lookup(key, now); elem != nil {
		e := elem.Value.(*entry[V])
		e.value = value
		e.expiresAt = m.expiry(ttl, now)
		m.eviction.MoveToFront(elem)
		return nil
	}

	m.insert(key, value, m.expiry(ttl, now))
	return nil
}

// SetIfAbsent stores value unless key already holds a live entry.
// The check and the insert happen under one lock.
func (m *Memory[V]) SetIfAbsent(_ context.Context, key string, value V, ttl time.Duration) (V, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		var zero V
		return zero, false, ErrClosed
	}

	now := time.Now()
	if elem := m.lookup(key, now); elem != nil {
		m.eviction.MoveToFront(elem)
		return elem.Value.(*entry[V]).value, false, nil
	}

	m.insert(key, value, m.expiry(ttl, now))
	return value, true, nil
}

// Delete removes a key from the cache.
func (m *Memory[V]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	if elem, ok := m.items[key]; ok {
		m.removeElement(elem)
	}

	return nil
}

// Has checks whether a key exists and has not expired.
func (m *Memory[V]) Has(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.lookup(key, time.Now()) != nil, nil
}

// Keys lists the live keys, most recently used first.
func (m *Memory[V]) Keys(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	keys := make([]string, 0, len(m.items))
	for elem := m.eviction.Front(); elem != nil; elem = elem.Next() {
		e := elem.Value.(*entry[V])
		if !e.expiredAt(now) {
			keys = append(keys, e.key)
		}
	}
	return keys, nil
}

// Len returns the number of stored entries, expired ones not yet removed included.
func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Clear removes all entries from the cache.
func (m *Memory[V]) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	if m.onEvict != nil {
		for _, elem := range m.items {
			e := elem.Value.(*entry[V])
			m.onEvict(e.key, e.value)
		}
	}

	m.items = make(map[string]*list.Element)
	m.eviction.Init()

	return nil
}

// Close stops the background janitor goroutine and marks the cache as closed.
// Close is idempotent.
func (m *Memory[V]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}

	m.closed = true
	close(m.done)

	return nil
}

// lookup returns the live element stored under key, dropping it when expired.
// Caller must hold the mutex.
func (m *Memory[V]) lookup(key string, now time.Time) *list.Element {
	elem, ok := m.items[key]
	if !ok {
		return nil
	}
	if elem.Value.(*entry[V]).expiredAt(now) {
		m.removeElement(elem)
		return nil
	}
	return elem
}

// insert adds a new entry at the front, evicting the LRU entry when full.
// Caller must hold the mutex.
func (m *Memory[V]) insert(key string, value V, expiresAt time.Time) {
	if m.opts.maxEntries > 0 && len(m.items) >= m.opts.maxEntries {
		if oldest := m.eviction.Back(); oldest != nil {
			m.removeElement(oldest)
		}
	}
	m.items[key] = m.eviction.PushFront(&entry[V]{key: key, value: value, expiresAt: expiresAt})
}

// expiry resolves a TTL into an absolute expiration time.
func (m *Memory[V]) expiry(ttl time.Duration, now time.Time) time.Time {
	if ttl == 0 {
		ttl = m.opts.defaultTTL
	}
	if ttl < 0 {
		return time.Time{}
	}
	return now.Add(ttl)
}

// janitor periodically removes expired entries.
func (m *Memory[V]) janitor() {
	ticker := time.NewTicker(m.opts.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.deleteExpired()
		}
	}
}

// deleteExpired removes all expired entries from back to front.
func (m *Memory[V]) deleteExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for elem := m.eviction.Back(); elem != nil; {
		prev := elem.Prev()
		if elem.Value.(*entry[V]).expiredAt(now) {
			m.removeElement(elem)
		}
		elem = prev
	}
}

// removeElement removes a specific element and triggers the eviction callback.
// Caller must hold the mutex.
func (m *Memory[V]) removeElement(elem *list.Element) {
	m.eviction.Remove(elem)
	e := elem.Value.(*entry[V])
	delete(m.items, e.key)

	if m.onEvict != nil {
		m.onEvict(e.key, e.value)
	}
}

var _ Cache[any] = (*Memory[any])(nil)
