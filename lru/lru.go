package lru

import (
	"github.com/QuangTung97/linkedmap"
)

// Cache is a bounded cache over linkedmap.Table with access ordering: once
// size entries are stored, every further Set discards the least recently
// used entry. Not safe for concurrent use.
type Cache[K any, V any] struct {
	size  int
	table *linkedmap.Table[K, V]
}

type cacheConfig[K any, V any] struct {
	onEvicted func(key K, value V)
}

// Option ...
type Option[K any, V any] func(conf *cacheConfig[K, V])

// WithOnEvicted configures a callback invoked with each entry discarded by
// the size bound. Entries leaving through Delete or Purge do not trigger it.
func WithOnEvicted[K any, V any](fn func(key K, value V)) Option[K, V] {
	return func(conf *cacheConfig[K, V]) {
		conf.onEvicted = fn
	}
}

// New creates a cache holding at most size entries
func New[K any, V any](
	size int,
	hash linkedmap.HashFunc[K],
	equals linkedmap.EqualsFunc[K],
	options ...Option[K, V],
) (*Cache[K, V], error) {
	conf := cacheConfig[K, V]{}
	for _, fn := range options {
		fn(&conf)
	}

	evictor := func(t *linkedmap.Table[K, V], count int) bool {
		if count <= size {
			return false
		}
		if conf.onEvicted != nil {
			if key, value, ok := t.Oldest(); ok {
				conf.onEvicted(key, value)
			}
		}
		return true
	}

	table, err := linkedmap.New(hash, equals, linkedmap.Config[K, V]{
		InitialCapacity: size,
		AutoResize:      true,
		AccessOrder:     true,
		Evictor:         evictor,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[K, V]{
		size:  size,
		table: table,
	}, nil
}

// NewStringCache creates a cache with string keys using the murmur3
// content hash
func NewStringCache[V any](size int, options ...Option[string, V]) (*Cache[string, V], error) {
	return New(size, linkedmap.StringHash, linkedmap.StringEquals, options...)
}

// Set stores key with value, refreshing its recency. The oldest entries
// are discarded while the cache is over its size bound.
func (c *Cache[K, V]) Set(key K, value V) error {
	return c.table.Put(key, value)
}

// Get returns the value for key and marks it most recently used
func (c *Cache[K, V]) Get(key K) (V, bool) {
	return c.table.Get(key)
}

// Peek returns the value for key without refreshing its recency
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	return c.table.Peek(key)
}

// Contains reports whether key is cached, without refreshing its recency
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.table.Peek(key)
	return ok
}

// Delete removes key, returning whether it was present
func (c *Cache[K, V]) Delete(key K) bool {
	return c.table.Delete(key)
}

// Len returns the number of cached entries
func (c *Cache[K, V]) Len() int {
	return c.table.Len()
}

// Size returns the configured entry bound
func (c *Cache[K, V]) Size() int {
	return c.size
}

// Keys returns all cached keys, least recently used first
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, c.table.Len())
	c.table.Apply(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Purge removes every entry without invoking the eviction callback
func (c *Cache[K, V]) Purge() {
	c.table.Clear()
}
