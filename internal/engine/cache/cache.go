// Package cache implements the in-process compilation cache: a keyed,
// concurrency-safe store of compiled artifacts with at-most-one-compilation
// per key.
package cache

import (
	"sync"
	"sync/atomic"

	"github.com/slategen/slate/internal/core/domain"
	"golang.org/x/sync/singleflight"
)

// CompileFunc runs one external compilation attempt. It is executed at most
// once per key among any number of concurrent callers.
type CompileFunc func() (*domain.CompiledArtifact, error)

// Option configures a Cache.
type Option func(*Cache)

// WithMaxEntries bounds the cache to n completed entries, evicting the
// least recently used entry when the bound is exceeded. Zero (the default)
// means unbounded, which suits short-lived batch builds; long-running
// processes should set a bound.
func WithMaxEntries(n int) Option {
	return func(c *Cache) {
		c.maxEntries = n
	}
}

// Cache maps cache keys to completed compilation results. Failures are
// never retained: a failed compilation returns the key to absent so the
// next request retries, since the cause may be transient infrastructure
// rather than the content.
//
// Contention is serialized per key only; no lock is held across the
// execution of a CompileFunc.
type Cache struct {
	mu      sync.RWMutex
	entries map[domain.CacheKey]*entry
	group   singleflight.Group

	maxEntries int
	// LRU doubly-linked list with dummy head and tail; only maintained
	// when maxEntries > 0.
	head *entry
	tail *entry

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

type entry struct {
	key      domain.CacheKey
	artifact *domain.CompiledArtifact
	prev     *entry
	next     *entry
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[domain.CacheKey]*entry),
		head:    &entry{},
		tail:    &entry{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrCompile returns the completed artifact for key, executing compile at
// most once per key across all concurrent callers.
//
// A caller that loses the race for a key blocks until the winning caller's
// compile completes and then receives the same artifact or error. If
// compile returns an error the key stays absent and the error reaches the
// instigator and every waiter. If compile panics, the panic propagates to
// all callers and the key stays absent, so a later request retries cleanly.
func (c *Cache) GetOrCompile(key domain.CacheKey, compile CompileFunc) (*domain.CompiledArtifact, error) {
	if artifact, ok := c.lookup(key); ok {
		return artifact, nil
	}

	v, err, _ := c.group.Do(key.String(), func() (any, error) {
		// Another flight may have completed between the miss above and
		// this execution winning the key.
		if artifact, ok := c.lookup(key); ok {
			return artifact, nil
		}

		artifact, err := compile()
		if err != nil {
			return nil, err
		}

		c.store(key, artifact)
		return artifact, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.CompiledArtifact), nil
}

// Get returns the completed artifact for key without compiling.
func (c *Cache) Get(key domain.CacheKey) (*domain.CompiledArtifact, bool) {
	return c.lookup(key)
}

// Len returns the number of completed entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Entries   int
	Hits      int64
	Misses    int64
	Evictions int64
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Entries:   c.Len(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

func (c *Cache) lookup(key domain.CacheKey) (*domain.CompiledArtifact, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		c.misses.Add(1)
		return nil, false
	}

	if c.maxEntries > 0 {
		c.mu.Lock()
		// Re-check under the write lock; the entry may have been evicted.
		if cur, still := c.entries[key]; still {
			c.moveToFront(cur)
		}
		c.mu.Unlock()
	}

	c.hits.Add(1)
	return e.artifact, true
}

func (c *Cache) store(key domain.CacheKey, artifact *domain.CompiledArtifact) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		return
	}

	e := &entry{key: key, artifact: artifact}
	c.entries[key] = e

	if c.maxEntries == 0 {
		return
	}

	c.addToFront(e)
	for len(c.entries) > c.maxEntries && c.tail.prev != c.head {
		lru := c.tail.prev
		c.removeFromList(lru)
		delete(c.entries, lru.key)
		c.evictions.Add(1)
	}
}

func (c *Cache) addToFront(e *entry) {
	e.prev = c.head
	e.next = c.head.next
	c.head.next.prev = e
	c.head.next = e
}

func (c *Cache) removeFromList(e *entry) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = nil
	e.next = nil
}

func (c *Cache) moveToFront(e *entry) {
	c.removeFromList(e)
	c.addToFront(e)
}
