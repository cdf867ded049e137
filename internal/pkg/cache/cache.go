package cache

import (
	"sync"
	"time"

	"cart-recovery/internal/pkg/clock"
)

// TTLCache is a small expiring map used to absorb repeated restore-link
// clicks. Negative lookups are cacheable via a sentinel so a bot hammering
// an unknown token does not translate into repeated store hits.
type TTLCache[V any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	clock   clock.Clock
	entries map[string]entry[V]
}

type entry[V any] struct {
	value     V
	negative  bool
	expiresAt time.Time
}

func NewTTLCache[V any](ttl time.Duration, clk clock.Clock) *TTLCache[V] {
	return &TTLCache[V]{
		ttl:     ttl,
		clock:   clk,
		entries: make(map[string]entry[V]),
	}
}

// Get reports (value, negative, found). negative means the key was cached as
// a known miss.
func (c *TTLCache[V]) Get(key string) (V, bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.entries[key]
	if !ok {
		return zero, false, false
	}
	if c.clock.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return zero, false, false
	}
	if e.negative {
		return zero, true, true
	}
	return e.value, false, true
}

func (c *TTLCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, expiresAt: c.clock.Now().Add(c.ttl)}
}

// SetNegative caches a miss.
func (c *TTLCache[V]) SetNegative(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{negative: true, expiresAt: c.clock.Now().Add(c.ttl)}
}

// Invalidate drops the key; callers must invalidate after mutating the
// underlying record to keep the cache coherent.
func (c *TTLCache[V]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *TTLCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
