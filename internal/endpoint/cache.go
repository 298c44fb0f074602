package endpoint

import (
	"sync"
	"time"
)

//go:generate mockgen -destination=../mock/endpoint/mock_endpoint.go -package=mock_endpoint . Cache

// Cache holds the last successfully discovered endpoint
type Cache interface {
	Get() (*ResolvedEndpoint, bool)
	Set(ep *ResolvedEndpoint)
	Invalidate()
}

// Option configures a MemoryCache
type Option func(c *MemoryCache)

// WithTTL expires cached endpoints ttl after their discovery. Without it
// entries live until invalidated.
func WithTTL(ttl time.Duration) Option {
	return func(c *MemoryCache) {
		c.ttl = ttl
	}
}

// WithClock overrides the time source used for TTL checks
func WithClock(now func() time.Time) Option {
	return func(c *MemoryCache) {
		c.now = now
	}
}

// MemoryCache implements Cache in process memory
type MemoryCache struct {
	current *ResolvedEndpoint
	ttl     time.Duration
	now     func() time.Time
	mux     sync.RWMutex
}

// NewMemoryCache returns a new empty instance of MemoryCache
func NewMemoryCache(opts ...Option) *MemoryCache {
	c := &MemoryCache{
		now: time.Now,
		mux: sync.RWMutex{},
	}

	for _, o := range opts {
		o(c)
	}

	return c
}

// Get returns the cached endpoint if there is one
func (c *MemoryCache) Get() (*ResolvedEndpoint, bool) {
	c.mux.RLock()
	defer c.mux.RUnlock()

	if c.current == nil {
		return nil, false
	}

	if c.ttl > 0 && c.now().Sub(c.current.DiscoveredAt()) > c.ttl {
		return nil, false
	}

	return c.current, true
}

// Set replaces the cached endpoint
func (c *MemoryCache) Set(ep *ResolvedEndpoint) {
	c.mux.Lock()
	defer c.mux.Unlock()

	c.current = ep
}

// Invalidate clears the cached endpoint
func (c *MemoryCache) Invalidate() {
	c.mux.Lock()
	defer c.mux.Unlock()

	c.current = nil
}
