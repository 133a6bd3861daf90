// Package cache is the in-process price cache used where redis is not
// deployed. Expiry is lazy; an expired entry behaves exactly like an absent
// one.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/achaudhary7/SilverInfo-sub002/internal/application"
	"github.com/achaudhary7/SilverInfo-sub002/internal/domain"
)

type entry struct {
	rec       domain.PriceRecord
	expiresAt time.Time
}

type TTLCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	clock   application.Clock
}

var _ application.PriceCache = (*TTLCache)(nil)

type Option func(*TTLCache)

// WithClock injects a clock so expiry can be tested against a virtual one.
func WithClock(c application.Clock) Option {
	return func(t *TTLCache) { t.clock = c }
}

func New(ttl time.Duration, opts ...Option) *TTLCache {
	c := &TTLCache{
		entries: map[string]entry{},
		ttl:     ttl,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.clock == nil {
		c.clock = systemClock{}
	}
	return c
}

func (c *TTLCache) Get(_ context.Context, key string) (domain.PriceRecord, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return domain.PriceRecord{}, false
	}
	if c.clock.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return domain.PriceRecord{}, false
	}
	return e.rec, true
}

func (c *TTLCache) Set(_ context.Context, key string, rec domain.PriceRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{rec: rec, expiresAt: c.clock.Now().Add(c.ttl)}
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
