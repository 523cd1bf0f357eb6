package registry

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/youthopia/engine/internal/domain"
)

// Cached wraps a Lookup with a short-lived LRU cache. Only positive hits are
// cached: a registered ID never becomes unregistered, while a miss may turn
// into a hit as registrations land.
type Cached struct {
	next Lookup
	lru  *expirable.LRU[string, bool]
}

// NewCached creates a caching lookup in front of next.
// size: maximum number of cached IDs
// ttl: time-to-live for cached entries
func NewCached(next Lookup, size int, ttl time.Duration) *Cached {
	return &Cached{
		next: next,
		lru:  expirable.NewLRU[string, bool](size, nil, ttl),
	}
}

// IsRegistered checks the cache before delegating to the wrapped lookup.
func (c *Cached) IsRegistered(ctx context.Context, id string) (bool, error) {
	key := domain.NormalizeID(id)
	if hit, found := c.lru.Get(key); found {
		return hit, nil
	}

	registered, err := c.next.IsRegistered(ctx, id)
	if err != nil {
		return false, err
	}
	if registered {
		c.lru.Add(key, true)
	}
	return registered, nil
}

// Invalidate removes an ID from the cache.
func (c *Cached) Invalidate(id string) {
	c.lru.Remove(domain.NormalizeID(id))
}
