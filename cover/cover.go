// Package cover defines the cover-image resolver collaborator and a caching
// decorator for it.
//
// Resolving a cover is the one potentially-slow, I/O-bound operation around
// the otherwise pure query core, so the decorator does the three things a
// presentation layer needs: per-id result caching, duplicate-call
// suppression while a lookup is in flight, and rate limiting toward the
// upstream source.
package cover

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// Key identifies one cover lookup. Results are cached per ID; Title and
// Authors are hints for upstream resolvers that search by metadata.
type Key struct {
	ID      int
	Title   string
	Authors string
}

// Resolver resolves an optional cover-image URL for a record. An empty URL
// with a nil error means the record has no known cover; that outcome is
// cached like any other.
type Resolver interface {
	Resolve(ctx context.Context, key Key) (string, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, key Key) (string, error)

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(ctx context.Context, key Key) (string, error) {
	return f(ctx, key)
}

// CachedResolver wraps a Resolver with a per-id cache. Concurrent lookups
// for the same id collapse into a single upstream call, and upstream calls
// are optionally throttled. Errors are not cached; the next lookup retries.
type CachedResolver struct {
	inner   Resolver
	limiter *rate.Limiter

	group singleflight.Group

	mu      sync.RWMutex
	entries map[int]string
}

// CachedOption configures a CachedResolver.
type CachedOption func(*CachedResolver)

// WithRateLimit throttles upstream resolves to r events per second with the
// given burst. Cache hits are never throttled.
func WithRateLimit(r rate.Limit, burst int) CachedOption {
	return func(c *CachedResolver) {
		c.limiter = rate.NewLimiter(r, burst)
	}
}

// NewCachedResolver decorates inner with caching.
func NewCachedResolver(inner Resolver, optFns ...CachedOption) *CachedResolver {
	c := &CachedResolver{
		inner:   inner,
		entries: make(map[int]string),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(c)
		}
	}
	return c
}

// Resolve implements Resolver.
func (c *CachedResolver) Resolve(ctx context.Context, key Key) (string, error) {
	c.mu.RLock()
	url, ok := c.entries[key.ID]
	c.mu.RUnlock()
	if ok {
		return url, nil
	}

	v, err, _ := c.group.Do(strconv.Itoa(key.ID), func() (any, error) {
		// Another caller may have filled the entry while we queued.
		c.mu.RLock()
		url, ok := c.entries[key.ID]
		c.mu.RUnlock()
		if ok {
			return url, nil
		}

		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return "", err
			}
		}

		url, err := c.inner.Resolve(ctx, key)
		if err != nil {
			return "", err
		}

		c.mu.Lock()
		c.entries[key.ID] = url
		c.mu.Unlock()

		return url, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Invalidate drops the cached entry for one id.
func (c *CachedResolver) Invalidate(id int) {
	c.mu.Lock()
	delete(c.entries, id)
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *CachedResolver) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
