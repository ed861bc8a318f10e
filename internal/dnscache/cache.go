// Package dnscache provides a thread-safe, TTL-based cache for DNS MX and
// TXT lookups with singleflight deduplication for concurrent requests to
// the same name.
package dnscache

import (
	"context"
	"net"
	"sync"
	"time"
)

// Resolver is the subset of net.Resolver the cache needs. It is
// injectable for testing.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupTXT(ctx context.Context, name string) ([]string, error)
}

// Cache is a thread-safe DNS lookup cache. Concurrent lookups for the
// same name are deduplicated: only one actual DNS query is performed,
// and all waiters receive the result.
type Cache struct {
	mu            sync.Mutex
	mx            map[string]*entry[[]*net.MX]
	txt           map[string]*entry[[]string]
	cacheTTL      time.Duration
	lookupTimeout time.Duration
	resolver      Resolver
}

type entry[T any] struct {
	val     T
	err     error
	expires time.Time
	done    chan struct{} // closed when the lookup is complete
}

// New creates a DNS cache with the given lookup timeout and cache TTL.
func New(lookupTimeout, cacheTTL time.Duration) *Cache {
	return &Cache{
		mx:            make(map[string]*entry[[]*net.MX]),
		txt:           make(map[string]*entry[[]string]),
		cacheTTL:      cacheTTL,
		lookupTimeout: lookupTimeout,
		resolver:      &net.Resolver{},
	}
}

// NewWithResolver creates a DNS cache with a custom resolver (for testing).
func NewWithResolver(lookupTimeout, cacheTTL time.Duration, r Resolver) *Cache {
	c := New(lookupTimeout, cacheTTL)
	c.resolver = r
	return c
}

// LookupMX returns MX records for the domain, using the cache when possible.
func (c *Cache) LookupMX(domain string) ([]*net.MX, error) {
	records, err := lookup(c, c.mx, domain, func(ctx context.Context) ([]*net.MX, error) {
		return c.resolver.LookupMX(ctx, domain)
	})
	return copyMX(records), err
}

// LookupTXT returns TXT strings for the name, using the cache when possible.
func (c *Cache) LookupTXT(name string) ([]string, error) {
	txts, err := lookup(c, c.txt, name, func(ctx context.Context) ([]string, error) {
		return c.resolver.LookupTXT(ctx, name)
	})
	// Copy so callers cannot mutate cached data.
	return append([]string(nil), txts...), err
}

// Len returns the number of cached names (for diagnostics).
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.mx) + len(c.txt)
}

// lookup implements the shared cache/singleflight discipline for one
// entry map. Expired entries are refreshed in place; in-flight entries
// are awaited.
func lookup[T any](c *Cache, m map[string]*entry[T], key string, fetch func(context.Context) (T, error)) (T, error) {
	c.mu.Lock()

	if e, ok := m[key]; ok {
		select {
		case <-e.done:
			if time.Now().Before(e.expires) {
				c.mu.Unlock()
				return e.val, e.err
			}
			// Expired, fall through to refresh.
		default:
			// Lookup in progress - wait for it.
			c.mu.Unlock()
			<-e.done
			return e.val, e.err
		}
	}

	e := &entry[T]{done: make(chan struct{})}
	m[key] = e
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), c.lookupTimeout)
	defer cancel()

	e.val, e.err = fetch(ctx)
	e.expires = time.Now().Add(c.cacheTTL)
	close(e.done)

	return e.val, e.err
}

// copyMX returns a deep copy of MX records to prevent callers from
// mutating cached data (e.g., via sort.Slice).
func copyMX(records []*net.MX) []*net.MX {
	if records == nil {
		return nil
	}
	out := make([]*net.MX, len(records))
	for i, r := range records {
		cp := *r
		out[i] = &cp
	}
	return out
}
