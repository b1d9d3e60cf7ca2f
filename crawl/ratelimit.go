package crawl

import (
	"context"
	"sync"

	"github.com/alateas/vybory"
	"golang.org/x/time/rate"
)

var _ vybory.DomainLimiter = (*DomainLimiter)(nil)

// DefaultRequestsPerSecond is the request rate used against the archive
// unless configured otherwise.
const DefaultRequestsPerSecond = 2.0

// DomainLimiter provides per-domain rate limiting using token buckets.
// Region and precinct pages may live on different hosts, so each host
// gets its own bucket.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// LimiterOption configures a DomainLimiter.
type LimiterOption func(*DomainLimiter)

// WithBurst allows n requests to a domain back to back. Defaults to 1.
func WithBurst(n int) LimiterOption {
	return func(d *DomainLimiter) {
		if n > 0 {
			d.burst = n
		}
	}
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each domain. A non-positive rps disables limiting.
func NewDomainLimiter(rps float64, opts ...LimiterOption) *DomainLimiter {
	d := &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(rps),
		burst:    1,
	}
	if rps <= 0 {
		d.limit = rate.Inf
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(d.limit, d.burst)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
