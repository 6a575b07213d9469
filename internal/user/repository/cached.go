package repository

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"usip/internal/user/domain"
)

var (
	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "usip_user_cache_hits_total",
		Help: "Total number of user directory cache hits.",
	})
	cacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "usip_user_cache_misses_total",
		Help: "Total number of user directory cache misses.",
	})
)

// CachedRepository wraps a Repository with a per-instance expirable LRU.
// Profiles are immutable after provisioning, so a short TTL only bounds
// staleness against out-of-band provisioning, not updates. Misses are not
// cached: an unknown id stays a directory question.
type CachedRepository struct {
	inner Repository
	cache *expirable.LRU[string, domain.User]
}

// NewCachedRepository returns a caching wrapper around inner with the given
// maximum entry count and entry TTL.
func NewCachedRepository(inner Repository, maxSize int, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		inner: inner,
		cache: expirable.NewLRU[string, domain.User](maxSize, nil, ttl),
	}
}

// GetByID returns the cached user for id, falling back to the wrapped
// repository and caching the result on a hit there.
func (r *CachedRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if u, ok := r.cache.Get(id); ok {
		cacheHitsTotal.Inc()
		u2 := u
		return &u2, nil
	}
	cacheMissesTotal.Inc()
	u, err := r.inner.GetByID(ctx, id)
	if err != nil || u == nil {
		return u, err
	}
	r.cache.Add(id, *u)
	return u, nil
}

// Create delegates to the wrapped repository and invalidates the cache entry for the id.
func (r *CachedRepository) Create(ctx context.Context, u *domain.User) error {
	if err := r.inner.Create(ctx, u); err != nil {
		return err
	}
	r.cache.Remove(u.ID)
	return nil
}
