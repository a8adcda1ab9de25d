package rates

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tripbudget/backend/internal/currency"
	"golang.org/x/sync/singleflight"
)

// Source serves rate tables. It never fails: when the provider cannot be
// reached, the fallback tables are used.
type Source struct {
	provider  Provider
	cache     Cache
	ttl       time.Duration
	fallbacks Fallbacks
	group     singleflight.Group
	now       func() time.Time
}

// NewSource creates a Source. cache may be nil, in which case every call
// reaches the provider.
func NewSource(provider Provider, cache Cache, ttl time.Duration, fallbacks Fallbacks) *Source {
	if fallbacks == nil {
		fallbacks = DefaultFallbacks()
	}

	return &Source{
		provider:  provider,
		cache:     cache,
		ttl:       ttl,
		fallbacks: fallbacks,
		now:       time.Now,
	}
}

// Get returns the table for base, preferring a cached one.
func (s *Source) Get(ctx context.Context, base string) Table {
	base = normalizeBase(base)

	if s.cache != nil {
		if table, ok := s.cache.Get(ctx, base); ok {
			FetchCount.WithLabelValues(base, resultCache).Inc()
			return table
		}
	}

	return s.load(ctx, base)
}

// Refresh fetches the table for base from the provider, ignoring the cache.
func (s *Source) Refresh(ctx context.Context, base string) Table {
	return s.load(ctx, normalizeBase(base))
}

// load fetches the table for base. Concurrent calls for the same base
// share a single request to the provider.
func (s *Source) load(ctx context.Context, base string) Table {
	// The request is shared, so it must outlive the caller that started it.
	// The provider's own timeout still bounds it.
	ctx = context.WithoutCancel(ctx)

	v, _, _ := s.group.Do(base, func() (any, error) {
		table, err := s.provider.Fetch(ctx, base)
		if err != nil {
			log.Warn().Err(err).Str("base", base).Msg("exchange rate provider unavailable, using fallback rates")
			FetchCount.WithLabelValues(base, resultFallback).Inc()

			// Fallback tables are not cached so that the next call tries the provider again
			return s.fallbacks.Table(base, s.now().UTC()), nil
		}

		FetchCount.WithLabelValues(base, resultProvider).Inc()

		if s.cache != nil {
			if err := s.cache.Set(ctx, table, s.ttl); err != nil {
				log.Warn().Err(err).Str("base", base).Msg("could not cache exchange rates")
			}
		}

		return table, nil
	})

	// Callers sharing the request get their own copy of the rates
	return v.(Table).clone()
}

func normalizeBase(base string) string {
	base = currency.Normalize(base)
	if base == "" {
		return currency.Default
	}

	return base
}
