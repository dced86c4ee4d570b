package weather

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/aura/internal/domain"
	"golang.org/x/sync/singleflight"
)

// SnapshotStore persists the most recent snapshot across processes.
type SnapshotStore interface {
	LatestWeather(ctx context.Context) (*domain.WeatherSnapshot, error)
	SaveWeather(ctx context.Context, snap *domain.WeatherSnapshot) error
}

// CachedProvider serves a stored snapshot while it is fresh and collapses
// concurrent fetches for the same pincode into one upstream call.
type CachedProvider struct {
	upstream Provider
	store    SnapshotStore
	ttl      time.Duration
	observer Observer
	now      func() time.Time
	group    singleflight.Group
}

type CacheOption func(*CachedProvider)

// WithClock overrides the time source used for freshness checks.
func WithClock(now func() time.Time) CacheOption {
	return func(c *CachedProvider) { c.now = now }
}

func WithCacheObserver(o Observer) CacheOption {
	return func(c *CachedProvider) { c.observer = o }
}

// NewCachedProvider wraps upstream. A ttl outside (0, 1h] is clamped to 1h.
func NewCachedProvider(upstream Provider, store SnapshotStore, ttl time.Duration, opts ...CacheOption) *CachedProvider {
	if ttl <= 0 || ttl > domain.WeatherValidity {
		ttl = domain.WeatherValidity
	}
	c := &CachedProvider{
		upstream: upstream,
		store:    store,
		ttl:      ttl,
		observer: NoopObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns the stored snapshot for pincode when it is younger than the
// ttl; otherwise it fetches, persists and returns a new one.
func (c *CachedProvider) Fetch(ctx context.Context, pincode string) (*domain.WeatherSnapshot, error) {
	pin, err := NormalizePincode(pincode)
	if err != nil {
		return nil, err
	}

	if snap, ok := c.cached(ctx, pin); ok {
		c.observer.OnCallComplete(CallEvent{
			Operation: OpFetch, Pincode: pin, Location: snap.Location, Cached: true, Success: true,
		})
		return snap, nil
	}

	v, err, _ := c.group.Do(pin, func() (any, error) {
		snap, err := c.upstream.Fetch(ctx, pin)
		if err != nil {
			return nil, err
		}
		if err := c.store.SaveWeather(ctx, snap); err != nil {
			return nil, fmt.Errorf("saving weather snapshot: %w", err)
		}
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	snap := *v.(*domain.WeatherSnapshot)
	return &snap, nil
}

// Current returns the stored snapshot when it is still valid, or nil.
// Store errors are treated as no weather.
func (c *CachedProvider) Current(ctx context.Context) *domain.WeatherSnapshot {
	snap, err := c.store.LatestWeather(ctx)
	if err != nil {
		return nil
	}
	return snap.Valid(c.now())
}

func (c *CachedProvider) cached(ctx context.Context, pin string) (*domain.WeatherSnapshot, bool) {
	snap, err := c.store.LatestWeather(ctx)
	if err != nil || snap == nil || snap.Pincode != pin {
		return nil, false
	}
	if c.now().Sub(snap.FetchedAt) >= c.ttl {
		return nil, false
	}
	return snap, true
}
