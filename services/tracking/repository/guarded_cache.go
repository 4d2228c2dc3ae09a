package repository

import (
	"context"
	"fmt"

	"github.com/piresc/sitetrack/internal/pkg/circuitbreaker"
	"github.com/piresc/sitetrack/internal/pkg/models"
	"github.com/piresc/sitetrack/services/tracking"
)

type guardedPositionCache struct {
	inner   tracking.PositionCache
	breaker *circuitbreaker.CircuitBreaker
}

// NewGuardedPositionCache routes every cache call through breaker so an
// unreachable Redis fails fast. The use case treats those errors as misses.
func NewGuardedPositionCache(inner tracking.PositionCache, breaker *circuitbreaker.CircuitBreaker) tracking.PositionCache {
	return &guardedPositionCache{inner: inner, breaker: breaker}
}

func (g *guardedPositionCache) GetEstimate(ctx context.Context, key string) (*models.PositionEstimate, bool, error) {
	var (
		estimate *models.PositionEstimate
		ok       bool
	)
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		estimate, ok, err = g.inner.GetEstimate(ctx, key)
		return err
	})
	if err != nil {
		return nil, false, g.wrap(err)
	}
	return estimate, ok, nil
}

func (g *guardedPositionCache) SetEstimate(ctx context.Context, key string, estimate *models.PositionEstimate) error {
	return g.wrap(g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.inner.SetEstimate(ctx, key, estimate)
	}))
}

func (g *guardedPositionCache) StoreLatest(ctx context.Context, siteID, beaconID string, position models.GeoPoint) error {
	return g.wrap(g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.inner.StoreLatest(ctx, siteID, beaconID, position)
	}))
}

func (g *guardedPositionCache) Nearby(ctx context.Context, siteID string, center models.GeoPoint, radiusMeters float64) ([]tracking.NearbyBeacon, error) {
	var beacons []tracking.NearbyBeacon
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		beacons, err = g.inner.Nearby(ctx, siteID, center, radiusMeters)
		return err
	})
	if err != nil {
		return nil, g.wrap(err)
	}
	return beacons, nil
}

func (g *guardedPositionCache) wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", g.breaker.Name(), err)
}
