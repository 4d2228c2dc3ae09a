package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/piresc/sitetrack/internal/pkg/models"
	"github.com/piresc/sitetrack/internal/utils"
	"github.com/piresc/sitetrack/services/tracking"
)

type cachedEstimate struct {
	estimate  models.PositionEstimate
	expiresAt time.Time
}

// memoryPositionCache is used when Redis is disabled
type memoryPositionCache struct {
	mu        sync.Mutex
	ttl       time.Duration
	clock     models.Clock
	estimates map[string]cachedEstimate
	latest    map[string]map[string]models.GeoPoint
}

// NewMemoryPositionCache creates an in-process position cache. A non-positive ttl keeps entries forever.
func NewMemoryPositionCache(ttl time.Duration, clock models.Clock) tracking.PositionCache {
	if clock == nil {
		clock = models.SystemClock{}
	}
	return &memoryPositionCache{
		ttl:       ttl,
		clock:     clock,
		estimates: make(map[string]cachedEstimate),
		latest:    make(map[string]map[string]models.GeoPoint),
	}
}

// GetEstimate returns a cached estimate if present and not expired
func (c *memoryPositionCache) GetEstimate(ctx context.Context, key string) (*models.PositionEstimate, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.estimates[key]
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && !c.clock.Now().Before(entry.expiresAt) {
		delete(c.estimates, key)
		return nil, false, nil
	}
	est := copyEstimate(entry.estimate)
	return &est, true, nil
}

// SetEstimate stores an estimate under key
func (c *memoryPositionCache) SetEstimate(ctx context.Context, key string, estimate *models.PositionEstimate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := cachedEstimate{estimate: copyEstimate(*estimate)}
	if c.ttl > 0 {
		entry.expiresAt = c.clock.Now().Add(c.ttl)
	}
	c.estimates[key] = entry
	return nil
}

// StoreLatest records the beacon's most recent position on its site
func (c *memoryPositionCache) StoreLatest(ctx context.Context, siteID, beaconID string, position models.GeoPoint) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	site, ok := c.latest[siteID]
	if !ok {
		site = make(map[string]models.GeoPoint)
		c.latest[siteID] = site
	}
	site[beaconID] = position
	return nil
}

// Nearby returns the beacons of a site within radiusMeters of center, nearest first
func (c *memoryPositionCache) Nearby(ctx context.Context, siteID string, center models.GeoPoint, radiusMeters float64) ([]tracking.NearbyBeacon, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := []tracking.NearbyBeacon{}
	for beaconID, position := range c.latest[siteID] {
		d := utils.DistanceMeters(center, position)
		if d > radiusMeters {
			continue
		}
		out = append(out, tracking.NearbyBeacon{BeaconID: beaconID, Position: position, DistanceMeters: d})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DistanceMeters == out[j].DistanceMeters {
			return out[i].BeaconID < out[j].BeaconID
		}
		return out[i].DistanceMeters < out[j].DistanceMeters
	})
	return out, nil
}

func copyEstimate(in models.PositionEstimate) models.PositionEstimate {
	out := in
	out.UsedStations = make([]models.Anchor, len(in.UsedStations))
	copy(out.UsedStations, in.UsedStations)
	return out
}
