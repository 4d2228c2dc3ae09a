package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/piresc/sitetrack/internal/pkg/constants"
	"github.com/piresc/sitetrack/internal/pkg/database"
	"github.com/piresc/sitetrack/internal/pkg/models"
	"github.com/piresc/sitetrack/services/tracking"
)

type redisPositionCache struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewRedisPositionCache creates a position cache backed by Redis. Estimates are
// stored as JSON strings and latest positions in a geo set per site.
func NewRedisPositionCache(redisClient *database.RedisClient, ttl time.Duration) tracking.PositionCache {
	return &redisPositionCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// GetEstimate returns a cached estimate; a missing key is a miss, not an error
func (r *redisPositionCache) GetEstimate(ctx context.Context, key string) (*models.PositionEstimate, bool, error) {
	data, err := r.redisClient.Get(ctx, fmt.Sprintf(constants.KeyPositionEstimate, key))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get position estimate: %w", err)
	}

	var estimate models.PositionEstimate
	if err := json.Unmarshal([]byte(data), &estimate); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal position estimate: %w", err)
	}
	return &estimate, true, nil
}

// SetEstimate stores an estimate with the configured TTL
func (r *redisPositionCache) SetEstimate(ctx context.Context, key string, estimate *models.PositionEstimate) error {
	data, err := json.Marshal(estimate)
	if err != nil {
		return fmt.Errorf("failed to marshal position estimate: %w", err)
	}

	if err := r.redisClient.Set(ctx, fmt.Sprintf(constants.KeyPositionEstimate, key), data, r.ttl); err != nil {
		return fmt.Errorf("failed to store position estimate: %w", err)
	}
	return nil
}

// StoreLatest adds or moves the beacon in the site's geo set
func (r *redisPositionCache) StoreLatest(ctx context.Context, siteID, beaconID string, position models.GeoPoint) error {
	key := fmt.Sprintf(constants.KeyBeaconPosition, siteID)
	if err := r.redisClient.GeoAdd(ctx, key, position.Longitude, position.Latitude, beaconID); err != nil {
		return fmt.Errorf("failed to store beacon position: %w", err)
	}
	return nil
}

// Nearby queries the site's geo set, nearest first
func (r *redisPositionCache) Nearby(ctx context.Context, siteID string, center models.GeoPoint, radiusMeters float64) ([]tracking.NearbyBeacon, error) {
	key := fmt.Sprintf(constants.KeyBeaconPosition, siteID)
	locations, err := r.redisClient.GeoRadius(ctx, key, center.Longitude, center.Latitude, radiusMeters, "m")
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby beacons: %w", err)
	}

	out := make([]tracking.NearbyBeacon, 0, len(locations))
	for _, loc := range locations {
		out = append(out, tracking.NearbyBeacon{
			BeaconID:       loc.Name,
			Position:       models.GeoPoint{Latitude: loc.Latitude, Longitude: loc.Longitude},
			DistanceMeters: loc.Dist,
		})
	}
	return out, nil
}
