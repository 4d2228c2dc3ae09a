package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/sitetrack/internal/pkg/constants"
	"github.com/piresc/sitetrack/internal/pkg/database"
	"github.com/piresc/sitetrack/internal/pkg/models"
)

// setupMiniredis creates a new miniredis server and returns a Redis client connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { client.Close() })

	return mr, &database.RedisClient{Client: client}
}

func TestRedisPositionCache_Estimates(t *testing.T) {
	mr, client := setupMiniredis(t)
	cache := NewRedisPositionCache(client, 5*time.Minute)
	ctx := context.Background()

	_, ok, err := cache.GetEstimate(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.SetEstimate(ctx, "abc", sampleEstimate()))

	key := fmt.Sprintf(constants.KeyPositionEstimate, "abc")
	assert.True(t, mr.Exists(key))
	assert.Equal(t, 5*time.Minute, mr.TTL(key))

	got, ok, err := cache.GetEstimate(ctx, "abc")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sampleEstimate().Position, got.Position)
	assert.Equal(t, "u33dc0cpp", got.Geohash)
	assert.True(t, sampleEstimate().ComputedAt.Equal(got.ComputedAt))
	require.Len(t, got.UsedStations, 1)

	mr.FastForward(5 * time.Minute)
	_, ok, err = cache.GetEstimate(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisPositionCache_CorruptEntry(t *testing.T) {
	mr, client := setupMiniredis(t)
	cache := NewRedisPositionCache(client, time.Minute)

	require.NoError(t, mr.Set(fmt.Sprintf(constants.KeyPositionEstimate, "bad"), "{not json"))

	_, ok, err := cache.GetEstimate(context.Background(), "bad")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestRedisPositionCache_Nearby(t *testing.T) {
	_, client := setupMiniredis(t)
	cache := NewRedisPositionCache(client, time.Minute)
	ctx := context.Background()
	center := models.GeoPoint{Latitude: 52.52, Longitude: 13.405}

	require.NoError(t, cache.StoreLatest(ctx, "site-a", "near", models.GeoPoint{Latitude: 52.5201, Longitude: 13.405}))
	require.NoError(t, cache.StoreLatest(ctx, "site-a", "far", models.GeoPoint{Latitude: 52.53, Longitude: 13.405}))
	require.NoError(t, cache.StoreLatest(ctx, "site-b", "other", center))

	got, err := cache.Nearby(ctx, "site-a", center, 100)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "near", got[0].BeaconID)
	assert.InDelta(t, 11.1, got[0].DistanceMeters, 0.5)
	assert.InDelta(t, 52.5201, got[0].Position.Latitude, 1e-4)
}

func TestRedisPositionCache_Unavailable(t *testing.T) {
	mr, client := setupMiniredis(t)
	cache := NewRedisPositionCache(client, time.Minute)
	mr.Close()

	_, _, err := cache.GetEstimate(context.Background(), "abc")
	assert.Error(t, err)
	assert.Error(t, cache.SetEstimate(context.Background(), "abc", sampleEstimate()))
}
