package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/sitetrack/internal/pkg/models"
)

func TestRegistryRepo_Brokers(t *testing.T) {
	repo := NewRegistryRepository()
	ctx := context.Background()

	first := &models.Broker{ID: "b1", Name: "north", Host: "10.0.0.1", Port: 1883,
		BaseStations: []models.Station{{ID: "ignored"}}}
	second := &models.Broker{ID: "b2", Name: "south", Host: "10.0.0.2", Port: 8883}

	require.NoError(t, repo.CreateBroker(ctx, first))
	require.NoError(t, repo.CreateBroker(ctx, second))

	err := repo.CreateBroker(ctx, first)
	assert.ErrorIs(t, err, models.ErrValidation)

	got, err := repo.GetBroker(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "north", got.Name)
	assert.Empty(t, got.BaseStations)

	_, err = repo.GetBroker(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)

	brokers, err := repo.ListBrokers(ctx)
	require.NoError(t, err)
	require.Len(t, brokers, 2)
	assert.Equal(t, "b1", brokers[0].ID)
	assert.Equal(t, "b2", brokers[1].ID)
}

func TestRegistryRepo_Stations(t *testing.T) {
	repo := NewRegistryRepository()
	ctx := context.Background()

	site := "site-1"
	station := &models.Station{
		ID:           "s1",
		Name:         "gate",
		BrokerID:     "b1",
		SiteID:       &site,
		Position:     models.GeoPoint{Latitude: 52.52, Longitude: 13.405},
		RegisteredAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.CreateStation(ctx, station))
	assert.ErrorIs(t, repo.CreateStation(ctx, station), models.ErrValidation)

	got, err := repo.GetStation(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, *station, *got)

	// Returned values are copies.
	got.Name = "changed"
	again, err := repo.GetStation(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "gate", again.Name)

	_, err = repo.GetStation(ctx, "s2")
	assert.ErrorIs(t, err, models.ErrNotFound)

	stations, err := repo.ListStations(ctx)
	require.NoError(t, err)
	assert.Len(t, stations, 1)
}

func TestRegistryRepo_Sites(t *testing.T) {
	repo := NewRegistryRepository()
	ctx := context.Background()

	sites, err := repo.ListSites(ctx)
	require.NoError(t, err)
	assert.Empty(t, sites)

	require.NoError(t, repo.CreateSite(ctx, &models.Site{ID: "x", Name: "Tower A", City: "Berlin"}))
	assert.ErrorIs(t, repo.CreateSite(ctx, &models.Site{ID: "x"}), models.ErrValidation)

	got, err := repo.GetSite(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "Tower A", got.Name)

	_, err = repo.GetSite(ctx, "y")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
