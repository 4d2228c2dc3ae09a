package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/sitetrack/internal/pkg/models"
	"github.com/piresc/sitetrack/services/registry/mocks"
)

func newTestUC(t *testing.T) (*RegistryUC, *mocks.MockRegistryRepo) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockRegistryRepo(ctrl)

	uc := NewRegistryUC(mockRepo, &models.Config{})
	uc.clock = &models.FixedClock{At: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)}
	seq := 0
	uc.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return uc, mockRepo
}

func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestRegistryUC_CreateBroker(t *testing.T) {
	tests := []struct {
		name     string
		req      models.CreateBrokerRequest
		wantPort int
		wantErr  error
	}{
		{
			name:     "default port",
			req:      models.CreateBrokerRequest{Name: "north", Host: "mqtt.local"},
			wantPort: DefaultBrokerPort,
		},
		{
			name:     "explicit port",
			req:      models.CreateBrokerRequest{Name: "north", Host: "mqtt.local", Port: intPtr(8883)},
			wantPort: 8883,
		},
		{
			name:    "missing host",
			req:     models.CreateBrokerRequest{Name: "north", Host: "  "},
			wantErr: models.ErrValidation,
		},
		{
			name:    "port out of range",
			req:     models.CreateBrokerRequest{Name: "north", Host: "mqtt.local", Port: intPtr(70000)},
			wantErr: models.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, mockRepo := newTestUC(t)
			if tt.wantErr == nil {
				mockRepo.EXPECT().CreateBroker(gomock.Any(), gomock.Any()).Return(nil)
			}

			broker, err := uc.CreateBroker(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, broker)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "id-1", broker.ID)
			assert.Equal(t, tt.wantPort, broker.Port)
			assert.Empty(t, broker.BaseStations)
		})
	}
}

func TestRegistryUC_ListBrokers_AttachesStations(t *testing.T) {
	uc, mockRepo := newTestUC(t)

	mockRepo.EXPECT().ListBrokers(gomock.Any()).Return([]models.Broker{{ID: "b1"}, {ID: "b2"}}, nil)
	mockRepo.EXPECT().ListStations(gomock.Any()).Return([]models.Station{
		{ID: "s1", BrokerID: "b1"},
		{ID: "s2", BrokerID: "b1"},
	}, nil)

	brokers, err := uc.ListBrokers(context.Background())
	require.NoError(t, err)
	require.Len(t, brokers, 2)
	assert.Len(t, brokers[0].BaseStations, 2)
	assert.NotNil(t, brokers[1].BaseStations)
	assert.Empty(t, brokers[1].BaseStations)
}

func TestRegistryUC_ListBrokers_RepoError(t *testing.T) {
	uc, mockRepo := newTestUC(t)
	mockRepo.EXPECT().ListBrokers(gomock.Any()).Return(nil, errors.New("boom"))

	_, err := uc.ListBrokers(context.Background())
	assert.EqualError(t, err, "failed to list brokers: boom")
}

func TestRegistryUC_CreateStation(t *testing.T) {
	ctx := context.Background()
	location := &models.GeoPoint{Latitude: 52.52, Longitude: 13.405}

	t.Run("stores normalized station", func(t *testing.T) {
		uc, mockRepo := newTestUC(t)
		mockRepo.EXPECT().GetBroker(ctx, "b1").Return(&models.Broker{ID: "b1"}, nil)
		mockRepo.EXPECT().GetSite(ctx, "site-1").Return(&models.Site{ID: "site-1"}, nil)
		mockRepo.EXPECT().CreateStation(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, s *models.Station) error {
				assert.Equal(t, "b1", s.BrokerID)
				return nil
			})

		station, err := uc.CreateStation(ctx, "b1", models.CreateStationRequest{
			Name:           "crane",
			DeviceID:       strPtr(""),
			SiteID:         strPtr("site-1"),
			Location:       location,
			CoverageMeters: floatPtr(25),
			BreakArea:      true,
		})
		require.NoError(t, err)
		assert.Equal(t, "id-1", station.ID)
		assert.Nil(t, station.DeviceID)
		require.NotNil(t, station.SiteID)
		assert.Equal(t, "site-1", *station.SiteID)
		require.NotNil(t, station.CoverageMeters)
		assert.Equal(t, 25.0, *station.CoverageMeters)
		assert.True(t, station.BreakArea)
		assert.Len(t, station.Geohash, 9)
		assert.Equal(t, uc.clock.Now(), station.RegisteredAt)
	})

	t.Run("non-positive coverage stored as nil", func(t *testing.T) {
		uc, mockRepo := newTestUC(t)
		mockRepo.EXPECT().GetBroker(ctx, "b1").Return(&models.Broker{ID: "b1"}, nil)
		mockRepo.EXPECT().CreateStation(ctx, gomock.Any()).Return(nil)

		station, err := uc.CreateStation(ctx, "b1", models.CreateStationRequest{
			Name: "gate", Location: location, CoverageMeters: floatPtr(0),
		})
		require.NoError(t, err)
		assert.Nil(t, station.CoverageMeters)
		assert.Nil(t, station.SiteID)
	})

	t.Run("unknown broker", func(t *testing.T) {
		uc, mockRepo := newTestUC(t)
		mockRepo.EXPECT().GetBroker(ctx, "nope").Return(nil, fmt.Errorf("broker nope: %w", models.ErrNotFound))

		_, err := uc.CreateStation(ctx, "nope", models.CreateStationRequest{Name: "gate", Location: location})
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("unknown site", func(t *testing.T) {
		uc, mockRepo := newTestUC(t)
		mockRepo.EXPECT().GetBroker(ctx, "b1").Return(&models.Broker{ID: "b1"}, nil)
		mockRepo.EXPECT().GetSite(ctx, "ghost").Return(nil, models.ErrNotFound)

		_, err := uc.CreateStation(ctx, "b1", models.CreateStationRequest{
			Name: "gate", Location: location, SiteID: strPtr("ghost"),
		})
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		uc, mockRepo := newTestUC(t)
		mockRepo.EXPECT().GetBroker(ctx, "b1").Return(&models.Broker{ID: "b1"}, nil)

		_, err := uc.CreateStation(ctx, "b1", models.CreateStationRequest{
			Name: "gate", Location: &models.GeoPoint{Latitude: 91, Longitude: 0},
		})
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("missing location", func(t *testing.T) {
		uc, mockRepo := newTestUC(t)
		mockRepo.EXPECT().GetBroker(ctx, "b1").Return(&models.Broker{ID: "b1"}, nil)

		_, err := uc.CreateStation(ctx, "b1", models.CreateStationRequest{Name: "gate"})
		assert.ErrorIs(t, err, models.ErrValidation)
	})
}

func TestRegistryUC_StationsBySite(t *testing.T) {
	uc, mockRepo := newTestUC(t)
	mockRepo.EXPECT().ListStations(gomock.Any()).Return([]models.Station{
		{ID: "s1", SiteID: strPtr("a")},
		{ID: "s2", SiteID: strPtr("b")},
		{ID: "s3"},
		{ID: "s4", SiteID: strPtr("a")},
	}, nil)

	stations, err := uc.StationsBySite(context.Background(), "a")
	require.NoError(t, err)
	assert.Len(t, stations, 2)
	assert.Contains(t, stations, "s1")
	assert.Contains(t, stations, "s4")
}

func TestRegistryUC_ListBrokerStations(t *testing.T) {
	uc, mockRepo := newTestUC(t)
	mockRepo.EXPECT().GetBroker(gomock.Any(), "b2").Return(&models.Broker{ID: "b2"}, nil)
	mockRepo.EXPECT().ListStations(gomock.Any()).Return([]models.Station{
		{ID: "s1", BrokerID: "b1"},
	}, nil)

	stations, err := uc.ListBrokerStations(context.Background(), "b2")
	require.NoError(t, err)
	assert.NotNil(t, stations)
	assert.Empty(t, stations)
}

func TestRegistryUC_CreateSite(t *testing.T) {
	uc, mockRepo := newTestUC(t)
	mockRepo.EXPECT().CreateSite(gomock.Any(), gomock.Any()).Return(nil)

	site, err := uc.CreateSite(context.Background(), models.CreateSiteRequest{
		Name:   " Tower A ",
		City:   "Berlin",
		Center: models.GeoPoint{Latitude: 52.5, Longitude: 13.4},
	})
	require.NoError(t, err)
	assert.Equal(t, "Tower A", site.Name)
	assert.Equal(t, "id-1", site.ID)

	_, err = uc.CreateSite(context.Background(), models.CreateSiteRequest{
		Name:   "Bad",
		Center: models.GeoPoint{Latitude: 0, Longitude: 200},
	})
	assert.ErrorIs(t, err, models.ErrValidation)
}
