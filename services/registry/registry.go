package registry

import (
	"context"

	"github.com/piresc/sitetrack/internal/pkg/models"
)

// RegistryUC defines the interface for broker, site and station management
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/sitetrack/services/registry RegistryUC
type RegistryUC interface {
	// Broker operations
	CreateBroker(ctx context.Context, req models.CreateBrokerRequest) (*models.Broker, error)
	ListBrokers(ctx context.Context) ([]models.Broker, error)

	// Station operations
	CreateStation(ctx context.Context, brokerID string, req models.CreateStationRequest) (*models.Station, error)
	ListBrokerStations(ctx context.Context, brokerID string) ([]models.Station, error)
	GetStation(ctx context.Context, stationID string) (*models.Station, error)
	StationsBySite(ctx context.Context, siteID string) (map[string]models.Station, error)

	// Site operations
	CreateSite(ctx context.Context, req models.CreateSiteRequest) (*models.Site, error)
	ListSites(ctx context.Context) ([]models.Site, error)
	GetSite(ctx context.Context, siteID string) (*models.Site, error)
}

// RegistryRepo defines the interface for registry data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/sitetrack/services/registry RegistryRepo
type RegistryRepo interface {
	CreateBroker(ctx context.Context, broker *models.Broker) error
	GetBroker(ctx context.Context, brokerID string) (*models.Broker, error)
	ListBrokers(ctx context.Context) ([]models.Broker, error)

	CreateStation(ctx context.Context, station *models.Station) error
	GetStation(ctx context.Context, stationID string) (*models.Station, error)
	ListStations(ctx context.Context) ([]models.Station, error)

	CreateSite(ctx context.Context, site *models.Site) error
	GetSite(ctx context.Context, siteID string) (*models.Site, error)
	ListSites(ctx context.Context) ([]models.Site, error)
}
