package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/piresc/sitetrack/internal/pkg/models"
	"github.com/piresc/sitetrack/services/registry"
)

// registryRepo keeps the catalog in memory. Slices preserve registration order.
type registryRepo struct {
	mu sync.RWMutex

	brokers     map[string]models.Broker
	brokerOrder []string

	stations     map[string]models.Station
	stationOrder []string

	sites     map[string]models.Site
	siteOrder []string
}

// NewRegistryRepository creates a new in-memory registry repository
func NewRegistryRepository() registry.RegistryRepo {
	return &registryRepo{
		brokers:  make(map[string]models.Broker),
		stations: make(map[string]models.Station),
		sites:    make(map[string]models.Site),
	}
}

// CreateBroker stores a broker. Its station list is not persisted here.
func (r *registryRepo) CreateBroker(ctx context.Context, broker *models.Broker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.brokers[broker.ID]; exists {
		return fmt.Errorf("broker %s already exists: %w", broker.ID, models.ErrValidation)
	}
	stored := *broker
	stored.BaseStations = nil
	r.brokers[broker.ID] = stored
	r.brokerOrder = append(r.brokerOrder, broker.ID)
	return nil
}

// GetBroker retrieves a broker by ID
func (r *registryRepo) GetBroker(ctx context.Context, brokerID string) (*models.Broker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	broker, ok := r.brokers[brokerID]
	if !ok {
		return nil, fmt.Errorf("broker %s: %w", brokerID, models.ErrNotFound)
	}
	return &broker, nil
}

// ListBrokers returns every broker in registration order
func (r *registryRepo) ListBrokers(ctx context.Context) ([]models.Broker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Broker, 0, len(r.brokerOrder))
	for _, id := range r.brokerOrder {
		out = append(out, r.brokers[id])
	}
	return out, nil
}

// CreateStation stores a station
func (r *registryRepo) CreateStation(ctx context.Context, station *models.Station) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.stations[station.ID]; exists {
		return fmt.Errorf("station %s already exists: %w", station.ID, models.ErrValidation)
	}
	r.stations[station.ID] = *station
	r.stationOrder = append(r.stationOrder, station.ID)
	return nil
}

// GetStation retrieves a station by ID
func (r *registryRepo) GetStation(ctx context.Context, stationID string) (*models.Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	station, ok := r.stations[stationID]
	if !ok {
		return nil, fmt.Errorf("station %s: %w", stationID, models.ErrNotFound)
	}
	return &station, nil
}

// ListStations returns every station in registration order
func (r *registryRepo) ListStations(ctx context.Context) ([]models.Station, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Station, 0, len(r.stationOrder))
	for _, id := range r.stationOrder {
		out = append(out, r.stations[id])
	}
	return out, nil
}

// CreateSite stores a site
func (r *registryRepo) CreateSite(ctx context.Context, site *models.Site) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sites[site.ID]; exists {
		return fmt.Errorf("site %s already exists: %w", site.ID, models.ErrValidation)
	}
	r.sites[site.ID] = *site
	r.siteOrder = append(r.siteOrder, site.ID)
	return nil
}

// GetSite retrieves a site by ID
func (r *registryRepo) GetSite(ctx context.Context, siteID string) (*models.Site, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	site, ok := r.sites[siteID]
	if !ok {
		return nil, fmt.Errorf("site %s: %w", siteID, models.ErrNotFound)
	}
	return &site, nil
}

// ListSites returns every site in registration order
func (r *registryRepo) ListSites(ctx context.Context) ([]models.Site, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Site, 0, len(r.siteOrder))
	for _, id := range r.siteOrder {
		out = append(out, r.sites[id])
	}
	return out, nil
}
