package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/piresc/sitetrack/internal/pkg/logger"
	"github.com/piresc/sitetrack/internal/pkg/models"
	"github.com/piresc/sitetrack/internal/utils"
)

func newUUID() string {
	return uuid.New().String()
}

// CreateBroker registers an MQTT broker
func (uc *RegistryUC) CreateBroker(ctx context.Context, req models.CreateBrokerRequest) (*models.Broker, error) {
	name := strings.TrimSpace(req.Name)
	host := strings.TrimSpace(req.Host)
	if name == "" || host == "" {
		return nil, fmt.Errorf("broker name and host are required: %w", models.ErrValidation)
	}

	port := DefaultBrokerPort
	if req.Port != nil {
		port = *req.Port
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("broker port %d out of range: %w", port, models.ErrValidation)
	}

	broker := &models.Broker{
		ID:           uc.newID(),
		Name:         name,
		Host:         host,
		Port:         port,
		Username:     req.Username,
		Password:     req.Password,
		BaseStations: []models.Station{},
	}
	if err := uc.registryRepo.CreateBroker(ctx, broker); err != nil {
		return nil, fmt.Errorf("failed to create broker: %w", err)
	}

	logger.InfoCtx(ctx, "Broker registered",
		logger.String("broker_id", broker.ID),
		logger.String("host", broker.Host),
		logger.Int("port", broker.Port))
	return broker, nil
}

// ListBrokers returns every broker with its stations attached
func (uc *RegistryUC) ListBrokers(ctx context.Context) ([]models.Broker, error) {
	brokers, err := uc.registryRepo.ListBrokers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list brokers: %w", err)
	}
	stations, err := uc.registryRepo.ListStations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stations: %w", err)
	}

	byBroker := make(map[string][]models.Station, len(brokers))
	for _, s := range stations {
		byBroker[s.BrokerID] = append(byBroker[s.BrokerID], s)
	}
	for i := range brokers {
		brokers[i].BaseStations = byBroker[brokers[i].ID]
		if brokers[i].BaseStations == nil {
			brokers[i].BaseStations = []models.Station{}
		}
	}
	return brokers, nil
}

// CreateStation registers a base station on a broker. A non-positive coverage
// radius is stored as unknown.
func (uc *RegistryUC) CreateStation(ctx context.Context, brokerID string, req models.CreateStationRequest) (*models.Station, error) {
	if _, err := uc.registryRepo.GetBroker(ctx, brokerID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("station name is required: %w", models.ErrValidation)
	}
	if req.Location == nil {
		return nil, fmt.Errorf("station location is required: %w", models.ErrValidation)
	}
	if err := validatePoint(*req.Location); err != nil {
		return nil, err
	}

	siteID := optional(req.SiteID)
	if siteID != nil {
		if _, err := uc.registryRepo.GetSite(ctx, *siteID); err != nil {
			return nil, fmt.Errorf("unknown site %s: %w", *siteID, models.ErrValidation)
		}
	}

	var coverage *float64
	if req.CoverageMeters != nil && *req.CoverageMeters > 0 && !math.IsInf(*req.CoverageMeters, 0) {
		c := *req.CoverageMeters
		coverage = &c
	}

	station := &models.Station{
		ID:             uc.newID(),
		Name:           name,
		BrokerID:       brokerID,
		DeviceID:       optional(req.DeviceID),
		SiteID:         siteID,
		Position:       *req.Location,
		CoverageMeters: coverage,
		BreakArea:      req.BreakArea,
		Geohash:        utils.EncodePoint(*req.Location, uc.cfg.Tracking.GeohashPrecision),
		RegisteredAt:   uc.clock.Now(),
	}
	if err := uc.registryRepo.CreateStation(ctx, station); err != nil {
		return nil, fmt.Errorf("failed to create station: %w", err)
	}

	logger.InfoCtx(ctx, "Base station registered",
		logger.StationID(station.ID),
		logger.String("broker_id", brokerID),
		logger.Bool("break_area", station.BreakArea))
	return station, nil
}

// ListBrokerStations returns the stations registered on a broker
func (uc *RegistryUC) ListBrokerStations(ctx context.Context, brokerID string) ([]models.Station, error) {
	if _, err := uc.registryRepo.GetBroker(ctx, brokerID); err != nil {
		return nil, err
	}
	stations, err := uc.registryRepo.ListStations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stations: %w", err)
	}

	out := []models.Station{}
	for _, s := range stations {
		if s.BrokerID == brokerID {
			out = append(out, s)
		}
	}
	return out, nil
}

// GetStation retrieves a station by ID
func (uc *RegistryUC) GetStation(ctx context.Context, stationID string) (*models.Station, error) {
	return uc.registryRepo.GetStation(ctx, stationID)
}

// StationsBySite returns the stations assigned to a site keyed by station ID
func (uc *RegistryUC) StationsBySite(ctx context.Context, siteID string) (map[string]models.Station, error) {
	stations, err := uc.registryRepo.ListStations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stations: %w", err)
	}

	out := make(map[string]models.Station)
	for _, s := range stations {
		if s.BelongsTo(siteID) {
			out[s.ID] = s
		}
	}
	return out, nil
}

// CreateSite registers a construction site
func (uc *RegistryUC) CreateSite(ctx context.Context, req models.CreateSiteRequest) (*models.Site, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("site name is required: %w", models.ErrValidation)
	}
	if err := validatePoint(req.Center); err != nil {
		return nil, err
	}

	site := &models.Site{
		ID:     uc.newID(),
		Name:   name,
		City:   strings.TrimSpace(req.City),
		Center: req.Center,
	}
	if err := uc.registryRepo.CreateSite(ctx, site); err != nil {
		return nil, fmt.Errorf("failed to create site: %w", err)
	}

	logger.InfoCtx(ctx, "Site registered", logger.String("site_id", site.ID))
	return site, nil
}

// ListSites returns every site
func (uc *RegistryUC) ListSites(ctx context.Context) ([]models.Site, error) {
	return uc.registryRepo.ListSites(ctx)
}

// GetSite retrieves a site by ID
func (uc *RegistryUC) GetSite(ctx context.Context, siteID string) (*models.Site, error) {
	return uc.registryRepo.GetSite(ctx, siteID)
}

func validatePoint(p models.GeoPoint) error {
	if math.IsNaN(p.Latitude) || p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range: %w", p.Latitude, models.ErrValidation)
	}
	if math.IsNaN(p.Longitude) || p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range: %w", p.Longitude, models.ErrValidation)
	}
	return nil
}

// optional treats blank strings as absent
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
