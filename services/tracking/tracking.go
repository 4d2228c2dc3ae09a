// Package tracking owns beacon state: distance readings, range transitions,
// position estimates and presence summaries.
package tracking

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/piresc/sitetrack/internal/pkg/models"
	"github.com/piresc/sitetrack/internal/pkg/presence"
	"github.com/piresc/sitetrack/internal/pkg/trilateration"
)

// TrackingUC defines the interface for beacon tracking business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/sitetrack/services/tracking TrackingUC
type TrackingUC interface {
	// Beacon operations
	CreateBeacon(ctx context.Context, req models.CreateBeaconRequest) (*models.Beacon, error)
	ListBeacons(ctx context.Context, siteID string) ([]*models.Beacon, error)
	GetBeacon(ctx context.Context, beaconID string) (*models.Beacon, error)

	// Readings and range changes
	UpsertDistance(ctx context.Context, beaconID, stationID string, distance float64) error
	ToggleRange(ctx context.Context, beaconID, stationID string) (*presence.Transition, error)
	ApplyRangeEvent(ctx context.Context, event models.RangeEvent) (*presence.Transition, error)
	ApplyDistanceEvent(ctx context.Context, event models.DistanceEvent) error

	// Queries
	EstimatePosition(ctx context.Context, beaconID string) (*models.PositionEstimate, error)
	Summary(ctx context.Context, beaconID string) (*BeaconSummary, error)
	StationElapsed(ctx context.Context, beaconID, stationID string) (time.Duration, error)
	SiteOverview(ctx context.Context, siteID string) (*SiteOverview, error)
	NearbyBeacons(ctx context.Context, siteID string, center models.GeoPoint, radiusMeters float64) ([]NearbyBeacon, error)
}

// BeaconRepo defines the interface for beacon state storage
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/sitetrack/services/tracking BeaconRepo,PositionCache
type BeaconRepo interface {
	Create(ctx context.Context, beacon *models.Beacon) error
	Get(ctx context.Context, beaconID string) (*models.Beacon, error)
	List(ctx context.Context, siteID string) ([]*models.Beacon, error)
	// Update applies fn to the stored beacon atomically. When fn fails the
	// stored beacon is left untouched. The updated beacon is returned as a copy.
	Update(ctx context.Context, beaconID string, fn func(*models.Beacon) error) (*models.Beacon, error)
}

// PositionCache memoizes estimates and indexes the latest position of each beacon
type PositionCache interface {
	GetEstimate(ctx context.Context, key string) (*models.PositionEstimate, bool, error)
	SetEstimate(ctx context.Context, key string, estimate *models.PositionEstimate) error
	StoreLatest(ctx context.Context, siteID, beaconID string, position models.GeoPoint) error
	Nearby(ctx context.Context, siteID string, center models.GeoPoint, radiusMeters float64) ([]NearbyBeacon, error)
}

// StationCatalog is the read side of the registry used by tracking
//
//go:generate mockgen -destination=mocks/mock_catalog.go -package=mocks github.com/piresc/sitetrack/services/tracking StationCatalog
type StationCatalog interface {
	GetSite(ctx context.Context, siteID string) (*models.Site, error)
	GetStation(ctx context.Context, stationID string) (*models.Station, error)
	StationsBySite(ctx context.Context, siteID string) (map[string]models.Station, error)
}

// TrackingGW defines the interface for publishing tracking events
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/sitetrack/services/tracking TrackingGW
type TrackingGW interface {
	PublishVisitClosed(ctx context.Context, event models.VisitClosedEvent) error
	PublishPositionEstimated(ctx context.Context, event models.PositionEstimatedEvent) error
}

// BeaconSummary is a beacon's presence summary together with its identity
type BeaconSummary struct {
	BeaconID string
	SiteID   string
	Worker   string
	Label    string
	Summary  presence.Summary
}

// MarshalJSON inlines the summary fields next to the beacon identity
func (s BeaconSummary) MarshalJSON() ([]byte, error) {
	summary, err := json.Marshal(s.Summary)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		BeaconID string          `json:"beaconId"`
		SiteID   string          `json:"siteId"`
		Worker   string          `json:"worker"`
		Label    string          `json:"label"`
		Summary  json.RawMessage `json:"summary"`
	}{s.BeaconID, s.SiteID, s.Worker, s.Label, summary})
}

// SiteOverview aggregates the presence of every beacon on a site
type SiteOverview struct {
	Site          models.Site
	StationCount  int
	BreakStations int
	ActiveBeacons int
	TimeOnSite    time.Duration
	BreakTime     time.Duration
	WorkTime      time.Duration
	Beacons       []BeaconSummary
	GeneratedAt   time.Time
}

// MarshalJSON encodes durations as milliseconds
func (o SiteOverview) MarshalJSON() ([]byte, error) {
	beacons := o.Beacons
	if beacons == nil {
		beacons = []BeaconSummary{}
	}
	return json.Marshal(struct {
		Site          models.Site     `json:"site"`
		StationCount  int             `json:"stationCount"`
		BreakStations int             `json:"breakStations"`
		ActiveBeacons int             `json:"activeBeacons"`
		TimeOnSiteMs  int64           `json:"timeOnSiteMs"`
		BreakMs       int64           `json:"breakMs"`
		WorkMs        int64           `json:"workMs"`
		Beacons       []BeaconSummary `json:"beacons"`
		GeneratedAt   time.Time       `json:"generatedAt"`
	}{
		Site:          o.Site,
		StationCount:  o.StationCount,
		BreakStations: o.BreakStations,
		ActiveBeacons: o.ActiveBeacons,
		TimeOnSiteMs:  o.TimeOnSite.Milliseconds(),
		BreakMs:       o.BreakTime.Milliseconds(),
		WorkMs:        o.WorkTime.Milliseconds(),
		Beacons:       beacons,
		GeneratedAt:   o.GeneratedAt,
	})
}

// NearbyBeacon is a beacon whose latest estimate lies within a search radius
type NearbyBeacon struct {
	BeaconID       string          `json:"beaconId"`
	Position       models.GeoPoint `json:"position"`
	DistanceMeters float64         `json:"distanceMeters"`
}

// IsClientError reports whether err was caused by the request or event itself
// rather than by infrastructure, so retrying it can never succeed.
func IsClientError(err error) bool {
	return errors.Is(err, models.ErrNotFound) ||
		errors.Is(err, models.ErrValidation) ||
		errors.Is(err, presence.ErrAlreadyInRange) ||
		errors.Is(err, presence.ErrNotInRange) ||
		errors.Is(err, presence.ErrClockSkew) ||
		errors.Is(err, presence.ErrInvalidDistance) ||
		errors.Is(err, trilateration.ErrInsufficientData)
}
