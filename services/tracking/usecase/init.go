package usecase

import (
	"github.com/google/uuid"

	"github.com/piresc/sitetrack/internal/pkg/metrics"
	"github.com/piresc/sitetrack/internal/pkg/models"
	"github.com/piresc/sitetrack/services/tracking"
)

type TrackingUC struct {
	beaconRepo    tracking.BeaconRepo
	catalog       tracking.StationCatalog
	positionCache tracking.PositionCache
	trackingGW    tracking.TrackingGW
	cfg           *models.Config

	clock   models.Clock
	metrics *metrics.Collector
	newID   func() string
}

// Option customizes a TrackingUC
type Option func(*TrackingUC)

// WithClock replaces the wall clock, mostly for tests
func WithClock(clock models.Clock) Option {
	return func(uc *TrackingUC) {
		uc.clock = clock
	}
}

// WithMetrics records estimates and transitions on the collector
func WithMetrics(collector *metrics.Collector) Option {
	return func(uc *TrackingUC) {
		uc.metrics = collector
	}
}

// NewTrackingUC creates a new tracking usecase instance
func NewTrackingUC(
	beaconRepo tracking.BeaconRepo,
	catalog tracking.StationCatalog,
	positionCache tracking.PositionCache,
	trackingGW tracking.TrackingGW,
	cfg *models.Config,
	opts ...Option,
) *TrackingUC {
	if cfg == nil {
		cfg = &models.Config{}
	}
	uc := &TrackingUC{
		beaconRepo:    beaconRepo,
		catalog:       catalog,
		positionCache: positionCache,
		trackingGW:    trackingGW,
		cfg:           cfg,
		clock:         models.SystemClock{},
		newID:         func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
