package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/piresc/sitetrack/internal/pkg/logger"
	"github.com/piresc/sitetrack/internal/pkg/models"
	"github.com/piresc/sitetrack/internal/pkg/presence"
)

// CreateBeacon pairs a new beacon with a worker on an existing site
func (uc *TrackingUC) CreateBeacon(ctx context.Context, req models.CreateBeaconRequest) (*models.Beacon, error) {
	worker := strings.TrimSpace(req.Worker)
	label := strings.TrimSpace(req.Label)
	if worker == "" || label == "" || req.SiteID == "" {
		return nil, fmt.Errorf("worker, label and site are required: %w", models.ErrValidation)
	}

	if _, err := uc.catalog.GetSite(ctx, req.SiteID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("unknown site %s: %w", req.SiteID, models.ErrValidation)
		}
		return nil, fmt.Errorf("failed to look up site: %w", err)
	}

	beacon := models.NewBeacon(uc.newID(), req.SiteID, worker, label)
	if err := uc.beaconRepo.Create(ctx, beacon); err != nil {
		return nil, fmt.Errorf("failed to create beacon: %w", err)
	}

	logger.InfoCtx(ctx, "Beacon registered",
		logger.BeaconID(beacon.ID),
		logger.String("site_id", beacon.SiteID))
	return beacon, nil
}

// ListBeacons returns the beacons on a site, or every beacon when siteID is empty
func (uc *TrackingUC) ListBeacons(ctx context.Context, siteID string) ([]*models.Beacon, error) {
	return uc.beaconRepo.List(ctx, siteID)
}

// GetBeacon retrieves a beacon by ID
func (uc *TrackingUC) GetBeacon(ctx context.Context, beaconID string) (*models.Beacon, error) {
	return uc.beaconRepo.Get(ctx, beaconID)
}

// UpsertDistance stores the latest distance reading of a beacon to a station
func (uc *TrackingUC) UpsertDistance(ctx context.Context, beaconID, stationID string, distance float64) error {
	if stationID == "" {
		return fmt.Errorf("station is required: %w", models.ErrValidation)
	}

	_, err := uc.beaconRepo.Update(ctx, beaconID, func(b *models.Beacon) error {
		return presence.UpsertDistance(b, stationID, distance)
	})
	if err != nil {
		return err
	}

	logger.DebugCtx(ctx, "Distance updated",
		logger.BeaconID(beaconID),
		logger.StationID(stationID),
		logger.Float64("distance", distance))
	return nil
}

// ApplyDistanceEvent applies a distance reading received from NSQ
func (uc *TrackingUC) ApplyDistanceEvent(ctx context.Context, event models.DistanceEvent) error {
	if event.BeaconID == "" {
		return fmt.Errorf("beacon is required: %w", models.ErrValidation)
	}
	return uc.UpsertDistance(ctx, event.BeaconID, event.StationID, event.Distance)
}
