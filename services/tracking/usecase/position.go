package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/piresc/sitetrack/internal/pkg/logger"
	"github.com/piresc/sitetrack/internal/pkg/metrics"
	"github.com/piresc/sitetrack/internal/pkg/models"
	"github.com/piresc/sitetrack/internal/pkg/trilateration"
	"github.com/piresc/sitetrack/internal/utils"
	"github.com/piresc/sitetrack/services/tracking"
)

// EstimatePosition trilaterates the beacon from its usable readings. Results are
// memoized by station positions and distances, so an unchanged input is served
// from the cache.
func (uc *TrackingUC) EstimatePosition(ctx context.Context, beaconID string) (*models.PositionEstimate, error) {
	beacon, err := uc.beaconRepo.Get(ctx, beaconID)
	if err != nil {
		return nil, err
	}
	stations, err := uc.catalog.StationsBySite(ctx, beacon.SiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load site stations: %w", err)
	}

	anchors := trilateration.UsableAnchors(beacon.SiteID, beacon.Distances, stations)
	if len(anchors) < trilateration.MinAnchors {
		uc.metrics.ObserveEstimate(metrics.OutcomeInsufficient, 0)
		return nil, fmt.Errorf("beacon %s has %d usable readings: %w", beaconID, len(anchors), trilateration.ErrInsufficientData)
	}

	key := positionKey(beacon.SiteID, anchors)
	cached, ok, err := uc.positionCache.GetEstimate(ctx, key)
	if err != nil {
		logger.WarnCtx(ctx, "Position cache unavailable", logger.BeaconID(beaconID), logger.Err(err))
	}
	if ok {
		uc.metrics.ObserveEstimate(metrics.OutcomeCached, cached.EstimatedError)
		// The memo is shared by every beacon with the same readings; the geo index is per beacon.
		uc.storeLatest(ctx, beacon.SiteID, beaconID, cached.Position)
		annotateStations(cached, stations)
		return cached, nil
	}

	estimate, err := trilateration.Estimate(anchors)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate position: %w", err)
	}
	estimate.Geohash = utils.EncodePoint(estimate.Position, uc.cfg.Tracking.GeohashPrecision)
	estimate.ComputedAt = uc.clock.Now()

	outcome := metrics.OutcomeSolved
	if estimate.Degenerate {
		outcome = metrics.OutcomeDegenerate
		logger.WarnCtx(ctx, "Collinear stations, falling back to reference station",
			logger.BeaconID(beaconID),
			logger.StationID(anchors[0].StationID))
	}
	uc.metrics.ObserveEstimate(outcome, estimate.EstimatedError)

	if err := uc.positionCache.SetEstimate(ctx, key, estimate); err != nil {
		logger.WarnCtx(ctx, "Failed to cache position estimate", logger.BeaconID(beaconID), logger.Err(err))
	}
	uc.storeLatest(ctx, beacon.SiteID, beaconID, estimate.Position)
	annotateStations(estimate, stations)

	event := models.PositionEstimatedEvent{
		BeaconID:  beaconID,
		SiteID:    beacon.SiteID,
		Estimate:  *estimate,
		Timestamp: estimate.ComputedAt,
	}
	if err := uc.trackingGW.PublishPositionEstimated(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish position estimated event", logger.BeaconID(beaconID), logger.Err(err))
	}

	return estimate, nil
}

func (uc *TrackingUC) storeLatest(ctx context.Context, siteID, beaconID string, position models.GeoPoint) {
	if err := uc.positionCache.StoreLatest(ctx, siteID, beaconID, position); err != nil {
		logger.WarnCtx(ctx, "Failed to index beacon position", logger.BeaconID(beaconID), logger.Err(err))
	}
}

// annotateStations sets the nearest and covering stations from the site's current
// stations. It runs on every call, so it is never served stale from the memo.
func annotateStations(estimate *models.PositionEstimate, stations map[string]models.Station) {
	siteStations := make([]models.Station, 0, len(stations))
	for _, s := range stations {
		siteStations = append(siteStations, s)
	}

	estimate.NearestStationID, estimate.NearestStationDistance = "", 0
	if id, meters, found := utils.Nearest(estimate.Position, siteStations); found {
		estimate.NearestStationID = id
		estimate.NearestStationDistance = meters
	}

	estimate.CoveringStations = nil
	for _, s := range siteStations {
		if utils.WithinCoverage(estimate.Position, s) {
			estimate.CoveringStations = append(estimate.CoveringStations, s.ID)
		}
	}
	sort.Strings(estimate.CoveringStations)
}

// NearbyBeacons returns the site's beacons whose latest estimate is within radiusMeters of center
func (uc *TrackingUC) NearbyBeacons(ctx context.Context, siteID string, center models.GeoPoint, radiusMeters float64) ([]tracking.NearbyBeacon, error) {
	if math.IsNaN(radiusMeters) || radiusMeters <= 0 {
		return nil, fmt.Errorf("radius must be positive: %w", models.ErrValidation)
	}
	if _, err := uc.catalog.GetSite(ctx, siteID); err != nil {
		return nil, err
	}

	beacons, err := uc.positionCache.Nearby(ctx, siteID, center, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby beacons: %w", err)
	}
	return beacons, nil
}

// positionKey hashes the exact estimator input. Anchors arrive ordered by
// station ID, so equal inputs always hash alike.
func positionKey(siteID string, anchors []models.Anchor) string {
	h := xxhash.New()
	h.WriteString(siteID)
	buf := make([]byte, 0, 64)
	for _, a := range anchors {
		buf = buf[:0]
		buf = append(buf, 0)
		buf = append(buf, a.StationID...)
		buf = append(buf, 0)
		buf = strconv.AppendFloat(buf, a.Position.Latitude, 'g', -1, 64)
		buf = append(buf, ',')
		buf = strconv.AppendFloat(buf, a.Position.Longitude, 'g', -1, 64)
		buf = append(buf, ',')
		buf = strconv.AppendFloat(buf, a.Distance, 'g', -1, 64)
		h.Write(buf)
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
