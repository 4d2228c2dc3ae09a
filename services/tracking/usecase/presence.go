package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/sitetrack/internal/pkg/logger"
	"github.com/piresc/sitetrack/internal/pkg/models"
	"github.com/piresc/sitetrack/internal/pkg/presence"
	"github.com/piresc/sitetrack/services/tracking"
)

// ToggleRange flips the beacon's range state for a station at the service clock's now
func (uc *TrackingUC) ToggleRange(ctx context.Context, beaconID, stationID string) (*presence.Transition, error) {
	return uc.applyRange(ctx, beaconID, stationID, models.RangeActionToggle, uc.clock.Now())
}

// ApplyRangeEvent applies a range change received from NSQ. Events without a
// timestamp are applied at the service clock's now.
func (uc *TrackingUC) ApplyRangeEvent(ctx context.Context, event models.RangeEvent) (*presence.Transition, error) {
	if event.BeaconID == "" || event.StationID == "" {
		return nil, fmt.Errorf("beacon and station are required: %w", models.ErrValidation)
	}

	at := uc.clock.Now()
	if event.OccurredAt != nil {
		at = event.OccurredAt.UTC()
	}
	return uc.applyRange(ctx, event.BeaconID, event.StationID, event.Action, at)
}

func (uc *TrackingUC) applyRange(ctx context.Context, beaconID, stationID string, action models.RangeAction, at time.Time) (*presence.Transition, error) {
	beacon, err := uc.beaconRepo.Get(ctx, beaconID)
	if err != nil {
		return nil, err
	}
	stations, err := uc.siteStations(ctx, beacon.SiteID, stationID)
	if err != nil {
		return nil, err
	}
	classifier := uc.classifierFor(stations)

	var transition presence.Transition
	updated, err := uc.beaconRepo.Update(ctx, beaconID, func(b *models.Beacon) error {
		var err error
		switch action {
		case models.RangeActionEnter:
			transition, err = presence.Enter(b, stationID, at)
		case models.RangeActionExit:
			transition, err = presence.Exit(b, stationID, at, classifier)
		case models.RangeActionToggle, "":
			transition, err = presence.ToggleRange(b, stationID, at, classifier)
		default:
			err = fmt.Errorf("unknown range action %q: %w", action, models.ErrValidation)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.recordTransition(ctx, updated, transition, classifier)
	return &transition, nil
}

func (uc *TrackingUC) recordTransition(ctx context.Context, beacon *models.Beacon, t presence.Transition, classifier presence.Classifier) {
	if t.Action == presence.ActionEntered {
		uc.metrics.RecordTransition(true, string(classifier.Classify(t.StationID)))
		logger.InfoCtx(ctx, "Beacon entered station range",
			logger.BeaconID(beacon.ID),
			logger.StationID(t.StationID),
			logger.Bool("presence_opened", t.PresenceOpened))
		return
	}

	uc.metrics.RecordTransition(false, string(t.Visit.Kind))
	logger.InfoCtx(ctx, "Beacon left station range",
		logger.BeaconID(beacon.ID),
		logger.StationID(t.StationID),
		logger.Duration("visit", *t.Visit.Duration),
		logger.String("kind", string(t.Visit.Kind)))

	event := models.VisitClosedEvent{
		BeaconID:   beacon.ID,
		SiteID:     beacon.SiteID,
		Visit:      *t.Visit,
		PresenceOn: !t.PresenceClosed,
		Timestamp:  t.At,
	}
	if err := uc.trackingGW.PublishVisitClosed(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish visit closed event",
			logger.BeaconID(beacon.ID),
			logger.Err(err))
	}
}

// siteStations loads the stations of a site and checks stationID is one of them
func (uc *TrackingUC) siteStations(ctx context.Context, siteID, stationID string) (map[string]models.Station, error) {
	stations, err := uc.catalog.StationsBySite(ctx, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load site stations: %w", err)
	}
	if _, ok := stations[stationID]; ok {
		return stations, nil
	}

	if _, err := uc.catalog.GetStation(ctx, stationID); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("station %s is not on site %s: %w", stationID, siteID, models.ErrValidation)
}

// classifierFor treats configured break stations and stations flagged as break
// areas as break time
func (uc *TrackingUC) classifierFor(stations map[string]models.Station) presence.Classifier {
	breaks := presence.NewBreakStations(uc.cfg.Tracking.BreakStationIDs...)
	for id, s := range stations {
		if s.BreakArea {
			breaks.Add(id)
		}
	}
	return breaks
}

// Summary returns the beacon's presence summary at the service clock's now
func (uc *TrackingUC) Summary(ctx context.Context, beaconID string) (*tracking.BeaconSummary, error) {
	beacon, err := uc.beaconRepo.Get(ctx, beaconID)
	if err != nil {
		return nil, err
	}
	stations, err := uc.catalog.StationsBySite(ctx, beacon.SiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load site stations: %w", err)
	}

	summary := summarize(beacon, uc.clock.Now(), uc.classifierFor(stations))
	return &summary, nil
}

// StationElapsed returns the live time the beacon has spent at an active station
func (uc *TrackingUC) StationElapsed(ctx context.Context, beaconID, stationID string) (time.Duration, error) {
	beacon, err := uc.beaconRepo.Get(ctx, beaconID)
	if err != nil {
		return 0, err
	}

	elapsed, ok := presence.Elapsed(beacon, stationID, uc.clock.Now())
	if !ok {
		return 0, fmt.Errorf("%w: %s", presence.ErrNotInRange, stationID)
	}
	return elapsed, nil
}

// SiteOverview summarizes every beacon on a site at the service clock's now
func (uc *TrackingUC) SiteOverview(ctx context.Context, siteID string) (*tracking.SiteOverview, error) {
	site, err := uc.catalog.GetSite(ctx, siteID)
	if err != nil {
		return nil, err
	}
	stations, err := uc.catalog.StationsBySite(ctx, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load site stations: %w", err)
	}
	beacons, err := uc.beaconRepo.List(ctx, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list beacons: %w", err)
	}

	now := uc.clock.Now()
	classifier := uc.classifierFor(stations)

	overview := &tracking.SiteOverview{
		Site:         *site,
		StationCount: len(stations),
		Beacons:      make([]tracking.BeaconSummary, 0, len(beacons)),
		GeneratedAt:  now,
	}
	for id := range stations {
		if classifier.Classify(id) == models.VisitKindBreak {
			overview.BreakStations++
		}
	}
	for _, beacon := range beacons {
		summary := summarize(beacon, now, classifier)
		overview.Beacons = append(overview.Beacons, summary)
		overview.TimeOnSite += summary.Summary.Total
		overview.BreakTime += summary.Summary.Break
		overview.WorkTime += summary.Summary.Work
		if len(beacon.ActiveStations) > 0 {
			overview.ActiveBeacons++
		}
	}
	return overview, nil
}

func summarize(beacon *models.Beacon, now time.Time, classifier presence.Classifier) tracking.BeaconSummary {
	return tracking.BeaconSummary{
		BeaconID: beacon.ID,
		SiteID:   beacon.SiteID,
		Worker:   beacon.Worker,
		Label:    beacon.Label,
		Summary:  presence.Summarize(beacon, now, classifier),
	}
}
