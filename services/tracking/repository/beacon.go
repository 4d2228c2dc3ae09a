package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/piresc/sitetrack/internal/pkg/models"
	"github.com/piresc/sitetrack/services/tracking"
)

// beaconRepo holds beacon state in memory. Every read and write goes through a
// copy, so no caller ever aliases the stored value.
type beaconRepo struct {
	mu      sync.RWMutex
	beacons map[string]*models.Beacon
	order   []string
}

// NewBeaconRepository creates a new in-memory beacon repository
func NewBeaconRepository() tracking.BeaconRepo {
	return &beaconRepo{
		beacons: make(map[string]*models.Beacon),
	}
}

// Create stores a new beacon
func (r *beaconRepo) Create(ctx context.Context, beacon *models.Beacon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.beacons[beacon.ID]; exists {
		return fmt.Errorf("beacon %s already exists: %w", beacon.ID, models.ErrValidation)
	}
	r.beacons[beacon.ID] = beacon.Clone()
	r.order = append(r.order, beacon.ID)
	return nil
}

// Get retrieves a copy of a beacon
func (r *beaconRepo) Get(ctx context.Context, beaconID string) (*models.Beacon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	beacon, ok := r.beacons[beaconID]
	if !ok {
		return nil, fmt.Errorf("beacon %s: %w", beaconID, models.ErrNotFound)
	}
	return beacon.Clone(), nil
}

// List returns copies of the beacons on a site, or of all beacons when siteID is empty
func (r *beaconRepo) List(ctx context.Context, siteID string) ([]*models.Beacon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Beacon, 0, len(r.order))
	for _, id := range r.order {
		beacon := r.beacons[id]
		if siteID != "" && beacon.SiteID != siteID {
			continue
		}
		out = append(out, beacon.Clone())
	}
	return out, nil
}

// Update runs fn against a working copy and commits it only when fn succeeds
func (r *beaconRepo) Update(ctx context.Context, beaconID string, fn func(*models.Beacon) error) (*models.Beacon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.beacons[beaconID]
	if !ok {
		return nil, fmt.Errorf("beacon %s: %w", beaconID, models.ErrNotFound)
	}

	working := stored.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	r.beacons[beaconID] = working
	return working.Clone(), nil
}
