package models

import (
	"encoding/json"
	"time"
)

// VisitKind classifies a visit as work or break time
type VisitKind string

const (
	VisitKindWork  VisitKind = "work"
	VisitKindBreak VisitKind = "break"
)

// Visit is one continuous in-range interval of a beacon at a station
type Visit struct {
	StationID string
	StartedAt time.Time
	EndedAt   *time.Time
	Duration  *time.Duration
	Kind      VisitKind
}

// Elapsed returns the visit length. Open visits without a stored duration are
// measured against now.
func (v Visit) Elapsed(now time.Time) time.Duration {
	if v.Duration != nil {
		return *v.Duration
	}
	end := now
	if v.EndedAt != nil {
		end = *v.EndedAt
	}
	if end.Before(v.StartedAt) {
		return 0
	}
	return end.Sub(v.StartedAt)
}

// IsOpen reports whether the visit has no end timestamp
func (v Visit) IsOpen() bool {
	return v.EndedAt == nil
}

type visitJSON struct {
	StationID  string     `json:"stationId"`
	StartedAt  time.Time  `json:"startedAt"`
	EndedAt    *time.Time `json:"endedAt,omitempty"`
	DurationMs *int64     `json:"durationMs,omitempty"`
	Kind       VisitKind  `json:"kind"`
}

// MarshalJSON encodes durations as milliseconds
func (v Visit) MarshalJSON() ([]byte, error) {
	out := visitJSON{
		StationID: v.StationID,
		StartedAt: v.StartedAt,
		EndedAt:   v.EndedAt,
		Kind:      v.Kind,
	}
	if v.Duration != nil {
		ms := v.Duration.Milliseconds()
		out.DurationMs = &ms
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the millisecond duration form produced by MarshalJSON
func (v *Visit) UnmarshalJSON(data []byte) error {
	var in visitJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*v = Visit{
		StationID: in.StationID,
		StartedAt: in.StartedAt,
		EndedAt:   in.EndedAt,
		Kind:      in.Kind,
	}
	if in.DurationMs != nil {
		d := time.Duration(*in.DurationMs) * time.Millisecond
		v.Duration = &d
	}
	return nil
}

// Beacon is a mobile tag worn by a worker together with its presence state.
// PresenceStartedAt is set iff ActiveStations is non-empty.
type Beacon struct {
	ID                string               `json:"id"`
	SiteID            string               `json:"siteId"`
	Worker            string               `json:"worker"`
	Label             string               `json:"label"`
	Distances         map[string]float64   `json:"distances"`
	ActiveStations    map[string]time.Time `json:"activeStations"`
	PresenceStartedAt *time.Time           `json:"presenceStartedAt,omitempty"`
	Total             time.Duration        `json:"-"`
	Visits            []Visit              `json:"visits"`
}

// NewBeacon returns a beacon with empty readings and history
func NewBeacon(id, siteID, worker, label string) *Beacon {
	return &Beacon{
		ID:             id,
		SiteID:         siteID,
		Worker:         worker,
		Label:          label,
		Distances:      make(map[string]float64),
		ActiveStations: make(map[string]time.Time),
		Visits:         []Visit{},
	}
}

// Clone returns a deep copy so callers can read state outside the owner's lock
func (b *Beacon) Clone() *Beacon {
	out := *b
	out.Distances = make(map[string]float64, len(b.Distances))
	for k, v := range b.Distances {
		out.Distances[k] = v
	}
	out.ActiveStations = make(map[string]time.Time, len(b.ActiveStations))
	for k, v := range b.ActiveStations {
		out.ActiveStations[k] = v
	}
	if b.PresenceStartedAt != nil {
		t := *b.PresenceStartedAt
		out.PresenceStartedAt = &t
	}
	out.Visits = make([]Visit, len(b.Visits))
	copy(out.Visits, b.Visits)
	return &out
}

// CreateBeaconRequest is the payload for pairing a beacon with a worker
type CreateBeaconRequest struct {
	Worker string `json:"worker" validate:"required"`
	Label  string `json:"label" validate:"required"`
	SiteID string `json:"siteId" validate:"required"`
}

// DistanceRequest is the payload for upserting a single distance reading
type DistanceRequest struct {
	Distance *float64 `json:"distance" validate:"required"`
}
