// Package presence implements the per-beacon range state machine and the time
// accounting built on it. Every function takes the current time explicitly and
// none of them lock: the caller owns the beacon.
package presence

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/piresc/sitetrack/internal/pkg/models"
)

var (
	ErrAlreadyInRange  = errors.New("beacon is already in range of station")
	ErrNotInRange      = errors.New("beacon is not in range of station")
	ErrClockSkew       = errors.New("timestamp is earlier than the open interval it affects")
	ErrInvalidDistance = errors.New("distance must be a finite non-negative number")
)

// Action is the direction of a range transition
type Action string

const (
	ActionEntered Action = "entered"
	ActionExited  Action = "exited"
)

// Transition describes what a range change did to a beacon
type Transition struct {
	Action    Action        `json:"action"`
	StationID string        `json:"station_id"`
	At        time.Time     `json:"at"`
	Visit     *models.Visit `json:"visit,omitempty"`
	// PresenceOpened is set when the beacon went from no active stations to one.
	PresenceOpened bool `json:"presence_opened"`
	// PresenceClosed is set when the last active station was left and the
	// aggregate span was folded into the beacon's total.
	PresenceClosed bool `json:"presence_closed"`
}

// Enter opens a visit at stationID
func Enter(b *models.Beacon, stationID string, now time.Time) (Transition, error) {
	if b.ActiveStations == nil {
		b.ActiveStations = make(map[string]time.Time)
	}
	if _, ok := b.ActiveStations[stationID]; ok {
		return Transition{}, fmt.Errorf("%w: %s", ErrAlreadyInRange, stationID)
	}
	if b.PresenceStartedAt != nil && now.Before(*b.PresenceStartedAt) {
		return Transition{}, ErrClockSkew
	}

	t := Transition{Action: ActionEntered, StationID: stationID, At: now}
	if len(b.ActiveStations) == 0 {
		started := now
		b.PresenceStartedAt = &started
		t.PresenceOpened = true
	}
	b.ActiveStations[stationID] = now
	return t, nil
}

// Exit closes the open visit at stationID, tagging it with the classifier's verdict.
// The aggregate presence clock only stops when no station remains active.
func Exit(b *models.Beacon, stationID string, now time.Time, c Classifier) (Transition, error) {
	startedAt, ok := b.ActiveStations[stationID]
	if !ok {
		return Transition{}, fmt.Errorf("%w: %s", ErrNotInRange, stationID)
	}
	if now.Before(startedAt) {
		return Transition{}, ErrClockSkew
	}

	ended := now
	duration := now.Sub(startedAt)
	visit := models.Visit{
		StationID: stationID,
		StartedAt: startedAt,
		EndedAt:   &ended,
		Duration:  &duration,
		Kind:      classify(c, stationID),
	}
	b.Visits = append(b.Visits, visit)
	delete(b.ActiveStations, stationID)

	t := Transition{Action: ActionExited, StationID: stationID, At: now, Visit: &visit}
	if len(b.ActiveStations) == 0 {
		if b.PresenceStartedAt != nil {
			b.Total += now.Sub(*b.PresenceStartedAt)
		}
		b.PresenceStartedAt = nil
		t.PresenceClosed = true
	}
	return t, nil
}

// ToggleRange flips the beacon's range state for stationID
func ToggleRange(b *models.Beacon, stationID string, now time.Time, c Classifier) (Transition, error) {
	if _, ok := b.ActiveStations[stationID]; ok {
		return Exit(b, stationID, now, c)
	}
	return Enter(b, stationID, now)
}

// UpsertDistance stores or replaces the reading for stationID
func UpsertDistance(b *models.Beacon, stationID string, distance float64) error {
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
		return ErrInvalidDistance
	}
	if b.Distances == nil {
		b.Distances = make(map[string]float64)
	}
	b.Distances[stationID] = distance
	return nil
}

// Elapsed returns the live time spent in the current visit at stationID
func Elapsed(b *models.Beacon, stationID string, now time.Time) (time.Duration, bool) {
	startedAt, ok := b.ActiveStations[stationID]
	if !ok {
		return 0, false
	}
	return nonNegative(now.Sub(startedAt)), true
}

// TotalElapsed returns the aggregate presence time including any open span
func TotalElapsed(b *models.Beacon, now time.Time) time.Duration {
	total := b.Total
	if b.PresenceStartedAt != nil {
		total += nonNegative(now.Sub(*b.PresenceStartedAt))
	}
	return total
}

func nonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
