package models

import "time"

// RangeAction is the kind of range change carried by a RangeEvent
type RangeAction string

const (
	RangeActionEnter  RangeAction = "enter"
	RangeActionExit   RangeAction = "exit"
	RangeActionToggle RangeAction = "toggle"
)

// RangeEvent reports that a beacon entered or left a station's range
type RangeEvent struct {
	BeaconID   string      `json:"beacon_id"`
	StationID  string      `json:"station_id"`
	Action     RangeAction `json:"action"`
	OccurredAt *time.Time  `json:"occurred_at,omitempty"`
}

// DistanceEvent carries a single distance measurement
type DistanceEvent struct {
	BeaconID  string  `json:"beacon_id"`
	StationID string  `json:"station_id"`
	Distance  float64 `json:"distance"`
}

// VisitClosedEvent is published when a beacon leaves a station's range
type VisitClosedEvent struct {
	BeaconID   string    `json:"beacon_id"`
	SiteID     string    `json:"site_id"`
	Visit      Visit     `json:"visit"`
	PresenceOn bool      `json:"presence_on"`
	Timestamp  time.Time `json:"timestamp"`
}

// PositionEstimatedEvent is published when a fresh estimate is computed
type PositionEstimatedEvent struct {
	BeaconID  string           `json:"beacon_id"`
	SiteID    string           `json:"site_id"`
	Estimate  PositionEstimate `json:"estimate"`
	Timestamp time.Time        `json:"timestamp"`
}
