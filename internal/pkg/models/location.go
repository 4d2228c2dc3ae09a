package models

import "time"

// GeoPoint represents a geographical point with latitude and longitude in degrees
type GeoPoint struct {
	Latitude  float64 `json:"lat" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"lng" validate:"gte=-180,lte=180"`
}

// Anchor is a station position paired with the distance a beacon measured to it
type Anchor struct {
	StationID string   `json:"stationId"`
	Position  GeoPoint `json:"position"`
	Distance  float64  `json:"distance"`
}

// PositionEstimate is the result of a multilateration run
type PositionEstimate struct {
	Position       GeoPoint  `json:"position"`
	EstimatedError float64   `json:"estimatedError"`
	UsedStations   []Anchor  `json:"usedStations"`
	Degenerate     bool      `json:"degenerate"`
	Geohash        string    `json:"geohash,omitempty"`
	ComputedAt     time.Time `json:"computedAt"`

	NearestStationID       string  `json:"nearestStationId,omitempty"`
	NearestStationDistance float64 `json:"nearestStationDistance,omitempty"`
	// CoveringStations lists stations whose coverage radius contains Position
	CoveringStations []string `json:"coveringStations,omitempty"`
}
