package models

import "time"

// Broker is an MQTT broker that base stations report through
type Broker struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Host         string    `json:"host"`
	Port         int       `json:"port"`
	Username     *string   `json:"username"`
	Password     *string   `json:"-"`
	BaseStations []Station `json:"basestations"`
}

// Station is a fixed reference point used as a distance anchor
type Station struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	BrokerID       string    `json:"brokerId,omitempty"`
	DeviceID       *string   `json:"deviceId"`
	SiteID         *string   `json:"siteId"`
	Position       GeoPoint  `json:"position"`
	CoverageMeters *float64  `json:"coverageMeters"`
	BreakArea      bool      `json:"breakArea"`
	Geohash        string    `json:"geohash,omitempty"`
	RegisteredAt   time.Time `json:"registeredAt"`
}

// BelongsTo reports whether the station is assigned to the given site
func (s Station) BelongsTo(siteID string) bool {
	return s.SiteID != nil && *s.SiteID == siteID
}

// Site is a construction site grouping stations and beacons
type Site struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	City   string   `json:"city,omitempty"`
	Center GeoPoint `json:"center"`
}

// CreateBrokerRequest is the payload for registering a broker
type CreateBrokerRequest struct {
	Name     string  `json:"name" validate:"required"`
	Host     string  `json:"host" validate:"required"`
	Port     *int    `json:"port" validate:"omitempty,min=1,max=65535"`
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// CreateStationRequest is the payload for registering a base station on a broker
type CreateStationRequest struct {
	Name           string    `json:"name" validate:"required"`
	DeviceID       *string   `json:"deviceId"`
	SiteID         *string   `json:"siteId"`
	Location       *GeoPoint `json:"location" validate:"required"`
	CoverageMeters *float64  `json:"coverageMeters"`
	BreakArea      bool      `json:"breakArea"`
}

// CreateSiteRequest is the payload for registering a construction site
type CreateSiteRequest struct {
	Name   string   `json:"name" validate:"required"`
	City   string   `json:"city"`
	Center GeoPoint `json:"center"`
}
