package utils

import (
	"github.com/golang/geo/s2"
	"github.com/mmcloughlin/geohash"

	"github.com/piresc/sitetrack/internal/pkg/models"
)

// EarthRadiusMeters is the mean Earth radius used for great-circle distances
const EarthRadiusMeters = 6371000.0

// DefaultGeohashPrecision is roughly a 1.2 m × 0.6 m cell, fine enough to tell stations on a site apart
const DefaultGeohashPrecision uint = 9

// EncodePoint converts a point to a geohash string
func EncodePoint(p models.GeoPoint, precision uint) string {
	if precision == 0 {
		precision = DefaultGeohashPrecision
	}
	return geohash.EncodeWithPrecision(p.Latitude, p.Longitude, precision)
}

// DistanceMeters returns the great-circle distance between two points in meters
func DistanceMeters(a, b models.GeoPoint) float64 {
	p1 := s2.LatLngFromDegrees(a.Latitude, a.Longitude)
	p2 := s2.LatLngFromDegrees(b.Latitude, b.Longitude)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// Nearest returns the ID of the station closest to p and its distance.
// ok is false when stations is empty.
func Nearest(p models.GeoPoint, stations []models.Station) (id string, meters float64, ok bool) {
	for _, s := range stations {
		d := DistanceMeters(p, s.Position)
		if !ok || d < meters || (d == meters && s.ID < id) {
			id, meters, ok = s.ID, d, true
		}
	}
	return id, meters, ok
}

// WithinCoverage reports whether p lies inside the station's coverage radius.
// Stations without a radius cover nothing.
func WithinCoverage(p models.GeoPoint, s models.Station) bool {
	if s.CoverageMeters == nil {
		return false
	}
	return DistanceMeters(p, s.Position) <= *s.CoverageMeters
}
