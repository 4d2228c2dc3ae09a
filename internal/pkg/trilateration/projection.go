package trilateration

import (
	"math"

	"github.com/piresc/sitetrack/internal/pkg/models"
)

// EarthRadiusMeters is the mean Earth radius used by the local projection
const EarthRadiusMeters = 6371000.0

// point is a position in the local planar frame, in meters east (x) and north (y)
// of the reference.
type point struct {
	x, y float64
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// project maps p into the equirectangular frame centered on ref. Accurate at the
// sub-kilometer scale of a single site; degrades over long spans and near the poles.
func project(ref, p models.GeoPoint) point {
	lat := toRadians(p.Latitude)
	lon := toRadians(p.Longitude)
	refLat := toRadians(ref.Latitude)
	refLon := toRadians(ref.Longitude)

	return point{
		x: (lon - refLon) * math.Cos((lat+refLat)/2) * EarthRadiusMeters,
		y: (lat - refLat) * EarthRadiusMeters,
	}
}

// unproject is the inverse of project
func unproject(ref models.GeoPoint, p point) models.GeoPoint {
	refLat := toRadians(ref.Latitude)
	refLon := toRadians(ref.Longitude)

	lat := refLat + p.y/EarthRadiusMeters
	lon := refLon + p.x/(EarthRadiusMeters*math.Cos((lat+refLat)/2))

	return models.GeoPoint{
		Latitude:  toDegrees(lat),
		Longitude: toDegrees(lon),
	}
}

// Offset returns the point east meters east and north meters north of ref in the
// same local frame the estimator uses.
func Offset(ref models.GeoPoint, east, north float64) models.GeoPoint {
	return unproject(ref, point{x: east, y: north})
}
