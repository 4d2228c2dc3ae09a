// Package trilateration estimates a beacon position from distances to fixed stations
// using planar least-squares multilateration.
package trilateration

import (
	"errors"
	"math"
	"sort"

	"github.com/piresc/sitetrack/internal/pkg/models"
)

// MinAnchors is the number of stations needed for a 2D fix
const MinAnchors = 3

// degenerateTolerance bounds det relative to a11*a22. By Cauchy-Schwarz det is never
// negative, so anything this small means the stations are (numerically) collinear.
const degenerateTolerance = 1e-9

// ErrInsufficientData is returned when fewer than MinAnchors usable anchors are given
var ErrInsufficientData = errors.New("at least three stations are required for trilateration")

// Estimate solves for the beacon position. Anchors with a non-finite or negative
// distance or position are dropped first. The first remaining anchor is the reference
// of the local frame. For collinear stations the reference position itself is
// returned and the estimate is flagged Degenerate.
func Estimate(anchors []models.Anchor) (*models.PositionEstimate, error) {
	anchors = finiteAnchors(anchors)
	if len(anchors) < MinAnchors {
		return nil, ErrInsufficientData
	}

	ref := anchors[0].Position
	coords := make([]point, len(anchors))
	for i, a := range anchors {
		coords[i] = project(ref, a.Position)
	}

	// Subtracting the reference circle from circle i gives
	//   2(xi-x1)X + 2(yi-y1)Y = (d1²-di²) + (xi²-x1²) + (yi²-y1²)
	// and the rows are folded into the 2x2 normal equations.
	x1, y1, d1 := coords[0].x, coords[0].y, anchors[0].Distance
	var a11, a22, a12, b1, b2 float64
	for i := 1; i < len(anchors); i++ {
		ax := 2 * (coords[i].x - x1)
		ay := 2 * (coords[i].y - y1)
		di := anchors[i].Distance
		c := (d1*d1 - di*di) + (coords[i].x*coords[i].x - x1*x1) + (coords[i].y*coords[i].y - y1*y1)

		a11 += ax * ax
		a22 += ay * ay
		a12 += ax * ay
		b1 += ax * c
		b2 += ay * c
	}

	det := a11*a22 - a12*a12
	degenerate := det <= degenerateTolerance*a11*a22

	solved := point{x: x1, y: y1}
	position := ref
	if !degenerate {
		solved = point{
			x: (a22*b1 - a12*b2) / det,
			y: (a11*b2 - a12*b1) / det,
		}
		position = unproject(ref, solved)
	}

	var residual float64
	for i, a := range anchors {
		dx := solved.x - coords[i].x
		dy := solved.y - coords[i].y
		residual += math.Abs(math.Hypot(dx, dy) - a.Distance)
	}

	used := make([]models.Anchor, len(anchors))
	copy(used, anchors)

	return &models.PositionEstimate{
		Position:       position,
		EstimatedError: residual / float64(len(anchors)),
		UsedStations:   used,
		Degenerate:     degenerate,
	}, nil
}

// UsableAnchors builds the anchor set for a beacon on siteID. Readings for unknown
// stations, stations on another site, and non-finite or negative distances are
// skipped. Anchors are ordered by station ID so the reference station is stable.
func UsableAnchors(siteID string, distances map[string]float64, stations map[string]models.Station) []models.Anchor {
	anchors := make([]models.Anchor, 0, len(distances))
	for stationID, distance := range distances {
		if !validDistance(distance) {
			continue
		}
		station, ok := stations[stationID]
		if !ok || !station.BelongsTo(siteID) {
			continue
		}
		anchors = append(anchors, models.Anchor{
			StationID: stationID,
			Position:  station.Position,
			Distance:  distance,
		})
	}

	sort.Slice(anchors, func(i, j int) bool {
		return anchors[i].StationID < anchors[j].StationID
	})
	return anchors
}

func validDistance(d float64) bool {
	return !math.IsNaN(d) && !math.IsInf(d, 0) && d >= 0
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// finiteAnchors returns anchors unchanged when all are usable, otherwise a filtered copy
func finiteAnchors(anchors []models.Anchor) []models.Anchor {
	usable := func(a models.Anchor) bool {
		return validDistance(a.Distance) && finite(a.Position.Latitude) && finite(a.Position.Longitude)
	}
	for i, a := range anchors {
		if usable(a) {
			continue
		}
		out := make([]models.Anchor, i, len(anchors))
		copy(out, anchors[:i])
		for _, rest := range anchors[i+1:] {
			if usable(rest) {
				out = append(out, rest)
			}
		}
		return out
	}
	return anchors
}
