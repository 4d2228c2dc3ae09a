package main

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/piresc/sitetrack/internal/pkg/models"
	"github.com/piresc/sitetrack/internal/pkg/trilateration"
	"github.com/piresc/sitetrack/internal/utils"
)

func init() {
	rootCmd.AddCommand(newEstimateCmd())
}

func newEstimateCmd() *cobra.Command {
	var (
		anchors   []string
		precision uint
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate a position from station distances",
		Long: `Run a one-shot trilateration and print the estimate as JSON.

Each --anchor is "lat,lng,distance" with an optional "id=" prefix. The first
anchor is the reference of the local frame.`,
		Example: `  sitetrack estimate \
    --anchor gate=48.1351,11.582,50 \
    --anchor 48.1351,11.58334,80.62 \
    --anchor 48.13600,11.582,67.08`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd, anchors, precision)
		},
	}

	cmd.Flags().StringArrayVarP(&anchors, "anchor", "a", nil, "station as [id=]lat,lng,distance (repeatable, at least 3)")
	cmd.Flags().UintVar(&precision, "geohash-precision", utils.DefaultGeohashPrecision, "geohash length of the result")
	return cmd
}

func runEstimate(cmd *cobra.Command, rawAnchors []string, precision uint) error {
	anchors := make([]models.Anchor, 0, len(rawAnchors))
	for i, raw := range rawAnchors {
		anchor, err := parseAnchor(raw, i)
		if err != nil {
			return err
		}
		anchors = append(anchors, anchor)
	}

	estimate, err := trilateration.Estimate(anchors)
	if err != nil {
		return err
	}
	estimate.Geohash = utils.EncodePoint(estimate.Position, precision)
	estimate.ComputedAt = models.Now().Truncate(time.Millisecond)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(estimate)
}

// parseAnchor reads "[id=]lat,lng,distance". Anchors without an id are named by position.
func parseAnchor(raw string, index int) (models.Anchor, error) {
	id := fmt.Sprintf("anchor-%d", index+1)
	value := strings.TrimSpace(raw)
	if name, rest, ok := strings.Cut(value, "="); ok {
		id = strings.TrimSpace(name)
		value = rest
	}

	parts := strings.Split(value, ",")
	if len(parts) != 3 || id == "" {
		return models.Anchor{}, fmt.Errorf("invalid anchor %q: want [id=]lat,lng,distance", raw)
	}

	values := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return models.Anchor{}, fmt.Errorf("invalid anchor %q: %q is not a finite number", raw, p)
		}
		values[i] = v
	}

	lat, lng, distance := values[0], values[1], values[2]
	switch {
	case lat < -90 || lat > 90:
		return models.Anchor{}, fmt.Errorf("invalid anchor %q: latitude out of range", raw)
	case lng < -180 || lng > 180:
		return models.Anchor{}, fmt.Errorf("invalid anchor %q: longitude out of range", raw)
	case distance < 0:
		return models.Anchor{}, fmt.Errorf("invalid anchor %q: distance must not be negative", raw)
	}

	return models.Anchor{
		StationID: id,
		Position:  models.GeoPoint{Latitude: lat, Longitude: lng},
		Distance:  distance,
	}, nil
}
