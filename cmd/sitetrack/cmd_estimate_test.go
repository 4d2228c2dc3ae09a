package main

import (
	"bytes"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/sitetrack/internal/pkg/models"
	"github.com/piresc/sitetrack/internal/pkg/trilateration"
	"github.com/piresc/sitetrack/internal/utils"
)

func TestParseAnchor(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    models.Anchor
		wantErr string
	}{
		{
			name: "positional id",
			raw:  "48.1351,11.582,50",
			want: models.Anchor{StationID: "anchor-2", Position: models.GeoPoint{Latitude: 48.1351, Longitude: 11.582}, Distance: 50},
		},
		{
			name: "named with spaces",
			raw:  " gate = 48.1351 , 11.582 , 0 ",
			want: models.Anchor{StationID: "gate", Position: models.GeoPoint{Latitude: 48.1351, Longitude: 11.582}},
		},
		{name: "too few fields", raw: "48.1,11.5", wantErr: "want [id=]lat,lng,distance"},
		{name: "empty id", raw: "=48.1,11.5,3", wantErr: "want [id=]lat,lng,distance"},
		{name: "not a number", raw: "48.1,east,3", wantErr: "not a finite number"},
		{name: "nan", raw: "48.1,11.5,NaN", wantErr: "not a finite number"},
		{name: "latitude", raw: "91,11.5,3", wantErr: "latitude out of range"},
		{name: "longitude", raw: "48,181,3", wantErr: "longitude out of range"},
		{name: "negative distance", raw: "48,11,-1", wantErr: "distance must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAnchor(tt.raw, 1)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEstimateCommand(t *testing.T) {
	ref := models.GeoPoint{Latitude: 48.1351, Longitude: 11.5820}
	b := trilateration.Offset(ref, 100, 0)
	c := trilateration.Offset(ref, 0, 100)
	truth := trilateration.Offset(ref, 30, 40)

	anchorFlag := func(id string, p models.GeoPoint) string {
		d := utils.DistanceMeters(p, truth)
		return id + "=" + formatFloat(p.Latitude) + "," + formatFloat(p.Longitude) + "," + formatFloat(d)
	}

	var out bytes.Buffer
	cmd := newEstimateCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{
		"--anchor", anchorFlag("a", ref),
		"--anchor", anchorFlag("b", b),
		"--anchor", anchorFlag("c", c),
	})

	require.NoError(t, cmd.Execute())

	var got models.PositionEstimate
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Less(t, utils.DistanceMeters(got.Position, truth), 1.0)
	assert.Len(t, got.Geohash, int(utils.DefaultGeohashPrecision))
	assert.Len(t, got.UsedStations, 3)
	assert.False(t, got.Degenerate)
}

func TestEstimateCommand_InsufficientAnchors(t *testing.T) {
	cmd := newEstimateCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--anchor", "48.1,11.5,3", "--anchor", "48.2,11.5,4"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, trilateration.ErrInsufficientData)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
