package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/sitetrack/internal/pkg/logger"
	"github.com/piresc/sitetrack/internal/pkg/models"
	"github.com/piresc/sitetrack/internal/pkg/trilateration"
	"github.com/piresc/sitetrack/internal/utils"
)

func testConfig() *models.Config {
	return &models.Config{
		App:    models.AppConfig{Name: "sitetrack", Version: "test"},
		Server: models.ServerConfig{Port: 8080, ReadTimeout: 5, WriteTimeout: 5, ShutdownTimeout: 5},
		Logger: models.LoggerConfig{Level: "error"},
		Tracking: models.TrackingConfig{
			PositionCacheTTL: time.Minute,
			GeohashPrecision: 9,
		},
	}
}

type testServer struct {
	t   *testing.T
	app *app
}

func newTestServer(t *testing.T) *testServer {
	zl := logger.NewNopLogger()
	logger.SetGlobalLogger(zl)

	a, err := newApp(testConfig(), zl, prometheus.NewRegistry(), nil, nil)
	require.NoError(t, err)
	return &testServer{t: t, app: a}
}

// do sends a JSON request and decodes the envelope's data into out when given
func (s *testServer) do(method, path string, body interface{}, wantStatus int, out interface{}) {
	s.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.app.echo.ServeHTTP(rec, req)

	require.Equal(s.t, wantStatus, rec.Code, rec.Body.String())
	if out != nil {
		require.NoError(s.t, utils.ParseJSONResponse(rec.Body.Bytes(), out))
	}
}

func TestApp_EndToEnd(t *testing.T) {
	s := newTestServer(t)
	center := models.GeoPoint{Latitude: 48.1351, Longitude: 11.5820}

	var site models.Site
	s.do(http.MethodPost, "/api/sites", map[string]interface{}{
		"name":   "Tower B",
		"city":   "Munich",
		"center": center,
	}, http.StatusCreated, &site)
	require.NotEmpty(t, site.ID)

	var broker models.Broker
	s.do(http.MethodPost, "/api/mqtt-brokers", map[string]interface{}{
		"name": "site-broker",
		"host": "mqtt.local",
	}, http.StatusCreated, &broker)
	assert.Equal(t, 1883, broker.Port)

	offsets := [][2]float64{{0, 0}, {100, 0}, {0, 100}}
	stationIDs := make([]string, 0, len(offsets))
	for i, off := range offsets {
		var station models.Station
		s.do(http.MethodPost, "/api/mqtt-brokers/"+broker.ID+"/basestations", map[string]interface{}{
			"name":     fmt.Sprintf("mast-%d", i+1),
			"siteId":   site.ID,
			"location": trilateration.Offset(center, off[0], off[1]),
		}, http.StatusCreated, &station)
		assert.NotEmpty(t, station.Geohash)
		stationIDs = append(stationIDs, station.ID)
	}

	var brokers []models.Broker
	s.do(http.MethodGet, "/api/mqtt-brokers", nil, http.StatusOK, &brokers)
	require.Len(t, brokers, 1)
	assert.Len(t, brokers[0].BaseStations, 3)

	var beacon models.Beacon
	s.do(http.MethodPost, "/api/beacons", map[string]interface{}{
		"worker": "Ana",
		"label":  "B-17",
		"siteId": site.ID,
	}, http.StatusCreated, &beacon)
	require.NotEmpty(t, beacon.ID)

	// Too few readings yet
	s.do(http.MethodGet, "/api/beacons/"+beacon.ID+"/position", nil, http.StatusUnprocessableEntity, nil)

	truth := trilateration.Offset(center, 30, 40)
	for i, id := range stationIDs {
		anchor := trilateration.Offset(center, offsets[i][0], offsets[i][1])
		s.do(http.MethodPut, "/api/beacons/"+beacon.ID+"/distances/"+id, map[string]interface{}{
			"distance": utils.DistanceMeters(anchor, truth),
		}, http.StatusOK, nil)
	}

	var estimate models.PositionEstimate
	s.do(http.MethodGet, "/api/beacons/"+beacon.ID+"/position", nil, http.StatusOK, &estimate)
	assert.Less(t, utils.DistanceMeters(estimate.Position, truth), 1.0)
	assert.Len(t, estimate.UsedStations, 3)
	assert.NotEmpty(t, estimate.Geohash)

	var entered struct {
		Action         string `json:"action"`
		PresenceOpened bool   `json:"presence_opened"`
	}
	s.do(http.MethodPost, "/api/beacons/"+beacon.ID+"/stations/"+stationIDs[0]+"/toggle", nil, http.StatusOK, &entered)
	assert.Equal(t, "entered", entered.Action)
	assert.True(t, entered.PresenceOpened)

	s.do(http.MethodGet, "/api/beacons/"+beacon.ID+"/stations/"+stationIDs[0]+"/elapsed", nil, http.StatusOK, nil)
	s.do(http.MethodGet, "/api/beacons/"+beacon.ID+"/stations/"+stationIDs[1]+"/elapsed", nil, http.StatusNotFound, nil)

	var exited struct {
		Action         string `json:"action"`
		PresenceClosed bool   `json:"presence_closed"`
	}
	s.do(http.MethodPost, "/api/beacons/"+beacon.ID+"/stations/"+stationIDs[0]+"/toggle", nil, http.StatusOK, &exited)
	assert.Equal(t, "exited", exited.Action)
	assert.True(t, exited.PresenceClosed)

	var summary struct {
		BeaconID string `json:"beaconId"`
		SiteID   string `json:"siteId"`
	}
	s.do(http.MethodGet, "/api/beacons/"+beacon.ID+"/summary", nil, http.StatusOK, &summary)
	assert.Equal(t, beacon.ID, summary.BeaconID)
	assert.Equal(t, site.ID, summary.SiteID)

	var overview struct {
		StationCount int               `json:"stationCount"`
		Beacons      []json.RawMessage `json:"beacons"`
	}
	s.do(http.MethodGet, "/api/sites/"+site.ID+"/overview", nil, http.StatusOK, &overview)
	assert.Equal(t, 3, overview.StationCount)
	assert.Len(t, overview.Beacons, 1)

	var nearby []struct {
		BeaconID string `json:"beaconId"`
	}
	path := fmt.Sprintf("/api/sites/%s/beacons/nearby?lat=%f&lng=%f&radius=25", site.ID, truth.Latitude, truth.Longitude)
	s.do(http.MethodGet, path, nil, http.StatusOK, &nearby)
	require.Len(t, nearby, 1)
	assert.Equal(t, beacon.ID, nearby[0].BeaconID)
}

func TestApp_Errors(t *testing.T) {
	s := newTestServer(t)

	s.do(http.MethodGet, "/api/beacons/missing", nil, http.StatusNotFound, nil)
	s.do(http.MethodPost, "/api/beacons", map[string]interface{}{
		"worker": "Ana",
		"label":  "B-17",
		"siteId": "nowhere",
	}, http.StatusBadRequest, nil)
	s.do(http.MethodPost, "/api/mqtt-brokers", map[string]interface{}{"name": "no-host"}, http.StatusBadRequest, nil)
	s.do(http.MethodPost, "/api/mqtt-brokers/missing/basestations", map[string]interface{}{
		"name":     "mast",
		"location": models.GeoPoint{Latitude: 1, Longitude: 1},
	}, http.StatusNotFound, nil)
}

func TestApp_OperationalEndpoints(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/health", "/health/live", "/health/ready", "/ping"} {
		rec := httptest.NewRecorder()
		s.app.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	s.do(http.MethodGet, "/api/sites", nil, http.StatusOK, nil)

	rec := httptest.NewRecorder()
	s.app.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sitetrack_http_requests_total")
}
