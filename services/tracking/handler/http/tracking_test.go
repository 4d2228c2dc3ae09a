package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/sitetrack/internal/pkg/models"
	"github.com/piresc/sitetrack/internal/pkg/presence"
	"github.com/piresc/sitetrack/internal/pkg/trilateration"
	"github.com/piresc/sitetrack/internal/utils"
	"github.com/piresc/sitetrack/services/tracking"
	"github.com/piresc/sitetrack/services/tracking/mocks"
)

func setupEcho(t *testing.T, ingest ...echo.MiddlewareFunc) (*echo.Echo, *mocks.MockTrackingUC) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockTrackingUC(ctrl)

	e := echo.New()
	e.Validator = utils.NewRequestValidator()
	NewTrackingHandler(mockUC, ingest...).RegisterRoutes(e)
	return e, mockUC
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	return data
}

func TestCreateBeacon(t *testing.T) {
	e, mockUC := setupEcho(t)

	mockUC.EXPECT().
		CreateBeacon(gomock.Any(), models.CreateBeaconRequest{Worker: "Ana", Label: "helmet-7", SiteID: "site-a"}).
		Return(models.NewBeacon("b1", "site-a", "Ana", "helmet-7"), nil)

	rec := doRequest(e, http.MethodPost, "/api/beacons", `{"worker":"Ana","label":"helmet-7","siteId":"site-a"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, "b1", data["id"])

	rec = doRequest(e, http.MethodPost, "/api/beacons", `{"worker":"Ana","label":"helmet-7"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "siteId is required")
}

func TestListBeacons_SiteFilter(t *testing.T) {
	e, mockUC := setupEcho(t)
	mockUC.EXPECT().ListBeacons(gomock.Any(), "site-a").
		Return([]*models.Beacon{models.NewBeacon("b1", "site-a", "Ana", "helmet-7")}, nil)

	rec := doRequest(e, http.MethodGet, "/api/beacons?siteId=site-a", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"worker":"Ana"`)
}

func TestUpsertDistance(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockErr    error
		mock       bool
		wantStatus int
	}{
		{name: "stored", body: `{"distance":12.5}`, mock: true, wantStatus: http.StatusOK},
		{name: "zero is a valid reading", body: `{"distance":0}`, mock: true, wantStatus: http.StatusOK},
		{name: "missing distance", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "malformed", body: `{"distance":"far"}`, wantStatus: http.StatusBadRequest},
		{name: "negative", body: `{"distance":-3}`, mock: true, mockErr: presence.ErrInvalidDistance, wantStatus: http.StatusBadRequest},
		{name: "unknown beacon", body: `{"distance":3}`, mock: true, mockErr: fmt.Errorf("beacon b1: %w", models.ErrNotFound), wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, mockUC := setupEcho(t)
			if tt.mock {
				mockUC.EXPECT().UpsertDistance(gomock.Any(), "b1", "s1", gomock.Any()).Return(tt.mockErr)
			}

			rec := doRequest(e, http.MethodPut, "/api/beacons/b1/distances/s1", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestToggleRange(t *testing.T) {
	at := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		transition *presence.Transition
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "entered",
			transition: &presence.Transition{Action: presence.ActionEntered, StationID: "s1", At: at, PresenceOpened: true},
			wantStatus: http.StatusOK,
			wantBody:   `"action":"entered"`,
		},
		{
			name:       "station on another site",
			err:        fmt.Errorf("station s1 is not on site x: %w", models.ErrValidation),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "clock skew",
			err:        presence.ErrClockSkew,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "infrastructure failure",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Failed to toggle range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, mockUC := setupEcho(t)
			mockUC.EXPECT().ToggleRange(gomock.Any(), "b1", "s1").Return(tt.transition, tt.err)

			rec := doRequest(e, http.MethodPost, "/api/beacons/b1/stations/s1/toggle", "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestToggleRange_IngestMiddleware(t *testing.T) {
	blocked := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
		}
	}
	e, _ := setupEcho(t, blocked)

	rec := doRequest(e, http.MethodPost, "/api/beacons/b1/stations/s1/toggle", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestGetPosition(t *testing.T) {
	t.Run("estimated", func(t *testing.T) {
		e, mockUC := setupEcho(t)
		mockUC.EXPECT().EstimatePosition(gomock.Any(), "b1").Return(&models.PositionEstimate{
			Position:       models.GeoPoint{Latitude: 48.1354, Longitude: 11.5824},
			EstimatedError: 0.25,
			Geohash:        "u281z7j5e",
		}, nil)

		rec := doRequest(e, http.MethodGet, "/api/beacons/b1/position", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		data := decodeData(t, rec)
		assert.Equal(t, 0.25, data["estimatedError"])
		assert.Equal(t, "u281z7j5e", data["geohash"])
	})

	t.Run("insufficient data", func(t *testing.T) {
		e, mockUC := setupEcho(t)
		mockUC.EXPECT().EstimatePosition(gomock.Any(), "b1").
			Return(nil, fmt.Errorf("beacon b1 has 2 usable readings: %w", trilateration.ErrInsufficientData))

		rec := doRequest(e, http.MethodGet, "/api/beacons/b1/position", "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "at least three stations")
	})
}

func TestGetSummary(t *testing.T) {
	e, mockUC := setupEcho(t)
	mockUC.EXPECT().Summary(gomock.Any(), "b1").Return(&tracking.BeaconSummary{
		BeaconID: "b1",
		Worker:   "Ana",
		Summary: presence.Summary{
			Total:          4 * time.Second,
			Break:          1500 * time.Millisecond,
			Work:           2500 * time.Millisecond,
			PerStation:     map[string]time.Duration{"s1": 4 * time.Second},
			ActiveStations: map[string]time.Duration{},
		},
	}, nil)

	rec := doRequest(e, http.MethodGet, "/api/beacons/b1/summary", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	summary := data["summary"].(map[string]interface{})
	assert.Equal(t, float64(4000), summary["totalMs"])
	assert.Equal(t, float64(1500), summary["breakMs"])
	assert.Equal(t, float64(2500), summary["workMs"])
}

func TestStationElapsed(t *testing.T) {
	e, mockUC := setupEcho(t)
	mockUC.EXPECT().StationElapsed(gomock.Any(), "b1", "s1").Return(90*time.Second, nil)
	mockUC.EXPECT().StationElapsed(gomock.Any(), "b1", "s2").Return(time.Duration(0), fmt.Errorf("%w: s2", presence.ErrNotInRange))

	rec := doRequest(e, http.MethodGet, "/api/beacons/b1/stations/s1/elapsed", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(90000), decodeData(t, rec)["elapsedMs"])

	rec = doRequest(e, http.MethodGet, "/api/beacons/b1/stations/s2/elapsed", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSiteOverview(t *testing.T) {
	e, mockUC := setupEcho(t)
	mockUC.EXPECT().SiteOverview(gomock.Any(), "site-a").Return(&tracking.SiteOverview{
		Site:         models.Site{ID: "site-a", Name: "Tower A"},
		StationCount: 4,
		TimeOnSite:   time.Minute,
		WorkTime:     time.Minute,
	}, nil)
	mockUC.EXPECT().SiteOverview(gomock.Any(), "ghost").Return(nil, models.ErrNotFound)

	rec := doRequest(e, http.MethodGet, "/api/sites/site-a/overview", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, float64(60000), data["timeOnSiteMs"])
	assert.Equal(t, float64(4), data["stationCount"])
	assert.Empty(t, data["beacons"])

	rec = doRequest(e, http.MethodGet, "/api/sites/ghost/overview", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetNearbyBeacons(t *testing.T) {
	e, mockUC := setupEcho(t)
	center := models.GeoPoint{Latitude: 48.1351, Longitude: 11.582}
	mockUC.EXPECT().NearbyBeacons(gomock.Any(), "site-a", center, 25.0).
		Return([]tracking.NearbyBeacon{{BeaconID: "b1", Position: center, DistanceMeters: 3}}, nil)

	rec := doRequest(e, http.MethodGet, "/api/sites/site-a/beacons/nearby?lat=48.1351&lng=11.582&radius=25", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"beaconId":"b1"`)

	rec = doRequest(e, http.MethodGet, "/api/sites/site-a/beacons/nearby?lat=abc&lng=11.582", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
