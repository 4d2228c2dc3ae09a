package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEchoMiddlewareRecordsRouteTemplate(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewCollector(reg)
	require.NoError(t, err)

	e := echo.New()
	e.Use(collector.EchoMiddleware())
	e.GET("/api/beacons/:id/summary", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/api/beacons/:id/position", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "insufficient")
	})

	for _, path := range []string{"/api/beacons/a/summary", "/api/beacons/b/summary", "/api/beacons/a/position"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.HTTPRequests.WithLabelValues("GET", "/api/beacons/:id/summary", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.HTTPRequests.WithLabelValues("GET", "/api/beacons/:id/position", "422")))
}

func TestDomainCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewCollector(reg)
	require.NoError(t, err)

	collector.ObserveEstimate(OutcomeSolved, 1.5)
	collector.ObserveEstimate(OutcomeCached, 0)
	collector.ObserveEstimate(OutcomeInsufficient, 0)
	collector.RecordTransition(true, "work")
	collector.RecordTransition(true, "break")
	collector.RecordTransition(false, "break")
	collector.RecordMessage("beacon.range", nil)
	collector.RecordMessage("beacon.range", errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.Estimates.WithLabelValues(OutcomeSolved)))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.Estimates.WithLabelValues(OutcomeCached)))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.ActiveStations))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.RangeChanges.WithLabelValues("exited", "break")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.MessagesHandled.WithLabelValues("beacon.range", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(collector.EstimateErrors))
}

func TestNewCollectorReusesRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewCollector(reg)
	require.NoError(t, err)
	second, err := NewCollector(reg)
	require.NoError(t, err)
	assert.Same(t, first.HTTPRequests, second.HTTPRequests)
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector
	c.ObserveEstimate(OutcomeSolved, 1)
	c.RecordTransition(true, "work")
	c.RecordMessage("t", nil)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlerExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewCollector(reg)
	require.NoError(t, err)
	collector.ObserveEstimate(OutcomeDegenerate, 12)

	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.True(t, strings.Contains(rec.Body.String(), `sitetrack_position_estimates_total{outcome="degenerate"} 1`))
}
