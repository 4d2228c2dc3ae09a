package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/sitetrack/internal/pkg/logger"
)

func TestBuildInfo(t *testing.T) {
	assert.Equal(t, "development", DefaultBuildInfo.Version)
	assert.Equal(t, "unknown", DefaultBuildInfo.GitCommit)
	assert.Equal(t, runtime.Version(), DefaultBuildInfo.GoVersion)
	assert.Empty(t, DefaultBuildInfo.ServiceName)
}

func TestNewPingHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewPingHandler("sitetrack", "1.2.3")(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "sitetrack", info.ServiceName)
	assert.Equal(t, "1.2.3", info.Version)
	assert.NotEmpty(t, info.Hostname)
	assert.False(t, info.ServerTime.IsZero())
}

func TestRegisterHealthEndpoints(t *testing.T) {
	logger.SetGlobalLogger(logger.NewNopLogger())

	tests := []struct {
		name       string
		redisErr   error
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "health", path: "/health", wantStatus: http.StatusOK, wantBody: `"status":"ok"`},
		{name: "live", path: "/health/live", wantStatus: http.StatusOK, wantBody: `"alive"`},
		{name: "ready", path: "/health/ready", wantStatus: http.StatusOK, wantBody: `"ready"`},
		{name: "detailed healthy", path: "/health/detailed", wantStatus: http.StatusOK, wantBody: `"redis":{"status":"healthy"}`},
		{
			name:       "detailed unhealthy",
			redisErr:   errors.New("connection refused"),
			path:       "/health/detailed",
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"error":"connection refused"`,
		},
		{
			name:       "not ready",
			redisErr:   errors.New("connection refused"),
			path:       "/health/ready",
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"status":"unhealthy"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewHealthService()
			svc.AddChecker("redis", CheckerFunc(func(context.Context) error { return tt.redisErr }))

			e := echo.New()
			RegisterHealthEndpoints(e, "sitetrack", "test", svc)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
