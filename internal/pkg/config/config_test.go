package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/sitetrack/internal/pkg/models"
)

func TestInitConfig_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	configs, err := InitConfig("")
	require.NoError(t, err)

	assert.Equal(t, "sitetrack", configs.App.Name)
	assert.Equal(t, 8080, configs.Server.Port)
	assert.False(t, configs.Redis.Enabled)
	assert.Equal(t, "sitetrack", configs.NSQ.Channel)
	assert.Equal(t, 5*time.Minute, configs.Tracking.PositionCacheTTL)
	assert.Equal(t, uint(9), configs.Tracking.GeohashPrecision)
	assert.Equal(t, ":8080", Address(configs))
}

func TestInitConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 9090
redis:
  enabled: true
  host: redis.internal
tracking:
  break_station_ids: ["canteen", "container"]
  position_cache_ttl: 30s
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("SITETRACK_REDIS_HOST", "redis.override")
	t.Setenv("SITETRACK_LOGGER_LEVEL", "debug")

	configs, err := InitConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, configs.Server.Port)
	assert.True(t, configs.Redis.Enabled)
	assert.Equal(t, "redis.override", configs.Redis.Host)
	assert.Equal(t, "debug", configs.Logger.Level)
	assert.Equal(t, []string{"canteen", "container"}, configs.Tracking.BreakStationIDs)
	assert.Equal(t, 30*time.Second, configs.Tracking.PositionCacheTTL)
}

func TestInitConfig_MissingExplicitFile(t *testing.T) {
	_, err := InitConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *models.Config {
		return &models.Config{
			Server:   models.ServerConfig{Port: 8080},
			Tracking: models.TrackingConfig{GeohashPrecision: 9},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *models.Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *models.Config) {}},
		{name: "port out of range", mutate: func(c *models.Config) { c.Server.Port = 70000 }, wantErr: true},
		{name: "geohash precision zero", mutate: func(c *models.Config) { c.Tracking.GeohashPrecision = 0 }, wantErr: true},
		{name: "negative ttl", mutate: func(c *models.Config) { c.Tracking.PositionCacheTTL = -time.Second }, wantErr: true},
		{name: "nsq without address", mutate: func(c *models.Config) { c.NSQ.Enabled = true }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := Validate(c)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
