package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/piresc/sitetrack/internal/pkg/constants"
	"github.com/piresc/sitetrack/internal/pkg/models"
)

// EnvPrefix namespaces environment overrides, e.g. SITETRACK_REDIS_HOST
const EnvPrefix = "SITETRACK"

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "sitetrack")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.version", "development")

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nsq.enabled", false)
	v.SetDefault("nsq.nsqd_address", "localhost:4150")
	v.SetDefault("nsq.lookupd_addresses", []string{})
	v.SetDefault("nsq.channel", constants.DefaultNSQChannel)
	v.SetDefault("nsq.max_attempts", 5)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file_path", "logs/sitetrack.log")
	v.SetDefault("logger.type", "console")

	v.SetDefault("tracking.break_station_ids", []string{})
	v.SetDefault("tracking.position_cache_ttl", 5*time.Minute)
	v.SetDefault("tracking.geohash_precision", 9)
	v.SetDefault("tracking.rate_limit", 0)
	v.SetDefault("tracking.rate_limit_period", time.Minute)
}

// InitConfig loads configuration from an optional YAML file and the
// environment. An empty configPath searches ./config.yaml and ./config/config.yaml.
func InitConfig(configPath string) (*models.Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	configs := &models.Config{}
	if err := v.Unmarshal(configs); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := Validate(configs); err != nil {
		return nil, err
	}
	return configs, nil
}

// Validate rejects settings the services cannot start with
func Validate(c *models.Config) error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port %d out of range", models.ErrValidation, c.Server.Port)
	}
	if c.Tracking.GeohashPrecision < 1 || c.Tracking.GeohashPrecision > 12 {
		return fmt.Errorf("%w: tracking.geohash_precision must be between 1 and 12", models.ErrValidation)
	}
	if c.Tracking.PositionCacheTTL < 0 {
		return fmt.Errorf("%w: tracking.position_cache_ttl must not be negative", models.ErrValidation)
	}
	if c.NSQ.Enabled && c.NSQ.NSQDAddress == "" && len(c.NSQ.LookupdAddress) == 0 {
		return fmt.Errorf("%w: nsq enabled without nsqd or lookupd addresses", models.ErrValidation)
	}
	return nil
}

// Address returns the host:port the HTTP server listens on
func Address(c *models.Config) string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
