package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Redis    RedisConfig    `mapstructure:"redis"`
	NSQ      NSQConfig      `mapstructure:"nsq"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Tracking TrackingConfig `mapstructure:"tracking"`
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
	Version     string `mapstructure:"version"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	Enabled        bool     `mapstructure:"enabled"`
	NSQDAddress    string   `mapstructure:"nsqd_address"`
	LookupdAddress []string `mapstructure:"lookupd_addresses"`
	Channel        string   `mapstructure:"channel"`
	MaxAttempts    uint16   `mapstructure:"max_attempts"`
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	FilePath string `mapstructure:"file_path"`
	Type     string `mapstructure:"type"`
}

// TrackingConfig contains positioning and presence settings
type TrackingConfig struct {
	BreakStationIDs  []string      `mapstructure:"break_station_ids"`
	PositionCacheTTL time.Duration `mapstructure:"position_cache_ttl"`
	GeohashPrecision uint          `mapstructure:"geohash_precision"`

	// RateLimit caps ingestion requests per beacon and period; 0 disables it.
	RateLimit       int           `mapstructure:"rate_limit"`
	RateLimitPeriod time.Duration `mapstructure:"rate_limit_period"`
}
