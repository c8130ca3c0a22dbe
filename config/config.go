package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Booking  BookingConfig  `yaml:"booking"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

// BookingConfig holds the reservation engine configuration.
type BookingConfig struct {
	StorageTimeoutSeconds int           `yaml:"storage_timeout_seconds"`
	StorageTimeout        time.Duration `yaml:"-"` // Ignored by YAML parser
	HistoryWorkers        int           `yaml:"history_workers"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 300
	}

	if cfg.Booking.StorageTimeoutSeconds <= 0 {
		cfg.Booking.StorageTimeoutSeconds = 5
	}
	cfg.Booking.StorageTimeout = time.Duration(cfg.Booking.StorageTimeoutSeconds) * time.Second

	if cfg.Booking.HistoryWorkers <= 0 {
		log.Printf("booking.history_workers is not set or invalid; defaulting to 1")
		cfg.Booking.HistoryWorkers = 1
	}

	return &cfg, nil
}
