package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"library-service/internal/shared/utils"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App    AppConfig
	Cache  CacheConfig
	Broker BrokerConfig
	Job    JobConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	APIPrefix   string
}

type CacheConfig struct {
	URL        string // redis connection string for the cache backend
	Prefix     string // key prefix, e.g. "library-cache"
	DefaultTTL time.Duration
}

// BrokerConfig points the worker and scheduler at the task broker.
// ResultBackendURL defaults to the broker URL when not set explicitly;
// asynq keeps task state in the broker Redis either way.
type BrokerConfig struct {
	URL              string
	ResultBackendURL string
}

type JobConfig struct {
	ArchiveYears    int
	ArchiveInterval time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        utils.GetEnvVariable("PROJECT_NAME", "Library Service"),
			Environment: utils.GetEnvVariable("ENVIRONMENT", "development"),
			Port:        utils.GetEnvVariable("APP_PORT", "8080"),
			APIPrefix:   utils.GetEnvVariable("API_PREFIX", "/api/v1"),
		},
		Cache: CacheConfig{
			URL:        utils.GetEnvVariable("REDIS_URL", "redis://localhost:6379/0"),
			Prefix:     utils.GetEnvVariable("CACHE_PREFIX", "library-cache"),
			DefaultTTL: time.Duration(getEnvInt("CACHE_DEFAULT_EXPIRE_SECONDS", 300)) * time.Second,
		},
		Broker: BrokerConfig{
			URL:              utils.GetEnvVariable("BROKER_URL", "redis://localhost:6379/1"),
			ResultBackendURL: utils.GetEnvVariable("RESULT_BACKEND_URL", ""),
		},
		Job: JobConfig{
			ArchiveYears:    getEnvInt("ARCHIVE_YEARS", 10),
			ArchiveInterval: time.Duration(getEnvInt("ARCHIVE_INTERVAL_MINUTES", 30)) * time.Minute,
		},
	}

	// Reuse the broker for results when no explicit backend is set.
	if cfg.Broker.ResultBackendURL == "" {
		cfg.Broker.ResultBackendURL = cfg.Broker.URL
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Cache.DefaultTTL <= 0 {
		return fmt.Errorf("CACHE_DEFAULT_EXPIRE_SECONDS must be positive")
	}
	if c.Job.ArchiveYears <= 0 {
		return fmt.Errorf("ARCHIVE_YEARS must be positive")
	}
	if c.Job.ArchiveInterval <= 0 {
		return fmt.Errorf("ARCHIVE_INTERVAL_MINUTES must be positive")
	}
	return nil
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
