package config

import (
	"errors"
	"os"
	"time"
)

const (
	AdapterPostgres = "postgres"
	AdapterSqlite   = "sqlite"
)

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type AppConfig struct {
	Environment string
	Port        string

	DatabaseAdapter string
	DatabaseURL     string
	DatabasePath    string

	RedisURL string

	EnforceHTTPS bool

	RateLimitEnabled bool
	RateLimitConfigs map[string]RateLimitConfig
}

// Load reads process configuration from the environment. A missing
// DATABASE_URL on the postgres adapter is a hard error: the caller must
// refuse to start.
func Load() (*AppConfig, error) {
	cfg := GetDefaultConfig()

	if env := os.Getenv("ENVIRONMENT"); env != "" {
		cfg.Environment = env
	}

	if os.Getenv("GIN_MODE") == "release" {
		cfg.Environment = "production"
		cfg.EnforceHTTPS = true
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	if adapter := os.Getenv("DATABASE_ADAPTER"); adapter != "" {
		cfg.DatabaseAdapter = adapter
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.RedisURL = os.Getenv("REDIS_URL")

	if path := os.Getenv("DATABASE_PATH"); path != "" {
		cfg.DatabasePath = path
	}

	if os.Getenv("RATE_LIMIT_DISABLED") == "true" {
		cfg.RateLimitEnabled = false
	}

	if cfg.DatabaseAdapter == AdapterPostgres && cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	return cfg, nil
}

func GetDefaultConfig() *AppConfig {
	return &AppConfig{
		Environment:     "development",
		Port:            "8080",
		DatabaseAdapter: AdapterPostgres,
		DatabasePath:    "database.db",
		EnforceHTTPS:    false,

		RateLimitEnabled: true,
		RateLimitConfigs: map[string]RateLimitConfig{
			"/auth/signup": {
				Requests: 5,
				Window:   time.Minute,
			},
			"/auth/login": {
				Requests: 10,
				Window:   time.Minute,
			},
			"/todos": {
				Requests: 100,
				Window:   time.Minute,
			},
		},
	}
}
