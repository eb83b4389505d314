// Package config loads the process configuration from environment variables.
// Scheduling injects the credentials as secrets; any required value that is
// absent is a fatal startup error reported before the first remote call.
package config

import (
	"time"

	"github.com/kevinosminski/crypto-notion-tracker/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the process needs for one run.
type Config struct {
	// WalletAddress is the watched account, shared across both networks.
	WalletAddress string `envconfig:"WALLET_ADDRESS" default:"0x7C2D3d3C10C21d0c5BabE101Bf30aED822f227d6" validate:"required"`

	// Datastore credentials.
	NotionToken      string `envconfig:"NOTION_TOKEN" validate:"required"`
	NotionDatabaseID string `envconfig:"NOTION_DB_ID" validate:"required"`

	// Per-network explorer API keys.
	EtherscanAPIKey   string `envconfig:"ETHERSCAN_API_KEY" validate:"required"`
	PolygonscanAPIKey string `envconfig:"POLYGONSCAN_API_KEY" validate:"required"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Remote call bounds shared by all HTTP clients.
	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	HTTPRetryMax int           `envconfig:"HTTP_RETRY_MAX" default:"2"`

	// Optional idempotency store. When RedisAddr is empty, runs re-submit the
	// latest explorer window every time.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// TelemetryEnabled turns on the OTLP trace and metric exporters.
	TelemetryEnabled bool `envconfig:"TELEMETRY_ENABLED" default:"false"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
