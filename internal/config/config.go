// Package config loads the ledgerwatch runtime configuration from the
// environment. All variables share the LEDGERWATCH_ prefix, e.g.
// LEDGERWATCH_LEDGER_ENDPOINT.
package config

import (
	"time"

	"github.com/gabapcia/ledgerwatch/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces every environment variable read by Load.
const envPrefix = "ledgerwatch"

// Redis holds the connection settings for the notification publisher.
type Redis struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379" validate:"required"`
	Username string `envconfig:"REDIS_USERNAME"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// Config is the full runtime configuration of the ledgerwatch process.
type Config struct {
	// LogLevel sets the minimum level of the global logger.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"required"`

	// TelemetryEnabled toggles the OpenTelemetry pipelines. Exporter
	// endpoints follow the standard OTEL_* variables.
	TelemetryEnabled bool `envconfig:"TELEMETRY_ENABLED" default:"false"`

	// LedgerEndpoint is the JSON-RPC URL of the ledger node to poll.
	LedgerEndpoint string `envconfig:"LEDGER_ENDPOINT" validate:"required,url"`

	// PollInterval overrides the poll period. When zero, the period is
	// derived from the ledger's own block interval.
	PollInterval time.Duration `envconfig:"POLL_INTERVAL"`

	Redis Redis
}

// Load reads and validates the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
