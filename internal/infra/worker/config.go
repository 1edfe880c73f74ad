// Package worker holds the operational plumbing of the ingestion
// worker: its configuration, Prometheus metrics, and health endpoints.
package worker

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"gamepulse/pkg/config"
)

// Config controls the ingestion worker's schedule and operational limits.
type Config struct {
	// CronSchedule is the cron expression for ingestion runs.
	// Default: every six hours.
	CronSchedule string

	// Timezone is the IANA timezone name for cron scheduling.
	Timezone string

	// RunTimeout is the maximum duration of a single ingestion run.
	RunTimeout time.Duration

	// HealthPort is the port for the worker's health/metrics HTTP server.
	HealthPort int

	// FeedsPath is the YAML file listing RSS sources.
	FeedsPath string
}

// DefaultConfig returns production-ready worker defaults.
func DefaultConfig() Config {
	return Config{
		CronSchedule: "0 */6 * * *",
		Timezone:     "UTC",
		RunTimeout:   10 * time.Minute,
		HealthPort:   9091,
		FeedsPath:    "configs/feeds.yaml",
	}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(c.CronSchedule); err != nil {
		return fmt.Errorf("cron schedule: %w", err)
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}

	if c.RunTimeout <= 0 {
		return fmt.Errorf("run timeout must be positive, got %v", c.RunTimeout)
	}

	if c.HealthPort < 1024 || c.HealthPort > 65535 {
		return fmt.Errorf("health port must be between 1024 and 65535, got %d", c.HealthPort)
	}

	return nil
}

// LoadConfigFromEnv loads the worker configuration from environment
// variables, falling back to defaults for unset or invalid values.
//
// Environment variables:
//   - CRON_SCHEDULE: cron expression (default: "0 */6 * * *")
//   - WORKER_TIMEZONE: IANA timezone name (default: "UTC")
//   - INGEST_TIMEOUT: duration string, e.g. "10m"
//   - WORKER_HEALTH_PORT: integer 1024-65535 (default: 9091)
//   - FEEDS_CONFIG: path to the feeds YAML file
func LoadConfigFromEnv() (Config, error) {
	defaults := DefaultConfig()

	cfg := Config{
		CronSchedule: config.GetEnvString("CRON_SCHEDULE", defaults.CronSchedule),
		Timezone:     config.GetEnvString("WORKER_TIMEZONE", defaults.Timezone),
		RunTimeout:   config.GetEnvDuration("INGEST_TIMEOUT", defaults.RunTimeout),
		HealthPort:   config.GetEnvInt("WORKER_HEALTH_PORT", defaults.HealthPort),
		FeedsPath:    config.GetEnvString("FEEDS_CONFIG", defaults.FeedsPath),
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("worker configuration: %w", err)
	}

	return cfg, nil
}
