package worker

import (
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad cron", func(c *Config) { c.CronSchedule = "not a schedule" }},
		{"bad timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }},
		{"zero timeout", func(c *Config) { c.RunTimeout = 0 }},
		{"privileged port", func(c *Config) { c.HealthPort = 80 }},
		{"port out of range", func(c *Config) { c.HealthPort = 70000 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CRON_SCHEDULE", "15 3 * * *")
	t.Setenv("WORKER_TIMEZONE", "Europe/Berlin")
	t.Setenv("INGEST_TIMEOUT", "5m")
	t.Setenv("WORKER_HEALTH_PORT", "9100")

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv: %v", err)
	}

	if cfg.CronSchedule != "15 3 * * *" {
		t.Errorf("schedule = %q", cfg.CronSchedule)
	}
	if cfg.Timezone != "Europe/Berlin" {
		t.Errorf("timezone = %q", cfg.Timezone)
	}
	if cfg.RunTimeout != 5*time.Minute {
		t.Errorf("timeout = %v", cfg.RunTimeout)
	}
	if cfg.HealthPort != 9100 {
		t.Errorf("health port = %d", cfg.HealthPort)
	}
}

func TestLoadConfigFromEnv_InvalidScheduleFails(t *testing.T) {
	t.Setenv("CRON_SCHEDULE", "every now and then")

	if _, err := LoadConfigFromEnv(); err == nil {
		t.Fatal("expected error for invalid schedule")
	}
}
