package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/agecalc/internal/platform/clock"
)

// Validate checks every section and joins all problems into one error.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Clock.validate(),
		c.Batch.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error
	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	errs = append(errs,
		positive("server.read_timeout", s.ReadTimeout),
		positive("server.write_timeout", s.WriteTimeout),
		notNegative("server.request_timeout", s.RequestTimeout),
		notNegative("server.shutdown_timeout", s.ShutdownTimeout),
	)
	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	return errors.Join(
		oneOf("log.level", l.Level, "debug", "info", "warn", "error"),
		oneOf("log.format", l.Format, "json", "text"),
	)
}

func (c *ClockConfig) validate() error {
	if c.FixedNow == "" {
		return nil
	}
	if _, err := clock.Parse(c.FixedNow); err != nil {
		return fmt.Errorf("clock.fixed_now: %w", err)
	}
	return nil
}

func (b *BatchConfig) validate() error {
	var errs []error
	if b.MaxItems < 1 {
		errs = append(errs, fmt.Errorf("batch.max_items must be >= 1, got %d", b.MaxItems))
	}
	if b.Workers < 1 {
		errs = append(errs, fmt.Errorf("batch.workers must be >= 1, got %d", b.Workers))
	}
	return errors.Join(errs...)
}

// Exporter settings are only checked when telemetry is on.
func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}
	err := oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
	if t.Exporter == "otlp" && t.Endpoint == "" {
		err = errors.Join(err, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	return err
}

func oneOf(key, got string, allowed ...string) error {
	if slices.Contains(allowed, got) {
		return nil
	}
	return fmt.Errorf("%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), got)
}

func positive(key string, d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%s must be positive", key)
	}
	return nil
}

func notNegative(key string, d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("%s must not be negative", key)
	}
	return nil
}
