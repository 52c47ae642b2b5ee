// Package config loads the service configuration. Layers apply in order,
// later ones winning: built-in defaults, configs/base.yaml,
// configs/{profile}.yaml, then APP_* environment variables.
package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root of the koanf tree.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Clock     ClockConfig     `koanf:"clock"`
	Batch     BatchConfig     `koanf:"batch"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig configures the HTTP listener and per-request limits.
// A zero RequestTimeout leaves requests unbounded.
type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`

	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr is the host:port the server listens on.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClockConfig pins "now" when FixedNow is set, as RFC 3339 or YYYY-MM-DD.
type ClockConfig struct {
	FixedNow string `koanf:"fixed_now"`
}

// BatchConfig bounds POST /api/v1/age/batch.
type BatchConfig struct {
	MaxItems int `koanf:"max_items"`
	Workers  int `koanf:"workers"`
}

// TelemetryConfig selects the OpenTelemetry exporter. Endpoint is used by
// the otlp exporter only.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	ServiceName string `koanf:"service_name"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
}
