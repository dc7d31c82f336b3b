package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the relay server's runtime settings. Everything is
// environment-supplied; there is no config file.
type Config struct {
	// Host is the interface to bind; empty means all interfaces.
	Host string `env:"HOST"`

	// Port is the TCP port serving both HTTP and WebSocket traffic.
	Port int `env:"PORT" envDefault:"3000"`

	// PingInterval is the period of the liveness sweep. A connection
	// that misses a ping is closed on the following sweep.
	PingInterval time.Duration `env:"PING_INTERVAL" envDefault:"30s"`

	// Debug enables verbose logging with source locations.
	Debug bool `env:"DEBUG" envDefault:"false"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.PingInterval <= 0 {
		return Config{}, fmt.Errorf("ping interval must be positive, got %s", cfg.PingInterval)
	}
	return cfg, nil
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
