// Package config loads application configuration from environment variables.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the server process.
type Config struct {
	Port string `env:"PORT, default=8080"`

	// Database settings
	DBHost string `env:"DB_HOST, default=localhost"`
	DBPort string `env:"DB_PORT, default=5432"`
	DBUser string `env:"DB_USER, default=postgres"`
	DBPass string `env:"DB_PASS"`
	DBName string `env:"DB_NAME, default=job360"`

	// Redis settings
	RedisAddr string `env:"REDIS_ADDR, default=localhost:6379"`
	RedisPass string `env:"REDIS_PASS"`

	// Counter reconciliation: worker count and how long each blocking
	// dequeue waits before rechecking for shutdown.
	ReconcileWorkers  int           `env:"RECONCILE_WORKERS, default=1"`
	ReconcileInterval time.Duration `env:"RECONCILE_INTERVAL, default=5s"`

	LogLevel string `env:"LOG_LEVEL, default=info"`
}

// Load reads configuration from the environment.
func Load(ctx context.Context) (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process(ctx, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// DSN returns the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName)
}
