// Package config holds the runtime configuration, sourced from environment
// variables with development-friendly defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application.
type Config struct {
	// ServerHost is the bind address; empty means all interfaces.
	ServerHost string
	// ServerPort is the listen port.
	ServerPort string
	// DatasetPath points at the recipe dataset JSON file.
	DatasetPath string
}

// Load creates a Config from environment variables, falling back to the
// defaults used in development.
func Load() (*Config, error) {
	cfg := &Config{
		ServerHost:  os.Getenv("SERVER_HOST"),
		ServerPort:  getEnv("SERVER_PORT", "5000"),
		DatasetPath: getEnv("DATASET_PATH", "data/receitas_completo.json"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for values that would fail at bind time.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.ServerPort)
	if err != nil {
		return fmt.Errorf("SERVER_PORT %q is not a number", c.ServerPort)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("SERVER_PORT %d is out of range", port)
	}
	if c.DatasetPath == "" {
		return fmt.Errorf("DATASET_PATH must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
