// Package config loads the server configuration from YAML with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	CarbonAPI CarbonAPIConfig `yaml:"carbon_api"`
}

type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`

	// ReadTimeoutSeconds bounds request reads.
	ReadTimeoutSeconds int `yaml:"read_timeout_seconds"`

	// WriteTimeoutSeconds bounds response writes.
	WriteTimeoutSeconds int `yaml:"write_timeout_seconds"`

	// MaxFleetRows caps uploaded fleet CSV size.
	MaxFleetRows int `yaml:"max_fleet_rows"`

	// AllowedOrigins lists the origins browsers may call the API from.
	// Empty allows any origin.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type LogConfig struct {
	// Level is a zerolog level name: debug, info, warn, error.
	Level string `yaml:"level"`

	// Pretty switches to human-readable console output.
	Pretty bool `yaml:"pretty"`
}

type CarbonAPIConfig struct {
	// GridIntensityURL is the live grid intensity endpoint. Empty
	// disables live lookups.
	GridIntensityURL string `yaml:"grid_intensity_url"`

	// DeviceFootprintURL is the live device footprint endpoint. Empty
	// disables live lookups.
	DeviceFootprintURL string `yaml:"device_footprint_url"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:                ":8080",
			ReadTimeoutSeconds:  15,
			WriteTimeoutSeconds: 30,
			MaxFleetRows:        50000,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the YAML file at path, applies environment overrides and
// validates the result. An empty path loads defaults plus environment
// overrides only.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(raw, c); err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", path, err)
		}
	}
	c.applyEnv()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// applyEnv lets deployment environments override file settings.
func (c *Config) applyEnv() {
	if v := os.Getenv("ECOCYCLE_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("ECOCYCLE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("ECOCYCLE_LOG_PRETTY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Log.Pretty = b
		}
	}
	if v := os.Getenv("ECOCYCLE_GRID_INTENSITY_URL"); v != "" {
		c.CarbonAPI.GridIntensityURL = v
	}
	if v := os.Getenv("ECOCYCLE_DEVICE_FOOTPRINT_URL"); v != "" {
		c.CarbonAPI.DeviceFootprintURL = v
	}
	if v := os.Getenv("ECOCYCLE_MAX_FLEET_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Server.MaxFleetRows = n
		}
	}
	if v := os.Getenv("ECOCYCLE_ALLOWED_ORIGINS"); v != "" {
		c.Server.AllowedOrigins = strings.Split(v, ",")
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	if c.Server.ReadTimeoutSeconds <= 0 || c.Server.WriteTimeoutSeconds <= 0 {
		return errors.New("server timeouts must be positive")
	}
	if c.Server.MaxFleetRows <= 0 {
		return errors.New("server.max_fleet_rows must be positive")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
