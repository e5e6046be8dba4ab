// Package config holds the simulator settings shared by the CLI and the
// servers.
package config

import (
	"fmt"
	"os"
	"time"

	"page-replacement-simulator/internal/engine"
	"page-replacement-simulator/internal/engine/policy"

	"gopkg.in/yaml.v3"
)

// Config holds the simulator configuration
type Config struct {
	// Default frame count for run and compare
	Frames int `yaml:"frames"`

	// Default policy for run
	Policy string `yaml:"policy"`

	// Pause between animated steps; 0 prints the trace at once
	StepDelay time.Duration `yaml:"step_delay"`

	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
	Cache  CacheConfig  `yaml:"cache"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
}

type ServerConfig struct {
	HTTPAddr string `yaml:"http_addr"`
	GRPCAddr string `yaml:"grpc_addr"`
}

// CacheConfig bounds the server's result cache.
type CacheConfig struct {
	Capacity int    `yaml:"capacity"` // 0 means unbounded
	Policy   string `yaml:"policy"`   // any online policy: FIFO, LRU, LFU, RANDOM
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Frames: 3,
		Policy: string(policy.FIFO),
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Server: ServerConfig{
			HTTPAddr: ":8080",
			GRPCAddr: ":50051",
		},
		Cache: CacheConfig{
			Capacity: 1024,
			Policy:   string(policy.LRU),
		},
	}
}

// LoadConfigFromFile reads YAML over the defaults, so a file only needs the
// keys it changes.
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	const op = "validate config"

	if c.Frames <= 0 {
		return engine.ErrInvalidCapacity(op, c.Frames)
	}
	if _, err := policy.ParseKind(c.Policy); err != nil {
		return engine.ErrUnknownPolicy(op, err)
	}
	if c.StepDelay < 0 {
		return engine.NewError(engine.ErrCodeInvalidConfiguration, op, "step_delay cannot be negative", nil)
	}
	if c.Cache.Capacity < 0 {
		return engine.NewError(engine.ErrCodeInvalidConfiguration, op, "cache capacity cannot be negative", nil)
	}
	if _, err := c.CachePolicy(); err != nil {
		return err
	}
	return nil
}

// CachePolicy returns the eviction policy for the result cache.
func (c *Config) CachePolicy() (policy.Kind, error) {
	kind, err := policy.ParseKind(c.Cache.Policy)
	if err != nil {
		return "", engine.ErrUnknownPolicy("cache policy", err)
	}
	if _, err := policy.NewOnline[string](kind); err != nil {
		return "", engine.NewError(engine.ErrCodeInvalidConfiguration, "cache policy", "result cache needs an online policy", err)
	}
	return kind, nil
}
