// Package config handles bfvm.toml interpreter configuration.
package config

import (
	"fmt"
	"os"

	"rgehrsitz/bfvm/internal/runtime"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// Config represents a bfvm.toml file.
type Config struct {
	VM   VMConfig   `toml:"vm"`
	Log  LogConfig  `toml:"log"`
	Dump DumpConfig `toml:"dump"`
}

// VMConfig configures the interpreter.
type VMConfig struct {
	MemorySize int `toml:"memory_size"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// DumpConfig configures what is written after a run.
type DumpConfig struct {
	Enabled  bool   `toml:"enabled"`
	Snapshot string `toml:"snapshot"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		VM:  VMConfig{MemorySize: runtime.DefaultMemorySize},
		Log: LogConfig{Level: zerolog.InfoLevel.String()},
	}
}

// Load parses the TOML file at path on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c := Default()
	if _, err := toml.Decode(string(data), c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.VM.MemorySize <= 0 {
		return fmt.Errorf("memory_size must be positive, got %d", c.VM.MemorySize)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}
