package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config   *Config
	envFiles []string
}

// NewLoader creates a new configuration loader that also reads ./.env when present
func NewLoader() *Loader {
	return NewLoaderWithEnvFiles(".env")
}

// NewLoaderWithEnvFiles creates a loader reading the given dotenv files
func NewLoaderWithEnvFiles(files ...string) *Loader {
	return &Loader{
		config:   NewConfig(),
		envFiles: files,
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Fill unset environment variables from dotenv files
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	// Step 1: Start with defaults (already done in NewConfig)

	// Step 2: dotenv files never override variables already in the environment
	if err := l.loadEnvFiles(); err != nil {
		return nil, err
	}

	// Step 3: Load from environment variables
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		ApplyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (l *Loader) loadEnvFiles() error {
	for _, file := range l.envFiles {
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Database overrides
	DBDir          *string
	DBFilename     *string
	DBQueryTimeout *time.Duration
	DBWriteTimeout *time.Duration

	// Seed overrides
	SeedEnabled *bool
	SeedURL     *string
	SeedTimeout *time.Duration

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
	LogFile *string
}

// ApplyOverrides applies command line overrides to the configuration
func ApplyOverrides(config *Config, overrides *ConfigOverrides) {
	// Database overrides
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}
	if overrides.DBQueryTimeout != nil {
		config.Database.QueryTimeout = *overrides.DBQueryTimeout
	}
	if overrides.DBWriteTimeout != nil {
		config.Database.WriteTimeout = *overrides.DBWriteTimeout
	}

	// Seed overrides
	if overrides.SeedEnabled != nil {
		config.Seed.Enabled = *overrides.SeedEnabled
	}
	if overrides.SeedURL != nil {
		config.Seed.URL = *overrides.SeedURL
	}
	if overrides.SeedTimeout != nil {
		config.Seed.Timeout = *overrides.SeedTimeout
	}

	// Application overrides
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
	if overrides.LogFile != nil {
		config.Application.LogFile = *overrides.LogFile
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
