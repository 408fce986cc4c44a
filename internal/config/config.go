package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the to-do list application
type Config struct {
	Database    DatabaseConfig
	Validation  ValidationConfig
	Seed        SeedConfig
	Display     DisplayConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TODO_DB_DIR"`
	Filename       string        `env:"TODO_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"TODO_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TODO_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"TODO_DB_DIR_PERMISSIONS"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	NameMaxLength        int `env:"TODO_VALIDATION_NAME_MAX"`
	DescriptionMaxLength int `env:"TODO_VALIDATION_DESCRIPTION_MAX"`
}

// SeedConfig controls the one-time import of sample tasks
type SeedConfig struct {
	Enabled      bool          `env:"TODO_SEED_ENABLED"`
	URL          string        `env:"TODO_SEED_URL"`
	Timeout      time.Duration `env:"TODO_SEED_TIMEOUT"`
	MaxBodyBytes int64         `env:"TODO_SEED_MAX_BODY_BYTES"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TimeFormat string `env:"TODO_TIME_DISPLAY_FORMAT"`
	IDLength   int    `env:"TODO_DISPLAY_ID_LENGTH"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TODO_APP_TIMEOUT"`
	Verbose bool          `env:"TODO_APP_VERBOSE"`
	LogFile string        `env:"TODO_LOG_FILE"`
}

// DefaultSeedURL is the public endpoint sample tasks are imported from.
const DefaultSeedURL = "https://dummyjson.com/todos"

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".todo")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "todo.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			NameMaxLength:        255,
			DescriptionMaxLength: 4096,
		},
		Seed: SeedConfig{
			Enabled:      true,
			URL:          DefaultSeedURL,
			Timeout:      10 * time.Second,
			MaxBodyBytes: 1 << 20,
		},
		Display: DisplayConfig{
			TimeFormat: "2006-01-02 15:04",
			IDLength:   8,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("TODO_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TODO_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TODO_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Database.QueryTimeout = ParseDurationWithFallback(timeout, c.Database.QueryTimeout)
	}
	if timeout := os.Getenv("TODO_DB_WRITE_TIMEOUT"); timeout != "" {
		c.Database.WriteTimeout = ParseDurationWithFallback(timeout, c.Database.WriteTimeout)
	}
	if perms := os.Getenv("TODO_DB_DIR_PERMISSIONS"); perms != "" {
		c.Database.DirPermissions = ParseUint32WithFallback(perms, 8, c.Database.DirPermissions)
	}

	// Validation configuration
	if maxLen := os.Getenv("TODO_VALIDATION_NAME_MAX"); maxLen != "" {
		c.Validation.NameMaxLength = ParseIntWithFallback(maxLen, c.Validation.NameMaxLength)
	}
	if maxLen := os.Getenv("TODO_VALIDATION_DESCRIPTION_MAX"); maxLen != "" {
		c.Validation.DescriptionMaxLength = ParseIntWithFallback(maxLen, c.Validation.DescriptionMaxLength)
	}

	// Seed configuration
	if enabled := os.Getenv("TODO_SEED_ENABLED"); enabled != "" {
		c.Seed.Enabled = ParseBoolWithFallback(enabled, c.Seed.Enabled)
	}
	if url := os.Getenv("TODO_SEED_URL"); url != "" {
		c.Seed.URL = url
	}
	if timeout := os.Getenv("TODO_SEED_TIMEOUT"); timeout != "" {
		c.Seed.Timeout = ParseDurationWithFallback(timeout, c.Seed.Timeout)
	}
	if maxBytes := os.Getenv("TODO_SEED_MAX_BODY_BYTES"); maxBytes != "" {
		if n, err := strconv.ParseInt(maxBytes, 10, 64); err == nil {
			c.Seed.MaxBodyBytes = n
		}
	}

	// Display configuration
	if format := os.Getenv("TODO_TIME_DISPLAY_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}
	if idLen := os.Getenv("TODO_DISPLAY_ID_LENGTH"); idLen != "" {
		c.Display.IDLength = ParseIntWithFallback(idLen, c.Display.IDLength)
	}

	// Application configuration
	if timeout := os.Getenv("TODO_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("TODO_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}
	if logFile := os.Getenv("TODO_LOG_FILE"); logFile != "" {
		c.Application.LogFile = logFile
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate validation configuration
	if c.Validation.NameMaxLength < 1 {
		return &ConfigError{Field: "validation.name_max_length", Message: "name maximum length must be at least 1"}
	}
	if c.Validation.DescriptionMaxLength < 1 {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length must be at least 1"}
	}

	// Validate seed configuration
	if c.Seed.Enabled && c.Seed.URL == "" {
		return &ConfigError{Field: "seed.url", Message: "seed URL cannot be empty while seeding is enabled"}
	}
	if c.Seed.Timeout <= 0 {
		return &ConfigError{Field: "seed.timeout", Message: "seed timeout must be positive"}
	}
	if c.Seed.MaxBodyBytes <= 0 {
		return &ConfigError{Field: "seed.max_body_bytes", Message: "seed body limit must be positive"}
	}

	// Validate display configuration
	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}
	if c.Display.IDLength < 4 {
		return &ConfigError{Field: "display.id_length", Message: "displayed id length must be at least 4"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
