package main

import (
	"os"

	"todolist/internal/config"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// getEnvironment determines the current environment from TODO_ENV
func getEnvironment() Environment {
	switch os.Getenv("TODO_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		// Default to production for safety
		return Production
	}
}

// applyEnvironment points the database at the store for env. Production keeps the
// configured location. Flags applied later still win.
func applyEnvironment(cfg *config.Config, env Environment) {
	switch env {
	case Development:
		// Local database in the working directory
		cfg.Database.Dir = "."
		cfg.Database.Filename = "todo.db"
	case Testing:
		cfg.Database.Filename = config.MemoryDatabase
	}
}
