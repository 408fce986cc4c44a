package config

import (
	"fmt"
	"os"

	"todolist/internal/repository/sqlite"
)

// MemoryDatabase is the filename that selects an in-memory store
const MemoryDatabase = ":memory:"

// CreateRepository creates a repository instance using the configuration system
func CreateRepository(config *Config) (sqlite.Repository, error) {
	opts := sqlite.Options{
		QueryTimeout: config.GetQueryTimeout(),
		WriteTimeout: config.GetWriteTimeout(),
	}

	if config.Database.Filename == MemoryDatabase {
		return openRepository(MemoryDatabase, opts)
	}

	if err := os.MkdirAll(config.Database.Dir, os.FileMode(config.Database.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create database directory %s: %w", config.Database.Dir, err)
	}

	return openRepository(config.GetDatabasePath(), opts)
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (sqlite.Repository, error) {
	return openRepository(MemoryDatabase, sqlite.Options{})
}

func openRepository(path string, opts sqlite.Options) (sqlite.Repository, error) {
	repo, err := sqlite.NewWithOptions(path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return repo, nil
}
