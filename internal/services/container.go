package services

import (
	"todolist/internal/config"
	"todolist/internal/remote"
	"todolist/internal/repository/sqlite"
)

// NewServiceContainer wires the task store and the seeder over one repository
func NewServiceContainer(repo sqlite.Repository, cfg *config.Config) *ServiceContainer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	taskService := NewTaskService(repo, cfg)
	source := remote.NewClient(cfg.Seed.URL, cfg.Seed.Timeout, cfg.Seed.MaxBodyBytes)

	return &ServiceContainer{
		TaskService: taskService,
		SeedService: NewSeedService(taskService, source),
	}
}
