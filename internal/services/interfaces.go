package services

import (
	"context"
	"time"

	"todolist/internal/domain"
	"todolist/internal/remote"
)

// TaskService is the task store: every operation commits before it returns
type TaskService interface {
	// Read operations
	FetchAll(ctx context.Context) ([]domain.Task, error)
	GetTask(ctx context.Context, id string) (*domain.Task, error)

	// Mutations
	CreateTask(ctx context.Context, name, description string, isCompleted bool) (*domain.Task, error)
	UpdateTask(ctx context.Context, id, name, description string) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
	ToggleCompleted(ctx context.Context, id string) (*domain.Task, error)
}

// TodoSource supplies sample records for seeding
type TodoSource interface {
	FetchTodos(ctx context.Context) ([]remote.Todo, error)
}

// SeedResult summarises one seeding attempt. Err is informational; seeding never fails its caller.
type SeedResult struct {
	Skipped  bool  `json:"skipped"`
	Fetched  int   `json:"fetched"`
	Imported int   `json:"imported"`
	Failed   int   `json:"failed"`
	Err      error `json:"-"`
}

// SeedService imports sample tasks into an empty store
type SeedService interface {
	SeedIfEmpty(ctx context.Context) SeedResult
}

// Clock returns the current time
type Clock func() time.Time

// IDGenerator returns a fresh, unique task ID
type IDGenerator func() string

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TaskService TaskService
	SeedService SeedService
}
