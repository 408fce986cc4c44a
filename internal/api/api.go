package api

import (
	"context"
	"strings"
	"time"

	"todolist/internal/config"
	"todolist/internal/domain"
	"todolist/internal/errors"
	"todolist/internal/logging"
	"todolist/internal/repository/sqlite"
	"todolist/internal/services"
)

// API is what presenters depend on: snapshot reads, task intents and seeding.
// Failed calls whose errors point at the system rather than the input are logged here.
type API interface {
	// Reads
	FetchAll(ctx context.Context) (domain.Snapshot, error)
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	ResolveTaskID(ctx context.Context, ref string) (string, error)

	// Intents
	CreateTask(ctx context.Context, name, description string, isCompleted bool) (*domain.Task, error)
	UpdateTask(ctx context.Context, id, name, description string) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
	ToggleTaskCompleted(ctx context.Context, id string) (*domain.Task, error)

	// Seeding
	SeedIfEmpty(ctx context.Context) services.SeedResult
}

type apiImpl struct {
	tasks  services.TaskService
	seeder services.SeedService
	now    func() time.Time
}

// New creates a new API instance over the given services
func New(container *services.ServiceContainer) API {
	return &apiImpl{
		tasks:  container.TaskService,
		seeder: container.SeedService,
		now:    time.Now,
	}
}

// NewFromRepository wires the default services over repo
func NewFromRepository(repo sqlite.Repository, cfg *config.Config) API {
	return New(services.NewServiceContainer(repo, cfg))
}

func logFailure(operation string, err error) {
	if err != nil && errors.ShouldLogError(err) {
		logging.Errorf("%s: %v", operation, err)
	}
}

// FetchAll returns an immutable snapshot of every task
func (a *apiImpl) FetchAll(ctx context.Context) (domain.Snapshot, error) {
	tasks, err := a.tasks.FetchAll(ctx)
	if err != nil {
		logFailure("fetch tasks", err)
		return domain.Snapshot{}, err
	}
	return domain.NewSnapshot(tasks, a.now()), nil
}

func (a *apiImpl) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	task, err := a.tasks.GetTask(ctx, id)
	logFailure("get task", err)
	return task, err
}

func (a *apiImpl) CreateTask(ctx context.Context, name, description string, isCompleted bool) (*domain.Task, error) {
	task, err := a.tasks.CreateTask(ctx, name, description, isCompleted)
	logFailure("create task", err)
	return task, err
}

func (a *apiImpl) UpdateTask(ctx context.Context, id, name, description string) (*domain.Task, error) {
	task, err := a.tasks.UpdateTask(ctx, id, name, description)
	logFailure("update task", err)
	return task, err
}

func (a *apiImpl) DeleteTask(ctx context.Context, id string) error {
	err := a.tasks.DeleteTask(ctx, id)
	logFailure("delete task", err)
	return err
}

func (a *apiImpl) ToggleTaskCompleted(ctx context.Context, id string) (*domain.Task, error) {
	task, err := a.tasks.ToggleCompleted(ctx, id)
	logFailure("toggle task", err)
	return task, err
}

// SeedIfEmpty runs the seeder. The seeder logs its own failures.
func (a *apiImpl) SeedIfEmpty(ctx context.Context) services.SeedResult {
	return a.seeder.SeedIfEmpty(ctx)
}

// ResolveTaskID expands ref to a full task ID. An exact match wins; otherwise ref must be
// the prefix of exactly one ID.
func (a *apiImpl) ResolveTaskID(ctx context.Context, ref string) (string, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return "", errors.NewValidationError("task ID is required", nil)
	}

	tasks, err := a.tasks.FetchAll(ctx)
	if err != nil {
		logFailure("resolve task ID", err)
		return "", err
	}

	var matches []string
	for _, task := range tasks {
		id := strings.ToLower(task.ID)
		if id == ref {
			return task.ID, nil
		}
		if strings.HasPrefix(id, ref) {
			matches = append(matches, task.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", errors.NewNotFoundError("task", ref)
	case 1:
		return matches[0], nil
	default:
		return "", errors.NewInvalidInputError("id", ref, "prefix matches more than one task").
			WithContext("matches", len(matches))
	}
}
