package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"todolist/internal/config"
	"todolist/internal/domain"
	"todolist/internal/errors"
	"todolist/internal/repository/sqlite"
	"todolist/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
	now           Clock
	newID         IDGenerator
}

// NewTaskService creates a new TaskService instance. A nil config uses default validation limits.
func NewTaskService(repo sqlite.Repository, cfg *config.Config) TaskService {
	validator := validation.NewTaskValidator()
	if cfg != nil {
		validator = validation.NewTaskValidatorWithConfig(cfg)
	}
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validator,
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

// validateID rejects a blank ID before any lookup
func (t *taskServiceImpl) validateID(id string) error {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return errors.NewValidationError("invalid task ID", err)
	}
	return nil
}

func (t *taskServiceImpl) toDomain(dbTask *sqlite.Task) *domain.Task {
	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	return &domainTask
}

// FetchAll returns every persisted task in store order
func (t *taskServiceImpl) FetchAll(ctx context.Context) ([]domain.Task, error) {
	dbTasks, err := t.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return t.mapper.Task.FromDatabasePtrSlice(dbTasks), nil
}

// GetTask retrieves a task by its ID
func (t *taskServiceImpl) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	if err := t.validateID(id); err != nil {
		return nil, err
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	return t.toDomain(dbTask), nil
}

// CreateTask assigns a fresh ID and creation time, persists the task and returns the stored value
func (t *taskServiceImpl) CreateTask(ctx context.Context, name, description string, isCompleted bool) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskForCreation(name, description); err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}

	task := domain.NewTask(name, description, isCompleted)
	task.ID = t.newID()
	// Round(0) drops the monotonic reading so the value compares equal after a round trip.
	task.CreatedAt = t.now().UTC().Round(0)

	dbTask := t.mapper.Task.ToDatabase(task)
	if err := t.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	return &task, nil
}

// UpdateTask replaces a task's name and description. Fields are validated before the lookup.
func (t *taskServiceImpl) UpdateTask(ctx context.Context, id, name, description string) (*domain.Task, error) {
	if err := t.validateID(id); err != nil {
		return nil, err
	}
	if err := t.taskValidator.ValidateTaskForCreation(name, description); err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}

	dbTask, err := t.repo.UpdateTask(ctx, id, name, description)
	if err != nil {
		return nil, err
	}
	return t.toDomain(dbTask), nil
}

// DeleteTask removes a task. Deleting an unknown ID is a NotFound error.
func (t *taskServiceImpl) DeleteTask(ctx context.Context, id string) error {
	if err := t.validateID(id); err != nil {
		return err
	}
	return t.repo.DeleteTask(ctx, id)
}

// ToggleCompleted flips the completion flag and returns the stored value
func (t *taskServiceImpl) ToggleCompleted(ctx context.Context, id string) (*domain.Task, error) {
	if err := t.validateID(id); err != nil {
		return nil, err
	}

	dbTask, err := t.repo.ToggleTaskCompleted(ctx, id)
	if err != nil {
		return nil, err
	}
	return t.toDomain(dbTask), nil
}
