package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"todolist/internal/api"
	"todolist/internal/config"
	"todolist/internal/domain"
	"todolist/internal/errors"
	"todolist/internal/services"
	"todolist/internal/validation"
)

// mockAPI implements the API interface over a map for testing
type mockAPI struct {
	tasks     map[string]*domain.Task
	order     []string
	nextID    int
	validator *validation.TaskValidator

	seedResult services.SeedResult
	seedCalls  int
	fetchErr   error
}

// newMockAPI creates a new mock API instance
func newMockAPI() *mockAPI {
	return &mockAPI{
		tasks:     make(map[string]*domain.Task),
		nextID:    1,
		validator: validation.NewTaskValidator(),
	}
}

var _ api.API = (*mockAPI)(nil)

func (m *mockAPI) FetchAll(ctx context.Context) (domain.Snapshot, error) {
	if m.fetchErr != nil {
		return domain.Snapshot{}, m.fetchErr
	}
	tasks := make([]domain.Task, 0, len(m.order))
	for _, id := range m.order {
		tasks = append(tasks, *m.tasks[id])
	}
	return domain.NewSnapshot(tasks, time.Now()), nil
}

func (m *mockAPI) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	task, ok := m.tasks[id]
	if !ok {
		return nil, errors.NewNotFoundError("task", id)
	}
	copied := *task
	return &copied, nil
}

func (m *mockAPI) ResolveTaskID(ctx context.Context, ref string) (string, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return "", errors.NewValidationError("task ID is required", nil)
	}
	var matches []string
	for _, id := range m.order {
		if id == ref {
			return id, nil
		}
		if strings.HasPrefix(id, ref) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", errors.NewNotFoundError("task", ref)
	case 1:
		return matches[0], nil
	default:
		return "", errors.NewInvalidInputError("id", ref, "prefix matches more than one task")
	}
}

func (m *mockAPI) CreateTask(ctx context.Context, name, description string, isCompleted bool) (*domain.Task, error) {
	if err := m.validator.ValidateTaskForCreation(name, description); err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}
	task := &domain.Task{
		ID:          fmt.Sprintf("task%04d-0000-0000-0000-000000000000", m.nextID),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
		IsCompleted: isCompleted,
	}
	m.nextID++
	m.tasks[task.ID] = task
	m.order = append(m.order, task.ID)
	copied := *task
	return &copied, nil
}

func (m *mockAPI) UpdateTask(ctx context.Context, id, name, description string) (*domain.Task, error) {
	if err := m.validator.ValidateTaskForUpdate(id, name, description); err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}
	task, ok := m.tasks[id]
	if !ok {
		return nil, errors.NewNotFoundError("task", id)
	}
	task.Name = name
	task.Description = description
	copied := *task
	return &copied, nil
}

func (m *mockAPI) DeleteTask(ctx context.Context, id string) error {
	if _, ok := m.tasks[id]; !ok {
		return errors.NewNotFoundError("task", id)
	}
	delete(m.tasks, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockAPI) ToggleTaskCompleted(ctx context.Context, id string) (*domain.Task, error) {
	task, ok := m.tasks[id]
	if !ok {
		return nil, errors.NewNotFoundError("task", id)
	}
	task.IsCompleted = !task.IsCompleted
	copied := *task
	return &copied, nil
}

func (m *mockAPI) SeedIfEmpty(ctx context.Context) services.SeedResult {
	m.seedCalls++
	return m.seedResult
}

// mustCreate adds a task and returns its ID
func (m *mockAPI) mustCreate(t *testing.T, name, description string, completed bool) string {
	t.Helper()
	task, err := m.CreateTask(context.Background(), name, description, completed)
	if err != nil {
		t.Fatalf("CreateTask(%q) error = %v", name, err)
	}
	return task.ID
}

// setupTestAppWithMockAPI returns an app writing into the returned buffer
func setupTestAppWithMockAPI(t *testing.T) (*App, *mockAPI, *bytes.Buffer) {
	t.Helper()
	mock := newMockAPI()
	cfg := config.NewConfig()
	cfg.Seed.Enabled = false
	var out bytes.Buffer
	return NewAppWithOutput(mock, cfg, &out), mock, &out
}
