package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/internal/config"
	"todolist/internal/domain"
	"todolist/internal/errors"
	"todolist/internal/repository/sqlite"
	"todolist/internal/services"
)

func setupTestAPI(t *testing.T) API {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	cfg := config.NewConfig()
	cfg.Seed.URL = "http://127.0.0.1:0/unused"
	return NewFromRepository(repo, cfg)
}

func TestAPI_CRUD_Task(t *testing.T) {
	api := setupTestAPI(t)
	ctx := context.Background()

	// Create
	task, err := api.CreateTask(ctx, "Test Task", "Body", false)
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)

	// Get
	got, err := api.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, *task, *got)

	// FetchAll
	snapshot, err := api.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Len())
	assert.False(t, snapshot.TakenAt().IsZero())

	// Update
	updated, err := api.UpdateTask(ctx, task.ID, "Updated Task", "New body")
	require.NoError(t, err)
	assert.Equal(t, "Updated Task", updated.Name)

	// Toggle
	toggled, err := api.ToggleTaskCompleted(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsCompleted)

	// Delete
	require.NoError(t, api.DeleteTask(ctx, task.ID))
	_, err = api.GetTask(ctx, task.ID)
	assert.True(t, errors.IsNotFound(err))

	snapshot, err = api.FetchAll(ctx)
	require.NoError(t, err)
	assert.True(t, snapshot.IsEmpty())
}

func TestAPI_SnapshotIsStable(t *testing.T) {
	api := setupTestAPI(t)
	ctx := context.Background()

	task, err := api.CreateTask(ctx, "Name", "Body", false)
	require.NoError(t, err)

	before, err := api.FetchAll(ctx)
	require.NoError(t, err)

	_, err = api.ToggleTaskCompleted(ctx, task.ID)
	require.NoError(t, err)

	assert.False(t, before.At(0).IsCompleted, "an earlier snapshot does not see later writes")

	after, err := api.FetchAll(ctx)
	require.NoError(t, err)
	assert.True(t, after.At(0).IsCompleted)
}

func TestAPI_ResolveTaskID(t *testing.T) {
	tasks := &stubTaskService{tasks: []domain.Task{
		{ID: "abc11111"},
		{ID: "abc22222"},
		{ID: "def33333"},
		{ID: "def3"},
	}}
	api := &apiImpl{tasks: tasks, now: time.Now}
	ctx := context.Background()

	tests := []struct {
		name    string
		ref     string
		want    string
		errType *errors.ErrorType
	}{
		{name: "full id", ref: "abc11111", want: "abc11111"},
		{name: "unique prefix", ref: "abc2", want: "abc22222"},
		{name: "upper case prefix", ref: "ABC2", want: "abc22222"},
		{name: "exact match beats longer prefix match", ref: "def3", want: "def3"},
		{name: "ambiguous prefix", ref: "abc", errType: ptr(errors.ErrorTypeInvalidInput)},
		{name: "no match", ref: "zzz", errType: ptr(errors.ErrorTypeNotFound)},
		{name: "blank", ref: "  ", errType: ptr(errors.ErrorTypeValidation)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := api.ResolveTaskID(ctx, tt.ref)
			if tt.errType != nil {
				assert.True(t, errors.IsErrorType(err, *tt.errType), "got %v", err)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAPI_FetchAllStorageError(t *testing.T) {
	tasks := &stubTaskService{err: errors.NewStorageError("list tasks", assert.AnError)}
	api := &apiImpl{tasks: tasks, now: time.Now}

	snapshot, err := api.FetchAll(context.Background())
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorage))
	assert.True(t, snapshot.IsEmpty())

	_, err = api.ResolveTaskID(context.Background(), "abc")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorage))
}

func TestAPI_SeedIfEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"todos":[{"todo":"A","description":"B","completed":true}]}`))
	}))
	defer srv.Close()

	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	defer repo.Close()

	cfg := config.NewConfig()
	cfg.Seed.URL = srv.URL
	api := NewFromRepository(repo, cfg)
	ctx := context.Background()

	result := api.SeedIfEmpty(ctx)
	require.NoError(t, result.Err)
	assert.Equal(t, 1, result.Imported)

	snapshot, err := api.FetchAll(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, snapshot.Len())
	assert.Equal(t, "A", snapshot.At(0).Name)

	again := api.SeedIfEmpty(ctx)
	assert.True(t, again.Skipped)
}

// stubTaskService serves a fixed task list
type stubTaskService struct {
	services.TaskService
	tasks []domain.Task
	err   error
}

func (s *stubTaskService) FetchAll(ctx context.Context) ([]domain.Task, error) {
	return s.tasks, s.err
}

func ptr[T any](v T) *T {
	return &v
}
