package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/internal/errors"
	"todolist/internal/remote"
	"todolist/internal/repository/sqlite"
)

// countingSource returns fixed records and counts calls
type countingSource struct {
	todos []remote.Todo
	err   error
	calls int32
}

func (s *countingSource) FetchTodos(ctx context.Context) ([]remote.Todo, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.todos, s.err
}

func (s *countingSource) Calls() int {
	return int(atomic.LoadInt32(&s.calls))
}

func stubEndpoint(t *testing.T, body string) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestSeedService_ImportsFromEndpoint(t *testing.T) {
	tasks := setupTaskService(t)
	srv, hits := stubEndpoint(t, `{"todos":[{"todo":"A","description":"B","completed":true}]}`)
	seeder := NewSeedService(tasks, remote.NewClient(srv.URL, time.Second, 0))

	result := seeder.SeedIfEmpty(context.Background())

	assert.NoError(t, result.Err)
	assert.False(t, result.Skipped)
	assert.Equal(t, 1, result.Fetched)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))

	all := fetchAll(t, tasks)
	require.Len(t, all, 1)
	assert.Equal(t, "A", all[0].Name)
	assert.Equal(t, "B", all[0].Description)
	assert.True(t, all[0].IsCompleted)
}

func TestSeedService_MissingTitleUsesPlaceholder(t *testing.T) {
	tasks := setupTaskService(t)
	srv, _ := stubEndpoint(t, `{"todos":[{"description":"B","completed":false},{"todo":"C"}]}`)
	seeder := NewSeedService(tasks, remote.NewClient(srv.URL, time.Second, 0))

	result := seeder.SeedIfEmpty(context.Background())
	require.NoError(t, result.Err)
	assert.Equal(t, 2, result.Imported)

	all := fetchAll(t, tasks)
	require.Len(t, all, 2)
	names := []string{all[0].Name, all[1].Name}
	descriptions := []string{all[0].Description, all[1].Description}
	assert.ElementsMatch(t, []string{remote.NoTitle, "C"}, names)
	assert.ElementsMatch(t, []string{"B", remote.NoDescription}, descriptions)
}

func TestSeedService_SkipsNonEmptyStore(t *testing.T) {
	tasks := setupTaskService(t)
	_, err := tasks.CreateTask(context.Background(), "Existing", "Body", false)
	require.NoError(t, err)

	srv, hits := stubEndpoint(t, `{"todos":[{"todo":"A","description":"B"}]}`)
	seeder := NewSeedService(tasks, remote.NewClient(srv.URL, time.Second, 0))

	result := seeder.SeedIfEmpty(context.Background())

	assert.True(t, result.Skipped)
	assert.NoError(t, result.Err)
	assert.Equal(t, int32(0), atomic.LoadInt32(hits), "no network call against a non-empty store")
	assert.Len(t, fetchAll(t, tasks), 1)
}

func TestSeedService_RunsOnlyOnce(t *testing.T) {
	tasks := setupTaskService(t)
	source := &countingSource{todos: []remote.Todo{{Title: "A", Description: "B"}}}
	seeder := NewSeedService(tasks, source)

	first := seeder.SeedIfEmpty(context.Background())
	second := seeder.SeedIfEmpty(context.Background())

	assert.Equal(t, 1, first.Imported)
	assert.True(t, second.Skipped)
	assert.Equal(t, 1, source.Calls())
	assert.Len(t, fetchAll(t, tasks), 1)
}

func TestSeedService_ConcurrentCallersImportOnce(t *testing.T) {
	tasks := setupTaskService(t)
	source := &countingSource{todos: []remote.Todo{{Title: "A", Description: "B"}, {Title: "C", Description: "D"}}}
	seeder := NewSeedService(tasks, source)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seeder.SeedIfEmpty(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, source.Calls())
	assert.Len(t, fetchAll(t, tasks), 2)
}

func TestSeedService_SourceFailures(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		errType  errors.ErrorType
		imported int
	}{
		{name: "malformed body", body: `{"todos":`, errType: errors.ErrorTypeParse},
		{name: "missing todos", body: `{"items":[]}`, errType: errors.ErrorTypeParse},
		{name: "unparsable record", body: `{"todos":[{"todo":"A"},42]}`, errType: errors.ErrorTypeParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := setupTaskService(t)
			srv, _ := stubEndpoint(t, tt.body)
			seeder := NewSeedService(tasks, remote.NewClient(srv.URL, time.Second, 0))

			result := seeder.SeedIfEmpty(context.Background())

			assert.True(t, errors.IsErrorType(result.Err, tt.errType), "got %v", result.Err)
			assert.Equal(t, 0, result.Imported)
			assert.Empty(t, fetchAll(t, tasks), "no rows are imported from a rejected response")
		})
	}
}

func TestSeedService_NetworkFailure(t *testing.T) {
	tasks := setupTaskService(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()
	seeder := NewSeedService(tasks, remote.NewClient(srv.URL, time.Second, 0))

	result := seeder.SeedIfEmpty(context.Background())

	assert.True(t, errors.IsErrorType(result.Err, errors.ErrorTypeNetwork))
	assert.Empty(t, fetchAll(t, tasks))
}

func TestSeedService_InvalidRecordsAreCountedAndSkipped(t *testing.T) {
	tasks := setupTaskService(t)
	source := &countingSource{todos: []remote.Todo{
		{Title: "Good", Description: "One"},
		{Title: "", Description: "Empty title"},
		{Title: "Also good", Description: "Two"},
	}}
	seeder := NewSeedService(tasks, source)

	result := seeder.SeedIfEmpty(context.Background())

	assert.NoError(t, result.Err)
	assert.Equal(t, 3, result.Fetched)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Failed)
	assert.Len(t, fetchAll(t, tasks), 2)
}

func TestSeedService_StoreUnreadable(t *testing.T) {
	source := &countingSource{todos: []remote.Todo{{Title: "A", Description: "B"}}}
	seeder := NewSeedService(NewTaskService(failingRepository{}, nil), source)

	result := seeder.SeedIfEmpty(context.Background())

	assert.True(t, errors.IsErrorType(result.Err, errors.ErrorTypeStorage))
	assert.Equal(t, 0, source.Calls(), "no network call when the store cannot be read")
}

func TestSeedService_CanceledContextStopsImport(t *testing.T) {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	defer repo.Close()
	tasks := NewTaskService(repo, nil)

	todos := make([]remote.Todo, 10)
	for i := range todos {
		todos[i] = remote.Todo{Title: fmt.Sprintf("T%d", i), Description: "B"}
	}

	ctx, cancel := context.WithCancel(context.Background())
	source := &cancelingSource{todos: todos, cancel: cancel}
	seeder := NewSeedService(tasks, source)

	result := seeder.SeedIfEmpty(ctx)

	assert.ErrorIs(t, result.Err, context.Canceled)
	assert.Equal(t, 10, result.Fetched)
	assert.Equal(t, 0, result.Imported)
}

// cancelingSource cancels the caller's context as soon as it has answered
type cancelingSource struct {
	todos  []remote.Todo
	cancel context.CancelFunc
}

func (s *cancelingSource) FetchTodos(ctx context.Context) ([]remote.Todo, error) {
	s.cancel()
	return s.todos, nil
}
