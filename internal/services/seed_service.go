package services

import (
	"context"
	"sync"

	"todolist/internal/logging"
)

// seedServiceImpl implements the SeedService interface
type seedServiceImpl struct {
	tasks  TaskService
	source TodoSource

	// mu stops two callers in this process from both seeing an empty store and importing twice.
	mu sync.Mutex
}

// NewSeedService creates a seeder that imports from source through tasks
func NewSeedService(tasks TaskService, source TodoSource) SeedService {
	return &seedServiceImpl{
		tasks:  tasks,
		source: source,
	}
}

// SeedIfEmpty imports sample tasks when, and only when, the store holds none.
// Every failure is logged and reported in the result; nothing is retried.
func (s *seedServiceImpl) SeedIfEmpty(ctx context.Context) SeedResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.tasks.FetchAll(ctx)
	if err != nil {
		logging.Errorf("seed: could not read tasks: %v", err)
		return SeedResult{Err: err}
	}
	if len(existing) > 0 {
		logging.Debugf("seed: store has %d tasks, skipping", len(existing))
		return SeedResult{Skipped: true}
	}

	todos, err := s.source.FetchTodos(ctx)
	if err != nil {
		logging.Errorf("seed: no sample tasks imported: %v", err)
		return SeedResult{Err: err}
	}

	result := SeedResult{Fetched: len(todos)}
	for i, todo := range todos {
		if err := ctx.Err(); err != nil {
			logging.Warnf("seed: stopped after %d of %d records: %v", i, len(todos), err)
			result.Err = err
			break
		}

		if _, err := s.tasks.CreateTask(ctx, todo.Title, todo.Description, todo.Completed); err != nil {
			logging.Errorf("seed: could not import record %d (%q): %v", i, todo.Title, err)
			result.Failed++
			continue
		}
		result.Imported++
	}

	logging.Infof("seed: imported %d of %d sample tasks (%d failed)", result.Imported, result.Fetched, result.Failed)
	return result
}
