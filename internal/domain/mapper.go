package domain

import (
	"todolist/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:          domainTask.ID,
		Name:        domainTask.Name,
		Description: domainTask.Description,
		CreatedAt:   domainTask.CreatedAt,
		IsCompleted: domainTask.IsCompleted,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID:          dbTask.ID,
		Name:        dbTask.Name,
		Description: dbTask.Description,
		CreatedAt:   dbTask.CreatedAt,
		IsCompleted: dbTask.IsCompleted,
	}
}

// FromDatabasePtrSlice converts the rows returned by the repository to domain Tasks.
func (m *TaskMapper) FromDatabasePtrSlice(dbTasks []*sqlite.Task) []Task {
	domainTasks := make([]Task, 0, len(dbTasks))
	for _, task := range dbTasks {
		if task == nil {
			continue
		}
		domainTasks = append(domainTasks, m.FromDatabase(*task))
	}
	return domainTasks
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task *TaskMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task: NewTaskMapper(),
	}
}
