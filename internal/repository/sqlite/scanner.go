package sqlite

import (
	"fmt"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var createdAt string

	err := scanner.Scan(
		&task.ID,
		&task.Name,
		&task.Description,
		&createdAt,
		&task.IsCompleted,
	)
	if err != nil {
		return nil, err
	}

	task.CreatedAt, err = ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, fmt.Errorf("task %s has malformed created_at %q: %w", task.ID, createdAt, err)
	}

	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	tasks := make([]*Task, 0)
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
