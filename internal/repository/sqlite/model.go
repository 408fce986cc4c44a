package sqlite

import "time"

// Task is a row of the tasks table
type Task struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	IsCompleted bool
}
