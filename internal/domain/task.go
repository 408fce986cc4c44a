package domain

import (
	"fmt"
	"strings"
	"time"
)

// Task represents a to-do item in the domain model.
// It holds no pointers, so a copy never shares state with the original.
type Task struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	IsCompleted bool
}

// NewTask creates a new, not yet persisted Task. ID and CreatedAt are assigned by the store.
func NewTask(name, description string, isCompleted bool) Task {
	return Task{
		Name:        name,
		Description: description,
		IsCompleted: isCompleted,
	}
}

// IsValid checks if the task has the fields every stored task carries.
func (t Task) IsValid() bool {
	return strings.TrimSpace(t.Name) != "" && strings.TrimSpace(t.Description) != ""
}

// ShortID returns the first n characters of the ID, or the whole ID when it is shorter.
func (t Task) ShortID(n int) string {
	if n <= 0 || len(t.ID) <= n {
		return t.ID
	}
	return t.ID[:n]
}

// StatusMark returns a check mark for completed tasks and a blank otherwise.
func (t Task) StatusMark() string {
	if t.IsCompleted {
		return "✓"
	}
	return " "
}

// String returns the task name and completion state for display purposes.
func (t Task) String() string {
	return fmt.Sprintf("[%s] %s", t.StatusMark(), t.Name)
}
