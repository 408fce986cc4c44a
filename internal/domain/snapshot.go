package domain

import "time"

// Snapshot is an immutable point-in-time copy of the task list.
// Presenters render from a Snapshot and replace it wholesale after each fetch.
type Snapshot struct {
	tasks   []Task
	takenAt time.Time
}

// NewSnapshot copies tasks into a new Snapshot taken at the given time.
func NewSnapshot(tasks []Task, takenAt time.Time) Snapshot {
	copied := make([]Task, len(tasks))
	copy(copied, tasks)
	return Snapshot{tasks: copied, takenAt: takenAt}
}

// Len returns the number of tasks.
func (s Snapshot) Len() int {
	return len(s.tasks)
}

// IsEmpty reports whether the snapshot holds no tasks.
func (s Snapshot) IsEmpty() bool {
	return len(s.tasks) == 0
}

// At returns the task at index i. It panics when i is out of range, like a slice index.
func (s Snapshot) At(i int) Task {
	return s.tasks[i]
}

// Tasks returns a copy of the tasks in store order.
func (s Snapshot) Tasks() []Task {
	copied := make([]Task, len(s.tasks))
	copy(copied, s.tasks)
	return copied
}

// Find returns the task with the given ID.
func (s Snapshot) Find(id string) (Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// IndexOf returns the position of the task with the given ID, or -1.
func (s Snapshot) IndexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// CompletedCount returns how many tasks are completed.
func (s Snapshot) CompletedCount() int {
	n := 0
	for _, t := range s.tasks {
		if t.IsCompleted {
			n++
		}
	}
	return n
}

// TakenAt returns when the snapshot was fetched.
func (s Snapshot) TakenAt() time.Time {
	return s.takenAt
}
