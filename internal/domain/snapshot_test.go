package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleTasks() []Task {
	base := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	return []Task{
		{ID: "a", Name: "First", Description: "1", CreatedAt: base},
		{ID: "b", Name: "Second", Description: "2", CreatedAt: base.Add(time.Minute), IsCompleted: true},
		{ID: "c", Name: "Third", Description: "3", CreatedAt: base.Add(2 * time.Minute)},
	}
}

func TestNewSnapshot(t *testing.T) {
	takenAt := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	s := NewSnapshot(sampleTasks(), takenAt)

	assert.Equal(t, 3, s.Len())
	assert.False(t, s.IsEmpty())
	assert.Equal(t, "b", s.At(1).ID)
	assert.Equal(t, 1, s.CompletedCount())
	assert.Equal(t, takenAt, s.TakenAt())
}

func TestSnapshot_Empty(t *testing.T) {
	var zero Snapshot
	assert.True(t, zero.IsEmpty())
	assert.Equal(t, 0, zero.Len())
	assert.Empty(t, zero.Tasks())

	s := NewSnapshot(nil, time.Now())
	assert.True(t, s.IsEmpty())
}

func TestSnapshot_IsolatedFromSource(t *testing.T) {
	tasks := sampleTasks()
	s := NewSnapshot(tasks, time.Now())

	tasks[0].Name = "Mutated"
	assert.Equal(t, "First", s.At(0).Name)

	out := s.Tasks()
	out[1].IsCompleted = false
	assert.True(t, s.At(1).IsCompleted)
}

func TestSnapshot_Find(t *testing.T) {
	s := NewSnapshot(sampleTasks(), time.Now())

	task, ok := s.Find("c")
	assert.True(t, ok)
	assert.Equal(t, "Third", task.Name)
	assert.Equal(t, 2, s.IndexOf("c"))

	_, ok = s.Find("missing")
	assert.False(t, ok)
	assert.Equal(t, -1, s.IndexOf("missing"))
}
