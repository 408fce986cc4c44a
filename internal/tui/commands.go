package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"todolist/internal/api"
	"todolist/internal/domain"
	"todolist/internal/services"
)

// Store and network calls run inside these commands, off the update loop.
// Each result comes back as one of the messages below.

type tasksLoadedMsg struct {
	snapshot domain.Snapshot
	selectID string
}

type seedDoneMsg struct {
	result services.SeedResult
}

type taskChangedMsg struct {
	action string
	task   domain.Task
}

type taskDeletedMsg struct {
	task domain.Task
}

type errMsg struct {
	operation string
	err       error
}

type commander struct {
	api     api.API
	parent  context.Context
	timeout time.Duration
}

func (c commander) context() (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(c.parent)
	}
	return context.WithTimeout(c.parent, c.timeout)
}

func (c commander) fetch(selectID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.context()
		defer cancel()

		snapshot, err := c.api.FetchAll(ctx)
		if err != nil {
			return errMsg{operation: "load tasks", err: err}
		}
		return tasksLoadedMsg{snapshot: snapshot, selectID: selectID}
	}
}

func (c commander) seed() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.context()
		defer cancel()

		return seedDoneMsg{result: c.api.SeedIfEmpty(ctx)}
	}
}

func (c commander) create(name, description string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.context()
		defer cancel()

		task, err := c.api.CreateTask(ctx, name, description, false)
		if err != nil {
			return errMsg{operation: "add task", err: err}
		}
		return taskChangedMsg{action: "Added", task: *task}
	}
}

func (c commander) update(id, name, description string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.context()
		defer cancel()

		task, err := c.api.UpdateTask(ctx, id, name, description)
		if err != nil {
			return errMsg{operation: "update task", err: err}
		}
		return taskChangedMsg{action: "Updated", task: *task}
	}
}

func (c commander) toggle(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.context()
		defer cancel()

		task, err := c.api.ToggleTaskCompleted(ctx, id)
		if err != nil {
			return errMsg{operation: "toggle task", err: err}
		}
		action := "Reopened"
		if task.IsCompleted {
			action = "Completed"
		}
		return taskChangedMsg{action: action, task: *task}
	}
}

func (c commander) remove(task domain.Task) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.context()
		defer cancel()

		if err := c.api.DeleteTask(ctx, task.ID); err != nil {
			return errMsg{operation: "delete task", err: err}
		}
		return taskDeletedMsg{task: task}
	}
}
