package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"todolist/internal/errors"
	"todolist/internal/logging"
)

// Init seeds an empty store when seeding is enabled, then loads the list once.
func (m Model) Init() tea.Cmd {
	if m.cfg.Seed.Enabled {
		return tea.Batch(m.spinner.Tick, m.cmd.seed())
	}
	return tea.Batch(m.spinner.Tick, m.cmd.fetch(""))
}

// Update applies one message. It is the only place presentation state changes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(typed.Width, typed.Height)
		return m, nil

	case tea.KeyMsg:
		if typed.Type == tea.KeyCtrlC {
			m.Quitting = true
			return m, tea.Quit
		}
		switch m.mode {
		case modeAdd, modeEdit:
			return m.handleDialogKey(typed)
		case modeConfirmDelete:
			return m.handleConfirmKey(typed)
		default:
			return m.handleListKey(typed)
		}

	case spinner.TickMsg:
		if !m.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(typed)
		return m, cmd

	case seedDoneMsg:
		r := typed.result
		switch {
		case r.Err != nil:
			m.setStatus("Could not import sample tasks: "+errors.GetUserMessage(r.Err), true)
		case !r.Skipped:
			m.setStatus(fmt.Sprintf("Imported %d sample tasks", r.Imported), false)
		}
		return m, m.cmd.fetch("")

	case tasksLoadedMsg:
		selectID := typed.selectID
		if selectID == "" {
			if current, ok := m.selected(); ok {
				selectID = current.ID
			}
		}
		m.snapshot = typed.snapshot
		m.setRows()
		if idx := m.snapshot.IndexOf(selectID); idx >= 0 {
			m.table.SetCursor(idx)
		} else if m.table.Cursor() >= m.snapshot.Len() && m.snapshot.Len() > 0 {
			m.table.SetCursor(m.snapshot.Len() - 1)
		}
		m.Loading = false
		return m, nil

	case taskChangedMsg:
		m.setStatus(fmt.Sprintf("%s: %s", typed.action, typed.task.Name), false)
		return m, m.cmd.fetch(typed.task.ID)

	case taskDeletedMsg:
		m.setStatus("Deleted: "+typed.task.Name, false)
		return m, m.cmd.fetch("")

	case errMsg:
		// The facade already logged system failures; the last snapshot stays on screen.
		logging.Debugf("%s failed: %v", typed.operation, typed.err)
		m.Loading = false
		m.setStatus(fmt.Sprintf("Failed to %s: %s", typed.operation, errors.GetUserMessage(typed.err)), true)
		return m, nil
	}

	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.openDialog(modeAdd, "", "")
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		task, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.openDialog(modeEdit, task.Name, task.Description)
		m.editingID = task.ID
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		task, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.mode = modeConfirmDelete
		m.deleting = task
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		task, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, m.cmd.toggle(task.ID)

	case key.Matches(msg, m.keys.Refresh):
		m.Loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmd.fetch(""))
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeDialog()
		m.setStatus("", false)
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % len(m.inputs)
		return m, m.inputs[m.focus].Focus()

	case key.Matches(msg, m.keys.Submit):
		name := m.inputs[fieldName].Value()
		description := m.inputs[fieldDescription].Value()
		if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
			m.setStatus("Name and description are both required", true)
			return m, nil
		}

		var cmd tea.Cmd
		if m.mode == modeEdit {
			cmd = m.cmd.update(m.editingID, name, description)
		} else {
			cmd = m.cmd.create(name, description)
		}
		m.closeDialog()
		m.setStatus("", false)
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		task := m.deleting
		m.closeDialog()
		return m, m.cmd.remove(task)
	case key.Matches(msg, m.keys.Deny):
		m.closeDialog()
		return m, nil
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.help.Width = width
	m.table.SetColumns(columnsForWidth(width, m.cfg.Display.IDLength))
	m.table.SetWidth(width)

	// header, status, help and borders
	if h := height - 8; h > 3 {
		m.table.SetHeight(h)
	}
}
