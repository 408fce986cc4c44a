package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const defaultWidth = 100

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	dialogStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(1, 2)
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	return s
}

// columnsForWidth splits the terminal width between name and description
func columnsForWidth(width, idLength int) []table.Column {
	if idLength <= 0 {
		idLength = 36
	}
	const doneWidth, createdWidth = 4, 16
	rest := width - doneWidth - idLength - createdWidth - 12
	if rest < 20 {
		rest = 20
	}
	nameWidth := rest * 2 / 5
	return []table.Column{
		{Title: "Done", Width: doneWidth},
		{Title: "ID", Width: idLength},
		{Title: "Name", Width: nameWidth},
		{Title: "Description", Width: rest - nameWidth},
		{Title: "Created", Width: createdWidth},
	}
}

// View renders the list, an open dialog, the status line and the key help.
func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(m.header()))
	b.WriteString("\n")

	switch m.mode {
	case modeAdd, modeEdit:
		b.WriteString(m.renderDialog())
	case modeConfirmDelete:
		b.WriteString(dialogStyle.Render(fmt.Sprintf("Delete %q?\n\n%s", m.deleting.Name, mutedStyle.Render("y to confirm, n to keep it"))))
	default:
		b.WriteString(m.renderList())
	}
	b.WriteString("\n")

	if line := m.statusLine(); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) header() string {
	if m.snapshot.IsEmpty() {
		return "To-do"
	}
	return fmt.Sprintf("To-do  %d/%d done", m.snapshot.CompletedCount(), m.snapshot.Len())
}

func (m Model) renderList() string {
	if m.Loading && m.snapshot.IsEmpty() {
		return panelStyle.Render(m.spinner.View() + " Loading tasks...")
	}
	if m.snapshot.IsEmpty() {
		return panelStyle.Render(mutedStyle.Render("No tasks yet. Press a to add one."))
	}
	return panelStyle.Render(m.table.View())
}

func (m Model) renderDialog() string {
	title := "New task"
	if m.mode == modeEdit {
		title = "Edit task"
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(title),
		"",
		m.inputs[fieldName].View(),
		m.inputs[fieldDescription].View(),
	)
	return dialogStyle.Render(body)
}

func (m Model) statusLine() string {
	var parts []string
	if m.Loading && !m.snapshot.IsEmpty() {
		parts = append(parts, m.spinner.View()+" refreshing")
	}
	if m.Status.Text != "" {
		if m.Status.IsError {
			parts = append(parts, errorStyle.Render(m.Status.Text))
		} else {
			parts = append(parts, statusStyle.Render(m.Status.Text))
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderHelp() string {
	switch m.mode {
	case modeAdd, modeEdit:
		return m.help.View(dialogKeyMap{keys: m.keys})
	case modeConfirmDelete:
		return m.help.View(confirmKeyMap{keys: m.keys})
	default:
		return m.help.View(m.keys)
	}
}
