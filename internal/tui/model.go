package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"

	"todolist/internal/api"
	"todolist/internal/config"
	"todolist/internal/domain"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeConfirmDelete
)

const (
	fieldName = iota
	fieldDescription
)

// StatusBar is the one-line message under the list
type StatusBar struct {
	Text    string
	IsError bool
}

// Model is the bubbletea model of the interactive list. The task list itself is an
// immutable snapshot that is only replaced when a fresh one is loaded.
type Model struct {
	cmd      commander
	cfg      *config.Config
	keys     keyMap
	snapshot domain.Snapshot

	mode      mode
	editingID string
	deleting  domain.Task
	focus     int
	inputs    [2]textinput.Model

	table   table.Model
	spinner spinner.Model
	help    help.Model

	Status   StatusBar
	Loading  bool
	Quitting bool
	width    int
}

// NewModel builds the interactive list over a. Commands derive their deadlines
// from ctx and the application timeout.
func NewModel(ctx context.Context, a api.API, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	m := Model{
		cmd: commander{
			api:     a,
			parent:  ctx,
			timeout: cfg.Application.Timeout,
		},
		cfg:     cfg,
		keys:    defaultKeyMap(),
		Loading: true,
	}

	m.table = table.New(
		table.WithColumns(columnsForWidth(defaultWidth, cfg.Display.IDLength)),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	m.table.SetStyles(tableStyles())

	name := textinput.New()
	name.Prompt = "Name: "
	name.Placeholder = "What needs doing?"
	name.CharLimit = cfg.Validation.NameMaxLength
	name.Width = 48

	description := textinput.New()
	description.Prompt = "Description: "
	description.Placeholder = "Details"
	description.CharLimit = cfg.Validation.DescriptionMaxLength
	description.Width = 48

	m.inputs = [2]textinput.Model{name, description}

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot
	m.spinner.Style = spinnerStyle

	m.help = help.New()
	return m
}

// Snapshot returns the tasks currently on screen
func (m Model) Snapshot() domain.Snapshot {
	return m.snapshot
}

// selected returns the task under the cursor
func (m Model) selected() (domain.Task, bool) {
	if m.snapshot.IsEmpty() {
		return domain.Task{}, false
	}
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= m.snapshot.Len() {
		return domain.Task{}, false
	}
	return m.snapshot.At(cursor), true
}

func (m *Model) setRows() {
	rows := make([]table.Row, 0, m.snapshot.Len())
	for _, task := range m.snapshot.Tasks() {
		rows = append(rows, table.Row{
			task.StatusMark(),
			task.ShortID(m.cfg.Display.IDLength),
			task.Name,
			task.Description,
			task.CreatedAt.Local().Format(m.cfg.Display.TimeFormat),
		})
	}
	m.table.SetRows(rows)
}

func (m *Model) openDialog(md mode, name, description string) {
	m.mode = md
	m.focus = fieldName
	m.inputs[fieldName].SetValue(name)
	m.inputs[fieldDescription].SetValue(description)
	for i := range m.inputs {
		m.inputs[i].CursorEnd()
	}
	m.inputs[fieldName].Focus()
	m.inputs[fieldDescription].Blur()
	m.table.Blur()
}

func (m *Model) closeDialog() {
	m.mode = modeList
	m.editingID = ""
	m.deleting = domain.Task{}
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.table.Focus()
}

func (m *Model) setStatus(text string, isError bool) {
	m.Status = StatusBar{Text: text, IsError: isError}
}
