package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Add     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Toggle  key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding

	// dialog keys
	NextField key.Binding
	Submit    key.Binding
	Cancel    key.Binding
	Confirm   key.Binding
	Deny      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e/enter", "edit")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "toggle done")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		NextField: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Confirm:   key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		Deny:      key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Toggle, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Add, k.Edit, k.Delete, k.Toggle},
		{k.Refresh, k.Help, k.Quit},
	}
}

// dialogKeyMap is shown while the add or edit dialog is open
type dialogKeyMap struct{ keys keyMap }

func (d dialogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{d.keys.NextField, d.keys.Submit, d.keys.Cancel}
}

func (d dialogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{d.ShortHelp()}
}

type confirmKeyMap struct{ keys keyMap }

func (c confirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{c.keys.Confirm, c.keys.Deny}
}

func (c confirmKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{c.ShortHelp()}
}
