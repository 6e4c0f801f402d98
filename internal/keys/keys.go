package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down key.Binding
	Up   key.Binding

	// Board and tab switching
	NextBoard key.Binding
	PrevBoard key.Binding
	ToggleTab key.Binding

	// Task actions
	Add        key.Binding
	Toggle     key.Binding
	Delete     key.Binding
	Extend     key.Binding
	Priority   key.Binding
	MoveColumn key.Binding
	ClearDone  key.Binding

	// Board management
	NewBoard    key.Binding
	RenameBoard key.Binding
	DeleteBoard key.Binding

	// Views
	Stats    key.Binding
	Settings key.Binding
	Help     key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding
}

// ShortHelp satisfies help.KeyMap for the one-line hint bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.NextBoard, k.Help, k.Quit}
}

// FullHelp satisfies help.KeyMap for the expanded help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextBoard, k.PrevBoard, k.ToggleTab},
		{k.Add, k.Toggle, k.Delete, k.Extend, k.Priority, k.MoveColumn, k.ClearDone},
		{k.NewBoard, k.RenameBoard, k.DeleteBoard},
		{k.Stats, k.Settings, k.Help, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		NextBoard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next board"),
		),
		PrevBoard: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous board"),
		),
		ToggleTab: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "active/done"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add task"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle complete"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete task"),
		),
		Extend: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "extend to tomorrow"),
		),
		Priority: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "toggle priority"),
		),
		MoveColumn: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "next column"),
		),
		ClearDone: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear completed"),
		),
		NewBoard: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "new board"),
		),
		RenameBoard: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "rename board"),
		),
		DeleteBoard: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "delete board"),
		),
		Stats: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "stats"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
