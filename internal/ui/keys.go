package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the list-mode keyboard bindings. Text inputs have their own
// smaller set in formKeyMap.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Activity   key.Binding

	// Catalog
	Search     key.Binding
	ClearQuery key.Binding
	FocusForm  key.Binding
	New        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	CycleSort  key.Binding
	ToggleDir  key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	GotoPage key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Activity: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Activity log"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		ClearQuery: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear search"),
		),
		FocusForm: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Focus form"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "New product"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "Edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "Delete"),
		),
		CycleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Cycle sort key"),
		),
		ToggleDir: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reverse sort"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("h", "left", "pgup"),
			key.WithHelp("h/left", "Previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("l", "right", "pgdown"),
			key.WithHelp("l/right", "Next page"),
		),
		GotoPage: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "Type a page number"),
		),
	}
}

// ShortHelp returns key bindings for the command bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.New, k.Edit, k.Delete, k.CycleSort, k.ToggleDir, k.PrevPage, k.NextPage, k.Help}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage, k.GotoPage},
		{k.Search, k.ClearQuery, k.CycleSort, k.ToggleDir},
		{k.New, k.Edit, k.Delete, k.FocusForm},
		{k.Activity, k.CycleTheme, k.Help, k.Quit},
	}
}

// formKeyMap is active while a text input has focus.
type formKeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Submit  key.Binding
	Cancel  key.Binding
	Confirm key.Binding
	Dismiss key.Binding
	Quit    key.Binding
}

func defaultFormKeyMap() formKeyMap {
	return formKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "Delete"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", "Keep"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
	}
}

// ShortHelp returns the form bindings for the command bar.
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Cancel}
}

// FullHelp returns the form bindings as one group.
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
