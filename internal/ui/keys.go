package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the console's keyboard bindings.
type keyMap struct {
	Quit         key.Binding
	Help         key.Binding
	CycleTheme   key.Binding
	ToggleFollow key.Binding
	CycleFilter  key.Binding
	Clear        key.Binding
	Cleanup      key.Binding
	MemCheck     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		ToggleFollow: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Toggle follow"),
		),
		CycleFilter: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Cycle level filter"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Clear captured records"),
		),
		Cleanup: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Evict oldest half"),
		),
		MemCheck: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Force memory check"),
		),
	}
}

// helpLines describes the bindings for the help overlay.
func (k keyMap) helpLines() []key.Binding {
	return []key.Binding{
		k.ToggleFollow, k.CycleFilter, k.Clear, k.Cleanup,
		k.MemCheck, k.CycleTheme, k.Help, k.Quit,
	}
}
