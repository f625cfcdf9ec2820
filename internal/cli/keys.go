package cli

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the play screen.
type KeyMap struct {
	// Continue skips the reveal, moves to the next line, or takes the
	// highlighted option, depending on what is on screen.
	Continue key.Binding
	Up       key.Binding
	Down     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Continue: key.NewBinding(
		key.WithKeys("enter", " ", "e"),
		key.WithHelp("e/space", "continue"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "previous option"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next option"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Continue, k.Up, k.Down, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
