package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Decrease key.Binding
	Increase key.Binding
	Toggle   key.Binding
	Generate key.Binding
	Batch    key.Binding
	Copy     key.Binding
	Switch   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←/h", "less"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l", "+", "="),
			key.WithHelp("→/l", "more"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
		Generate: key.NewBinding(
			key.WithKeys("ctrl+g", "enter", "r"),
			key.WithHelp("ctrl+g/enter", "generate"),
		),
		Batch: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "batch"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c", "copy"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "options/batch"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.Copy, k.Batch, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Decrease, k.Increase, k.Toggle},
		{k.Generate, k.Batch, k.Copy, k.Switch},
		{k.Help, k.Quit},
	}
}
