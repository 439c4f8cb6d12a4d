package tui

import "github.com/charmbracelet/bubbles/key"

// PanelKeys are active whenever the join input is not capturing text.
type PanelKeys struct {
	Quit        key.Binding
	Up          key.Binding
	Down        key.Binding
	Trigger     key.Binding
	CopyURL     key.Binding
	ClearOutput key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
}

var panelKeys = PanelKeys{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/k", "navigate"),
	),
	Trigger: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "trigger"),
	),
	CopyURL: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy URL"),
	),
	ClearOutput: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "clear output"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("PgUp/PgDn", "scroll output"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("PgUp/PgDn", "scroll output"),
	),
}

// InputKeys are active while the join input is focused.
type InputKeys struct {
	Submit key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

var inputKeys = InputKeys{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "join"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "cancel"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+c", "quit"),
	),
}
