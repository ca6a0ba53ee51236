package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Focus key.Binding
	Up    key.Binding
	Down  key.Binding
	Reset key.Binding
	Scale key.Binding
	Stats key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Focus, k.Reset, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Help},
		{k.Focus, k.Up, k.Down, k.Reset},
		{k.Scale, k.Stats},
	}
}

var keys = keyMap{
	Focus: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "country/year"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Reset: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "all"),
	),
	Scale: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "log/lin"),
	),
	Stats: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "perf stats"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q/ctrl+c", "quit"),
	),
}
