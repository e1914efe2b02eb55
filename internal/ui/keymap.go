package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Scroll key.Binding
	Slides key.Binding
	Tabs   key.Binding
	Book   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Scroll: key.NewBinding(
			key.WithKeys("j", "k", "up", "down"),
			key.WithHelp("j/k", "scroll"),
		),
		Slides: key.NewBinding(
			key.WithKeys("left", "right", "h", "l"),
			key.WithHelp("←/→", "slides"),
		),
		Tabs: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "tabs"),
		),
		Book: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "book"),
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

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Slides, k.Tabs, k.Book, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Scroll, k.Slides, k.Tabs},
		{k.Book, k.Help, k.Quit},
	}
}
