package tui

import "github.com/charmbracelet/bubbles/key"

type homeKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Open   key.Binding
	Reload key.Binding
	Quit   key.Binding
}

func newHomeKeyMap() homeKeyMap {
	return homeKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Switch: key.NewBinding(key.WithKeys("tab", "left", "right", "h", "l"), key.WithHelp("tab/←/→", "switch column")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type viewerKeyMap struct {
	Expand   key.Binding
	Collapse key.Binding
	Back     key.Binding
}

func newViewerKeyMap() viewerKeyMap {
	return viewerKeyMap{
		Expand:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "read")),
		Collapse: key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc/x", "close")),
		Back:     key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
	}
}
