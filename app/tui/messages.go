package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lysyi3m/rss-duo/app/feed"
)

// newsLoadedMsg carries the loader outcome for one activation of the home
// screen. generation identifies that activation.
type newsLoadedMsg struct {
	generation int
	state      feed.State
}

// showDetailsMsg is the only forward navigation: one article, by value.
type showDetailsMsg struct {
	article feed.Article
}

type backMsg struct{}

func showDetails(article feed.Article) tea.Cmd {
	return func() tea.Msg {
		return showDetailsMsg{article: article}
	}
}

func back() tea.Msg {
	return backMsg{}
}
