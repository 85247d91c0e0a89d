package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lysyi3m/rss-duo/app/feed"
)

type screen int

const (
	homeScreen screen = iota
	detailScreen
)

// App is the root model: the home screen plus, after "show details", a
// viewer stacked on top of it. Going back does not reload the home screen.
type App struct {
	home   Home
	viewer Viewer
	screen screen
	width  int
	height int
}

func NewApp(loader NewsLoader, left, right feed.Source) *App {
	return &App{
		home:   NewHome(loader, left, right),
		screen: homeScreen,
	}
}

func (a *App) Init() tea.Cmd {
	return a.home.Activate()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.home.SetSize(msg.Width, msg.Height)
		a.viewer.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.home.Deactivate()
			return a, tea.Quit
		}
		if a.screen == homeScreen {
			if key.Matches(msg, a.home.keys.Quit) {
				a.home.Deactivate()
				return a, tea.Quit
			}
			var cmd tea.Cmd
			a.home, cmd = a.home.Update(msg)
			return a, cmd
		}
		var cmd tea.Cmd
		a.viewer, cmd = a.viewer.Update(msg)
		return a, cmd

	case showDetailsMsg:
		a.viewer = NewViewer(msg.article)
		a.viewer.SetSize(a.width, a.height)
		a.screen = detailScreen
		return a, nil

	case backMsg:
		a.screen = homeScreen
		return a, nil
	}

	// Loader results and spinner ticks belong to the home screen even while
	// the viewer is on top.
	var cmd tea.Cmd
	a.home, cmd = a.home.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	if a.screen == detailScreen {
		return a.viewer.View()
	}
	return a.home.View()
}

func Run(loader NewsLoader, left, right feed.Source) error {
	_, err := tea.NewProgram(NewApp(loader, left, right), tea.WithAltScreen()).Run()
	return err
}
