package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lysyi3m/rss-duo/app/feed"
)

type NewsLoader interface {
	Run(ctx context.Context) feed.State
}

var _ NewsLoader = (*feed.Loader)(nil)

const (
	leftColumn = iota
	rightColumn
)

type articleItem struct {
	article feed.Article
}

func (i articleItem) Title() string {
	if i.article.HasImage() {
		return imageMarker + " " + i.article.Title
	}
	return i.article.Title
}

func (i articleItem) Description() string { return i.article.Description }
func (i articleItem) FilterValue() string { return i.article.Title }

// Home is the two-column news screen. Each activation runs the loader once;
// results from an older activation are dropped.
type Home struct {
	loader     NewsLoader
	state      feed.State
	generation int
	columns    [2]list.Model
	focus      int
	spinner    spinner.Model
	keys       homeKeyMap
	help       help.Model
	width      int
	height     int
}

func NewHome(loader NewsLoader, left, right feed.Source) Home {
	h := Home{
		loader:  loader,
		state:   feed.Loading{},
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		keys:    newHomeKeyMap(),
		help:    help.New(),
	}

	for i, source := range []feed.Source{left, right} {
		l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
		l.Title = source.Name
		l.SetShowStatusBar(false)
		l.SetFilteringEnabled(false)
		l.SetShowHelp(false)
		h.columns[i] = l
	}
	h.applyFocus()

	return h
}

func (h Home) State() feed.State {
	return h.state
}

// Activate starts a fresh load. Any result still in flight from an earlier
// activation is discarded when it arrives.
func (h *Home) Activate() tea.Cmd {
	h.generation++
	h.state = feed.Loading{}

	generation := h.generation
	loader := h.loader
	slog.Debug("Home screen activated", "generation", generation)

	return tea.Batch(h.spinner.Tick, func() tea.Msg {
		return newsLoadedMsg{
			generation: generation,
			state:      loader.Run(context.Background()),
		}
	})
}

// Deactivate makes the in-flight load, if any, stale.
func (h *Home) Deactivate() {
	h.generation++
}

func (h *Home) SetSize(width, height int) {
	h.width = width
	h.height = height
	h.help.Width = width

	columnWidth := max(width/2-columnStyle.GetHorizontalFrameSize(), 0)
	listHeight := max(height-2, 0)
	for i := range h.columns {
		h.columns[i].SetSize(columnWidth, listHeight)
	}
}

func (h Home) Update(msg tea.Msg) (Home, tea.Cmd) {
	switch msg := msg.(type) {
	case newsLoadedMsg:
		if msg.generation != h.generation {
			slog.Debug("Dropping stale news result", "generation", msg.generation, "current", h.generation)
			return h, nil
		}
		if _, loading := h.state.(feed.Loading); !loading {
			return h, nil
		}
		h.setState(msg.state)
		return h, nil

	case spinner.TickMsg:
		if _, loading := h.state.(feed.Loading); !loading {
			return h, nil
		}
		var cmd tea.Cmd
		h.spinner, cmd = h.spinner.Update(msg)
		return h, cmd

	case tea.KeyMsg:
		return h.handleKey(msg)
	}

	return h, nil
}

func (h Home) handleKey(msg tea.KeyMsg) (Home, tea.Cmd) {
	if key.Matches(msg, h.keys.Reload) {
		cmd := h.Activate()
		return h, cmd
	}

	if _, ready := h.state.(feed.Ready); !ready {
		return h, nil
	}

	switch {
	case key.Matches(msg, h.keys.Switch):
		h.focus = 1 - h.focus
		h.applyFocus()
	case key.Matches(msg, h.keys.Up):
		h.columns[h.focus].CursorUp()
	case key.Matches(msg, h.keys.Down):
		h.columns[h.focus].CursorDown()
	case key.Matches(msg, h.keys.Open):
		if item, ok := h.columns[h.focus].SelectedItem().(articleItem); ok {
			return h, showDetails(item.article)
		}
	}

	return h, nil
}

func (h *Home) setState(state feed.State) {
	h.state = state

	switch s := state.(type) {
	case feed.Ready:
		h.columns[leftColumn].SetItems(toItems(s.Left))
		h.columns[rightColumn].SetItems(toItems(s.Right))
		h.columns[leftColumn].Select(0)
		h.columns[rightColumn].Select(0)
	case feed.Failed:
		slog.Warn("Home screen failed to load news", "error", s.Message)
	}
}

func (h *Home) applyFocus() {
	for i := range h.columns {
		styles := list.DefaultStyles()
		if i != h.focus {
			styles.Title = styles.Title.Background(mutedColor)
		} else {
			styles.Title = styles.Title.Background(accentColor)
		}
		h.columns[i].Styles.Title = styles.Title
	}
}

func (h Home) View() string {
	switch s := h.state.(type) {
	case feed.Loading:
		return h.centered(h.spinner.View() + " Loading news...")

	case feed.Failed:
		return h.centered(lipgloss.JoinVertical(lipgloss.Center,
			errorStyle.Render("Failed to load news: "+s.Message),
			"",
			h.help.ShortHelpView([]key.Binding{h.keys.Reload, h.keys.Quit}),
		))

	case feed.Ready:
		columns := lipgloss.JoinHorizontal(lipgloss.Top,
			columnStyle.Render(h.columns[leftColumn].View()),
			columnStyle.Render(h.columns[rightColumn].View()),
		)
		return lipgloss.JoinVertical(lipgloss.Left,
			columns,
			h.help.ShortHelpView([]key.Binding{h.keys.Up, h.keys.Down, h.keys.Switch, h.keys.Open, h.keys.Reload, h.keys.Quit}),
		)
	}

	return ""
}

func (h Home) centered(s string) string {
	if h.width == 0 || h.height == 0 {
		return s
	}
	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, s)
}

func toItems(articles []feed.Article) []list.Item {
	items := make([]list.Item, len(articles))
	for i, article := range articles {
		items[i] = articleItem{article: article}
	}
	return items
}
