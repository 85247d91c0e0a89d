package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lysyi3m/rss-duo/app/feed"
)

type ViewerState int

const (
	Collapsed ViewerState = iota
	Expanded
)

func (s ViewerState) String() string {
	if s == Expanded {
		return "expanded"
	}
	return "collapsed"
}

// Viewer shows one article as a compact card and, on request, as a
// full-content overlay. A Viewer is built per navigation, so its state is
// tied to a single article.
type Viewer struct {
	article  feed.Article
	state    ViewerState
	viewport viewport.Model
	keys     viewerKeyMap
	help     help.Model
	width    int
	height   int
}

func NewViewer(article feed.Article) Viewer {
	return Viewer{
		article:  article,
		state:    Collapsed,
		viewport: viewport.New(0, 0),
		keys:     newViewerKeyMap(),
		help:     help.New(),
	}
}

func (v Viewer) Article() feed.Article {
	return v.article
}

func (v Viewer) State() ViewerState {
	return v.state
}

func (v *Viewer) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.help.Width = width

	v.viewport.Width = v.modalContentWidth()
	v.viewport.Height = max(height-modalStyle.GetVerticalFrameSize()-2, 1)

	if v.state == Expanded {
		v.viewport.SetContent(v.overlayContent())
	}
}

func (v *Viewer) Expand() {
	if v.state == Expanded {
		return
	}
	v.state = Expanded
	v.viewport.SetContent(v.overlayContent())
	v.viewport.GotoTop()
}

func (v *Viewer) Collapse() {
	if v.state == Collapsed {
		return
	}
	v.state = Collapsed
	v.viewport.GotoTop()
}

func (v Viewer) Update(msg tea.Msg) (Viewer, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch v.state {
	case Collapsed:
		switch {
		case key.Matches(keyMsg, v.keys.Expand):
			v.Expand()
		case key.Matches(keyMsg, v.keys.Back):
			return v, back
		}

	case Expanded:
		if key.Matches(keyMsg, v.keys.Collapse) {
			v.Collapse()
			return v, nil
		}
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return v, cmd
	}

	return v, nil
}

func (v Viewer) View() string {
	if v.state == Expanded {
		return v.overlayView()
	}
	return v.cardView()
}

func (v Viewer) cardView() string {
	var b strings.Builder

	if v.article.HasImage() {
		b.WriteString(imageStyle.Render(imageMarker + " " + v.article.ImageURL))
		b.WriteString("\n")
	}

	title := titleStyle
	if v.width > 0 {
		title = title.Width(v.width)
	}
	b.WriteString(title.Render(v.article.Title))
	b.WriteString("\n")
	b.WriteString(v.help.ShortHelpView([]key.Binding{v.keys.Expand, v.keys.Back}))

	return b.String()
}

func (v Viewer) overlayView() string {
	modal := modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		v.viewport.View(),
		"",
		hintStyle.Render("[ Close ] ")+v.help.ShortHelpView([]key.Binding{v.keys.Collapse}),
	))

	if v.width == 0 || v.height == 0 {
		return modal
	}
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, modal)
}

func (v Viewer) overlayContent() string {
	width := v.modalContentWidth()
	wrap := func(s lipgloss.Style) lipgloss.Style {
		if width > 0 {
			return s.Width(width)
		}
		return s
	}

	var parts []string
	if v.article.HasImage() {
		parts = append(parts, wrap(imageStyle).Render(imageMarker+" "+v.article.ImageURL))
	}
	parts = append(parts, wrap(titleStyle).Render(v.article.Title))
	if body := v.article.Body(); body != "" {
		parts = append(parts, wrap(contentStyle).Render(body))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// modalContentWidth is the text width inside an overlay covering roughly
// 90% of the screen.
func (v Viewer) modalContentWidth() int {
	if v.width == 0 {
		return 0
	}
	return max(v.width*9/10-modalStyle.GetHorizontalFrameSize(), 10)
}
