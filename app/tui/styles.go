package tui

import "github.com/charmbracelet/lipgloss"

// One style per element; the collapsed card and the overlay share them.
var (
	accentColor = lipgloss.Color("#5A56E0")
	mutedColor  = lipgloss.Color("#767676")
	errorColor  = lipgloss.Color("#E05656")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	contentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"})

	imageStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginBottom(1)

	hintStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	columnStyle = lipgloss.NewStyle().
			Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(1, 2)
)

const imageMarker = "▣"
