package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Doc      lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Clock    lipgloss.Style
	Cursor   lipgloss.Style
	Recorded lipgloss.Style
	Foul     lipgloss.Style
	Error    lipgloss.Style
	Subtle   lipgloss.Style
}

func DefaultStyles() Styles {
	red := lipgloss.Color("#D83A4A")
	blue := lipgloss.Color("#0B6EFD")
	green := lipgloss.Color("#17C81D")
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#666666"}
	primaryForeground := lipgloss.AdaptiveColor{Light: "#383838", Dark: "#D9DCCF"}

	return Styles{
		Doc: lipgloss.NewStyle().Margin(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(primaryForeground).
			Foreground(primaryForeground),
		Subtitle: lipgloss.NewStyle().Foreground(subtle),
		Clock: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(blue),
		Cursor:   lipgloss.NewStyle().Bold(true).Foreground(blue),
		Recorded: lipgloss.NewStyle().Foreground(green),
		Foul:     lipgloss.NewStyle().Foreground(red),
		Error:    lipgloss.NewStyle().Foreground(red),
		Subtle:   lipgloss.NewStyle().Foreground(subtle),
	}
}

var styles = DefaultStyles()
