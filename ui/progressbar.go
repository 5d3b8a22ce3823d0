package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// ProgressMsg reports how many of the expected results are in.
type ProgressMsg struct {
	Completed int
	Total     int
}

type ProgressBar struct {
	progress  progress.Model
	label     string
	completed int
	total     int
}

func NewProgressBar(label string) ProgressBar {
	return ProgressBar{
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(30), progress.WithoutPercentage()),
		label:    label,
	}
}

func (m ProgressBar) Percent() float64 {
	if m.total <= 0 {
		return 0
	}
	return float64(m.completed) / float64(m.total)
}

func (m ProgressBar) Init() tea.Cmd {
	return nil
}

func (m ProgressBar) Update(msg tea.Msg) (ProgressBar, tea.Cmd) {
	switch msg := msg.(type) {
	case ProgressMsg:
		m.completed = max(0, msg.Completed)
		m.total = max(0, msg.Total)
		return m, nil
	}
	return m, nil
}

func (m ProgressBar) View() string {
	return fmt.Sprintf("%s %s %d/%d", m.progress.ViewAs(m.Percent()), m.label, m.completed, m.total)
}
