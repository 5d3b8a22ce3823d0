package ui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"
	"golang.org/x/text/language"

	"github.com/Nydauron/trackside/app"
	"github.com/Nydauron/trackside/athletics"
	"github.com/Nydauron/trackside/field"
)

const fieldHelp = "↑/↓ athlete • ←/→ attempt • enter mark • x foul • t status • f finalize • q quit"

// FieldModel is the attempt grid of a field event.
type FieldModel struct {
	dash     *app.Dashboard
	rec      *field.Recorder
	logger   *slog.Logger
	language language.Tag

	mode     mode
	row      int
	col      int
	progress ProgressBar
	prompt   Prompt
	status   StatusPrompt
	results  table.Model
	err      string
}

func newFieldModel(d *app.Dashboard, o options) FieldModel {
	m := FieldModel{
		dash:     d,
		rec:      d.Field,
		logger:   o.logger,
		language: o.language,
		progress: NewProgressBar("attempts"),
	}
	return m.refreshProgress()
}

func (m FieldModel) Dashboard() *app.Dashboard {
	return m.dash
}

func (m FieldModel) Init() tea.Cmd {
	return nil
}

func (m FieldModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case modeEdit:
		return m.updateMark(keyMsg)
	case modeStatus:
		return m.updateStatus(keyMsg)
	case modeResults:
		switch keyMsg.String() {
		case "q":
			return m, tea.Quit
		case "esc", "b":
			m.mode = modeBrowse
		}
		return m, nil
	}
	return m.updateBrowse(keyMsg)
}

func (m FieldModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = ""
	entries := m.rec.Entries()
	if len(entries) == 0 {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "f":
			m.results = ResultsTable(m.dash.Finalize())
			m.mode = modeResults
		}
		return m, nil
	}
	attempts := len(entries[m.row].Attempts)

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.row = max(0, m.row-1)
	case "down", "j":
		m.row = min(len(entries)-1, m.row+1)
	case "left", "h":
		m.col = max(0, m.col-1)
	case "right", "l", "tab":
		m.col = min(attempts-1, m.col+1)
	case "enter", "e":
		m.prompt = NewPrompt(InputData{
			Question: fmt.Sprintf("%s attempt %d (m)", entries[m.row].Athlete.Name, m.col+1),
		})
		// prefilled at full precision; clearing the input clears the mark
		if v := entries[m.row].Attempts[m.col].ValueMeters; v != nil {
			m.prompt.SetValue(strconv.FormatFloat(*v, 'f', -1, 64))
		}
		m.mode = modeEdit
		return m, m.prompt.Init()
	case "x":
		m.setErr(m.rec.ToggleFoul(m.row, m.col))
	case "t":
		m.status = NewStatusPrompt(entries[m.row].Athlete.Name, entries[m.row].Status)
		m.mode = modeStatus
	case "f":
		m.results = ResultsTable(m.dash.Finalize())
		m.mode = modeResults
		m.logger.Info("field results finalized", "event", m.dash.Event.ID)
	}
	return m.refreshProgress(), nil
}

func (m FieldModel) updateMark(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		return m, nil
	case "enter":
		m.setErr(m.rec.SetValue(m.row, m.col, m.prompt.Input.Value()))
		m.mode = modeBrowse
		return m.refreshProgress(), nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m FieldModel) updateStatus(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		return m, nil
	case "enter":
		m.setErr(m.rec.SetStatus(m.row, m.status.Status))
		m.mode = modeBrowse
		return m, nil
	}
	var cmd tea.Cmd
	m.status, cmd = m.status.Update(msg)
	return m, cmd
}

func (m *FieldModel) setErr(err error) {
	m.err = athletics.UserMessage(err, m.language)
}

func (m FieldModel) refreshProgress() FieldModel {
	taken, total := 0, 0
	for _, e := range m.rec.Entries() {
		for _, at := range e.Attempts {
			total++
			if at.Foul || at.ValueMeters != nil {
				taken++
			}
		}
	}
	m.progress, _ = m.progress.Update(ProgressMsg{Completed: taken, Total: total})
	return m
}

func (m FieldModel) View() string {
	ev := m.dash.Event
	title := styles.Title.Render(ev.Name)
	subtitle := styles.Subtitle.Render(strings.TrimSpace(fmt.Sprintf("%s %s", ev.Discipline, ev.Phase)))

	if m.mode == modeResults {
		return styles.Doc.Render(lipgloss.JoinVertical(lipgloss.Left,
			title, subtitle, "", m.results.View(), "",
			styles.Subtle.Render("esc back • q quit")))
	}

	entries := m.rec.Entries()
	rows := make([]string, len(entries))
	for i, e := range entries {
		marker := "  "
		if i == m.row {
			marker = styles.Cursor.Render("> ")
		}
		cells := make([]string, len(e.Attempts))
		for j, at := range e.Attempts {
			cell := fmt.Sprintf("%6s", attemptText(at))
			if at.Foul {
				cell = styles.Foul.Render(cell)
			}
			if i == m.row && j == m.col {
				cell = styles.Cursor.Render("[") + cell + styles.Cursor.Render("]")
			} else {
				cell = " " + cell + " "
			}
			cells[j] = cell
		}
		status := ""
		if e.Status != athletics.StatusOK {
			status = styles.Foul.Render(string(e.Status))
		}
		rows[i] = fmt.Sprintf("%s%-20s %s  best %s %s",
			marker, e.Athlete.Name, strings.Join(cells, ""), field.FormatMark(e.Best), status)
	}

	footer := styles.Subtle.Render(fieldHelp)
	switch m.mode {
	case modeEdit:
		footer = m.prompt.View()
	case modeStatus:
		footer = m.status.View()
	}

	parts := []string{title, subtitle, "", strings.Join(rows, "\n"), "", m.progress.View()}
	if m.err != "" {
		parts = append(parts, styles.Error.Render(m.err))
	}
	parts = append(parts, footer)
	return styles.Doc.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
