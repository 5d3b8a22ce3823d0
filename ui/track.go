package ui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"
	"golang.org/x/text/language"

	"github.com/Nydauron/trackside/app"
	"github.com/Nydauron/trackside/athletics"
	"github.com/Nydauron/trackside/track"
)

const trackHelp = "s start/stop • ↑/↓ lane • enter or 1-9 record • c clear • n rename • t status • f finalize • q quit"

// TrackModel is the live timing screen of a track event.
type TrackModel struct {
	dash     *app.Dashboard
	rec      *track.Recorder
	ticks    <-chan time.Duration
	logger   *slog.Logger
	language language.Tag

	mode     mode
	cursor   int
	spinner  spinner.Model
	progress ProgressBar
	prompt   Prompt
	status   StatusPrompt
	results  table.Model
	err      string
}

func newTrackModel(d *app.Dashboard, ticks <-chan time.Duration, o options) TrackModel {
	m := TrackModel{
		dash:     d,
		rec:      d.Track,
		ticks:    ticks,
		logger:   o.logger,
		language: o.language,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		progress: NewProgressBar("recorded"),
	}
	return m.refreshProgress()
}

func (m TrackModel) Dashboard() *app.Dashboard {
	return m.dash
}

func (m TrackModel) Init() tea.Cmd {
	return waitForTick(m.ticks)
}

func (m TrackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m, waitForTick(m.ticks)
	case spinner.TickMsg:
		if !m.rec.Running() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		switch m.mode {
		case modeEdit:
			return m.updateRename(msg)
		case modeStatus:
			return m.updateStatus(msg)
		case modeResults:
			return m.updateResults(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m TrackModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = ""
	lanes := m.rec.Lanes()
	switch k := msg.String(); k {
	case "q":
		return m.quit()
	case "s", " ":
		if m.rec.Running() {
			m.rec.Stop()
			return m, nil
		}
		m.rec.Start()
		return m, m.spinner.Tick
	case "up", "k":
		m.cursor = max(0, m.cursor-1)
	case "down", "j":
		m.cursor = min(len(lanes)-1, m.cursor+1)
	case "enter", "r":
		m.setErr(m.rec.Record(m.cursor))
	case "c":
		m.setErr(m.rec.Clear(m.cursor))
	case "n":
		name := ""
		if a := lanes[m.cursor].Athlete; a != nil {
			name = a.Name
		}
		m.prompt = NewPrompt(InputData{
			Question:     fmt.Sprintf("Lane %d athlete", lanes[m.cursor].Lane),
			DefaultValue: name,
		})
		m.mode = modeEdit
		return m, m.prompt.Init()
	case "t":
		name := ""
		if a := lanes[m.cursor].Athlete; a != nil {
			name = a.Name
		}
		m.status = NewStatusPrompt(name, lanes[m.cursor].Status)
		m.mode = modeStatus
	case "f":
		m.results = ResultsTable(m.dash.Finalize())
		m.mode = modeResults
		m.logger.Info("track results finalized", "event", m.dash.Event.ID)
	default:
		// lane numbers record directly, e.g. 2 records lane 2
		if n, err := strconv.Atoi(k); err == nil {
			m.setErr(m.rec.Record(n - 1))
		}
	}
	return m.refreshProgress(), nil
}

func (m TrackModel) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		return m, nil
	case "enter":
		m.setErr(m.rec.SetAthleteName(m.cursor, strings.TrimSpace(m.prompt.GetValue())))
		m.mode = modeBrowse
		return m, nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m TrackModel) updateStatus(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		return m, nil
	case "enter":
		m.setErr(m.rec.SetStatus(m.cursor, m.status.Status))
		m.mode = modeBrowse
		return m, nil
	}
	var cmd tea.Cmd
	m.status, cmd = m.status.Update(msg)
	return m, cmd
}

func (m TrackModel) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.quit()
	case "esc", "b":
		m.mode = modeBrowse
	}
	return m, nil
}

func (m TrackModel) quit() (tea.Model, tea.Cmd) {
	m.rec.Stop()
	m.logger.Debug("track dashboard closed", "event", m.dash.Event.ID)
	return m, tea.Quit
}

func (m *TrackModel) setErr(err error) {
	m.err = athletics.UserMessage(err, m.language)
}

func (m TrackModel) refreshProgress() TrackModel {
	lanes := m.rec.Lanes()
	recorded := 0
	for _, l := range lanes {
		if l.TimeMS != nil {
			recorded++
		}
	}
	m.progress, _ = m.progress.Update(ProgressMsg{Completed: recorded, Total: len(lanes)})
	return m
}

func (m TrackModel) View() string {
	ev := m.dash.Event
	title := styles.Title.Render(ev.Name)
	subtitle := styles.Subtitle.Render(strings.TrimSpace(fmt.Sprintf("%s %s", ev.Discipline, ev.Phase)))

	if m.mode == modeResults {
		return styles.Doc.Render(lipgloss.JoinVertical(lipgloss.Left,
			title, subtitle, "", m.results.View(), "",
			styles.Subtle.Render("esc back • q quit")))
	}

	clock := styles.Clock.Render(track.FormatElapsed(m.rec.CurrentElapsed()))
	if m.rec.Running() {
		clock = lipgloss.JoinHorizontal(lipgloss.Center, clock, " ", m.spinner.View())
	}

	lanes := m.rec.Lanes()
	rows := make([]string, len(lanes))
	for i, l := range lanes {
		name, _ := athleteCells(l.Athlete)
		marker := "  "
		if i == m.cursor {
			marker = styles.Cursor.Render("> ")
		}
		t := track.FormatTime(l.TimeMS)
		if l.TimeMS != nil {
			t = styles.Recorded.Render(t)
		}
		status := ""
		if l.Status != athletics.StatusOK {
			status = styles.Foul.Render(string(l.Status))
		}
		rows[i] = fmt.Sprintf("%sLane %d  %-20s %8s %s", marker, l.Lane, name, t, status)
	}

	footer := styles.Subtle.Render(trackHelp)
	switch m.mode {
	case modeEdit:
		footer = m.prompt.View()
	case modeStatus:
		footer = m.status.View()
	}

	parts := []string{title, subtitle, "", clock, "", strings.Join(rows, "\n"), "", m.progress.View()}
	if m.err != "" {
		parts = append(parts, styles.Error.Render(m.err))
	}
	parts = append(parts, footer)
	return styles.Doc.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
