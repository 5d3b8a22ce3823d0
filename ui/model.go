package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/Nydauron/trackside/app"
	"github.com/Nydauron/trackside/athletics"
	"github.com/Nydauron/trackside/export"
	"github.com/Nydauron/trackside/track"
)

// Model is a dashboard screen for one event.
type Model interface {
	tea.Model
	Dashboard() *app.Dashboard
}

type mode int

const (
	modeBrowse mode = iota
	modeEdit
	modeStatus
	modeResults
)

type options struct {
	logger   *slog.Logger
	refresh  time.Duration
	clock    func() time.Time
	language language.Tag
}

type Option = func(o *options)

// WithLogger configures the logger used by the TUI and the recorders.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRefreshInterval configures how often a running track clock redraws.
func WithRefreshInterval(d time.Duration) Option {
	return func(o *options) { o.refresh = d }
}

// WithClock configures the time source of the track clock.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.clock = now }
}

// WithLanguage configures the language of error messages.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) { o.language = tag }
}

// TickMsg carries a running clock reading from the refresher.
type TickMsg time.Duration

// NewModel opens a dashboard for ev and returns the screen for its kind.
func NewModel(ev athletics.SportEvent, opts ...Option) (Model, error) {
	o := options{
		logger:   slog.Default(),
		refresh:  track.DefaultRefreshInterval,
		clock:    time.Now,
		language: language.English,
	}
	for _, opt := range opts {
		opt(&o)
	}

	// The refresher must never block on a busy UI; a skipped tick is
	// replaced by the next one.
	ticks := make(chan time.Duration, 1)
	onTick := func(d time.Duration) {
		select {
		case ticks <- d:
		default:
		}
	}

	d, err := app.NewDashboard(ev,
		app.WithLogger(o.logger),
		app.WithTimerOptions(
			track.WithClock(o.clock),
			track.WithRefresh(o.refresh, onTick),
		))
	if err != nil {
		return nil, err
	}
	if d.Track != nil {
		return newTrackModel(d, ticks, o), nil
	}
	return newFieldModel(d, o), nil
}

// Run shows the dashboard of ev until the user quits and returns what should
// be exported: the latest finalized ranking, or the event alone.
func Run(ctx context.Context, ev athletics.SportEvent, opts ...Option) (export.Payload, error) {
	m, err := NewModel(ev, opts...)
	if err != nil {
		return export.Payload{}, err
	}
	d := m.Dashboard()
	defer d.Close()

	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return export.Payload{}, fmt.Errorf("running dashboard: %w", err)
	}
	return d.Export(), nil
}

func waitForTick(ticks <-chan time.Duration) tea.Cmd {
	return func() tea.Msg {
		return TickMsg(<-ticks)
	}
}
