// Package track implements live timing for lane races: a stopwatch shared by
// every lane, per-lane finish capture and the finalized ranking.
package track

import (
	"log/slog"
	"time"
)

// DefaultRefreshInterval is the display refresh cadence used by the terminal
// timer view.
const DefaultRefreshInterval = 50 * time.Millisecond

// Timer is a two-state stopwatch. While idle it retains the elapsed time of
// the last run; Start resets it.
type Timer struct {
	now     func() time.Time
	running bool
	start   time.Time
	elapsed time.Duration
	refresh *Refresher
	logger  *slog.Logger
}

type TimerOption = func(t *Timer)

// WithClock configures the source of the current instant; primarily used for
// testing.
func WithClock(now func() time.Time) TimerOption {
	return func(t *Timer) { t.now = now }
}

// WithRefresh attaches a display refresh that calls fn with the current
// elapsed time every interval while the timer runs.
func WithRefresh(interval time.Duration, fn func(time.Duration)) TimerOption {
	return func(t *Timer) { t.refresh = NewRefresher(interval, fn) }
}

// WithTimerLogger configures the logger used by the timer.
func WithTimerLogger(l *slog.Logger) TimerOption {
	return func(t *Timer) { t.logger = l }
}

func NewTimer(opts ...TimerOption) *Timer {
	t := &Timer{
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start begins a new run. It is a no-op while the timer is already running.
func (t *Timer) Start() {
	if t.running {
		return
	}
	t.start = t.now()
	t.elapsed = 0
	t.running = true
	if t.refresh != nil {
		t.refresh.Start(t.start, t.now)
	}
	t.logger.Debug("timer started", "start", t.start)
}

// Stop ends the current run and retains its final elapsed time. It is a no-op
// while the timer is idle. Once Stop returns the refresh callback will not
// fire again.
func (t *Timer) Stop() {
	if !t.running {
		return
	}
	t.elapsed = elapsedSince(t.start, t.now())
	t.running = false
	if t.refresh != nil {
		t.refresh.Stop()
	}
	t.logger.Debug("timer stopped", "elapsed", t.elapsed)
}

func (t *Timer) Running() bool {
	return t.running
}

// CurrentElapsed is the live reading while running, or the retained reading
// of the last run while idle. It is never negative.
func (t *Timer) CurrentElapsed() time.Duration {
	if t.running {
		return elapsedSince(t.start, t.now())
	}
	return t.elapsed
}
