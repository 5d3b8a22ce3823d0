package app

import (
	"fmt"
	"log/slog"

	"github.com/Nydauron/trackside/athletics"
	"github.com/Nydauron/trackside/export"
	"github.com/Nydauron/trackside/field"
	"github.com/Nydauron/trackside/track"
)

// Dashboard runs the live recorder that matches an event's kind. Exactly
// one of Track and Field is set.
type Dashboard struct {
	Event athletics.SportEvent
	Track *track.Recorder
	Field *field.Recorder

	finalized *export.Payload
}

type dashboardOptions struct {
	logger    *slog.Logger
	timerOpts []track.TimerOption
}

type DashboardOption = func(o *dashboardOptions)

// WithLogger configures the logger passed down to the recorder.
func WithLogger(l *slog.Logger) DashboardOption {
	return func(o *dashboardOptions) { o.logger = l }
}

// WithTimerOptions configures the stopwatch of a track dashboard.
func WithTimerOptions(opts ...track.TimerOption) DashboardOption {
	return func(o *dashboardOptions) { o.timerOpts = append(o.timerOpts, opts...) }
}

// NewDashboard seeds a recorder from ev. Track events get ev.Lanes lanes
// (default 6) bound to the first participants; field events get one entry per
// participant with ev.AttemptsPerAthlete attempts (default 3). Other kinds have
// no live recorder.
func NewDashboard(ev athletics.SportEvent, opts ...DashboardOption) (*Dashboard, error) {
	o := dashboardOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	d := &Dashboard{Event: ev}
	switch ev.Kind {
	case athletics.KindTrack:
		lanes := track.DefaultLanes
		if ev.Lanes != nil && *ev.Lanes > 0 {
			lanes = *ev.Lanes
		}
		seeded := ev.Participants[:min(lanes, len(ev.Participants))]
		d.Track = track.NewRecorder(lanes, seeded,
			track.WithLogger(o.logger),
			track.WithTimerOptions(o.timerOpts...))
	case athletics.KindField:
		attempts := field.DefaultAttempts
		if ev.AttemptsPerAthlete != nil {
			attempts = *ev.AttemptsPerAthlete
		}
		d.Field = field.NewRecorder(ev.Participants, attempts, field.WithLogger(o.logger))
	default:
		return nil, athletics.WithMetadata(athletics.CodeEventKindUnsupported,
			fmt.Sprintf("no live recorder for %q events", ev.Kind),
			map[string]string{"kind": string(ev.Kind)})
	}
	o.logger.Info("dashboard opened", "event", ev.ID, "kind", ev.Kind)
	return d, nil
}

// Finalize ranks the recorder's current state and packages it with the
// event. It can be called repeatedly; the latest call wins.
func (d *Dashboard) Finalize() export.Payload {
	var p export.Payload
	if d.Track != nil {
		p = export.FromTrack(d.Event, d.Track.Finalize())
	} else {
		p = export.FromField(d.Event, d.Field.Finalize())
	}
	d.finalized = &p
	return p
}

// Export returns the most recent finalized payload, or the event alone if
// Finalize was never called.
func (d *Dashboard) Export() export.Payload {
	if d.finalized == nil {
		return export.New(d.Event)
	}
	return *d.finalized
}

// Close stops a running track clock so its display refresh is released.
func (d *Dashboard) Close() {
	if d.Track != nil {
		d.Track.Stop()
	}
}
