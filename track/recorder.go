package track

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/Nydauron/trackside/athletics"
)

// DefaultLanes is the lane count used when an event does not specify one.
const DefaultLanes = 6

// Recorder owns the lanes of one heat and the stopwatch they share. Every
// lane records its finish against the same running clock.
type Recorder struct {
	timer  *Timer
	lanes  []athletics.LaneAssignment
	newID  func() string
	logger *slog.Logger

	timerOpts []TimerOption
}

type RecorderOption = func(r *Recorder)

// WithTimerOptions configures the stopwatch shared by all lanes.
func WithTimerOptions(opts ...TimerOption) RecorderOption {
	return func(r *Recorder) { r.timerOpts = append(r.timerOpts, opts...) }
}

// WithIDGenerator configures how placeholder athletes get their identity.
func WithIDGenerator(newID func() string) RecorderOption {
	return func(r *Recorder) { r.newID = newID }
}

// WithLogger configures the logger used by the recorder and its timer.
func WithLogger(l *slog.Logger) RecorderOption {
	return func(r *Recorder) { r.logger = l }
}

// NewRecorder creates exactly lanes lanes (DefaultLanes when lanes < 1). Lane
// i is bound to athletes[i]; lanes beyond the athlete list get a placeholder
// athlete. The athletes are copied.
func NewRecorder(lanes int, athletes []athletics.Athlete, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		newID:  athletics.NewID,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.timer = NewTimer(append([]TimerOption{WithTimerLogger(r.logger)}, r.timerOpts...)...)

	if lanes < 1 {
		lanes = DefaultLanes
	}
	r.lanes = make([]athletics.LaneAssignment, lanes)
	for i := range r.lanes {
		var a athletics.Athlete
		if i < len(athletes) {
			a = athletes[i]
		} else {
			a = athletics.Athlete{ID: r.newID(), Name: fmt.Sprintf("Athlete %d", i+1)}
		}
		r.lanes[i] = athletics.LaneAssignment{
			Lane:    i + 1,
			Athlete: &a,
			Status:  athletics.StatusOK,
		}
	}
	return r
}

func (r *Recorder) Start() {
	r.timer.Start()
}

func (r *Recorder) Stop() {
	r.timer.Stop()
}

func (r *Recorder) Running() bool {
	return r.timer.Running()
}

func (r *Recorder) CurrentElapsed() time.Duration {
	return r.timer.CurrentElapsed()
}

// Record stores the current clock reading as the finish time of the lane at
// index. The clock keeps its state; with no prior Start the time is 0.
func (r *Recorder) Record(index int) error {
	if err := r.checkIndex(index); err != nil {
		return err
	}
	ms := r.timer.CurrentElapsed().Milliseconds()
	r.lanes[index].TimeMS = &ms
	r.logger.Debug("lane time recorded", "lane", r.lanes[index].Lane, "time_ms", ms)
	return nil
}

// Clear removes the finish time of the lane at index.
func (r *Recorder) Clear(index int) error {
	if err := r.checkIndex(index); err != nil {
		return err
	}
	r.lanes[index].TimeMS = nil
	r.logger.Debug("lane time cleared", "lane", r.lanes[index].Lane)
	return nil
}

// SetAthleteName renames the athlete of the lane at index, keeping its
// identity. A lane without an athlete gets a new one.
func (r *Recorder) SetAthleteName(index int, name string) error {
	if err := r.checkIndex(index); err != nil {
		return err
	}
	lane := &r.lanes[index]
	if lane.Athlete == nil {
		lane.Athlete = &athletics.Athlete{ID: r.newID()}
	} else {
		a := *lane.Athlete
		lane.Athlete = &a
	}
	lane.Athlete.Name = name
	return nil
}

func (r *Recorder) SetStatus(index int, status athletics.Status) error {
	if err := r.checkIndex(index); err != nil {
		return err
	}
	if !status.IsValid() {
		return athletics.WithMetadata(athletics.CodeStatusInvalid,
			fmt.Sprintf("invalid lane status %q", status),
			map[string]string{"status": string(status)})
	}
	r.lanes[index].Status = status
	r.logger.Debug("lane status set", "lane", r.lanes[index].Lane, "status", status)
	return nil
}

// Lanes returns a copy of the lanes in lane order.
func (r *Recorder) Lanes() []athletics.LaneAssignment {
	return cloneLanes(r.lanes)
}

// Finalize returns the lanes ordered by ascending finish time. Lanes without a
// time come last; equal keys keep lane order. The recorder is not modified.
func (r *Recorder) Finalize() []athletics.LaneAssignment {
	ranked := cloneLanes(r.lanes)
	slices.SortStableFunc(ranked, func(a, b athletics.LaneAssignment) int {
		if a.TimeMS == nil && b.TimeMS == nil {
			return 0
		}
		if a.TimeMS == nil {
			return 1
		}
		if b.TimeMS == nil {
			return -1
		}
		switch {
		case *a.TimeMS < *b.TimeMS:
			return -1
		case *a.TimeMS > *b.TimeMS:
			return 1
		}
		return 0
	})
	return ranked
}

func (r *Recorder) checkIndex(index int) error {
	if index < 0 || index >= len(r.lanes) {
		return athletics.WithMetadata(athletics.CodeLaneOutOfRange,
			fmt.Sprintf("lane index %d out of range [0, %d)", index, len(r.lanes)),
			map[string]string{"lane": strconv.Itoa(index + 1), "lanes": strconv.Itoa(len(r.lanes))})
	}
	return nil
}

func cloneLanes(lanes []athletics.LaneAssignment) []athletics.LaneAssignment {
	c := make([]athletics.LaneAssignment, len(lanes))
	for i, l := range lanes {
		c[i] = l.Clone()
	}
	return c
}
