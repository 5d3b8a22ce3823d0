// Package field records attempts for distance events (jumps and throws) and
// ranks athletes by their best valid mark.
package field

import (
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/Nydauron/trackside/athletics"
)

// DefaultAttempts is the attempt count used when an event does not specify one.
const DefaultAttempts = 3

// Recorder owns the entries of one field event. Every mutation recomputes the
// best mark of the athlete it touched.
type Recorder struct {
	entries []athletics.FieldEntry
	newID   func() string
	logger  *slog.Logger
}

type RecorderOption = func(r *Recorder)

// WithIDGenerator configures how attempts get their identity.
func WithIDGenerator(newID func() string) RecorderOption {
	return func(r *Recorder) { r.newID = newID }
}

// WithLogger configures the logger used by the recorder.
func WithLogger(l *slog.Logger) RecorderOption {
	return func(r *Recorder) { r.logger = l }
}

// NewRecorder creates one entry per athlete, each holding attempts empty
// attempts (DefaultAttempts when attempts < 1). The athletes are copied.
func NewRecorder(athletes []athletics.Athlete, attempts int, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		newID:  athletics.NewID,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if attempts < 1 {
		attempts = DefaultAttempts
	}
	r.entries = make([]athletics.FieldEntry, len(athletes))
	for i, a := range athletes {
		series := make([]athletics.Attempt, attempts)
		for n := range series {
			series[n] = athletics.Attempt{ID: r.newID(), AttemptNumber: n + 1}
		}
		r.entries[i] = athletics.FieldEntry{
			Athlete:  a,
			Attempts: series,
			Status:   athletics.StatusOK,
		}
	}
	return r
}

// SetValue parses raw as a distance in meters and stores it on the attempt,
// clearing any foul. Text that does not parse clears the value instead.
func (r *Recorder) SetValue(athleteIndex, attemptIndex int, raw string) error {
	at, err := r.attempt(athleteIndex, attemptIndex)
	if err != nil {
		return err
	}
	at.ValueMeters = parseMark(raw)
	at.Foul = false
	r.recompute(athleteIndex)
	r.logger.Debug("attempt value set",
		"athlete", r.entries[athleteIndex].Athlete.ID,
		"attempt", at.AttemptNumber,
		"raw", raw,
		"parsed", at.ValueMeters != nil)
	return nil
}

// ToggleFoul flips the foul flag of the attempt. A fouled attempt loses its
// value.
func (r *Recorder) ToggleFoul(athleteIndex, attemptIndex int) error {
	at, err := r.attempt(athleteIndex, attemptIndex)
	if err != nil {
		return err
	}
	at.Foul = !at.Foul
	if at.Foul {
		at.ValueMeters = nil
	}
	r.recompute(athleteIndex)
	r.logger.Debug("attempt foul toggled",
		"athlete", r.entries[athleteIndex].Athlete.ID,
		"attempt", at.AttemptNumber,
		"foul", at.Foul)
	return nil
}

func (r *Recorder) SetStatus(athleteIndex int, status athletics.Status) error {
	if err := r.checkAthlete(athleteIndex); err != nil {
		return err
	}
	if !status.IsValid() {
		return athletics.WithMetadata(athletics.CodeStatusInvalid,
			fmt.Sprintf("invalid entry status %q", status),
			map[string]string{"status": string(status)})
	}
	r.entries[athleteIndex].Status = status
	return nil
}

// Entries returns a copy of the entries in participant order.
func (r *Recorder) Entries() []athletics.FieldEntry {
	return cloneEntries(r.entries)
}

// Finalize returns the entries ordered by descending best mark. Entries
// without a mark come last; equal keys keep participant order. The recorder
// is not modified.
func (r *Recorder) Finalize() []athletics.FieldEntry {
	ranked := cloneEntries(r.entries)
	slices.SortStableFunc(ranked, func(a, b athletics.FieldEntry) int {
		if a.Best == nil && b.Best == nil {
			return 0
		}
		if a.Best == nil {
			return 1
		}
		if b.Best == nil {
			return -1
		}
		switch {
		case *a.Best > *b.Best:
			return -1
		case *a.Best < *b.Best:
			return 1
		}
		return 0
	})
	return ranked
}

func (r *Recorder) recompute(athleteIndex int) {
	e := &r.entries[athleteIndex]
	e.Best = athletics.BestMark(e.Attempts)
}

func (r *Recorder) attempt(athleteIndex, attemptIndex int) (*athletics.Attempt, error) {
	if err := r.checkAthlete(athleteIndex); err != nil {
		return nil, err
	}
	series := r.entries[athleteIndex].Attempts
	if attemptIndex < 0 || attemptIndex >= len(series) {
		return nil, athletics.WithMetadata(athletics.CodeAttemptOutOfRange,
			fmt.Sprintf("attempt index %d out of range [0, %d)", attemptIndex, len(series)),
			map[string]string{"attempt": strconv.Itoa(attemptIndex + 1), "attempts": strconv.Itoa(len(series))})
	}
	return &series[attemptIndex], nil
}

func (r *Recorder) checkAthlete(athleteIndex int) error {
	if athleteIndex < 0 || athleteIndex >= len(r.entries) {
		return athletics.WithMetadata(athletics.CodeAthleteOutOfRange,
			fmt.Sprintf("athlete index %d out of range [0, %d)", athleteIndex, len(r.entries)),
			map[string]string{"athlete": strconv.Itoa(athleteIndex + 1), "athletes": strconv.Itoa(len(r.entries))})
	}
	return nil
}

// leadingNumber matches the decimal number a mark starts with, so that
// "7.24 m" reads as 7.24 and "7,24" as 7.
var leadingNumber = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?`)

// parseMark reads the leading number of raw. It returns nil when raw does not
// start with one or the number is not finite.
func parseMark(raw string) *float64 {
	v, err := strconv.ParseFloat(leadingNumber.FindString(strings.TrimSpace(raw)), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// FormatMark renders a mark with two decimals, or - when absent.
func FormatMark(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f m", *v)
}

func cloneEntries(entries []athletics.FieldEntry) []athletics.FieldEntry {
	c := make([]athletics.FieldEntry, len(entries))
	for i, e := range entries {
		c[i] = e.Clone()
	}
	return c
}
