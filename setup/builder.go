// Package setup validates user supplied event parameters and builds the
// SportEvent the recorders run from.
package setup

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Nydauron/trackside/athletics"
)

const (
	DefaultLanes    = 6
	MinLanes        = 2
	DefaultAttempts = 3
	MinAttempts     = 1
)

// Params is the raw text of the event setup form. Numeric fields are parsed
// leniently: text that does not parse falls back to a default or to unset.
type Params struct {
	Name       string
	Kind       string
	Discipline string
	Phase      string
	Lanes      string
	Attempts   string
	WindLimit  string
	ByPlace    string
	ByTime     string
	Distance   string
	Notes      string
}

type options struct {
	newID func() string
}

type Option = func(o *options)

// WithIDGenerator configures how the event gets its identity.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

// Build validates params and constructs the event. An empty or blank name, or
// a kind outside the known kinds, aborts construction. The participants are
// copied in order.
func Build(params Params, participants []athletics.Athlete, opts ...Option) (athletics.SportEvent, error) {
	o := options{newID: athletics.NewID}
	for _, opt := range opts {
		opt(&o)
	}

	name := strings.TrimSpace(params.Name)
	if name == "" {
		return athletics.SportEvent{}, athletics.ErrEventNameEmpty
	}
	kind := athletics.EventKind(strings.ToLower(strings.TrimSpace(params.Kind)))
	if kind == "" {
		kind = athletics.KindTrack
	}
	if !kind.IsValid() {
		return athletics.SportEvent{}, athletics.WithMetadata(athletics.CodeEventKindInvalid,
			fmt.Sprintf("invalid event kind %q", params.Kind),
			map[string]string{"kind": params.Kind})
	}

	discipline := strings.TrimSpace(params.Discipline)
	if discipline == "" {
		discipline = DefaultDiscipline(kind)
	}

	ev := athletics.SportEvent{
		ID:             o.newID(),
		Name:           name,
		Kind:           kind,
		Discipline:     discipline,
		Phase:          parsePhase(params.Phase),
		DistanceMeters: parseFloat(params.Distance),
		WindLegalLimit: parseFloat(params.WindLimit),
		Qualification: athletics.Qualification{
			ByTime: parseFloat(params.ByTime),
		},
		Participants: append([]athletics.Athlete{}, participants...),
		Notes:        strings.TrimSpace(params.Notes),
	}
	switch kind {
	case athletics.KindTrack:
		lanes := parseCount(params.Lanes, DefaultLanes, MinLanes)
		ev.Lanes = &lanes
	case athletics.KindField:
		attempts := parseCount(params.Attempts, DefaultAttempts, MinAttempts)
		ev.AttemptsPerAthlete = &attempts
	}
	if n, ok := parseInt(params.ByPlace); ok {
		place := max(0, n)
		ev.Qualification.ByPlace = &place
	}
	return ev, nil
}

// parseCount returns max(floor, n) for parsable text, def otherwise.
func parseCount(raw string, def, floor int) int {
	n, ok := parseInt(raw)
	if !ok {
		return def
	}
	return max(floor, n)
}

func parseInt(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseFloat(raw string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// parsePhase matches the phase names in any case. Unknown or blank text is
// Single.
func parsePhase(raw string) athletics.Phase {
	for _, p := range athletics.Phases() {
		if strings.EqualFold(strings.TrimSpace(raw), string(p)) {
			return p
		}
	}
	return athletics.PhaseSingle
}
