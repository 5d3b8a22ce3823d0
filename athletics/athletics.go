// Package athletics defines the entities shared by the track and field
// recorders, the event builder and the export adapter.
package athletics

import "github.com/google/uuid"

const (
	KindTrack    EventKind = "track"
	KindField    EventKind = "field"
	KindCombined EventKind = "combined"
	KindWalk     EventKind = "walk"
	KindMarathon EventKind = "marathon"
)

const (
	PhaseHeats         Phase = "Heats"
	PhaseSemifinal     Phase = "Semifinal"
	PhaseFinal         Phase = "Final"
	PhaseQualification Phase = "Qualification"
	PhaseFinals        Phase = "Finals"
	PhaseSingle        Phase = "Single"
)

const (
	StatusOK  Status = "OK"
	StatusDNS Status = "DNS"
	StatusDNF Status = "DNF"
	StatusDQ  Status = "DQ"
)

// EventKind is the broad family an event belongs to.
type EventKind string

// Kinds lists every event kind in display order.
func Kinds() []EventKind {
	return []EventKind{KindTrack, KindField, KindCombined, KindWalk, KindMarathon}
}

func (k EventKind) IsValid() bool {
	switch k {
	case KindTrack, KindField, KindCombined, KindWalk, KindMarathon:
		return true
	}
	return false
}

// Phase is the round of competition, e.g. heats or a final.
type Phase string

// Phases lists every phase in competition order.
func Phases() []Phase {
	return []Phase{PhaseQualification, PhaseHeats, PhaseSemifinal, PhaseFinal, PhaseFinals, PhaseSingle}
}

func (p Phase) IsValid() bool {
	switch p {
	case PhaseHeats, PhaseSemifinal, PhaseFinal, PhaseQualification, PhaseFinals, PhaseSingle:
		return true
	}
	return false
}

// Status is the outcome flag carried by a lane or a field entry.
type Status string

// Statuses lists every result status in display order.
func Statuses() []Status {
	return []Status{StatusOK, StatusDNS, StatusDNF, StatusDQ}
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOK, StatusDNS, StatusDNF, StatusDQ:
		return true
	}
	return false
}

// NewID returns a random UUIDv4 string used for athletes, attempts and events.
func NewID() string {
	return uuid.NewString()
}

type Athlete struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Bib     string `json:"bib,omitempty" yaml:"bib,omitempty"`
	Country string `json:"country,omitempty" yaml:"country,omitempty"`
}

// LaneAssignment is one lane of a track race. TimeMS is nil until a finish
// time has been recorded for the lane.
type LaneAssignment struct {
	Lane    int      `json:"lane" yaml:"lane"`
	Athlete *Athlete `json:"athlete" yaml:"athlete"`
	TimeMS  *int64   `json:"timeMs" yaml:"timeMs"`
	Status  Status   `json:"status" yaml:"status"`
}

// Clone returns a deep copy of the lane.
func (l LaneAssignment) Clone() LaneAssignment {
	c := l
	if l.Athlete != nil {
		a := *l.Athlete
		c.Athlete = &a
	}
	if l.TimeMS != nil {
		t := *l.TimeMS
		c.TimeMS = &t
	}
	return c
}

// Attempt is one trial of a field event. ValueMeters and Foul are mutually
// exclusive: a fouled attempt never carries a value.
type Attempt struct {
	ID            string   `json:"id" yaml:"id"`
	AttemptNumber int      `json:"attemptNumber" yaml:"attemptNumber"`
	ValueMeters   *float64 `json:"valueMeters" yaml:"valueMeters"`
	Foul          bool     `json:"foul" yaml:"foul"`
	Wind          *float64 `json:"wind,omitempty" yaml:"wind,omitempty"`
}

func (a Attempt) Clone() Attempt {
	c := a
	if a.ValueMeters != nil {
		v := *a.ValueMeters
		c.ValueMeters = &v
	}
	if a.Wind != nil {
		w := *a.Wind
		c.Wind = &w
	}
	return c
}

// FieldEntry holds all attempts of one athlete in a field event. Best is the
// highest non-foul value among the attempts, nil when there is none.
type FieldEntry struct {
	Athlete  Athlete   `json:"athlete" yaml:"athlete"`
	Attempts []Attempt `json:"attempts" yaml:"attempts"`
	Best     *float64  `json:"best" yaml:"best"`
	Status   Status    `json:"status" yaml:"status"`
}

func (e FieldEntry) Clone() FieldEntry {
	c := e
	c.Attempts = make([]Attempt, len(e.Attempts))
	for i, a := range e.Attempts {
		c.Attempts[i] = a.Clone()
	}
	if e.Best != nil {
		b := *e.Best
		c.Best = &b
	}
	return c
}

// BestMark returns the maximum value over the attempts that are not fouled
// and carry a value, or nil when no such attempt exists.
func BestMark(attempts []Attempt) *float64 {
	var best *float64
	for _, a := range attempts {
		if a.Foul || a.ValueMeters == nil {
			continue
		}
		if best == nil || *a.ValueMeters > *best {
			v := *a.ValueMeters
			best = &v
		}
	}
	return best
}

type Qualification struct {
	ByPlace *int     `json:"byPlace,omitempty" yaml:"byPlace,omitempty"`
	ByTime  *float64 `json:"byTime" yaml:"byTime"`
}

// SportEvent is the configuration of one event. It is built once by the
// setup package and never mutated by the recorders.
type SportEvent struct {
	ID                 string        `json:"id" yaml:"id"`
	Name               string        `json:"name" yaml:"name"`
	Kind               EventKind     `json:"kind" yaml:"kind"`
	Discipline         string        `json:"discipline" yaml:"discipline"`
	Phase              Phase         `json:"phase,omitempty" yaml:"phase,omitempty"`
	Lanes              *int          `json:"lanes,omitempty" yaml:"lanes,omitempty"`
	AttemptsPerAthlete *int          `json:"attemptsPerAthlete,omitempty" yaml:"attemptsPerAthlete,omitempty"`
	DistanceMeters     *float64      `json:"distanceMeters,omitempty" yaml:"distanceMeters,omitempty"`
	WindLegalLimit     *float64      `json:"windLegalLimit" yaml:"windLegalLimit"`
	Qualification      Qualification `json:"qualification" yaml:"qualification"`
	Participants       []Athlete     `json:"participants" yaml:"participants"`
	Notes              string        `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Result is a single finalized row: a LaneAssignment or a FieldEntry.
type Result interface {
	result()
}

func (LaneAssignment) result() {}
func (FieldEntry) result()     {}
