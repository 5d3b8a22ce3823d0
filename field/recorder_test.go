package field

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Nydauron/trackside/athletics"
)

func jumpers(n int) []athletics.Athlete {
	out := make([]athletics.Athlete, n)
	for i := range out {
		out[i] = athletics.Athlete{ID: fmt.Sprintf("j%d", i+1), Name: fmt.Sprintf("Jumper %d", i+1)}
	}
	return out
}

func mustSet(t *testing.T, r *Recorder, athlete, attempt int, raw string) {
	t.Helper()
	if err := r.SetValue(athlete, attempt, raw); err != nil {
		t.Fatalf("set value: %v", err)
	}
}

func mustFoul(t *testing.T, r *Recorder, athlete, attempt int) {
	t.Helper()
	if err := r.ToggleFoul(athlete, attempt); err != nil {
		t.Fatalf("toggle foul: %v", err)
	}
}

func assertBest(t *testing.T, e athletics.FieldEntry, want *float64) {
	t.Helper()
	if (e.Best == nil) != (want == nil) {
		t.Fatalf("%s: expected best %v, got %v", e.Athlete.ID, want, e.Best)
	}
	if want != nil && *e.Best != *want {
		t.Fatalf("%s: expected best %v, got %v", e.Athlete.ID, *want, *e.Best)
	}
	// the cached mark always agrees with the attempts
	derived := athletics.BestMark(e.Attempts)
	if (derived == nil) != (e.Best == nil) || (derived != nil && *derived != *e.Best) {
		t.Fatalf("%s: cached best %v disagrees with attempts %v", e.Athlete.ID, e.Best, derived)
	}
}

func ptr(v float64) *float64 { return &v }

func TestNewRecorder(t *testing.T) {
	n := 0
	r := NewRecorder(jumpers(2), 4, WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("att-%d", n)
	}))
	entries := r.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if len(e.Attempts) != 4 {
			t.Fatalf("expected 4 attempts, got %d", len(e.Attempts))
		}
		for i, a := range e.Attempts {
			if a.AttemptNumber != i+1 {
				t.Errorf("expected attempt number %d, got %d", i+1, a.AttemptNumber)
			}
			if a.ValueMeters != nil || a.Foul {
				t.Errorf("expected empty attempt, got %+v", a)
			}
		}
		if e.Best != nil || e.Status != athletics.StatusOK {
			t.Errorf("unexpected initial entry %+v", e)
		}
	}
	if entries[1].Attempts[3].ID != "att-8" {
		t.Fatalf("expected distinct generated attempt ids, got %q", entries[1].Attempts[3].ID)
	}

	if got := len(NewRecorder(jumpers(1), 0).Entries()[0].Attempts); got != DefaultAttempts {
		t.Fatalf("expected %d default attempts, got %d", DefaultAttempts, got)
	}
	if got := len(NewRecorder(nil, 3).Entries()); got != 0 {
		t.Fatalf("expected no entries, got %d", got)
	}
}

func TestMixedSeriesBest(t *testing.T) {
	r := NewRecorder(jumpers(2), 3)
	mustSet(t, r, 0, 0, "7.24")
	mustSet(t, r, 0, 1, "foulish")
	mustFoul(t, r, 0, 2)
	mustSet(t, r, 1, 0, "6.90")

	entries := r.Entries()
	assertBest(t, entries[0], ptr(7.24))
	assertBest(t, entries[1], ptr(6.90))
	if entries[0].Attempts[1].ValueMeters != nil {
		t.Fatal("expected unparsable text to leave the attempt empty")
	}
	if !entries[0].Attempts[2].Foul {
		t.Fatal("expected third attempt fouled")
	}

	ranked := r.Finalize()
	if ranked[0].Athlete.ID != "j1" || ranked[1].Athlete.ID != "j2" {
		t.Fatalf("expected j1 ahead of j2, got %s, %s", ranked[0].Athlete.ID, ranked[1].Athlete.ID)
	}
}

func TestAllFouledSeriesHasNoBest(t *testing.T) {
	r := NewRecorder(jumpers(3), 3)
	for i := 0; i < 3; i++ {
		mustFoul(t, r, 0, i)
	}
	mustSet(t, r, 1, 2, "5.01")
	assertBest(t, r.Entries()[0], nil)

	ranked := r.Finalize()
	if ranked[0].Athlete.ID != "j2" {
		t.Fatalf("expected j2 first, got %s", ranked[0].Athlete.ID)
	}
	// j1 and j3 have no mark and keep participant order
	if ranked[1].Athlete.ID != "j1" || ranked[2].Athlete.ID != "j3" {
		t.Fatalf("expected j1, j3 last, got %s, %s", ranked[1].Athlete.ID, ranked[2].Athlete.ID)
	}
}

func TestFoulValueExclusivity(t *testing.T) {
	r := NewRecorder(jumpers(1), 3)

	mustSet(t, r, 0, 0, "8.10")
	mustFoul(t, r, 0, 0)
	e := r.Entries()[0]
	if !e.Attempts[0].Foul || e.Attempts[0].ValueMeters != nil {
		t.Fatalf("expected foul with no value, got %+v", e.Attempts[0])
	}
	assertBest(t, e, nil)

	mustFoul(t, r, 0, 0)
	e = r.Entries()[0]
	if e.Attempts[0].Foul || e.Attempts[0].ValueMeters != nil {
		t.Fatalf("expected unfouled empty attempt, got %+v", e.Attempts[0])
	}

	mustFoul(t, r, 0, 1)
	mustSet(t, r, 0, 1, " 7.95 ")
	e = r.Entries()[0]
	if e.Attempts[1].Foul {
		t.Fatal("expected set value to clear foul")
	}
	assertBest(t, e, ptr(7.95))

	// a failed parse also clears the foul
	mustFoul(t, r, 0, 2)
	mustSet(t, r, 0, 2, "x")
	e = r.Entries()[0]
	if e.Attempts[2].Foul || e.Attempts[2].ValueMeters != nil {
		t.Fatalf("expected cleared attempt, got %+v", e.Attempts[2])
	}
}

func TestBestTracksEveryMutation(t *testing.T) {
	r := NewRecorder(jumpers(1), 4)
	steps := []struct {
		apply func()
		want  *float64
	}{
		{func() { mustSet(t, r, 0, 0, "6.50") }, ptr(6.50)},
		{func() { mustSet(t, r, 0, 1, "6.80") }, ptr(6.80)},
		{func() { mustSet(t, r, 0, 1, "6.10") }, ptr(6.50)},
		{func() { mustFoul(t, r, 0, 0) }, ptr(6.10)},
		{func() { mustSet(t, r, 0, 1, "") }, nil},
		{func() { mustSet(t, r, 0, 3, "-0.5") }, ptr(-0.5)},
		{func() { mustSet(t, r, 0, 2, "0") }, ptr(0)},
		{func() { mustSet(t, r, 0, 2, "NaN") }, ptr(-0.5)},
		{func() { mustSet(t, r, 0, 2, "Inf") }, ptr(-0.5)},
	}
	for i, step := range steps {
		step.apply()
		t.Run(fmt.Sprintf("step %d", i+1), func(t *testing.T) {
			assertBest(t, r.Entries()[0], step.want)
		})
	}
}

func TestSetValueReadsLeadingNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want *float64
	}{
		{"7.24m", ptr(7.24)},
		{"7.24 m", ptr(7.24)},
		{" 7.24m ", ptr(7.24)},
		{"7,24", ptr(7)},
		{".5", ptr(0.5)},
		{"8.", ptr(8)},
		{"+6.1e0x", ptr(6.1)},
		{"abc", nil},
		{"-", nil},
		{"m7.24", nil},
		{"1e999", nil},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			r := NewRecorder(jumpers(1), 1)
			mustSet(t, r, 0, 0, tt.raw)
			got := r.Entries()[0].Attempts[0].ValueMeters
			switch {
			case tt.want == nil && got != nil:
				t.Fatalf("expected no mark, got %v", *got)
			case tt.want != nil && (got == nil || *got != *tt.want):
				t.Fatalf("expected %v, got %v", *tt.want, got)
			}
		})
	}
}

func TestFinalizeOrdering(t *testing.T) {
	r := NewRecorder(jumpers(5), 3)
	mustSet(t, r, 0, 0, "6.00")
	mustSet(t, r, 1, 0, "7.00")
	mustSet(t, r, 3, 2, "7.00") // tie with j2
	mustSet(t, r, 4, 1, "6.50")

	ranked := r.Finalize()
	want := []string{"j2", "j4", "j5", "j1", "j3"}
	for i, w := range want {
		if ranked[i].Athlete.ID != w {
			t.Fatalf("position %d: expected %s, got %s", i+1, w, ranked[i].Athlete.ID)
		}
	}

	if entries := r.Entries(); entries[0].Athlete.ID != "j1" {
		t.Fatal("expected finalize to leave participant order untouched")
	}
	*ranked[0].Best = 99
	ranked[0].Attempts[0].Foul = true
	if e := r.Entries()[1]; *e.Best != 7.00 || e.Attempts[0].Foul {
		t.Fatal("expected ranking to be a deep copy")
	}
}

func TestIndexErrors(t *testing.T) {
	r := NewRecorder(jumpers(2), 3)
	if err := r.SetValue(2, 0, "1"); !errors.Is(err, athletics.ErrAthleteOutOfRange) {
		t.Fatalf("expected athlete out of range, got %v", err)
	}
	if err := r.ToggleFoul(-1, 0); !errors.Is(err, athletics.ErrAthleteOutOfRange) {
		t.Fatalf("expected athlete out of range, got %v", err)
	}
	if err := r.SetValue(0, 3, "1"); !errors.Is(err, athletics.ErrAttemptOutOfRange) {
		t.Fatalf("expected attempt out of range, got %v", err)
	}
	if err := r.ToggleFoul(1, -1); !errors.Is(err, athletics.ErrAttemptOutOfRange) {
		t.Fatalf("expected attempt out of range, got %v", err)
	}
	for _, e := range r.Entries() {
		assertBest(t, e, nil)
	}
}

func TestSetStatus(t *testing.T) {
	r := NewRecorder(jumpers(2), 3)
	if err := r.SetStatus(1, athletics.StatusDNS); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if got := r.Entries()[1].Status; got != athletics.StatusDNS {
		t.Fatalf("expected DNS, got %s", got)
	}
	if err := r.SetStatus(0, "NM"); !errors.Is(err, athletics.ErrStatusInvalid) {
		t.Fatalf("expected invalid status, got %v", err)
	}
	if err := r.SetStatus(4, athletics.StatusOK); !errors.Is(err, athletics.ErrAthleteOutOfRange) {
		t.Fatalf("expected athlete out of range, got %v", err)
	}
}

func TestFormatMark(t *testing.T) {
	if got := FormatMark(nil); got != "-" {
		t.Fatalf("expected -, got %q", got)
	}
	if got := FormatMark(ptr(7.2)); got != "7.20 m" {
		t.Fatalf("expected 7.20 m, got %q", got)
	}
}
