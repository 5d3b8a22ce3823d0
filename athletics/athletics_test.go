package athletics

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func ptr[T any](v T) *T { return &v }

func TestBestMark(t *testing.T) {
	tests := []struct {
		name     string
		attempts []Attempt
		want     *float64
	}{
		{name: "no attempts", attempts: nil, want: nil},
		{name: "all empty", attempts: []Attempt{{AttemptNumber: 1}, {AttemptNumber: 2}}, want: nil},
		{name: "all fouled", attempts: []Attempt{{Foul: true}, {Foul: true}}, want: nil},
		{
			name:     "skips fouls",
			attempts: []Attempt{{ValueMeters: ptr(7.1)}, {Foul: true}, {ValueMeters: ptr(7.3)}},
			want:     ptr(7.3),
		},
		{
			name:     "fouled attempt with stale value is ignored",
			attempts: []Attempt{{ValueMeters: ptr(9.0), Foul: true}, {ValueMeters: ptr(6.2)}},
			want:     ptr(6.2),
		},
		{
			name:     "negative marks still count",
			attempts: []Attempt{{ValueMeters: ptr(-1.5)}, {}},
			want:     ptr(-1.5),
		},
		{
			name:     "zero is a mark",
			attempts: []Attempt{{ValueMeters: ptr(0.0)}},
			want:     ptr(0.0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BestMark(tt.attempts)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("expected best %v, got %v", tt.want, got)
			}
			if got != nil && *got != *tt.want {
				t.Fatalf("expected best %v, got %v", *tt.want, *got)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	lane := LaneAssignment{Lane: 1, Athlete: &Athlete{ID: "a", Name: "Ann"}, TimeMS: ptr(int64(10_500)), Status: StatusOK}
	c := lane.Clone()
	c.Athlete.Name = "Bob"
	*c.TimeMS = 1
	if lane.Athlete.Name != "Ann" || *lane.TimeMS != 10_500 {
		t.Fatalf("lane clone shares memory with original: %+v", lane)
	}

	entry := FieldEntry{
		Athlete:  Athlete{ID: "b"},
		Attempts: []Attempt{{ID: "x", AttemptNumber: 1, ValueMeters: ptr(5.5)}},
		Best:     ptr(5.5),
	}
	ce := entry.Clone()
	*ce.Attempts[0].ValueMeters = 1
	*ce.Best = 1
	ce.Attempts[0].Foul = true
	if *entry.Attempts[0].ValueMeters != 5.5 || *entry.Best != 5.5 || entry.Attempts[0].Foul {
		t.Fatalf("entry clone shares memory with original: %+v", entry)
	}
}

func TestValidity(t *testing.T) {
	for _, k := range Kinds() {
		if !k.IsValid() {
			t.Errorf("expected kind %q to be valid", k)
		}
	}
	if EventKind("relay").IsValid() {
		t.Error("expected unknown kind to be invalid")
	}
	for _, s := range Statuses() {
		if !s.IsValid() {
			t.Errorf("expected status %q to be valid", s)
		}
	}
	if Status("DNQ").IsValid() {
		t.Error("expected unknown status to be invalid")
	}
	if !PhaseSingle.IsValid() || Phase("Round 2").IsValid() {
		t.Error("unexpected phase validity")
	}
}

func TestNewIDIsUnique(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		id := NewID()
		if len(id) != 36 {
			t.Fatalf("expected 36-character uuid, got %q", id)
		}
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestErrorIsMatchesByCode(t *testing.T) {
	err := WithMetadata(CodeLaneOutOfRange, "lane index 9 out of range", map[string]string{"lane": "10", "lanes": "6"})
	if !errors.Is(err, ErrLaneOutOfRange) {
		t.Fatal("expected errors.Is to match by code")
	}
	if errors.Is(err, ErrAttemptOutOfRange) {
		t.Fatal("expected different codes not to match")
	}
	wrapped := fmt.Errorf("record: %w", err)
	if !errors.Is(wrapped, ErrLaneOutOfRange) {
		t.Fatal("expected wrapped error to match")
	}
}

func TestUserMessage(t *testing.T) {
	t.Run("name required", func(t *testing.T) {
		got := UserMessage(ErrEventNameEmpty, language.English)
		if !strings.Contains(got, "Please provide a name") {
			t.Fatalf("unexpected message %q", got)
		}
	})
	t.Run("metadata is substituted", func(t *testing.T) {
		err := WithMetadata(CodeLaneOutOfRange, "out of range", map[string]string{"lane": "9", "lanes": "8"})
		got := UserMessage(err, language.English)
		if got != "Lane 9 does not exist, this heat has 8 lanes." {
			t.Fatalf("unexpected message %q", got)
		}
	})
	t.Run("unknown locale falls back to english", func(t *testing.T) {
		got := UserMessage(fmt.Errorf("build: %w", ErrEventNameEmpty), language.Japanese)
		if !strings.Contains(got, "Please provide a name") {
			t.Fatalf("unexpected message %q", got)
		}
	})
	t.Run("foreign errors pass through", func(t *testing.T) {
		got := UserMessage(errors.New("disk full"), language.English)
		if got != "disk full" {
			t.Fatalf("unexpected message %q", got)
		}
	})
	t.Run("nil", func(t *testing.T) {
		if got := UserMessage(nil, language.English); got != "" {
			t.Fatalf("expected empty message, got %q", got)
		}
	})
}
