package prompts

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Nydauron/trackside/athletics"
	"github.com/Nydauron/trackside/setup"
)

func newPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func TestEventNamePromptSkipsBlankLines(t *testing.T) {
	p, out := newPrompter("\n   \n Men 100m \n")
	got, err := p.EventNamePrompt()
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if got != "Men 100m" {
		t.Fatalf("expected trimmed name, got %q", got)
	}
	if strings.Count(out.String(), "Event name: ") != 3 {
		t.Fatalf("expected three questions, got %q", out.String())
	}
}

func TestEventKindPrompt(t *testing.T) {
	tests := []struct {
		input string
		want  athletics.EventKind
	}{
		{"\n", athletics.KindTrack},
		{"Field\n", athletics.KindField},
		{"w\n", athletics.KindWalk},
		{"relay\nx\nm\n", athletics.KindMarathon},
	}
	for _, tt := range tests {
		p, _ := newPrompter(tt.input)
		got, err := p.EventKindPrompt()
		if err != nil {
			t.Fatalf("%q: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("%q: expected %q, got %q", tt.input, tt.want, got)
		}
	}
}

func TestDisciplinePrompt(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"\n", "Long Jump"},
		{"2\n", "Triple Jump"},
		{"Standing Long Jump\n", "Standing Long Jump"},
		{"99\n", "99"},
	}
	for _, tt := range tests {
		p, out := newPrompter(tt.input)
		got, err := p.DisciplinePrompt(athletics.KindField)
		if err != nil {
			t.Fatalf("%q: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("%q: expected %q, got %q", tt.input, tt.want, got)
		}
		if !strings.Contains(out.String(), "  1) Long Jump\n") {
			t.Errorf("expected preset listing, got %q", out.String())
		}
	}
}

func TestCountryPrompt(t *testing.T) {
	p, _ := newPrompter("Atlantis\nkenya\n")
	got, err := p.CountryPrompt("Ann")
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if got != "KEN" {
		t.Fatalf("expected KEN, got %q", got)
	}

	p, _ = newPrompter("\n")
	if got, err := p.CountryPrompt("Bea"); err != nil || got != "" {
		t.Fatalf("expected blank country, got %q (%v)", got, err)
	}
}

func TestConfirmPrompt(t *testing.T) {
	tests := []struct {
		input string
		def   bool
		want  bool
	}{
		{"\n", false, false},
		{"\n", true, true},
		{"maybe\nY\n", false, true},
		{"no\n", true, false},
	}
	for _, tt := range tests {
		p, _ := newPrompter(tt.input)
		got, err := p.ConfirmPrompt("Add participants?", tt.def)
		if err != nil {
			t.Fatalf("%q: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("%q default %v: expected %v, got %v", tt.input, tt.def, tt.want, got)
		}
	}
}

func TestParticipantsPrompt(t *testing.T) {
	p, out := newPrompter("\nkenya\n\nJAM\n\n\n\n")
	r := setup.NewRoster(nil)
	if err := p.ParticipantsPrompt(r); err != nil {
		t.Fatalf("prompt: %v", err)
	}
	got := r.Athletes()
	if len(got) != setup.DefaultBatchSize {
		t.Fatalf("expected %d athletes, got %d", setup.DefaultBatchSize, len(got))
	}
	if got[0].Country != "KEN" || got[1].Country != "" || got[2].Country != "JAM" {
		t.Fatalf("unexpected countries %q %q %q", got[0].Country, got[1].Country, got[2].Country)
	}
	if !strings.Contains(out.String(), "Country of Athlete 6: ") {
		t.Fatalf("expected a question per athlete, got %q", out.String())
	}

	p, _ = newPrompter("n\n")
	r = setup.NewRoster(nil)
	if err := p.ParticipantsPrompt(r); err != nil || r.Len() != 0 {
		t.Fatalf("expected no athletes after declining, got %d (%v)", r.Len(), err)
	}
}

func TestPromptEndOfInput(t *testing.T) {
	p, _ := newPrompter("last line without newline")
	got, err := p.Prompt("? ")
	if err != nil || got != "last line without newline" {
		t.Fatalf("expected final line, got %q (%v)", got, err)
	}
	if _, err := p.EventNamePrompt(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected unexpected EOF, got %v", err)
	}
}

func TestCountryCode(t *testing.T) {
	tests := map[string]string{"usa": "USA", "Jamaica": "JAM", " gbr ": "GBR", "United Kingdom": "GBR"}
	for in, want := range tests {
		got, ok := CountryCode(in)
		if !ok || got != want {
			t.Errorf("CountryCode(%q): expected %q, got %q (%v)", in, want, got, ok)
		}
	}
	if _, ok := CountryCode("Atlantis"); ok {
		t.Fatal("expected unknown country")
	}
	if got := NormalizeCountry(" Atlantis "); got != "Atlantis" {
		t.Fatalf("expected unknown country kept, got %q", got)
	}
}
