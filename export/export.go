// Package export packages an event and its finalized ranking into the
// payload handed to whatever shares or stores results.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Nydauron/trackside/athletics"
	"gopkg.in/yaml.v3"
)

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Format is a text interchange format for payloads.
type Format string

// ParseFormat accepts yaml, yml or json in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Payload is an event plus its results in rank order. Results is nil when
// the recorder was never finalized and encodes without a results key; a
// finalized event with no athletes encodes an empty list.
type Payload struct {
	Event   athletics.SportEvent
	Results []athletics.Result
}

type payloadDoc struct {
	Event   athletics.SportEvent `json:"event" yaml:"event"`
	Results *[]athletics.Result  `json:"results,omitempty" yaml:"results,omitempty"`
}

func (p Payload) doc() payloadDoc {
	d := payloadDoc{Event: p.Event}
	if p.Results != nil {
		d.Results = &p.Results
	}
	return d
}

func (p Payload) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.doc())
}

func (p Payload) MarshalYAML() (any, error) {
	return p.doc(), nil
}

// New returns a payload carrying only the event.
func New(event athletics.SportEvent) Payload {
	return Payload{Event: event}
}

// FromTrack packages a finalized lane ranking.
func FromTrack(event athletics.SportEvent, ranked []athletics.LaneAssignment) Payload {
	results := make([]athletics.Result, len(ranked))
	for i, l := range ranked {
		results[i] = l
	}
	return Payload{Event: event, Results: results}
}

// FromField packages a finalized field ranking.
func FromField(event athletics.SportEvent, ranked []athletics.FieldEntry) Payload {
	results := make([]athletics.Result, len(ranked))
	for i, e := range ranked {
		results[i] = e
	}
	return Payload{Event: event, Results: results}
}

// Encode writes v, typically a Payload or a SportEvent, to w in format.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding to YAML failed: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding to YAML failed on close: %w", err)
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding to JSON failed: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown export format %q", format)
}

// ReadEvents reads either a single event or a list of events, as written
// by Encode. YAML is a superset of JSON, so both formats are accepted.
func ReadEvents(r io.Reader) ([]athletics.SportEvent, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading events failed: %w", err)
	}
	var evs []athletics.SportEvent
	if err := yaml.Unmarshal(data, &evs); err == nil {
		return evs, nil
	}
	var ev athletics.SportEvent
	if err := yaml.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("decoding events failed: %w", err)
	}
	return []athletics.SportEvent{ev}, nil
}
