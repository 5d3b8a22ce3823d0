package app

import (
	"fmt"

	"dario.cat/mergo"

	"github.com/Nydauron/trackside/setup"
)

// FormDefaults are the values the setup form starts with. Empty fields leave
// the corresponding input blank.
type FormDefaults struct {
	Kind      string
	Phase     string
	Lanes     string
	Attempts  string
	WindLimit string
	ByPlace   string
}

// DefaultFormDefaults mirrors the inputs a fresh setup screen shows.
func DefaultFormDefaults() FormDefaults {
	return FormDefaults{
		Kind:      "track",
		Phase:     "Single",
		Lanes:     "6",
		Attempts:  "6",
		WindLimit: "2.0",
		ByPlace:   "3",
	}
}

// Given marks the form inputs the user touched. A touched input keeps its
// value, blank included, so a cleared wind limit stays unset.
type Given struct {
	Kind      bool
	Phase     bool
	Lanes     bool
	Attempts  bool
	WindLimit bool
	ByPlace   bool
}

// ApplyDefaults fills every blank, untouched field of params from defaults.
// Fields the user typed, even unparsable ones, are left for setup.Build to
// judge.
func ApplyDefaults(params setup.Params, defaults FormDefaults, given Given) (setup.Params, error) {
	src := setup.Params{
		Kind:      untouched(given.Kind, defaults.Kind),
		Phase:     untouched(given.Phase, defaults.Phase),
		Lanes:     untouched(given.Lanes, defaults.Lanes),
		Attempts:  untouched(given.Attempts, defaults.Attempts),
		WindLimit: untouched(given.WindLimit, defaults.WindLimit),
		ByPlace:   untouched(given.ByPlace, defaults.ByPlace),
	}
	if err := mergo.Merge(&params, src); err != nil {
		return params, fmt.Errorf("applying form defaults: %w", err)
	}
	return params, nil
}

func untouched(given bool, def string) string {
	if given {
		return ""
	}
	return def
}

// Override returns d with every non-empty field of o replacing its own.
func (d FormDefaults) Override(o FormDefaults) (FormDefaults, error) {
	if err := mergo.Merge(&d, o, mergo.WithOverride); err != nil {
		return d, fmt.Errorf("overriding form defaults: %w", err)
	}
	return d, nil
}
