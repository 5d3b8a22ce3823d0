// Package app holds the application state that sits above the recorders:
// which screen is showing, the events created so far and the dashboard of the
// selected event. State is a value; every transition returns a new one.
package app

import (
	"fmt"
	"slices"

	"github.com/Nydauron/trackside/athletics"
	"github.com/Nydauron/trackside/setup"
)

const (
	ScreenHome Screen = iota
	ScreenSetup
	ScreenDashboard
)

type Screen int

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenSetup:
		return "setup"
	case ScreenDashboard:
		return "dashboard"
	}
	return fmt.Sprintf("Screen(%d)", int(s))
}

type State struct {
	Screen    Screen
	Events    []athletics.SportEvent
	Selected  *athletics.SportEvent
	Dashboard *Dashboard

	dashboardOpts []DashboardOption
}

// New returns the home screen with no events. The options are used for every
// dashboard the state opens.
func New(opts ...DashboardOption) State {
	return State{Screen: ScreenHome, dashboardOpts: opts}
}

func (s State) OpenSetup() State {
	s.Screen = ScreenSetup
	return s
}

func (s State) CancelSetup() State {
	s.Screen = ScreenHome
	return s
}

// CreateEvent builds an event from the setup form and returns to the home
// screen with the event appended. On a validation error the state is returned
// unchanged, still on the setup screen.
func (s State) CreateEvent(params setup.Params, participants []athletics.Athlete, opts ...setup.Option) (State, athletics.SportEvent, error) {
	ev, err := setup.Build(params, participants, opts...)
	if err != nil {
		return s, athletics.SportEvent{}, err
	}
	s.Events = append(slices.Clone(s.Events), ev)
	s.Screen = ScreenHome
	return s, ev, nil
}

// AddEvents appends already built events, e.g. ones read from a file.
func (s State) AddEvents(evs ...athletics.SportEvent) State {
	s.Events = append(slices.Clone(s.Events), evs...)
	return s
}

// AddDemoEvents appends the demo track and field events.
func (s State) AddDemoEvents() State {
	return s.AddEvents(DemoEvents()...)
}

// Find returns the first event with id.
func (s State) Find(id string) (athletics.SportEvent, error) {
	i := slices.IndexFunc(s.Events, func(ev athletics.SportEvent) bool { return ev.ID == id })
	if i < 0 {
		return athletics.SportEvent{}, athletics.WithMetadata(athletics.CodeEventNotFound,
			fmt.Sprintf("event %q not found", id),
			map[string]string{"id": id})
	}
	return s.Events[i], nil
}

// OpenEvent selects the event with id and opens its dashboard.
func (s State) OpenEvent(id string) (State, error) {
	selected, err := s.Find(id)
	if err != nil {
		return s, err
	}
	d, err := NewDashboard(selected, s.dashboardOpts...)
	if err != nil {
		return s, err
	}
	s.Selected = &selected
	s.Dashboard = d
	s.Screen = ScreenDashboard
	return s, nil
}

// Back leaves the dashboard, stopping its clock, and returns home.
func (s State) Back() State {
	if s.Dashboard != nil {
		s.Dashboard.Close()
	}
	s.Dashboard = nil
	s.Selected = nil
	s.Screen = ScreenHome
	return s
}
