package app

import (
	"fmt"

	"github.com/Nydauron/trackside/athletics"
)

const (
	DemoTrackID = "demo-track-1"
	DemoFieldID = "demo-lj-1"
)

// DemoEvents returns a 6 lane 100m event and a 3 attempt long jump, each with
// a full set of placeholder participants.
func DemoEvents() []athletics.SportEvent {
	lanes, attempts := 6, 3
	return []athletics.SportEvent{
		{
			ID:           DemoTrackID,
			Name:         "Demo 100m",
			Kind:         athletics.KindTrack,
			Discipline:   "100m",
			Lanes:        &lanes,
			Participants: demoAthletes(6, "d", "Demo"),
		},
		{
			ID:                 DemoFieldID,
			Name:               "Demo Long Jump",
			Kind:               athletics.KindField,
			Discipline:         "Long Jump",
			AttemptsPerAthlete: &attempts,
			Participants:       demoAthletes(5, "dlj", "Jumper"),
		},
	}
}

func demoAthletes(n int, idPrefix, namePrefix string) []athletics.Athlete {
	athletes := make([]athletics.Athlete, n)
	for i := range athletes {
		athletes[i] = athletics.Athlete{
			ID:   fmt.Sprintf("%s%d", idPrefix, i+1),
			Name: fmt.Sprintf("%s %d", namePrefix, i+1),
		}
	}
	return athletes
}
