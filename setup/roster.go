package setup

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Nydauron/trackside/athletics"
)

// DefaultBatchSize is how many athletes AddBatch adds when asked for none.
const DefaultBatchSize = 6

// Roster is the ordered participant list of an event being set up.
type Roster struct {
	athletes []athletics.Athlete
	newID    func() string
}

// NewRoster returns an empty roster. A nil newID uses athletics.NewID.
func NewRoster(newID func() string) *Roster {
	if newID == nil {
		newID = athletics.NewID
	}
	return &Roster{newID: newID}
}

// Add appends an athlete with a fresh identity. A blank name becomes
// "Athlete N", N being the athlete's position in the roster.
func (r *Roster) Add(name string) athletics.Athlete {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Athlete %d", len(r.athletes)+1)
	}
	a := athletics.Athlete{ID: r.newID(), Name: name}
	r.athletes = append(r.athletes, a)
	return a
}

// AddBatch appends n default-named athletes (DefaultBatchSize when n < 1).
func (r *Roster) AddBatch(n int) []athletics.Athlete {
	if n < 1 {
		n = DefaultBatchSize
	}
	added := make([]athletics.Athlete, 0, n)
	for i := 0; i < n; i++ {
		added = append(added, r.Add(""))
	}
	return added
}

// Import appends already identified athletes, e.g. from a start list. Athletes
// without an id get one.
func (r *Roster) Import(athletes []athletics.Athlete) {
	for _, a := range athletes {
		if a.ID == "" {
			a.ID = r.newID()
		}
		r.athletes = append(r.athletes, a)
	}
}

// Remove deletes the athlete with id, keeping the order of the others. It
// reports whether an athlete was removed.
func (r *Roster) Remove(id string) bool {
	i := slices.IndexFunc(r.athletes, func(a athletics.Athlete) bool { return a.ID == id })
	if i < 0 {
		return false
	}
	r.athletes = slices.Delete(r.athletes, i, i+1)
	return true
}

// SetCountry sets the country code of the athlete with id and reports whether
// the athlete exists.
func (r *Roster) SetCountry(id, country string) bool {
	i := slices.IndexFunc(r.athletes, func(a athletics.Athlete) bool { return a.ID == id })
	if i < 0 {
		return false
	}
	r.athletes[i].Country = country
	return true
}

func (r *Roster) Len() int {
	return len(r.athletes)
}

// Athletes returns a copy of the roster in order.
func (r *Roster) Athletes() []athletics.Athlete {
	return slices.Clone(r.athletes)
}
