package setup

import (
	"slices"

	"github.com/Nydauron/trackside/athletics"
)

var (
	trackSprints    = []string{"60m", "100m", "200m", "400m"}
	trackMiddle     = []string{"800m", "1500m", "3000m", "5000m", "10000m"}
	hurdles         = []string{"100mH", "110mH", "400mH"}
	relays          = []string{"4x100", "4x400"}
	fieldHorizontal = []string{"Long Jump", "Triple Jump"}
	fieldVertical   = []string{"High Jump", "Pole Vault"}
	throws          = []string{"Shot Put", "Discus", "Hammer", "Javelin"}
	combined        = []string{"Heptathlon", "Decathlon"}
	walkMarathon    = []string{"20km Walk", "Marathon"}
)

// Disciplines returns the preset discipline names offered for kind, in
// display order. Unknown kinds have no presets.
func Disciplines(kind athletics.EventKind) []string {
	switch kind {
	case athletics.KindTrack:
		return slices.Concat(trackSprints, trackMiddle, hurdles, relays)
	case athletics.KindField:
		return slices.Concat(fieldHorizontal, fieldVertical, throws)
	case athletics.KindCombined:
		return slices.Clone(combined)
	case athletics.KindWalk, athletics.KindMarathon:
		return slices.Clone(walkMarathon)
	}
	return nil
}

// DefaultDiscipline is the first preset of kind, or "" when it has none.
func DefaultDiscipline(kind athletics.EventKind) string {
	presets := Disciplines(kind)
	if len(presets) == 0 {
		return ""
	}
	return presets[0]
}

// IsPreset reports whether discipline is one of the presets for kind. Free
// text disciplines are still accepted by Build.
func IsPreset(kind athletics.EventKind, discipline string) bool {
	return slices.Contains(Disciplines(kind), discipline)
}
