// Package state names the phases a night moves through.
package state

// Phase is where the level scene is within a night
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseDefeated
	PhaseSunrise
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseDefeated:
		return "Defeated"
	case PhaseSunrise:
		return "Sunrise"
	default:
		return "Unknown"
	}
}

// Over reports whether the night has ended.
func (p Phase) Over() bool {
	return p == PhaseDefeated || p == PhaseSunrise
}

// TogglePause flips between running and paused. A finished night stays
// finished.
func (p Phase) TogglePause() Phase {
	switch p {
	case PhaseRunning:
		return PhasePaused
	case PhasePaused:
		return PhaseRunning
	default:
		return p
	}
}
