package domain

// Phase represents the current phase of a room
type Phase string

const (
	PhaseLobby  Phase = "LOBBY"  // Waiting for players to join
	PhaseActive Phase = "ACTIVE" // Timer running, letters spawning, words scored
	PhaseEnded  Phase = "ENDED"  // Scores frozen, room awaiting cleanup
)

// String returns the string representation of the phase
func (p Phase) String() string {
	return string(p)
}

// CanTransitionTo checks if a transition from current phase to target phase is valid
func (p Phase) CanTransitionTo(target Phase) bool {
	validTransitions := map[Phase][]Phase{
		PhaseLobby:  {PhaseActive},
		PhaseActive: {PhaseEnded},
		PhaseEnded:  {},
	}

	allowed, ok := validTransitions[p]
	if !ok {
		return false
	}

	for _, phase := range allowed {
		if phase == target {
			return true
		}
	}
	return false
}
