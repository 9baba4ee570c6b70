package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhase_CanTransitionTo(t *testing.T) {
	assert.True(t, PhaseLobby.CanTransitionTo(PhaseActive))
	assert.True(t, PhaseActive.CanTransitionTo(PhaseEnded))

	assert.False(t, PhaseLobby.CanTransitionTo(PhaseEnded), "a lobby cannot end without a game")
	assert.False(t, PhaseActive.CanTransitionTo(PhaseLobby), "a game never returns to the lobby")
	assert.False(t, PhaseEnded.CanTransitionTo(PhaseActive), "ended rooms stay ended")
	assert.False(t, Phase("BOGUS").CanTransitionTo(PhaseActive))
}
