package domain

import "errors"

// Domain errors
var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrGameAlreadyStarted = errors.New("game already started")
	ErrNotEnoughPlayers   = errors.New("at least one player required to start")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrInvalidWordLength  = errors.New("word length must be between 3 and 6")
	ErrInvalidTimer       = errors.New("timer must be 2, 4 or 6 minutes")
)

// Rejection reasons surfaced to the submitting client in word_rejected events.
const (
	ReasonGameNotActive      = "game-not-active"
	ReasonWrongLength        = "wrong-length"
	ReasonLettersUnavailable = "letters-unavailable"
	ReasonMismatchedWord     = "mismatched-word"
	ReasonNotAWord           = "not-a-word"
)

// RejectionError carries the protocol reason for a refused word submission.
// It is a validation outcome, not a fault: room state is unchanged.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string {
	return "word rejected: " + e.Reason
}

// Reject builds a RejectionError for the given protocol reason.
func Reject(reason string) *RejectionError {
	return &RejectionError{Reason: reason}
}
