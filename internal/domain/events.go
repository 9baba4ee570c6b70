package domain

import "time"

// EventType represents the type of room event
type EventType string

const (
	EventPlayerJoined EventType = "player_joined"
	EventPlayerLeft   EventType = "player_left"
	EventGameState    EventType = "game_state"
	EventGameStarted  EventType = "game_started"
	EventNewLetter    EventType = "new_letter"
	EventWordAccepted EventType = "word_accepted"
	EventWordRejected EventType = "word_rejected"
	EventTimerUpdate  EventType = "timer_update"
	EventGameEnded    EventType = "game_ended"
)

// GameEvent is one entry in a room's ordered event log. Events with a
// non-empty PlayerID are delivered only to that player; all others are
// broadcast to every connection bound to the room.
type GameEvent struct {
	Type      EventType   `json:"type"`
	RoomCode  string      `json:"roomCode"`
	PlayerID  string      `json:"playerId,omitempty"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewEvent creates a broadcast event
func NewEvent(eventType EventType, roomCode string, payload interface{}) *GameEvent {
	return &GameEvent{
		Type:      eventType,
		RoomCode:  roomCode,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// NewPlayerEvent creates an event addressed to a single player
func NewPlayerEvent(eventType EventType, roomCode, playerID string, payload interface{}) *GameEvent {
	return &GameEvent{
		Type:      eventType,
		RoomCode:  roomCode,
		PlayerID:  playerID,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// Payload types for the events above

// RosterPayload is sent when the roster changes
type RosterPayload struct {
	Player  PlayerInfo   `json:"player"`
	Players []PlayerInfo `json:"players"`
}

// GameStatePayload is the full room snapshot a client reconciles against.
// It is always the first thing a newly attached connection receives.
type GameStatePayload struct {
	Letters          []Tile       `json:"letters"`
	Players          []PlayerInfo `json:"players"`
	GameStarted      bool         `json:"gameStarted"`
	Phase            Phase        `json:"phase"`
	WordLength       int          `json:"wordLength"`
	TimerMinutes     int          `json:"timerMinutes"`
	RemainingSeconds int          `json:"remainingSeconds"`
}

// GameStartedPayload is sent once on the Lobby to Active transition
type GameStartedPayload struct {
	TimerMinutes     int `json:"timerMinutes"`
	RemainingSeconds int `json:"remainingSeconds"`
}

// NewLetterPayload is sent when a tile spawns
type NewLetterPayload struct {
	Letter  Tile   `json:"letter"`
	Letters []Tile `json:"letters"`
}

// WordAcceptedPayload is sent when a submission wins its tiles
type WordAcceptedPayload struct {
	Player  string       `json:"player"`
	Word    string       `json:"word"`
	Score   int          `json:"score"`
	Letters []Tile       `json:"letters"`
	Players []PlayerInfo `json:"players"`
}

// WordRejectedPayload is sent only to the submitter
type WordRejectedPayload struct {
	Word   string `json:"word"`
	Reason string `json:"reason"`
}

// TimerUpdatePayload is sent on every countdown tick
type TimerUpdatePayload struct {
	RemainingSeconds int `json:"remainingSeconds"`
}

// FinalScore is one row of the final standings
type FinalScore struct {
	Rank   int    `json:"rank"`
	Player string `json:"player"`
	Score  int    `json:"score"`
}

// GameEndedPayload is sent once when the room reaches Ended
type GameEndedPayload struct {
	Reason      string       `json:"reason"`
	FinalScores []FinalScore `json:"finalScores"`
}

// End reasons
const (
	EndReasonTimeUp    = "time_up"
	EndReasonAbandoned = "abandoned"
)
