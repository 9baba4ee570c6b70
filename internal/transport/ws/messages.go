package ws

import "time"

// MessageType represents the type of WebSocket message
type MessageType string

// Client → Server message types
const (
	MsgJoin       MessageType = "join"
	MsgStartGame  MessageType = "start_game"
	MsgSubmitWord MessageType = "submit_word"
	MsgPing       MessageType = "ping"
)

// Server → Client control message types. Game events are forwarded as-is
// and carry their own type (player_joined, game_state, new_letter, ...).
const (
	MsgConnected MessageType = "connected"
	MsgError     MessageType = "error"
	MsgPong      MessageType = "pong"
)

// ClientMessage represents a message from client to server
type ClientMessage struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// ServerMessage represents a control message from server to client
type ServerMessage struct {
	Type      MessageType `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// NewServerMessage creates a new server message with current timestamp
func NewServerMessage(msgType MessageType, payload interface{}) *ServerMessage {
	return &ServerMessage{
		Type:      msgType,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// JoinPayload is the payload for the join handshake
type JoinPayload struct {
	PlayerName    string `json:"playerName"`
	IdentityToken string `json:"identityToken,omitempty"`
}

// SubmitWordPayload is the payload for submit_word
type SubmitWordPayload struct {
	Word              string   `json:"word"`
	SelectedLetterIDs []string `json:"selectedLetterIds"`
}

// ConnectedPayload acknowledges a successful join handshake
type ConnectedPayload struct {
	PlayerID string `json:"playerId"`
	RoomCode string `json:"roomCode"`
}

// ErrorPayload is the payload for error messages
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes
const (
	ErrCodeInvalidMessage = "INVALID_MESSAGE"
	ErrCodeNotJoined      = "NOT_JOINED"
	ErrCodeInvalidToken   = "INVALID_TOKEN"
	ErrCodeInvalidAction  = "INVALID_ACTION"
	ErrCodeRateLimited    = "RATE_LIMITED"
	ErrCodeInternalError  = "INTERNAL_ERROR"
)
