package domain

import "time"

// ConnectionStatus represents a player's connection state
type ConnectionStatus string

const (
	StatusConnected    ConnectionStatus = "CONNECTED"
	StatusDisconnected ConnectionStatus = "DISCONNECTED"
)

// Player represents a player in a room. A player is keyed by a stable
// identity so a reconnect restores the same score; disconnecting never
// removes a player from an active game.
type Player struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Score    int              `json:"score"`
	Status   ConnectionStatus `json:"status"`
	JoinedAt time.Time        `json:"joinedAt"`
}

// NewPlayer creates a new connected player with a zero score
func NewPlayer(id, name string) *Player {
	return &Player{
		ID:       id,
		Name:     name,
		Score:    0,
		Status:   StatusConnected,
		JoinedAt: time.Now(),
	}
}

// IsConnected returns true if the player is currently connected
func (p *Player) IsConnected() bool {
	return p.Status == StatusConnected
}

// Disconnect marks the player as disconnected
func (p *Player) Disconnect() {
	p.Status = StatusDisconnected
}

// Reconnect marks the player as connected
func (p *Player) Reconnect() {
	p.Status = StatusConnected
}

// PlayerInfo is the roster view of a player sent to clients
type PlayerInfo struct {
	ID     string           `json:"id"`
	Name   string           `json:"name"`
	Score  int              `json:"score"`
	Status ConnectionStatus `json:"status"`
}

// ToInfo converts a Player to its client-facing view
func (p *Player) ToInfo() PlayerInfo {
	return PlayerInfo{
		ID:     p.ID,
		Name:   p.Name,
		Score:  p.Score,
		Status: p.Status,
	}
}
