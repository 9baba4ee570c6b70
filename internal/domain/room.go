package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
)

// RoomSettings holds the per-room configuration fixed at creation
type RoomSettings struct {
	WordLength    int `json:"wordLength"`
	TimerMinutes  int `json:"timerMinutes"`
	SpawnInterval int `json:"spawnInterval"` // seconds between tile spawns
	MaxTableSize  int `json:"maxTableSize"`  // tiles on the table before spawning pauses
}

// DefaultRoomSettings returns the default settings for the given word length
// and timer duration.
func DefaultRoomSettings(wordLength, timerMinutes int) RoomSettings {
	return RoomSettings{
		WordLength:    wordLength,
		TimerMinutes:  timerMinutes,
		SpawnInterval: 4,
		MaxTableSize:  26,
	}
}

// Validate checks the configurable ranges: word length 3..6, timer 2, 4 or 6
// minutes.
func (s RoomSettings) Validate() error {
	if s.WordLength < 3 || s.WordLength > 6 {
		return ErrInvalidWordLength
	}
	if s.TimerMinutes != 2 && s.TimerMinutes != 4 && s.TimerMinutes != 6 {
		return ErrInvalidTimer
	}
	return nil
}

// Room is the authoritative state of one game instance. Room methods are not
// safe for concurrent use: the owning session serializes every call, which is
// what makes the submission arbitration correct.
type Room struct {
	Code             string
	Settings         RoomSettings
	Tiles            []Tile // insertion order = spawn order, no duplicate ids
	Players          map[string]*Player
	Phase            Phase
	RemainingSeconds int
	CreatedAt        time.Time
	EndedAt          time.Time

	pool  *TilePool
	judge Judge
}

// NewRoom creates a Lobby-phase room with the given code and settings.
func NewRoom(code string, settings RoomSettings, pool *TilePool, judge Judge) (*Room, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &Room{
		Code:      code,
		Settings:  settings,
		Tiles:     make([]Tile, 0, settings.MaxTableSize),
		Players:   make(map[string]*Player),
		Phase:     PhaseLobby,
		CreatedAt: time.Now(),
		pool:      pool,
		judge:     judge,
	}, nil
}

// Join adds a new player with a zero score, or reconnects an existing player
// keeping their score untouched. Returns the player and whether this was a
// reconnect.
func (r *Room) Join(playerID, name string) (*Player, bool) {
	if player, ok := r.Players[playerID]; ok {
		player.Reconnect()
		return player, true
	}

	player := NewPlayer(playerID, name)
	r.Players[playerID] = player
	return player, false
}

// Leave removes the player outright while the room is still in the lobby;
// once a game has started the player is only marked disconnected so a
// reconnect can restore their score. Returns whether the player was removed
// from the roster.
func (r *Room) Leave(playerID string) (bool, error) {
	player, ok := r.Players[playerID]
	if !ok {
		return false, ErrPlayerNotFound
	}

	if r.Phase == PhaseLobby {
		delete(r.Players, playerID)
		return true, nil
	}

	player.Disconnect()
	return false, nil
}

// ConnectedCount returns the number of connected players
func (r *Room) ConnectedCount() int {
	return lo.CountBy(lo.Values(r.Players), (*Player).IsConnected)
}

// Start transitions Lobby to Active and arms the countdown. It is an error
// when the room is not in the lobby or has no players.
func (r *Room) Start() error {
	if !r.Phase.CanTransitionTo(PhaseActive) {
		return ErrGameAlreadyStarted
	}
	if len(r.Players) == 0 {
		return ErrNotEnoughPlayers
	}

	r.Phase = PhaseActive
	r.RemainingSeconds = r.Settings.TimerMinutes * 60
	return nil
}

// TickResult describes what a single countdown tick did
type TickResult struct {
	RemainingSeconds int
	Spawned          *Tile
	Ended            bool
	FinalScores      []FinalScore
}

// Tick advances the countdown by one second. Every spawn interval it draws
// one tile, unless the table is full. Reaching zero ends the game exactly
// once.
func (r *Room) Tick() TickResult {
	if r.Phase != PhaseActive {
		return TickResult{RemainingSeconds: r.RemainingSeconds}
	}

	r.RemainingSeconds--

	if r.RemainingSeconds <= 0 {
		r.RemainingSeconds = 0
		r.end()
		return TickResult{Ended: true, FinalScores: r.Standings()}
	}

	res := TickResult{RemainingSeconds: r.RemainingSeconds}

	if r.RemainingSeconds%r.Settings.SpawnInterval == 0 && len(r.Tiles) < r.Settings.MaxTableSize {
		tile := r.pool.Draw()
		r.Tiles = append(r.Tiles, tile)
		res.Spawned = &tile
	}

	return res
}

// Abandon ends an active game because the roster emptied out
func (r *Room) Abandon() []FinalScore {
	if r.Phase != PhaseActive {
		return nil
	}
	r.end()
	return r.Standings()
}

func (r *Room) end() {
	r.Phase = PhaseEnded
	r.EndedAt = time.Now()
}

// SubmitWord is the arbitration step: it either fully commits one submission
// (removing the claimed tiles and crediting the score) or fully rejects it
// with a protocol reason. Checks run in a fixed order so a submission that
// lost a race for its tiles always observes "letters-unavailable".
func (r *Room) SubmitWord(playerID string, tileIDs []string, word string) (int, error) {
	player, ok := r.Players[playerID]
	if !ok {
		return 0, ErrPlayerNotFound
	}

	if r.Phase != PhaseActive {
		return 0, Reject(ReasonGameNotActive)
	}

	if len(tileIDs) != r.Settings.WordLength {
		return 0, Reject(ReasonWrongLength)
	}

	byID := make(map[string]Tile, len(r.Tiles))
	for _, t := range r.Tiles {
		byID[t.ID] = t
	}

	seen := make(map[string]struct{}, len(tileIDs))
	var assembled strings.Builder
	for _, id := range tileIDs {
		tile, ok := byID[id]
		if !ok {
			return 0, Reject(ReasonLettersUnavailable)
		}
		if _, dup := seen[id]; dup {
			// A tile can back at most one letter of the claim.
			return 0, Reject(ReasonLettersUnavailable)
		}
		seen[id] = struct{}{}
		assembled.WriteString(tile.Glyph)
	}

	if assembled.String() != strings.ToUpper(strings.TrimSpace(word)) {
		return 0, Reject(ReasonMismatchedWord)
	}

	if verdict := r.judge.Accepts(word, r.Settings.WordLength); !verdict.Accepted {
		return 0, Reject(verdict.Reason)
	}

	r.Tiles = lo.Reject(r.Tiles, func(t Tile, _ int) bool {
		_, claimed := seen[t.ID]
		return claimed
	})

	score := WordScore(assembled.String())
	player.Score += score
	return score, nil
}

// Roster returns the players ordered by join time
func (r *Room) Roster() []PlayerInfo {
	players := lo.Values(r.Players)
	sort.Slice(players, func(i, j int) bool {
		return players[i].JoinedAt.Before(players[j].JoinedAt)
	})
	return lo.Map(players, func(p *Player, _ int) PlayerInfo {
		return p.ToInfo()
	})
}

// Standings ranks players by score descending, ties broken by earliest join
func (r *Room) Standings() []FinalScore {
	players := lo.Values(r.Players)
	sort.Slice(players, func(i, j int) bool {
		if players[i].Score != players[j].Score {
			return players[i].Score > players[j].Score
		}
		return players[i].JoinedAt.Before(players[j].JoinedAt)
	})
	return lo.Map(players, func(p *Player, i int) FinalScore {
		return FinalScore{Rank: i + 1, Player: p.Name, Score: p.Score}
	})
}

// Snapshot returns the full current state for late joiners and reconnects
func (r *Room) Snapshot() GameStatePayload {
	letters := make([]Tile, len(r.Tiles))
	copy(letters, r.Tiles)

	return GameStatePayload{
		Letters:          letters,
		Players:          r.Roster(),
		GameStarted:      r.Phase != PhaseLobby,
		Phase:            r.Phase,
		WordLength:       r.Settings.WordLength,
		TimerMinutes:     r.Settings.TimerMinutes,
		RemainingSeconds: r.RemainingSeconds,
	}
}
