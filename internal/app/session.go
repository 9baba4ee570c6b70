package app

import (
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"wordsmith/internal/domain"
)

const eventBufferSize = 256

// broadcastOp is one entry in a session's ordered broadcast queue: either an
// event to fan out, or a client attachment carrying its snapshot event.
// Keeping attachments in-band means a client can never receive an event
// queued before it attached, and always receives its snapshot first.
type broadcastOp struct {
	event  *domain.GameEvent
	attach ClientConnection // when set, activate the binding and deliver event to it
}

// boundClient is a registered connection. It stays inactive, receiving no
// broadcasts, until the broadcaster reaches its attachment in the queue and
// delivers its snapshot.
type boundClient struct {
	conn   ClientConnection
	active bool
}

// ClientConnection is a connected client as seen by the session
type ClientConnection interface {
	Send(message interface{}) error
	GetPlayerID() string
	Close() error
}

// RoomSession wraps a domain room with the serialization discipline that
// makes arbitration correct: one mutex orders every operation, including the
// countdown ticks, so a submission is fully resolved before the next
// operation touches the table. Events are queued in commit order and fanned
// out to every bound connection by a single broadcaster goroutine.
type RoomSession struct {
	room *domain.Room
	mu   sync.Mutex

	clients   map[string]*boundClient // playerID -> connection
	clientsMu sync.RWMutex

	ops  chan broadcastOp
	done chan struct{}

	lastActive time.Time
	logger     zerolog.Logger
}

// NewRoomSession creates a session for the given room and starts its
// broadcaster.
func NewRoomSession(room *domain.Room, logger zerolog.Logger) *RoomSession {
	s := &RoomSession{
		room:       room,
		clients:    make(map[string]*boundClient),
		ops:        make(chan broadcastOp, eventBufferSize),
		done:       make(chan struct{}),
		lastActive: time.Now(),
		logger:     logger.With().Str("room", room.Code).Logger(),
	}

	go s.broadcastLoop()

	return s
}

// RoomCode returns the room code
func (s *RoomSession) RoomCode() string {
	return s.room.Code
}

// CreatedAt returns when the room was created
func (s *RoomSession) CreatedAt() time.Time {
	return s.room.CreatedAt
}

// Settings returns the immutable room configuration
func (s *RoomSession) Settings() domain.RoomSettings {
	return s.room.Settings
}

// Phase returns the current room phase
func (s *RoomSession) Phase() domain.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.room.Phase
}

// PlayerCount returns the roster size
func (s *RoomSession) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.room.Players)
}

// ConnectedCount returns the number of connected players
func (s *RoomSession) ConnectedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.room.ConnectedCount()
}

// Sweepable reports whether the room can be destroyed: an ended room past
// its grace period, or a room nobody has been connected to for idleTimeout.
func (s *RoomSession) Sweepable(now time.Time, grace, idleTimeout time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.room.Phase == domain.PhaseEnded && now.Sub(s.room.EndedAt) > grace {
		return true
	}
	return s.room.ConnectedCount() == 0 && now.Sub(s.lastActive) > idleTimeout
}

// AttachClient binds a connection to a player and sends it the current
// GameState snapshot. The binding registers immediately, so a detach always
// observes it, but stays inactive until the broadcaster reaches the
// attachment in the queue: events queued before it are never delivered to
// the new connection, and the snapshot arrives ahead of every event queued
// after it.
func (s *RoomSession) AttachClient(client ClientConnection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clientsMu.Lock()
	if old, ok := s.clients[client.GetPlayerID()]; ok && old.conn != client {
		old.conn.Close()
	}
	s.clients[client.GetPlayerID()] = &boundClient{conn: client}
	s.clientsMu.Unlock()

	op := broadcastOp{
		attach: client,
		event:  domain.NewPlayerEvent(domain.EventGameState, s.room.Code, client.GetPlayerID(), s.room.Snapshot()),
	}

	// An attachment must not be dropped on a full queue; the broadcaster
	// never blocks, so this send always drains unless the session is closed.
	select {
	case s.ops <- op:
	case <-s.done:
	}
}

// DetachClient removes a connection binding and reports whether this client
// was still the bound one. It never touches room state: a detached player's
// committed operations stand, and the roster entry stays until an explicit
// leave resolves it. A stale connection that was already replaced gets
// false, so its teardown must not resolve a leave for the player.
func (s *RoomSession) DetachClient(client ClientConnection) bool {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	if current, ok := s.clients[client.GetPlayerID()]; ok && current.conn == client {
		delete(s.clients, client.GetPlayerID())
		return true
	}
	return false
}

// Join adds or reconnects a player
func (s *RoomSession) Join(playerID, name string) (*domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()

	player, reconnected := s.room.Join(playerID, name)

	s.logger.Info().
		Str("player", playerID).
		Str("name", name).
		Bool("reconnect", reconnected).
		Msg("player joined")

	s.queueEvent(domain.NewEvent(domain.EventPlayerJoined, s.room.Code, &domain.RosterPayload{
		Player:  player.ToInfo(),
		Players: s.room.Roster(),
	}))

	return player, nil
}

// Leave resolves a player leaving: removal in the lobby, disconnection once
// a game has started. An active game abandoned by every player ends
// immediately.
func (s *RoomSession) Leave(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()

	player, ok := s.room.Players[playerID]
	if !ok {
		return domain.ErrPlayerNotFound
	}
	info := player.ToInfo()

	if _, err := s.room.Leave(playerID); err != nil {
		return err
	}

	s.logger.Info().Str("player", playerID).Msg("player left")

	s.queueEvent(domain.NewEvent(domain.EventPlayerLeft, s.room.Code, &domain.RosterPayload{
		Player:  info,
		Players: s.room.Roster(),
	}))

	if s.room.Phase == domain.PhaseActive && s.room.ConnectedCount() == 0 {
		scores := s.room.Abandon()
		s.queueEvent(domain.NewEvent(domain.EventGameEnded, s.room.Code, &domain.GameEndedPayload{
			Reason:      domain.EndReasonAbandoned,
			FinalScores: scores,
		}))
		s.logger.Info().Msg("game abandoned")
	}

	return nil
}

// Start begins the game and arms the countdown ticker
func (s *RoomSession) Start(playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()

	if err := s.room.Start(); err != nil {
		return err
	}

	s.queueEvent(domain.NewEvent(domain.EventGameStarted, s.room.Code, &domain.GameStartedPayload{
		TimerMinutes:     s.room.Settings.TimerMinutes,
		RemainingSeconds: s.room.RemainingSeconds,
	}))
	s.queueEvent(domain.NewEvent(domain.EventGameState, s.room.Code, s.room.Snapshot()))

	go s.runTicker()

	s.logger.Info().
		Str("started_by", playerID).
		Int("timer_minutes", s.room.Settings.TimerMinutes).
		Msg("game started")

	return nil
}

// runTicker drives one Tick per second. The tick competes for the same lock
// as player operations, so a spawn can never interleave with a submission.
func (s *RoomSession) runTicker() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			if ended := s.tick(); ended {
				return
			}
		}
	}
}

func (s *RoomSession) tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.room.Phase != domain.PhaseActive {
		return true
	}

	res := s.room.Tick()

	if res.Ended {
		s.queueEvent(domain.NewEvent(domain.EventTimerUpdate, s.room.Code, &domain.TimerUpdatePayload{
			RemainingSeconds: res.RemainingSeconds,
		}))
		s.queueEvent(domain.NewEvent(domain.EventGameEnded, s.room.Code, &domain.GameEndedPayload{
			Reason:      domain.EndReasonTimeUp,
			FinalScores: res.FinalScores,
		}))
		s.logger.Info().Msg("game ended")
		return true
	}

	if res.Spawned != nil {
		s.queueEvent(domain.NewEvent(domain.EventNewLetter, s.room.Code, &domain.NewLetterPayload{
			Letter:  *res.Spawned,
			Letters: s.room.Snapshot().Letters,
		}))
	}

	s.queueEvent(domain.NewEvent(domain.EventTimerUpdate, s.room.Code, &domain.TimerUpdatePayload{
		RemainingSeconds: res.RemainingSeconds,
	}))

	return false
}

// SubmitWord runs one arbitration step. Rejections are delivered only to the
// submitter; an accepted word is broadcast with the updated table and
// scores.
func (s *RoomSession) SubmitWord(playerID string, tileIDs []string, word string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()

	score, err := s.room.SubmitWord(playerID, tileIDs, word)
	if err != nil {
		if rej, ok := err.(*domain.RejectionError); ok {
			s.queueEvent(domain.NewPlayerEvent(domain.EventWordRejected, s.room.Code, playerID, &domain.WordRejectedPayload{
				Word:   word,
				Reason: rej.Reason,
			}))
		}
		return err
	}

	player := s.room.Players[playerID]
	upper := strings.ToUpper(strings.TrimSpace(word))

	s.logger.Info().
		Str("player", playerID).
		Str("word", upper).
		Int("score", score).
		Msg("word accepted")

	s.queueEvent(domain.NewEvent(domain.EventWordAccepted, s.room.Code, &domain.WordAcceptedPayload{
		Player:  player.Name,
		Word:    upper,
		Score:   score,
		Letters: s.room.Snapshot().Letters,
		Players: s.room.Roster(),
	}))

	return nil
}

// Snapshot returns the current game state
func (s *RoomSession) Snapshot() domain.GameStatePayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.room.Snapshot()
}

// queueEvent appends an event to the broadcast queue. Callers hold s.mu, so
// queue order is commit order.
func (s *RoomSession) queueEvent(event *domain.GameEvent) {
	select {
	case s.ops <- broadcastOp{event: event}:
	default:
		s.logger.Warn().Str("type", string(event.Type)).Msg("event queue full, dropping event")
	}
}

// broadcastLoop drains the queue in order: attachments go live and receive
// their snapshot, events fan out to whoever is active at that point in the
// stream.
func (s *RoomSession) broadcastLoop() {
	for {
		select {
		case <-s.done:
			return
		case op := <-s.ops:
			if op.attach != nil {
				s.activate(op.attach, op.event)
			} else {
				s.broadcast(op.event)
			}
		}
	}
}

// activate marks the binding live and hands the client its snapshot. A
// client that was detached or replaced while its attachment waited in the
// queue is skipped.
func (s *RoomSession) activate(client ClientConnection, snapshot *domain.GameEvent) {
	s.clientsMu.Lock()
	bound, ok := s.clients[client.GetPlayerID()]
	current := ok && bound.conn == client
	if current {
		bound.active = true
	}
	s.clientsMu.Unlock()

	if !current {
		return
	}
	if err := client.Send(snapshot); err != nil {
		s.logger.Debug().Err(err).Str("player", client.GetPlayerID()).Msg("snapshot send failed")
	}
}

func (s *RoomSession) broadcast(event *domain.GameEvent) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	if event.PlayerID != "" {
		if bound, ok := s.clients[event.PlayerID]; ok && bound.active {
			if err := bound.conn.Send(event); err != nil {
				s.logger.Debug().Err(err).Str("player", event.PlayerID).Msg("send failed")
			}
		}
		return
	}

	for playerID, bound := range s.clients {
		if !bound.active {
			// The client's snapshot sits later in the queue and
			// already reflects this event; delivering both would hand
			// the client a delta ahead of its base.
			continue
		}
		if err := bound.conn.Send(event); err != nil {
			s.logger.Debug().Err(err).Str("player", playerID).Msg("send failed")
		}
	}
}

// Close shuts the session down and closes every bound connection
func (s *RoomSession) Close() {
	select {
	case <-s.done:
		return
	default:
		close(s.done)
	}

	s.clientsMu.Lock()
	for _, bound := range s.clients {
		bound.conn.Close()
	}
	s.clients = make(map[string]*boundClient)
	s.clientsMu.Unlock()
}
