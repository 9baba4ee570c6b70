package app

import (
	"crypto/rand"
	"errors"
	"sync"
	"time"

	mrand "math/rand"

	"github.com/rs/zerolog"

	"wordsmith/internal/domain"
)

// RoomCodeChars are characters used for room codes (no ambiguous chars)
const RoomCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// ErrRegistryFull is returned when a unique room code could not be
// allocated; callers may retry.
var ErrRegistryFull = errors.New("failed to allocate a unique room code")

// HubOptions tunes registry lifecycle behaviour and the settings applied to
// every room created through the hub.
type HubOptions struct {
	RoomCodeLength int
	EndedRoomGrace time.Duration // how long ended rooms linger for score delivery
	IdleTimeout    time.Duration // destroy rooms nobody is connected to after this
	SweepInterval  time.Duration
	SpawnInterval  int // seconds between tile spawns
	MaxTableSize   int
}

// DefaultHubOptions returns the default lifecycle tuning
func DefaultHubOptions() HubOptions {
	return HubOptions{
		RoomCodeLength: 6,
		EndedRoomGrace: 5 * time.Minute,
		IdleTimeout:    30 * time.Minute,
		SweepInterval:  time.Minute,
		SpawnInterval:  4,
		MaxTableSize:   26,
	}
}

// Hub is the process-wide session registry: it creates rooms under fresh
// codes, resolves codes to sessions, and periodically destroys expired
// rooms. Rooms are fully independent once created; the hub lock only guards
// the code table.
type Hub struct {
	sessions map[string]*RoomSession
	mu       sync.RWMutex
	opts     HubOptions
	judge    domain.Judge
	logger   zerolog.Logger
	done     chan struct{}
}

// NewHub creates a hub using judge for every room's word acceptance policy
// and starts the sweep loop.
func NewHub(judge domain.Judge, opts HubOptions, logger zerolog.Logger) *Hub {
	h := &Hub{
		sessions: make(map[string]*RoomSession),
		opts:     opts,
		judge:    judge,
		logger:   logger,
		done:     make(chan struct{}),
	}

	go h.sweepLoop()

	return h
}

// CreateRoom validates the requested configuration, allocates a unique room
// code and registers a lobby-phase room.
func (h *Hub) CreateRoom(wordLength, timerMinutes int) (*RoomSession, error) {
	settings := domain.RoomSettings{
		WordLength:    wordLength,
		TimerMinutes:  timerMinutes,
		SpawnInterval: h.opts.SpawnInterval,
		MaxTableSize:  h.opts.MaxTableSize,
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	var code string
	for attempts := 0; ; attempts++ {
		if attempts == 10 {
			return nil, ErrRegistryFull
		}
		code = h.generateRoomCode()
		if _, exists := h.sessions[code]; !exists {
			break
		}
	}

	pool := domain.NewTilePool(domain.DrawWeighted, mrand.Int63())
	room, err := domain.NewRoom(code, settings, pool, h.judge)
	if err != nil {
		return nil, err
	}

	session := NewRoomSession(room, h.logger)
	h.sessions[code] = session

	h.logger.Info().
		Str("room", code).
		Int("word_length", wordLength).
		Int("timer_minutes", timerMinutes).
		Msg("room created")

	return session, nil
}

// GetSession resolves a room code
func (h *Hub) GetSession(code string) (*RoomSession, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	session, ok := h.sessions[code]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	return session, nil
}

// DeleteSession destroys a room
func (h *Hub) DeleteSession(code string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if session, ok := h.sessions[code]; ok {
		session.Close()
		delete(h.sessions, code)
		h.logger.Info().Str("room", code).Msg("room deleted")
	}
}

// SessionCount returns the number of live rooms
func (h *Hub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// TotalPlayerCount returns the total roster size across all rooms
func (h *Hub) TotalPlayerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, session := range h.sessions {
		total += session.PlayerCount()
	}
	return total
}

// Close shuts down the hub and every session
func (h *Hub) Close() {
	select {
	case <-h.done:
		return
	default:
		close(h.done)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, session := range h.sessions {
		session.Close()
	}
	h.sessions = make(map[string]*RoomSession)
}

func (h *Hub) generateRoomCode() string {
	b := make([]byte, h.opts.RoomCodeLength)
	if _, err := rand.Read(b); err != nil {
		// Codes only need uniqueness, not secrecy; fall back to the
		// seeded source rather than failing room creation.
		for i := range b {
			b[i] = byte(mrand.Intn(256))
		}
	}

	code := make([]byte, h.opts.RoomCodeLength)
	for i := range code {
		code[i] = RoomCodeChars[int(b[i])%len(RoomCodeChars)]
	}
	return string(code)
}

// sweepLoop periodically destroys ended rooms past their grace period and
// rooms with no connected players past the idle timeout.
func (h *Hub) sweepLoop() {
	ticker := time.NewTicker(h.opts.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-h.done:
			return
		case <-ticker.C:
			h.Sweep()
		}
	}
}

// Sweep runs one cleanup pass
func (h *Hub) Sweep() {
	now := time.Now()

	h.mu.Lock()
	defer h.mu.Unlock()

	for code, session := range h.sessions {
		if session.Sweepable(now, h.opts.EndedRoomGrace, h.opts.IdleTimeout) {
			session.Close()
			delete(h.sessions, code)
			h.logger.Info().Str("room", code).Msg("room swept")
		}
	}
}
