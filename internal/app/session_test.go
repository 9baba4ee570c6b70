package app

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordsmith/internal/domain"
)

// fakeConn records every event the broadcaster delivers to it.
type fakeConn struct {
	playerID string

	mu     sync.Mutex
	events []*domain.GameEvent
	closed bool
}

func (c *fakeConn) Send(message interface{}) error {
	event, ok := message.(*domain.GameEvent)
	if !ok {
		return errors.New("unexpected message type")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	return nil
}

func (c *fakeConn) GetPlayerID() string { return c.playerID }

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) eventTypes() []domain.EventType {
	c.mu.Lock()
	defer c.mu.Unlock()
	types := make([]domain.EventType, len(c.events))
	for i, e := range c.events {
		types[i] = e.Type
	}
	return types
}

func (c *fakeConn) hasEvent(t domain.EventType) bool {
	for _, got := range c.eventTypes() {
		if got == t {
			return true
		}
	}
	return false
}

func (c *fakeConn) payloadsOf(t domain.EventType) []interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []interface{}
	for _, e := range c.events {
		if e.Type == t {
			out = append(out, e.Payload)
		}
	}
	return out
}

func (c *fakeConn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func testJudge() domain.Judge {
	known := map[string]bool{"CATS": true, "DOGS": true}
	return domain.NewDictionaryJudge(func(w string) bool { return known[w] }, false)
}

func newTestSession(t *testing.T) (*RoomSession, *domain.Room) {
	t.Helper()
	room, err := domain.NewRoom("ROOM42", domain.DefaultRoomSettings(4, 2), domain.NewTilePool(domain.DrawWeighted, 1), testJudge())
	require.NoError(t, err)
	s := NewRoomSession(room, zerolog.Nop())
	t.Cleanup(s.Close)
	return s, room
}

func placeTiles(room *domain.Room, glyphs ...string) []string {
	ids := make([]string, 0, len(glyphs))
	for i, g := range glyphs {
		tile := domain.Tile{ID: "tile-" + string(rune('a'+i)), Glyph: g, SpawnedAt: time.Now()}
		room.Tiles = append(room.Tiles, tile)
		ids = append(ids, tile.ID)
	}
	return ids
}

func eventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	require.Eventually(t, cond, 2*time.Second, 10*time.Millisecond, msg)
}

func TestRoomSession_AttachSendsSnapshotBeforeLaterEvents(t *testing.T) {
	s, _ := newTestSession(t)

	// These joins are queued before the attach; whether or not the
	// broadcaster has drained them yet, the new connection must never
	// receive them.
	_, err := s.Join("alice", "Alice")
	require.NoError(t, err)
	_, err = s.Join("bob", "Bob")
	require.NoError(t, err)

	conn := &fakeConn{playerID: "alice"}
	s.AttachClient(conn)

	// A join after the attach arrives as a delta, behind the snapshot.
	_, err = s.Join("carol", "Carol")
	require.NoError(t, err)

	eventually(t, func() bool { return conn.hasEvent(domain.EventPlayerJoined) }, "delta never arrived")

	types := conn.eventTypes()
	require.NotEmpty(t, types)
	assert.Equal(t, domain.EventGameState, types[0], "snapshot must precede every delta")
	assert.Equal(t, []domain.EventType{domain.EventGameState, domain.EventPlayerJoined}, types,
		"events queued before the attach must not reach the new connection")

	// The snapshot itself already reflects the pre-attach joins.
	snapshots := conn.payloadsOf(domain.EventGameState)
	require.Len(t, snapshots, 1)
	state, ok := snapshots[0].(domain.GameStatePayload)
	require.True(t, ok)
	assert.Len(t, state.Players, 2)
}

func TestRoomSession_AttachReplacesExistingConnection(t *testing.T) {
	s, _ := newTestSession(t)
	_, err := s.Join("alice", "Alice")
	require.NoError(t, err)

	old := &fakeConn{playerID: "alice"}
	s.AttachClient(old)
	fresh := &fakeConn{playerID: "alice"}
	s.AttachClient(fresh)

	assert.True(t, old.isClosed())

	// Player-directed events now reach only the fresh connection.
	eventually(t, func() bool { return fresh.hasEvent(domain.EventGameState) }, "fresh connection never got its snapshot")
}

func TestRoomSession_DetachReportsWhetherClientWasBound(t *testing.T) {
	s, _ := newTestSession(t)
	_, err := s.Join("alice", "Alice")
	require.NoError(t, err)

	old := &fakeConn{playerID: "alice"}
	s.AttachClient(old)
	fresh := &fakeConn{playerID: "alice"}
	s.AttachClient(fresh)

	// The replaced connection's teardown must not resolve a leave for a
	// player who is still attached elsewhere.
	assert.False(t, s.DetachClient(old))
	assert.True(t, s.DetachClient(fresh))
	assert.False(t, s.DetachClient(fresh))
}

func TestRoomSession_ConcurrentSubmissionsExactlyOneWins(t *testing.T) {
	s, room := newTestSession(t)

	const workers = 16
	for i := 0; i < workers; i++ {
		_, err := s.Join("player-"+string(rune('a'+i)), "Player")
		require.NoError(t, err)
	}
	require.NoError(t, room.Start())
	ids := placeTiles(room, "C", "A", "T", "S", "D", "O", "G")

	var wg sync.WaitGroup
	results := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.SubmitWord("player-"+string(rune('a'+i)), ids[:4], "CATS")
		}(i)
	}
	wg.Wait()

	accepted := 0
	for _, err := range results {
		if err == nil {
			accepted++
			continue
		}
		var rej *domain.RejectionError
		require.ErrorAs(t, err, &rej)
		assert.Equal(t, domain.ReasonLettersUnavailable, rej.Reason)
	}
	assert.Equal(t, 1, accepted, "exactly one racing submission may claim the tiles")
	assert.Len(t, room.Tiles, 3)
}

func TestRoomSession_RejectionIsDeliveredOnlyToSubmitter(t *testing.T) {
	s, room := newTestSession(t)

	_, err := s.Join("alice", "Alice")
	require.NoError(t, err)
	_, err = s.Join("bob", "Bob")
	require.NoError(t, err)
	require.NoError(t, room.Start())
	ids := placeTiles(room, "T", "S", "A", "C")

	alice := &fakeConn{playerID: "alice"}
	bob := &fakeConn{playerID: "bob"}
	s.AttachClient(alice)
	s.AttachClient(bob)

	err = s.SubmitWord("alice", ids, "TSAC")
	var rej *domain.RejectionError
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, domain.ReasonNotAWord, rej.Reason)

	eventually(t, func() bool { return alice.hasEvent(domain.EventWordRejected) }, "submitter never saw the rejection")
	assert.False(t, bob.hasEvent(domain.EventWordRejected))
}

func TestRoomSession_AcceptedWordIsBroadcast(t *testing.T) {
	s, room := newTestSession(t)

	_, err := s.Join("alice", "Alice")
	require.NoError(t, err)
	_, err = s.Join("bob", "Bob")
	require.NoError(t, err)
	require.NoError(t, room.Start())
	ids := placeTiles(room, "D", "O", "G", "S")

	alice := &fakeConn{playerID: "alice"}
	bob := &fakeConn{playerID: "bob"}
	s.AttachClient(alice)
	s.AttachClient(bob)

	require.NoError(t, s.SubmitWord("alice", ids, "dogs"))

	eventually(t, func() bool {
		return alice.hasEvent(domain.EventWordAccepted) && bob.hasEvent(domain.EventWordAccepted)
	}, "accepted word must reach every connection")
}

func TestRoomSession_LeaveOfLastConnectedPlayerAbandonsGame(t *testing.T) {
	s, _ := newTestSession(t)

	_, err := s.Join("alice", "Alice")
	require.NoError(t, err)
	require.NoError(t, s.Start("alice"))

	bystander := &fakeConn{playerID: "alice"}
	s.AttachClient(bystander)

	require.NoError(t, s.Leave("alice"))

	assert.Equal(t, domain.PhaseEnded, s.Phase())
	eventually(t, func() bool { return bystander.hasEvent(domain.EventGameEnded) }, "abandonment must emit game_ended")

	for _, raw := range bystander.payloadsOf(domain.EventGameEnded) {
		payload, ok := raw.(*domain.GameEndedPayload)
		require.True(t, ok)
		assert.Equal(t, domain.EndReasonAbandoned, payload.Reason)
	}
}

func TestRoomSession_FinalTickEmitsTimerZeroBeforeGameEnded(t *testing.T) {
	s, room := newTestSession(t)

	_, err := s.Join("alice", "Alice")
	require.NoError(t, err)
	require.NoError(t, room.Start())
	room.RemainingSeconds = 1

	conn := &fakeConn{playerID: "alice"}
	s.AttachClient(conn)

	require.True(t, s.tick())

	eventually(t, func() bool { return conn.hasEvent(domain.EventGameEnded) }, "game_ended never arrived")

	types := conn.eventTypes()
	timerIdx, endedIdx := -1, -1
	for i, typ := range types {
		switch typ {
		case domain.EventTimerUpdate:
			timerIdx = i
		case domain.EventGameEnded:
			endedIdx = i
		}
	}
	require.GreaterOrEqual(t, timerIdx, 0, "final tick must still emit timer_update")
	assert.Less(t, timerIdx, endedIdx)

	updates := conn.payloadsOf(domain.EventTimerUpdate)
	last, ok := updates[len(updates)-1].(*domain.TimerUpdatePayload)
	require.True(t, ok)
	assert.Equal(t, 0, last.RemainingSeconds)
}

func TestRoomSession_DisconnectAndRejoinKeepsScore(t *testing.T) {
	s, room := newTestSession(t)

	_, err := s.Join("alice", "Alice")
	require.NoError(t, err)
	_, err = s.Join("bob", "Bob")
	require.NoError(t, err)
	require.NoError(t, room.Start())
	ids := placeTiles(room, "C", "A", "T", "S")

	require.NoError(t, s.SubmitWord("alice", ids, "CATS"))
	require.NoError(t, s.Leave("alice"))

	player, err := s.Join("alice", "Alice")
	require.NoError(t, err)
	assert.Equal(t, 6, player.Score)
	assert.True(t, player.IsConnected())
}

func TestRoomSession_Sweepable(t *testing.T) {
	now := time.Now()

	t.Run("ended room past grace", func(t *testing.T) {
		s, room := newTestSession(t)
		_, err := s.Join("alice", "Alice")
		require.NoError(t, err)
		require.NoError(t, room.Start())
		room.Abandon()
		room.EndedAt = now.Add(-10 * time.Minute)

		assert.True(t, s.Sweepable(now, 5*time.Minute, 30*time.Minute))
	})

	t.Run("ended room within grace", func(t *testing.T) {
		s, room := newTestSession(t)
		_, err := s.Join("alice", "Alice")
		require.NoError(t, err)
		require.NoError(t, room.Start())
		room.Abandon()
		room.EndedAt = now.Add(-time.Minute)

		assert.False(t, s.Sweepable(now, 5*time.Minute, 30*time.Minute))
	})

	t.Run("idle lobby", func(t *testing.T) {
		s, _ := newTestSession(t)
		s.lastActive = now.Add(-time.Hour)

		assert.True(t, s.Sweepable(now, 5*time.Minute, 30*time.Minute))
	})

	t.Run("lobby with a connected player is kept", func(t *testing.T) {
		s, _ := newTestSession(t)
		_, err := s.Join("alice", "Alice")
		require.NoError(t, err)
		s.lastActive = now.Add(-time.Hour)

		assert.False(t, s.Sweepable(now, 5*time.Minute, 30*time.Minute))
	})
}

func TestRoomSession_CloseShutsDownConnections(t *testing.T) {
	s, _ := newTestSession(t)
	_, err := s.Join("alice", "Alice")
	require.NoError(t, err)

	conn := &fakeConn{playerID: "alice"}
	s.AttachClient(conn)

	s.Close()
	assert.True(t, conn.isClosed())

	// Close is idempotent.
	s.Close()
}
