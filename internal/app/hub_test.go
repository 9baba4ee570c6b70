package app

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordsmith/internal/domain"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(testJudge(), DefaultHubOptions(), zerolog.Nop())
	t.Cleanup(hub.Close)
	return hub
}

func TestHub_CreateRoom(t *testing.T) {
	hub := newTestHub(t)

	session, err := hub.CreateRoom(4, 2)
	require.NoError(t, err)

	code := session.RoomCode()
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, strings.ContainsRune(RoomCodeChars, r), "code %q uses a disallowed character", code)
	}

	assert.Equal(t, domain.PhaseLobby, session.Phase())
	assert.Equal(t, 1, hub.SessionCount())
}

func TestHub_CreateRoomValidatesConfig(t *testing.T) {
	hub := newTestHub(t)

	_, err := hub.CreateRoom(2, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidWordLength)

	_, err = hub.CreateRoom(4, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidTimer)

	assert.Equal(t, 0, hub.SessionCount())
}

func TestHub_CreateRoomCodesAreUnique(t *testing.T) {
	hub := newTestHub(t)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		session, err := hub.CreateRoom(4, 2)
		require.NoError(t, err)
		require.False(t, seen[session.RoomCode()], "duplicate room code %q", session.RoomCode())
		seen[session.RoomCode()] = true
	}
}

func TestHub_GetSession(t *testing.T) {
	hub := newTestHub(t)

	session, err := hub.CreateRoom(4, 2)
	require.NoError(t, err)

	got, err := hub.GetSession(session.RoomCode())
	require.NoError(t, err)
	assert.Same(t, session, got)

	_, err = hub.GetSession("NOSUCH")
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestHub_DeleteSession(t *testing.T) {
	hub := newTestHub(t)

	session, err := hub.CreateRoom(4, 2)
	require.NoError(t, err)

	hub.DeleteSession(session.RoomCode())
	_, err = hub.GetSession(session.RoomCode())
	assert.ErrorIs(t, err, domain.ErrRoomNotFound)

	// Deleting an unknown code is a no-op.
	hub.DeleteSession("NOSUCH")
}

func TestHub_TotalPlayerCount(t *testing.T) {
	hub := newTestHub(t)

	first, err := hub.CreateRoom(4, 2)
	require.NoError(t, err)
	second, err := hub.CreateRoom(5, 4)
	require.NoError(t, err)

	_, err = first.Join("alice", "Alice")
	require.NoError(t, err)
	_, err = first.Join("bob", "Bob")
	require.NoError(t, err)
	_, err = second.Join("carol", "Carol")
	require.NoError(t, err)

	assert.Equal(t, 3, hub.TotalPlayerCount())
}

func TestHub_SweepDestroysExpiredRooms(t *testing.T) {
	hub := newTestHub(t)

	ended, err := hub.CreateRoom(4, 2)
	require.NoError(t, err)
	_, err = ended.Join("alice", "Alice")
	require.NoError(t, err)
	require.NoError(t, ended.room.Start())
	ended.room.Abandon()
	ended.room.EndedAt = time.Now().Add(-10 * time.Minute)

	idle, err := hub.CreateRoom(4, 2)
	require.NoError(t, err)
	idle.lastActive = time.Now().Add(-time.Hour)

	fresh, err := hub.CreateRoom(4, 2)
	require.NoError(t, err)

	hub.Sweep()

	_, err = hub.GetSession(ended.RoomCode())
	assert.ErrorIs(t, err, domain.ErrRoomNotFound, "ended room past grace must be swept")
	_, err = hub.GetSession(idle.RoomCode())
	assert.ErrorIs(t, err, domain.ErrRoomNotFound, "idle room must be swept")
	_, err = hub.GetSession(fresh.RoomCode())
	assert.NoError(t, err, "fresh room must survive the sweep")
}
