package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 4, cfg.Game.SpawnIntervalSeconds)
	assert.Equal(t, 26, cfg.Game.MaxTableSize)
	assert.True(t, cfg.Game.PermissiveDictionary)
	assert.Equal(t, 6, cfg.Registry.RoomCodeLength)
	assert.Equal(t, 5*time.Minute, cfg.Registry.EndedRoomGrace)
	assert.Equal(t, 30*time.Minute, cfg.Registry.IdleTimeout)
	assert.Equal(t, time.Minute, cfg.Registry.SweepInterval)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "production")
	t.Setenv("SPAWN_INTERVAL_SECONDS", "2")
	t.Setenv("PERMISSIVE_DICTIONARY", "false")
	t.Setenv("ENDED_ROOM_GRACE_SECONDS", "60")
	t.Setenv("LOG_FORMAT", "json")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 2, cfg.Game.SpawnIntervalSeconds)
	assert.False(t, cfg.Game.PermissiveDictionary)
	assert.Equal(t, time.Minute, cfg.Registry.EndedRoomGrace)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("SPAWN_INTERVAL_SECONDS", "lots")
	t.Setenv("PERMISSIVE_DICTIONARY", "yep")

	cfg := Load()

	assert.Equal(t, 4, cfg.Game.SpawnIntervalSeconds)
	assert.True(t, cfg.Game.PermissiveDictionary)
}

func TestGetAddr(t *testing.T) {
	t.Setenv("HOST", "localhost")
	t.Setenv("PORT", "3000")

	cfg := Load()
	assert.Equal(t, "localhost:3000", cfg.GetAddr())
}
