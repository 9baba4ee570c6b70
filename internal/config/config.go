package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Game     GameConfig
	Registry RegistryConfig
	Auth     AuthConfig
	Logging  LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
	Host string
	Env  string // "development" or "production"
}

// GameConfig holds game-related configuration
type GameConfig struct {
	SpawnIntervalSeconds int
	MaxTableSize         int
	PermissiveDictionary bool
}

// RegistryConfig holds room lifecycle configuration
type RegistryConfig struct {
	RoomCodeLength int
	EndedRoomGrace time.Duration
	IdleTimeout    time.Duration
	SweepInterval  time.Duration
}

// AuthConfig holds identity provider configuration
type AuthConfig struct {
	JWTSecret string
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "console"
}

// Load loads configuration from environment variables with defaults. A .env
// file is honored in development.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Host: getEnv("HOST", "0.0.0.0"),
			Env:  getEnv("ENV", "development"),
		},
		Game: GameConfig{
			SpawnIntervalSeconds: getEnvInt("SPAWN_INTERVAL_SECONDS", 4),
			MaxTableSize:         getEnvInt("MAX_TABLE_SIZE", 26),
			PermissiveDictionary: getEnvBool("PERMISSIVE_DICTIONARY", true),
		},
		Registry: RegistryConfig{
			RoomCodeLength: getEnvInt("ROOM_CODE_LENGTH", 6),
			EndedRoomGrace: time.Duration(getEnvInt("ENDED_ROOM_GRACE_SECONDS", 300)) * time.Second,
			IdleTimeout:    time.Duration(getEnvInt("IDLE_ROOM_TIMEOUT_SECONDS", 1800)) * time.Second,
			SweepInterval:  time.Duration(getEnvInt("SWEEP_INTERVAL_SECONDS", 60)) * time.Second,
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// GetAddr returns the server address in host:port format
func (c *Config) GetAddr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// getEnv returns an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt returns an environment variable as an integer or a default value
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool returns an environment variable as a boolean or a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
