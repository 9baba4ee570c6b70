package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"wordsmith/internal/app"
	"wordsmith/internal/config"
	"wordsmith/internal/domain"
	"wordsmith/internal/identity"
	httpTransport "wordsmith/internal/transport/http"
	"wordsmith/internal/words"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg)

	logger.Info().
		Str("env", cfg.Server.Env).
		Str("port", cfg.Server.Port).
		Int("dictionary_3", words.CountByLength(3)).
		Int("dictionary_6", words.CountByLength(6)).
		Msg("starting wordsmith game server")

	judge := domain.NewDictionaryJudge(words.Contains, cfg.Game.PermissiveDictionary)

	hub := app.NewHub(judge, app.HubOptions{
		RoomCodeLength: cfg.Registry.RoomCodeLength,
		EndedRoomGrace: cfg.Registry.EndedRoomGrace,
		IdleTimeout:    cfg.Registry.IdleTimeout,
		SweepInterval:  cfg.Registry.SweepInterval,
		SpawnInterval:  cfg.Game.SpawnIntervalSeconds,
		MaxTableSize:   cfg.Game.MaxTableSize,
	}, logger)
	defer hub.Close()

	provider := identity.NewTokenProvider(cfg.Auth.JWTSecret)

	server := httpTransport.NewServer(cfg, hub, provider, logger)

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server stopped")
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Logging.Format == "console" {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		logger = zerolog.New(output)
	} else {
		logger = zerolog.New(os.Stdout)
	}

	return logger.Level(level).With().Timestamp().Logger()
}
