package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"wordsmith/internal/app"
	"wordsmith/internal/config"
	"wordsmith/internal/identity"
	"wordsmith/internal/transport/ws"
)

// Server bundles the router, the hub and the HTTP listener
type Server struct {
	server *http.Server
	hub    *app.Hub
	config *config.Config
	logger zerolog.Logger
}

// NewServer constructs the server, installs middleware and registers routes
func NewServer(cfg *config.Config, hub *app.Hub, provider identity.Provider, logger zerolog.Logger) *Server {
	s := &Server{
		hub:    hub,
		config: cfg,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(s.corsMiddleware)
	r.Use(s.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Use(chimw.Timeout(10 * time.Second))
		r.Post("/rooms", s.handleCreateRoom)
		r.Get("/rooms/{roomCode}", s.handleGetRoom)
		r.Get("/rooms/{roomCode}/exists", s.handleRoomExists)
		r.Get("/health", s.handleHealth)
		r.Get("/stats", s.handleStats)
	})

	// The WebSocket route sits outside the timeout group: connections are
	// long lived by design.
	r.Method(http.MethodGet, "/ws", ws.NewHandler(hub, provider, logger))

	s.server = &http.Server{
		Addr:         cfg.GetAddr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // WebSocket writes manage their own deadlines
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// corsMiddleware adds permissive CORS headers and answers preflights
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requestLogger logs each request with its status and duration
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(wrapped, r)

		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapped.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", chimw.GetReqID(r.Context())).
			Msg("request")
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("server starting")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("server shutting down")
	return s.server.Shutdown(ctx)
}
