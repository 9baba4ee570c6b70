package ws

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"wordsmith/internal/app"
	"wordsmith/internal/identity"
)

// Handler upgrades WebSocket connections and hands them to a room-bound
// client.
type Handler struct {
	hub      *app.Hub
	provider identity.Provider
	upgrader websocket.Upgrader
	logger   zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *app.Hub, provider identity.Provider, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:      hub,
		provider: provider,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Allow all origins for development
				// In production, you should validate the origin
				return true
			},
		},
		logger: logger,
	}
}

// ServeHTTP handles WebSocket upgrade requests. The player identity is not
// known yet; it is established by the join handshake over the socket.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	roomCode := strings.ToUpper(r.URL.Query().Get("roomCode"))
	if roomCode == "" {
		http.Error(w, "roomCode is required", http.StatusBadRequest)
		return
	}

	session, err := h.hub.GetSession(roomCode)
	if err != nil {
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	logger := h.logger.With().Str("room", roomCode).Logger()
	logger.Info().Str("remote", r.RemoteAddr).Msg("websocket connected")

	client := NewClient(conn, session, h.provider, logger)
	client.Run()
}
