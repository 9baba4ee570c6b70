package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"wordsmith/internal/app"
	"wordsmith/internal/domain"
)

// Response is a standard API response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreateRoomRequest is the body for room creation
type CreateRoomRequest struct {
	WordLength   int `json:"wordLength"`
	TimerMinutes int `json:"timerMinutes"`
}

// CreateRoomResponse is the response for room creation
type CreateRoomResponse struct {
	RoomCode   string `json:"roomCode"`
	InviteLink string `json:"inviteLink"`
}

// GetRoomResponse is the response for getting room info
type GetRoomResponse struct {
	RoomCode     string `json:"roomCode"`
	PlayerCount  int    `json:"playerCount"`
	Phase        string `json:"phase"`
	WordLength   int    `json:"wordLength"`
	TimerMinutes int    `json:"timerMinutes"`
}

// RoomExistsResponse is the response for checking if a room exists
type RoomExistsResponse struct {
	Exists bool `json:"exists"`
}

// HealthResponse is the response for health checks
type HealthResponse struct {
	Status string `json:"status"`
}

// StatsResponse is the response for the stats endpoint
type StatsResponse struct {
	ActiveRooms  int `json:"activeRooms"`
	TotalPlayers int `json:"totalPlayers"`
}

// handleCreateRoom handles POST /api/rooms
func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be JSON")
		return
	}

	session, err := s.hub.CreateRoom(req.WordLength, req.TimerMinutes)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidWordLength), errors.Is(err, domain.ErrInvalidTimer):
			s.sendError(w, http.StatusBadRequest, "INVALID_CONFIG", err.Error())
		case errors.Is(err, app.ErrRegistryFull):
			s.sendError(w, http.StatusServiceUnavailable, "REGISTRY_FULL", "Could not allocate a room code, retry")
		default:
			s.sendError(w, http.StatusInternalServerError, "CREATION_FAILED", "Failed to create room")
		}
		return
	}

	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	inviteLink := scheme + "://" + r.Host + "/join/" + session.RoomCode()

	s.sendSuccess(w, &CreateRoomResponse{
		RoomCode:   session.RoomCode(),
		InviteLink: inviteLink,
	})
}

// handleGetRoom handles GET /api/rooms/{roomCode}
func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookupRoom(w, r)
	if !ok {
		return
	}

	settings := session.Settings()
	s.sendSuccess(w, &GetRoomResponse{
		RoomCode:     session.RoomCode(),
		PlayerCount:  session.PlayerCount(),
		Phase:        session.Phase().String(),
		WordLength:   settings.WordLength,
		TimerMinutes: settings.TimerMinutes,
	})
}

// handleRoomExists handles GET /api/rooms/{roomCode}/exists
func (s *Server) handleRoomExists(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(chi.URLParam(r, "roomCode"))
	_, err := s.hub.GetSession(code)
	s.sendSuccess(w, &RoomExistsResponse{Exists: err == nil})
}

// handleHealth handles GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, &HealthResponse{Status: "ok"})
}

// handleStats handles GET /api/stats
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, &StatsResponse{
		ActiveRooms:  s.hub.SessionCount(),
		TotalPlayers: s.hub.TotalPlayerCount(),
	})
}

func (s *Server) lookupRoom(w http.ResponseWriter, r *http.Request) (*app.RoomSession, bool) {
	code := strings.ToUpper(chi.URLParam(r, "roomCode"))
	if code == "" {
		s.sendError(w, http.StatusBadRequest, "MISSING_ROOM_CODE", "Room code is required")
		return nil, false
	}

	session, err := s.hub.GetSession(code)
	if err != nil {
		if errors.Is(err, domain.ErrRoomNotFound) {
			s.sendError(w, http.StatusNotFound, "ROOM_NOT_FOUND", "Room not found")
		} else {
			s.sendError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		}
		return nil, false
	}
	return session, true
}

// sendSuccess sends a successful JSON response
func (s *Server) sendSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(&Response{
		Success: true,
		Data:    data,
	})
}

// sendError sends an error JSON response
func (s *Server) sendError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(&Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}
