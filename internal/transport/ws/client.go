package ws

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"wordsmith/internal/app"
	"wordsmith/internal/domain"
	"wordsmith/internal/identity"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096

	// Size of the send channel buffer
	sendBufferSize = 256
)

// Client is one WebSocket connection. It is unbound until the join
// handshake resolves an identity; after that every inbound message is
// translated into a session operation and every session event is forwarded
// out.
type Client struct {
	conn     *websocket.Conn
	session  *app.RoomSession
	provider identity.Provider
	limiter  *rate.Limiter

	playerID string // empty until the join handshake completes

	send   chan []byte
	logger zerolog.Logger
	mu     sync.Mutex
	closed bool
}

// NewClient creates a client for an upgraded connection
func NewClient(conn *websocket.Conn, session *app.RoomSession, provider identity.Provider, logger zerolog.Logger) *Client {
	return &Client{
		conn:     conn,
		session:  session,
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(5), 10),
		send:     make(chan []byte, sendBufferSize),
		logger:   logger,
	}
}

// GetPlayerID implements app.ClientConnection
func (c *Client) GetPlayerID() string {
	return c.playerID
}

// Send implements app.ClientConnection
func (c *Client) Send(message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	select {
	case c.send <- data:
		return nil
	default:
		// Buffer full, message dropped
		c.logger.Warn().Str("player", c.playerID).Msg("send buffer full, message dropped")
		return nil
	}
}

// Close implements app.ClientConnection. Closing the send channel lets the
// write pump flush anything still queued, emit a close frame and then tear
// the connection down, so a final error message is not lost.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true
	close(c.send)
	return nil
}

// Run starts the client's read and write pumps
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

// readPump pumps messages from the WebSocket connection. When it exits the
// binding is undone and the player's leave is resolved by the room.
func (c *Client) readPump() {
	defer func() {
		// Only the connection still bound to the player resolves the
		// leave; a stale connection replaced by a reconnect must not
		// disconnect the player again.
		if c.playerID != "" && c.session.DetachClient(c) {
			if err := c.session.Leave(c.playerID); err != nil && !errors.Is(err, domain.ErrPlayerNotFound) {
				c.logger.Debug().Err(err).Str("player", c.playerID).Msg("leave on disconnect failed")
			}
		}
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Debug().Err(err).Msg("websocket read error")
			}
			break
		}

		if !c.handleMessage(message) {
			break
		}
	}
}

// writePump pumps messages from the send channel to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Channel closed by Close; everything queued has been
				// drained, say goodbye properly.
				c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current websocket message
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage processes one inbound message. Returning false closes the
// connection: malformed messages and unknown types are protocol errors and
// never reach the room.
func (c *Client) handleMessage(data []byte) bool {
	if !c.limiter.Allow() {
		c.sendError(ErrCodeRateLimited, "Too many messages")
		return true
	}

	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.sendError(ErrCodeInvalidMessage, "Invalid message format")
		return false
	}

	switch msg.Type {
	case MsgJoin:
		return c.handleJoin(msg.Payload)
	case MsgStartGame:
		c.handleStartGame()
	case MsgSubmitWord:
		c.handleSubmitWord(msg.Payload)
	case MsgPing:
		c.Send(NewServerMessage(MsgPong, nil))
	default:
		c.sendError(ErrCodeInvalidMessage, "Unknown message type")
		return false
	}
	return true
}

// handleJoin runs the join handshake: resolve the identity once, bind the
// connection, then join the room. The snapshot queued by AttachClient
// reaches the client before any event that follows the join.
func (c *Client) handleJoin(payload interface{}) bool {
	payloadMap, ok := payload.(map[string]interface{})
	if !ok {
		c.sendError(ErrCodeInvalidMessage, "Invalid payload")
		return false
	}

	name, ok := payloadMap["playerName"].(string)
	if !ok || name == "" {
		c.sendError(ErrCodeInvalidMessage, "playerName is required")
		return false
	}
	token, _ := payloadMap["identityToken"].(string)

	if c.playerID != "" {
		c.sendError(ErrCodeInvalidAction, "Already joined")
		return true
	}

	id, err := c.provider.Resolve(token, name)
	if err != nil {
		c.sendError(ErrCodeInvalidToken, "Invalid identity token")
		return false
	}

	c.playerID = id.ID
	c.logger = c.logger.With().Str("player", id.ID).Logger()

	// Acknowledge before attaching: the ack travels the connection's own
	// send queue, so writing it first keeps it ahead of the snapshot the
	// attachment delivers. playerID stays set on failure; the disconnect
	// cleanup tolerates a player the room never admitted.
	c.Send(NewServerMessage(MsgConnected, &ConnectedPayload{
		PlayerID: id.ID,
		RoomCode: c.session.RoomCode(),
	}))

	c.session.AttachClient(c)
	if _, err := c.session.Join(id.ID, id.DisplayName); err != nil {
		c.session.DetachClient(c)
		c.sendError(ErrCodeInternalError, err.Error())
		return false
	}
	return true
}

// handleStartGame handles a start_game message
func (c *Client) handleStartGame() {
	if c.playerID == "" {
		c.sendError(ErrCodeNotJoined, "Join the room first")
		return
	}

	if err := c.session.Start(c.playerID); err != nil {
		switch {
		case errors.Is(err, domain.ErrGameAlreadyStarted):
			c.sendError(ErrCodeInvalidAction, "Game has already started")
		case errors.Is(err, domain.ErrNotEnoughPlayers):
			c.sendError(ErrCodeInvalidAction, "Need at least one player to start")
		default:
			c.sendError(ErrCodeInternalError, err.Error())
		}
	}
}

// handleSubmitWord handles a submit_word message. Rejections come back to
// this client as word_rejected events from the session, so only transport
// level problems produce errors here.
func (c *Client) handleSubmitWord(payload interface{}) {
	if c.playerID == "" {
		c.sendError(ErrCodeNotJoined, "Join the room first")
		return
	}

	payloadMap, ok := payload.(map[string]interface{})
	if !ok {
		c.sendError(ErrCodeInvalidMessage, "Invalid payload")
		return
	}

	word, ok := payloadMap["word"].(string)
	if !ok || word == "" {
		c.sendError(ErrCodeInvalidMessage, "word is required")
		return
	}

	rawIDs, ok := payloadMap["selectedLetterIds"].([]interface{})
	if !ok {
		c.sendError(ErrCodeInvalidMessage, "selectedLetterIds is required")
		return
	}

	tileIDs := make([]string, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, ok := raw.(string)
		if !ok {
			c.sendError(ErrCodeInvalidMessage, "selectedLetterIds must be strings")
			return
		}
		tileIDs = append(tileIDs, id)
	}

	if err := c.session.SubmitWord(c.playerID, tileIDs, word); err != nil {
		var rej *domain.RejectionError
		if !errors.As(err, &rej) {
			c.sendError(ErrCodeInternalError, err.Error())
		}
	}
}

// sendError sends an error message to the client
func (c *Client) sendError(code, message string) {
	c.Send(NewServerMessage(MsgError, &ErrorPayload{
		Code:    code,
		Message: message,
	}))
}
