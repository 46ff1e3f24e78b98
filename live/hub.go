package live

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	logPrefix = "live"

	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// event types pushed to planning session members
const (
	EventConnected         = "connected"
	EventAnnotationCreated = "annotation_created"
	EventAnnotationUpdated = "annotation_updated"
	EventAnnotationDeleted = "annotation_deleted"
	EventParticipantJoined = "participant_joined"
	EventParticipantLeft   = "participant_left"
	EventSessionUpdated    = "session_updated"
	EventSessionDeleted    = "session_deleted"
)

type Event struct {
	Type      string      `json:"type"`
	SessionID string      `json:"session_id"`
	Payload   interface{} `json:"payload,omitempty"`
}

type client struct {
	conn   *websocket.Conn
	userID string

	// gorilla connections support one concurrent writer
	writeLock sync.Mutex
}

func (c *client) write(v interface{}) error {
	c.writeLock.Lock()
	defer c.writeLock.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteJSON(v)
}

func (c *client) ping() error {
	c.writeLock.Lock()
	defer c.writeLock.Unlock()

	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// Hub keeps the websocket clients of every planning session
type Hub struct {
	sync.RWMutex
	sessions map[string]map[*client]bool
	upgrader websocket.Upgrader
}

// NewHub returns a hub accepting the given origins. "*" accepts any origin.
func NewHub(origins []string) *Hub {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}

	return &Hub{
		sessions: make(map[string]map[*client]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed["*"] || allowed[origin]
			},
		},
	}
}

func (h *Hub) register(sessionID string, c *client) {
	h.Lock()
	defer h.Unlock()

	if h.sessions[sessionID] == nil {
		h.sessions[sessionID] = make(map[*client]bool)
	}
	h.sessions[sessionID][c] = true
}

func (h *Hub) unregister(sessionID string, c *client) {
	h.Lock()
	if clients, ok := h.sessions[sessionID]; ok {
		delete(clients, c)
		if len(clients) == 0 {
			delete(h.sessions, sessionID)
		}
	}
	h.Unlock()

	c.conn.Close()
}

// Count returns the number of connected clients of a session
func (h *Hub) Count(sessionID string) int {
	h.RLock()
	defer h.RUnlock()
	return len(h.sessions[sessionID])
}

// Broadcast sends an event to every client of a session. Clients failing to
// receive it are disconnected. It returns the number of deliveries.
func (h *Hub) Broadcast(sessionID, eventType string, payload interface{}) int {
	h.RLock()
	clients := make([]*client, 0, len(h.sessions[sessionID]))
	for c := range h.sessions[sessionID] {
		clients = append(clients, c)
	}
	h.RUnlock()

	event := Event{
		Type:      eventType,
		SessionID: sessionID,
		Payload:   payload,
	}

	delivered := 0
	for _, c := range clients {
		if err := c.write(event); err != nil {
			log.WithField("prefix", logPrefix).
				WithField("session_id", sessionID).
				WithError(err).Warn("drop client after failed broadcast")
			h.unregister(sessionID, c)
			continue
		}
		delivered++
	}

	return delivered
}

// Serve upgrades the request and holds the connection until the client
// leaves. Messages sent by clients are ignored.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, sessionID, userID string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	l := log.WithField("prefix", logPrefix).WithField("session_id", sessionID).WithField("user_id", userID)

	c := &client{conn: conn, userID: userID}
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	h.register(sessionID, c)
	defer h.unregister(sessionID, c)

	if err := c.write(Event{Type: EventConnected, SessionID: sessionID}); err != nil {
		l.WithError(err).Warn("fail to send welcome message")
		return nil
	}
	l.Info("client connected")

	done := make(chan struct{})
	defer close(done)

	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := c.ping(); err != nil {
					return
				}
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				l.WithError(err).Warn("websocket closed unexpectedly")
			}
			break
		}
	}

	l.Info("client disconnected")
	return nil
}

// Disconnect closes the connections a user holds on a session and returns
// how many were closed
func (h *Hub) Disconnect(sessionID, userID string) int {
	h.Lock()
	closing := make([]*client, 0)
	if clients, ok := h.sessions[sessionID]; ok {
		for c := range clients {
			if c.userID == userID {
				closing = append(closing, c)
				delete(clients, c)
			}
		}
		if len(clients) == 0 {
			delete(h.sessions, sessionID)
		}
	}
	h.Unlock()

	for _, c := range closing {
		c.conn.Close()
	}
	return len(closing)
}

// CloseSession closes every connection of a session and returns how many
// were closed
func (h *Hub) CloseSession(sessionID string) int {
	h.Lock()
	clients := h.sessions[sessionID]
	delete(h.sessions, sessionID)
	h.Unlock()

	for c := range clients {
		c.conn.Close()
	}
	return len(clients)
}

// Close disconnects every client
func (h *Hub) Close() {
	h.Lock()
	defer h.Unlock()

	for id, clients := range h.sessions {
		for c := range clients {
			c.conn.Close()
		}
		delete(h.sessions, id)
	}
}
