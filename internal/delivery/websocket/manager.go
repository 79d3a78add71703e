package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"gameforge/internal/interfaces"
	"gameforge/internal/models"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 64
)

// Message is the envelope pushed to clients.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// TokenVerifier authenticates the token passed on the upgrade request.
type TokenVerifier func(ctx context.Context, tokenString string) (*models.Claims, error)

// Client is one websocket connection of a user.
type Client struct {
	id      uuid.UUID
	userID  uuid.UUID
	conn    *websocket.Conn
	manager *Manager
	send    chan []byte
}

// Manager tracks connections per user and delivers targeted events.
type Manager struct {
	mu       sync.RWMutex
	clients  map[uuid.UUID]map[*Client]struct{}
	upgrader websocket.Upgrader
	verifier TokenVerifier
	logger   *zap.Logger
}

var _ interfaces.ClientNotifier = (*Manager)(nil)

// NewManager creates a Manager. An empty allowedOrigins list accepts every origin.
func NewManager(verifier TokenVerifier, allowedOrigins []string, logger *zap.Logger) *Manager {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = struct{}{}
	}
	return &Manager{
		clients: make(map[uuid.UUID]map[*Client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(origins) == 0 {
					return true
				}
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				_, ok := origins[origin]
				return ok
			},
		},
		verifier: verifier,
		logger:   logger.Named("WebSocketManager"),
	}
}

// ServeWS authenticates the "token" query parameter and upgrades the connection.
func (m *Manager) ServeWS(w http.ResponseWriter, r *http.Request) {
	tokenString := r.URL.Query().Get("token")
	if tokenString == "" {
		http.Error(w, "Unauthorized: Missing token", http.StatusUnauthorized)
		return
	}
	claims, err := m.verifier(r.Context(), tokenString)
	if err != nil {
		m.logger.Debug("Rejected websocket token", zap.Error(err))
		http.Error(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		m.logger.Warn("Failed to upgrade connection", zap.Stringer("userID", claims.UserID), zap.Error(err))
		return
	}
	client := &Client{
		id:      uuid.New(),
		userID:  claims.UserID,
		conn:    conn,
		manager: m,
		send:    make(chan []byte, sendBufferSize),
	}
	m.register(client)
	go client.writePump()
	go client.readPump()
}

func (m *Manager) register(c *Client) {
	m.mu.Lock()
	set, ok := m.clients[c.userID]
	if !ok {
		set = make(map[*Client]struct{})
		m.clients[c.userID] = set
	}
	set[c] = struct{}{}
	m.mu.Unlock()
	m.logger.Info("Client connected", zap.Stringer("userID", c.userID), zap.Stringer("clientID", c.id))
}

func (m *Manager) unregister(c *Client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	set, ok := m.clients[c.userID]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	close(c.send)
	if len(set) == 0 {
		delete(m.clients, c.userID)
	}
	m.logger.Info("Client disconnected", zap.Stringer("userID", c.userID), zap.Stringer("clientID", c.id))
}

// NotifyUser sends an event to every connection of userID. Slow clients
// whose buffer is full are dropped.
func (m *Manager) NotifyUser(userID uuid.UUID, eventType string, payload interface{}) {
	data, err := json.Marshal(Message{Type: eventType, Payload: payload})
	if err != nil {
		m.logger.Error("Failed to marshal event", zap.String("type", eventType), zap.Error(err))
		return
	}

	var stale []*Client
	m.mu.RLock()
	for c := range m.clients[userID] {
		select {
		case c.send <- data:
		default:
			stale = append(stale, c)
		}
	}
	m.mu.RUnlock()

	for _, c := range stale {
		m.logger.Warn("Dropping slow client", zap.Stringer("userID", userID), zap.Stringer("clientID", c.id))
		m.unregister(c)
	}
}

// ConnectionCount returns the number of open connections of userID.
func (m *Manager) ConnectionCount(userID uuid.UUID) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients[userID])
}

// CloseAll disconnects every client.
func (m *Manager) CloseAll() {
	m.mu.RLock()
	var all []*Client
	for _, set := range m.clients {
		for c := range set {
			all = append(all, c)
		}
	}
	m.mu.RUnlock()
	for _, c := range all {
		m.unregister(c)
	}
}

// readPump only keeps the connection alive; clients send nothing meaningful.
func (c *Client) readPump() {
	defer func() {
		c.manager.unregister(c)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.manager.logger.Debug("Websocket read error", zap.Stringer("clientID", c.id), zap.Error(err))
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
