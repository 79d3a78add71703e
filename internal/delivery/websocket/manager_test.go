package websocket_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	ws "gameforge/internal/delivery/websocket"
	"gameforge/internal/models"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, users map[string]uuid.UUID) (*ws.Manager, *httptest.Server) {
	t.Helper()
	verifier := func(ctx context.Context, token string) (*models.Claims, error) {
		id, ok := users[token]
		if !ok {
			return nil, models.ErrTokenInvalid
		}
		return &models.Claims{UserID: id}, nil
	}
	manager := ws.NewManager(verifier, nil, zap.NewNop())
	srv := httptest.NewServer(http.HandlerFunc(manager.ServeWS))
	t.Cleanup(func() {
		manager.CloseAll()
		srv.Close()
	})
	return manager, srv
}

func dial(t *testing.T, srv *httptest.Server, token string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForConnections(t *testing.T, m *ws.Manager, userID uuid.UUID, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return m.ConnectionCount(userID) == n }, 2*time.Second, 10*time.Millisecond)
}

func TestNotifyUser_DeliversOnlyToTarget(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	manager, srv := newTestServer(t, map[string]uuid.UUID{"alice": alice, "bob": bob})

	aliceConn := dial(t, srv, "alice")
	bobConn := dial(t, srv, "bob")
	waitForConnections(t, manager, alice, 1)
	waitForConnections(t, manager, bob, 1)

	manager.NotifyUser(alice, models.EventImageReady, map[string]string{"image_path": "characters/character_Mara.jpg"})

	require.NoError(t, aliceConn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := aliceConn.ReadMessage()
	require.NoError(t, err)
	var msg struct {
		Type    string            `json:"type"`
		Payload map[string]string `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, models.EventImageReady, msg.Type)
	assert.Equal(t, "characters/character_Mara.jpg", msg.Payload["image_path"])

	require.NoError(t, bobConn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err = bobConn.ReadMessage()
	assert.Error(t, err)
}

func TestServeWS_RejectsBadToken(t *testing.T) {
	_, srv := newTestServer(t, map[string]uuid.UUID{})

	for _, query := range []string{"", "?token=unknown"} {
		resp, err := http.Get(srv.URL + "/" + query)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
}

func TestDisconnectUnregisters(t *testing.T) {
	alice := uuid.New()
	manager, srv := newTestServer(t, map[string]uuid.UUID{"alice": alice})

	conn := dial(t, srv, "alice")
	waitForConnections(t, manager, alice, 1)
	conn.Close()
	waitForConnections(t, manager, alice, 0)

	// No listeners left: must not block or panic.
	manager.NotifyUser(alice, models.EventNarrativeUpdated, nil)
}
