package live

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func dial(t *testing.T, server *httptest.Server, sessionID string) *websocket.Conn {
	return dialAs(t, server, sessionID, "user")
}

func dialAs(t *testing.T, server *httptest.Server, sessionID, userID string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/?session=" + sessionID + "&user=" + userID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.NoError(t, err)

	var welcome Event
	assert.NoError(t, conn.ReadJSON(&welcome))
	assert.Equal(t, EventConnected, welcome.Type)
	assert.Equal(t, sessionID, welcome.SessionID)

	return conn
}

func newTestServer(h *Hub) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = h.Serve(w, r, r.URL.Query().Get("session"), r.URL.Query().Get("user"))
	}))
}

func TestHubBroadcast(t *testing.T) {
	h := NewHub([]string{"*"})
	server := newTestServer(h)
	defer server.Close()

	a := dial(t, server, "s1")
	defer a.Close()
	b := dial(t, server, "s1")
	defer b.Close()
	other := dial(t, server, "s2")
	defer other.Close()

	assert.Eventually(t, func() bool { return h.Count("s1") == 2 }, time.Second, 10*time.Millisecond)

	delivered := h.Broadcast("s1", EventAnnotationCreated, map[string]string{"id": "a1"})
	assert.Equal(t, 2, delivered)

	for _, conn := range []*websocket.Conn{a, b} {
		var e Event
		assert.NoError(t, conn.ReadJSON(&e))
		assert.Equal(t, EventAnnotationCreated, e.Type)
		assert.Equal(t, "s1", e.SessionID)
		assert.Equal(t, map[string]interface{}{"id": "a1"}, e.Payload)
	}

	assert.Equal(t, 0, h.Broadcast("nobody", EventSessionUpdated, nil))
}

func TestHubUnregisterOnClose(t *testing.T) {
	h := NewHub(nil)
	server := newTestServer(h)
	defer server.Close()

	conn := dial(t, server, "s1")
	assert.Eventually(t, func() bool { return h.Count("s1") == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return h.Count("s1") == 0 }, time.Second, 10*time.Millisecond)
}

func TestHubRejectOrigin(t *testing.T) {
	h := NewHub([]string{"https://city.example"})
	server := newTestServer(h)
	defer server.Close()

	header := http.Header{}
	header.Set("Origin", "https://evil.example")
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/?session=s1"
	_, resp, err := websocket.DefaultDialer.Dial(url, header)

	assert.Error(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHubDisconnectUser(t *testing.T) {
	h := NewHub([]string{"*"})
	server := newTestServer(h)
	defer server.Close()

	owner := dialAs(t, server, "s1", "owner")
	defer owner.Close()
	leaving := dialAs(t, server, "s1", "leaving")
	defer leaving.Close()
	elsewhere := dialAs(t, server, "s2", "leaving")
	defer elsewhere.Close()

	assert.Eventually(t, func() bool { return h.Count("s1") == 2 }, time.Second, 10*time.Millisecond)

	assert.Equal(t, 1, h.Disconnect("s1", "leaving"))
	assert.Equal(t, 1, h.Count("s1"))
	assert.Equal(t, 1, h.Count("s2"))
	assert.Equal(t, 0, h.Disconnect("s1", "leaving"))

	// the user who left gets nothing more
	assert.Equal(t, 1, h.Broadcast("s1", EventAnnotationCreated, nil))
	_ = leaving.SetReadDeadline(time.Now().Add(time.Second))
	_, _, err := leaving.ReadMessage()
	assert.Error(t, err)

	var e Event
	assert.NoError(t, owner.ReadJSON(&e))
	assert.Equal(t, EventAnnotationCreated, e.Type)
}

func TestHubCloseSession(t *testing.T) {
	h := NewHub([]string{"*"})
	server := newTestServer(h)
	defer server.Close()

	a := dialAs(t, server, "s1", "a")
	defer a.Close()
	b := dialAs(t, server, "s1", "b")
	defer b.Close()
	other := dialAs(t, server, "s2", "a")
	defer other.Close()

	assert.Eventually(t, func() bool { return h.Count("s1") == 2 }, time.Second, 10*time.Millisecond)

	assert.Equal(t, 2, h.CloseSession("s1"))
	assert.Equal(t, 0, h.Count("s1"))
	assert.Equal(t, 0, h.Broadcast("s1", EventSessionUpdated, nil))
	assert.Equal(t, 1, h.Count("s2"))

	for _, conn := range []*websocket.Conn{a, b} {
		_ = conn.SetReadDeadline(time.Now().Add(time.Second))
		_, _, err := conn.ReadMessage()
		assert.Error(t, err)
	}
}
