package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/webref/internal/logging"
)

func TestAllowedOrigins(t *testing.T) {
	v := AllowedOrigins{Origins: []string{"https://docs.example.com"}, Port: 8080}

	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{"listed origin", "https://docs.example.com", true},
		{"localhost same port", "http://localhost:8080", true},
		{"loopback ip same port", "http://127.0.0.1:8080", true},
		{"localhost other port", "http://localhost:9999", false},
		{"external", "http://malicious.com", false},
		{"javascript scheme", "javascript:alert(1)", false},
		{"file scheme", "file:///etc/passwd", false},
		{"malformed", "not-a-url", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.IsAllowedOrigin(tt.origin))
		})
	}

	wildcard := AllowedOrigins{Origins: []string{"*"}}
	assert.True(t, wildcard.IsAllowedOrigin("http://anything.test"))
	assert.False(t, wildcard.IsAllowedOrigin("ftp://anything.test"))
}

func newTestHub(t *testing.T, opts ...Option) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub(AllowedOrigins{Origins: []string{"http://allowed.test"}}, logging.Discard(), opts...)
	srv := httptest.NewServer(hub)
	t.Cleanup(func() {
		srv.Close()
		_ = hub.Shutdown(context.Background())
	})
	return hub, srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestHubBroadcast(t *testing.T) {
	var counted atomic.Int64
	hub, srv := newTestHub(t, WithClientCountHook(func(n int) { counted.Store(int64(n)) }))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL(srv), nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, int64(1), counted.Load())

	require.True(t, hub.Broadcast(UpdateMessage{Type: MessageCatalogReload, Target: "css"}))

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg UpdateMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, MessageCatalogReload, msg.Type)
	assert.Equal(t, "css", msg.Target)
	assert.False(t, msg.Timestamp.IsZero())
}

func TestHubClientDisconnect(t *testing.T) {
	hub, srv := newTestHub(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL(srv), nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, "bye"))
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHubRejectsOrigin(t *testing.T) {
	_, srv := newTestHub(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, resp, err := websocket.Dial(ctx, wsURL(srv), &websocket.DialOptions{
		HTTPHeader: http.Header{"Origin": []string{"http://evil.test"}},
	})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHubShutdown(t *testing.T) {
	hub := NewHub(nil, logging.Discard())

	require.NoError(t, hub.Shutdown(context.Background()))
	assert.True(t, hub.IsShutdown())
	assert.False(t, hub.Broadcast(UpdateMessage{Type: MessageFullReload}))
	assert.NoError(t, hub.Shutdown(context.Background()))

	rec := httptest.NewRecorder()
	hub.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
