package events

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gen-archive-go/internal/store"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (h *Hub) connCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

func dialHub(t *testing.T, hub *Hub) (*websocket.Conn, func()) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(hub.Serve))
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	// 等待服务端完成注册
	require.Eventually(t, func() bool { return hub.connCount() == 1 },
		time.Second, 10*time.Millisecond)

	return conn, func() {
		conn.Close()
		srv.Close()
	}
}

func TestHub_BroadcastDeliversInOrder(t *testing.T) {
	hub := NewHub()
	conn, cleanup := dialHub(t, hub)
	defer cleanup()

	hub.Broadcast(store.ChangeEvent{Type: "post_created", PostID: "p1"})
	hub.Broadcast(store.ChangeEvent{Type: "review_created", PostID: "p1"})

	var first, second store.ChangeEvent
	conn.SetReadDeadline(time.Now().Add(time.Second))
	require.NoError(t, conn.ReadJSON(&first))
	require.NoError(t, conn.ReadJSON(&second))

	assert.Equal(t, "post_created", first.Type)
	assert.Equal(t, "review_created", second.Type)
	assert.Equal(t, "p1", first.PostID)
}

func TestHub_BroadcastDoesNotBlockOnSlowClient(t *testing.T) {
	hub := NewHub()
	_, cleanup := dialHub(t, hub)
	defer cleanup()

	// 客户端不消费：入队超出发送缓冲后该连接被移除，广播始终立即返回
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 10*sendQueueSize; i++ {
			hub.Broadcast(store.ChangeEvent{Type: "sheet_loaded"})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("广播被慢客户端阻塞")
	}
}

func TestHub_BroadcastWithNoConnections(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	hub.Broadcast(store.ChangeEvent{Type: "post_created"})
	assert.Equal(t, 0, hub.connCount())
}
