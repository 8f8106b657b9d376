// Package events 通过 WebSocket 向在线页面推送数据变更事件。
package events

import (
	"net/http"
	"sync"

	"gen-archive-go/internal/store"
	"gen-archive-go/pkg/log"

	"github.com/gorilla/websocket"
)

// sendQueueSize 是每个连接的发送缓冲。写不动缓冲即满的连接被断开。
const sendQueueSize = 16

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub 维护全部在线 WebSocket 连接。每个连接有独立的发送队列和写协程，
// 广播只做非阻塞入队，慢客户端不会拖住其他连接。
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]chan store.ChangeEvent
}

func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]chan store.ChangeEvent)}
}

// Serve 把 HTTP 请求升级为 WebSocket 并注册连接。连接只用于下行推送，
// 读循环仅负责感知对端关闭。
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Errorf("[events] WebSocket 升级失败: %v", err)
		return
	}

	send := make(chan store.ChangeEvent, sendQueueSize)
	h.mu.Lock()
	h.conns[conn] = send
	h.mu.Unlock()
	log.Infof("[events] 新的 WebSocket 连接: %s", conn.RemoteAddr())

	go func() {
		defer h.remove(conn)
		for ev := range send {
			if err := conn.WriteJSON(ev); err != nil {
				log.Warnf("[events] 推送事件失败，移除连接 %s: %v", conn.RemoteAddr(), err)
				return
			}
		}
	}()

	go func() {
		defer h.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast 把事件入队到每个连接的发送队列。队列满说明客户端
// 消费不过来，直接移除该连接。本方法不阻塞，可在持锁的变更路径上
// 同步调用。
func (h *Hub) Broadcast(ev store.ChangeEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn, send := range h.conns {
		select {
		case send <- ev:
		default:
			log.Warnf("[events] 连接 %s 发送队列已满，移除", conn.RemoteAddr())
			delete(h.conns, conn)
			close(send)
			conn.Close()
		}
	}
}

// remove 注销连接并关闭其发送队列。重复调用安全。
func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if send, ok := h.conns[conn]; ok {
		delete(h.conns, conn)
		close(send)
	}
	conn.Close()
}
