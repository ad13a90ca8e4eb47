package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ClientConn 负责发送（写）数据到观战端的轻量包装
type ClientConn struct {
	id     string
	binary bool // true: msgpack 二进制帧；false: JSON 文本帧
	ws     *websocket.Conn
	send   chan []byte
}

func NewClientConn(ws *websocket.Conn, binary bool) *ClientConn {
	return &ClientConn{
		id:     uuid.NewString(),
		binary: binary,
		ws:     ws,
		send:   make(chan []byte, 64),
	}
}

func (c *ClientConn) ID() string { return c.id }

// Enqueue 将要发送的消息压入队列（非阻塞，满则丢弃）
func (c *ClientConn) Enqueue(b []byte) bool {
	select {
	case c.send <- b:
		return true
	default:
		// 为了实时性，丢弃（防止阻塞 Tick）
		return false
	}
}

// Close 关闭底层连接与发送队列
func (c *ClientConn) Close() {
	if c.send != nil {
		// 关闭发送通道以结束写协程
		close(c.send)
		c.send = nil
	}
	if c.ws != nil {
		_ = c.ws.Close()
	}
}

// writePump 独立协程，负责从 send 队列写出到 WS
func (c *ClientConn) writePump(send <-chan []byte) {
	defer c.ws.Close()
	msgType := websocket.TextMessage
	if c.binary {
		msgType = websocket.BinaryMessage
	}
	for msg := range send {
		c.ws.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := c.ws.WriteMessage(msgType, msg); err != nil {
			return
		}
	}
}

// readPump 观战连接只读：丢弃客户端发来的一切，仅用于感知断开
func (c *ClientConn) readPump(room *Room) {
	defer c.ws.Close()
	// 读泵退出时，通知房间在 Tick 线程中移除该观战者
	defer room.RequestLeave(c.id)
	c.ws.SetReadLimit(4 << 10)
	c.ws.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.ws.SetPongHandler(func(string) error { c.ws.SetReadDeadline(time.Now().Add(60 * time.Second)); return nil })

	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			return
		}
		c.ws.SetReadDeadline(time.Now().Add(60 * time.Second))
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		// 演示环境：允许所有来源（生产环境需严格限制）
		return true
	},
}

// HandleWS 观战接入：?room=room-1&format=json|msgpack
func HandleWS(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("room")
	if roomID == "" {
		roomID = "room-1"
	}
	binary := false
	switch strings.ToLower(r.URL.Query().Get("format")) {
	case "", "json":
	case "msgpack":
		binary = true
	default:
		http.Error(w, "format must be json or msgpack", http.StatusBadRequest)
		return
	}

	room, err := GetRoomManager().GetOrCreateRoom(roomID)
	if err != nil {
		Log.Errorf("room %s: %v", roomID, err)
		http.Error(w, "room unavailable", http.StatusInternalServerError)
		return
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		Log.Warnf("upgrade error: %v", err)
		return
	}

	client := NewClientConn(ws, binary)
	send := client.send
	if !room.AddSpectator(client) {
		_ = ws.Close()
		return
	}

	go client.writePump(send)
	go client.readPump(room)
}
