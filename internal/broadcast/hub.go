// Package broadcast streams network frames to websocket clients.
package broadcast

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iburimskiy/orbit-network/internal/motion"
)

const (
	clientBuffer = 4
	writeWait    = time.Second
)

// Hub fans encoded frames out to every connected client. A client that
// cannot keep up loses frames instead of slowing the loop down.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]chan []byte
	closed  bool
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[*websocket.Conn]chan []byte),
	}
}

// ServeHTTP upgrades the request and registers the connection.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("broadcast: upgrade: %v", err)
		return
	}

	send := make(chan []byte, clientBuffer)
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[conn] = send
	n := len(h.clients)
	h.mu.Unlock()
	log.Printf("broadcast: client %s connected (%d total)", conn.RemoteAddr(), n)

	go h.writePump(conn, send)
	go h.readPump(conn)
}

// Publish encodes the current frame once and queues it for every client.
func (h *Hub) Publish(n *motion.Network) {
	h.broadcast(EncodeFrame(n))
}

func (h *Hub) broadcast(frame []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, send := range h.clients {
		select {
		case send <- frame:
		default:
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for conn, send := range h.clients {
		close(send)
		delete(h.clients, conn)
	}
}

func (h *Hub) writePump(conn *websocket.Conn, send <-chan []byte) {
	defer conn.Close()
	for frame := range send {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
			h.remove(conn)
			return
		}
	}
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeWait))
}

// readPump discards client messages and notices when the client goes away.
func (h *Hub) readPump(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.remove(conn)
			return
		}
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	send, ok := h.clients[conn]
	if ok {
		delete(h.clients, conn)
		close(send)
	}
	n := len(h.clients)
	h.mu.Unlock()
	if ok {
		log.Printf("broadcast: client %s disconnected (%d left)", conn.RemoteAddr(), n)
	}
}
