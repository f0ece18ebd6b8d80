package server

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Local preview server only; cross-origin checks would just get in the
	// way of editors opening pages from the filesystem.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// reloadHub tracks connected live-reload clients and pushes a reload signal
// after each successful rebuild.
type reloadHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func newReloadHub() *reloadHub {
	return &reloadHub{clients: make(map[*websocket.Conn]bool)}
}

func (h *reloadHub) register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = true
}

func (h *reloadHub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
}

// broadcast sends a message to every connected client, dropping any that
// fail to write.
func (h *reloadHub) broadcast(message []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
			client.Close()
			delete(h.clients, client)
		}
	}
}

// serveWS upgrades the connection and keeps it registered until the browser
// goes away. Clients never send meaningful messages; the read loop exists to
// notice the close.
func (h *reloadHub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("websocket upgrade error:", err)
		return
	}
	h.register(conn)
	defer h.unregister(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
