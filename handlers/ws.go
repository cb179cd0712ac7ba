package handlers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub fans out order and payment events to connected admin consoles
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// Broadcast sends v as JSON to every connected client. Dead connections
// are dropped on write failure.
func (h *Hub) Broadcast(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			client.Close()
			delete(h.clients, client)
		}
	}
}

// AdminOrderFeed upgrades the connection and keeps it registered until
// the client goes away
func (h *Handler) AdminOrderFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	h.Hub.mu.Lock()
	h.Hub.clients[conn] = true
	h.Hub.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.Hub.mu.Lock()
			delete(h.Hub.clients, conn)
			h.Hub.mu.Unlock()
			break
		}
	}
}
