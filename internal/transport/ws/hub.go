package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgStatusUpdate MessageType = "status_update"
	MsgError        MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages the WebSocket watchers of demo sessions. Any number of
// clients may watch one session's live status feed.
type Hub struct {
	// Session token -> watcher connections
	conns map[string]map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents one WebSocket watcher
type Connection struct {
	Token string
	Send  chan []byte
	Hub   *Hub
}

// BroadcastMessage is a message for every watcher of one session
type BroadcastMessage struct {
	Token   string
	Message *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.Token] == nil {
				h.conns[conn.Token] = make(map[*Connection]bool)
			}
			h.conns[conn.Token][conn] = true
			h.mu.Unlock()
			log.Printf("Watcher connected to demo session %s", conn.Token)

		case conn := <-h.unregister:
			h.mu.Lock()
			if watchers, ok := h.conns[conn.Token]; ok {
				if watchers[conn] {
					delete(watchers, conn)
					close(conn.Send)
					if len(watchers) == 0 {
						delete(h.conns, conn.Token)
					}
					log.Printf("Watcher disconnected from demo session %s", conn.Token)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			for conn := range h.conns[msg.Token] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToSession sends a message to every watcher of a demo session
// (implements service.Broadcaster)
func (h *Hub) BroadcastToSession(token string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		Token: token,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}
