package service

// Broadcaster pushes live updates to WebSocket watchers of a demo session
// (interface here avoids an import cycle with transport/ws).
type Broadcaster interface {
	BroadcastToSession(token string, msgType string, payload interface{})
}
