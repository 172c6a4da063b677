package websockets

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Client-emitted event types
const (
	MsgTypeJoinGroup   = "join-group"
	MsgTypeLeaveGroup  = "leave-group"
	MsgTypeNewMessage  = "new-message"
	MsgTypeNewJobAlert = "new-job-alert"
)

// Server-emitted event types
const (
	MsgTypeReceiveMessage  = "receive-message"
	MsgTypeReceiveJobAlert = "receive-job-alert"
)

// Client represents a connected WebSocket user
type Client struct {
	Conn   *websocket.Conn
	UserID string
}

type WebSocketManager struct {
	clients    map[*websocket.Conn]*Client
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *websocket.Conn
	relay      *RedisRelay
	mu         sync.Mutex
}

// Event is the wire frame for both directions. Message and Alert are
// kept opaque: the hub is pure transport and never inspects the
// persisted document it fans out.
type Event struct {
	Type    string          `json:"type"`
	GroupID string          `json:"group_id,omitempty"`
	Message json.RawMessage `json:"message,omitempty"`
	Alert   json.RawMessage `json:"alert,omitempty"`
}
