package websockets

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NewWebSocketManager initializes a WebSocketManager
func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		clients:    make(map[*websocket.Conn]*Client),
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *websocket.Conn),
	}
}

// SetRelay attaches a cross-instance relay. Must be called before Run.
func (manager *WebSocketManager) SetRelay(relay *RedisRelay) {
	manager.relay = relay
}

// Run starts the WebSocket manager
func (manager *WebSocketManager) Run() {
	if manager.relay != nil {
		go manager.relay.Run(context.Background())
	}

	for {
		select {
		case client := <-manager.register:
			manager.mu.Lock()
			manager.clients[client.Conn] = client
			manager.mu.Unlock()

		case conn := <-manager.unregister:
			manager.mu.Lock()
			if client, exists := manager.clients[conn]; exists {
				delete(manager.clients, conn)
				for groupID, room := range manager.rooms {
					delete(room, client)
					if len(room) == 0 {
						delete(manager.rooms, groupID)
					}
				}
				conn.Close()
				log.Printf("Client %s disconnected", client.UserID)
			}
			manager.mu.Unlock()
		}
	}
}

// HandleConnections upgrades an already-authenticated request to a
// WebSocket connection and runs its read loop. The caller is expected
// to have verified the bearer credential and resolved userID.
func (manager *WebSocketManager) HandleConnections(w http.ResponseWriter, r *http.Request, userID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket Upgrade Error:", err)
		return
	}

	client := &Client{Conn: conn, UserID: userID}
	manager.register <- client

	defer func() {
		manager.unregister <- conn
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var event Event
		if err := json.Unmarshal(msg, &event); err != nil {
			log.Println("Invalid JSON:", err)
			continue
		}

		switch event.Type {
		case MsgTypeJoinGroup:
			manager.joinRoom(client, event.GroupID)

		case MsgTypeLeaveGroup:
			manager.leaveRoom(client, event.GroupID)

		case MsgTypeNewMessage:
			// relay to everyone else in the room; the sender already has
			// the message from its HTTP response
			manager.EmitToGroup(event.GroupID, MsgTypeReceiveMessage, event.Message, client)

		case MsgTypeNewJobAlert:
			manager.EmitToGroup(event.GroupID, MsgTypeReceiveJobAlert, event.Alert, client)
		}
	}
}

func (manager *WebSocketManager) joinRoom(client *Client, groupID string) {
	if groupID == "" {
		return
	}
	manager.mu.Lock()
	defer manager.mu.Unlock()

	room, ok := manager.rooms[groupID]
	if !ok {
		room = make(map[*Client]bool)
		manager.rooms[groupID] = room
	}
	room[client] = true
	log.Printf("User %s joined group %s", client.UserID, groupID)
}

func (manager *WebSocketManager) leaveRoom(client *Client, groupID string) {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	if room, ok := manager.rooms[groupID]; ok {
		delete(room, client)
		if len(room) == 0 {
			delete(manager.rooms, groupID)
		}
	}
	log.Printf("User %s left group %s", client.UserID, groupID)
}

// EmitToGroup fans payload out to every connection subscribed to
// groupID except the originating one. Delivery is best effort: a failed
// write drops the connection.
func (manager *WebSocketManager) EmitToGroup(groupID, eventType string, payload json.RawMessage, except *Client) {
	manager.deliver(groupID, eventType, payload, except)

	if manager.relay != nil {
		manager.relay.Publish(groupID, eventType, payload)
	}
}

func (manager *WebSocketManager) deliver(groupID, eventType string, payload json.RawMessage, except *Client) {
	out := Event{Type: eventType}
	switch eventType {
	case MsgTypeReceiveJobAlert:
		out.Alert = payload
	default:
		out.Message = payload
	}

	frame, err := json.Marshal(out)
	if err != nil {
		log.Println("error marshalling event:", err)
		return
	}

	manager.mu.Lock()
	defer manager.mu.Unlock()

	for client := range manager.rooms[groupID] {
		if client == except {
			continue
		}
		if err := client.Conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			client.Conn.Close()
			delete(manager.clients, client.Conn)
			delete(manager.rooms[groupID], client)
		}
	}
}
