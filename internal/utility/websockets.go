package utility

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Simple hub to hold active admin connections: Map[ClientID] -> Connection
var (
	Clients   = make(map[string]*websocket.Conn)
	ClientsMu sync.Mutex // Mutex to prevent race conditions
	Upgrader  = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		// Allow CORS for development
		CheckOrigin: func(r *http.Request) bool { return true },
	}
)

// Register a new client connection
func RegisterClient(clientID string, conn *websocket.Conn) {
	ClientsMu.Lock()
	defer ClientsMu.Unlock()
	Clients[clientID] = conn
	log.Info().Str("client_id", clientID).Msg("WebSocket Client Connected")
}

// Unregister a client (when they close the tab)
func UnregisterClient(clientID string) {
	ClientsMu.Lock()
	defer ClientsMu.Unlock()
	if _, ok := Clients[clientID]; ok {
		delete(Clients, clientID)
		log.Info().Str("client_id", clientID).Msg("WebSocket Client Disconnected")
	}
}

// BroadcastJSON pushes a JSON payload to every connected admin client.
// Dead connections are dropped on write failure.
func BroadcastJSON(v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal WS payload")
		return
	}

	ClientsMu.Lock()
	defer ClientsMu.Unlock()

	for id, conn := range Clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Error().Err(err).Msg("Failed to send WS message, removing client")
			conn.Close()
			delete(Clients, id)
		}
	}
}
