package ws

import (
	"time"

	"github.com/gorilla/websocket"
)

// WriteMessage sends a raw payload over the WebSocket with a write deadline.
func WriteMessage(conn *websocket.Conn, payload []byte) error {
	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn.WriteMessage(websocket.TextMessage, payload)
}

// WriteError sends an `{erro: ...}` message over the WebSocket.
func WriteError(conn *websocket.Conn, errMsg string) error {
	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn.WriteJSON(map[string]string{"erro": errMsg})
}
