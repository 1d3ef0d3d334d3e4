// cmd/api/chat.go
// WebSocket echo-chat endpoint. Each connection is isolated: inbound text
// frames are echoed back to the same peer and nothing is broadcast.
package main

import (
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

// upgrader turns the initial HTTP request into a WebSocket connection.
// Any origin is accepted; the endpoint is unauthenticated.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// chatHandler handles GET /ws/chat/:client_id.
// After the upgrade it loops: read one text frame, echo it back prefixed with
// the client identifier, repeat. The loop ends when the peer disconnects,
// which is logged; a failed read and a clean close look the same here.
func (app *applicationDependencies) chatHandler(w http.ResponseWriter, r *http.Request) {
	params := httprouter.ParamsFromContext(r.Context())
	clientID := params.ByName("client_id")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error response to the client.
		app.logError(r, err)
		return
	}
	defer conn.Close()

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			app.logger.Info("chat client disconnected", "client_id", clientID)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		reply := fmt.Sprintf("Client %s received %s", clientID, message)
		err = conn.WriteMessage(websocket.TextMessage, []byte(reply))
		if err != nil {
			app.logger.Info("chat client disconnected", "client_id", clientID)
			return
		}
	}
}
