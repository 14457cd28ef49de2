package controllers

import (
	"encoding/json"
	"fmt"
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

var (
	clients = make(map[*websocket.Conn]bool)
	mu      sync.Mutex
)

func HandleWebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			fmt.Println("Error during connection upgrade:", err)
			return
		}
		defer conn.Close()

		mu.Lock()
		clients[conn] = true
		mu.Unlock()

		for {
			_, _, err := conn.ReadMessage()
			if err != nil {
				mu.Lock()
				delete(clients, conn)
				mu.Unlock()
				break
			}
		}
	}
}

type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// notifyKitchen pushes an event to every connected kitchen display. Failures
// evict the client and are never surfaced to the HTTP caller.
func notifyKitchen(event string, payload interface{}) {
	mu.Lock()
	defer mu.Unlock()

	messageBytes, err := json.Marshal(Message{Event: event, Payload: payload})
	if err != nil {
		fmt.Println("Error marshaling message:", err)
		return
	}

	for client := range clients {
		err := client.WriteMessage(websocket.TextMessage, messageBytes)
		if err != nil {
			fmt.Println("Error writing message:", err)
			client.Close()
			delete(clients, client)
		}
	}
}
