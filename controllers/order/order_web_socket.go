// order_web_socket.go
package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/BirasaDivine/eato-app/models"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Connections keyed by seller so each dashboard only sees its own orders
var (
	wsMu      sync.Mutex
	wsClients = make(map[string]map[*websocket.Conn]bool)
)

// GET /seller/orders/ws — live feed of new orders for the connected seller
func OrderWebSocketHandler(c *gin.Context) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	sellerID := userIDVal.(string)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	if wsClients[sellerID] == nil {
		wsClients[sellerID] = make(map[*websocket.Conn]bool)
	}
	wsClients[sellerID][conn] = true
	wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClients[sellerID], conn)
			wsMu.Unlock()
			break
		}
	}
}

func broadcastNewOrder(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}

	wsMu.Lock()
	defer wsMu.Unlock()
	for client := range wsClients[order.SellerID] {
		client.WriteMessage(websocket.TextMessage, data)
	}
}
