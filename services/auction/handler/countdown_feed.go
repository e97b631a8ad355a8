package handler

import (
	"fmt"
	"net/http"
	"time"

	"penny-auction/services/auction/helpers"
	"penny-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// CountdownFeedHandler handles GET /items/:item_id/countdown/live. It
// pushes the item's countdown over a websocket once per second and closes
// the feed when the countdown expires, the item disappears, or the client
// goes away. Closing here is what keeps a removed item from leaking a
// ticking connection.
func (h *AuctionHandler) CountdownFeedHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	if _, err := h.service.GetItem(itemID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("CountdownFeedHandler: websocket upgrade failed", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}
	defer conn.Close()

	// Drain client frames so close messages are noticed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			item, cd, err := h.service.Countdown(itemID, now)
			if err != nil {
				return
			}
			if err := conn.WriteJSON(helpers.NewCountdownResponse(item, cd)); err != nil {
				return
			}
			if cd.Expired || cd.StartingSoon {
				return
			}
		case <-done:
			return
		}
	}
}
