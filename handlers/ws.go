package handlers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// FeedHandler pushes live generation events (new ad copy, new affiliate
// link) to connected dashboard clients.
type FeedHandler struct {
	M *melody.Melody
}

func NewFeedHandler() *FeedHandler {
	m := melody.New()

	m.Config.MaxMessageSize = 1024 * 1024

	// Keep-alive so cloud proxies don't drop idle feed connections
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleConnect(func(s *melody.Session) {
		log.Printf("[Feed] ✅ Client connected")
	})

	m.HandleDisconnect(func(s *melody.Session) {
		log.Printf("[Feed] 🔌 Client disconnected")
	})

	m.HandleError(func(s *melody.Session, err error) {
		log.Printf("[Feed] ❌ WebSocket error: %v", err)
	})

	return &FeedHandler{M: m}
}

// HandleWS upgrades the request to a websocket feed connection.
func (h *FeedHandler) HandleWS(c *gin.Context) {
	if err := h.M.HandleRequest(c.Writer, c.Request); err != nil {
		log.Printf("[Feed] ❌ Failed to upgrade websocket: %v", err)
	}
}

type feedEvent struct {
	Type      string    `json:"type"` // 'ad_generated', 'link_generated', 'link_refreshed'
	ProductID string    `json:"product_id"`
	Detail    string    `json:"detail,omitempty"` // ad format or platform
	Timestamp time.Time `json:"timestamp"`
}

// BroadcastEvent notifies every connected client of a generation event.
func (h *FeedHandler) BroadcastEvent(eventType, productID, detail string) {
	msg, err := json.Marshal(feedEvent{
		Type:      eventType,
		ProductID: productID,
		Detail:    detail,
		Timestamp: time.Now(),
	})
	if err != nil {
		return
	}

	if err := h.M.Broadcast(msg); err != nil {
		log.Printf("[Feed] ⚠️ Error broadcasting %s event: %v", eventType, err)
	}
}
