package bot

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// WebhookEvent is the wire form of one inbound update. The delivery channel
// (Telegram webhook relay or anything else) decodes its own update format
// into this shape before reaching the engine.
type WebhookEvent struct {
	ChatID  int64  `json:"chat_id" binding:"required"`
	Type    string `json:"type" binding:"required"` // command | choice | text
	Command string `json:"command"`
	Data    string `json:"data"`
	Text    string `json:"text"`
}

// WebhookRouter exposes the engine behind a single POST /webhook endpoint.
func WebhookRouter(engine *Engine) *gin.Engine {
	r := gin.Default()

	r.POST("/webhook", func(c *gin.Context) {
		var in WebhookEvent
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ev := Event{ChatID: in.ChatID, Command: in.Command, Data: in.Data, Text: in.Text}
		switch in.Type {
		case "command":
			ev.Type = EventCommand
		case "choice":
			ev.Type = EventChoice
		case "text":
			ev.Type = EventText
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown event type"})
			return
		}

		replies := engine.Handle(c.Request.Context(), ev)
		c.JSON(http.StatusOK, gin.H{"replies": replies})
	})

	return r
}
