package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/rbillups/scoreboardbot/internal/ws"
)

// FeedWebSocket attaches the client to the live match-event feed
func FeedWebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		ws.FeedHub.ServeFeed(c.Writer, c.Request)
	}
}
