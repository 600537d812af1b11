package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/rbillups/scoreboardbot/internal/auth"
	"github.com/rbillups/scoreboardbot/internal/config"
)

// ExchangeToken lets a chat gateway trade its service key for a short-lived
// JWT. Keys are verified against the bcrypt hash seeded via cmd/seed-gateway.
func ExchangeToken(db *sqlx.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Gateway string `json:"gateway"`
			Key     string `json:"key"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "gateway and key required"})
			return
		}

		name := strings.TrimSpace(req.Gateway)
		if name == "" || req.Key == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "gateway and key required"})
			return
		}

		acct, err := auth.GetGatewayAccount(db, name)
		if err != nil || !auth.VerifyGatewayKey(acct.KeyHash, req.Key) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid gateway credentials"})
			return
		}

		ttl := time.Duration(cfg.TokenTTLMinutes) * time.Minute
		token, err := auth.IssueToken(cfg.JWTSecret, acct.Name, ttl)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":      token,
			"expires_in": int(ttl.Seconds()),
		})
	}
}
