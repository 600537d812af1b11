package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rbillups/scoreboardbot/internal/auth"
	"github.com/rbillups/scoreboardbot/internal/config"
)

// GatewayKey is the context key holding the authenticated gateway name
const GatewayKey = "gateway"

// RequireGateway validates the Bearer JWT issued to a chat gateway and puts
// the gateway name on the request context
func RequireGateway(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := auth.ParseToken(cfg.JWTSecret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(GatewayKey, claims.Gateway)
		c.Next()
	}
}
