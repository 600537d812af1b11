package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/rbillups/scoreboardbot/internal/api/handlers"
	"github.com/rbillups/scoreboardbot/internal/config"
	"github.com/rbillups/scoreboardbot/internal/middleware"
	"github.com/rbillups/scoreboardbot/internal/records"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *sqlx.DB, svc *records.Service, cfg *config.Config) {
	router.Use(middleware.CORSMiddleware(cfg))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.HealthCheck)

		// Gateway credential exchange
		v1.POST("/auth/token", handlers.ExchangeToken(db, cfg))

		// Command endpoints, invoked by an authenticated chat gateway on
		// behalf of platform users (caller_id)
		authed := v1.Group("")
		authed.Use(middleware.RequireGateway(cfg))
		{
			authed.POST("/report", handlers.Report(svc))
			authed.GET("/record", handlers.GetRecord(svc))
			authed.GET("/head2head", handlers.HeadToHead(svc))
			authed.GET("/leaderboard", handlers.Leaderboard(svc))
			authed.POST("/undo", handlers.Undo(svc))
			authed.POST("/matchup-reset", handlers.MatchupReset(svc))

			seasons := authed.Group("/seasons")
			{
				seasons.POST("", handlers.StartSeason(svc))
				seasons.POST("/end", handlers.EndSeason(svc))
				seasons.POST("/reset", handlers.ResetSeason(svc))
			}

			authed.GET("/audit", handlers.GetAuditLogs(svc))
			authed.GET("/feed/ws", handlers.FeedWebSocket())
		}
	}
}
