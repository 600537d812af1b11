package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/rbillups/scoreboardbot/internal/api"
	"github.com/rbillups/scoreboardbot/internal/config"
	"github.com/rbillups/scoreboardbot/internal/database"
	"github.com/rbillups/scoreboardbot/internal/migrations"
	"github.com/rbillups/scoreboardbot/internal/records"
	"github.com/rbillups/scoreboardbot/internal/redis"
	"github.com/rbillups/scoreboardbot/internal/ws"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.Load()
	if len(cfg.AdminIDs) == 0 {
		log.Println("[CONFIG] ADMINS is empty; privileged operations will be rejected for everyone")
	}

	// Initialize database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run migrations on start if requested
	if os.Getenv("MIGRATE_ON_START") == "true" {
		log.Println("↗ Running DB migrations on startup...")
		if err := migrations.Run(cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// Initialize Redis (leaderboard cache + live feed); the core degrades to
	// uncached, feed-less operation if it is unavailable
	rdb, err := redis.Connect(cfg.RedisURL)
	if err != nil {
		log.Printf("[REDIS] unavailable (%v); continuing without cache or live feed", err)
		rdb = nil
	} else {
		defer rdb.Close()
	}

	// Record-keeping core
	svc := records.NewService(db, rdb, cfg)

	// Relay match events to WebSocket feed clients
	ws.StartFeedSubscriber(context.Background(), rdb)

	// Set up Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Initialize API handlers
	api.SetupRoutes(router, db, svc, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting scoreboard server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
