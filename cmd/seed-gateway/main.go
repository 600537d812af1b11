package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/rbillups/scoreboardbot/internal/auth"
	"github.com/rbillups/scoreboardbot/internal/config"
	"github.com/rbillups/scoreboardbot/internal/database"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Seed gateway credential
	name := os.Getenv("GATEWAY_NAME")
	if name == "" {
		name = "discord-gateway"
		log.Printf("Using default gateway name: %s", name)
	}

	key := os.Getenv("GATEWAY_KEY")
	if key == "" {
		key = "change-me-in-production"
		log.Printf("WARNING: Using default gateway key. Set GATEWAY_KEY env var in production!")
	}

	if err := auth.UpsertGatewayAccount(db, name, key); err != nil {
		log.Fatalf("Failed to seed gateway account: %v", err)
	}

	log.Printf("✓ Gateway account created/updated successfully")
	log.Printf("  Name: %s", name)
	log.Println("\nThe gateway can now exchange its key for a token at /api/v1/auth/token")
}
