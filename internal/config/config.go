package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	Environment string

	// Database
	DatabaseURL string

	// Redis
	RedisURL string

	// Server
	Port        string
	FrontendURL string

	// Record keeping
	DedupeWindowMinutes     int
	UndoWindowMinutes       int
	LeaderboardCacheSeconds int
	LeaderboardSize         int

	// Privilege policy: caller ids allowed to run admin operations.
	// Parsed from ADMINS ("id1,id2,..."), injected into the core so it never
	// reads process globals.
	AdminIDs map[int64]bool

	// Security
	JWTSecret       string
	TokenTTLMinutes int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		// Environment
		Environment: getEnv("APP_ENV", "development"),

		// Database
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/scoreboard?sslmode=disable"),

		// Redis
		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		// Server
		Port:        getEnv("APP_PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		// Record keeping
		DedupeWindowMinutes:     getEnvInt("DEDUPE_WINDOW_MINUTES", 5),
		UndoWindowMinutes:       getEnvInt("UNDO_WINDOW_MINUTES", 10),
		LeaderboardCacheSeconds: getEnvInt("LEADERBOARD_CACHE_SECONDS", 30),
		LeaderboardSize:         getEnvInt("LEADERBOARD_SIZE", 10),

		// Privilege policy
		AdminIDs: ParseAdminIDs(getEnv("ADMINS", "")),

		// Security
		JWTSecret:       getEnv("JWT_SECRET", "change-me-in-production"),
		TokenTTLMinutes: getEnvInt("TOKEN_TTL_MINUTES", 60),
	}
}

// IsAdmin reports whether the caller id is in the configured ADMINS set
func (c *Config) IsAdmin(callerID int64) bool {
	return c.AdminIDs[callerID]
}

// ParseAdminIDs parses a comma-separated list of numeric caller ids,
// skipping blanks and anything non-numeric.
func ParseAdminIDs(raw string) map[int64]bool {
	ids := make(map[int64]bool)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids[id] = true
	}
	return ids
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
