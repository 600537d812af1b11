package models

import (
	"database/sql"
	"time"
)

// Season statuses
const (
	SeasonActive = "active"
	SeasonClosed = "closed"
)

// Player represents a chat-platform user tracked by the scoreboard.
// The ID is the platform-issued user id and is never generated locally.
type Player struct {
	ID          int64     `db:"id" json:"id"`
	DisplayName string    `db:"display_name" json:"display_name"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Game represents a tracked game title. ShortCode is the lowercase,
// whitespace-stripped canonical lookup key derived from the name.
type Game struct {
	ID        int    `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	ShortCode string `db:"short_code" json:"short_code"`
}

// Season represents a scoring period, optionally scoped to one game
// (game_id NULL = cross-game season).
type Season struct {
	ID        int           `db:"id" json:"id"`
	Name      string        `db:"name" json:"name"`
	Status    string        `db:"status" json:"status"`
	GameID    sql.NullInt64 `db:"game_id" json:"game_id,omitempty"`
	StartedAt time.Time     `db:"started_at" json:"started_at"`
	EndedAt   sql.NullTime  `db:"ended_at" json:"ended_at,omitempty"`
}

// Match represents one reported head-to-head result. Voided matches are
// excluded from aggregates but kept for the audit trail; DupeOf points at an
// earlier match the report appears to duplicate (detection only).
type Match struct {
	ID         int           `db:"id" json:"id"`
	GameID     int           `db:"game_id" json:"game_id"`
	SeasonID   sql.NullInt64 `db:"season_id" json:"season_id,omitempty"`
	ReporterID int64         `db:"reporter_id" json:"reporter_id"`
	WinnerID   int64         `db:"winner_id" json:"winner_id"`
	LoserID    int64         `db:"loser_id" json:"loser_id"`
	ScoreW     sql.NullInt64 `db:"score_w" json:"score_w,omitempty"`
	ScoreL     sql.NullInt64 `db:"score_l" json:"score_l,omitempty"`
	PlayedAt   time.Time     `db:"played_at" json:"played_at"`
	Verified   bool          `db:"verified" json:"verified"`
	Voided     bool          `db:"voided" json:"voided"`
	DupeOf     sql.NullInt64 `db:"dupe_of" json:"dupe_of,omitempty"`
}

// AuditLog is an append-only record of who did what, written in the same
// transaction as the change it describes.
type AuditLog struct {
	ID        int       `db:"id" json:"id"`
	WhoID     int64     `db:"who_id" json:"who_id"`
	Action    string    `db:"action" json:"action"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// GatewayAccount is a service credential for a chat-gateway client,
// stored with a bcrypt key hash.
type GatewayAccount struct {
	Name      string    `db:"name" json:"name"`
	KeyHash   string    `db:"key_hash" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
