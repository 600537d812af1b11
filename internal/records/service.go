package records

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/rbillups/scoreboardbot/internal/config"
	"github.com/rbillups/scoreboardbot/internal/models"
)

// Service is the record-keeping core: every command runs as one transaction
// against the shared store, with Redis used only for best-effort caching and
// the live feed.
type Service struct {
	db  *sqlx.DB
	rdb *redis.Client
	cfg *config.Config
}

// NewService wires the core against its store, cache and config
func NewService(db *sqlx.DB, rdb *redis.Client, cfg *config.Config) *Service {
	return &Service{db: db, rdb: rdb, cfg: cfg}
}

// IsPrivileged reports whether the caller may run admin operations.
// The admin set is injected via config, never read from process globals here.
func (s *Service) IsPrivileged(callerID int64) bool {
	return s.cfg.IsAdmin(callerID)
}

// UnitOfWork is one command's transaction plus a player lookup cache, so
// resolving the same external id twice in one command never re-queries or
// double-inserts before commit.
type UnitOfWork struct {
	tx      *sqlx.Tx
	players map[int64]*models.Player
}

// runTx opens a transaction, runs fn, and commits; any error rolls the whole
// unit of work back so no partial state is retained.
func (s *Service) runTx(fn func(u *UnitOfWork) error) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	u := &UnitOfWork{tx: tx, players: make(map[int64]*models.Player)}
	if err := fn(u); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *Service) dedupeWindow() time.Duration {
	return time.Duration(s.cfg.DedupeWindowMinutes) * time.Minute
}

func (s *Service) undoWindow() time.Duration {
	return time.Duration(s.cfg.UndoWindowMinutes) * time.Minute
}
