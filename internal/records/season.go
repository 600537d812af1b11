package records

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/rbillups/scoreboardbot/internal/models"
)

const seasonColumns = `id, name, status, game_id, started_at, ended_at`

// FindActiveSeason returns the active season a report or query should bind to.
// With a name it matches case-insensitively; with a game it accepts cross-game
// seasons (game_id NULL) or seasons for that game. Without a name it returns
// the most recently started active season in scope. Nil means none.
func (u *UnitOfWork) FindActiveSeason(name string, game *models.Game) (*models.Season, error) {
	gameID := 0
	if game != nil {
		gameID = game.ID
	}

	var s models.Season
	var err error
	if name != "" {
		err = u.tx.Get(&s, `
			SELECT `+seasonColumns+` FROM seasons
			WHERE lower(name) = lower($1) AND status = $2
			  AND ($3 = 0 OR game_id IS NULL OR game_id = $3)
			ORDER BY started_at DESC
			LIMIT 1
		`, name, models.SeasonActive, gameID)
	} else {
		err = u.tx.Get(&s, `
			SELECT `+seasonColumns+` FROM seasons
			WHERE status = $1
			  AND ($2 = 0 OR game_id IS NULL OR game_id = $2)
			ORDER BY started_at DESC
			LIMIT 1
		`, models.SeasonActive, gameID)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup active season: %w", err)
	}
	return &s, nil
}

// StartSeason creates an active season, optionally scoped to a game
// resolved (or created) from gameInput. Admin only.
func (s *Service) StartSeason(callerID int64, name, gameInput string) (*models.Season, error) {
	if !s.IsPrivileged(callerID) {
		return nil, errAdminOnly()
	}
	if name == "" {
		return nil, &ValidationError{Msg: "season name required"}
	}

	var season models.Season
	err := s.runTx(func(u *UnitOfWork) error {
		game, err := u.ResolveGame(gameInput)
		if err != nil {
			return err
		}

		gameID := sql.NullInt64{}
		if game != nil {
			gameID = sql.NullInt64{Int64: int64(game.ID), Valid: true}
		}
		err = u.tx.Get(&season, `
			INSERT INTO seasons (name, status, game_id, started_at) VALUES ($1, $2, $3, NOW())
			RETURNING `+seasonColumns+`
		`, name, models.SeasonActive, gameID)
		if err != nil {
			return fmt.Errorf("create season: %w", err)
		}

		return u.appendAudit(callerID, fmt.Sprintf("season_start %s", name))
	})
	if err != nil {
		return nil, err
	}

	s.bumpLeaderboardVersion()
	s.publishEvent("season_started", map[string]interface{}{"season": season.Name, "season_id": season.ID})
	return &season, nil
}

// EndSeason flips an active season (matched case-insensitively by name) to
// closed and stamps its end time. Admin only; NotFound if no active season
// carries the name.
func (s *Service) EndSeason(callerID int64, name string) (*models.Season, error) {
	if !s.IsPrivileged(callerID) {
		return nil, errAdminOnly()
	}

	var season models.Season
	err := s.runTx(func(u *UnitOfWork) error {
		err := u.tx.Get(&season, `
			SELECT `+seasonColumns+` FROM seasons
			WHERE lower(name) = lower($1) AND status = $2
			ORDER BY started_at DESC
			LIMIT 1
		`, name, models.SeasonActive)
		if errors.Is(err, sql.ErrNoRows) {
			return &NotFoundError{Msg: "season not found or already closed"}
		}
		if err != nil {
			return fmt.Errorf("lookup season: %w", err)
		}

		err = u.tx.Get(&season, `
			UPDATE seasons SET status=$1, ended_at=NOW() WHERE id=$2
			RETURNING `+seasonColumns+`
		`, models.SeasonClosed, season.ID)
		if err != nil {
			return fmt.Errorf("close season: %w", err)
		}

		return u.appendAudit(callerID, fmt.Sprintf("season_end %s", name))
	})
	if err != nil {
		return nil, err
	}

	s.bumpLeaderboardVersion()
	s.publishEvent("season_ended", map[string]interface{}{"season": season.Name, "season_id": season.ID})
	return &season, nil
}
