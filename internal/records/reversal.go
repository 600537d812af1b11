package records

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rbillups/scoreboardbot/internal/models"
)

// undoEligible decides whether the caller may void a candidate match at now.
// Privileged callers may void the latest match regardless of age or reporter;
// everyone else only their own report from within the trailing window.
func undoEligible(m *models.Match, callerID int64, privileged bool, now time.Time, window time.Duration) bool {
	if privileged {
		return true
	}
	if m.ReporterID != callerID {
		return false
	}
	return !m.PlayedAt.Before(now.Add(-window))
}

// Undo voids the most recent eligible match. Privileged callers can void the
// globally latest non-voided match; everyone else only their own report from
// the trailing undo window. A nil match means nothing was eligible, which is
// a normal outcome, not an error.
func (s *Service) Undo(callerID int64) (*models.Match, error) {
	privileged := s.IsPrivileged(callerID)

	var match *models.Match
	err := s.runTx(func(u *UnitOfWork) error {
		var m models.Match
		var err error
		if privileged {
			err = u.tx.Get(&m, `
				SELECT `+matchColumns+` FROM matches
				WHERE voided = FALSE
				ORDER BY id DESC
				LIMIT 1
			`)
		} else {
			err = u.tx.Get(&m, `
				SELECT `+matchColumns+` FROM matches
				WHERE voided = FALSE AND reporter_id = $1
				ORDER BY id DESC
				LIMIT 1
			`, callerID)
		}
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("find undoable match: %w", err)
		}

		if !undoEligible(&m, callerID, privileged, time.Now().UTC(), s.undoWindow()) {
			return nil
		}

		if _, err := u.tx.Exec(`UPDATE matches SET voided = TRUE WHERE id = $1`, m.ID); err != nil {
			return fmt.Errorf("void match: %w", err)
		}
		m.Voided = true
		match = &m

		return u.appendAudit(callerID, fmt.Sprintf("undo match %d", m.ID))
	})
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, nil
	}

	s.bumpLeaderboardVersion()
	s.publishEvent("match_voided", map[string]interface{}{"match_id": match.ID})
	return match, nil
}

// MatchupResetInput names the pair whose head-to-head record is being reset
type MatchupResetInput struct {
	CallerID   int64
	User1ID    int64
	User1Name  string
	User2ID    int64
	User2Name  string
	GameInput  string
	SeasonName string
}

// MatchupResetResult reports the scope and how many matches were voided
type MatchupResetResult struct {
	Voided int64
	Game   models.Game
	Season *models.Season
}

// MatchupReset voids every non-voided match between the unordered pair for
// the game (and active season, when named), resetting the rivalry to 0-0
// without losing history. Admin only; the rejection is user-visible.
func (s *Service) MatchupReset(in MatchupResetInput) (*MatchupResetResult, error) {
	if !s.IsPrivileged(in.CallerID) {
		return nil, errAdminOnly()
	}
	if in.User1ID == in.User2ID {
		return nil, &ValidationError{Msg: "pick two different players"}
	}
	if in.GameInput == "" {
		return nil, &ValidationError{Msg: "game required"}
	}

	var res MatchupResetResult
	err := s.runTx(func(u *UnitOfWork) error {
		game, err := u.ResolveGame(in.GameInput)
		if err != nil {
			return err
		}
		res.Game = *game

		if in.SeasonName != "" {
			if res.Season, err = u.FindActiveSeason(in.SeasonName, game); err != nil {
				return err
			}
		}
		seasonID := 0
		if res.Season != nil {
			seasonID = res.Season.ID
		}

		if _, err := u.ResolvePlayer(in.User1ID, in.User1Name); err != nil {
			return err
		}
		if _, err := u.ResolvePlayer(in.User2ID, in.User2Name); err != nil {
			return err
		}

		result, err := u.tx.Exec(`
			UPDATE matches SET voided = TRUE
			WHERE game_id = $1 AND voided = FALSE
			  AND ($2 = 0 OR season_id = $2)
			  AND ((winner_id = $3 AND loser_id = $4) OR (winner_id = $4 AND loser_id = $3))
		`, game.ID, seasonID, in.User1ID, in.User2ID)
		if err != nil {
			return fmt.Errorf("void matchup: %w", err)
		}
		res.Voided, _ = result.RowsAffected()

		action := fmt.Sprintf("matchup_reset %d<->%d in %s", in.User1ID, in.User2ID, game.ShortCode)
		if res.Season != nil {
			action += fmt.Sprintf(" season %s", res.Season.Name)
		}
		return u.appendAudit(in.CallerID, action)
	})
	if err != nil {
		return nil, err
	}

	s.bumpLeaderboardVersion()
	s.publishEvent("matchup_reset", map[string]interface{}{
		"game":   res.Game.ShortCode,
		"user1":  in.User1ID,
		"user2":  in.User2ID,
		"voided": res.Voided,
	})
	return &res, nil
}

// SeasonReset hard-deletes every match recorded under the named season (any
// status). The one irreversible operation in the system. Admin only;
// NotFound if no season carries the name.
func (s *Service) SeasonReset(callerID int64, name string) (int64, error) {
	if !s.IsPrivileged(callerID) {
		return 0, errAdminOnly()
	}

	var deleted int64
	err := s.runTx(func(u *UnitOfWork) error {
		var season models.Season
		err := u.tx.Get(&season, `
			SELECT `+seasonColumns+` FROM seasons
			WHERE lower(name) = lower($1)
			ORDER BY started_at DESC
			LIMIT 1
		`, name)
		if errors.Is(err, sql.ErrNoRows) {
			return &NotFoundError{Msg: "season not found"}
		}
		if err != nil {
			return fmt.Errorf("lookup season: %w", err)
		}

		result, err := u.tx.Exec(`DELETE FROM matches WHERE season_id = $1`, season.ID)
		if err != nil {
			return fmt.Errorf("delete season matches: %w", err)
		}
		deleted, _ = result.RowsAffected()

		return u.appendAudit(callerID, fmt.Sprintf("season_reset %s (%d matches)", name, deleted))
	})
	if err != nil {
		return 0, err
	}

	s.bumpLeaderboardVersion()
	s.publishEvent("season_reset", map[string]interface{}{"season": name, "deleted": deleted})
	return deleted, nil
}
