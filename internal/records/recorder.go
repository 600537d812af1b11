package records

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rbillups/scoreboardbot/internal/models"
)

const matchColumns = `id, game_id, season_id, reporter_id, winner_id, loser_id,
	score_w, score_l, played_at, verified, voided, dupe_of`

// ReportInput is one match report as forwarded by the gateway
type ReportInput struct {
	ReporterID   int64
	ReporterName string
	GameInput    string
	WinnerID     int64
	WinnerName   string
	LoserID      int64
	LoserName    string
	ScoreW       *int
	ScoreL       *int
	SeasonName   string
}

// ReportResult is the persisted match plus the resolved context the
// dispatch layer needs to render a confirmation
type ReportResult struct {
	Match      models.Match
	Game       models.Game
	Season     *models.Season
	WinnerName string
	LoserName  string
}

// correctResult enforces that the recorded winner carries the higher score:
// when both scores are present and reversed, scores AND identities swap.
func correctResult(winnerID, loserID int64, scoreW, scoreL *int) (int64, int64, *int, *int) {
	if scoreW != nil && scoreL != nil && *scoreW < *scoreL {
		return loserID, winnerID, scoreL, scoreW
	}
	return winnerID, loserID, scoreW, scoreL
}

// reportAction builds the audit line for a recorded match
func reportAction(winnerName, loserName, gameCode string, dupeOf sql.NullInt64) string {
	action := fmt.Sprintf("report match %s vs %s in %s", winnerName, loserName, gameCode)
	if dupeOf.Valid {
		action += fmt.Sprintf(" [dupe_of:%d]", dupeOf.Int64)
	}
	return action
}

// dupeCandidate is a recent match considered by the duplicate probe
type dupeCandidate struct {
	ID       int64     `db:"id"`
	WinnerID int64     `db:"winner_id"`
	LoserID  int64     `db:"loser_id"`
	PlayedAt time.Time `db:"played_at"`
}

// samePair reports whether {w1,l1} and {w2,l2} are the same unordered pair
func samePair(w1, l1, w2, l2 int64) bool {
	return (w1 == w2 && l1 == l2) || (w1 == l2 && l1 == w2)
}

// inDupeWindow reports whether a played-at time falls inside the trailing
// window ending at now
func inDupeWindow(playedAt, now time.Time, window time.Duration) bool {
	return !playedAt.Before(now.Add(-window))
}

// firstDupe picks the most recent candidate (candidates arrive newest first)
// involving the same unordered pair inside the window
func firstDupe(candidates []dupeCandidate, winnerID, loserID int64, now time.Time, window time.Duration) sql.NullInt64 {
	for _, c := range candidates {
		if samePair(c.WinnerID, c.LoserID, winnerID, loserID) && inDupeWindow(c.PlayedAt, now, window) {
			return sql.NullInt64{Int64: c.ID, Valid: true}
		}
	}
	return sql.NullInt64{}
}

// findRecentDupe returns the id of the most recent non-voided match for the
// game within the trailing window whose unordered player pair matches {a, b}.
// Detection only; it never blocks the insert.
func (u *UnitOfWork) findRecentDupe(gameID int, aID, bID int64, window time.Duration) (sql.NullInt64, error) {
	now := time.Now().UTC()

	var candidates []dupeCandidate
	err := u.tx.Select(&candidates, `
		SELECT id, winner_id, loser_id, played_at FROM matches
		WHERE game_id = $1
		  AND played_at >= $2
		  AND voided = FALSE
		ORDER BY id DESC
	`, gameID, now.Add(-window))
	if err != nil {
		return sql.NullInt64{}, fmt.Errorf("duplicate probe: %w", err)
	}
	return firstDupe(candidates, aID, bID, now, window), nil
}

// Report validates, deduplicates and commits a reported result with its audit
// entry. Concurrent reports inside the dedupe window can both pass the probe
// before either commits; that race is logged, not blocked.
func (s *Service) Report(in ReportInput) (*ReportResult, error) {
	if in.WinnerID == in.LoserID {
		return nil, &ValidationError{Msg: "winner and loser must be different players"}
	}
	if in.GameInput == "" {
		return nil, &ValidationError{Msg: "game required"}
	}

	var res ReportResult
	err := s.runTx(func(u *UnitOfWork) error {
		game, err := u.ResolveGame(in.GameInput)
		if err != nil {
			return err
		}

		// Resolve the distinct identities once; the reporter may also be the
		// winner or the loser.
		names := map[int64]string{in.ReporterID: in.ReporterName}
		names[in.WinnerID] = in.WinnerName
		names[in.LoserID] = in.LoserName
		for id, name := range names {
			if _, err := u.ResolvePlayer(id, name); err != nil {
				return err
			}
		}

		winnerID, loserID, scoreW, scoreL := correctResult(in.WinnerID, in.LoserID, in.ScoreW, in.ScoreL)

		var season *models.Season
		if in.SeasonName != "" {
			if season, err = u.FindActiveSeason(in.SeasonName, game); err != nil {
				return err
			}
		}

		dupe, err := u.findRecentDupe(game.ID, winnerID, loserID, s.dedupeWindow())
		if err != nil {
			return err
		}

		seasonID := sql.NullInt64{}
		if season != nil {
			seasonID = sql.NullInt64{Int64: int64(season.ID), Valid: true}
		}
		err = u.tx.Get(&res.Match, `
			INSERT INTO matches (game_id, season_id, reporter_id, winner_id, loser_id,
				score_w, score_l, played_at, verified, voided, dupe_of)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), TRUE, FALSE, $8)
			RETURNING `+matchColumns+`
		`, game.ID, seasonID, in.ReporterID, winnerID, loserID,
			nullableScore(scoreW), nullableScore(scoreL), dupe)
		if err != nil {
			return fmt.Errorf("insert match: %w", err)
		}

		res.Game = *game
		res.Season = season
		res.WinnerName = u.players[winnerID].DisplayName
		res.LoserName = u.players[loserID].DisplayName

		return u.appendAudit(in.ReporterID, reportAction(res.WinnerName, res.LoserName, game.ShortCode, dupe))
	})
	if err != nil {
		return nil, err
	}

	s.bumpLeaderboardVersion()
	s.publishEvent("match_reported", map[string]interface{}{
		"match_id": res.Match.ID,
		"game":     res.Game.ShortCode,
		"winner":   res.WinnerName,
		"loser":    res.LoserName,
	})
	return &res, nil
}

func nullableScore(score *int) sql.NullInt64 {
	if score == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*score), Valid: true}
}
