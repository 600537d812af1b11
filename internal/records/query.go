package records

import (
	"fmt"
	"sort"

	"github.com/lib/pq"

	"github.com/rbillups/scoreboardbot/internal/models"
)

// Scope narrows aggregate queries to an optional game and an optional season
// name. GameID 0 means all games; an empty SeasonName means all seasons. A
// season name matching no season yields empty results, never an error.
type Scope struct {
	GameID     int
	SeasonName string
}

// Aggregates consider only verified, non-voided matches. The season filter
// joins through the seasons table on a case-insensitive name match.
const scopedMatches = `
	FROM matches m
	LEFT JOIN seasons s ON s.id = m.season_id
	WHERE m.verified = TRUE AND m.voided = FALSE
	  AND ($1 = 0 OR m.game_id = $1)
	  AND ($2 = '' OR lower(s.name) = lower($2))
`

// WinLoss counts wins and losses for a player in scope; vsID non-zero
// restricts both counts to matches against that opponent (head-to-head).
func (u *UnitOfWork) WinLoss(scope Scope, playerID, vsID int64) (int, int, error) {
	var wins, losses int
	err := u.tx.Get(&wins, `
		SELECT COUNT(*) `+scopedMatches+`
		  AND m.winner_id = $3
		  AND ($4 = 0 OR m.loser_id = $4)
	`, scope.GameID, scope.SeasonName, playerID, vsID)
	if err != nil {
		return 0, 0, fmt.Errorf("count wins: %w", err)
	}
	err = u.tx.Get(&losses, `
		SELECT COUNT(*) `+scopedMatches+`
		  AND m.loser_id = $3
		  AND ($4 = 0 OR m.winner_id = $4)
	`, scope.GameID, scope.SeasonName, playerID, vsID)
	if err != nil {
		return 0, 0, fmt.Errorf("count losses: %w", err)
	}
	return wins, losses, nil
}

// LeaderboardRow is one ranked player with their record in scope
type LeaderboardRow struct {
	PlayerID    int64   `json:"player_id"`
	DisplayName string  `json:"display_name"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	WinPct      float64 `json:"win_pct"`
}

// rankPlayers merges per-player win and loss counts into ranked rows: wins
// descending, then losses ascending, then win percentage descending, with the
// player id as a final key so ties order deterministically. Players absent
// from both maps played no matches in scope and are excluded by construction.
func rankPlayers(wins, losses map[int64]int, limit int) []LeaderboardRow {
	ids := make(map[int64]bool)
	for id := range wins {
		ids[id] = true
	}
	for id := range losses {
		ids[id] = true
	}

	rows := make([]LeaderboardRow, 0, len(ids))
	for id := range ids {
		w := wins[id]
		l := losses[id]
		pct := 0.0
		if w+l > 0 {
			pct = float64(w) / float64(w+l) * 100
		}
		rows = append(rows, LeaderboardRow{PlayerID: id, Wins: w, Losses: l, WinPct: pct})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Wins != rows[j].Wins {
			return rows[i].Wins > rows[j].Wins
		}
		if rows[i].Losses != rows[j].Losses {
			return rows[i].Losses < rows[j].Losses
		}
		if rows[i].WinPct != rows[j].WinPct {
			return rows[i].WinPct > rows[j].WinPct
		}
		return rows[i].PlayerID < rows[j].PlayerID
	})

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// Leaderboard computes the ranked top players for the scope
func (u *UnitOfWork) Leaderboard(scope Scope, limit int) ([]LeaderboardRow, error) {
	type countRow struct {
		PlayerID int64 `db:"player_id"`
		N        int   `db:"n"`
	}

	var winRows []countRow
	err := u.tx.Select(&winRows, `
		SELECT m.winner_id AS player_id, COUNT(*) AS n `+scopedMatches+`
		GROUP BY m.winner_id
	`, scope.GameID, scope.SeasonName)
	if err != nil {
		return nil, fmt.Errorf("count wins by player: %w", err)
	}

	var lossRows []countRow
	err = u.tx.Select(&lossRows, `
		SELECT m.loser_id AS player_id, COUNT(*) AS n `+scopedMatches+`
		GROUP BY m.loser_id
	`, scope.GameID, scope.SeasonName)
	if err != nil {
		return nil, fmt.Errorf("count losses by player: %w", err)
	}

	wins := make(map[int64]int, len(winRows))
	for _, r := range winRows {
		wins[r.PlayerID] = r.N
	}
	losses := make(map[int64]int, len(lossRows))
	for _, r := range lossRows {
		losses[r.PlayerID] = r.N
	}

	rows := rankPlayers(wins, losses, limit)
	if err := u.fillDisplayNames(rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// fillDisplayNames resolves player ids on ranked rows to stored display
// names; unknown ids keep an empty name rather than failing the query.
func (u *UnitOfWork) fillDisplayNames(rows []LeaderboardRow) error {
	if len(rows) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.PlayerID)
	}

	var players []models.Player
	err := u.tx.Select(&players, `
		SELECT id, display_name, created_at FROM players WHERE id = ANY($1)
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("fetch leaderboard names: %w", err)
	}

	names := make(map[int64]string, len(players))
	for _, p := range players {
		names[p.ID] = p.DisplayName
	}
	for i := range rows {
		rows[i].DisplayName = names[rows[i].PlayerID]
	}
	return nil
}

// RecordRequest selects which record query to run: both users set means
// head-to-head, one user means their overall record, none means leaderboard.
type RecordRequest struct {
	GameInput  string
	SeasonName string
	UserID     int64
	UserName   string
	VsID       int64
	VsName     string
}

// Record kinds
const (
	RecordPlayer      = "player"
	RecordHeadToHead  = "head2head"
	RecordLeaderboard = "leaderboard"
)

// RecordResponse is the structured result of a record query
type RecordResponse struct {
	Kind    string           `json:"kind"`
	Game    *models.Game     `json:"game,omitempty"`
	Season  string           `json:"season,omitempty"`
	User    *models.Player   `json:"user,omitempty"`
	Vs      *models.Player   `json:"vs,omitempty"`
	Wins    int              `json:"wins"`
	Losses  int              `json:"losses"`
	Ranking []LeaderboardRow `json:"ranking,omitempty"`
}

// Record answers player-record, head-to-head and leaderboard queries over the
// verified, non-voided matches in scope. Named players get their display
// names refreshed even on this read path.
func (s *Service) Record(req RecordRequest) (*RecordResponse, error) {
	res := &RecordResponse{Season: req.SeasonName}

	err := s.runTx(func(u *UnitOfWork) error {
		game, err := u.ResolveGame(req.GameInput)
		if err != nil {
			return err
		}
		res.Game = game

		scope := Scope{SeasonName: req.SeasonName}
		if game != nil {
			scope.GameID = game.ID
		}

		switch {
		case req.UserID != 0 && req.VsID != 0:
			res.Kind = RecordHeadToHead
			if res.User, err = u.ResolvePlayer(req.UserID, req.UserName); err != nil {
				return err
			}
			if res.Vs, err = u.ResolvePlayer(req.VsID, req.VsName); err != nil {
				return err
			}
			res.Wins, res.Losses, err = u.WinLoss(scope, req.UserID, req.VsID)
			return err

		case req.UserID != 0:
			res.Kind = RecordPlayer
			if res.User, err = u.ResolvePlayer(req.UserID, req.UserName); err != nil {
				return err
			}
			res.Wins, res.Losses, err = u.WinLoss(scope, req.UserID, 0)
			return err

		default:
			res.Kind = RecordLeaderboard
			if rows, ok := s.cachedLeaderboard(scope); ok {
				res.Ranking = rows
				return nil
			}
			if res.Ranking, err = u.Leaderboard(scope, s.cfg.LeaderboardSize); err != nil {
				return err
			}
			s.storeLeaderboard(scope, res.Ranking)
			return nil
		}
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
