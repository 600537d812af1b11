package records

import "testing"

func TestRankPlayersOrdering(t *testing.T) {
	// (5-0), (5-1), (4-0) must rank in that order: wins desc, then losses asc
	wins := map[int64]int{1: 5, 2: 5, 3: 4}
	losses := map[int64]int{2: 1}

	rows := rankPlayers(wins, losses, 10)

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	order := []int64{1, 2, 3}
	for i, want := range order {
		if rows[i].PlayerID != want {
			t.Errorf("rank %d: got player %d, want %d", i+1, rows[i].PlayerID, want)
		}
	}
}

func TestRankPlayersWinPct(t *testing.T) {
	wins := map[int64]int{1: 3}
	losses := map[int64]int{1: 1, 2: 4}

	rows := rankPlayers(wins, losses, 10)

	if rows[0].PlayerID != 1 || rows[0].WinPct != 75.0 {
		t.Errorf("player 1: got pct %.1f, want 75.0", rows[0].WinPct)
	}
	// A player with zero wins has 0%, not NaN
	if rows[1].PlayerID != 2 || rows[1].WinPct != 0.0 {
		t.Errorf("player 2: got pct %.1f, want 0.0", rows[1].WinPct)
	}
}

func TestRankPlayersTruncates(t *testing.T) {
	wins := map[int64]int{}
	for i := int64(1); i <= 15; i++ {
		wins[i] = int(i)
	}

	rows := rankPlayers(wins, nil, 10)

	if len(rows) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(rows))
	}
	if rows[0].PlayerID != 15 {
		t.Errorf("top player: got %d, want 15", rows[0].PlayerID)
	}
}

func TestRankPlayersDeterministicTies(t *testing.T) {
	// Identical records must order by player id so ranking is total
	wins := map[int64]int{9: 2, 3: 2, 7: 2}
	losses := map[int64]int{9: 1, 3: 1, 7: 1}

	for i := 0; i < 5; i++ {
		rows := rankPlayers(wins, losses, 10)
		order := []int64{3, 7, 9}
		for j, want := range order {
			if rows[j].PlayerID != want {
				t.Fatalf("tie order unstable: got %d at rank %d, want %d", rows[j].PlayerID, j+1, want)
			}
		}
	}
}

func TestRankPlayersEmpty(t *testing.T) {
	rows := rankPlayers(nil, nil, 10)
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

func TestRankPlayersExcludesIdlePlayers(t *testing.T) {
	// Only ids present in the win or loss counts appear; players with no
	// matches in scope never reach the board
	wins := map[int64]int{1: 1}
	losses := map[int64]int{1: 0}

	rows := rankPlayers(wins, losses, 10)
	if len(rows) != 1 || rows[0].PlayerID != 1 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
