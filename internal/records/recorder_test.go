package records

import (
	"database/sql"
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func TestCorrectResultSwapsReversedScores(t *testing.T) {
	// Reporting winner=A loser=B with 17-21 must store winner=B 21-17
	winner, loser, scoreW, scoreL := correctResult(100, 200, intPtr(17), intPtr(21))

	if winner != 200 || loser != 100 {
		t.Errorf("identities not swapped: winner=%d loser=%d", winner, loser)
	}
	if *scoreW != 21 || *scoreL != 17 {
		t.Errorf("scores not swapped: %d-%d", *scoreW, *scoreL)
	}
}

func TestCorrectResultKeepsOrderedScores(t *testing.T) {
	winner, loser, scoreW, scoreL := correctResult(100, 200, intPtr(21), intPtr(17))

	if winner != 100 || loser != 200 {
		t.Errorf("identities changed: winner=%d loser=%d", winner, loser)
	}
	if *scoreW != 21 || *scoreL != 17 {
		t.Errorf("scores changed: %d-%d", *scoreW, *scoreL)
	}
}

func TestCorrectResultEqualScores(t *testing.T) {
	winner, loser, _, _ := correctResult(100, 200, intPtr(10), intPtr(10))
	if winner != 100 || loser != 200 {
		t.Errorf("equal scores must not swap: winner=%d loser=%d", winner, loser)
	}
}

func TestCorrectResultMissingScores(t *testing.T) {
	cases := []struct {
		name           string
		scoreW, scoreL *int
	}{
		{"both nil", nil, nil},
		{"winner only", intPtr(3), nil},
		{"loser only", nil, intPtr(7)},
	}

	for _, c := range cases {
		winner, loser, _, _ := correctResult(100, 200, c.scoreW, c.scoreL)
		if winner != 100 || loser != 200 {
			t.Errorf("%s: must not swap without both scores: winner=%d loser=%d", c.name, winner, loser)
		}
	}
}

func TestReportAction(t *testing.T) {
	got := reportAction("Key", "Cam", "madden", sql.NullInt64{})
	if got != "report match Key vs Cam in madden" {
		t.Errorf("unexpected action: %q", got)
	}

	got = reportAction("Key", "Cam", "madden", sql.NullInt64{Int64: 42, Valid: true})
	if got != "report match Key vs Cam in madden [dupe_of:42]" {
		t.Errorf("unexpected dupe action: %q", got)
	}
}

func TestSamePair(t *testing.T) {
	if !samePair(100, 200, 100, 200) {
		t.Error("identical orientation must match")
	}
	if !samePair(100, 200, 200, 100) {
		t.Error("reversed orientation must match")
	}
	if samePair(100, 200, 100, 300) {
		t.Error("different pair must not match")
	}
}

func TestFirstDupeWindowBoundary(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	window := 5 * time.Minute

	// A same-pair match 4m59s ago is flagged, even with roles reversed
	dupe := firstDupe([]dupeCandidate{
		{ID: 42, WinnerID: 200, LoserID: 100, PlayedAt: now.Add(-(4*time.Minute + 59*time.Second))},
	}, 100, 200, now, window)
	if !dupe.Valid || dupe.Int64 != 42 {
		t.Errorf("in-window pair not flagged: %+v", dupe)
	}

	// 5m01s ago is outside the window
	dupe = firstDupe([]dupeCandidate{
		{ID: 42, WinnerID: 100, LoserID: 200, PlayedAt: now.Add(-(5*time.Minute + time.Second))},
	}, 100, 200, now, window)
	if dupe.Valid {
		t.Errorf("out-of-window pair flagged: %+v", dupe)
	}

	// Exactly at the cutoff still counts
	dupe = firstDupe([]dupeCandidate{
		{ID: 42, WinnerID: 100, LoserID: 200, PlayedAt: now.Add(-window)},
	}, 100, 200, now, window)
	if !dupe.Valid {
		t.Error("pair exactly at the window edge not flagged")
	}
}

func TestFirstDupeIgnoresOtherPairs(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	dupe := firstDupe([]dupeCandidate{
		{ID: 42, WinnerID: 100, LoserID: 300, PlayedAt: now.Add(-time.Minute)},
		{ID: 41, WinnerID: 300, LoserID: 200, PlayedAt: now.Add(-time.Minute)},
	}, 100, 200, now, 5*time.Minute)
	if dupe.Valid {
		t.Errorf("unrelated pairs flagged: %+v", dupe)
	}
}

func TestFirstDupePicksMostRecent(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	// Candidates arrive newest first; the first same-pair hit wins
	dupe := firstDupe([]dupeCandidate{
		{ID: 43, WinnerID: 100, LoserID: 200, PlayedAt: now.Add(-time.Minute)},
		{ID: 42, WinnerID: 100, LoserID: 200, PlayedAt: now.Add(-2 * time.Minute)},
	}, 100, 200, now, 5*time.Minute)
	if !dupe.Valid || dupe.Int64 != 43 {
		t.Errorf("most recent duplicate not picked: %+v", dupe)
	}
}
