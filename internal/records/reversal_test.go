package records

import (
	"testing"
	"time"

	"github.com/rbillups/scoreboardbot/internal/models"
)

func TestUndoEligibleWindowBoundary(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	window := 10 * time.Minute

	// Own report at 9:59 is undoable, at 10:01 it is not
	m := models.Match{ReporterID: 7, PlayedAt: now.Add(-(9*time.Minute + 59*time.Second))}
	if !undoEligible(&m, 7, false, now, window) {
		t.Error("report 9m59s old must be undoable")
	}

	m.PlayedAt = now.Add(-(10*time.Minute + time.Second))
	if undoEligible(&m, 7, false, now, window) {
		t.Error("report 10m01s old must not be undoable")
	}

	// Exactly at the cutoff still counts
	m.PlayedAt = now.Add(-window)
	if !undoEligible(&m, 7, false, now, window) {
		t.Error("report exactly at the window edge must be undoable")
	}
}

func TestUndoEligibleOtherReporter(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	m := models.Match{ReporterID: 7, PlayedAt: now.Add(-time.Minute)}

	if undoEligible(&m, 8, false, now, 10*time.Minute) {
		t.Error("non-privileged caller must not undo someone else's report")
	}
}

func TestUndoEligiblePrivileged(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	// Privileged callers are unrestricted by age and reporter
	m := models.Match{ReporterID: 7, PlayedAt: now.Add(-48 * time.Hour)}
	if !undoEligible(&m, 8, true, now, 10*time.Minute) {
		t.Error("privileged caller must undo any latest match")
	}
}
