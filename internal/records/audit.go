package records

import (
	"fmt"

	"github.com/rbillups/scoreboardbot/internal/models"
)

// appendAudit writes an audit entry inside the current transaction, so the
// log never records an action that did not durably happen.
func (u *UnitOfWork) appendAudit(whoID int64, action string) error {
	if _, err := u.tx.Exec(`
		INSERT INTO audit_logs (who_id, action, created_at) VALUES ($1, $2, NOW())
	`, whoID, action); err != nil {
		return fmt.Errorf("append audit log: %w", err)
	}
	return nil
}

// AuditLogs returns recent audit entries, newest first, with the total count.
// Admin only.
func (s *Service) AuditLogs(callerID int64, limit, offset int) ([]models.AuditLog, int, error) {
	if !s.IsPrivileged(callerID) {
		return nil, 0, errAdminOnly()
	}
	if limit <= 0 {
		limit = 25
	}
	if limit > 200 {
		limit = 200
	}

	// One query so the page and its total come from the same snapshot
	var rows []struct {
		models.AuditLog
		TotalCount int `db:"total_count"`
	}
	err := s.db.Select(&rows, `
		SELECT id, who_id, action, created_at, COUNT(*) OVER() AS total_count
		FROM audit_logs
		ORDER BY id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch audit logs: %w", err)
	}

	logs := make([]models.AuditLog, 0, len(rows))
	total := 0
	for _, r := range rows {
		logs = append(logs, r.AuditLog)
		total = r.TotalCount
	}
	return logs, total, nil
}
