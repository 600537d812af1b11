package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rbillups/scoreboardbot/internal/records"
)

// GetAuditLogs returns paginated audit log entries, newest first. Admin only.
func GetAuditLogs(svc *records.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID := int64Query(c, "caller_id")
		limit := intQuery(c, "limit", 25)
		offset := intQuery(c, "offset", 0)

		logs, total, err := svc.AuditLogs(callerID, limit, offset)
		if err != nil {
			renderError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"logs":   logs,
			"total":  total,
			"limit":  limit,
			"offset": offset,
		})
	}
}
