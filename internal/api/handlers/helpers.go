package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rbillups/scoreboardbot/internal/records"
)

// renderError maps core error kinds onto HTTP statuses. Anything that is not
// a validation or not-found kind is a store failure: log it and return a
// generic message so no internals leak to the gateway.
func renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, records.ErrAdminOnly):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case records.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case records.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("[API] command failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
	}
}

// int64Query parses an optional numeric query parameter, 0 when absent
func int64Query(c *gin.Context, key string) int64 {
	v, _ := strconv.ParseInt(c.Query(key), 10, 64)
	return v
}

func intQuery(c *gin.Context, key string, defaultValue int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return defaultValue
}
