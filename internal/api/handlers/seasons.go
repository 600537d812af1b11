package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rbillups/scoreboardbot/internal/records"
)

// StartSeason opens a new active season, optionally scoped to a game
func StartSeason(svc *records.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			CallerID int64  `json:"caller_id"`
			Name     string `json:"name"`
			Game     string `json:"game"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid season payload"})
			return
		}

		season, err := svc.StartSeason(req.CallerID, req.Name, req.Game)
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"season": season})
	}
}

// EndSeason closes an active season by name
func EndSeason(svc *records.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			CallerID int64  `json:"caller_id"`
			Name     string `json:"name"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid season payload"})
			return
		}

		season, err := svc.EndSeason(req.CallerID, req.Name)
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"season": season})
	}
}

// ResetSeason hard-deletes every match recorded under the named season
func ResetSeason(svc *records.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			CallerID int64  `json:"caller_id"`
			Name     string `json:"name"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid season payload"})
			return
		}

		deleted, err := svc.SeasonReset(req.CallerID, req.Name)
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"season": req.Name, "deleted": deleted})
	}
}
