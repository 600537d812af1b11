package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rbillups/scoreboardbot/internal/records"
)

// Undo voids the caller's latest eligible match. "Nothing to undo" is a
// normal outcome, not an error.
func Undo(svc *records.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			CallerID int64 `json:"caller_id"`
		}
		if err := c.BindJSON(&req); err != nil || req.CallerID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "caller_id required"})
			return
		}

		match, err := svc.Undo(req.CallerID)
		if err != nil {
			renderError(c, err)
			return
		}
		if match == nil {
			c.JSON(http.StatusOK, gin.H{"undone": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"undone": true, "match": match})
	}
}

// MatchupReset voids every match between a pair for a game, resetting the
// rivalry to 0-0
func MatchupReset(svc *records.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			CallerID  int64  `json:"caller_id"`
			User1ID   int64  `json:"user1_id"`
			User1Name string `json:"user1_name"`
			User2ID   int64  `json:"user2_id"`
			User2Name string `json:"user2_name"`
			Game      string `json:"game"`
			Season    string `json:"season"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid matchup payload"})
			return
		}
		if req.CallerID == 0 || req.User1ID == 0 || req.User2ID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "caller_id, user1_id and user2_id required"})
			return
		}

		res, err := svc.MatchupReset(records.MatchupResetInput{
			CallerID:   req.CallerID,
			User1ID:    req.User1ID,
			User1Name:  req.User1Name,
			User2ID:    req.User2ID,
			User2Name:  req.User2Name,
			GameInput:  req.Game,
			SeasonName: req.Season,
		})
		if err != nil {
			renderError(c, err)
			return
		}

		payload := gin.H{"voided": res.Voided, "game": res.Game}
		if res.Season != nil {
			payload["season"] = res.Season.Name
		}
		c.JSON(http.StatusOK, payload)
	}
}
