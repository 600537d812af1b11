package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rbillups/scoreboardbot/internal/records"
)

// Report records a match result forwarded by the gateway
func Report(svc *records.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			CallerID   int64  `json:"caller_id"`
			CallerName string `json:"caller_name"`
			Game       string `json:"game"`
			WinnerID   int64  `json:"winner_id"`
			WinnerName string `json:"winner_name"`
			LoserID    int64  `json:"loser_id"`
			LoserName  string `json:"loser_name"`
			ScoreW     *int   `json:"score_w"`
			ScoreL     *int   `json:"score_l"`
			Season     string `json:"season"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report payload"})
			return
		}
		if req.CallerID == 0 || req.WinnerID == 0 || req.LoserID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "caller_id, winner_id and loser_id required"})
			return
		}

		res, err := svc.Report(records.ReportInput{
			ReporterID:   req.CallerID,
			ReporterName: req.CallerName,
			GameInput:    req.Game,
			WinnerID:     req.WinnerID,
			WinnerName:   req.WinnerName,
			LoserID:      req.LoserID,
			LoserName:    req.LoserName,
			ScoreW:       req.ScoreW,
			ScoreL:       req.ScoreL,
			SeasonName:   req.Season,
		})
		if err != nil {
			renderError(c, err)
			return
		}

		payload := gin.H{
			"match":  res.Match,
			"game":   res.Game,
			"winner": res.WinnerName,
			"loser":  res.LoserName,
		}
		if res.Season != nil {
			payload["season"] = res.Season.Name
		}
		if res.Match.DupeOf.Valid {
			payload["dupe_of"] = res.Match.DupeOf.Int64
		}
		c.JSON(http.StatusOK, payload)
	}
}
