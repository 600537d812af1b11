package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rbillups/scoreboardbot/internal/records"
)

// GetRecord answers player-record, head-to-head and leaderboard queries:
// one user means their overall record, two users head-to-head, none the
// top-10 leaderboard.
func GetRecord(svc *records.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.Record(records.RecordRequest{
			GameInput:  c.Query("game"),
			SeasonName: c.Query("season"),
			UserID:     int64Query(c, "user_id"),
			UserName:   c.Query("user_name"),
			VsID:       int64Query(c, "vs_id"),
			VsName:     c.Query("vs_name"),
		})
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// HeadToHead is the record query with both players required
func HeadToHead(svc *records.Service) gin.HandlerFunc {
	record := GetRecord(svc)
	return func(c *gin.Context) {
		if int64Query(c, "user_id") == 0 || int64Query(c, "vs_id") == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and vs_id required"})
			return
		}
		record(c)
	}
}

// Leaderboard is the record query with no players: the ranked top 10
func Leaderboard(svc *records.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := svc.Record(records.RecordRequest{
			GameInput:  c.Query("game"),
			SeasonName: c.Query("season"),
		})
		if err != nil {
			renderError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}
