package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// GET /summary/:user_id
//
// The path id must match the authenticated user; a token for someone else
// gets 401, not 403, mirroring the rest of the auth surface.
func GetSummary(c *gin.Context) {
	uid := c.GetUint("userID")

	pathID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	if uint(pathID) != uid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID for this token"})
		return
	}

	summary, err := summarySvc.BuildDailySummary(uid, time.Now())
	if err != nil {
		log.WithFields(log.Fields{"user_id": uid, "op": "daily_summary"}).WithError(err).Error("query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}
