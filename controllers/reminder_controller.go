package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/marcelosanto/telegram-food-boot/models"
	"github.com/marcelosanto/telegram-food-boot/services"
)

// POST /reminders
func CreateReminder(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Type string `json:"type" binding:"required"`
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminder, err := services.UpsertReminder(uid, body.Type, body.Time)
	if err != nil {
		if errors.Is(err, services.ErrInvalidReminder) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "⚠️ Formato de horário inválido. Use HH:MM (ex.: 08:00)."})
			return
		}
		log.WithFields(log.Fields{"user_id": uid, "op": "upsert_reminder"}).WithError(err).Error("persist failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	notifier.Schedule(uid, reminder.ReminderType, reminder.TimeOfDay)

	kind := "Refeição"
	if reminder.ReminderType == models.ReminderWater {
		kind = "Água"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("✅ Lembrete de *%s* configurado para *%s*!", kind, reminder.TimeOfDay),
	})
}
