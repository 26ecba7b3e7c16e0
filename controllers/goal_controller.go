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

func nutrientDisplay(n string) string {
	if n == models.NutrientEnergy {
		return "Calorias (kcal)"
	}
	if len(n) > 2 && n[len(n)-2:] == "_g" {
		return n[:len(n)-2] + " (g)"
	}
	return n
}

// POST /goals
func CreateGoal(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Nutrient string  `json:"nutrient" binding:"required"`
		Value    float64 `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.UpsertGoal(uid, body.Nutrient, body.Value); err != nil {
		if errors.Is(err, services.ErrInvalidGoal) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithFields(log.Fields{"user_id": uid, "op": "upsert_goal"}).WithError(err).Error("persist failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("✅ Meta para *%s* definida como %g.", nutrientDisplay(body.Nutrient), body.Value),
	})
}
