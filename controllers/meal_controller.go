package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/marcelosanto/telegram-food-boot/services"
)

// POST /meals
func CreateMeal(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		MealType string  `json:"meal_type" binding:"required"`
		FoodID   int     `json:"food_id" binding:"required"`
		Quantity float64 `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := mealSvc.AddMeal(uid, body.MealType, body.FoodID, body.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMeal) || errors.Is(err, services.ErrFoodNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithFields(log.Fields{"user_id": uid, "op": "create_meal"}).WithError(err).Error("persist failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "🎉 Refeição registrada com sucesso!"})
}
