package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marcelosanto/telegram-food-boot/services"
)

// GET /tips
func GetTip(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tip": services.TipOfTheDay(time.Now())})
}
