package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/marcelosanto/telegram-food-boot/controllers"
	"github.com/marcelosanto/telegram-food-boot/middlewares"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	api := r.Group("/api/v1")

	// Public routes
	api.POST("/users", controllers.Register)
	api.POST("/login", controllers.Login)
	api.GET("/tips", controllers.GetTip)

	// Protected routes
	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.POST("/meals", controllers.CreateMeal)
		protected.POST("/goals", controllers.CreateGoal)
		protected.POST("/water", controllers.CreateWater)
		protected.POST("/calculations", controllers.CreateCalculation)
		protected.POST("/reminders", controllers.CreateReminder)
		protected.GET("/summary/:user_id", controllers.GetSummary)
	}

	return r
}
