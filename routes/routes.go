package routes

import (
	"github.com/RiteshJha912/epoch/controllers"
	"github.com/RiteshJha912/epoch/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.RouterGroup) {
	router.POST("/signup", controllers.Signup())
	router.POST("/login", controllers.Login())
	protected := router.Group("/")
	protected.Use(middleware.Authenticate())
	{
		// Current user
		protected.GET("/me", controllers.GetMe())

		// Habit challenges
		protected.POST("/habits", controllers.CreateHabit())
		protected.GET("/habits", controllers.GetHabits())
		protected.POST("/habits/:id/days/:index", controllers.MarkHabitDay())
		protected.DELETE("/habits/:id", controllers.DeleteHabit())
		protected.GET("/habits/:id/share", controllers.GetHabitShare())

		// Dashboard rollup
		protected.GET("/stats", controllers.GetStats())
	}
}
