package main

import (
	"os"

	"github.com/RiteshJha912/epoch/config"
	"github.com/RiteshJha912/epoch/helpers"
	"github.com/RiteshJha912/epoch/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {

	defer func() { _ = config.Logger.Sync() }()

	config.Logger.Info("Starting epoch...")

	key := config.GenerateRandomKey()
	helpers.SetJWTKey(key)

	//Init gin router
	r := gin.Default()
	api := r.Group("/api")
	routes.SetupRoutes(api)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	config.Logger.Info("Server listening", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		config.Logger.Fatal("Server stopped", zap.Error(err))
	}
}
