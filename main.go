package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/sitedock/sitedock/api/v1"
	"github.com/sitedock/sitedock/config"
	"github.com/sitedock/sitedock/database"
)

func main() {
	// Load environment configuration
	config.LoadEnv()

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET not set in environment")
	}

	// Connect to database and migrate schema
	database.Initialize()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Auth-Token"},
		AllowCredentials: true,
	}))

	// Register API routes
	v1.RegisterRoutes(router.Group("/api"), database.DB)

	// Get port from environment or use default
	port := config.GetEnv("PORT", "8080")

	// Start server
	log.Printf("Sitedock starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
