package main

import (
	"log"
	"os"
	"time"

	"github.com/ungaaaabungaaa/yumyard-sub000/database"
	routes "github.com/ungaaaabungaaa/yumyard-sub000/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, relying on environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	frontendOrigin := os.Getenv("FRONTEND_ORIGIN")
	if frontendOrigin == "" {
		frontendOrigin = "http://localhost:3000"
	}

	database.EnsureIndexes(database.Client)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendOrigin},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.UserRoutes(router)
	routes.MenuRoutes(router)
	routes.CartRoutes(router)
	routes.OrderRoutes(router)
	routes.KitchenLogRoutes(router)

	router.Run(":" + port)
}
