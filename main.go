package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	database "schoolapi/config"
	"schoolapi/routes"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	database.ConnectDB()
	if err := database.Seed(database.DB); err != nil {
		log.Fatal("Failed to seed database: ", err)
	}

	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "School API is running")
	})
	routes.Register(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Println("Server is running on :" + port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
