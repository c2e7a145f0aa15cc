package main

import (
	"fmt"
	"log"
	"os"

	"hostal-backend/config"
	"hostal-backend/models"
	"hostal-backend/routes"
	"hostal-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Guest{},
		&models.Room{},
		&models.Reservation{},
		&models.Occupancy{},
		&models.Invoice{},
		&models.InvoiceLine{},
		&models.Payment{},
		&models.MaintenanceRequest{},
		&models.NotificationLog{},
	)
}

func main() {
	notifier := services.NewNotifierService(config.DB)
	notifier.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
