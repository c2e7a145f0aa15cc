package routes

import (
	"hostal-backend/config"
	"hostal-backend/controllers"
	"hostal-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Guest routes
		guests := api.Group("/guests")
		{
			guests.POST("", controllers.CreateGuest)
			guests.GET("", controllers.GetGuests)
			guests.GET("/:id", controllers.GetGuest)
			guests.PUT("/:id", controllers.UpdateGuest)
			guests.DELETE("/:id", controllers.DeleteGuest)

			// Bill the guest's open occupancies
			guests.POST("/:id/invoice", controllers.GenerateInvoiceFromOccupancy)
		}

		// Room routes; creating and deleting rooms is an admin concern
		rooms := api.Group("/rooms")
		{
			rooms.GET("", controllers.GetRooms)
			rooms.GET("/:id", controllers.GetRoom)

			rooms.POST("", utils.AdminOnly(), controllers.CreateRoom)
			rooms.PUT("/:id", utils.AdminOnly(), controllers.UpdateRoom)
			rooms.DELETE("/:id", utils.AdminOnly(), controllers.DeleteRoom)
		}

		// Reservation routes
		reservations := api.Group("/reservations")
		{
			reservations.POST("", controllers.CreateReservation)
			reservations.GET("", controllers.GetReservations)
			reservations.GET("/:id", controllers.GetReservation)
			reservations.POST("/:id/confirm", controllers.ConfirmReservation)
			reservations.POST("/:id/checkout", controllers.CheckOutReservation)
			reservations.POST("/:id/cancel", controllers.CancelReservation)
		}

		// Occupancy routes
		api.GET("/occupancies", controllers.GetOccupancies)

		// Invoice routes
		invoices := api.Group("/invoices")
		{
			invoices.POST("", controllers.CreateInvoice)
			invoices.GET("", controllers.GetInvoices)
			invoices.GET("/:id", controllers.GetInvoice)
			invoices.POST("/:id/payments", controllers.CreatePayment)
			invoices.GET("/:id/payments", controllers.GetPayments)
		}

		// Maintenance routes
		maintenance := api.Group("/maintenance")
		{
			maintenance.POST("", controllers.CreateMaintenanceRequest)
			maintenance.GET("", controllers.GetMaintenanceRequests)
			maintenance.PUT("/:id", controllers.UpdateMaintenanceRequest)
		}

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}
