package controllers

import (
	"net/http"
	"time"

	"hostal-backend/config"
	"hostal-backend/models"
	"hostal-backend/utils"

	"github.com/gin-gonic/gin"
)

type TodayMovement struct {
	ReservationID string `json:"reservationId"`
	GuestName     string `json:"guestName"`
	RoomNumber    string `json:"roomNumber"`
	Date          string `json:"date"`
}

// GetDashboardOverview summarizes the day for the front desk: room counts,
// arrivals and departures due today, open maintenance and month revenue.
func GetDashboardOverview(c *gin.Context) {
	now := time.Now()
	today := utils.BeginningOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var totalRooms, occupiedRooms, maintenanceRooms int64
	config.DB.Model(&models.Room{}).Count(&totalRooms)
	config.DB.Model(&models.Room{}).Where("status = 'occupied'").Count(&occupiedRooms)
	config.DB.Model(&models.Room{}).Where("status = 'maintenance'").Count(&maintenanceRooms)

	var occupancyRate float64
	if totalRooms > 0 {
		occupancyRate = float64(occupiedRooms) / float64(totalRooms) * 100
	}

	// Arrivals: pending reservations starting today
	var arrivals []TodayMovement
	config.DB.Raw(`
        SELECT r.id as reservation_id, g.name as guest_name, rm.number as room_number,
               TO_CHAR(r.start_date, 'YYYY-MM-DD') as date
        FROM reservations r
        JOIN guests g ON g.id = r.guest_id
        JOIN rooms rm ON rm.id = r.room_id
        WHERE r.status = 'pending' AND r.start_date >= ? AND r.start_date < ?
          AND r.deleted_at IS NULL
        ORDER BY rm.number
    `, today, tomorrow).Scan(&arrivals)

	// Departures: active reservations ending today
	var departures []TodayMovement
	config.DB.Raw(`
        SELECT r.id as reservation_id, g.name as guest_name, rm.number as room_number,
               TO_CHAR(r.end_date, 'YYYY-MM-DD') as date
        FROM reservations r
        JOIN guests g ON g.id = r.guest_id
        JOIN rooms rm ON rm.id = r.room_id
        WHERE r.status = 'active' AND r.end_date >= ? AND r.end_date < ?
          AND r.deleted_at IS NULL
        ORDER BY rm.number
    `, today, tomorrow).Scan(&departures)

	var openMaintenance int64
	config.DB.Model(&models.MaintenanceRequest{}).
		Where("status IN ?", []string{"open", "in_progress"}).Count(&openMaintenance)

	var monthlyRevenue float64
	config.DB.Model(&models.Invoice{}).
		Where("invoice_date >= ? AND deleted_at IS NULL", firstOfMonth).
		Select("COALESCE(SUM(total), 0)").Scan(&monthlyRevenue)

	var pendingReservations int64
	config.DB.Model(&models.Reservation{}).
		Where("status = 'pending'").Count(&pendingReservations)

	c.JSON(http.StatusOK, gin.H{
		"rooms": gin.H{
			"total":         totalRooms,
			"occupied":      occupiedRooms,
			"maintenance":   maintenanceRooms,
			"occupancyRate": utils.Round2(occupancyRate),
		},
		"arrivalsToday":       arrivals,
		"departuresToday":     departures,
		"openMaintenance":     openMaintenance,
		"pendingReservations": pendingReservations,
		"monthlyRevenue":      utils.Round2(monthlyRevenue),
	})
}
