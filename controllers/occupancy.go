package controllers

import (
	"net/http"

	"hostal-backend/config"
	"hostal-backend/models"
	"hostal-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetOccupancies lists occupancy records. Occupancies are opened and closed
// by the reservation lifecycle (confirm and check-out), never directly.
func GetOccupancies(c *gin.Context) {
	query := config.DB.Preload("Guest").Preload("Room").Order("check_in DESC")
	if guestID := c.Query("guestId"); guestID != "" {
		query = query.Where("guest_id = ?", guestID)
	}
	if roomID := c.Query("roomId"); roomID != "" {
		query = query.Where("room_id = ?", roomID)
	}
	if c.Query("open") == "true" {
		query = query.Where("check_out IS NULL")
	}

	var occupancies []models.Occupancy
	if err := query.Find(&occupancies).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve occupancies")
		return
	}

	c.JSON(http.StatusOK, occupancies)
}
