package controllers

import (
	"errors"
	"net/http"

	"hostal-backend/config"
	"hostal-backend/models"
	"hostal-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateRoomInput defines the expected JSON structure for creating a room
type CreateRoomInput struct {
	Number      string  `json:"number" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=single double suite"`
	Description string  `json:"description"`
	NightlyRate float64 `json:"nightlyRate" binding:"required,gt=0"`
	Currency    string  `json:"currency" binding:"omitempty,len=3"`
}

// UpdateRoomInput defines the expected JSON structure for updating a room
type UpdateRoomInput struct {
	Number      *string  `json:"number"`
	Type        *string  `json:"type" binding:"omitempty,oneof=single double suite"`
	Description *string  `json:"description"`
	NightlyRate *float64 `json:"nightlyRate" binding:"omitempty,gt=0"`
	Currency    *string  `json:"currency" binding:"omitempty,len=3"`
	Status      *string  `json:"status" binding:"omitempty,oneof=available occupied maintenance"`
}

// CreateRoom adds a room to the hostel
func CreateRoom(c *gin.Context) {
	var input CreateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var existingRoom models.Room
	if err := config.DB.Where("number = ?", input.Number).First(&existingRoom).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Room with this number already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	currency := input.Currency
	if currency == "" {
		currency = "VES"
	}

	room := models.Room{
		ID:          uuid.New(),
		Number:      input.Number,
		Type:        input.Type,
		Description: input.Description,
		NightlyRate: input.NightlyRate,
		Currency:    currency,
		Status:      "available",
	}

	if err := config.DB.Create(&room).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create room")
		return
	}

	c.JSON(http.StatusCreated, room)
}

// GetRooms retrieves all rooms, optionally filtered by status or type
func GetRooms(c *gin.Context) {
	var rooms []models.Room
	query := config.DB.Order("number")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if roomType := c.Query("type"); roomType != "" {
		query = query.Where("type = ?", roomType)
	}
	if err := query.Find(&rooms).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve rooms")
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// GetRoom retrieves a specific room with its reservations
func GetRoom(c *gin.Context) {
	roomUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid room ID format")
		return
	}

	var room models.Room
	if err := config.DB.Preload("Reservations").Preload("MaintenanceRequests").
		First(&room, "id = ?", roomUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Room not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, room)
}

// UpdateRoom updates an existing room
func UpdateRoom(c *gin.Context) {
	roomUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid room ID format")
		return
	}

	var input UpdateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var room models.Room
	if err := config.DB.First(&room, "id = ?", roomUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Room not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Number != nil {
		room.Number = *input.Number
	}
	if input.Type != nil {
		room.Type = *input.Type
	}
	if input.Description != nil {
		room.Description = *input.Description
	}
	if input.NightlyRate != nil {
		room.NightlyRate = *input.NightlyRate
	}
	if input.Currency != nil {
		room.Currency = *input.Currency
	}
	if input.Status != nil {
		room.Status = *input.Status
	}

	if err := config.DB.Save(&room).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update room")
		return
	}

	c.JSON(http.StatusOK, room)
}

// DeleteRoom soft deletes a room with no pending or active reservations
func DeleteRoom(c *gin.Context) {
	roomUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid room ID format")
		return
	}

	var openReservations int64
	config.DB.Model(&models.Reservation{}).
		Where("room_id = ? AND status IN ?", roomUUID, []string{"pending", "active"}).
		Count(&openReservations)
	if openReservations > 0 {
		utils.RespondWithError(c, http.StatusConflict, "Room has pending or active reservations")
		return
	}

	if err := config.DB.Delete(&models.Room{}, "id = ?", roomUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete room")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}
