package controllers

import (
	"errors"
	"net/http"
	"time"

	"hostal-backend/config"
	"hostal-backend/models"
	"hostal-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateMaintenanceInput defines the expected JSON structure for reporting a problem
type CreateMaintenanceInput struct {
	RoomID      uuid.UUID `json:"roomId" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Priority    string    `json:"priority" binding:"omitempty,oneof=low normal urgent"`
}

// UpdateMaintenanceInput defines the expected JSON structure for updating a request
type UpdateMaintenanceInput struct {
	Status   *string `json:"status" binding:"omitempty,oneof=open in_progress resolved"`
	Priority *string `json:"priority" binding:"omitempty,oneof=low normal urgent"`
}

// CreateMaintenanceRequest reports a problem with a room
func CreateMaintenanceRequest(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}
	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var input CreateMaintenanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var room models.Room
	if err := config.DB.First(&room, "id = ?", input.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Room not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	priority := input.Priority
	if priority == "" {
		priority = "normal"
	}

	request := models.MaintenanceRequest{
		ID:               uuid.New(),
		RoomID:           input.RoomID,
		Description:      input.Description,
		Priority:         priority,
		Status:           "open",
		ReportedByUserID: userUUID,
	}

	if err := config.DB.Create(&request).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create maintenance request")
		return
	}

	c.JSON(http.StatusCreated, request)
}

// GetMaintenanceRequests lists maintenance requests, optionally by status or room
func GetMaintenanceRequests(c *gin.Context) {
	query := config.DB.Preload("Room").Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if roomID := c.Query("roomId"); roomID != "" {
		query = query.Where("room_id = ?", roomID)
	}

	var requests []models.MaintenanceRequest
	if err := query.Find(&requests).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve maintenance requests")
		return
	}

	c.JSON(http.StatusOK, requests)
}

// UpdateMaintenanceRequest moves a request between open, in_progress and resolved
func UpdateMaintenanceRequest(c *gin.Context) {
	requestUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid maintenance request ID format")
		return
	}

	var input UpdateMaintenanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var request models.MaintenanceRequest
	if err := config.DB.First(&request, "id = ?", requestUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Maintenance request not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Priority != nil {
		request.Priority = *input.Priority
	}
	if input.Status != nil {
		request.Status = *input.Status
		if *input.Status == "resolved" && request.ResolvedAt == nil {
			now := time.Now()
			request.ResolvedAt = &now
		}
	}

	if err := config.DB.Save(&request).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update maintenance request")
		return
	}

	c.JSON(http.StatusOK, request)
}
