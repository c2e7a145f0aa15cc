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

// CreateGuestInput defines the expected JSON structure for creating a guest
type CreateGuestInput struct {
	Name        string  `json:"name" binding:"required"`
	DocumentID  string  `json:"documentId" binding:"required"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Nationality string  `json:"nationality"`
	Notes       string  `json:"notes"`
}

// UpdateGuestInput defines the expected JSON structure for updating a guest
type UpdateGuestInput struct {
	Name        *string `json:"name"`
	DocumentID  *string `json:"documentId"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Nationality *string `json:"nationality"`
	Notes       *string `json:"notes"`
	IsActive    *bool   `json:"isActive"`
}

// CreateGuest registers a new guest
func CreateGuest(c *gin.Context) {
	var input CreateGuestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != nil && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Document id must be unique across guests
	var existingGuest models.Guest
	if err := config.DB.Where("document_id = ?", input.DocumentID).
		First(&existingGuest).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Guest with this document id already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	guest := models.Guest{
		ID:          uuid.New(),
		Name:        input.Name,
		DocumentID:  input.DocumentID,
		Nationality: input.Nationality,
		Notes:       input.Notes,
		IsActive:    true,
	}
	if input.Phone != nil {
		guest.Phone = *input.Phone
	}
	if input.Email != nil {
		guest.Email = *input.Email
	}

	if err := config.DB.Create(&guest).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create guest")
		return
	}

	c.JSON(http.StatusCreated, guest)
}

// GetGuests retrieves all guests
func GetGuests(c *gin.Context) {
	var guests []models.Guest
	query := config.DB.Order("name")
	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ? OR document_id ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if err := query.Find(&guests).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve guests")
		return
	}

	c.JSON(http.StatusOK, guests)
}

// GetGuest retrieves a specific guest with their reservations
func GetGuest(c *gin.Context) {
	guestUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid guest ID format")
		return
	}

	var guest models.Guest
	if err := config.DB.Preload("Reservations").Preload("Occupancies").
		First(&guest, "id = ?", guestUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Guest not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, guest)
}

// UpdateGuest updates an existing guest
func UpdateGuest(c *gin.Context) {
	guestUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid guest ID format")
		return
	}

	var input UpdateGuestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var guest models.Guest
	if err := config.DB.First(&guest, "id = ?", guestUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Guest not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Phone != nil && !utils.ValidatePhone(*input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	if input.Name != nil {
		guest.Name = *input.Name
	}
	if input.DocumentID != nil {
		guest.DocumentID = *input.DocumentID
	}
	if input.Phone != nil {
		guest.Phone = *input.Phone
	}
	if input.Email != nil {
		guest.Email = *input.Email
	}
	if input.Nationality != nil {
		guest.Nationality = *input.Nationality
	}
	if input.Notes != nil {
		guest.Notes = *input.Notes
	}
	if input.IsActive != nil {
		guest.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&guest).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update guest")
		return
	}

	c.JSON(http.StatusOK, guest)
}

// DeleteGuest soft deletes a guest without open reservations
func DeleteGuest(c *gin.Context) {
	guestUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid guest ID format")
		return
	}

	var openReservations int64
	config.DB.Model(&models.Reservation{}).
		Where("guest_id = ? AND status IN ?", guestUUID, []string{"pending", "active"}).
		Count(&openReservations)
	if openReservations > 0 {
		utils.RespondWithError(c, http.StatusConflict, "Guest has pending or active reservations")
		return
	}

	if err := config.DB.Delete(&models.Guest{}, "id = ?", guestUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete guest")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Guest deleted successfully"})
}
