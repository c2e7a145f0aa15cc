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

// CreatePaymentInput defines the expected JSON structure for recording a payment
type CreatePaymentInput struct {
	Amount     float64    `json:"amount" binding:"required,gt=0"`
	Method     string     `json:"method" binding:"required,oneof=cash transfer card mobile"`
	Reference  string     `json:"reference"`
	ReceivedAt *time.Time `json:"receivedAt"`
}

// CreatePayment records a payment against an invoice. The payment currency is
// the invoice's; no conversion happens here.
func CreatePayment(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var input CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var invoice models.Invoice
	if err := config.DB.First(&invoice, "id = ?", invoiceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	receivedAt := time.Now()
	if input.ReceivedAt != nil {
		receivedAt = *input.ReceivedAt
	}

	payment := models.Payment{
		ID:         uuid.New(),
		InvoiceID:  invoice.ID,
		Amount:     input.Amount,
		Currency:   invoice.Currency,
		Method:     input.Method,
		Reference:  input.Reference,
		ReceivedAt: receivedAt,
	}

	if err := config.DB.Create(&payment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record payment")
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// GetPayments lists the payments recorded against an invoice
func GetPayments(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var payments []models.Payment
	if err := config.DB.Where("invoice_id = ?", invoiceUUID).
		Order("received_at").Find(&payments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}

	c.JSON(http.StatusOK, payments)
}
