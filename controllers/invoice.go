package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"hostal-backend/booking"
	"hostal-backend/config"
	"hostal-backend/models"
	"hostal-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceLineInput defines the structure for one invoice line
type InvoiceLineInput struct {
	Description string   `json:"description" binding:"required"`
	Quantity    int      `json:"quantity" binding:"min=1"`
	UnitPrice   float64  `json:"unitPrice" binding:"min=0"`
	IsTaxable   *bool    `json:"isTaxable"`
	TaxPercent  *float64 `json:"taxPercent" binding:"omitempty,min=0,max=100"`
}

// CreateInvoiceInput defines the expected JSON structure for creating an invoice.
// Totals are never part of the input; they are always computed from the lines.
type CreateInvoiceInput struct {
	ClientName  string             `json:"clientName" binding:"required"`
	ClientTaxID string             `json:"clientTaxId"`
	ClientEmail string             `json:"clientEmail" binding:"omitempty,email"`
	ClientPhone string             `json:"clientPhone"`
	Currency    string             `json:"currency" binding:"omitempty,len=3"`
	InvoiceDate *time.Time         `json:"invoiceDate"`
	DueDate     *time.Time         `json:"dueDate"`
	Lines       []InvoiceLineInput `json:"lines" binding:"required,min=1"`
	Notes       string             `json:"notes"`
}

// GenerateFromOccupancyInput snapshots the client data for an auto-derived
// invoice; lines come from the guest's open occupancies.
type GenerateFromOccupancyInput struct {
	ClientTaxID string     `json:"clientTaxId"`
	DueDate     *time.Time `json:"dueDate"`
	Notes       string     `json:"notes"`
}

func buildLines(inputs []InvoiceLineInput) []models.InvoiceLine {
	lines := make([]models.InvoiceLine, len(inputs))
	for i, in := range inputs {
		line := models.InvoiceLine{
			ID:          uuid.New(),
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			IsTaxable:   true,
			TaxPercent:  booking.DefaultTaxPercent,
		}
		if in.IsTaxable != nil {
			line.IsTaxable = *in.IsTaxable
		}
		if in.TaxPercent != nil {
			line.TaxPercent = *in.TaxPercent
		}
		lines[i] = line
	}
	return lines
}

func nextInvoiceNumber() string {
	return "INV-" + time.Now().Format("20060102") + "-" + utils.GenerateRandomString(6)
}

// CreateInvoice creates an invoice from manually entered lines
func CreateInvoice(c *gin.Context) {
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

	var input CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	currency := input.Currency
	if currency == "" {
		currency = "VES"
	}
	invoiceDate := time.Now()
	if input.InvoiceDate != nil {
		invoiceDate = *input.InvoiceDate
	}

	invoice := models.Invoice{
		ID:              uuid.New(),
		CreatedByUserID: userUUID,
		InvoiceNumber:   nextInvoiceNumber(),
		ClientName:      input.ClientName,
		ClientTaxID:     input.ClientTaxID,
		ClientEmail:     input.ClientEmail,
		ClientPhone:     input.ClientPhone,
		Currency:        currency,
		InvoiceDate:     invoiceDate,
		DueDate:         input.DueDate,
		Notes:           input.Notes,
		Lines:           buildLines(input.Lines),
	}
	invoice.Recalculate()

	if err := config.DB.Create(&invoice).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create invoice")
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// GenerateInvoiceFromOccupancy derives one invoice line per open occupancy of
// the guest: nights stayed so far at the room's nightly rate, taxable at the
// default IVA rate. Client fields are snapshotted from the guest record.
func GenerateInvoiceFromOccupancy(c *gin.Context) {
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

	guestUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid guest ID format")
		return
	}

	var input GenerateFromOccupancyInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
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

	var occupancies []models.Occupancy
	if err := config.DB.Preload("Room").
		Where("guest_id = ? AND check_out IS NULL", guestUUID).
		Find(&occupancies).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if len(occupancies) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Guest has no open occupancies")
		return
	}

	now := time.Now()
	currency := "VES"
	lines := make([]models.InvoiceLine, 0, len(occupancies))
	for _, occ := range occupancies {
		derived := booking.OccupancyLine(
			fmt.Sprintf("Room %s (%s)", occ.Room.Number, occ.Room.Type),
			occ.Room.NightlyRate, occ.CheckIn, occ.CheckOut, now)
		lines = append(lines, models.InvoiceLine{
			ID:          uuid.New(),
			Description: derived.Description,
			Quantity:    derived.Quantity,
			UnitPrice:   derived.UnitPrice,
			IsTaxable:   derived.Taxable,
			TaxPercent:  derived.TaxPercent,
		})
		currency = occ.Room.Currency
	}

	invoice := models.Invoice{
		ID:              uuid.New(),
		CreatedByUserID: userUUID,
		InvoiceNumber:   nextInvoiceNumber(),
		ClientName:      guest.Name,
		ClientTaxID:     input.ClientTaxID,
		ClientEmail:     guest.Email,
		ClientPhone:     guest.Phone,
		Currency:        currency,
		InvoiceDate:     now,
		DueDate:         input.DueDate,
		Notes:           input.Notes,
		Lines:           lines,
	}
	invoice.Recalculate()

	if err := config.DB.Create(&invoice).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create invoice")
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// GetInvoices retrieves all invoices
func GetInvoices(c *gin.Context) {
	var invoices []models.Invoice
	if err := config.DB.Preload("Lines").Preload("Payments").
		Order("invoice_date DESC").Find(&invoices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve invoices")
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// GetInvoice retrieves a specific invoice with rounded presentation totals
func GetInvoice(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var invoice models.Invoice
	if err := config.DB.Preload("Lines").Preload("Payments").
		First(&invoice, "id = ?", invoiceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var paid float64
	for _, p := range invoice.Payments {
		paid += p.Amount
	}

	c.JSON(http.StatusOK, gin.H{
		"invoice":   invoice,
		"subtotal":  utils.Round2(invoice.Subtotal),
		"taxAmount": utils.Round2(invoice.TaxAmount),
		"total":     utils.Round2(invoice.Total),
		"paid":      utils.Round2(paid),
		"balance":   utils.Round2(invoice.Total - paid),
	})
}
