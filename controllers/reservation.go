package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"hostal-backend/booking"
	"hostal-backend/config"
	"hostal-backend/models"
	"hostal-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateReservationInput carries the raw submission. Fields the booking
// engine validates deliberately have no binding tags so the caller gets the
// full field-error map instead of gin's first-failure message.
type CreateReservationInput struct {
	GuestID      uuid.UUID `json:"guestId"`
	RoomID       uuid.UUID `json:"roomId"`
	StartDate    string    `json:"startDate"` // ISO 8601 date, no time
	Period       string    `json:"period"`
	PeriodsCount int       `json:"periodsCount"`
	Notes        string    `json:"notes"`
}

type CancelReservationInput struct {
	Reason string `json:"reason"`
}

type CheckOutReservationInput struct {
	SettlementNote string `json:"settlementNote"`
}

func respondValidation(c *gin.Context, errs booking.FieldErrors, conflict *booking.Conflict) {
	body := gin.H{"errors": errs}
	if conflict != nil {
		body["conflict"] = gin.H{
			"reservationId": conflict.ReservationID,
			"startDate":     conflict.Start.Format("2006-01-02"),
			"endDate":       conflict.End.Format("2006-01-02"),
			"range":         conflict.RangeLabel(),
		}
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, body)
}

// respondLifecycleError maps engine errors to the wire. A too-short cancel
// reason is user input; an illegal transition is a caller defect and gets
// logged and a distinct status.
func respondLifecycleError(c *gin.Context, err error) {
	var ve *booking.ValidationError
	if errors.As(err, &ve) {
		respondValidation(c, booking.FieldErrors{ve.Field: ve.Message}, nil)
		return
	}
	var ite *booking.InvalidTransitionError
	if errors.As(err, &ite) {
		log.Printf("[LIFECYCLE] illegal transition attempted: %v (%s %s)", ite, c.Request.Method, c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{
			"error": "invalid_transition",
			"from":  ite.From,
			"to":    ite.To,
		})
		return
	}
	utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update reservation")
}

// activeSnapshots loads the room's conflict-relevant reservations. The engine
// filters terminal statuses again; the query just keeps the snapshot small.
func activeSnapshots(db *gorm.DB, roomID uuid.UUID) ([]booking.ExistingReservation, error) {
	var rows []models.Reservation
	err := db.Where("room_id = ? AND status IN ?", roomID,
		[]string{string(booking.StatusPending), string(booking.StatusActive)}).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	snapshots := make([]booking.ExistingReservation, len(rows))
	for i, r := range rows {
		snapshots[i] = r.Snapshot()
	}
	return snapshots, nil
}

// CreateReservation validates a submission through the booking engine and
// persists the draft. The availability check runs twice: once against a plain
// snapshot to build user-facing errors, and again inside the transaction with
// the room's rows locked, so two simultaneous submissions cannot both pass.
func CreateReservation(c *gin.Context) {
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

	var input CreateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	fieldErrs := booking.FieldErrors{}

	var startDate time.Time
	if input.StartDate != "" {
		parsed, err := utils.ParseDate(input.StartDate)
		if err != nil {
			fieldErrs.Add("start_date", "start date must be an ISO 8601 date (YYYY-MM-DD)")
		} else {
			startDate = parsed
		}
	}

	var guest models.Guest
	if input.GuestID != uuid.Nil {
		if err := config.DB.First(&guest, "id = ? AND is_active = true", input.GuestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				fieldErrs.Add("guest_id", "guest not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
	}

	var room models.Room
	roomLoaded := false
	if input.RoomID != uuid.Nil {
		if err := config.DB.First(&room, "id = ?", input.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				fieldErrs.Add("room_id", "room not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		} else {
			roomLoaded = true
		}
	}

	var snapshots []booking.ExistingReservation
	if roomLoaded {
		var err error
		if snapshots, err = activeSnapshots(config.DB, room.ID); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
	}

	result := booking.Validate(booking.Request{
		GuestID:      input.GuestID,
		RoomID:       input.RoomID,
		StartDate:    startDate,
		Period:       booking.Period(input.Period),
		PeriodsCount: input.PeriodsCount,
		Notes:        input.Notes,
	}, room.NightlyRate, snapshots, time.Now())

	// Collaborator findings (bad date syntax, unknown guest or room) are more
	// specific than the engine's generic messages for the same fields.
	for field, message := range fieldErrs {
		result.Errors[field] = message
	}
	if !result.Errors.OK() {
		respondValidation(c, result.Errors, result.Conflict)
		return
	}

	draft := result.Draft
	reservation := models.Reservation{
		ID:              uuid.New(),
		GuestID:         input.GuestID,
		RoomID:          input.RoomID,
		CreatedByUserID: userUUID,
		StartDate:       draft.StartDate,
		EndDate:         draft.EndDate,
		Period:          booking.Period(input.Period),
		PeriodsCount:    input.PeriodsCount,
		QuotedTotal:     draft.Total,
		Currency:        room.Currency,
		Status:          booking.StatusPending,
		Notes:           input.Notes,
	}

	// Insert-if-no-conflict: lock the room's open reservations and re-check
	// against the fresh rows so a race with another submission surfaces as a
	// conflict instead of a double booking.
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var rows []models.Reservation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("room_id = ? AND status IN ?", room.ID,
				[]string{string(booking.StatusPending), string(booking.StatusActive)}).
			Find(&rows).Error; err != nil {
			return err
		}
		fresh := make([]booking.ExistingReservation, len(rows))
		for i, r := range rows {
			fresh[i] = r.Snapshot()
		}
		if conflict := booking.FindConflict(room.ID, draft.StartDate, draft.EndDate, fresh); conflict != nil {
			respondValidation(c, booking.FieldErrors{
				"availability": "room is already reserved from " + conflict.RangeLabel(),
			}, conflict)
			return gorm.ErrInvalidTransaction
		}
		return tx.Create(&reservation).Error
	})
	if err != nil {
		if !c.IsAborted() {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create reservation")
		}
		return
	}

	c.JSON(http.StatusCreated, reservation)
}

// GetReservations lists reservations, filterable by room, guest and status
func GetReservations(c *gin.Context) {
	query := config.DB.Preload("Guest").Preload("Room").Order("start_date DESC")
	if roomID := c.Query("roomId"); roomID != "" {
		query = query.Where("room_id = ?", roomID)
	}
	if guestID := c.Query("guestId"); guestID != "" {
		query = query.Where("guest_id = ?", guestID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var reservations []models.Reservation
	if err := query.Find(&reservations).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reservations")
		return
	}

	c.JSON(http.StatusOK, reservations)
}

// GetReservation retrieves a single reservation
func GetReservation(c *gin.Context) {
	reservationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation ID format")
		return
	}

	var reservation models.Reservation
	if err := config.DB.Preload("Guest").Preload("Room").
		First(&reservation, "id = ?", reservationUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, reservation)
}

func loadReservation(c *gin.Context) (*models.Reservation, bool) {
	reservationUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reservation ID format")
		return nil, false
	}

	var reservation models.Reservation
	if err := config.DB.First(&reservation, "id = ?", reservationUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &reservation, true
}

// ConfirmReservation moves a pending reservation to active, opens the
// occupancy record and marks the room occupied.
func ConfirmReservation(c *gin.Context) {
	reservation, ok := loadReservation(c)
	if !ok {
		return
	}

	newStatus, err := booking.Confirm(reservation.Status)
	if err != nil {
		respondLifecycleError(c, err)
		return
	}

	now := time.Now()
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		reservation.Status = newStatus
		reservation.ConfirmedAt = &now
		if err := tx.Save(reservation).Error; err != nil {
			return err
		}

		occupancy := models.Occupancy{
			ID:            uuid.New(),
			ReservationID: reservation.ID,
			GuestID:       reservation.GuestID,
			RoomID:        reservation.RoomID,
			CheckIn:       now,
		}
		if err := tx.Create(&occupancy).Error; err != nil {
			return err
		}

		return tx.Model(&models.Room{}).Where("id = ?", reservation.RoomID).
			Update("status", "occupied").Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to confirm reservation")
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// CheckOutReservation completes an active stay, closes the occupancy and
// frees the room.
func CheckOutReservation(c *gin.Context) {
	reservation, ok := loadReservation(c)
	if !ok {
		return
	}

	var input CheckOutReservationInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
	}

	newStatus, err := booking.CheckOut(reservation.Status)
	if err != nil {
		respondLifecycleError(c, err)
		return
	}

	now := time.Now()
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		reservation.Status = newStatus
		reservation.CheckedOutAt = &now
		if input.SettlementNote != "" {
			if reservation.Notes != "" {
				reservation.Notes += "\n"
			}
			reservation.Notes += "Settlement: " + input.SettlementNote
		}
		if err := tx.Save(reservation).Error; err != nil {
			return err
		}
		return closeStay(tx, reservation, now)
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to check out reservation")
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// CancelReservation aborts a pending or active reservation with a mandatory
// justification.
func CancelReservation(c *gin.Context) {
	reservation, ok := loadReservation(c)
	if !ok {
		return
	}

	var input CancelReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	wasActive := reservation.Status == booking.StatusActive

	newStatus, err := booking.Cancel(reservation.Status, input.Reason)
	if err != nil {
		respondLifecycleError(c, err)
		return
	}

	now := time.Now()
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		reservation.Status = newStatus
		reservation.CancellationReason = input.Reason
		reservation.CancelledAt = &now
		if err := tx.Save(reservation).Error; err != nil {
			return err
		}
		if wasActive {
			return closeStay(tx, reservation, now)
		}
		return nil
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel reservation")
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// closeStay ends the open occupancy for a reservation and releases the room
// unless another guest still occupies it.
func closeStay(tx *gorm.DB, reservation *models.Reservation, now time.Time) error {
	if err := tx.Model(&models.Occupancy{}).
		Where("reservation_id = ? AND check_out IS NULL", reservation.ID).
		Update("check_out", &now).Error; err != nil {
		return err
	}

	var stillOccupied int64
	if err := tx.Model(&models.Occupancy{}).
		Where("room_id = ? AND check_out IS NULL", reservation.RoomID).
		Count(&stillOccupied).Error; err != nil {
		return err
	}
	if stillOccupied == 0 {
		return tx.Model(&models.Room{}).Where("id = ? AND status = 'occupied'", reservation.RoomID).
			Update("status", "available").Error
	}
	return nil
}
