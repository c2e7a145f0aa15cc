// services/notifier.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"hostal-backend/models"
	"hostal-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type NotifierService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewNotifierService(db *gorm.DB) *NotifierService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &NotifierService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *NotifierService) StartScheduler() {
	c := cron.New()

	// Run every day at 8 AM
	if _, err := c.AddFunc("0 8 * * *", s.SendDailyNotices); err != nil {
		log.Printf("Failed to schedule daily notices: %v", err)
		return
	}

	c.Start()
	log.Println("Notification scheduler started")
}

// SendDailyNotices messages the guests arriving today and those whose stay
// ends today.
func (s *NotifierService) SendDailyNotices() {
	log.Println("Starting daily notice processing...")

	today := utils.BeginningOfDay(time.Now())
	tomorrow := today.AddDate(0, 0, 1)

	var arrivals []models.Reservation
	if err := s.db.Preload("Guest").Preload("Room").
		Where("status = 'pending' AND start_date >= ? AND start_date < ?", today, tomorrow).
		Find(&arrivals).Error; err != nil {
		log.Printf("Failed to fetch today's arrivals: %v", err)
	} else {
		for _, r := range arrivals {
			s.notify(r, "arrival", fmt.Sprintf(
				"Hola %s, le esperamos hoy en recepción. Su habitación %s está reservada hasta el %s.",
				r.Guest.Name, r.Room.Number, r.EndDate.Format("02/01/2006")))
		}
	}

	var departures []models.Reservation
	if err := s.db.Preload("Guest").Preload("Room").
		Where("status = 'active' AND end_date >= ? AND end_date < ?", today, tomorrow).
		Find(&departures).Error; err != nil {
		log.Printf("Failed to fetch today's departures: %v", err)
	} else {
		for _, r := range departures {
			s.notify(r, "departure", fmt.Sprintf(
				"Hola %s, su estadía en la habitación %s termina hoy. Pase por recepción antes de salir.",
				r.Guest.Name, r.Room.Number))
		}
	}

	log.Println("Daily notice processing completed")
}

func (s *NotifierService) notify(reservation models.Reservation, kind, message string) {
	if reservation.Guest.Phone == "" {
		return
	}

	// Do not message the same reservation twice for the same kind and day
	today := utils.BeginningOfDay(time.Now())
	var alreadySent int64
	s.db.Model(&models.NotificationLog{}).
		Where("reservation_id = ? AND kind = ? AND status = 'sent' AND sent_at >= ?",
			reservation.ID, kind, today).
		Count(&alreadySent)
	if alreadySent > 0 {
		return
	}

	// WhatsApp for international numbers, SMS otherwise
	channel := "sms"
	to := reservation.Guest.Phone
	if strings.HasPrefix(to, "+") {
		to = "whatsapp:" + to
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send %s notice to %s: %v", kind, reservation.Guest.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("%s notice sent to %s, SID: %s", kind, reservation.Guest.Phone, *resp.Sid)
	} else {
		log.Printf("%s notice sent to %s, but no SID returned", kind, reservation.Guest.Phone)
	}

	notificationLog := models.NotificationLog{
		GuestID:       reservation.GuestID,
		ReservationID: reservation.ID,
		Kind:          kind,
		Channel:       channel,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		SentAt:        time.Now(),
	}

	if err := s.db.Create(&notificationLog).Error; err != nil {
		log.Printf("Failed to log %s notice for reservation %s: %v", kind, reservation.ID, err)
	}
}
