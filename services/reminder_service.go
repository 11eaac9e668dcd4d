package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"purdetall-backend/models"
)

func tomorrowDate() string {
	return time.Now().AddDate(0, 0, 1).Format("2006-01-02")
}

// ReminderService sends next-day appointment reminders over WhatsApp or SMS.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
	now    func() string // returns tomorrow's date, overridable in tests
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		now: tomorrowDate,
	}
}

// StartScheduler runs the daily reminder pass at 9 AM. Reminders are a
// no-op when Twilio credentials are absent.
func (s *ReminderService) StartScheduler() {
	if os.Getenv("TWILIO_ACCOUNT_SID") == "" {
		log.Println("Twilio credentials not set, appointment reminders disabled")
		return
	}

	c := cron.New()
	c.AddFunc("0 9 * * *", s.SendDailyReminders)
	c.Start()
	log.Println("Reminder scheduler started")
}

// SendDailyReminders messages every client with a confirmed appointment
// tomorrow. Failures are logged and never retried.
func (s *ReminderService) SendDailyReminders() {
	date := s.now()

	var appointments []models.Appointment
	if err := s.db.
		Where("appointment_date = ? AND status = ?", date, models.AppointmentConfirmed).
		Find(&appointments).Error; err != nil {
		log.Printf("Failed to fetch appointments for %s: %v", date, err)
		return
	}

	for _, apt := range appointments {
		if apt.ClientPhone == "" {
			continue
		}

		message := fmt.Sprintf(
			"Hola %s, te recordamos tu cita en PurDetall mañana a las %s. ¡Te esperamos!",
			apt.ClientName, apt.AppointmentTime,
		)

		// WhatsApp for E.164 numbers, plain SMS otherwise.
		params := &twilioApi.CreateMessageParams{}
		params.SetBody(message)
		if strings.HasPrefix(apt.ClientPhone, "+") {
			params.SetTo("whatsapp:" + apt.ClientPhone)
			params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
		} else {
			params.SetTo(apt.ClientPhone)
			params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
		}

		resp, err := s.client.Api.CreateMessage(params)
		if err != nil {
			log.Printf("Failed to send reminder to %s: %v", apt.ClientPhone, err)
			continue
		}
		if resp.Sid != nil {
			log.Printf("Reminder sent to %s, SID: %s", apt.ClientPhone, *resp.Sid)
		} else {
			log.Printf("Reminder sent to %s, but no SID returned", apt.ClientPhone)
		}
	}
}
