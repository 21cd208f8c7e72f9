// services/reminder_service.go
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

	"parlorhub/models"
	"parlorhub/utils"
)

// ReminderService sends each client a message the day before their
// confirmed appointment.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
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
	}
}

// Enabled reports whether Twilio credentials are configured. Without them
// the scheduler is not started at all.
func (s *ReminderService) Enabled() bool {
	return os.Getenv("TWILIO_ACCOUNT_SID") != "" && os.Getenv("TWILIO_AUTH_TOKEN") != ""
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.SendDailyReminders()
	})

	c.Start()
	log.Println("Appointment reminder scheduler started")
}

func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	tomorrow := utils.DateString(utils.BeginningOfDay(time.Now()).AddDate(0, 0, 1))

	var appointments []models.Appointment
	err := s.db.
		Where("appointment_date = ? AND status = ?", tomorrow, models.AppointmentConfirmed).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Failed to fetch appointments for %s: %v", tomorrow, err)
		return
	}

	for _, appointment := range appointments {
		s.sendReminder(appointment)
	}

	log.Printf("Daily reminder processing completed (%d appointments)", len(appointments))
}

func (s *ReminderService) sendReminder(appointment models.Appointment) {
	slot := appointment.AppointmentDate
	if appointment.AppointmentTime != nil {
		slot += " at " + *appointment.AppointmentTime
	}
	message := fmt.Sprintf(
		"Hi %s, this is a reminder for your %s appointment on %s. See you soon!",
		appointment.ClientName, appointment.ServiceTitle, slot)

	// WhatsApp for E.164 numbers, SMS otherwise
	channel := "sms"
	to := appointment.Phone
	if strings.HasPrefix(appointment.Phone, "+") {
		to = "whatsapp:" + appointment.Phone
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
		log.Printf("Failed to send reminder to %s: %v", appointment.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", appointment.Phone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", appointment.Phone)
	}

	entry := models.NotificationLog{
		AppointmentID: appointment.ID,
		Channel:       channel,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		SentAt:        time.Now(),
	}

	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("Failed to log reminder for appointment %s: %v", appointment.ID, err)
	}
}
