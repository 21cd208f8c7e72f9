// services/notifier.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"parlorhub/models"
)

// Booking is the notification payload for a submitted appointment.
type Booking struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	Date      string `json:"date"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Outcome reports exactly one of: a confirmed delivery, or a follow-up link
// for manual handling. Never both.
type Outcome struct {
	Delivered    bool   `json:"delivered"`
	FollowUpLink string `json:"followUpLink,omitempty"`
}

// BookingNotifier relays a submitted booking to the configured side-channel.
// NOTIFY_MODE selects the strategy: "webhook" posts to a spreadsheet relay,
// "whatsapp" produces a wa.me deep link, anything else disables the notifier.
type BookingNotifier struct {
	mode       string
	webhookURL string
	phone      string
	client     *http.Client
}

func NewBookingNotifier() *BookingNotifier {
	return &BookingNotifier{
		mode:       os.Getenv("NOTIFY_MODE"),
		webhookURL: os.Getenv("BOOKING_WEBHOOK_URL"),
		phone:      os.Getenv("NOTIFY_PHONE"),
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *BookingNotifier) Enabled() bool {
	return n.mode == "webhook" || n.mode == "whatsapp"
}

// Notify produces a delivery outcome for the booking.
func (n *BookingNotifier) Notify(b Booking) (Outcome, error) {
	if b.Timestamp == "" {
		b.Timestamp = time.Now().Format(time.RFC3339)
	}

	switch n.mode {
	case "webhook":
		return n.sendWebhook(b)
	case "whatsapp":
		return n.whatsAppLink(b)
	default:
		return Outcome{}, fmt.Errorf("notifier disabled (NOTIFY_MODE=%q)", n.mode)
	}
}

// NotifyAppointment is the fire-and-forget path used by the booking handler:
// a failed relay is logged, never surfaced to the booking client.
func (n *BookingNotifier) NotifyAppointment(a *models.Appointment) {
	if !n.Enabled() {
		return
	}

	email := ""
	if a.Email != nil {
		email = *a.Email
	}
	date := a.AppointmentDate
	if a.AppointmentTime != nil {
		date += " " + *a.AppointmentTime
	}

	outcome, err := n.Notify(Booking{
		Name:    a.ClientName,
		Email:   email,
		Phone:   a.Phone,
		Service: a.ServiceTitle,
		Date:    date,
		Message: a.Notes,
	})
	if err != nil {
		log.Printf("booking notification failed for %s: %v", a.ID, err)
		return
	}
	if outcome.FollowUpLink != "" {
		log.Printf("booking %s: follow up at %s", a.ID, outcome.FollowUpLink)
	}
}

func (n *BookingNotifier) sendWebhook(b Booking) (Outcome, error) {
	if n.webhookURL == "" {
		return Outcome{}, fmt.Errorf("BOOKING_WEBHOOK_URL not configured")
	}

	body, err := json.Marshal(b)
	if err != nil {
		return Outcome{}, err
	}

	resp, err := n.client.Post(n.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return Outcome{}, fmt.Errorf("webhook request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Outcome{}, fmt.Errorf("webhook responded %s", resp.Status)
	}

	return Outcome{Delivered: true}, nil
}

func (n *BookingNotifier) whatsAppLink(b Booking) (Outcome, error) {
	if n.phone == "" {
		return Outcome{}, fmt.Errorf("NOTIFY_PHONE not configured")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "New appointment request\nName: %s\nPhone: %s\n", b.Name, b.Phone)
	if b.Email != "" {
		fmt.Fprintf(&sb, "Email: %s\n", b.Email)
	}
	fmt.Fprintf(&sb, "Service: %s\nDate: %s\n", b.Service, b.Date)
	if b.Message != "" {
		fmt.Fprintf(&sb, "Notes: %s\n", b.Message)
	}

	phone := strings.TrimPrefix(n.phone, "+")
	link := fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(sb.String()))

	return Outcome{FollowUpLink: link}, nil
}
