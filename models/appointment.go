package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment statuses
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

type Appointment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ClientName string    `gorm:"not null" json:"clientName"`
	Phone      string    `gorm:"not null" json:"phone"`
	Email      *string   `json:"email"`

	// Free-text reference to a service title, not a foreign key: bookings
	// outlive renames and deletions of the service catalogue.
	ServiceTitle string `gorm:"not null" json:"service"`

	// The store enforces one booking per slot via this composite index.
	AppointmentDate string  `gorm:"type:varchar(10);not null;uniqueIndex:idx_slot,priority:1" json:"date"`
	AppointmentTime *string `gorm:"type:varchar(5);uniqueIndex:idx_slot,priority:2" json:"time"`

	Notes  string `gorm:"type:text" json:"notes"`
	Status string `gorm:"type:varchar(20);default:'pending'" json:"status"`

	// No soft delete here: a cancelled-and-removed booking must free its
	// slot in the unique index.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = AppointmentPending
	}
	return
}

func ValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}
