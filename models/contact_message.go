package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MessageUnread = "unread"
	MessageRead   = "read"
)

type ContactMessage struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name    string    `gorm:"not null" json:"name"`
	Phone   string    `gorm:"not null" json:"phone"`
	Email   *string   `json:"email"`
	Message string    `gorm:"type:text;not null" json:"message"`
	Status  string    `gorm:"type:varchar(10);default:'unread'" json:"status"`

	gorm.Model
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = MessageUnread
	}
	return
}
