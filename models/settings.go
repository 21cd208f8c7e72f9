package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParlorSettings is a singleton row holding the parlor's public contact
// details. The repository creates the default row on first read.
type ParlorSettings struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Phone     string    `json:"phone"`
	WhatsApp  string    `json:"whatsapp"`
	Email     string    `json:"email"`
	Address   string    `gorm:"type:text" json:"address"`
	Instagram string    `json:"instagram"`
	Facebook  string    `json:"facebook"`

	gorm.Model
}

func (p *ParlorSettings) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
