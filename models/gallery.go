package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Title    string    `gorm:"not null" json:"title"`
	Category string    `gorm:"default:'General'" json:"category"`
	ImageURL string    `gorm:"not null" json:"imageUrl"`

	gorm.Model
}

func (g *GalleryItem) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return
}
