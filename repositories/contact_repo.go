package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parlorhub/models"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) List() ([]models.ContactMessage, error) {
	messages := []models.ContactMessage{}
	if err := r.db.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *ContactRepository) Create(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

// MarkRead flips a message to read. Already-read messages stay read.
func (r *ContactRepository) MarkRead(id uuid.UUID) error {
	var message models.ContactMessage
	if err := r.db.First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	message.Status = models.MessageRead
	return r.db.Save(&message).Error
}

func (r *ContactRepository) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&models.ContactMessage{}).Error
}
