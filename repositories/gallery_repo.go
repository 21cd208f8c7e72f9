package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parlorhub/models"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

// List returns gallery items newest first, optionally filtered by category.
func (r *GalleryRepository) List(category string) ([]models.GalleryItem, error) {
	items := []models.GalleryItem{}
	query := r.db.Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GalleryRepository) Create(item *models.GalleryItem) error {
	return r.db.Create(item).Error
}

type GalleryPatch struct {
	Title    *string
	Category *string
	ImageURL *string
}

func (r *GalleryRepository) Update(id uuid.UUID, patch GalleryPatch) error {
	var item models.GalleryItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if patch.Title != nil {
		item.Title = *patch.Title
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.ImageURL != nil {
		item.ImageURL = *patch.ImageURL
	}

	return r.db.Save(&item).Error
}

func (r *GalleryRepository) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&models.GalleryItem{}).Error
}
