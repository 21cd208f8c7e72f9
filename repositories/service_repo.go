package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parlorhub/models"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// List returns all services, newest first.
func (r *ServiceRepository) List() ([]models.Service, error) {
	services := []models.Service{}
	if err := r.db.Order("created_at DESC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceRepository) Get(id uuid.UUID) (*models.Service, error) {
	var service models.Service
	if err := r.db.First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &service, nil
}

func (r *ServiceRepository) Create(service *models.Service) error {
	return r.db.Create(service).Error
}

// ServicePatch carries the updatable fields; nil means "leave unchanged".
type ServicePatch struct {
	Title       *string
	Description *string
	Price       *float64
	ImageURL    *string
}

func (r *ServiceRepository) Update(id uuid.UUID, patch ServicePatch) error {
	var service models.Service
	if err := r.db.First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if patch.Title != nil {
		service.Title = *patch.Title
	}
	if patch.Description != nil {
		service.Description = *patch.Description
	}
	if patch.Price != nil {
		service.Price = patch.Price
	}
	if patch.ImageURL != nil {
		service.ImageURL = patch.ImageURL
	}

	return r.db.Save(&service).Error
}

// Delete is idempotent: removing an id that is already gone is not an error.
func (r *ServiceRepository) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&models.Service{}).Error
}
