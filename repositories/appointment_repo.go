package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parlorhub/models"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// List returns all appointments, newest first.
func (r *AppointmentRepository) List() ([]models.Appointment, error) {
	appointments := []models.Appointment{}
	if err := r.db.Order("created_at DESC").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// ListForDate returns appointments booked for a given calendar date.
func (r *AppointmentRepository) ListForDate(date string, statuses ...string) ([]models.Appointment, error) {
	appointments := []models.Appointment{}
	query := r.db.Where("appointment_date = ?", date)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	if err := query.Order("appointment_time ASC").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// Create inserts a booking. A (date, time) collision is the store's
// uniqueness constraint speaking and comes back as ErrConflict.
func (r *AppointmentRepository) Create(appointment *models.Appointment) error {
	if err := r.db.Create(appointment).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

type AppointmentPatch struct {
	Status *string
	Notes  *string
}

func (r *AppointmentRepository) Update(id uuid.UUID, patch AppointmentPatch) error {
	var appointment models.Appointment
	if err := r.db.First(&appointment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if patch.Status != nil {
		appointment.Status = *patch.Status
	}
	if patch.Notes != nil {
		appointment.Notes = *patch.Notes
	}

	return r.db.Save(&appointment).Error
}

func (r *AppointmentRepository) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&models.Appointment{}).Error
}
