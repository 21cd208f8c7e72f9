package repositories

import (
	"errors"

	"gorm.io/gorm"

	"parlorhub/models"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the singleton settings row, creating the default on first read
// so callers never see "no settings".
func (r *SettingsRepository) Get() (*models.ParlorSettings, error) {
	var settings models.ParlorSettings
	err := r.db.Order("created_at ASC").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.ParlorSettings{Name: "Firdaus Makeover"}
		if err := r.db.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

type SettingsPatch struct {
	Name      *string
	Phone     *string
	WhatsApp  *string
	Email     *string
	Address   *string
	Instagram *string
	Facebook  *string
}

func (r *SettingsRepository) Update(patch SettingsPatch) (*models.ParlorSettings, error) {
	settings, err := r.Get()
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		settings.Name = *patch.Name
	}
	if patch.Phone != nil {
		settings.Phone = *patch.Phone
	}
	if patch.WhatsApp != nil {
		settings.WhatsApp = *patch.WhatsApp
	}
	if patch.Email != nil {
		settings.Email = *patch.Email
	}
	if patch.Address != nil {
		settings.Address = *patch.Address
	}
	if patch.Instagram != nil {
		settings.Instagram = *patch.Instagram
	}
	if patch.Facebook != nil {
		settings.Facebook = *patch.Facebook
	}

	if err := r.db.Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
