package repositories

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"parlorhub/models"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.Service{},
		&models.GalleryItem{},
		&models.Appointment{},
		&models.ContactMessage{},
		&models.ParlorSettings{},
		&models.NotificationLog{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }
