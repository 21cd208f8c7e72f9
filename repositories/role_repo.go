package repositories

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parlorhub/models"
)

// RoleRepository resolves whether an identity holds a capability.
type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// HasRole reports whether a grant exists for the identity. It fails closed:
// a query error degrades to "no", it never propagates to the caller.
func (r *RoleRepository) HasRole(userID uuid.UUID, role string) bool {
	var grant models.UserRole
	err := r.db.Where("user_id = ? AND role = ?", userID, role).First(&grant).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("role lookup failed for %s: %v", userID, err)
		}
		return false
	}
	return true
}

// IsAdmin is the resolver used by the admin route gate. Invalid ids are
// unprivileged.
func (r *RoleRepository) IsAdmin(userID string) bool {
	id, err := uuid.Parse(userID)
	if err != nil {
		return false
	}
	return r.HasRole(id, models.RoleAdmin)
}

// Grant records a role for the identity. Granting the same role twice is a
// no-op rather than an error.
func (r *RoleRepository) Grant(userID uuid.UUID, role string) error {
	err := r.db.Create(&models.UserRole{UserID: userID, Role: role}).Error
	if err != nil && isUniqueViolation(err) {
		return nil
	}
	return err
}

// Revoke removes every grant held by the identity.
func (r *RoleRepository) Revoke(userID uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.UserRole{}).Error
}
