package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"parlorhub/utils"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    *string   `gorm:"uniqueIndex" json:"email"`
	Password string    `gorm:"" json:"-"`

	// Anonymous identities are provisioned by the admin-login flow and
	// carry no password; they authenticate by token only.
	IsAnonymous bool `gorm:"default:false" json:"isAnonymous"`

	LastLogin *time.Time `json:"lastLogin"`

	Roles []UserRole `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	gorm.Model
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Password != "" {
		hashed, err := utils.HashPassword(u.Password)
		if err != nil {
			return err
		}
		u.Password = hashed
	}
	return
}

// UserRole is a role grant. An identity holds the admin capability iff a
// grant with RoleAdmin exists for it.
type UserRole struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_user_role,priority:1" json:"userId"`
	Role   string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_user_role,priority:2" json:"role"`

	// Hard delete: a revoked grant must leave the unique index so the
	// same role can be granted again later.
	CreatedAt time.Time `json:"createdAt"`
}

const RoleAdmin = "admin"

func (r *UserRole) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
