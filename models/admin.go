package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admin represents the site administrator account. The system supports a
// single admin, created once through the setup endpoint.
type Admin struct {
	ID             string    `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Username       string    `json:"username" db:"username" gorm:"type:text;not null;uniqueIndex"`
	Email          string    `json:"email" db:"email" gorm:"type:text;not null"`
	HashedPassword string    `json:"-" db:"hashed_password" gorm:"type:text;not null"`
	IsFirstLogin   bool      `json:"is_first_login" db:"is_first_login" gorm:"not null;default:false"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// AdminSummary is the public view of an admin returned by the auth endpoints.
// The password hash never leaves the process.
type AdminSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (a Admin) Summary() AdminSummary {
	return AdminSummary{ID: a.ID, Username: a.Username, Email: a.Email}
}
