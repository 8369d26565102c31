package database

import (
	"errors"

	"github.com/sncblog/backend/models"
	"gorm.io/gorm"
)

type AdminRepo struct {
	db *gorm.DB
}

func NewAdminRepo(db *gorm.DB) *AdminRepo {
	return &AdminRepo{db}
}

// Count returns the number of admin accounts. The setup endpoint is gated on
// this being zero.
func (r *AdminRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Admin{}).Count(&count).Error
	return count, err
}

// FindByUsername returns the admin with the given username, or nil if none exists
func (r *AdminRepo) FindByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.Where("username = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// Add inserts a new admin account
func (r *AdminRepo) Add(admin *models.Admin) error {
	return r.db.Create(admin).Error
}
