package database

import (
	"errors"

	"github.com/sncblog/backend/models"
	"gorm.io/gorm"
)

type SettingRepo struct {
	db *gorm.DB
}

func NewSettingRepo(db *gorm.DB) *SettingRepo {
	return &SettingRepo{db}
}

// FindAll returns every setting
func (r *SettingRepo) FindAll() ([]*models.Setting, error) {
	settings := make([]*models.Setting, 0)
	err := r.db.Find(&settings).Error
	return settings, err
}

// FindByKey returns the setting with the given key, or nil if none exists
func (r *SettingRepo) FindByKey(key string) (*models.Setting, error) {
	var setting models.Setting
	err := r.db.Where("key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Add inserts a new setting into the database
func (r *SettingRepo) Add(setting *models.Setting) error {
	return r.db.Create(setting).Error
}

// Save persists every field of an existing setting and stamps its update time
func (r *SettingRepo) Save(setting *models.Setting) error {
	return r.db.Save(setting).Error
}

// DeleteByKey removes a setting by key, reporting whether a record was actually removed
func (r *SettingRepo) DeleteByKey(key string) (bool, error) {
	res := r.db.Where("key = ?", key).Delete(&models.Setting{})
	return res.RowsAffected > 0, res.Error
}
