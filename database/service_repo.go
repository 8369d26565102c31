package database

import (
	"errors"

	"github.com/sncblog/backend/models"
	"gorm.io/gorm"
)

type ServiceRepo struct {
	db *gorm.DB
}

func NewServiceRepo(db *gorm.DB) *ServiceRepo {
	return &ServiceRepo{db}
}

// ServiceFilter narrows a service listing.
type ServiceFilter struct {
	Category   string
	ActiveOnly bool
}

// FindAll returns services matching the filter, ordered by their explicit
// sort order, then newest first.
func (r *ServiceRepo) FindAll(filter ServiceFilter) ([]*models.Service, error) {
	q := r.db.Model(&models.Service{})
	if filter.ActiveOnly {
		q = q.Where("active = ?", true)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	services := make([]*models.Service, 0)
	err := q.Order("sort_order ASC").Order("created_at DESC").Find(&services).Error
	return services, err
}

// FindByID returns a service by its ID, or nil if no service matches
func (r *ServiceRepo) FindByID(id string) (*models.Service, error) {
	var service models.Service
	err := r.db.Where("id = ?", id).First(&service).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// Add inserts a new service into the database
func (r *ServiceRepo) Add(service *models.Service) error {
	return r.db.Create(service).Error
}

// Save persists every field of an existing service
func (r *ServiceRepo) Save(service *models.Service) error {
	return r.db.Save(service).Error
}

// Delete removes a service by id, reporting whether a record was actually removed
func (r *ServiceRepo) Delete(id string) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&models.Service{})
	return res.RowsAffected > 0, res.Error
}
