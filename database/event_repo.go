package database

import (
	"errors"
	"strings"

	"github.com/sncblog/backend/models"
	"gorm.io/gorm"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) *EventRepo {
	return &EventRepo{db}
}

// EventFilter narrows an event listing.
type EventFilter struct {
	Category      string
	Status        string
	Search        string
	PublishedOnly bool
}

// FindAll returns events matching the filter, newest first.
func (r *EventRepo) FindAll(filter EventFilter) ([]*models.Event, error) {
	q := r.db.Model(&models.Event{})
	if filter.PublishedOnly {
		q = q.Where("published = ?", true)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			r.db.Where("lower(title) LIKE ?", pattern).
				Or("lower(description) LIKE ?", pattern).
				Or("lower(location) LIKE ?", pattern),
		)
	}

	events := make([]*models.Event, 0)
	err := q.Order("date DESC").Find(&events).Error
	return events, err
}

// FindByID returns an event by its ID, or nil if no event matches
func (r *EventRepo) FindByID(id string) (*models.Event, error) {
	var event models.Event
	err := r.db.Where("id = ?", id).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Add inserts a new event into the database
func (r *EventRepo) Add(event *models.Event) error {
	return r.db.Create(event).Error
}

// Save persists every field of an existing event
func (r *EventRepo) Save(event *models.Event) error {
	return r.db.Save(event).Error
}

// Delete removes an event by id, reporting whether a record was actually removed
func (r *EventRepo) Delete(id string) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&models.Event{})
	return res.RowsAffected > 0, res.Error
}
