package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultServiceIcon is the glyph applied when a service is created without one.
const DefaultServiceIcon = "🔗"

// Service represents an external service linked from the site
type Service struct {
	ID          string    `json:"_id" db:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	URL         string    `json:"url" db:"url" gorm:"type:text;not null"`
	Icon        string    `json:"icon" db:"icon" gorm:"type:text"`
	Category    string    `json:"category" db:"category" gorm:"type:text;not null;index"`
	SortOrder   int       `json:"order" db:"sort_order" gorm:"column:sort_order;not null"`
	Active      bool      `json:"active" db:"active" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// ServiceCreate is the request payload for creating a service.
type ServiceCreate struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	Icon        *string `json:"icon"`
	Category    string  `json:"category"`
	SortOrder   *int    `json:"order"`
	Active      *bool   `json:"active"`
}

// Service builds the storable record, applying defaults for omitted fields.
func (c ServiceCreate) Service() Service {
	s := Service{
		Name:        c.Name,
		Description: c.Description,
		URL:         c.URL,
		Icon:        DefaultServiceIcon,
		Category:    c.Category,
		Active:      true,
	}
	if c.Icon != nil {
		s.Icon = *c.Icon
	}
	if c.SortOrder != nil {
		s.SortOrder = *c.SortOrder
	}
	if c.Active != nil {
		s.Active = *c.Active
	}
	return s
}

// ServiceUpdate is the partial-update payload for a service.
type ServiceUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
	Icon        *string `json:"icon"`
	Category    *string `json:"category"`
	SortOrder   *int    `json:"order"`
	Active      *bool   `json:"active"`
}

// Apply merges the present fields into the existing record.
func (u ServiceUpdate) Apply(s *Service) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Description != nil {
		s.Description = *u.Description
	}
	if u.URL != nil {
		s.URL = *u.URL
	}
	if u.Icon != nil {
		s.Icon = *u.Icon
	}
	if u.Category != nil {
		s.Category = *u.Category
	}
	if u.SortOrder != nil {
		s.SortOrder = *u.SortOrder
	}
	if u.Active != nil {
		s.Active = *u.Active
	}
}
