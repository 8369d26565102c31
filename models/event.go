package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultEventStatus is the status applied when an event is created without one.
const DefaultEventStatus = "upcoming"

// Event represents a site event or activity
type Event struct {
	ID              string    `json:"_id" db:"id" gorm:"type:uuid;primaryKey"`
	Title           string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description     string    `json:"description" db:"description" gorm:"type:text;not null"`
	Date            time.Time `json:"date" db:"date" gorm:"not null;index"`
	Location        string    `json:"location" db:"location" gorm:"type:text"`
	Category        string    `json:"category" db:"category" gorm:"type:text;not null;index"`
	Organizer       string    `json:"organizer" db:"organizer" gorm:"type:text"`
	Status          string    `json:"status" db:"status" gorm:"type:text;index"`
	MaxParticipants int       `json:"max_participants" db:"max_participants" gorm:"not null"`
	RegistrationURL string    `json:"registration_url" db:"registration_url" gorm:"type:text"`
	Published       bool      `json:"published" db:"published" gorm:"not null;index"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// EventCreate is the request payload for creating an event.
type EventCreate struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Date            *time.Time `json:"date"`
	Location        *string    `json:"location"`
	Category        string     `json:"category"`
	Organizer       *string    `json:"organizer"`
	Status          *string    `json:"status"`
	MaxParticipants *int       `json:"max_participants"`
	RegistrationURL *string    `json:"registration_url"`
	Published       *bool      `json:"published"`
}

// Event builds the storable record, applying defaults for omitted fields.
func (c EventCreate) Event() Event {
	e := Event{
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Status:      DefaultEventStatus,
		Published:   true,
	}
	if c.Date != nil {
		e.Date = *c.Date
	}
	if c.Location != nil {
		e.Location = *c.Location
	}
	if c.Organizer != nil {
		e.Organizer = *c.Organizer
	}
	if c.Status != nil {
		e.Status = *c.Status
	}
	if c.MaxParticipants != nil {
		e.MaxParticipants = *c.MaxParticipants
	}
	if c.RegistrationURL != nil {
		e.RegistrationURL = *c.RegistrationURL
	}
	if c.Published != nil {
		e.Published = *c.Published
	}
	return e
}

// EventUpdate is the partial-update payload for an event.
type EventUpdate struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	Date            *time.Time `json:"date"`
	Location        *string    `json:"location"`
	Category        *string    `json:"category"`
	Organizer       *string    `json:"organizer"`
	Status          *string    `json:"status"`
	MaxParticipants *int       `json:"max_participants"`
	RegistrationURL *string    `json:"registration_url"`
	Published       *bool      `json:"published"`
}

// Apply merges the present fields into the existing record.
func (u EventUpdate) Apply(e *Event) {
	if u.Title != nil {
		e.Title = *u.Title
	}
	if u.Description != nil {
		e.Description = *u.Description
	}
	if u.Date != nil {
		e.Date = *u.Date
	}
	if u.Location != nil {
		e.Location = *u.Location
	}
	if u.Category != nil {
		e.Category = *u.Category
	}
	if u.Organizer != nil {
		e.Organizer = *u.Organizer
	}
	if u.Status != nil {
		e.Status = *u.Status
	}
	if u.MaxParticipants != nil {
		e.MaxParticipants = *u.MaxParticipants
	}
	if u.RegistrationURL != nil {
		e.RegistrationURL = *u.RegistrationURL
	}
	if u.Published != nil {
		e.Published = *u.Published
	}
}
