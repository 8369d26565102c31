package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Setting is a single key/value entry in the site-wide settings table. The
// value is an opaque JSON blob so the schema stays open-ended.
type Setting struct {
	ID          string          `json:"_id" db:"id" gorm:"type:uuid;primaryKey"`
	Key         string          `json:"key" db:"key" gorm:"type:text;not null;uniqueIndex"`
	Value       json.RawMessage `json:"value" db:"value" gorm:"type:text;serializer:json"`
	Description string          `json:"description" db:"description" gorm:"type:text"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

func (s *Setting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// SettingUpsert is the request payload for creating or updating a setting.
// Description is a pointer: when omitted on an update, the stored description
// is left untouched.
type SettingUpsert struct {
	Key         string          `json:"key"`
	Value       json.RawMessage `json:"value"`
	Description *string         `json:"description"`
}

// Setting builds a new storable record from the payload.
func (u SettingUpsert) Setting() Setting {
	s := Setting{
		Key:   u.Key,
		Value: u.Value,
	}
	if u.Description != nil {
		s.Description = *u.Description
	}
	return s
}

// Apply merges the payload into an existing record.
func (u SettingUpsert) Apply(s *Setting) {
	s.Value = u.Value
	if u.Description != nil {
		s.Description = *u.Description
	}
}
