package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultReadTime is the read-time label applied when a blog is created
// without one.
const DefaultReadTime = "5 分钟"

// Blog represents a blog post with metadata
type Blog struct {
	ID        string    `json:"_id" db:"id" gorm:"type:uuid;primaryKey"`
	Title     string    `json:"title" db:"title" gorm:"type:text;not null"`
	Excerpt   string    `json:"excerpt" db:"excerpt" gorm:"type:text;not null"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	Author    string    `json:"author" db:"author" gorm:"type:text;not null"`
	Date      time.Time `json:"date" db:"date" gorm:"not null;index"`
	ReadTime  string    `json:"read_time" db:"read_time" gorm:"type:text"`
	Category  string    `json:"category" db:"category" gorm:"type:text;not null;index"`
	Tags      []string  `json:"tags" db:"tags" gorm:"type:text;serializer:json"`
	Cover     string    `json:"cover" db:"cover" gorm:"type:text"`
	Published bool      `json:"published" db:"published" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// BlogCreate is the request payload for creating a blog. Optional fields are
// pointers so that an omitted field can fall back to its default.
type BlogCreate struct {
	Title     string     `json:"title"`
	Excerpt   string     `json:"excerpt"`
	Content   string     `json:"content"`
	Author    string     `json:"author"`
	Date      *time.Time `json:"date"`
	ReadTime  *string    `json:"read_time"`
	Category  string     `json:"category"`
	Tags      []string   `json:"tags"`
	Cover     *string    `json:"cover"`
	Published *bool      `json:"published"`
}

// Blog builds the storable record, applying defaults for omitted fields.
func (c BlogCreate) Blog() Blog {
	b := Blog{
		Title:     c.Title,
		Excerpt:   c.Excerpt,
		Content:   c.Content,
		Author:    c.Author,
		Date:      time.Now(),
		ReadTime:  DefaultReadTime,
		Category:  c.Category,
		Tags:      []string{},
		Published: true,
	}
	if c.Date != nil {
		b.Date = *c.Date
	}
	if c.ReadTime != nil {
		b.ReadTime = *c.ReadTime
	}
	if c.Tags != nil {
		b.Tags = c.Tags
	}
	if c.Cover != nil {
		b.Cover = *c.Cover
	}
	if c.Published != nil {
		b.Published = *c.Published
	}
	return b
}

// BlogUpdate is the partial-update payload for a blog. Only non-nil fields
// are applied; an explicit empty or zero value is still applied.
type BlogUpdate struct {
	Title     *string     `json:"title"`
	Excerpt   *string     `json:"excerpt"`
	Content   *string     `json:"content"`
	Author    *string     `json:"author"`
	Date      *time.Time  `json:"date"`
	ReadTime  *string     `json:"read_time"`
	Category  *string     `json:"category"`
	Tags      *[]string   `json:"tags"`
	Cover     *string     `json:"cover"`
	Published *bool       `json:"published"`
}

// Apply merges the present fields into the existing record.
func (u BlogUpdate) Apply(b *Blog) {
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Excerpt != nil {
		b.Excerpt = *u.Excerpt
	}
	if u.Content != nil {
		b.Content = *u.Content
	}
	if u.Author != nil {
		b.Author = *u.Author
	}
	if u.Date != nil {
		b.Date = *u.Date
	}
	if u.ReadTime != nil {
		b.ReadTime = *u.ReadTime
	}
	if u.Category != nil {
		b.Category = *u.Category
	}
	if u.Tags != nil {
		b.Tags = *u.Tags
	}
	if u.Cover != nil {
		b.Cover = *u.Cover
	}
	if u.Published != nil {
		b.Published = *u.Published
	}
}
