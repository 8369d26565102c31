package database

import (
	"errors"
	"strings"

	"github.com/sncblog/backend/models"
	"gorm.io/gorm"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// BlogFilter narrows a blog listing. Zero values mean "no filter" except
// PublishedOnly, which the handlers default to true.
type BlogFilter struct {
	Category      string
	Search        string
	PublishedOnly bool
}

// FindAll returns blogs matching the filter, newest first.
func (r *BlogRepo) FindAll(filter BlogFilter) ([]*models.Blog, error) {
	q := r.db.Model(&models.Blog{})
	if filter.PublishedOnly {
		q = q.Where("published = ?", true)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			r.db.Where("lower(title) LIKE ?", pattern).
				Or("lower(excerpt) LIKE ?", pattern).
				Or("lower(content) LIKE ?", pattern).
				Or("lower(tags) LIKE ?", pattern),
		)
	}

	blogs := make([]*models.Blog, 0)
	err := q.Order("date DESC").Find(&blogs).Error
	return blogs, err
}

// FindByID returns a blog by its ID, or nil if no blog matches
func (r *BlogRepo) FindByID(id string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Where("id = ?", id).First(&blog).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// Add inserts a new blog into the database
func (r *BlogRepo) Add(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

// Save persists every field of an existing blog and stamps its update time
func (r *BlogRepo) Save(blog *models.Blog) error {
	return r.db.Save(blog).Error
}

// Delete removes a blog by id, reporting whether a record was actually removed
func (r *BlogRepo) Delete(id string) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&models.Blog{})
	return res.RowsAffected > 0, res.Error
}
