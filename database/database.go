package database

import (
	"github.com/sncblog/backend/models"
	"gorm.io/gorm"
)

type Database struct {
	adminRepo   *AdminRepo
	blogRepo    *BlogRepo
	serviceRepo *ServiceRepo
	eventRepo   *EventRepo
	settingRepo *SettingRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		adminRepo:   NewAdminRepo(db),
		blogRepo:    NewBlogRepo(db),
		serviceRepo: NewServiceRepo(db),
		eventRepo:   NewEventRepo(db),
		settingRepo: NewSettingRepo(db),
	}
}

// Migrate creates or updates the tables backing every collection.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.Blog{},
		&models.Service{},
		&models.Event{},
		&models.Setting{},
	)
}

// Accessor methods for each repository

func (d Database) AdminRepo() *AdminRepo {
	return d.adminRepo
}

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

func (d Database) ServiceRepo() *ServiceRepo {
	return d.serviceRepo
}

func (d Database) EventRepo() *EventRepo {
	return d.eventRepo
}

func (d Database) SettingRepo() *SettingRepo {
	return d.settingRepo
}
