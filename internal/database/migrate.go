package database

import (
	"hostel-management-backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.RefreshToken{},
		&models.Room{},
		&models.Student{},
		&models.Fee{},
		&models.Complaint{},
		&models.Outpass{},
		&models.Announcement{},
		&models.AuditLog{},
	)
}
