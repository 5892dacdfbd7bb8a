package repository

import (
	"hostel-management-backend/internal/models"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateAuditLog creates a new audit log entry
func (r *AuditRepository) CreateAuditLog(adminID *uint, action string, details string) error {
	log := &models.AuditLog{
		AdminID: adminID,
		Action:  action,
		Details: details,
	}
	return r.db.Create(log).Error
}

// GetRecentAuditLogs returns the most recent audit entries, newest first
func (r *AuditRepository) GetRecentAuditLogs(limit int) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := r.db.Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
