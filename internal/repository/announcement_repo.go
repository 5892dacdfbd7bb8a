package repository

import (
	"hostel-management-backend/internal/models"

	"gorm.io/gorm"
)

type AnnouncementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepo(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// CreateAnnouncement publishes a new announcement
func (r *AnnouncementRepository) CreateAnnouncement(announcement *models.Announcement) error {
	return r.db.Create(announcement).Error
}

// GetAllAnnouncements returns all announcements, newest first
func (r *AnnouncementRepository) GetAllAnnouncements() ([]models.Announcement, error) {
	var announcements []models.Announcement
	err := r.db.Order("created_at DESC").Find(&announcements).Error
	return announcements, err
}
