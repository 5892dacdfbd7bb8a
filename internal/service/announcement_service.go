package service

import (
	"fmt"

	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/repository"
)

type AnnouncementService struct {
	announcementRepo *repository.AnnouncementRepository
}

func NewAnnouncementService(announcementRepo *repository.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{announcementRepo: announcementRepo}
}

// CreateAnnouncement publishes a new announcement
func (s *AnnouncementService) CreateAnnouncement(title, content string) (*models.Announcement, error) {
	announcement := &models.Announcement{
		Title:   title,
		Content: content,
	}
	if err := s.announcementRepo.CreateAnnouncement(announcement); err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}
	return announcement, nil
}

// ListAnnouncements returns all announcements, newest first
func (s *AnnouncementService) ListAnnouncements() ([]models.Announcement, error) {
	return s.announcementRepo.GetAllAnnouncements()
}
