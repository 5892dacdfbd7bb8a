package service

import (
	"errors"
	"fmt"

	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/repository"
)

var ErrInvalidComplaintStatus = errors.New("a valid status is required")

type ComplaintService struct {
	complaintRepo *repository.ComplaintRepository
	auditRepo     *repository.AuditRepository
}

func NewComplaintService(complaintRepo *repository.ComplaintRepository, auditRepo *repository.AuditRepository) *ComplaintService {
	return &ComplaintService{
		complaintRepo: complaintRepo,
		auditRepo:     auditRepo,
	}
}

// SubmitComplaint files a complaint for the logged-in student
func (s *ComplaintService) SubmitComplaint(studentID uint, description string) (*models.Complaint, error) {
	complaint := &models.Complaint{
		StudentID:   studentID,
		Description: description,
		Status:      models.ComplaintStatusPending,
	}
	if err := s.complaintRepo.CreateComplaint(complaint); err != nil {
		return nil, fmt.Errorf("failed to submit complaint: %w", err)
	}
	return complaint, nil
}

// GetAllComplaints returns the admin view of all complaints
func (s *ComplaintService) GetAllComplaints() ([]models.ComplaintWithStudent, error) {
	return s.complaintRepo.GetAllComplaints()
}

// GetStudentComplaints returns the complaints filed by one student
func (s *ComplaintService) GetStudentComplaints(studentID uint) ([]models.Complaint, error) {
	return s.complaintRepo.GetComplaintsByStudentID(studentID)
}

// UpdateStatus moves a complaint through its workflow
func (s *ComplaintService) UpdateStatus(id uint, status string, adminID uint) error {
	switch status {
	case models.ComplaintStatusPending, models.ComplaintStatusInProgress, models.ComplaintStatusResolved:
	default:
		return ErrInvalidComplaintStatus
	}

	if err := s.complaintRepo.UpdateComplaintStatus(id, status); err != nil {
		return fmt.Errorf("failed to update complaint status: %w", err)
	}

	adminIDPtr := &adminID
	details := fmt.Sprintf("Complaint %d marked %s", id, status)
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "complaint_status_update", details)

	return nil
}
