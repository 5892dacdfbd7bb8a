package service

import (
	"errors"
	"fmt"
	"time"

	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/repository"
)

var (
	ErrInvalidOutpassStatus = errors.New("a valid status (Approved/Rejected) is required")
	ErrInvalidOutpassTimes  = errors.New("expected return time must be after departure time")
)

type OutpassService struct {
	outpassRepo *repository.OutpassRepository
	auditRepo   *repository.AuditRepository
}

func NewOutpassService(outpassRepo *repository.OutpassRepository, auditRepo *repository.AuditRepository) *OutpassService {
	return &OutpassService{
		outpassRepo: outpassRepo,
		auditRepo:   auditRepo,
	}
}

// SubmitRequest files an outpass request for the logged-in student
func (s *OutpassService) SubmitRequest(studentID uint, reason string, departure, expectedReturn time.Time) (*models.Outpass, error) {
	if !expectedReturn.After(departure) {
		return nil, ErrInvalidOutpassTimes
	}

	outpass := &models.Outpass{
		StudentID:          studentID,
		Reason:             reason,
		DepartureTime:      departure,
		ExpectedReturnTime: expectedReturn,
		Status:             models.OutpassStatusPending,
	}
	if err := s.outpassRepo.CreateOutpass(outpass); err != nil {
		return nil, fmt.Errorf("failed to submit outpass request: %w", err)
	}
	return outpass, nil
}

// GetAllOutpasses returns the admin view of all outpass requests
func (s *OutpassService) GetAllOutpasses() ([]models.OutpassWithStudent, error) {
	return s.outpassRepo.GetAllOutpasses()
}

// GetStudentOutpasses returns one student's outpass requests
func (s *OutpassService) GetStudentOutpasses(studentID uint) ([]models.Outpass, error) {
	return s.outpassRepo.GetOutpassesByStudentID(studentID)
}

// UpdateStatus approves or rejects an outpass request
func (s *OutpassService) UpdateStatus(id uint, status string, adminID uint) error {
	switch status {
	case models.OutpassStatusApproved, models.OutpassStatusRejected:
	default:
		return ErrInvalidOutpassStatus
	}

	if err := s.outpassRepo.UpdateOutpassStatus(id, status); err != nil {
		return fmt.Errorf("failed to update outpass status: %w", err)
	}

	adminIDPtr := &adminID
	details := fmt.Sprintf("Outpass %d marked %s", id, status)
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "outpass_status_update", details)

	return nil
}
