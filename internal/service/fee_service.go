package service

import (
	"fmt"
	"time"

	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/repository"
)

type FeeService struct {
	feeRepo     *repository.FeeRepository
	studentRepo *repository.StudentRepository
}

func NewFeeService(feeRepo *repository.FeeRepository, studentRepo *repository.StudentRepository) *FeeService {
	return &FeeService{
		feeRepo:     feeRepo,
		studentRepo: studentRepo,
	}
}

// RecordPayment records a fee payment for an existing student
func (s *FeeService) RecordPayment(studentID uint, amount float64, paymentDate time.Time, remarks string) (*models.Fee, error) {
	if _, err := s.studentRepo.GetStudentByID(studentID); err != nil {
		return nil, err
	}

	fee := &models.Fee{
		StudentID:   studentID,
		AmountPaid:  amount,
		PaymentDate: paymentDate,
		Remarks:     remarks,
	}
	if err := s.feeRepo.CreateFee(fee); err != nil {
		return nil, fmt.Errorf("failed to record fee payment: %w", err)
	}

	return fee, nil
}

// GetStudentFees returns a student's payment history
func (s *FeeService) GetStudentFees(studentID uint) ([]models.Fee, error) {
	return s.feeRepo.GetFeesByStudentID(studentID)
}
