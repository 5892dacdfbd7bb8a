package repository

import (
	"hostel-management-backend/internal/models"

	"gorm.io/gorm"
)

type FeeRepository struct {
	db *gorm.DB
}

func NewFeeRepo(db *gorm.DB) *FeeRepository {
	return &FeeRepository{db: db}
}

// CreateFee records a new fee payment
func (r *FeeRepository) CreateFee(fee *models.Fee) error {
	return r.db.Create(fee).Error
}

// GetFeesByStudentID returns a student's payment history, newest first
func (r *FeeRepository) GetFeesByStudentID(studentID uint) ([]models.Fee, error) {
	var fees []models.Fee
	err := r.db.Where("student_id = ?", studentID).
		Order("payment_date DESC").
		Find(&fees).Error
	return fees, err
}
