package repository

import (
	"errors"

	"hostel-management-backend/internal/models"

	"gorm.io/gorm"
)

// StudentRepository covers the read paths and the single-statement writes on
// students. Creation, room transfer and deletion go through the ledger, which
// also adjusts room occupancy.
type StudentRepository struct {
	db *gorm.DB
}

func NewStudentRepo(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// ListStudents returns the admin list view, ordered by name
func (r *StudentRepository) ListStudents() ([]models.StudentSummary, error) {
	var students []models.StudentSummary
	err := r.db.Model(&models.Student{}).
		Select("id, name, roll_no, department, year, room_no").
		Order("name ASC").
		Find(&students).Error
	return students, err
}

// GetStudentByID retrieves a student by ID
func (r *StudentRepository) GetStudentByID(id uint) (*models.Student, error) {
	var student models.Student
	err := r.db.Where("id = ?", id).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("student not found")
		}
		return nil, err
	}
	return &student, nil
}

// GetStudentByRollNo retrieves a student by roll number
func (r *StudentRepository) GetStudentByRollNo(rollNo string) (*models.Student, error) {
	var student models.Student
	err := r.db.Where("roll_no = ?", rollNo).First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("student not found")
		}
		return nil, err
	}
	return &student, nil
}

// UpdatePassword replaces a student's stored password hash
func (r *StudentRepository) UpdatePassword(id uint, passwordHash string) error {
	return r.db.Model(&models.Student{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}
