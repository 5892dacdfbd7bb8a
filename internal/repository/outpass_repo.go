package repository

import (
	"hostel-management-backend/internal/models"

	"gorm.io/gorm"
)

type OutpassRepository struct {
	db *gorm.DB
}

func NewOutpassRepo(db *gorm.DB) *OutpassRepository {
	return &OutpassRepository{db: db}
}

// CreateOutpass files a new outpass request
func (r *OutpassRepository) CreateOutpass(outpass *models.Outpass) error {
	return r.db.Create(outpass).Error
}

// GetAllOutpasses returns every outpass request joined with its student, newest first
func (r *OutpassRepository) GetAllOutpasses() ([]models.OutpassWithStudent, error) {
	var outpasses []models.OutpassWithStudent
	err := r.db.Model(&models.Outpass{}).
		Select("outpasses.id, outpasses.reason, outpasses.departure_time, outpasses.expected_return_time, "+
			"outpasses.status, outpasses.created_at, "+
			"students.name AS student_name, students.roll_no, students.room_no").
		Joins("INNER JOIN students ON outpasses.student_id = students.id").
		Order("outpasses.created_at DESC").
		Scan(&outpasses).Error
	return outpasses, err
}

// GetOutpassesByStudentID returns a student's own outpass requests, newest first
func (r *OutpassRepository) GetOutpassesByStudentID(studentID uint) ([]models.Outpass, error) {
	var outpasses []models.Outpass
	err := r.db.Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&outpasses).Error
	return outpasses, err
}

// UpdateOutpassStatus sets the status of an outpass request
func (r *OutpassRepository) UpdateOutpassStatus(id uint, status string) error {
	return r.db.Model(&models.Outpass{}).
		Where("id = ?", id).
		Update("status", status).Error
}
