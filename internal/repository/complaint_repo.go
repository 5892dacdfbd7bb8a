package repository

import (
	"hostel-management-backend/internal/models"

	"gorm.io/gorm"
)

type ComplaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepo(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// CreateComplaint files a new complaint
func (r *ComplaintRepository) CreateComplaint(complaint *models.Complaint) error {
	return r.db.Create(complaint).Error
}

// GetAllComplaints returns every complaint joined with its student, newest first
func (r *ComplaintRepository) GetAllComplaints() ([]models.ComplaintWithStudent, error) {
	var complaints []models.ComplaintWithStudent
	err := r.db.Model(&models.Complaint{}).
		Select("complaints.id, complaints.description, complaints.status, complaints.created_at, " +
			"students.name AS student_name, students.roll_no, students.room_no").
		Joins("INNER JOIN students ON complaints.student_id = students.id").
		Order("complaints.created_at DESC").
		Scan(&complaints).Error
	return complaints, err
}

// GetComplaintsByStudentID returns a student's own complaints, newest first
func (r *ComplaintRepository) GetComplaintsByStudentID(studentID uint) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := r.db.Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&complaints).Error
	return complaints, err
}

// UpdateComplaintStatus sets the status of a complaint
func (r *ComplaintRepository) UpdateComplaintStatus(id uint, status string) error {
	return r.db.Model(&models.Complaint{}).
		Where("id = ?", id).
		Update("status", status).Error
}
