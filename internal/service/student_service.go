package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"hostel-management-backend/internal/ledger"
	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/repository"
)

// Roll number pattern: 3 digits + department code + 4 digits
var rollNoPattern = regexp.MustCompile(`^\d{3}(cs|ad|me|ec)\d{4}$`)

var ErrInvalidRollNo = errors.New("invalid roll number format")

// StudentService validates input at the boundary and delegates every
// room-touching mutation to the ledger so the occupancy invariant holds.
type StudentService struct {
	studentRepo *repository.StudentRepository
	roomLedger  *ledger.Ledger
	auditRepo   *repository.AuditRepository
}

func NewStudentService(studentRepo *repository.StudentRepository, roomLedger *ledger.Ledger, auditRepo *repository.AuditRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		roomLedger:  roomLedger,
		auditRepo:   auditRepo,
	}
}

// AddStudent validates the roll number and assigns the new student to the
// requested room through the ledger.
func (s *StudentService) AddStudent(ctx context.Context, student *models.Student, roomNumber string, adminID uint) error {
	if !rollNoPattern.MatchString(student.RollNo) {
		return ErrInvalidRollNo
	}

	if err := s.roomLedger.AssignStudentToRoom(ctx, student, roomNumber); err != nil {
		return err
	}

	adminIDPtr := &adminID
	details := fmt.Sprintf("Added student %s (roll: %s) to room %s", student.Name, student.RollNo, roomNumber)
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "student_add", details)

	return nil
}

// ListStudents returns the admin list view
func (s *StudentService) ListStudents() ([]models.StudentSummary, error) {
	return s.studentRepo.ListStudents()
}

// GetStudent retrieves a single student by ID
func (s *StudentService) GetStudent(id uint) (*models.Student, error) {
	return s.studentRepo.GetStudentByID(id)
}

// UpdateStudent applies a typed patch through the ledger; a room change moves
// the student and both occupancy counters atomically.
func (s *StudentService) UpdateStudent(ctx context.Context, studentID uint, patch ledger.StudentPatch, adminID uint) (*models.Student, error) {
	student, err := s.roomLedger.TransferStudent(ctx, studentID, patch)
	if err != nil {
		return nil, err
	}

	adminIDPtr := &adminID
	details := fmt.Sprintf("Updated student %s (ID: %d)", student.RollNo, student.ID)
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "student_update", details)

	return student, nil
}

// DeleteStudent removes a student and releases their room through the ledger
func (s *StudentService) DeleteStudent(ctx context.Context, studentID uint, adminID uint) error {
	if err := s.roomLedger.ReleaseStudent(ctx, studentID); err != nil {
		return err
	}

	adminIDPtr := &adminID
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "student_delete", fmt.Sprintf("Deleted student ID %d", studentID))

	return nil
}
