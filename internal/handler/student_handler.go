package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hostel-management-backend/internal/ledger"
	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/service"
	"hostel-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	studentService *service.StudentService
}

func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
	}
}

type AddStudentRequest struct {
	Name          string `json:"name" binding:"required"`
	RollNo        string `json:"roll_no" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone"`
	Gender        string `json:"gender" binding:"required,oneof=male female other"`
	DOB           string `json:"dob" binding:"required"`
	Address       string `json:"address" binding:"required"`
	GuardianName  string `json:"guardian_name" binding:"required"`
	GuardianPhone string `json:"guardian_phone" binding:"required"`
	RoomNo        string `json:"room_no" binding:"required"`
	Department    string `json:"department" binding:"required"`
	Year          int    `json:"year" binding:"required,min=1,max=5"`
}

type UpdateStudentRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	GuardianName  *string `json:"guardian_name"`
	GuardianPhone *string `json:"guardian_phone"`
	RoomNo        *string `json:"room_no"`
}

// AddStudent creates a student and assigns them to a room
func (h *StudentHandler) AddStudent(c *gin.Context) {
	var req AddStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "All fields are required: "+err.Error())
		return
	}

	student := &models.Student{
		Name:          req.Name,
		RollNo:        req.RollNo,
		Email:         req.Email,
		Phone:         req.Phone,
		Gender:        req.Gender,
		DOB:           req.DOB,
		Address:       req.Address,
		GuardianName:  req.GuardianName,
		GuardianPhone: req.GuardianPhone,
		Department:    req.Department,
		Year:          req.Year,
	}

	adminID, _ := c.Get("userID")

	if err := h.studentService.AddStudent(c.Request.Context(), student, req.RoomNo, adminID.(uint)); err != nil {
		respondStudentError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Student added successfully",
		"student": student,
	})
}

// ListStudents returns all students for the admin dashboard
func (h *StudentHandler) ListStudents(c *gin.Context) {
	students, err := h.studentService.ListStudents()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch students")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"students": students,
		"count":    len(students),
	})
}

// UpdateStudent applies a partial update; a room_no change transfers the student
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid student ID")
		return
	}

	var req UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	patch := ledger.StudentPatch{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		GuardianName:  req.GuardianName,
		GuardianPhone: req.GuardianPhone,
		RoomNo:        req.RoomNo,
	}

	adminID, _ := c.Get("userID")

	student, err := h.studentService.UpdateStudent(c.Request.Context(), uint(id), patch, adminID.(uint))
	if err != nil {
		respondStudentError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Student details updated successfully",
		"student": student,
	})
}

// DeleteStudent removes a student and frees their room slot
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid student ID")
		return
	}

	adminID, _ := c.Get("userID")

	if err := h.studentService.DeleteStudent(c.Request.Context(), uint(id), adminID.(uint)); err != nil {
		respondStudentError(c, err)
		return
	}

	utils.MessageResponse(c, "Student deleted successfully")
}

// respondStudentError maps ledger and validation failures onto HTTP statuses
func respondStudentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRollNo):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ledger.ErrRoomNotFound), errors.Is(err, ledger.ErrStudentNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ledger.ErrRoomFull), errors.Is(err, ledger.ErrDuplicateRollNo):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "Server error")
	}
}
