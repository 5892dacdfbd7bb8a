package handler

import (
	"errors"
	"net/http"
	"time"

	"hostel-management-backend/internal/service"
	"hostel-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PortalHandler serves the logged-in student's own data
type PortalHandler struct {
	studentService   *service.StudentService
	feeService       *service.FeeService
	complaintService *service.ComplaintService
	outpassService   *service.OutpassService
}

func NewPortalHandler(
	studentService *service.StudentService,
	feeService *service.FeeService,
	complaintService *service.ComplaintService,
	outpassService *service.OutpassService,
) *PortalHandler {
	return &PortalHandler{
		studentService:   studentService,
		feeService:       feeService,
		complaintService: complaintService,
		outpassService:   outpassService,
	}
}

type SubmitComplaintRequest struct {
	Description string `json:"description" binding:"required"`
}

type SubmitOutpassRequest struct {
	Reason             string `json:"reason" binding:"required"`
	DepartureTime      string `json:"departure_time" binding:"required"`
	ExpectedReturnTime string `json:"expected_return_time" binding:"required"`
}

// GetProfile returns the logged-in student's profile
func (h *PortalHandler) GetProfile(c *gin.Context) {
	userID, _ := c.Get("userID")

	student, err := h.studentService.GetStudent(userID.(uint))
	if err != nil {
		if err.Error() == "student not found" {
			utils.ErrorResponse(c, http.StatusNotFound, "Student profile not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	utils.SuccessResponse(c, student)
}

// GetFees returns the logged-in student's fee payment history
func (h *PortalHandler) GetFees(c *gin.Context) {
	userID, _ := c.Get("userID")

	fees, err := h.feeService.GetStudentFees(userID.(uint))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch fee history")
		return
	}

	utils.SuccessResponse(c, fees)
}

// SubmitComplaint files a complaint for the logged-in student
func (h *PortalHandler) SubmitComplaint(c *gin.Context) {
	var req SubmitComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Complaint description is required")
		return
	}

	userID, _ := c.Get("userID")

	complaint, err := h.complaintService.SubmitComplaint(userID.(uint), req.Description)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":   "Complaint submitted successfully",
		"complaint": complaint,
	})
}

// GetComplaints returns the logged-in student's complaints
func (h *PortalHandler) GetComplaints(c *gin.Context) {
	userID, _ := c.Get("userID")

	complaints, err := h.complaintService.GetStudentComplaints(userID.(uint))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch complaints")
		return
	}

	utils.SuccessResponse(c, complaints)
}

// SubmitOutpass files an outpass request for the logged-in student
func (h *PortalHandler) SubmitOutpass(c *gin.Context) {
	var req SubmitOutpassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Reason, departure time and expected return time are required")
		return
	}

	departure, err := time.Parse(time.RFC3339, req.DepartureTime)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid departure time, expected RFC3339")
		return
	}
	expectedReturn, err := time.Parse(time.RFC3339, req.ExpectedReturnTime)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid expected return time, expected RFC3339")
		return
	}

	userID, _ := c.Get("userID")

	outpass, err := h.outpassService.SubmitRequest(userID.(uint), req.Reason, departure, expectedReturn)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOutpassTimes) {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Outpass request submitted successfully",
		"outpass": outpass,
	})
}

// GetOutpasses returns the logged-in student's outpass requests
func (h *PortalHandler) GetOutpasses(c *gin.Context) {
	userID, _ := c.Get("userID")

	outpasses, err := h.outpassService.GetStudentOutpasses(userID.(uint))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch outpass requests")
		return
	}

	utils.SuccessResponse(c, outpasses)
}
