package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hostel-management-backend/internal/service"
	"hostel-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ComplaintHandler struct {
	complaintService *service.ComplaintService
}

func NewComplaintHandler(complaintService *service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{
		complaintService: complaintService,
	}
}

type UpdateComplaintStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListComplaints returns all complaints joined with student details (admin only)
func (h *ComplaintHandler) ListComplaints(c *gin.Context) {
	complaints, err := h.complaintService.GetAllComplaints()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch complaints")
		return
	}

	utils.SuccessResponse(c, complaints)
}

// UpdateComplaintStatus changes the status of a complaint (admin only)
func (h *ComplaintHandler) UpdateComplaintStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid complaint ID")
		return
	}

	var req UpdateComplaintStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "A valid status is required")
		return
	}

	adminID, _ := c.Get("userID")

	if err := h.complaintService.UpdateStatus(uint(id), req.Status, adminID.(uint)); err != nil {
		if errors.Is(err, service.ErrInvalidComplaintStatus) {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	utils.MessageResponse(c, "Complaint status updated successfully")
}
