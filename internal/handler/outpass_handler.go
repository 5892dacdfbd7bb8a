package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hostel-management-backend/internal/service"
	"hostel-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type OutpassHandler struct {
	outpassService *service.OutpassService
}

func NewOutpassHandler(outpassService *service.OutpassService) *OutpassHandler {
	return &OutpassHandler{
		outpassService: outpassService,
	}
}

type UpdateOutpassStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListOutpasses returns all outpass requests joined with student details (admin only)
func (h *OutpassHandler) ListOutpasses(c *gin.Context) {
	outpasses, err := h.outpassService.GetAllOutpasses()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch outpass requests")
		return
	}

	utils.SuccessResponse(c, outpasses)
}

// UpdateOutpassStatus approves or rejects an outpass request (admin only)
func (h *OutpassHandler) UpdateOutpassStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid outpass ID")
		return
	}

	var req UpdateOutpassStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "A valid status (Approved/Rejected) is required")
		return
	}

	adminID, _ := c.Get("userID")

	if err := h.outpassService.UpdateStatus(uint(id), req.Status, adminID.(uint)); err != nil {
		if errors.Is(err, service.ErrInvalidOutpassStatus) {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	utils.MessageResponse(c, "Outpass status updated successfully")
}
