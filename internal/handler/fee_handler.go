package handler

import (
	"net/http"
	"strconv"
	"time"

	"hostel-management-backend/internal/service"
	"hostel-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type FeeHandler struct {
	feeService *service.FeeService
}

func NewFeeHandler(feeService *service.FeeService) *FeeHandler {
	return &FeeHandler{
		feeService: feeService,
	}
}

type RecordPaymentRequest struct {
	StudentID   uint    `json:"student_id" binding:"required"`
	AmountPaid  float64 `json:"amount_paid" binding:"required,gt=0"`
	PaymentDate string  `json:"payment_date" binding:"required"`
	Remarks     string  `json:"remarks"`
}

// RecordPayment records a fee payment for a student (admin only)
func (h *FeeHandler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Student ID, amount, and payment date are required")
		return
	}

	paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid payment date, expected YYYY-MM-DD")
		return
	}

	fee, err := h.feeService.RecordPayment(req.StudentID, req.AmountPaid, paymentDate, req.Remarks)
	if err != nil {
		if err.Error() == "student not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Fee payment recorded successfully",
		"fee":     fee,
	})
}

// GetStudentFees returns the payment history for a specific student (admin only)
func (h *FeeHandler) GetStudentFees(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid student ID")
		return
	}

	fees, err := h.feeService.GetStudentFees(uint(id))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch fee history")
		return
	}

	utils.SuccessResponse(c, fees)
}
