package handler

import (
	"net/http"

	"hostel-management-backend/internal/service"
	"hostel-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AnnouncementHandler struct {
	announcementService *service.AnnouncementService
}

func NewAnnouncementHandler(announcementService *service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementService: announcementService,
	}
}

type CreateAnnouncementRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CreateAnnouncement publishes an announcement (admin only)
func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	var req CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Title and content are required")
		return
	}

	announcement, err := h.announcementService.CreateAnnouncement(req.Title, req.Content)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":      "Announcement created successfully",
		"announcement": announcement,
	})
}

// ListAnnouncements returns all announcements for any authenticated user
func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	announcements, err := h.announcementService.ListAnnouncements()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch announcements")
		return
	}

	utils.SuccessResponse(c, announcements)
}
