package handler

import (
	"errors"
	"net/http"

	"hostel-management-backend/internal/service"
	"hostel-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomService *service.RoomService
}

func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
	}
}

type AddRoomRequest struct {
	RoomNumber string `json:"room_number" binding:"required"`
	Capacity   int    `json:"capacity" binding:"required,min=1"`
}

// AddRoom creates a new room (admin only)
func (h *RoomHandler) AddRoom(c *gin.Context) {
	var req AddRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Room number and capacity are required")
		return
	}

	adminID, _ := c.Get("userID")

	room, err := h.roomService.CreateRoom(req.RoomNumber, req.Capacity, adminID.(uint))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoomNumberTaken):
			utils.ErrorResponse(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrInvalidCapacity):
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Room added successfully",
		"room":    room,
	})
}

// ListRooms returns all rooms with their occupancy
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.roomService.ListRooms()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch rooms")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"rooms": rooms,
		"count": len(rooms),
	})
}
