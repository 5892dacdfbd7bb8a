package service

import (
	"errors"
	"fmt"

	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/repository"
)

var (
	ErrRoomNumberTaken = errors.New("room number already exists")
	ErrInvalidCapacity = errors.New("capacity must be a positive integer")
)

type RoomService struct {
	roomRepo  *repository.RoomRepository
	auditRepo *repository.AuditRepository
}

func NewRoomService(roomRepo *repository.RoomRepository, auditRepo *repository.AuditRepository) *RoomService {
	return &RoomService{
		roomRepo:  roomRepo,
		auditRepo: auditRepo,
	}
}

// CreateRoom adds a new room with zero occupancy
func (s *RoomService) CreateRoom(roomNumber string, capacity int, adminID uint) (*models.Room, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	count, err := s.roomRepo.CountRoomsByNumber(roomNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check room number: %w", err)
	}
	if count > 0 {
		return nil, ErrRoomNumberTaken
	}

	room := &models.Room{
		RoomNumber: roomNumber,
		Capacity:   capacity,
	}
	if err := s.roomRepo.CreateRoom(room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	adminIDPtr := &adminID
	details := fmt.Sprintf("Created room %s (capacity: %d)", roomNumber, capacity)
	_ = s.auditRepo.CreateAuditLog(adminIDPtr, "room_create", details)

	return room, nil
}

// ListRooms returns all rooms with their occupancy
func (s *RoomService) ListRooms() ([]models.Room, error) {
	return s.roomRepo.GetAllRooms()
}
