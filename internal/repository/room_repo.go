package repository

import (
	"errors"

	"hostel-management-backend/internal/models"

	"gorm.io/gorm"
)

// RoomRepository covers room creation and the read paths. Occupancy counters
// are never written here; only the ledger mutates them.
type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepo(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// GetAllRooms retrieves all rooms ordered by room number
func (r *RoomRepository) GetAllRooms() ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.Order("room_number ASC").Find(&rooms).Error
	return rooms, err
}

// GetRoomByNumber retrieves a room by its room number
func (r *RoomRepository) GetRoomByNumber(roomNumber string) (*models.Room, error) {
	var room models.Room
	err := r.db.Where("room_number = ?", roomNumber).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("room not found")
		}
		return nil, err
	}
	return &room, nil
}

// CreateRoom creates a new room
func (r *RoomRepository) CreateRoom(room *models.Room) error {
	return r.db.Create(room).Error
}

// CountRoomsByNumber counts rooms with the given number (duplicate check)
func (r *RoomRepository) CountRoomsByNumber(roomNumber string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Room{}).
		Where("room_number = ?", roomNumber).
		Count(&count).Error
	return count, err
}

// GetOccupancyDrift returns rooms whose stored occupancy counter does not
// match the number of students assigned to them. Used by the reconciliation
// auditor; read-only.
func (r *RoomRepository) GetOccupancyDrift() ([]OccupancyDrift, error) {
	var drift []OccupancyDrift
	err := r.db.Model(&models.Room{}).
		Select("rooms.room_number, rooms.current_occupancy, COUNT(students.id) AS actual_count").
		Joins("LEFT JOIN students ON students.room_no = rooms.room_number").
		Group("rooms.room_number, rooms.current_occupancy").
		Having("rooms.current_occupancy != COUNT(students.id)").
		Scan(&drift).Error
	return drift, err
}

// OccupancyDrift is one room whose counter disagrees with the student count
type OccupancyDrift struct {
	RoomNumber       string `json:"room_number"`
	CurrentOccupancy int    `json:"current_occupancy"`
	ActualCount      int    `json:"actual_count"`
}
