package models

import "time"

// Room represents the rooms table. CurrentOccupancy is maintained exclusively
// by the assignment ledger inside its transactions; for every room it must
// equal the number of students whose room_no points at it and never exceed
// Capacity.
type Room struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	RoomNumber       string    `gorm:"uniqueIndex;not null;size:20" json:"room_number"`
	Capacity         int       `gorm:"not null" json:"capacity"`
	CurrentOccupancy int       `gorm:"not null;default:0" json:"current_occupancy"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName specifies the table name for Room model
func (Room) TableName() string {
	return "rooms"
}
