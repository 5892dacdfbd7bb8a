package models

import "time"

// Outpass status values
const (
	OutpassStatusPending  = "Pending"
	OutpassStatusApproved = "Approved"
	OutpassStatusRejected = "Rejected"
)

// Outpass represents the outpasses table
type Outpass struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	StudentID          uint      `gorm:"not null;index" json:"student_id"`
	Reason             string    `gorm:"type:text;not null" json:"reason"`
	DepartureTime      time.Time `gorm:"not null" json:"departure_time"`
	ExpectedReturnTime time.Time `gorm:"not null" json:"expected_return_time"`
	Status             string    `gorm:"type:enum('Pending','Approved','Rejected');default:'Pending'" json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	Student            Student   `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

// TableName specifies the table name for Outpass model
func (Outpass) TableName() string {
	return "outpasses"
}

// OutpassWithStudent is the admin list row joined with student details
type OutpassWithStudent struct {
	ID                 uint      `json:"id"`
	Reason             string    `json:"reason"`
	DepartureTime      time.Time `json:"departure_time"`
	ExpectedReturnTime time.Time `json:"expected_return_time"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	StudentName        string    `json:"student_name"`
	RollNo             string    `json:"roll_no"`
	RoomNo             *string   `json:"room_no"`
}
