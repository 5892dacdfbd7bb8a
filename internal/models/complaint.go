package models

import "time"

// Complaint status values
const (
	ComplaintStatusPending    = "Pending"
	ComplaintStatusInProgress = "In Progress"
	ComplaintStatusResolved   = "Resolved"
)

// Complaint represents the complaints table
type Complaint struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	StudentID   uint      `gorm:"not null;index" json:"student_id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Status      string    `gorm:"type:enum('Pending','In Progress','Resolved');default:'Pending'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	Student     Student   `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

// TableName specifies the table name for Complaint model
func (Complaint) TableName() string {
	return "complaints"
}

// ComplaintWithStudent is the admin list row joined with student details
type ComplaintWithStudent struct {
	ID          uint      `json:"id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	StudentName string    `json:"student_name"`
	RollNo      string    `json:"roll_no"`
	RoomNo      *string   `json:"room_no"`
}
