package models

import "time"

// Student represents the students table. RoomNo is a nullable reference to
// Room.RoomNumber; it is mutated only by the assignment ledger so that the
// room occupancy counters stay in step with it.
type Student struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	RollNo        string    `gorm:"uniqueIndex;not null;size:20" json:"roll_no"`
	Email         string    `gorm:"size:100;not null" json:"email"`
	Phone         string    `gorm:"size:20" json:"phone"`
	Gender        string    `gorm:"type:enum('male','female','other');default:'male'" json:"gender"`
	DOB           string    `gorm:"size:20" json:"dob"`
	Address       string    `gorm:"type:text" json:"address"`
	GuardianName  string    `gorm:"size:100" json:"guardian_name"`
	GuardianPhone string    `gorm:"size:20" json:"guardian_phone"`
	RoomNo        *string   `gorm:"size:20;index" json:"room_no"`
	Department    string    `gorm:"size:50;not null" json:"department"`
	Year          int       `gorm:"not null" json:"year"`
	PasswordHash  string    `gorm:"not null;size:255" json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName specifies the table name for Student model
func (Student) TableName() string {
	return "students"
}

// StudentSummary is the trimmed row returned by the admin student list
type StudentSummary struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	RollNo     string  `json:"roll_no"`
	Department string  `json:"department"`
	Year       int     `json:"year"`
	RoomNo     *string `json:"room_no"`
}
