package models

import "time"

// Fee represents the fees table (one row per recorded payment)
type Fee struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	StudentID   uint      `gorm:"not null;index" json:"student_id"`
	AmountPaid  float64   `gorm:"not null" json:"amount_paid"`
	PaymentDate time.Time `gorm:"not null" json:"payment_date"`
	Remarks     string    `gorm:"size:255" json:"remarks"`
	CreatedAt   time.Time `json:"created_at"`
	Student     Student   `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

// TableName specifies the table name for Fee model
func (Fee) TableName() string {
	return "fees"
}
