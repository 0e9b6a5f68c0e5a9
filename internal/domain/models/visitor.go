package models

import "time"

// Visitor statuses
const (
	VisitorStatusExpected   = "Expected"
	VisitorStatusCheckedIn  = "Checked In"
	VisitorStatusCheckedOut = "Checked Out"
)

// Visitor is one gate-pass entry in a resident's append-only visitor log
type Visitor struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Phone     string    `gorm:"type:varchar(20);not null" json:"phone"`
	VisitDate string    `gorm:"type:varchar(10);not null" json:"visit_date"` // YYYY-MM-DD
	VisitTime string    `gorm:"type:varchar(8);not null" json:"visit_time"`  // HH:MM
	Status    string    `gorm:"type:varchar(20);not null;default:'Expected'" json:"status"`
	PassCode  string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"pass_code"` // shown at the gate
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Resident *Resident `gorm:"foreignKey:UserID" json:"resident,omitempty"`
}
