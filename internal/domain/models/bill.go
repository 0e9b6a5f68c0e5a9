package models

import "time"

// Bill statuses
const (
	BillStatusPaid   = "Paid"
	BillStatusUnpaid = "Unpaid"
)

// Bill is a single maintenance charge owned by a Resident
type Bill struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Amount    float64   `gorm:"not null;default:0" json:"amount"`
	Status    string    `gorm:"type:varchar(20);not null;default:'Unpaid'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Resident *Resident `gorm:"foreignKey:UserID" json:"resident,omitempty"`
}
