package models

import "time"

// SocietyFund is the manually maintained balance of one society.
// Derived bill sums are reported alongside it but never written back.
type SocietyFund struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AdminID   uint      `gorm:"uniqueIndex;not null" json:"admin_id"`
	Amount    float64   `gorm:"not null;default:0" json:"amount"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
