package models

import "time"

// Booking statuses. Pending transitions to Confirmed or Rejected by an
// admin decision and is terminal afterwards.
const (
	BookingStatusPending   = "Pending"
	BookingStatusConfirmed = "Confirmed"
	BookingStatusRejected  = "Rejected"
)

// Booking is a facility reservation request by a Resident
type Booking struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	FacilityName string    `gorm:"type:varchar(100);not null;index:idx_bookings_slot" json:"facility_name"`
	BookingDate  string    `gorm:"type:varchar(10);not null;index:idx_bookings_slot" json:"booking_date"` // YYYY-MM-DD
	TimeSlot     string    `gorm:"type:varchar(50);not null;index:idx_bookings_slot" json:"time_slot"`
	Status       string    `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	// ConfirmedSlot holds "facility|date|slot", set only while Confirmed.
	// The unique index rejects a second Confirmed row for one slot; NULL
	// rows (Pending, Rejected) never collide.
	ConfirmedSlot *string `gorm:"type:varchar(170);uniqueIndex:idx_bookings_confirmed_slot" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Resident *Resident `gorm:"foreignKey:UserID" json:"resident,omitempty"`
}
