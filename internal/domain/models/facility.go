package models

import "time"

// DefaultFacilities are seeded for every new society
var DefaultFacilities = []string{
	"Community Hall",
	"Clubhouse",
	"Tennis Court",
	"Swimming Pool Area",
}

// BookingSlots are the fixed reservable windows per facility per day
var BookingSlots = []string{
	"Morning (9 AM - 1 PM)",
	"Afternoon (2 PM - 6 PM)",
	"Evening (7 PM - 11 PM)",
}

// Facility is a reservable amenity owned by one society
type Facility struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AdminID   uint      `gorm:"index;not null" json:"admin_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
